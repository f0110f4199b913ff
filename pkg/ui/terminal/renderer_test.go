package terminal_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tagtint/pkg/markup"
	"github.com/arthur-debert/tagtint/pkg/ui/terminal"
)

func TestSprintTrueColor(t *testing.T) {
	var buf bytes.Buffer
	r := terminal.New(&buf, terminal.WithTrueColor())

	res := markup.Format("<b>Hi <c=#00ff00>there</c></b>")
	leaves := res.Root.Leaves()
	require.Len(t, leaves, 2)

	expected := r.StyleFor(leaves[0].Style()).Render("Hi ") + r.StyleFor(leaves[1].Style()).Render("there")
	assert.Equal(t, expected, r.Sprint(res.Root))
	assert.Contains(t, r.Sprint(res.Root), "\x1b[")
}

func TestSprintUnstyledIsUntouched(t *testing.T) {
	r := terminal.New(&bytes.Buffer{}, terminal.WithTrueColor())
	assert.Equal(t, "plain\ttext", r.Sprint(markup.Format("plain\ttext").Root))
}

func TestSprintAsciiProfileStripsStyles(t *testing.T) {
	r := terminal.New(&bytes.Buffer{}, terminal.WithColorProfile(termenv.Ascii))
	res := markup.Format("<b>Hi</b> <u><c=red>there</c></u> <a=https://go.dev>go</a>")
	assert.Equal(t, res.Plain, r.Sprint(res.Root))
}

func TestSprintMultiline(t *testing.T) {
	r := terminal.New(&bytes.Buffer{}, terminal.WithTrueColor())
	out := r.Sprint(markup.Format("<b>long line\nx</b>").Root)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "x")
	assert.NotContains(t, lines[1], "x ", "lines are not padded to a common width")
}

func TestSprintLink(t *testing.T) {
	r := terminal.New(&bytes.Buffer{}, terminal.WithTrueColor())
	out := r.Sprint(markup.Format("<a=https://go.dev>go</a>").Root)
	assert.Contains(t, out, "\x1b]8;;https://go.dev")
}

func TestStyleFor(t *testing.T) {
	r := terminal.New(&bytes.Buffer{}, terminal.WithTrueColor())
	red := markup.Color{R: 255}
	style := r.StyleFor(markup.Style{Bold: true, Italic: true, Underline: true, Color: &red})

	assert.True(t, style.GetBold())
	assert.True(t, style.GetItalic())
	assert.True(t, style.GetUnderline())
	assert.Equal(t, lipgloss.Color("#ff0000"), style.GetForeground())
}

func TestRenderResult(t *testing.T) {
	t.Run("appends newline", func(t *testing.T) {
		var buf bytes.Buffer
		r := terminal.New(&buf, terminal.WithColorProfile(termenv.Ascii))
		require.NoError(t, r.RenderResult(markup.Format("<b>hello</b>")))
		assert.Equal(t, "hello\n", buf.String())
	})

	t.Run("wraps at width", func(t *testing.T) {
		var buf bytes.Buffer
		r := terminal.New(&buf, terminal.WithColorProfile(termenv.Ascii), terminal.WithWidth(5))
		require.NoError(t, r.RenderResult(markup.Format("<b>aaa bbb</b>")))
		assert.Equal(t, "aaa\nbbb\n", buf.String())
	})
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	r := terminal.New(&buf, terminal.WithColorProfile(termenv.Ascii))
	require.NoError(t, r.RenderError(assert.AnError))
	assert.Equal(t, "Error: "+assert.AnError.Error()+"\n", buf.String())
}
