package markup_test

import (
	"math/rand/v2"
	"sync"
	"testing"
	"unicode"

	"github.com/arthur-debert/tagtint/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorPtr(c markup.Color) *markup.Color { return &c }

func TestFormatPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		plain string
	}{
		{"plain", "just text", "just text"},
		{"nested", "<b>Hi <i>there</i></b>!", "Hi there!"},
		{"unmatched close tag", "a</b>b", "ab"},
		{"unknown tag", "<foo>hi</foo>", "hi"},
		{"unterminated scope", "<b>runs to the end", "runs to the end"},
		{"unterminated bracket", "x <b", "x <b"},
		{"out of order close", "<b><i>x</b>y</i>z", "xyz"},
		{"case-insensitive close", "<B>x</b>y", "xy"},
		{"link", "<a=https://example.com>site</a>", "site"},
		{"entities stay raw", `<b>a & "b"</b>`, `a & "b"`},
		{"color tuple", "<c=(1,2,3)>x</c>", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := markup.Format(tt.input)
			assert.Equal(t, tt.plain, res.Plain)
			assert.Equal(t, tt.plain, res.Root.PlainText())
		})
	}
}

func TestFormatEndToEnd(t *testing.T) {
	res := markup.NewFormatter().Format("<b>Hi <c=#00ff00>there</c></b>")
	assert.Equal(t, "Hi there", res.Plain)

	leaves := res.Root.Leaves()
	require.Len(t, leaves, 2)

	assert.Equal(t, "Hi ", leaves[0].Text())
	assert.Equal(t, markup.Style{Bold: true}, leaves[0].Style())

	assert.Equal(t, "there", leaves[1].Text())
	assert.Equal(t, markup.Style{Bold: true, Color: colorPtr(markup.Color{G: 255})}, leaves[1].Style())
}

func TestFormatUnmatchedCloseIsNoop(t *testing.T) {
	res := markup.Format("a</b>b")
	for _, leaf := range res.Root.Leaves() {
		assert.True(t, leaf.Style().IsZero())
	}
}

func TestFormatUnknownTagUnstyled(t *testing.T) {
	res := markup.Format("<foo>hi</foo>")
	leaves := res.Root.Leaves()
	require.Len(t, leaves, 1)
	assert.True(t, leaves[0].Style().IsZero())
}

func TestFormatOuterWins(t *testing.T) {
	res := markup.Format("<c=red><c=blue>X</c></c>")
	leaves := res.Root.Leaves()
	require.Len(t, leaves, 1)
	assert.Equal(t, colorPtr(markup.Color{R: 255}), leaves[0].Style().Color)
}

func TestFormatTags(t *testing.T) {
	green := markup.Color{G: 255}

	tests := []struct {
		name  string
		input string
		style markup.Style
	}{
		{"bold", "<bold>x</bold>", markup.Style{Bold: true}},
		{"italic", "<i>x</i>", markup.Style{Italic: true}},
		{"underline", "<u>x</u>", markup.Style{Underline: true}},
		{"mono", "<mono>x</mono>", markup.Style{Monospace: true}},
		{"named color", "<color=green>x</color>", markup.Style{Color: &green}},
		{"color default is white", "<c>x</c>", markup.Style{Color: colorPtr(markup.White)}},
		{"unknown color is white", "<c=nope>x</c>", markup.Style{Color: colorPtr(markup.White)}},
		{"link with url", "<link=https://go.dev>x</link>", markup.Style{Link: "https://go.dev", Underline: true}},
		{"link defaults to text", "<a>https://go.dev</a>", markup.Style{Link: "https://go.dev", Underline: true}},
		{"combined", "<b><i><u>x</u></i></b>", markup.Style{Bold: true, Italic: true, Underline: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaves := markup.Format(tt.input).Root.Leaves()
			require.NotEmpty(t, leaves)
			for _, leaf := range leaves {
				assert.Equal(t, tt.style, leaf.Style())
			}
		})
	}
}

func TestFormatLinkUsesResolvedInnerText(t *testing.T) {
	leaves := markup.Format("<a>go.<b>dev</b></a>").Root.Leaves()
	require.Len(t, leaves, 2)
	assert.Equal(t, "go.dev", leaves[0].Style().Link)
	assert.Equal(t, "go.dev", leaves[1].Style().Link)
	assert.True(t, leaves[1].Style().Bold)
}

func TestFormatGradient(t *testing.T) {
	t.Run("replaces inner styling", func(t *testing.T) {
		res := markup.Format("<gradient colors=red,blue><b>ab</b>c</gradient>")
		assert.Equal(t, "abc", res.Plain)
		colors := leafColors(t, res.Root)
		assert.Equal(t, []markup.Color{{R: 255}, {R: 128, B: 128}, {B: 255}}, colors)
		for _, leaf := range res.Root.Leaves() {
			assert.False(t, leaf.Style().Bold)
		}
	})

	t.Run("from and to", func(t *testing.T) {
		colors := leafColors(t, markup.Format("<gradient from=(0,0,0) to=#ffffff>xy</gradient>").Root)
		assert.Equal(t, []markup.Color{markup.Black, markup.White}, colors)
	})

	t.Run("from only defaults to black", func(t *testing.T) {
		colors := leafColors(t, markup.Format("<gradient from=red>xy</gradient>").Root)
		assert.Equal(t, []markup.Color{{R: 255}, markup.Black}, colors)
	})

	t.Run("value shorthand", func(t *testing.T) {
		colors := leafColors(t, markup.Format("<gradient=red,green,blue>xyz</gradient>").Root)
		assert.Equal(t, []markup.Color{{R: 255}, {G: 255}, {B: 255}}, colors)
	})

	t.Run("default white to black", func(t *testing.T) {
		colors := leafColors(t, markup.Format("<gradient>xy</gradient>").Root)
		assert.Equal(t, []markup.Color{markup.White, markup.Black}, colors)
	})

	t.Run("single character", func(t *testing.T) {
		colors := leafColors(t, markup.Format("<gradient colors=red,blue>x</gradient>").Root)
		assert.Equal(t, []markup.Color{{R: 255}}, colors)
	})

	t.Run("empty content adds nothing", func(t *testing.T) {
		res := markup.Format("a<gradient></gradient>b")
		assert.Equal(t, "ab", res.Plain)
		assert.Len(t, res.Root.Leaves(), 2)
	})

	t.Run("outer style applies over gradient", func(t *testing.T) {
		leaves := markup.Format("<b><gradient>xy</gradient></b>").Root.Leaves()
		require.Len(t, leaves, 2)
		assert.True(t, leaves[0].Style().Bold)
		assert.NotNil(t, leaves[0].Style().Color)
	})
}

func TestFormatRainbow(t *testing.T) {
	res := markup.Format("<rainbow><i>x</i></rainbow>")
	assert.Equal(t, "x", res.Plain)
	assert.Equal(t, []markup.Color{{R: 255}}, leafColors(t, res.Root))
	assert.False(t, res.Root.Leaves()[0].Style().Italic)

	assert.Equal(t, "", markup.Format("<rainbow></rainbow>").Plain)
}

func TestFormatObfuscated(t *testing.T) {
	f := markup.NewFormatter(markup.WithRandSource(func() *rand.Rand {
		return rand.New(rand.NewPCG(3, 4))
	}))

	res := f.Format("<b>keep <obf>Hidden text</obf></b>")
	require.Len(t, []rune(res.Plain), len("keep Hidden text"))
	assert.Equal(t, "keep ", res.Plain[:5])
	assert.Equal(t, byte(' '), res.Plain[11])
	assert.NotEqual(t, "keep Hidden text", res.Plain)
	assert.Equal(t, res.Plain, res.Root.PlainText())

	leaves := res.Root.Leaves()
	require.Len(t, leaves, 2)
	assert.Equal(t, markup.Style{Bold: true}, leaves[1].Style())
	for _, r := range leaves[1].Text() {
		assert.True(t, unicode.IsSpace(r) || isReplacement(r))
	}

	again := f.Format("<b>keep <obf>Hidden text</obf></b>")
	assert.Equal(t, res.Plain, again.Plain)
}

func TestFormatEscapedLeaves(t *testing.T) {
	leaves := markup.Format(`<b>a&b 'q' "d"</b>`).Root.Leaves()
	require.Len(t, leaves, 1)
	assert.Equal(t, `a&b 'q' "d"`, leaves[0].Text())
	assert.Equal(t, "a&amp;b &#39;q&#39; &quot;d&quot;", leaves[0].Escaped())
}

func TestFormatterColorTable(t *testing.T) {
	table := markup.NewColorTable()
	f := markup.NewFormatter(markup.WithColorTable(table))

	f.AddColor("Brand", markup.Color{R: 1, G: 2, B: 3})
	leaves := f.Format("<c=brand>x</c>").Root.Leaves()
	require.Len(t, leaves, 1)
	assert.Equal(t, colorPtr(markup.Color{R: 1, G: 2, B: 3}), leaves[0].Style().Color)

	_, ok := table.Lookup("BRAND")
	assert.True(t, ok)

	other := markup.NewFormatter()
	leaves = other.Format("<c=brand>x</c>").Root.Leaves()
	assert.Equal(t, colorPtr(markup.White), leaves[0].Style().Color)
}

func TestFormatConcurrent(t *testing.T) {
	f := markup.NewFormatter()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				res := f.Format("<b>Hi <c=#00ff00>there</c></b> <u>friend</u>")
				assert.Equal(t, "Hi there friend", res.Plain)
			}
		}()
	}
	wg.Wait()
}
