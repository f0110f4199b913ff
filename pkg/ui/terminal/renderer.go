// Package terminal renders markup as ANSI styled text
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/tagtint/pkg/markup"
)

// Renderer maps each leaf style to a lipgloss style
type Renderer struct {
	output   io.Writer
	renderer *lipgloss.Renderer
	width    int
}

// Option configures a Renderer
type Option func(*Renderer)

// WithWidth wraps output at the given column. Zero disables wrapping.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		r.width = width
	}
}

// WithTrueColor forces a 24-bit color profile regardless of the writer
func WithTrueColor() Option {
	return WithColorProfile(termenv.TrueColor)
}

// WithColorProfile sets the color profile used for styling
func WithColorProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.renderer.SetColorProfile(p)
	}
}

// New creates a new terminal renderer. The color profile is detected from w
// unless an option overrides it.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		output:   w,
		renderer: lipgloss.NewRenderer(w),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sprint renders node to a styled string
func (r *Renderer) Sprint(node markup.Node) string {
	var b strings.Builder
	for _, leaf := range node.Leaves() {
		b.WriteString(r.renderLeaf(leaf.Text(), leaf.Style()))
	}
	return b.String()
}

func (r *Renderer) renderLeaf(text string, style markup.Style) string {
	if style.IsZero() || text == "" {
		return text
	}

	ls := r.StyleFor(style)
	// lipgloss pads multi-line blocks to a common width, so lines are styled one by one
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = ls.Render(line)
		}
	}
	out := strings.Join(lines, "\n")

	if style.Link != "" && r.renderer.ColorProfile() != termenv.Ascii {
		out = termenv.Hyperlink(style.Link, out)
	}
	return out
}

// StyleFor converts a markup style to the lipgloss style used for a leaf.
// Monospace has no terminal equivalent and is ignored.
func (r *Renderer) StyleFor(style markup.Style) lipgloss.Style {
	ls := r.renderer.NewStyle().
		TabWidth(lipgloss.NoTabConversion).
		Bold(style.Bold).
		Italic(style.Italic).
		Underline(style.Underline)
	if style.Color != nil {
		ls = ls.Foreground(lipgloss.Color(style.Color.Hex()))
	}
	return ls
}

// RenderResult writes the styled result followed by a newline
func (r *Renderer) RenderResult(res markup.Result) error {
	out := r.Sprint(res.Root)
	if r.width > 0 {
		out = wordwrap.String(out, r.width)
	}
	_, err := fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error in red
func (r *Renderer) RenderError(err error) error {
	style := r.renderer.NewStyle().Foreground(lipgloss.Color("#ff0000")).Bold(true)
	_, werr := fmt.Fprintln(r.output, style.Render("Error:")+" "+err.Error())
	return werr
}
