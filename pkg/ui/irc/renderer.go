// Package irc renders markup as mIRC formatting codes
package irc

import (
	"fmt"
	"io"
	"strings"

	"github.com/ergochat/irc-go/ircfmt"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	"github.com/arthur-debert/tagtint/pkg/markup"
)

type paletteEntry struct {
	name  string
	color colorful.Color
}

// mIRC's 16 base colours, in code order
var palette = []paletteEntry{
	{"white", rgb(255, 255, 255)},
	{"black", rgb(0, 0, 0)},
	{"blue", rgb(0, 0, 127)},
	{"green", rgb(0, 147, 0)},
	{"red", rgb(255, 0, 0)},
	{"brown", rgb(127, 0, 0)},
	{"magenta", rgb(156, 0, 156)},
	{"orange", rgb(252, 127, 0)},
	{"yellow", rgb(255, 255, 0)},
	{"light green", rgb(0, 252, 0)},
	{"cyan", rgb(0, 147, 147)},
	{"light cyan", rgb(0, 255, 255)},
	{"light blue", rgb(0, 0, 252)},
	{"pink", rgb(255, 0, 255)},
	{"grey", rgb(127, 127, 127)},
	{"light grey", rgb(210, 210, 210)},
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Nearest returns the code and name of the palette colour closest to c in Lab space
func Nearest(c markup.Color) (int, string) {
	target := rgb(c.R, c.G, c.B)
	best, bestDist := 0, -1.0
	for i, p := range palette {
		d := target.DistanceLab(p.color)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, palette[best].name
}

// Sprint renders node to a raw IRC string
func Sprint(node markup.Node) string {
	var b strings.Builder
	for _, leaf := range node.Leaves() {
		b.WriteString(escapeLeaf(leaf.Text(), leaf.Style()))
	}
	return ircfmt.Unescape(b.String())
}

func escapeLeaf(text string, style markup.Style) string {
	// control codes typed by the user must not leak into the output
	text = ircfmt.Escape(ircfmt.Strip(text))
	if style.Link != "" && style.Link != text {
		text += " <" + ircfmt.Escape(style.Link) + ">"
	}
	if style.IsZero() || text == "" {
		return text
	}

	var codes strings.Builder
	if style.Bold {
		codes.WriteString("$b")
	}
	if style.Italic {
		codes.WriteString("$i")
	}
	if style.Underline {
		codes.WriteString("$u")
	}
	if style.Monospace {
		codes.WriteString("$m")
	}
	if style.Color != nil {
		_, name := Nearest(*style.Color)
		codes.WriteString("$c[" + name + "]")
		if strings.HasPrefix(text, ",") {
			// keep a leading comma from being read as a background colour
			codes.WriteString("$b$b")
		}
	}
	return codes.String() + text + "$r"
}

// Renderer writes IRC formatted lines
type Renderer struct {
	output io.Writer
	width  int
}

// New creates a new IRC renderer. A positive width wraps output at that column.
func New(output io.Writer, width int) *Renderer {
	return &Renderer{output: output, width: width}
}

// RenderResult writes the IRC encoding of res
func (r *Renderer) RenderResult(res markup.Result) error {
	out := Sprint(res.Root)
	if r.width > 0 {
		out = wordwrap.String(out, r.width)
	}
	_, err := fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error in bold red
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, ircfmt.Unescape("$b$c[red]Error:$r ")+ircfmt.Strip(err.Error()))
	return werr
}
