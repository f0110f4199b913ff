// Package cells flattens markup into styled screen cells for tcell based UIs
package cells

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/arthur-debert/tagtint/pkg/markup"
)

// Cell is one rune and the style it is drawn with
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// StyleFor converts a markup style to a tcell style on top of base.
// Monospace is dropped since every cell is fixed width.
func StyleFor(base tcell.Style, s markup.Style) tcell.Style {
	style := base.Bold(s.Bold).Italic(s.Italic).Underline(s.Underline)
	if s.Color != nil {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Color.R), int32(s.Color.G), int32(s.Color.B)))
	}
	if s.Link != "" {
		style = style.Url(s.Link)
	}
	return style
}

// FromNode flattens node into cells styled on top of base
func FromNode(base tcell.Style, node markup.Node) []Cell {
	var out []Cell
	for _, leaf := range node.Leaves() {
		style := StyleFor(base, leaf.Style())
		for _, r := range leaf.Text() {
			out = append(out, Cell{Rune: r, Style: style})
		}
	}
	return out
}

// Draw puts cells on screen starting at (x, y). A newline moves to the next
// row at column x and cells past the right edge are clipped. It returns the
// position after the last cell.
func Draw(screen tcell.Screen, x, y int, cells []Cell) (int, int) {
	width, height := screen.Size()
	cx, cy := x, y
	for _, c := range cells {
		if c.Rune == '\n' {
			cx, cy = x, cy+1
			continue
		}
		w := runewidth.RuneWidth(c.Rune)
		if w == 0 {
			continue
		}
		if cy < height && cx+w <= width {
			screen.SetContent(cx, cy, c.Rune, nil, c.Style)
		}
		cx += w
	}
	return cx, cy
}
