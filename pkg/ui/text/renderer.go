// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/muesli/reflow/wordwrap"

	"github.com/arthur-debert/tagtint/pkg/markup"
)

// Renderer writes the plain projection of a result
type Renderer struct {
	output io.Writer
	width  int
}

// New creates a new text renderer. A positive width wraps output at that column.
func New(output io.Writer, width int) *Renderer {
	return &Renderer{output: output, width: width}
}

// RenderResult writes the plain text of res
func (r *Renderer) RenderResult(res markup.Result) error {
	out := res.Plain
	if r.width > 0 {
		out = wordwrap.String(out, r.width)
	}
	_, err := fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}
