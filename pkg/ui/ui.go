// Package ui renders formatted markup for the different output hosts.
// Every renderer consumes a markup.Result; the terminal, irc and xml
// renderers style each leaf, text emits the plain projection and json
// dumps the whole tree.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/tagtint/pkg/markup"
	"github.com/arthur-debert/tagtint/pkg/ui/irc"
	"github.com/arthur-debert/tagtint/pkg/ui/json"
	"github.com/arthur-debert/tagtint/pkg/ui/terminal"
	"github.com/arthur-debert/tagtint/pkg/ui/text"
	"github.com/arthur-debert/tagtint/pkg/ui/xml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult writes one formatted result
	RenderResult(res markup.Result) error

	// RenderError renders an error in the renderer's own format
	RenderError(err error) error
}

// Options tune renderer construction.
type Options struct {
	// Width wraps terminal, text and irc output at this column. Zero disables wrapping.
	Width int
	// ForceColor makes the terminal renderer emit true color even when output is not a tty
	ForceColor bool
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output, opts)
		}
		return NewRenderer(FormatText, output, opts)
	case FormatTerminal:
		topts := []terminal.Option{terminal.WithWidth(opts.Width)}
		if opts.ForceColor {
			topts = append(topts, terminal.WithTrueColor())
		}
		return terminal.New(output, topts...), nil
	case FormatText:
		return text.New(output, opts.Width), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatXML:
		return xml.New(output), nil
	case FormatIRC:
		return irc.New(output, opts.Width), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
