// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/tagtint/pkg/markup"
)

// Document is the JSON shape of a formatted result
type Document struct {
	Plain string `json:"plain"`
	Tree  Node   `json:"tree"`
}

// Node mirrors markup.Node. Leaves carry text, composites carry children.
type Node struct {
	Text     string        `json:"text,omitempty"`
	HTML     string        `json:"html,omitempty"`
	Style    *markup.Style `json:"style,omitempty"`
	Children []Node        `json:"children,omitempty"`
}

// NewDocument converts a result to its JSON shape
func NewDocument(res markup.Result) Document {
	return Document{Plain: res.Plain, Tree: convert(res.Root)}
}

func convert(n markup.Node) Node {
	if n.IsLeaf() {
		out := Node{Text: n.Text(), HTML: n.Escaped()}
		if style := n.Style(); !style.IsZero() {
			out.Style = &style
		}
		return out
	}
	children := make([]Node, 0, len(n.Children()))
	for _, c := range n.Children() {
		children = append(children, convert(c))
	}
	return Node{Children: children}
}

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{
		output:  output,
		encoder: encoder,
	}
}

// RenderResult renders the result tree as JSON
func (r *Renderer) RenderResult(res markup.Result) error {
	return r.encoder.Encode(NewDocument(res))
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{
		"error": err.Error(),
	})
}
