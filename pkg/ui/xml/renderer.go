// Package xml renders the styled tree as an XML document.
//
//	<markup plain="Hi there">
//	  <span bold="true">Hi </span>
//	  <group>
//	    <span color="#ff0000">there</span>
//	  </group>
//	</markup>
//
// The document is written without indentation so whitespace-only spans survive.
package xml

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/arthur-debert/tagtint/pkg/markup"
)

// Renderer writes one XML document per result
type Renderer struct {
	output io.Writer
}

// New creates a new XML renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// NewDocument builds the etree document for res
func NewDocument(res markup.Result) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("markup")
	root.CreateAttr("plain", res.Plain)
	appendNode(root, res.Root)
	return doc
}

func appendNode(parent *etree.Element, n markup.Node) {
	if !n.IsLeaf() {
		group := parent.CreateElement("group")
		for _, c := range n.Children() {
			appendNode(group, c)
		}
		return
	}

	span := parent.CreateElement("span")
	style := n.Style()
	setFlag(span, "bold", style.Bold)
	setFlag(span, "italic", style.Italic)
	setFlag(span, "underline", style.Underline)
	setFlag(span, "monospace", style.Monospace)
	if style.Color != nil {
		span.CreateAttr("color", style.Color.Hex())
	}
	if style.Link != "" {
		span.CreateAttr("href", style.Link)
	}
	span.SetText(n.Text())
}

func setFlag(el *etree.Element, name string, on bool) {
	if on {
		el.CreateAttr(name, strconv.FormatBool(on))
	}
}

// RenderResult writes res as an XML document followed by a newline
func (r *Renderer) RenderResult(res markup.Result) error {
	if _, err := NewDocument(res).WriteTo(r.output); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.output)
	return err
}

// RenderError writes an <error> document
func (r *Renderer) RenderError(err error) error {
	doc := etree.NewDocument()
	doc.CreateElement("error").SetText(err.Error())
	if _, werr := doc.WriteTo(r.output); werr != nil {
		return werr
	}
	_, werr := fmt.Fprintln(r.output)
	return werr
}
