package markup

import "strings"

// Style is the presentation record carried by a leaf
type Style struct {
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Monospace bool   `json:"monospace,omitempty"`
	Color     *Color `json:"color,omitempty"`
	Link      string `json:"link,omitempty"`
}

// IsZero reports whether the style carries no attribute
func (s Style) IsZero() bool {
	return s == Style{}
}

// StyleOp rewrites one or more fields of a Style
type StyleOp func(Style) Style

// SetBold turns bold on
func SetBold(s Style) Style {
	s.Bold = true
	return s
}

// SetItalic turns italic on
func SetItalic(s Style) Style {
	s.Italic = true
	return s
}

// SetUnderline turns underline on
func SetUnderline(s Style) Style {
	s.Underline = true
	return s
}

// SetMonospace turns monospace on
func SetMonospace(s Style) Style {
	s.Monospace = true
	return s
}

// SetColor overrides the color
func SetColor(c Color) StyleOp {
	return func(s Style) Style {
		s.Color = &c
		return s
	}
}

// SetLink overrides the link target and underlines the text
func SetLink(url string) StyleOp {
	return func(s Style) Style {
		s.Link = url
		s.Underline = true
		return s
	}
}

// Node is either a leaf (text plus style) or a composite of ordered children.
//
// Nodes are values. With returns a rewritten copy and never touches the
// receiver.
type Node struct {
	text      string
	style     Style
	children  []Node
	composite bool
}

// Leaf builds a text node. text is the raw, unescaped run.
func Leaf(text string, style Style) Node {
	return Node{text: text, style: style}
}

// Group builds a composite node
func Group(children ...Node) Node {
	return Node{children: children, composite: true}
}

// IsLeaf reports whether n is a leaf
func (n Node) IsLeaf() bool { return !n.composite }

// Text is the raw text of a leaf; empty for composites
func (n Node) Text() string { return n.text }

// Escaped is the HTML-escaped text of a leaf, the form handed to markup hosts
func (n Node) Escaped() string { return EscapeHTML(n.text) }

// Style is the style of a leaf; zero for composites
func (n Node) Style() Style { return n.style }

// Children returns the children of a composite
func (n Node) Children() []Node { return n.children }

// With applies op to every leaf under n and returns the new tree
func (n Node) With(op StyleOp) Node {
	if !n.composite {
		n.style = op(n.style)
		return n
	}
	children := make([]Node, len(n.children))
	for i, child := range n.children {
		children[i] = child.With(op)
	}
	return Group(children...)
}

// Leaves flattens n into its leaves, in order
func (n Node) Leaves() []Node {
	var out []Node
	n.walk(func(leaf Node) { out = append(out, leaf) })
	return out
}

// PlainText concatenates the raw text of every leaf
func (n Node) PlainText() string {
	var b strings.Builder
	n.walk(func(leaf Node) { b.WriteString(leaf.text) })
	return b.String()
}

func (n Node) walk(fn func(Node)) {
	if !n.composite {
		fn(n)
		return
	}
	for _, child := range n.children {
		child.walk(fn)
	}
}
