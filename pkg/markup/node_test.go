package markup_test

import (
	"testing"

	"github.com/arthur-debert/tagtint/pkg/markup"
	"github.com/stretchr/testify/assert"
)

func TestNodeWithIsFunctional(t *testing.T) {
	inner := markup.Group(
		markup.Leaf("a", markup.Style{}),
		markup.Group(markup.Leaf("b", markup.Style{Italic: true})),
	)

	bold := inner.With(markup.SetBold)

	for _, leaf := range inner.Leaves() {
		assert.False(t, leaf.Style().Bold, "original tree must be untouched")
	}
	leaves := bold.Leaves()
	assert.Equal(t, markup.Style{Bold: true}, leaves[0].Style())
	assert.Equal(t, markup.Style{Bold: true, Italic: true}, leaves[1].Style())
	assert.Equal(t, "ab", bold.PlainText())
}

func TestSetLinkUnderlines(t *testing.T) {
	n := markup.Leaf("x", markup.Style{}).With(markup.SetLink("https://a.b"))
	assert.Equal(t, markup.Style{Link: "https://a.b", Underline: true}, n.Style())
	assert.True(t, n.IsLeaf())
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;b&gt; &amp; &quot;x&quot; &#39;y&#39;", markup.EscapeHTML(`<b> & "x" 'y'`))
}
