package xml_test

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tagtint/pkg/markup"
	"github.com/arthur-debert/tagtint/pkg/ui/xml"
)

func TestNewDocument(t *testing.T) {
	doc := xml.NewDocument(markup.Format("Hi <b><c=#00ff00>there</c></b> <a=https://go.dev>go</a>"))

	root := doc.SelectElement("markup")
	require.NotNil(t, root)
	assert.Equal(t, "Hi there go", root.SelectAttrValue("plain", ""))

	spans := collectSpans(root)
	require.Len(t, spans, 4)

	assert.Equal(t, "Hi ", spans[0].Text())
	assert.Empty(t, spans[0].Attr)

	assert.Equal(t, "there", spans[1].Text())
	assert.Equal(t, "true", spans[1].SelectAttrValue("bold", ""))
	assert.Equal(t, "#00ff00", spans[1].SelectAttrValue("color", ""))
	assert.Nil(t, spans[1].SelectAttr("italic"))

	assert.Equal(t, " ", spans[2].Text())

	assert.Equal(t, "https://go.dev", spans[3].SelectAttrValue("href", ""))
	assert.Equal(t, "true", spans[3].SelectAttrValue("underline", ""))
}

// collectSpans returns the span elements under el in document order
func collectSpans(el *etree.Element) []*etree.Element {
	var spans []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == "span" {
			spans = append(spans, child)
			continue
		}
		spans = append(spans, collectSpans(child)...)
	}
	return spans
}

func TestRenderResultRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, xml.New(&buf).RenderResult(markup.Format(`<m>a & b "c"</m>`)))

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(buf.Bytes()))

	span := parsed.FindElement("//span")
	require.NotNil(t, span)
	assert.Equal(t, `a & b "c"`, span.Text())
	assert.Equal(t, "true", span.SelectAttrValue("monospace", ""))
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, xml.New(&buf).RenderError(assert.AnError))
	assert.Equal(t, "<error>"+assert.AnError.Error()+"</error>\n", buf.String())
}
