package markup

import (
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog"
)

// Parser turns a token list into a styled tree with recursive descent.
//
// A Parser owns its cursor and is used for exactly one Parse call. Build a
// new one per input.
type Parser struct {
	tokens []Token
	pos    int
	colors *ColorTable
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewParser prepares a parser over tokens. colors may be nil, in which case
// only hex and tuple colors resolve. rng drives obfuscation; nil seeds a
// fresh source.
func NewParser(tokens []Token, colors *ColorTable, rng *rand.Rand) *Parser {
	if rng == nil {
		rng = newRand()
	}
	return &Parser{
		tokens: tokens,
		colors: colors,
		rng:    rng,
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger used for trace output
func (p *Parser) WithLogger(logger zerolog.Logger) *Parser {
	p.logger = logger
	return p
}

// Parse consumes every token and returns the tree and its plain text
func (p *Parser) Parse() (Node, string) {
	p.pos = 0
	return p.parseScope("", false)
}

// parseScope collects nodes until the close tag named closeName (when
// expectClose is set) or the end of input. Close tags that do not match are
// dropped.
func (p *Parser) parseScope(closeName string, expectClose bool) (Node, string) {
	var children []Node
	var text strings.Builder

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		p.pos++

		switch tok.Kind {
		case TokenText:
			children = append(children, Leaf(tok.Value, Style{}))
			text.WriteString(tok.Value)

		case TokenTagOpen:
			tag := ParseTag(tok.Value)
			inner, innerText := p.parseScope(tag.Name, true)
			node, out, ok := p.apply(tag, inner, innerText)
			if ok {
				children = append(children, node)
				text.WriteString(out)
			}

		case TokenTagClose:
			if expectClose && foldName(tok.Value) == foldName(closeName) {
				return Group(children...), text.String()
			}
			p.logger.Trace().
				Str("tag", tok.Value).
				Str("expected", closeName).
				Msg("Dropping unmatched close tag")
		}
	}

	return Group(children...), text.String()
}

// apply transforms the inner content of a tag. ok is false when the tag
// contributes nothing, which happens for an empty gradient or rainbow.
func (p *Parser) apply(tag Tag, inner Node, innerText string) (Node, string, bool) {
	switch tag.Kind {
	case TagBold:
		return inner.With(SetBold), innerText, true
	case TagItalic:
		return inner.With(SetItalic), innerText, true
	case TagUnderline:
		return inner.With(SetUnderline), innerText, true
	case TagMono:
		return inner.With(SetMonospace), innerText, true

	case TagColor:
		c := p.color(tag.Attrs.Get("value", "#ffffff"))
		return inner.With(SetColor(c)), innerText, true

	case TagLink:
		url := tag.Attrs.Get("value", innerText)
		return inner.With(SetLink(url)), innerText, true

	case TagGradient:
		colors := p.gradientColors(tag.Attrs)
		if innerText == "" || len(colors) == 0 {
			return Node{}, "", false
		}
		return Gradient(innerText, colors), innerText, true

	case TagRainbow:
		if innerText == "" {
			return Node{}, "", false
		}
		return Rainbow(innerText), innerText, true

	case TagObfuscate:
		obf := Obfuscate(innerText, p.rng)
		return Leaf(obf, Style{}), obf, true

	default:
		p.logger.Trace().Str("tag", tag.Name).Msg("Passing through unknown tag")
		return inner, innerText, true
	}
}

// gradientColors reads the color stops of a gradient tag. "colors" wins over
// "value"; otherwise from/to default to white and black.
func (p *Parser) gradientColors(attrs Attrs) []Color {
	if raw, ok := attrs["colors"]; ok {
		return p.colorList(raw)
	}
	if raw, ok := attrs["value"]; ok {
		return p.colorList(raw)
	}
	if attrs.Has("from") || attrs.Has("to") {
		return []Color{
			p.color(attrs.Get("from", "#ffffff")),
			p.color(attrs.Get("to", "#000000")),
		}
	}
	return []Color{White, Black}
}

// color resolves text against the table, falling back to White
func (p *Parser) color(text string) Color {
	c, ok := p.colors.Resolve(text)
	if !ok {
		p.logger.Trace().Str("color", text).Msg("Unknown color, using white")
		return White
	}
	return c
}

func (p *Parser) colorList(raw string) []Color {
	entries := colorListPattern.FindAllString(raw, -1)
	colors := make([]Color, 0, len(entries))
	for _, e := range entries {
		colors = append(colors, p.color(e))
	}
	return colors
}
