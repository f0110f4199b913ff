package markup

import (
	"regexp"
	"strings"
)

// TagKind is the closed set of tags the parser understands
type TagKind int

const (
	TagUnknown TagKind = iota
	TagBold
	TagItalic
	TagUnderline
	TagMono
	TagColor
	TagLink
	TagGradient
	TagRainbow
	TagObfuscate
)

var tagKindNames = map[TagKind]string{
	TagUnknown:   "unknown",
	TagBold:      "bold",
	TagItalic:    "italic",
	TagUnderline: "underline",
	TagMono:      "mono",
	TagColor:     "color",
	TagLink:      "link",
	TagGradient:  "gradient",
	TagRainbow:   "rainbow",
	TagObfuscate: "obfuscated",
}

func (k TagKind) String() string {
	if name, ok := tagKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// tagKinds maps every accepted spelling to its kind
var tagKinds = map[string]TagKind{
	"b":          TagBold,
	"bold":       TagBold,
	"i":          TagItalic,
	"italic":     TagItalic,
	"u":          TagUnderline,
	"underline":  TagUnderline,
	"m":          TagMono,
	"mono":       TagMono,
	"c":          TagColor,
	"color":      TagColor,
	"a":          TagLink,
	"link":       TagLink,
	"gradient":   TagGradient,
	"rainbow":    TagRainbow,
	"o":          TagObfuscate,
	"obf":        TagObfuscate,
	"obfuscated": TagObfuscate,
}

// LookupTag resolves a tag name case-insensitively. Unrecognized names
// return TagUnknown.
func LookupTag(name string) TagKind {
	return tagKinds[foldName(name)]
}

// TagNames returns the spellings accepted for kind
func TagNames(kind TagKind) []string {
	var names []string
	for name, k := range tagKinds {
		if k == kind {
			names = append(names, name)
		}
	}
	return names
}

// Attrs holds the attributes of an open tag. The shorthand forms
// <tag=VALUE> and <tag VALUE> store under "value".
type Attrs map[string]string

// Get returns the attribute or fallback when the key is absent
func (a Attrs) Get(key, fallback string) string {
	if v, ok := a[key]; ok {
		return v
	}
	return fallback
}

// Has reports whether key is present
func (a Attrs) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Tag is a parsed open-tag token
type Tag struct {
	Name  string
	Kind  TagKind
	Attrs Attrs
}

var (
	tagNamePattern = regexp.MustCompile(`^([a-zA-Z]+)(.*)$`)
	attrPattern    = regexp.MustCompile(`(\w+)=(\([^)]*\)|\S+)`)
)

// ParseTag splits an open-tag token value into its name and attributes.
// The name is the leading run of letters; the remainder is attribute text.
// A tag spanning lines keeps its whole trimmed text as the name.
func ParseTag(raw string) Tag {
	name, rest := strings.TrimSpace(raw), ""
	if m := tagNamePattern.FindStringSubmatch(raw); m != nil {
		name, rest = m[1], strings.TrimSpace(m[2])
	}
	return Tag{
		Name:  name,
		Kind:  LookupTag(name),
		Attrs: ParseAttrs(rest),
	}
}

// ParseAttrs parses tag attribute text.
//
//	=VALUE              {"value": "VALUE"}
//	k=v k2=(a,b,c)      {"k": "v", "k2": "(a,b,c)"}
//	anything else       {"value": <trimmed text>}
func ParseAttrs(raw string) Attrs {
	attrs := Attrs{}
	s := strings.TrimSpace(raw)
	if s == "" {
		return attrs
	}

	if strings.HasPrefix(s, "=") {
		attrs["value"] = strings.TrimSpace(s[1:])
		return attrs
	}

	for _, m := range attrPattern.FindAllStringSubmatch(s, -1) {
		attrs[m[1]] = m[2]
	}
	if len(attrs) == 0 {
		attrs["value"] = s
	}
	return attrs
}
