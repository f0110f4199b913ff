package markup

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes & < > " and ' as HTML entities
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
