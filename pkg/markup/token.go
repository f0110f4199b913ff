package markup

import "fmt"

// TokenKind identifies the lexical class of a Token
type TokenKind int

const (
	// TokenText is a literal run of text
	TokenText TokenKind = iota
	// TokenTagOpen carries the raw content between '<' and '>' (name plus attributes)
	TokenTagOpen
	// TokenTagClose carries the tag name of a '</name>' token
	TokenTagClose
)

// String returns the debug name of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "TEXT"
	case TokenTagOpen:
		return "TAG_OPEN"
	case TokenTagClose:
		return "TAG_CLOSE"
	default:
		return "UNKNOWN"
	}
}

// Token is one lexical unit produced by Tokenize
type Token struct {
	Kind  TokenKind
	Value string
}

func (t Token) String() string {
	return fmt.Sprintf("%s:'%s'", t.Kind, t.Value)
}
