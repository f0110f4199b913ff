package markup

import "strings"

// Tokenize scans input into text, open-tag and close-tag tokens.
//
// It never fails. A '<' without a matching '>' turns the rest of the input
// into a single text token.
func Tokenize(input string) []Token {
	var tokens []Token
	i := 0
	for i < len(input) {
		if input[i] != '<' {
			end := strings.IndexByte(input[i:], '<')
			if end == -1 {
				end = len(input)
			} else {
				end += i
			}
			tokens = append(tokens, Token{Kind: TokenText, Value: input[i:end]})
			i = end
			continue
		}

		end := strings.IndexByte(input[i+1:], '>')
		if end == -1 {
			tokens = append(tokens, Token{Kind: TokenText, Value: input[i:]})
			break
		}
		end += i + 1

		content := strings.TrimSpace(input[i+1 : end])
		if strings.HasPrefix(content, "/") {
			tokens = append(tokens, Token{Kind: TokenTagClose, Value: closeTagName(content[1:])})
		} else {
			tokens = append(tokens, Token{Kind: TokenTagOpen, Value: content})
		}
		i = end + 1
	}
	return tokens
}

// closeTagName returns the first whitespace-delimited word of a close tag body
func closeTagName(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
