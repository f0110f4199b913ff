package markup

import (
	"math/rand/v2"
	"strings"
	"time"
	"unicode"
)

// Replacement symbols come from this band of printable ASCII ('!' through '/')
const (
	symbolBandStart = 33
	symbolBandSize  = 15
)

// Obfuscate replaces every non-whitespace character of s with a random
// letter, digit or symbol. Uppercase sources get uppercased replacements.
// The result has the same number of characters as s.
func Obfuscate(s string, rng *rand.Rand) string {
	if rng == nil {
		rng = newRand()
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}

		var ch rune
		switch rng.IntN(3) {
		case 0:
			ch = 'a' + rune(rng.IntN(26))
		case 1:
			ch = '0' + rune(rng.IntN(10))
		default:
			ch = rune(symbolBandStart + rng.IntN(symbolBandSize))
		}
		if unicode.IsUpper(r) {
			ch = unicode.ToUpper(ch)
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
}
