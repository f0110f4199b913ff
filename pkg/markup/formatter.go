package markup

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// Result is the output of one Format call
type Result struct {
	Root  Node
	Plain string
}

// Formatter converts tagged strings into styled trees. A Formatter holds no
// per-call state and is safe for concurrent use.
type Formatter struct {
	colors  *ColorTable
	logger  zerolog.Logger
	newRand func() *rand.Rand
}

// Option configures a Formatter
type Option func(*Formatter)

// WithColorTable sets the named-color table the formatter reads from
func WithColorTable(table *ColorTable) Option {
	return func(f *Formatter) {
		f.colors = table
	}
}

// WithLogger sets the logger for trace output
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Formatter) {
		f.logger = logger
	}
}

// WithRandSource makes obfuscation draw from sources built by fn. Each
// Format call asks fn for a source.
func WithRandSource(fn func() *rand.Rand) Option {
	return func(f *Formatter) {
		f.newRand = fn
	}
}

// NewFormatter builds a Formatter. Without WithColorTable it gets its own
// table seeded with the standard colors.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		logger:  zerolog.Nop(),
		newRand: newRand,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.colors == nil {
		f.colors = NewColorTable()
	}
	return f
}

// Colors returns the formatter's color table
func (f *Formatter) Colors() *ColorTable {
	return f.colors
}

// AddColor registers or overwrites a named color for subsequent Format calls
func (f *Formatter) AddColor(name string, c Color) {
	f.colors.Add(name, c)
}

// Format tokenizes and parses input
func (f *Formatter) Format(input string) Result {
	tokens := Tokenize(input)
	f.logger.Trace().
		Int("tokens", len(tokens)).
		Int("length", len(input)).
		Msg("Tokenized input")

	root, plain := NewParser(tokens, f.colors, f.newRand()).
		WithLogger(f.logger).
		Parse()
	return Result{Root: root, Plain: plain}
}

var defaultFormatter = NewFormatter()

// Format formats input with the package default formatter
func Format(input string) Result {
	return defaultFormatter.Format(input)
}

// AddColor registers a named color on the package default formatter
func AddColor(name string, c Color) {
	defaultFormatter.AddColor(name, c)
}

// DefaultColors returns the color table of the package default formatter
func DefaultColors() *ColorTable {
	return defaultFormatter.Colors()
}
