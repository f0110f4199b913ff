package markup

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"sync"

	"golang.org/x/text/cases"
)

// Color is an RGB triple
type Color struct {
	R, G, B uint8
}

var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// RGB builds a Color from integer channels, clamping each to [0,255]
func RGB(r, g, b int) Color {
	return Color{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// Hex returns the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes the color as #rrggbb
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts #rrggbb
func (c *Color) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) != 7 || !hexColorPattern.MatchString(s) {
		return fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", s, err)
	}
	*c = Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
	return nil
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// defaultColors seeds every new ColorTable
var defaultColors = map[string]Color{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 255, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"gray":    {128, 128, 128},
	"orange":  {255, 165, 0},
	"purple":  {128, 0, 128},
	"pink":    {255, 192, 203},
	"brown":   {165, 42, 42},
}

// ColorTable is a case-insensitive registry of named colors.
//
// Tables are owned by the caller and handed to a Formatter. Reads and writes
// are guarded, so one table may back several formatters.
type ColorTable struct {
	mu     sync.RWMutex
	colors map[string]Color
}

// NewColorTable returns a table seeded with the standard named colors
func NewColorTable() *ColorTable {
	return &ColorTable{colors: maps.Clone(defaultColors)}
}

// NewEmptyColorTable returns a table with no entries
func NewEmptyColorTable() *ColorTable {
	return &ColorTable{colors: make(map[string]Color)}
}

// Add registers or overwrites a named color
func (t *ColorTable) Add(name string, c Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.colors[foldName(name)] = c
}

// Lookup returns the color registered under name
func (t *ColorTable) Lookup(name string) (Color, bool) {
	if t == nil {
		return Color{}, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.colors[foldName(name)]
	return c, ok
}

// Names returns the registered names in sorted order
func (t *ColorTable) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.colors))
}

// Snapshot returns a copy of the table contents
func (t *ColorTable) Snapshot() map[string]Color {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return maps.Clone(t.colors)
}

// Len returns the number of registered names
func (t *ColorTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.colors)
}

func foldName(name string) string {
	return cases.Fold().String(name)
}

var (
	hexColorPattern   = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	tupleColorPattern = regexp.MustCompile(`^\((\d{1,3}),(\d{1,3}),(\d{1,3})\)$`)
	colorListPattern  = regexp.MustCompile(`#[A-Fa-f0-9]{3,6}|\([^)]*\)|[^,\s]+`)
)

// ParseColor resolves a hex code, an (r,g,b) tuple or a registered name.
// Anything else resolves to White.
//
// Hex digits are read as one 24-bit number, so "#abc" is 0x000abc rather
// than the CSS shorthand for #aabbcc. Tuple channels above 255 are clamped.
func (t *ColorTable) ParseColor(text string) Color {
	c, ok := t.Resolve(text)
	if !ok {
		return White
	}
	return c
}

// Resolve is ParseColor without the White fallback
func (t *ColorTable) Resolve(text string) (Color, bool) {
	if hexColorPattern.MatchString(text) {
		v, err := strconv.ParseUint(text[1:], 16, 32)
		if err == nil {
			return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
		}
	}

	if m := tupleColorPattern.FindStringSubmatch(text); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		return RGB(r, g, b), true
	}

	return t.Lookup(text)
}

// ParseColors resolves a comma or space separated list such as
// "red,#00ff00,(0,0,255)". Each entry is resolved on its own.
func (t *ColorTable) ParseColors(raw string) []Color {
	matches := colorListPattern.FindAllString(raw, -1)
	colors := make([]Color, 0, len(matches))
	for _, m := range matches {
		colors = append(colors, t.ParseColor(m))
	}
	return colors
}
