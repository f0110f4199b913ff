package markup

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// GradientColor returns the color at progress (0..1) along a piecewise
// linear gradient through colors.
func GradientColor(colors []Color, progress float64) Color {
	switch len(colors) {
	case 0:
		return White
	case 1:
		return colors[0]
	}

	p := math.Min(math.Max(progress, 0), 1)
	scaled := p * float64(len(colors)-1)
	segment := int(scaled)
	if segment > len(colors)-2 {
		segment = len(colors) - 2
	}
	local := scaled - float64(segment)

	from, to := colors[segment], colors[segment+1]
	return Color{
		R: lerpChannel(from.R, to.R, local),
		G: lerpChannel(from.G, to.G, local),
		B: lerpChannel(from.B, to.B, local),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	return clampChannel(int(v))
}

// HueColor converts a hue in [0,1] to RGB at full saturation and brightness.
// Hues outside the range wrap, so 1.0 is red again.
func HueColor(hue float64) Color {
	h := hue - math.Floor(hue)
	r, g, b := colorful.Hsv(h*360, 1, 1).RGB255()
	return Color{R: r, G: g, B: b}
}

// Gradient colors every character of text along colors
func Gradient(text string, colors []Color) Node {
	chars := []rune(text)
	n := len(chars)
	leaves := make([]Node, 0, n)
	for i, ch := range chars {
		progress := 0.0
		if n > 1 {
			progress = float64(i) / float64(n-1)
		}
		c := GradientColor(colors, progress)
		leaves = append(leaves, Leaf(string(ch), Style{Color: &c}))
	}
	return Group(leaves...)
}

// Rainbow sweeps the full hue circle across the characters of text
func Rainbow(text string) Node {
	chars := []rune(text)
	span := max(len(chars)-1, 1)
	leaves := make([]Node, 0, len(chars))
	for i, ch := range chars {
		c := HueColor(float64(i) / float64(span))
		leaves = append(leaves, Leaf(string(ch), Style{Color: &c}))
	}
	return Group(leaves...)
}
