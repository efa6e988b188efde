package charart

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// backgroundFactor is the fraction of the base color's intensity used
// for the canvas background, so cells left unrendered show a dim tint
// of the base hue instead of pure black.
const backgroundFactor = 0.10

// ShadePalette holds one color per ramp index, derived once per run
// from a single base color. Index 0 is the faintest shade; the last
// index is the base color at full intensity. The palette depends only
// on the base color and ramp length, never on image content.
type ShadePalette struct {
	shades     []RGB
	background RGB
}

// NewShadePalette derives n shades of base, scaling its intensity by
// (i+1)/n for index i. It returns a ConfigError when n < 1.
func NewShadePalette(base RGB, n int) (*ShadePalette, error) {
	if n < 1 {
		return nil, configErrorf("shade count %d must be at least 1", n)
	}

	bc := colorful.Color{
		R: float64(base.R) / 255.0,
		G: float64(base.G) / 255.0,
		B: float64(base.B) / 255.0,
	}

	shades := make([]RGB, n)
	for i := range shades {
		factor := float64(i+1) / float64(n)
		c := colorful.Color{R: bc.R * factor, G: bc.G * factor, B: bc.B * factor}
		r, g, b := c.Clamped().RGB255()
		shades[i] = RGB{R: r, G: g, B: b}
	}

	bgR, bgG, bgB := colorful.Color{
		R: bc.R * backgroundFactor,
		G: bc.G * backgroundFactor,
		B: bc.B * backgroundFactor,
	}.Clamped().RGB255()

	return &ShadePalette{
		shades:     shades,
		background: RGB{R: bgR, G: bgG, B: bgB},
	}, nil
}

// Len returns the number of shades in the palette.
func (p *ShadePalette) Len() int { return len(p.shades) }

// Shade returns the color for the given ramp index, clamped to the
// palette bounds.
func (p *ShadePalette) Shade(idx int) RGB {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.shades) {
		idx = len(p.shades) - 1
	}
	return p.shades[idx]
}

// Background returns the canvas background color.
func (p *ShadePalette) Background() RGB { return p.background }
