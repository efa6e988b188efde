package charart

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255.
type RGB struct {
	R, G, B uint8
}

// RGBFromHex parses a hex color of the form "#RRGGBB" or "RRGGBB".
// It returns a ConfigError for any other format.
func RGBFromHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, configErrorf("hex color %q must be #RRGGBB or RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, configErrorf("hex color %q must be #RRGGBB or RRGGBB", s)
	}
	return rgbFromUint32(uint32(v)), nil
}

// rgbFromUint32 converts a 32-bit unsigned integer to an RGB color.
func rgbFromUint32(c uint32) RGB {
	return RGB{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
	}
}

// Luma returns the perceptual brightness of the color using the
// BT.601 weighting, computed in integer math with rounding.
func (c RGB) Luma() uint8 {
	lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
	if lum > 255 {
		lum = 255
	}
	return uint8(lum)
}

// scale multiplies each channel by factor, rounding and clamping the
// result to [0, 255].
func (c RGB) scale(factor float64) RGB {
	clamp := func(v float64) uint8 {
		r := math.Round(v)
		if r < 0 {
			return 0
		}
		if r > 255 {
			return 255
		}
		return uint8(r)
	}
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// toColor converts an RGB to an opaque color.RGBA.
func (c RGB) toColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
