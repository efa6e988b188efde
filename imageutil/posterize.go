package imageutil

import "math"

// Posterize quantizes each color channel to 2^bits discrete levels by
// rounding to the nearest multiple of 256/2^bits, clamped to [0, 255].
// bits must be in [1, 8]; bits of 8 is an identity mapping. The input
// image is not modified.
func Posterize(img *RGBAImage, bits int) *RGBAImage {
	step := 256.0 / float64(int(1)<<uint(bits))

	// One 256-entry table serves all three channels.
	var table [256]uint8
	for v := range table {
		q := math.Round(float64(v)/step) * step
		if q > 255 {
			q = 255
		}
		table[v] = uint8(q)
	}

	out := img.Clone()
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i] = table[out.Pix[i]]
		out.Pix[i+1] = table[out.Pix[i+1]]
		out.Pix[i+2] = table[out.Pix[i+2]]
	}
	return out
}
