package charart

import (
	"errors"
	"testing"
)

func TestRGBFromHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want RGB
	}{
		{"#44ccaa", RGB{R: 0x44, G: 0xcc, B: 0xaa}},
		{"44ccaa", RGB{R: 0x44, G: 0xcc, B: 0xaa}},
		{"#000000", RGB{}},
		{"#FFFFFF", RGB{R: 255, G: 255, B: 255}},
	}
	for _, tt := range tests {
		got, err := RGBFromHex(tt.in)
		if err != nil {
			t.Errorf("RGBFromHex(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("RGBFromHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRGBFromHexInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "#fff", "#12345", "zzzzzz", "#44ccaa00"} {
		_, err := RGBFromHex(in)
		if err == nil {
			t.Errorf("RGBFromHex(%q) should fail", in)
			continue
		}
		var confErr *ConfigError
		if !errors.As(err, &confErr) {
			t.Errorf("RGBFromHex(%q) error should be a ConfigError, got %T", in, err)
		}
	}
}

func TestRGBLuma(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c    RGB
		want uint8
	}{
		{RGB{}, 0},
		{RGB{R: 255, G: 255, B: 255}, 255},
		{RGB{G: 255}, 150}, // 0.587 * 255, rounded
		{RGB{R: 255}, 76},  // 0.299 * 255, rounded
		{RGB{B: 255}, 29},  // 0.114 * 255, rounded
	}
	for _, tt := range tests {
		if got := tt.c.Luma(); got != tt.want {
			t.Errorf("Luma(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestRGBScale(t *testing.T) {
	t.Parallel()

	c := RGB{R: 100, G: 200, B: 50}
	if got := c.scale(0.5); got != (RGB{R: 50, G: 100, B: 25}) {
		t.Errorf("scale(0.5) = %v", got)
	}
	if got := c.scale(1.0); got != c {
		t.Errorf("scale(1.0) = %v, want identity", got)
	}
	// Overflow clamps rather than wrapping
	if got := c.scale(2.0); got != (RGB{R: 200, G: 255, B: 100}) {
		t.Errorf("scale(2.0) = %v", got)
	}
}
