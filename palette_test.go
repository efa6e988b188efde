package charart

import (
	"errors"
	"testing"
)

func TestShadePaletteLengthAndEndpoints(t *testing.T) {
	t.Parallel()

	base := RGB{R: 0x44, G: 0xcc, B: 0xaa}
	for n := 1; n <= 16; n++ {
		p, err := NewShadePalette(base, n)
		if err != nil {
			t.Fatalf("NewShadePalette(n=%d) failed: %v", n, err)
		}
		if p.Len() != n {
			t.Errorf("n=%d: palette has %d shades", n, p.Len())
		}
		if got := p.Shade(n - 1); got != base {
			t.Errorf("n=%d: last shade = %v, want base %v", n, got, base)
		}
	}
}

func TestShadePaletteMonotonicIntensity(t *testing.T) {
	t.Parallel()

	p, err := NewShadePalette(RGB{R: 200, G: 120, B: 40}, 11)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < p.Len(); i++ {
		prev, cur := p.Shade(i-1), p.Shade(i)
		if cur.Luma() < prev.Luma() {
			t.Errorf("shade %d luma %d < shade %d luma %d",
				i, cur.Luma(), i-1, prev.Luma())
		}
		if cur.R < prev.R || cur.G < prev.G || cur.B < prev.B {
			t.Errorf("shade %d %v decreases a channel from %v", i, cur, prev)
		}
	}
}

func TestShadePaletteBackground(t *testing.T) {
	t.Parallel()

	base := RGB{R: 250, G: 100, B: 50}
	p, err := NewShadePalette(base, 4)
	if err != nil {
		t.Fatal(err)
	}
	// Background is a dim tint of the base hue, strictly fainter
	// than the faintest shade.
	bg := p.Background()
	if bg == (RGB{}) {
		t.Error("background should not be pure black for a bright base")
	}
	if bg.Luma() >= p.Shade(0).Luma() {
		t.Errorf("background luma %d should be below shade 0 luma %d",
			bg.Luma(), p.Shade(0).Luma())
	}
}

func TestShadePaletteImageIndependent(t *testing.T) {
	t.Parallel()

	base := RGB{R: 10, G: 20, B: 30}
	p1, err := NewShadePalette(base, 7)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := NewShadePalette(base, 7)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 7; i++ {
		if p1.Shade(i) != p2.Shade(i) {
			t.Errorf("shade %d differs between identical derivations", i)
		}
	}
}

func TestShadePaletteInvalidLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1} {
		_, err := NewShadePalette(RGB{}, n)
		if err == nil {
			t.Errorf("NewShadePalette(n=%d) should fail", n)
			continue
		}
		var confErr *ConfigError
		if !errors.As(err, &confErr) {
			t.Errorf("n=%d: error should be a ConfigError, got %T", n, err)
		}
	}
}

func TestShadePaletteIndexClamped(t *testing.T) {
	t.Parallel()

	p, err := NewShadePalette(RGB{R: 100, G: 100, B: 100}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if p.Shade(-5) != p.Shade(0) {
		t.Error("negative index should clamp to the first shade")
	}
	if p.Shade(99) != p.Shade(2) {
		t.Error("overlarge index should clamp to the last shade")
	}
}
