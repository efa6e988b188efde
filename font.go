package charart

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// fallbackFontNames is the ordered candidate list tried when no font
// path is configured. The embedded Go Mono face is the final fallback
// once the list is exhausted.
var fallbackFontNames = []string{
	"DejaVuSansMono.ttf",
	"Consolas.ttf",
	"Courier New.ttf",
	"Menlo.ttf",
	"LiberationMono-Regular.ttf",
}

// fallbackFontDirs are the directories each candidate name is resolved
// against, in order. The empty entry tries the bare name relative to
// the working directory.
var fallbackFontDirs = []string{
	"",
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/truetype/liberation",
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"/Library/Fonts",
	"/System/Library/Fonts",
	`C:\Windows\Fonts`,
}

// Face pairs a parsed TrueType font with the point size it renders at.
// A Face is immutable after creation and safe to share; the drawing
// state built from it (see newScribe) is not, and each concurrent
// renderer worker gets its own.
type Face struct {
	font *truetype.Font
	size float64
	name string
}

// LoadFace loads a TrueType font from path at the given point size.
func LoadFace(path string, size float64) (*Face, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceError{Resource: "font", Path: path, Err: err}
	}

	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, &ResourceError{Resource: "font", Path: path, Err: err}
	}

	return &Face{font: ttf, size: size, name: path}, nil
}

// SearchFace tries each candidate in the fallback font list in order
// and returns the first that loads. A candidate that fails to load is
// skipped; only exhaustion of the whole list, embedded face included,
// is an error.
func SearchFace(size float64) (*Face, error) {
	for _, name := range fallbackFontNames {
		for _, dir := range fallbackFontDirs {
			path := name
			if dir != "" {
				path = filepath.Join(dir, name)
			}
			if face, err := LoadFace(path, size); err == nil {
				return face, nil
			}
		}
	}
	return EmbeddedFace(size)
}

// EmbeddedFace returns the built-in Go Mono face at the given size.
func EmbeddedFace(size float64) (*Face, error) {
	ttf, err := freetype.ParseFont(gomono.TTF)
	if err != nil {
		return nil, &ResourceError{Resource: "font", Path: "gomono (embedded)", Err: err}
	}
	return &Face{font: ttf, size: size, name: "gomono (embedded)"}, nil
}

// Name returns the path or identifier the face was loaded from.
func (f *Face) Name() string { return f.name }

// CellMetrics returns the pixel dimensions of one character cell for
// this face: the advance of 'M' by the ascent plus descent. Either
// value is floored at 1.
func (f *Face) CellMetrics() (w, h int) {
	face := truetype.NewFace(f.font, &truetype.Options{
		Size:    f.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	if adv, ok := face.GlyphAdvance('M'); ok {
		w = adv.Ceil()
	}
	m := face.Metrics()
	h = (m.Ascent + m.Descent).Ceil()

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// glyphScribe is the per-worker drawing state for one canvas: a
// freetype context plus a metrics face. Scribes must not be shared
// across goroutines; clip rects keep concurrent scribes writing to
// disjoint cell regions of the same canvas.
type glyphScribe struct {
	ctx  *freetype.Context
	face font.Face
}

// newScribe builds a scribe targeting dst.
func (f *Face) newScribe(dst *image.RGBA) *glyphScribe {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f.font)
	ctx.SetFontSize(f.size)
	ctx.SetDst(dst)
	ctx.SetHinting(font.HintingFull)

	face := truetype.NewFace(f.font, &truetype.Options{
		Size:    f.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	return &glyphScribe{ctx: ctx, face: face}
}

// Close releases the scribe's glyph buffers.
func (s *glyphScribe) Close() error { return s.face.Close() }

// drawGlyph renders r centered in target using shade. Drawing is
// clipped to target, so a glyph wider than its cell never touches a
// neighboring cell's region.
func (s *glyphScribe) drawGlyph(r rune, target image.Rectangle, shade RGB) error {
	s.ctx.SetClip(target)
	s.ctx.SetSrc(image.NewUniform(shade.toColor()))

	var advance int
	if adv, ok := s.face.GlyphAdvance(r); ok {
		advance = adv.Round()
	}
	m := s.face.Metrics()

	x := target.Min.X + (target.Dx()-advance)/2
	baseline := target.Min.Y + (target.Dy()+m.Ascent.Round()-m.Descent.Round())/2

	if _, err := s.ctx.DrawString(string(r), freetype.Pt(x, baseline)); err != nil {
		return fmt.Errorf("failed to draw glyph %q: %w", r, err)
	}
	return nil
}
