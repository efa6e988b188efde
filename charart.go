// Package charart renders a raster image as a grid of font glyphs,
// where each glyph's identity and shade encode the local brightness of
// the source. The output is itself a raster: character cells are
// sampled from the source with aspect-ratio correction, mapped through
// an ordered glyph ramp, and drawn in shades derived from a single
// base color.
package charart

import (
	"image"
	"image/draw"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wbrown/charart/imageutil"
)

// DefaultCharset is the default glyph ramp, ordered sparse (light)
// to dense (dark).
const DefaultCharset = " .:-=+*#%@$"

// Renderer encapsulates the resolved configuration for one conversion.
// Exported fields may be set directly or through options; they are
// read-only for the duration of a Render call. A Renderer is safe for
// repeated use; identical inputs produce byte-identical canvases.
type Renderer struct {
	CharWidth      int     // output width in characters
	Charset        []rune  // glyph ramp, sparse to dense
	AspectRatio    float64 // cell width / cell height correction factor
	FontPath       string  // empty = fallback search list
	FontSize       float64 // point size for font-derived metrics
	CellWidth      int     // explicit cell pixel width, 0 = font-derived
	CellHeight     int     // explicit cell pixel height, 0 = font-derived
	PosterizeBits  int     // 0 = off, 1..8 = channel depth
	SkipSpace      bool    // leave background when ramp[0] is a space
	BaseColor      RGB     // seed for the shade palette
	ColorMode      bool    // per-cell average color instead of the palette
	MaxSourceWidth int     // 0 = off, else downscale wider sources first
	Workers        int     // 0 = GOMAXPROCS

	face *Face // injected face overrides FontPath
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer with the given options applied over
// the defaults: 80 characters wide, the default charset, 0.5 aspect
// correction, 15 point fonts, posterization off.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		CharWidth:   80,
		Charset:     []rune(DefaultCharset),
		AspectRatio: 0.5,
		FontSize:    15,
		BaseColor:   RGB{R: 255, G: 255, B: 255},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithCharWidth sets the output width in characters.
func WithCharWidth(chars int) RendererOption {
	return func(r *Renderer) { r.CharWidth = chars }
}

// WithCharset sets the glyph ramp, ordered sparse to dense.
func WithCharset(charset string) RendererOption {
	return func(r *Renderer) { r.Charset = []rune(charset) }
}

// WithAspectRatio sets the cell width/height correction factor.
func WithAspectRatio(aspect float64) RendererOption {
	return func(r *Renderer) { r.AspectRatio = aspect }
}

// WithFont sets the font path and point size. An empty path selects
// the fallback search list.
func WithFont(path string, size float64) RendererOption {
	return func(r *Renderer) {
		r.FontPath = path
		r.FontSize = size
	}
}

// WithFace injects an already-loaded face, bypassing font loading.
func WithFace(face *Face) RendererOption {
	return func(r *Renderer) { r.face = face }
}

// WithCellSize sets explicit cell pixel dimensions, overriding the
// font-derived metrics. A zero leaves that dimension font-derived.
func WithCellSize(w, h int) RendererOption {
	return func(r *Renderer) {
		r.CellWidth = w
		r.CellHeight = h
	}
}

// WithPosterizeBits sets the channel depth for posterization; 0
// disables it.
func WithPosterizeBits(bits int) RendererOption {
	return func(r *Renderer) { r.PosterizeBits = bits }
}

// WithSkipSpace leaves the background visible for the lightest cells
// when the ramp's sparsest glyph is a space.
func WithSkipSpace(skip bool) RendererOption {
	return func(r *Renderer) { r.SkipSpace = skip }
}

// WithBaseColor sets the seed color for the shade palette.
func WithBaseColor(c RGB) RendererOption {
	return func(r *Renderer) { r.BaseColor = c }
}

// WithColorMode shades each cell with its own average color instead of
// the fixed palette.
func WithColorMode(enabled bool) RendererOption {
	return func(r *Renderer) { r.ColorMode = enabled }
}

// WithMaxSourceWidth downscales sources wider than max before
// sampling; 0 disables the prescale.
func WithMaxSourceWidth(max int) RendererOption {
	return func(r *Renderer) { r.MaxSourceWidth = max }
}

// WithWorkers sets the sampling and rasterization parallelism.
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) { r.Workers = n }
}

// validate rejects any configuration that can never render. All
// checks run before any pixel work so a bad config never partially
// writes output.
func (r *Renderer) validate() error {
	if len(r.Charset) == 0 {
		return configErrorf("charset must not be empty")
	}
	if r.CharWidth < 1 {
		return configErrorf("character width %d must be at least 1", r.CharWidth)
	}
	if r.PosterizeBits < 0 || r.PosterizeBits > 8 {
		return configErrorf("posterize bits %d must be in [0, 8]", r.PosterizeBits)
	}
	if r.AspectRatio <= 0 {
		return configErrorf("aspect ratio correction %g must be positive", r.AspectRatio)
	}
	if r.CellWidth < 0 || r.CellHeight < 0 {
		return configErrorf("cell dimensions %dx%d must not be negative",
			r.CellWidth, r.CellHeight)
	}
	if r.MaxSourceWidth < 0 {
		return configErrorf("max source width %d must not be negative", r.MaxSourceWidth)
	}
	return nil
}

// resolveFace returns the glyph rasterization capability: the injected
// face, the configured font path, or the fallback search list.
func (r *Renderer) resolveFace() (*Face, error) {
	if r.face != nil {
		return r.face, nil
	}
	if r.FontPath != "" {
		return LoadFace(r.FontPath, r.FontSize)
	}
	return SearchFace(r.FontSize)
}

// Render converts src through the full pipeline and returns the output
// canvas. src is read-only for the duration of the call.
func (r *Renderer) Render(src *imageutil.RGBAImage) (*image.RGBA, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	face, err := r.resolveFace()
	if err != nil {
		return nil, err
	}

	cellW, cellH := face.CellMetrics()
	if r.CellWidth > 0 {
		cellW = r.CellWidth
	}
	if r.CellHeight > 0 {
		cellH = r.CellHeight
	}

	if r.MaxSourceWidth > 0 && src.Width() > r.MaxSourceWidth {
		src = imageutil.ResizeToWidth(src, r.MaxSourceWidth, imageutil.InterpolationArea)
	}
	if r.PosterizeBits > 0 {
		src = imageutil.Posterize(src, r.PosterizeBits)
	}

	grid, err := planGrid(src.Width(), src.Height(), r.CharWidth,
		r.AspectRatio, cellW, cellH)
	if err != nil {
		return nil, err
	}

	palette, err := NewShadePalette(r.BaseColor, len(r.Charset))
	if err != nil {
		return nil, err
	}

	workers := r.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	gray := imageutil.ToGrayscale(src)
	cells := sampleCells(src, gray, grid, r.ColorMode, workers)
	for i := range cells {
		cells[i].Index = toneIndex(cells[i].Luma, palette.Len())
	}

	canvas := image.NewRGBA(grid.CanvasBounds())
	draw.Draw(canvas, canvas.Bounds(),
		image.NewUniform(palette.Background().toColor()), image.Point{}, draw.Src)

	if err := r.rasterize(canvas, grid, cells, palette, face, workers); err != nil {
		return nil, err
	}
	return canvas, nil
}

// rasterize draws every cell's glyph onto the canvas. Rows are
// interleaved across workers; each worker owns a scribe, and clip
// rects keep writes inside each cell's disjoint target region, so no
// locking is needed beyond the final barrier.
func (r *Renderer) rasterize(canvas *image.RGBA, g *Grid, cells []Cell,
	palette *ShadePalette, face *Face, workers int) error {
	if workers > g.Rows {
		workers = g.Rows
	}

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			scribe := face.newScribe(canvas)
			defer scribe.Close()

			for row := w; row < g.Rows; row += workers {
				for col := 0; col < g.Cols; col++ {
					c := &cells[row*g.Cols+col]
					if r.SkipSpace && c.Index == 0 && r.Charset[0] == ' ' {
						continue
					}
					shade := palette.Shade(c.Index)
					if r.ColorMode {
						shade = c.AvgColor.scale(float64(c.Index+1) / float64(palette.Len()))
					}
					if err := scribe.drawGlyph(r.Charset[c.Index],
						g.cellTarget(col, row), shade); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	return eg.Wait()
}

// RenderFile runs the pipeline from an image file to an output raster
// file. Decode failures surface as ResourceError, write failures as
// IOError.
func (r *Renderer) RenderFile(inputPath, outputPath string) error {
	src, err := imageutil.LoadImage(inputPath)
	if err != nil {
		return &ResourceError{Resource: "image", Path: inputPath, Err: err}
	}

	canvas, err := r.Render(src)
	if err != nil {
		return err
	}

	if err := imageutil.SaveImage(canvas, outputPath); err != nil {
		return &IOError{Path: outputPath, Err: err}
	}
	return nil
}
