package charart

import (
	"image"
	"math"
)

// Cell is one character-sized sampling region of the source image and
// its corresponding output target. Cells are created fresh per run,
// filled by the sampler, and consumed by the rasterizer.
type Cell struct {
	Col, Row int
	Bounds   image.Rectangle // covered source pixels, clamped to the image
	Luma     uint8
	AvgColor RGB
	Index    int // ramp index assigned by the tone mapper
}

// Grid describes the cell layout for a run: the character grid
// dimensions, the output pixel size of each cell, and the fractional
// source-pixel footprint each cell samples.
type Grid struct {
	Cols, Rows   int
	CellW, CellH int
	footW, footH float64
	srcW, srcH   int
}

// planGrid computes the cell layout. cols columns are fixed; the
// source rows sampled per cell are scaled by the rendered cell's
// aspect ratio so the output preserves the image's proportions when
// drawn at cellW x cellH pixels per cell.
func planGrid(srcW, srcH, cols int, aspect float64, cellW, cellH int) (*Grid, error) {
	if cols < 1 {
		return nil, configErrorf("character width %d must be at least 1", cols)
	}
	if aspect <= 0 {
		return nil, configErrorf("aspect ratio correction %g must be positive", aspect)
	}
	if cellW < 1 || cellH < 1 {
		return nil, configErrorf("cell dimensions %dx%d must be positive", cellW, cellH)
	}
	if srcW < 1 || srcH < 1 {
		return nil, configErrorf("image dimensions %dx%d must be positive", srcW, srcH)
	}

	footW := float64(srcW) / float64(cols)
	footH := footW / aspect * (float64(cellH) / float64(cellW))
	if footW <= 0 || footH <= 0 {
		return nil, configErrorf("cell footprint %gx%g must be positive", footW, footH)
	}

	rows := int(math.Round(float64(srcH) / footH))
	if rows < 1 {
		rows = 1
	}

	return &Grid{
		Cols:  cols,
		Rows:  rows,
		CellW: cellW,
		CellH: cellH,
		footW: footW,
		footH: footH,
		srcW:  srcW,
		srcH:  srcH,
	}, nil
}

// cellBounds returns the source pixel bounds covered by the cell at
// (col, row). Bounds are rounded per edge and clamped to the image
// extents, so edge cells may be empty when the footprint rounds away.
func (g *Grid) cellBounds(col, row int) image.Rectangle {
	x0 := int(math.Round(float64(col) * g.footW))
	x1 := int(math.Round(float64(col+1) * g.footW))
	y0 := int(math.Round(float64(row) * g.footH))
	y1 := int(math.Round(float64(row+1) * g.footH))

	r := image.Rect(x0, y0, x1, y1)
	return r.Intersect(image.Rect(0, 0, g.srcW, g.srcH))
}

// CanvasBounds returns the pixel dimensions of the output canvas.
func (g *Grid) CanvasBounds() image.Rectangle {
	return image.Rect(0, 0, g.Cols*g.CellW, g.Rows*g.CellH)
}

// cellTarget returns the disjoint canvas region owned by the cell at
// (col, row). No two cells' targets overlap; this is what makes cell
// rendering order-independent.
func (g *Grid) cellTarget(col, row int) image.Rectangle {
	return image.Rect(col*g.CellW, row*g.CellH, (col+1)*g.CellW, (row+1)*g.CellH)
}

// toneIndex maps a luminance to a ramp index: dark cells map to high
// indices (dense glyphs, full shades), light cells to low indices.
// The mapping is monotonic and always lands in [0, n-1].
func toneIndex(luma uint8, n int) int {
	idx := int(255-luma) * n / 256
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}
