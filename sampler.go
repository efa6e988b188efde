package charart

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wbrown/charart/imageutil"
)

// sampleCells reduces every grid cell to a luminance value and, when
// wantColor is set, the average color of its covered pixels. Rows are
// sampled concurrently; each cell touches only its own slot, so the
// group wait is the only synchronization needed.
func sampleCells(src *imageutil.RGBAImage, gray *imageutil.GrayImage,
	g *Grid, wantColor bool, workers int) []Cell {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	cells := make([]Cell, g.Cols*g.Rows)

	var eg errgroup.Group
	eg.SetLimit(workers)
	for row := 0; row < g.Rows; row++ {
		row := row
		eg.Go(func() error {
			for col := 0; col < g.Cols; col++ {
				c := &cells[row*g.Cols+col]
				c.Col, c.Row = col, row
				c.Bounds = g.cellBounds(col, row)
				if !c.Bounds.Empty() {
					sampleCell(src, gray, c, wantColor)
				}
			}
			return nil
		})
	}
	// Sampling never fails; the group is used as a barrier.
	_ = eg.Wait()

	fillEmptyCells(src, gray, g, cells, wantColor)
	return cells
}

// sampleCell averages the luminance (and optionally color) of every
// source pixel inside the cell's bounds.
func sampleCell(src *imageutil.RGBAImage, gray *imageutil.GrayImage,
	c *Cell, wantColor bool) {
	var lumSum, rSum, gSum, bSum, n int

	for y := c.Bounds.Min.Y; y < c.Bounds.Max.Y; y++ {
		for x := c.Bounds.Min.X; x < c.Bounds.Max.X; x++ {
			lumSum += int(gray.GetGray(x, y))
			if wantColor {
				px := src.GetRGB(x, y)
				rSum += int(px.R)
				gSum += int(px.G)
				bSum += int(px.B)
			}
			n++
		}
	}

	c.Luma = uint8((lumSum + n/2) / n)
	if wantColor {
		c.AvgColor = RGB{
			R: uint8((rSum + n/2) / n),
			G: uint8((gSum + n/2) / n),
			B: uint8((bSum + n/2) / n),
		}
	}
}

// fillEmptyCells assigns values to edge cells whose footprint rounded
// away to zero pixels. Each takes its left neighbor's value, else the
// cell above, else the nearest source pixel to its origin; visiting
// cells in row-major order makes the policy deterministic.
func fillEmptyCells(src *imageutil.RGBAImage, gray *imageutil.GrayImage,
	g *Grid, cells []Cell, wantColor bool) {
	for i := range cells {
		c := &cells[i]
		if !c.Bounds.Empty() {
			continue
		}
		switch {
		case c.Col > 0:
			prev := &cells[i-1]
			c.Luma, c.AvgColor = prev.Luma, prev.AvgColor
		case c.Row > 0:
			above := &cells[i-g.Cols]
			c.Luma, c.AvgColor = above.Luma, above.AvgColor
		default:
			x := clampInt(int(math.Round(float64(c.Col)*g.footW)), 0, g.srcW-1)
			y := clampInt(int(math.Round(float64(c.Row)*g.footH)), 0, g.srcH-1)
			c.Luma = gray.GetGray(x, y)
			if wantColor {
				px := src.GetRGB(x, y)
				c.AvgColor = RGB{R: px.R, G: px.G, B: px.B}
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
