package charart

import (
	"testing"

	"github.com/wbrown/charart/imageutil"
)

func uniformImage(w, h int, c RGB) *imageutil.RGBAImage {
	img := imageutil.NewRGBAImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGB(x, y, imageutil.RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return img
}

func TestSampleCellsUniformImage(t *testing.T) {
	t.Parallel()

	c := RGB{R: 120, G: 80, B: 200}
	src := uniformImage(40, 30, c)
	g, err := planGrid(src.Width(), src.Height(), 8, 0.5, 8, 16)
	if err != nil {
		t.Fatal(err)
	}

	cells := sampleCells(src, imageutil.ToGrayscale(src), g, false, 4)
	if len(cells) != g.Cols*g.Rows {
		t.Fatalf("got %d cells, want %d", len(cells), g.Cols*g.Rows)
	}
	want := c.Luma()
	for _, cell := range cells {
		if cell.Luma != want {
			t.Errorf("cell (%d,%d) luma = %d, want %d",
				cell.Col, cell.Row, cell.Luma, want)
		}
	}
}

func TestSampleCellsAverageColor(t *testing.T) {
	t.Parallel()

	// Half red, half blue: the single cell averages to the midpoint.
	src := imageutil.NewRGBAImage(2, 2)
	src.SetRGB(0, 0, imageutil.RGB{R: 255})
	src.SetRGB(0, 1, imageutil.RGB{R: 255})
	src.SetRGB(1, 0, imageutil.RGB{B: 255})
	src.SetRGB(1, 1, imageutil.RGB{B: 255})

	g, err := planGrid(2, 2, 1, 0.5, 8, 16)
	if err != nil {
		t.Fatal(err)
	}
	cells := sampleCells(src, imageutil.ToGrayscale(src), g, true, 1)
	got := cells[0].AvgColor
	if got.R != 128 || got.G != 0 || got.B != 128 {
		t.Errorf("average color = %v, want {128 0 128}", got)
	}
}

func TestSampleCellsEmptyEdgeFallback(t *testing.T) {
	t.Parallel()

	// More columns than source pixels: odd cells get a footprint that
	// rounds to zero width and must inherit a neighbor's value.
	src := imageutil.NewRGBAImage(2, 1)
	src.SetRGB(0, 0, imageutil.RGB{})                      // black
	src.SetRGB(1, 0, imageutil.RGB{R: 255, G: 255, B: 255}) // white

	g, err := planGrid(2, 1, 4, 1.0, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	cells := sampleCells(src, imageutil.ToGrayscale(src), g, false, 2)

	row := cells[:g.Cols]
	if row[0].Luma != 0 {
		t.Errorf("cell 0 luma = %d, want 0", row[0].Luma)
	}
	if row[1].Luma != row[0].Luma {
		t.Errorf("empty cell 1 luma = %d, want left neighbor's %d",
			row[1].Luma, row[0].Luma)
	}
	if row[2].Luma != 255 {
		t.Errorf("cell 2 luma = %d, want 255", row[2].Luma)
	}
	if row[3].Luma != row[2].Luma {
		t.Errorf("empty cell 3 luma = %d, want left neighbor's %d",
			row[3].Luma, row[2].Luma)
	}
}

func TestSampleCellsDeterministic(t *testing.T) {
	t.Parallel()

	src := imageutil.NewRGBAImage(33, 21)
	for y := 0; y < 21; y++ {
		for x := 0; x < 33; x++ {
			src.SetRGB(x, y, imageutil.RGB{
				R: uint8(x * 7), G: uint8(y * 11), B: uint8(x * y),
			})
		}
	}
	g, err := planGrid(33, 21, 13, 0.5, 7, 13)
	if err != nil {
		t.Fatal(err)
	}

	gray := imageutil.ToGrayscale(src)
	first := sampleCells(src, gray, g, true, 8)
	second := sampleCells(src, gray, g, true, 1)
	for i := range first {
		if first[i].Luma != second[i].Luma || first[i].AvgColor != second[i].AvgColor {
			t.Fatalf("cell %d differs between parallel and sequential runs", i)
		}
	}
}
