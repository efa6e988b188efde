package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/wbrown/charart"
)

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage: charart [options] <image> <hexcolor>\n\n"+
			"Renders <image> as a grid of font glyphs shaded from <hexcolor>\n"+
			"(#RRGGBB or RRGGBB).\n\nOptions:\n")
	flag.PrintDefaults()
}

func main() {
	width := flag.Int("width", 80,
		"Width of the output art in characters")
	charset := flag.String("charset", charart.DefaultCharset,
		"Glyph ramp ordered sparse (light) to dense (dark);\n"+
			"quote it if it contains shell characters")
	fontPath := flag.String("font", "",
		"Path to a TTF font; empty tries common monospaced fonts,\n"+
			"then the embedded Go Mono face")
	fontSize := flag.Float64("fontsize", 15,
		"Font size in points")
	cellWidth := flag.Int("cellwidth", 0,
		"Explicit cell width in pixels (0 = font-derived)")
	cellHeight := flag.Int("cellheight", 0,
		"Explicit cell height in pixels (0 = font-derived)")
	aspect := flag.Float64("aspect", 0.5,
		"Cell aspect ratio correction (cell width / cell height);\n"+
			"0.5 means cells twice as tall as wide")
	posterize := flag.Int("posterize", 0,
		"Posterize channel depth in bits, 0-8 (0 = off)")
	skipSpace := flag.Bool("skipspace", false,
		"Leave the background visible where the lightest cells map\n"+
			"to a space glyph")
	colorMode := flag.Bool("colormode", false,
		"Shade each cell with its own average color instead of the\n"+
			"base-color palette")
	maxWidth := flag.Int("maxwidth", 0,
		"Downscale sources wider than this many pixels before\n"+
			"sampling (0 = off)")
	workers := flag.Int("workers", 0,
		"Sampling/rasterization parallelism (0 = all CPUs)")
	output := flag.String("o", "char_art_output.png",
		"Path to save the output raster")

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	imagePath := flag.Arg(0)

	baseColor, err := charart.RGBFromHex(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "charart: %v\n", err)
		os.Exit(2)
	}

	r := charart.NewRenderer(
		charart.WithCharWidth(*width),
		charart.WithCharset(*charset),
		charart.WithFont(*fontPath, *fontSize),
		charart.WithCellSize(*cellWidth, *cellHeight),
		charart.WithAspectRatio(*aspect),
		charart.WithPosterizeBits(*posterize),
		charart.WithSkipSpace(*skipSpace),
		charart.WithBaseColor(baseColor),
		charart.WithColorMode(*colorMode),
		charart.WithMaxSourceWidth(*maxWidth),
		charart.WithWorkers(*workers),
	)

	if err := r.RenderFile(imagePath, *output); err != nil {
		fmt.Fprintf(os.Stderr, "charart: %v\n", err)
		var confErr *charart.ConfigError
		if errors.As(err, &confErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	fmt.Printf("Character art saved to %s\n", *output)
}
