// Command colorinfo prints a color in every channel representation
// supported by colorkit, together with its inverse and HSV form.
//
// Usage:
//
//	colorinfo [-v] [-precision n] [-list] color...
//
// Each color is an SVG keyword (e.g. "steelblue") or a hex string
// ("#4682b4", "fa0").
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/gogpu/colorkit"
)

func main() {
	var (
		verbose   = flag.Bool("v", false, "log rejected input at debug level")
		precision = flag.Int("precision", 4, "decimal places for floating output")
		list      = flag.Bool("list", false, "list all color names and exit")
	)
	flag.Parse()

	if *verbose {
		colorkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *list {
		for _, name := range colorkit.Names() {
			fmt.Println(name)
		}
		return
	}

	if flag.NArg() == 0 {
		log.Fatalf("usage: colorinfo [-v] [-precision n] [-list] color...")
	}

	failed := 0
	for _, arg := range flag.Args() {
		c, err := colorkit.Lookup(arg)
		if err != nil {
			log.Printf("%s: %v", arg, err)
			failed++
			continue
		}
		describe(os.Stdout, arg, c, *precision)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func describe(w io.Writer, name string, c colorkit.RGB[uint8], prec int) {
	wide := colorkit.ConvertRGB[uint16](c)
	unit := colorkit.ConvertRGB[float64](c)
	hsv := colorkit.ToHSV[float64](c)

	fmt.Fprintf(w, "%s\n", name)
	fmt.Fprintf(w, "  hex      %s\n", c.Hex())
	fmt.Fprintf(w, "  rgb8     %d %d %d\n", c.R, c.G, c.B)
	fmt.Fprintf(w, "  rgb16    %d %d %d\n", wide.R, wide.G, wide.B)
	fmt.Fprintf(w, "  float    %v %v %v\n",
		scalar.Round(unit.R, prec), scalar.Round(unit.G, prec), scalar.Round(unit.B, prec))
	fmt.Fprintf(w, "  inverse  %s\n", c.Inverse().Hex())
	fmt.Fprintf(w, "  hsv      %v %v %v\n",
		scalar.Round(hsv.H, prec), scalar.Round(hsv.S, prec), scalar.Round(hsv.V, prec))
}
