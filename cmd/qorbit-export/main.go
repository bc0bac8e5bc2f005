// qorbit-export dumps a golden-angle sphere layout as CSV for external
// plotting and layout verification.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/entanglelab/qorbit/vmath"
)

var (
	countFlag  = flag.Int("n", 144, "Number of points")
	radiusFlag = flag.Float64("r", 12, "Sphere radius")
	outFlag    = flag.String("o", "", "Output file (default stdout)")
)

func main() {
	flag.Parse()

	if *countFlag < 1 {
		fmt.Fprintln(os.Stderr, "n must be >= 1")
		os.Exit(1)
	}

	out := os.Stdout
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create %s: %v\n", *outFlag, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	defer w.Flush()

	w.Write([]string{"index", "x", "y", "z"})
	for i, p := range vmath.SpherePoints(*countFlag, *radiusFlag) {
		w.Write([]string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
		})
	}

	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
}
