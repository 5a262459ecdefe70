// Command transinfo prints summary properties of total transmission curves
// computed from the bundled synthetic survey dataset.
//
// Usage:
//
//	transinfo [flags] [band ...]
//
// Without arguments it prints a summary for every band.
//
// Examples:
//
//	transinfo g r
//	transinfo --expnum 226650 --ccd 3 i z Y
//	transinfo --lo 3500 --hi 10500 --step 2 g
//	transinfo --list
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/astrocal/throughput/internal/demo"
	"github.com/astrocal/throughput/stats/passband"
	"github.com/astrocal/throughput/transmission"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/floats"
)

func main() {
	expnum := pflag.Int64("expnum", 0, "exposure number (0 selects the standard atmosphere)")
	ccd := pflag.Int("ccd", 1, "detector number, counting from 1")
	lo := pflag.Float64("lo", transmission.DefaultMinWavelength, "grid start in Angstroms")
	hi := pflag.Float64("hi", transmission.DefaultMaxWavelength, "grid end in Angstroms")
	step := pflag.Float64("step", transmission.DefaultGridStep, "grid spacing in Angstroms")
	list := pflag.Bool("list", false, "list bands, detectors and exposures")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: transinfo [flags] [band ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints summary properties of total transmission curves.\n")
		fmt.Fprintf(os.Stderr, "Without arguments it prints a summary for every band.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *step <= 0 || *hi < *lo {
		fmt.Fprintf(os.Stderr, "error: invalid grid: lo %v, hi %v, step %v\n", *lo, *hi, *step)
		os.Exit(1)
	}

	model, err := transmission.Load(demo.Instrument(), demo.Atmosphere(),
		transmission.WithWavelengths(buildGrid(*lo, *hi, *step)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		printTables(model)
		return
	}

	bands := resolveBands(model, pflag.Args())
	if len(bands) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching bands\n")
		os.Exit(1)
	}

	if err := printSummary(model, bands, *expnum, *ccd); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func buildGrid(lo, hi, step float64) []float64 {
	n := int((hi-lo)/step) + 1
	if n < 2 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, lo+float64(n-1)*step)
}

func printTables(m *transmission.Model) {
	fmt.Printf("bands: %s\n", strings.Join(m.Bands(), " "))
	fmt.Printf("detectors: %d\n", m.NCCD())

	exps := m.Exposures()
	labels := make([]string, len(exps))
	for i, e := range exps {
		labels[i] = strconv.FormatInt(e, 10)
	}
	fmt.Printf("exposures: %s\n", strings.Join(labels, " "))
}

func resolveBands(m *transmission.Model, args []string) []string {
	if len(args) == 0 {
		return m.Bands()
	}

	known := make(map[string]bool)
	for _, b := range m.Bands() {
		known[b] = true
	}

	var out []string
	for _, b := range args {
		if !known[b] {
			fmt.Fprintf(os.Stderr, "warning: unknown band %q (use --list to see available)\n", b)
			continue
		}
		out = append(out, b)
	}
	return out
}

func printSummary(m *transmission.Model, bands []string, expnum int64, ccd int) error {
	if expnum == 0 {
		fmt.Println("atmosphere: standard")
	} else {
		fmt.Printf("atmosphere: exposure %d, ccd %d\n", expnum, ccd)
	}

	grid := m.Wavelengths()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tPeak\tPeak [A]\tEff [A]\tFWHM [A]\tEq. width [A]\n")
	fmt.Fprintf(tw, "----\t----\t--------\t-------\t--------\t-------------\n")

	for _, band := range bands {
		var (
			curve []float64
			err   error
		)
		if expnum == 0 {
			curve, err = m.Standard(band)
		} else {
			curve, err = m.Transmission(band, expnum, ccd)
		}
		if err != nil {
			return err
		}

		s := passband.Calculate(grid, curve)
		fmt.Fprintf(tw, "%s\t%.4f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			band, s.Peak, s.PeakWavelength, s.Effective, s.FWHM, s.EquivalentWidth)
	}

	return tw.Flush()
}
