// Package demo builds a small synthetic survey dataset: five bands with
// smooth passband curves over eight detectors, a standard atmosphere and
// three exposures at increasing airmass. Tests and the transinfo command
// use it in place of measured tables.
package demo

import (
	"math"

	"github.com/astrocal/throughput/table"
)

// NCCD is the detector count of the synthetic instrument.
const NCCD = 8

// bandStep is the wavelength spacing of the instrument tables in Angstroms.
const bandStep = 20.0

type bandDef struct {
	name   string
	lo, hi float64
	peak   float64
}

var bands = []bandDef{
	{"g", 3800, 5600, 0.82},
	{"r", 5400, 7300, 0.86},
	{"i", 6800, 8700, 0.82},
	{"z", 8200, 10200, 0.78},
	{"Y", 9300, 10900, 0.70},
}

// avgScale is the mean of the per-detector scale factors, so the average
// column is consistent with the per-detector columns.
var avgScale = func() float64 {
	s := 0.0
	for j := 0; j < NCCD; j++ {
		s += ccdScale(j)
	}

	return s / NCCD
}()

// Instrument returns the synthetic instrumental throughput table. Each
// band's curve is a raised-cosine bump that reaches zero at the measured
// edges, scaled per detector.
func Instrument() table.ExtensionList {
	exts := make(table.ExtensionList, 0, len(bands))
	for _, b := range bands {
		n := int((b.hi-b.lo)/bandStep) + 1
		wl := make([]float64, n)
		avg := make([]float64, n)
		ccd := make([][]float64, n)
		for i := 0; i < n; i++ {
			w := b.lo + float64(i)*bandStep
			v := b.peak * bump((w-b.lo)/(b.hi-b.lo))

			row := make([]float64, NCCD)
			for j := 0; j < NCCD; j++ {
				row[j] = v * ccdScale(j)
			}

			wl[i] = w
			avg[i] = v * avgScale
			ccd[i] = row
		}

		exts = append(exts, table.Extension{
			Name:       b.name + "_throughput",
			Wavelength: wl,
			Average:    avg,
			PerCCD:     ccd,
		})
	}

	return exts
}

// Atmosphere returns the synthetic atmosphere table: wavelengths from 3000
// to 11000 Angstroms in 100 Angstrom steps, the standard curve, and one
// curve per exposure following the standard curve raised to the exposure's
// airmass.
func Atmosphere() table.AtmosphereData {
	const lo, hi, step = 3000.0, 11000.0, 100.0

	n := int((hi-lo)/step) + 1
	wl := make([]float64, n)
	std := make([]float64, n)
	for i := range wl {
		w := lo + float64(i)*step
		wl[i] = w
		std[i] = stdAtmosphere(w)
	}

	exps := []struct {
		num     int64
		airmass float64
	}{
		{226650, 1.15},
		{226651, 1.30},
		{228742, 1.45},
	}

	throughput := [][]float64{wl, std}
	expnum := []int64{0, 0}
	for _, e := range exps {
		row := make([]float64, n)
		for i, w := range wl {
			row[i] = math.Pow(stdAtmosphere(w), e.airmass)
		}

		throughput = append(throughput, row)
		expnum = append(expnum, e.num)
	}

	return table.AtmosphereData{Throughput: throughput, Expnum: expnum}
}

// bump is a raised cosine on [0, 1], zero at both ends and one at the
// midpoint.
func bump(t float64) float64 {
	return 0.5 * (1 - math.Cos(2*math.Pi*t))
}

// ccdScale attenuates detector j by one percent per detector index.
func ccdScale(j int) float64 {
	return 1 - 0.01*float64(j)
}

// stdAtmosphere models extinction rising toward the blue.
func stdAtmosphere(w float64) float64 {
	return 0.93 - 0.25*math.Exp(-(w-3000)/1800)
}
