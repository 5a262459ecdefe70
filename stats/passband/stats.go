// Package passband computes summary descriptors of a transmission curve
// sampled on a wavelength grid.
package passband

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Stats holds passband descriptors computed from a sampled transmission
// curve. Wavelength-valued fields are in Angstroms.
type Stats struct {
	SampleCount int

	Peak           float64 // highest transmission
	PeakWavelength float64 // wavelength of the highest sample
	Mean           float64 // mean transmission over the samples

	// Integral descriptors, zero when fewer than two samples are given.
	Area            float64 // integral of the curve
	EquivalentWidth float64 // Area divided by Peak
	Effective       float64 // transmission-weighted mean wavelength

	// Half-maximum edges, interpolated between samples. When the curve
	// never falls below half its peak on a side, the grid end stands in
	// for the crossing.
	BlueEdge float64
	RedEdge  float64
	FWHM     float64 // RedEdge minus BlueEdge
}

// Calculate computes all passband descriptors of a curve sampled at
// strictly increasing wavelengths. Both slices must have the same length;
// mismatched input yields a zero Stats.
func Calculate(wavelengths, values []float64) Stats {
	n := len(values)
	if n == 0 || len(wavelengths) != n {
		return Stats{}
	}

	var s Stats
	s.SampleCount = n
	s.Peak = values[0]
	s.PeakWavelength = wavelengths[0]

	sum := 0.0
	for i, v := range values {
		sum += v
		if v > s.Peak {
			s.Peak = v
			s.PeakWavelength = wavelengths[i]
		}
	}
	s.Mean = sum / float64(n)

	if n < 2 {
		return s
	}

	s.Area = integrate.Trapezoidal(wavelengths, values)
	if s.Peak > 0 {
		s.EquivalentWidth = s.Area / s.Peak
	}

	if s.Area != 0 {
		weighted := make([]float64, n)
		vecmath.MulBlock(weighted, wavelengths, values)
		s.Effective = integrate.Trapezoidal(wavelengths, weighted) / s.Area
	}

	if s.Peak > 0 {
		s.BlueEdge, s.RedEdge = halfMaxEdges(wavelengths, values, s.Peak)
		s.FWHM = s.RedEdge - s.BlueEdge
	}

	return s
}

// Effective returns the transmission-weighted mean wavelength of a sampled
// curve, or zero for degenerate input.
func Effective(wavelengths, values []float64) float64 {
	n := len(values)
	if n < 2 || len(wavelengths) != n {
		return 0
	}

	area := integrate.Trapezoidal(wavelengths, values)
	if area == 0 {
		return 0
	}

	weighted := make([]float64, n)
	vecmath.MulBlock(weighted, wavelengths, values)
	return integrate.Trapezoidal(wavelengths, weighted) / area
}

// FWHM returns the full width at half maximum of a sampled curve, or zero
// for degenerate input.
func FWHM(wavelengths, values []float64) float64 {
	n := len(values)
	if n < 2 || len(wavelengths) != n {
		return 0
	}

	peak := floats.Max(values)
	if peak <= 0 {
		return 0
	}

	blue, red := halfMaxEdges(wavelengths, values, peak)
	return red - blue
}

// halfMaxEdges finds the outermost crossings of half the peak value on each
// side of the peak, interpolating linearly between samples. peak must be
// positive.
func halfMaxEdges(wavelengths, values []float64, peak float64) (blue, red float64) {
	n := len(values)
	threshold := peak / 2
	peakIdx := floats.MaxIdx(values)

	blue = wavelengths[0]
	for i := peakIdx; i >= 1; i-- {
		if values[i-1] <= threshold && values[i] > threshold {
			blue = crossing(wavelengths[i-1], wavelengths[i], values[i-1], values[i], threshold)
			break
		}
	}

	red = wavelengths[n-1]
	for i := peakIdx; i < n-1; i++ {
		if values[i+1] <= threshold && values[i] > threshold {
			red = crossing(wavelengths[i], wavelengths[i+1], values[i], values[i+1], threshold)
			break
		}
	}

	return blue, red
}

// crossing interpolates the wavelength where the curve meets the threshold
// between two samples.
func crossing(w0, w1, v0, v1, threshold float64) float64 {
	denom := v1 - v0
	if denom == 0 {
		return (w0 + w1) / 2
	}

	t := (threshold - v0) / denom
	return w0 + t*(w1-w0)
}
