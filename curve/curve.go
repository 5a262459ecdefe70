package curve

import (
	"errors"

	"gonum.org/v1/gonum/interp"
)

// Errors returned when fitting tabulated data.
var (
	ErrTooFewSamples  = errors.New("curve: need at least two samples")
	ErrLengthMismatch = errors.New("curve: wavelength and value counts differ")
	ErrNotIncreasing  = errors.New("curve: wavelengths must be strictly increasing")
)

// Tabulated is a measured curve fitted for piecewise-linear evaluation.
// It is read-only after construction.
type Tabulated struct {
	pl       interp.PiecewiseLinear
	min, max float64
}

// NewTabulated fits values sampled at strictly increasing wavelengths.
// The inputs are copied; the caller may reuse them afterwards.
func NewTabulated(wavelengths, values []float64) (*Tabulated, error) {
	if len(wavelengths) != len(values) {
		return nil, ErrLengthMismatch
	}

	if len(wavelengths) < 2 {
		return nil, ErrTooFewSamples
	}

	for i := 1; i < len(wavelengths); i++ {
		if wavelengths[i] <= wavelengths[i-1] {
			return nil, ErrNotIncreasing
		}
	}

	xs := append([]float64(nil), wavelengths...)
	ys := append([]float64(nil), values...)

	c := &Tabulated{min: xs[0], max: xs[len(xs)-1]}
	if err := c.pl.Fit(xs, ys); err != nil {
		return nil, err
	}

	return c, nil
}

// Domain returns the measured wavelength range.
func (c *Tabulated) Domain() (lo, hi float64) {
	return c.min, c.max
}

// At evaluates the curve at one wavelength.
func (c *Tabulated) At(wavelength float64) float64 {
	return c.pl.Predict(wavelength)
}

// Sample evaluates the curve at every grid point into a new slice.
func (c *Tabulated) Sample(grid []float64) []float64 {
	return c.SampleInto(nil, grid)
}

// SampleInto evaluates the curve at every grid point, reusing dst when it has
// sufficient capacity.
func (c *Tabulated) SampleInto(dst, grid []float64) []float64 {
	if cap(dst) < len(grid) {
		dst = make([]float64, len(grid))
	}

	dst = dst[:len(grid)]
	for i, w := range grid {
		dst[i] = c.pl.Predict(w)
	}

	return dst
}
