package transmission

import (
	"errors"
	"fmt"

	"github.com/astrocal/throughput/curve"
	"github.com/astrocal/throughput/table"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Errors returned when building models and answering queries.
var (
	ErrNilTable        = errors.New("transmission: nil table")
	ErrEmptyGrid       = errors.New("transmission: empty wavelength grid")
	ErrUnknownBand     = errors.New("transmission: unknown band")
	ErrUnknownExposure = errors.New("transmission: unknown exposure")
	ErrCCDRange        = errors.New("transmission: ccd number out of range")
)

// Model combines an instrumental throughput table with atmospheric
// transmission on a shared evaluation grid. Instrument curves are resampled
// once per grid and cached; atmosphere curves are interpolated per query.
//
// A Model is not safe for concurrent use.
type Model struct {
	inst    *table.Instrument
	atm     *table.Atmosphere
	gridTol float64

	grid  []float64
	dirty bool

	bandAvg map[string][]float64
	bandCCD map[string]*mat.Dense
	std     *curve.Tabulated
}

// New builds a model over loaded tables. The evaluation grid starts at the
// configured wavelengths (the default covers 3000 to 11000 Angstroms in
// 1 Angstrom steps) and the resampled cache is built on first use.
func New(inst *table.Instrument, atm *table.Atmosphere, opts ...Option) (*Model, error) {
	if inst == nil || atm == nil {
		return nil, ErrNilTable
	}

	cfg := ApplyOptions(opts...)

	return &Model{
		inst:    inst,
		atm:     atm,
		gridTol: cfg.GridTolerance,
		grid:    cfg.Wavelengths,
		dirty:   true,
	}, nil
}

// Load reads both tables and builds a model over them.
func Load(instSrc table.InstrumentSource, atmSrc table.AtmosphereSource, opts ...Option) (*Model, error) {
	inst, err := table.LoadInstrument(instSrc)
	if err != nil {
		return nil, err
	}

	atm, err := table.LoadAtmosphere(atmSrc)
	if err != nil {
		return nil, err
	}

	return New(inst, atm, opts...)
}

// SetWavelengths replaces the evaluation grid and resamples every band's
// instrumental throughput onto it. A grid matching the cached one within
// the configured tolerance leaves the cache untouched. The slice is copied.
func (m *Model) SetWavelengths(wavelengths []float64) error {
	if len(wavelengths) == 0 {
		return ErrEmptyGrid
	}

	if !m.dirty && floats.EqualApprox(wavelengths, m.grid, m.gridTol) {
		return nil
	}

	m.grid = append([]float64(nil), wavelengths...)

	return m.rebuild()
}

// Wavelengths returns a copy of the current evaluation grid.
func (m *Model) Wavelengths() []float64 {
	return append([]float64(nil), m.grid...)
}

// Transmission returns the total transmission for one band, exposure and
// detector on the evaluation grid: the exposure's atmosphere multiplied by
// the detector's instrumental throughput. The detector number ccdnum counts
// from 1.
func (m *Model) Transmission(band string, expnum int64, ccdnum int) ([]float64, error) {
	if err := m.ensure(); err != nil {
		return nil, err
	}

	atmRow, ok := m.atm.Exposure(expnum)
	if !ok {
		return nil, fmt.Errorf("%w (%d)", ErrUnknownExposure, expnum)
	}

	if nccd := m.inst.NCCD(); ccdnum < 1 || ccdnum > nccd {
		return nil, fmt.Errorf("%w (%d of %d)", ErrCCDRange, ccdnum, nccd)
	}

	ccd, ok := m.bandCCD[band]
	if !ok {
		return nil, fmt.Errorf("%w (%q)", ErrUnknownBand, band)
	}

	out, err := m.sampleAtmosphere(atmRow)
	if err != nil {
		return nil, err
	}

	vecmath.MulBlockInPlace(out, mat.Col(nil, ccdnum-1, ccd))

	return out, nil
}

// TransmissionAt is like [Model.Transmission] but first adopts wavelengths
// as the evaluation grid, reusing the cache when it already matches.
func (m *Model) TransmissionAt(band string, expnum int64, ccdnum int, wavelengths []float64) ([]float64, error) {
	if err := m.SetWavelengths(wavelengths); err != nil {
		return nil, err
	}

	return m.Transmission(band, expnum, ccdnum)
}

// Standard returns one band's transmission under the standard reference
// atmosphere on the evaluation grid, using the detector-averaged
// instrumental throughput.
func (m *Model) Standard(band string) ([]float64, error) {
	if err := m.ensure(); err != nil {
		return nil, err
	}

	avg, ok := m.bandAvg[band]
	if !ok {
		return nil, fmt.Errorf("%w (%q)", ErrUnknownBand, band)
	}

	if m.std == nil {
		c, err := curve.NewTabulated(m.atm.Wavelengths(), m.atm.Standard())
		if err != nil {
			return nil, fmt.Errorf("transmission: standard atmosphere: %w", err)
		}

		m.std = c
	}

	out := clampNonNegative(m.std.Sample(m.grid))
	vecmath.MulBlockInPlace(out, avg)

	return out, nil
}

// StandardAt is like [Model.Standard] but first adopts wavelengths as the
// evaluation grid, reusing the cache when it already matches.
func (m *Model) StandardAt(band string, wavelengths []float64) ([]float64, error) {
	if err := m.SetWavelengths(wavelengths); err != nil {
		return nil, err
	}

	return m.Standard(band)
}

// Bands lists the instrument's band names in table order.
func (m *Model) Bands() []string {
	return m.inst.Bands()
}

// NCCD returns the instrument's detector count.
func (m *Model) NCCD() int {
	return m.inst.NCCD()
}

// Exposures lists the atmosphere table's exposure numbers.
func (m *Model) Exposures() []int64 {
	return m.atm.Exposures()
}

// ensure rebuilds the resampled cache when the grid changed since the last
// query.
func (m *Model) ensure() error {
	if !m.dirty {
		return nil
	}

	return m.rebuild()
}

// rebuild resamples every band's instrumental curves onto the current grid.
func (m *Model) rebuild() error {
	bandAvg := make(map[string][]float64, len(m.inst.Bands()))
	bandCCD := make(map[string]*mat.Dense, len(m.inst.Bands()))

	var samples []float64
	for _, band := range m.inst.Bands() {
		bt, _ := m.inst.Band(band)

		c, err := curve.NewTabulated(bt.Wavelengths, bt.Average)
		if err != nil {
			return fmt.Errorf("transmission: band %q average: %w", band, err)
		}

		bandAvg[band] = clampNonNegative(c.Sample(m.grid))

		_, nccd := bt.PerCCD.Dims()
		ccd := mat.NewDense(len(m.grid), nccd, nil)
		col := make([]float64, len(bt.Wavelengths))
		for j := 0; j < nccd; j++ {
			mat.Col(col, j, bt.PerCCD)

			c, err := curve.NewTabulated(bt.Wavelengths, col)
			if err != nil {
				return fmt.Errorf("transmission: band %q ccd %d: %w", band, j+1, err)
			}

			samples = clampNonNegative(c.SampleInto(samples, m.grid))
			ccd.SetCol(j, samples)
		}

		bandCCD[band] = ccd
	}

	m.bandAvg = bandAvg
	m.bandCCD = bandCCD
	m.dirty = false

	return nil
}

// sampleAtmosphere interpolates one atmosphere row onto the current grid.
func (m *Model) sampleAtmosphere(values []float64) ([]float64, error) {
	c, err := curve.NewTabulated(m.atm.Wavelengths(), values)
	if err != nil {
		return nil, fmt.Errorf("transmission: atmosphere: %w", err)
	}

	return clampNonNegative(c.Sample(m.grid)), nil
}

// clampNonNegative zeroes negative interpolation artefacts in place and
// returns s.
func clampNonNegative(s []float64) []float64 {
	for i, v := range s {
		if v < 0 {
			s[i] = 0
		}
	}

	return s
}
