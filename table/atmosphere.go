package table

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Atmosphere is a loaded atmospheric transmission table: a shared
// wavelength grid, the standard reference curve and one curve per exposure.
// It is read-only after loading.
type Atmosphere struct {
	wavelengths []float64
	standard    []float64
	curves      *mat.Dense // one row per exposure
	expnums     []int64    // parallel to curve rows
	index       map[int64]int
}

// LoadAtmosphere reads and validates src. Row 0 of the throughput matrix is
// the wavelength grid, row 1 the standard atmosphere and each later row one
// exposure's curve, keyed by the expnum entry of the same row. The expnum
// entries of rows 0 and 1 are ignored.
func LoadAtmosphere(src AtmosphereSource) (*Atmosphere, error) {
	data, err := src.Read()
	if err != nil {
		return nil, fmt.Errorf("table: reading atmosphere source: %w", err)
	}

	rows := len(data.Throughput)
	if rows < 2 {
		return nil, ErrAtmosphereRows
	}

	if len(data.Expnum) != rows {
		return nil, fmt.Errorf("%w (%d expnums for %d rows)", ErrExpnumShape, len(data.Expnum), rows)
	}

	n := len(data.Throughput[0])
	if n < 2 {
		return nil, ErrShortTable
	}

	for _, row := range data.Throughput {
		if len(row) != n {
			return nil, ErrRaggedTable
		}
	}

	if !increasing(data.Throughput[0]) {
		return nil, ErrWavelengthOrder
	}

	nexp := rows - 2
	atm := &Atmosphere{
		wavelengths: append([]float64(nil), data.Throughput[0]...),
		standard:    append([]float64(nil), data.Throughput[1]...),
		expnums:     make([]int64, 0, nexp),
		index:       make(map[int64]int, nexp),
	}
	if nexp > 0 {
		atm.curves = mat.NewDense(nexp, n, nil)
	}

	for i := 2; i < rows; i++ {
		expnum := data.Expnum[i]
		if _, ok := atm.index[expnum]; ok {
			return nil, fmt.Errorf("%w (%d)", ErrDuplicateExposure, expnum)
		}

		row := i - 2
		atm.curves.SetRow(row, data.Throughput[i])
		atm.index[expnum] = row
		atm.expnums = append(atm.expnums, expnum)
	}

	return atm, nil
}

// Wavelengths returns the table's wavelength grid. The slice is the table's
// own storage and must not be modified.
func (a *Atmosphere) Wavelengths() []float64 {
	return a.wavelengths
}

// Standard returns the standard atmosphere curve, aligned with
// [Atmosphere.Wavelengths]. The slice is the table's own storage and must
// not be modified.
func (a *Atmosphere) Standard() []float64 {
	return a.standard
}

// Exposure returns the curve recorded for one exposure number, aligned with
// [Atmosphere.Wavelengths]. The slice is the table's own storage and must
// not be modified.
func (a *Atmosphere) Exposure(expnum int64) ([]float64, bool) {
	row, ok := a.index[expnum]
	if !ok {
		return nil, false
	}

	return a.curves.RawRowView(row), true
}

// Exposures lists the recorded exposure numbers in table order.
func (a *Atmosphere) Exposures() []int64 {
	return append([]int64(nil), a.expnums...)
}
