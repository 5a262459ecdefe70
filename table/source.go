// Package table loads the two throughput datasets the transmission engine
// consumes: the per-band instrumental table and the per-exposure atmosphere
// table. Loads are one-shot and fail fast; a loaded table is read-only.
package table

import "errors"

// Errors surfaced while loading tables. Loading stops at the first problem
// and no partial table is returned.
var (
	ErrNoExtensions      = errors.New("table: instrument source has no extensions")
	ErrMissingColumn     = errors.New("table: missing column")
	ErrShortTable        = errors.New("table: fewer than two wavelength samples")
	ErrRaggedTable       = errors.New("table: column lengths disagree")
	ErrWavelengthOrder   = errors.New("table: wavelengths must be strictly increasing")
	ErrNoDetectors       = errors.New("table: throughput_ccd has no detector columns")
	ErrDetectorCount     = errors.New("table: detector count differs between bands")
	ErrDuplicateBand     = errors.New("table: duplicate band extension")
	ErrAtmosphereRows    = errors.New("table: atmosphere needs wavelength and standard rows")
	ErrExpnumShape       = errors.New("table: expnum column length differs from row count")
	ErrDuplicateExposure = errors.New("table: duplicate exposure number")
)

// Extension is one named sub-table of an instrument source. Field names
// follow the upstream column vocabulary: lambda, throughput_avg and
// throughput_ccd.
type Extension struct {
	// Name is the extension name. The band identifier is the part before
	// the first underscore (the whole name when none is present).
	Name string
	// Wavelength is the lambda column: measured wavelengths in Angstroms,
	// strictly increasing.
	Wavelength []float64
	// Average is the throughput_avg column, aligned with Wavelength.
	Average []float64
	// PerCCD is the throughput_ccd column: one row per wavelength, one
	// column per detector.
	PerCCD [][]float64
}

// InstrumentSource enumerates the named sub-tables of an instrument
// throughput dataset.
type InstrumentSource interface {
	Extensions() ([]Extension, error)
}

// ExtensionList adapts a fixed extension slice as an [InstrumentSource].
type ExtensionList []Extension

// Extensions returns the list itself.
func (l ExtensionList) Extensions() ([]Extension, error) {
	return l, nil
}

// AtmosphereData is the raw shape of an atmosphere throughput dataset:
// a throughput matrix whose row 0 holds the wavelength grid, row 1 the
// standard reference atmosphere, and rows 2.. one curve per exposure, plus
// an expnum column parallel to the rows (entries for rows 0 and 1 are
// ignored).
type AtmosphereData struct {
	Throughput [][]float64
	Expnum     []int64
}

// AtmosphereSource reads an atmosphere throughput dataset wholesale.
type AtmosphereSource interface {
	Read() (AtmosphereData, error)
}

// Read makes the literal data its own [AtmosphereSource].
func (d AtmosphereData) Read() (AtmosphereData, error) {
	return d, nil
}

// increasing reports whether xs is strictly increasing.
func increasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}

	return true
}
