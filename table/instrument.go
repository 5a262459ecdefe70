package table

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// BandThroughput is the instrumental throughput of one band. It is
// read-only after loading.
type BandThroughput struct {
	// Wavelengths are the measured wavelengths in Angstroms, strictly
	// increasing.
	Wavelengths []float64
	// Average is the detector-averaged throughput, aligned with
	// Wavelengths.
	Average []float64
	// PerCCD holds one row per wavelength and one column per detector.
	PerCCD *mat.Dense
}

// Instrument is a loaded instrumental throughput table: one
// [BandThroughput] per band, all with the same detector count.
type Instrument struct {
	bands map[string]*BandThroughput
	order []string
	nccd  int
}

// LoadInstrument reads every extension of src, validates it and indexes it
// by band name. Extensions are validated in source order and the first
// problem aborts the load.
func LoadInstrument(src InstrumentSource) (*Instrument, error) {
	exts, err := src.Extensions()
	if err != nil {
		return nil, fmt.Errorf("table: reading instrument source: %w", err)
	}

	if len(exts) == 0 {
		return nil, ErrNoExtensions
	}

	inst := &Instrument{bands: make(map[string]*BandThroughput, len(exts))}
	for _, ext := range exts {
		band := bandName(ext.Name)
		if _, ok := inst.bands[band]; ok {
			return nil, fmt.Errorf("%w (%q)", ErrDuplicateBand, band)
		}

		bt, err := newBandThroughput(ext)
		if err != nil {
			return nil, fmt.Errorf("table: extension %q: %w", ext.Name, err)
		}

		_, nccd := bt.PerCCD.Dims()
		if inst.nccd == 0 {
			inst.nccd = nccd
		} else if nccd != inst.nccd {
			return nil, fmt.Errorf("%w (%q has %d, want %d)", ErrDetectorCount, band, nccd, inst.nccd)
		}

		inst.bands[band] = bt
		inst.order = append(inst.order, band)
	}

	return inst, nil
}

// bandName extracts the band identifier from an extension name: the part
// before the first underscore, or the whole name when none is present.
func bandName(name string) string {
	if i := strings.IndexByte(name, '_'); i >= 0 {
		return name[:i]
	}

	return name
}

// newBandThroughput validates one extension and copies its columns.
func newBandThroughput(ext Extension) (*BandThroughput, error) {
	switch {
	case len(ext.Wavelength) == 0:
		return nil, fmt.Errorf("%w (lambda)", ErrMissingColumn)
	case len(ext.Average) == 0:
		return nil, fmt.Errorf("%w (throughput_avg)", ErrMissingColumn)
	case len(ext.PerCCD) == 0:
		return nil, fmt.Errorf("%w (throughput_ccd)", ErrMissingColumn)
	}

	n := len(ext.Wavelength)
	if n < 2 {
		return nil, ErrShortTable
	}

	if len(ext.Average) != n || len(ext.PerCCD) != n {
		return nil, ErrRaggedTable
	}

	nccd := len(ext.PerCCD[0])
	if nccd == 0 {
		return nil, ErrNoDetectors
	}

	for _, row := range ext.PerCCD {
		if len(row) != nccd {
			return nil, ErrRaggedTable
		}
	}

	if !increasing(ext.Wavelength) {
		return nil, ErrWavelengthOrder
	}

	bt := &BandThroughput{
		Wavelengths: append([]float64(nil), ext.Wavelength...),
		Average:     append([]float64(nil), ext.Average...),
		PerCCD:      mat.NewDense(n, nccd, nil),
	}
	for i, row := range ext.PerCCD {
		bt.PerCCD.SetRow(i, row)
	}

	return bt, nil
}

// Bands lists the loaded band names in source order.
func (in *Instrument) Bands() []string {
	return append([]string(nil), in.order...)
}

// Band looks up one band's throughput.
func (in *Instrument) Band(name string) (*BandThroughput, bool) {
	bt, ok := in.bands[name]
	return bt, ok
}

// NCCD returns the detector count shared by every band.
func (in *Instrument) NCCD() int {
	return in.nccd
}
