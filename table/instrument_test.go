package table

import (
	"errors"
	"testing"
)

func validExtension(name string) Extension {
	return Extension{
		Name:       name,
		Wavelength: []float64{4000, 5000, 6000},
		Average:    []float64{0.2, 0.8, 0.3},
		PerCCD: [][]float64{
			{0.20, 0.19},
			{0.80, 0.78},
			{0.30, 0.29},
		},
	}
}

func TestLoadInstrument(t *testing.T) {
	inst, err := LoadInstrument(ExtensionList{
		validExtension("g_throughput"),
		validExtension("r_throughput"),
	})
	if err != nil {
		t.Fatalf("LoadInstrument failed: %v", err)
	}

	bands := inst.Bands()
	if len(bands) != 2 || bands[0] != "g" || bands[1] != "r" {
		t.Fatalf("Bands() = %v, want [g r]", bands)
	}

	if got := inst.NCCD(); got != 2 {
		t.Fatalf("NCCD() = %d, want 2", got)
	}

	bt, ok := inst.Band("g")
	if !ok {
		t.Fatal("Band(g) not found")
	}

	if got := bt.Average[1]; got != 0.8 {
		t.Fatalf("Average[1] = %v, want 0.8", got)
	}

	if got := bt.PerCCD.At(1, 1); got != 0.78 {
		t.Fatalf("PerCCD.At(1, 1) = %v, want 0.78", got)
	}

	if _, ok := inst.Band("u"); ok {
		t.Fatal("Band(u) unexpectedly found")
	}
}

func TestLoadInstrumentRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		exts ExtensionList
		want error
	}{
		{
			name: "no extensions",
			exts: ExtensionList{},
			want: ErrNoExtensions,
		},
		{
			name: "missing lambda",
			exts: ExtensionList{{Name: "g_t", Average: []float64{1, 2}, PerCCD: [][]float64{{1}, {2}}}},
			want: ErrMissingColumn,
		},
		{
			name: "missing average",
			exts: ExtensionList{{Name: "g_t", Wavelength: []float64{1, 2}, PerCCD: [][]float64{{1}, {2}}}},
			want: ErrMissingColumn,
		},
		{
			name: "missing per-ccd",
			exts: ExtensionList{{Name: "g_t", Wavelength: []float64{1, 2}, Average: []float64{1, 2}}},
			want: ErrMissingColumn,
		},
		{
			name: "single sample",
			exts: ExtensionList{{Name: "g_t", Wavelength: []float64{1}, Average: []float64{1}, PerCCD: [][]float64{{1}}}},
			want: ErrShortTable,
		},
		{
			name: "average too short",
			exts: func() ExtensionList {
				ext := validExtension("g_t")
				ext.Average = ext.Average[:2]
				return ExtensionList{ext}
			}(),
			want: ErrRaggedTable,
		},
		{
			name: "per-ccd too short",
			exts: func() ExtensionList {
				ext := validExtension("g_t")
				ext.PerCCD = ext.PerCCD[:2]
				return ExtensionList{ext}
			}(),
			want: ErrRaggedTable,
		},
		{
			name: "ragged per-ccd row",
			exts: func() ExtensionList {
				ext := validExtension("g_t")
				ext.PerCCD[2] = []float64{0.3}
				return ExtensionList{ext}
			}(),
			want: ErrRaggedTable,
		},
		{
			name: "no detectors",
			exts: ExtensionList{{Name: "g_t", Wavelength: []float64{1, 2}, Average: []float64{1, 2}, PerCCD: [][]float64{{}, {}}}},
			want: ErrNoDetectors,
		},
		{
			name: "wavelengths not increasing",
			exts: func() ExtensionList {
				ext := validExtension("g_t")
				ext.Wavelength[2] = ext.Wavelength[1]
				return ExtensionList{ext}
			}(),
			want: ErrWavelengthOrder,
		},
		{
			name: "duplicate band",
			exts: ExtensionList{validExtension("g_throughput"), validExtension("g_other")},
			want: ErrDuplicateBand,
		},
		{
			name: "detector count changes",
			exts: func() ExtensionList {
				ext := validExtension("r_t")
				for i := range ext.PerCCD {
					ext.PerCCD[i] = append(ext.PerCCD[i], 0.1)
				}
				return ExtensionList{validExtension("g_t"), ext}
			}(),
			want: ErrDetectorCount,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadInstrument(tc.exts); !errors.Is(err, tc.want) {
				t.Fatalf("LoadInstrument error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadInstrumentPropagatesSourceError(t *testing.T) {
	srcErr := errors.New("boom")
	if _, err := LoadInstrument(failingInstrumentSource{err: srcErr}); !errors.Is(err, srcErr) {
		t.Fatalf("LoadInstrument error = %v, want wrapped %v", err, srcErr)
	}
}

type failingInstrumentSource struct {
	err error
}

func (s failingInstrumentSource) Extensions() ([]Extension, error) {
	return nil, s.err
}

func TestLoadInstrumentCopiesColumns(t *testing.T) {
	ext := validExtension("g_t")
	inst, err := LoadInstrument(ExtensionList{ext})
	if err != nil {
		t.Fatalf("LoadInstrument failed: %v", err)
	}

	ext.Wavelength[0] = -1
	ext.Average[0] = -1
	ext.PerCCD[0][0] = -1

	bt, _ := inst.Band("g")
	if bt.Wavelengths[0] != 4000 || bt.Average[0] != 0.2 || bt.PerCCD.At(0, 0) != 0.20 {
		t.Fatal("loaded table shares storage with the source")
	}
}

func TestBandName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"g_throughput", "g"},
		{"Y_throughput", "Y"},
		{"u", "u"},
		{"sdss_u_ext", "sdss"},
	}

	for _, tc := range cases {
		if got := bandName(tc.in); got != tc.want {
			t.Errorf("bandName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
