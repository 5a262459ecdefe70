package demo

import (
	"testing"

	"github.com/astrocal/throughput/internal/testutil"
	"github.com/astrocal/throughput/table"
)

func TestDatasetLoads(t *testing.T) {
	inst, err := table.LoadInstrument(Instrument())
	if err != nil {
		t.Fatalf("LoadInstrument failed: %v", err)
	}

	bands := inst.Bands()
	want := []string{"g", "r", "i", "z", "Y"}
	if len(bands) != len(want) {
		t.Fatalf("Bands() = %v, want %v", bands, want)
	}
	for i, b := range want {
		if bands[i] != b {
			t.Fatalf("Bands()[%d] = %q, want %q", i, bands[i], b)
		}
	}

	if got := inst.NCCD(); got != NCCD {
		t.Fatalf("NCCD() = %d, want %d", got, NCCD)
	}

	atm, err := table.LoadAtmosphere(Atmosphere())
	if err != nil {
		t.Fatalf("LoadAtmosphere failed: %v", err)
	}

	exps := atm.Exposures()
	if len(exps) != 3 || exps[0] != 226650 {
		t.Fatalf("Exposures() = %v, want [226650 226651 228742]", exps)
	}
}

func TestBandCurvesVanishAtEdges(t *testing.T) {
	for _, ext := range Instrument() {
		if got := ext.Average[0]; got != 0 {
			t.Errorf("%s: Average[0] = %v, want 0", ext.Name, got)
		}

		if got := ext.Average[len(ext.Average)-1]; got != 0 {
			t.Errorf("%s: Average[last] = %v, want 0", ext.Name, got)
		}

		testutil.RequireUnitRange(t, ext.Average)
	}
}

func TestExposureBelowStandard(t *testing.T) {
	data := Atmosphere()
	std := data.Throughput[1]
	for r := 2; r < len(data.Throughput); r++ {
		testutil.RequireFinite(t, data.Throughput[r])
		for i, v := range data.Throughput[r] {
			if v > std[i] {
				t.Fatalf("row %d sample %d: %v above standard %v", r, i, v, std[i])
			}
		}
	}
}
