package ramanplot

import (
	"os"
	"path/filepath"
	"testing"

	raman "github.com/ramanchem/goraman"
	"github.com/ramanchem/goraman/spectrum"
	v3 "github.com/ramanchem/goraman/v3"
)

func testTable(Te *testing.T) *raman.ModeTable {
	d, err := v3.NewMatrix([]float64{0, 0, 1, 0, 0, -1})
	if err != nil {
		Te.Fatal(err)
	}
	table, err := raman.NewModeTable([]*raman.Mode{
		{Frequency: 1000, Intensity: 5, Disp: d},
		{Frequency: 1500, Intensity: 10, Disp: d},
	})
	if err != nil {
		Te.Fatal(err)
	}
	return table
}

func TestPlotSpectrum(Te *testing.T) {
	table := testTable(Te)
	s, err := spectrum.Broaden(table, spectrum.Grid{Start: 0, Stop: 2000, Step: 1}, 10)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "water")
	if err := PlotSpectrum(s, table, "test spectrum", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Errorf("Expected a PNG at %s.png: %v", name, err)
	}
	//stems are optional
	if err := PlotSpectrum(s, nil, "no stems", filepath.Join(Te.TempDir(), "bare")); err != nil {
		Te.Error(err)
	}
}

func TestPlotComparison(Te *testing.T) {
	table := testTable(Te)
	g := spectrum.Grid{Start: 0, Stop: 2000, Step: 1}
	a, err := spectrum.Broaden(table, g, 10)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := spectrum.Broaden(table, g, 30)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "cmp")
	if err := PlotComparison([]*spectrum.Spectrum{a, b}, []string{"narrow", "broad"}, "widths", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Errorf("Expected a PNG at %s.png: %v", name, err)
	}
	err = PlotComparison([]*spectrum.Spectrum{a, b}, []string{"just one"}, "bad", name)
	if err == nil {
		Te.Fatal("Mismatched label count should be rejected")
	}
	if e, ok := err.(raman.Errorer); !ok || e.Kind() != raman.ErrLengthMismatch {
		Te.Errorf("Expected LengthMismatch, got %v", err)
	}
}
