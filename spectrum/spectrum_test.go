package spectrum

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	raman "github.com/ramanchem/goraman"
	v3 "github.com/ramanchem/goraman/v3"
	"gonum.org/v1/gonum/floats"
)

func singleMode(Te *testing.T, freq, intens float64) *raman.ModeTable {
	d, err := v3.NewMatrix([]float64{0, 0, 1, 0, 0, -1})
	if err != nil {
		Te.Fatal(err)
	}
	table, err := raman.NewModeTable([]*raman.Mode{{Frequency: freq, Intensity: intens, Disp: d}})
	if err != nil {
		Te.Fatal(err)
	}
	return table
}

func emptyTable(Te *testing.T) *raman.ModeTable {
	table, err := raman.NewModeTable([]*raman.Mode{})
	if err != nil {
		Te.Fatal(err)
	}
	return table
}

func TestGrid(Te *testing.T) {
	g := Grid{Start: 0, Stop: 2000, Step: 1}
	if g.NPoints() != 2001 {
		Te.Errorf("Expected 2001 points, got %d", g.NPoints())
	}
	x := g.X()
	if x[0] != 0 || x[len(x)-1] != 2000 {
		Te.Errorf("Grid ends wrong: %v ... %v", x[0], x[len(x)-1])
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			Te.Fatal("Grid not strictly increasing")
		}
	}
}

//A single mode of intensity I must contribute exactly I at its own frequency:
//the Lorentzian is peak-normalized, not area-normalized.
func TestBroadenLinearity(Te *testing.T) {
	table := singleMode(Te, 1000, 5)
	s, err := Broaden(table, Grid{Start: 0, Stop: 2000, Step: 1}, 10)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Y(1000) != 5 {
		Te.Errorf("Expected exactly the mode intensity 5 at the center, got %v", s.Y(1000))
	}
	//half maximum at center +- FWHM/2
	if math.Abs(s.Y(1005)-2.5) > 1e-9 {
		Te.Errorf("Expected half maximum 2.5 at half width, got %v", s.Y(1005))
	}
	fmt.Println("broadened:", s)
}

func TestBroadenEmptyTable(Te *testing.T) {
	s, err := Broaden(emptyTable(Te), Grid{Start: 0, Stop: 100, Step: 0.5}, 3.3)
	if err != nil {
		Te.Fatal(err)
	}
	if !s.IsZero() {
		Te.Error("Broadening an empty table should give an all-zero spectrum")
	}
	if s.Len() != 201 {
		Te.Errorf("Expected 201 points, got %d", s.Len())
	}
}

func TestBroadenTails(Te *testing.T) {
	//a mode outside the window still contributes its tail
	table := singleMode(Te, 3000, 10)
	s, err := Broaden(table, Grid{Start: 0, Stop: 2000, Step: 1}, 10)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Y(2000) <= 0 {
		Te.Error("A mode beyond the grid should still leave a tail")
	}
}

func TestBroadenScale(Te *testing.T) {
	table := singleMode(Te, 1000, 5)
	s, err := Broaden(table, Grid{Start: 0, Stop: 2000, Step: 1}, 10, 0.5)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Y(500) != 5 {
		Te.Errorf("Expected the scaled mode to peak at 500, got %v there", s.Y(500))
	}
}

func TestBroadenErrors(Te *testing.T) {
	table := singleMode(Te, 1000, 5)
	cases := []struct {
		g     Grid
		fwhm  float64
		scale []float64
	}{
		{Grid{0, 2000, -1}, 10, nil},          //bad step
		{Grid{0, 2000, 0}, 10, nil},           //zero step
		{Grid{2000, 0, 1}, 10, nil},           //start >= stop
		{Grid{0, 2000, 1}, 0, nil},            //zero width
		{Grid{0, 2000, 1}, -3, nil},           //negative width
		{Grid{0, 2000, 1}, 10, []float64{0}},  //zero scale
		{Grid{0, 2000, 1}, 10, []float64{-1}}, //negative scale
	}
	for i, c := range cases {
		_, err := Broaden(table, c.g, c.fwhm, c.scale...)
		if err == nil {
			Te.Errorf("Case %d should have failed", i)
			continue
		}
		e, ok := err.(raman.Errorer)
		if !ok || e.Kind() != raman.ErrInvalidParameter {
			Te.Errorf("Case %d: expected InvalidParameter, got %v", i, err)
		}
	}
}

func TestCombineAdditivity(Te *testing.T) {
	g := Grid{Start: 0, Stop: 2000, Step: 1}
	a, err := Broaden(singleMode(Te, 1000, 5), g, 10)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := Broaden(singleMode(Te, 1500, 10), g, 10)
	if err != nil {
		Te.Fatal(err)
	}
	sum, err := Combine([]*Spectrum{a, b}, []float64{1, 1})
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < sum.Len(); i++ {
		if sum.Y(i) != a.Y(i)+b.Y(i) {
			Te.Fatalf("Combination not additive at point %d", i)
		}
	}
	//inputs untouched
	if a.Y(1000) != 5 {
		Te.Error("Combine mutated an input spectrum")
	}
}

func TestCombineErrors(Te *testing.T) {
	g := Grid{Start: 0, Stop: 2000, Step: 1}
	a, _ := Broaden(singleMode(Te, 1000, 5), g, 10)
	b, _ := Broaden(singleMode(Te, 1000, 5), Grid{Start: 0, Stop: 2000, Step: 2}, 10)
	_, err := Combine([]*Spectrum{a, b}, []float64{1, 1})
	if err == nil {
		Te.Fatal("Different grids should be rejected")
	}
	if e := err.(raman.Errorer); e.Kind() != raman.ErrGridMismatch {
		Te.Errorf("Expected GridMismatch, got %v", err)
	}
	_, err = Combine([]*Spectrum{a}, []float64{1, 2})
	if err == nil {
		Te.Fatal("Mismatched weight count should be rejected")
	}
	if e := err.(raman.Errorer); e.Kind() != raman.ErrLengthMismatch {
		Te.Errorf("Expected LengthMismatch, got %v", err)
	}
	_, err = Combine([]*Spectrum{a}, []float64{-1})
	if err == nil {
		Te.Error("Negative weights should be rejected")
	}
	_, err = Combine([]*Spectrum{}, []float64{})
	if err == nil {
		Te.Error("An empty spectrum list should be rejected")
	}
}

func TestNormalizeIdempotence(Te *testing.T) {
	g := Grid{Start: 0, Stop: 2000, Step: 1}
	s, err := Broaden(singleMode(Te, 1000, 5), g, 10)
	if err != nil {
		Te.Fatal(err)
	}
	for _, mode := range []NormMode{Peak, Area} {
		once, err := Normalize(s, mode)
		if err != nil {
			Te.Fatal(err)
		}
		twice, err := Normalize(once, mode)
		if err != nil {
			Te.Fatal(err)
		}
		if !floats.EqualApprox(once.YSlice(), twice.YSlice(), 1e-12) {
			Te.Errorf("Normalization by %v is not idempotent", mode)
		}
	}
	peak, _ := Normalize(s, Peak)
	if math.Abs(peak.Max()-1) > 1e-12 {
		Te.Errorf("Peak-normalized maximum is %v, want 1", peak.Max())
	}
	area, _ := Normalize(s, Area)
	if math.Abs(area.Integral()-1) > 1e-12 {
		Te.Errorf("Area-normalized integral is %v, want 1", area.Integral())
	}
}

func TestNormalizeDegenerate(Te *testing.T) {
	s, err := Broaden(emptyTable(Te), Grid{Start: 0, Stop: 100, Step: 1}, 3.3)
	if err != nil {
		Te.Fatal(err)
	}
	_, err = Normalize(s, Peak)
	if err == nil {
		Te.Fatal("Normalizing an all-zero spectrum should fail")
	}
	if e := err.(raman.Errorer); e.Kind() != raman.ErrDegenerateSpectrum {
		Te.Errorf("Expected DegenerateSpectrum, got %v", err)
	}
}

func TestSubtractAverage(Te *testing.T) {
	g := Grid{Start: 0, Stop: 2000, Step: 1}
	a, _ := Broaden(singleMode(Te, 1000, 5), g, 10)
	b, _ := Broaden(singleMode(Te, 1000, 5), g, 10)
	diff, err := Subtract(a, b)
	if err != nil {
		Te.Fatal(err)
	}
	if !diff.IsZero() {
		Te.Error("Subtracting a spectrum from itself should give zero")
	}
	avg, err := Average([]*Spectrum{a, b})
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.EqualApprox(avg.YSlice(), a.YSlice(), 1e-12) {
		Te.Error("The average of two copies should equal either")
	}
}

func TestSpectrumJSON(Te *testing.T) {
	g := Grid{Start: 0, Stop: 10, Step: 1}
	s, err := Broaden(singleMode(Te, 5, 2), g, 2)
	if err != nil {
		Te.Fatal(err)
	}
	j, err := json.Marshal(s)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("JSON:", string(j))
	s2 := new(Spectrum)
	if err := json.Unmarshal(j, s2); err != nil {
		Te.Fatal(err)
	}
	if !s2.Grid().Eq(s.Grid()) || !floats.EqualApprox(s2.YSlice(), s.YSlice(), 1e-12) {
		Te.Error("Spectrum did not survive a JSON round trip")
	}
}
