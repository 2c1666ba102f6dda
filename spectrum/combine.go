package spectrum

import (
	"fmt"
	"math"

	raman "github.com/ramanchem/goraman"
	"gonum.org/v1/gonum/floats"
)

//NormMode selects how a spectrum is normalized.
type NormMode int

const (
	//Peak rescales so the maximum sample equals 1.
	Peak NormMode = iota
	//Area rescales so the trapezoidal integral over the grid equals 1.
	Area
)

func (n NormMode) String() string {
	switch n {
	case Peak:
		return "peak"
	case Area:
		return "area"
	}
	return "unknown"
}

//Combine returns the weighted pointwise sum of the given spectra, which must
//all be sampled on the same grid. The weights need not add up to 1; Boltzmann
//population weights, for instance, are the caller's business.
func Combine(spectra []*Spectrum, weights []float64) (*Spectrum, error) {
	if len(spectra) == 0 {
		return nil, Error{raman.ErrInvalidParameter, "no spectra given", []string{"Combine"}, true}
	}
	if len(weights) != len(spectra) {
		return nil, Error{raman.ErrLengthMismatch, fmt.Sprintf("%d spectra but %d weights given", len(spectra), len(weights)), []string{"Combine"}, true}
	}
	g := spectra[0].grid
	for i, v := range spectra {
		if !v.grid.Eq(g) {
			return nil, Error{raman.ErrGridMismatch, fmt.Sprintf("spectrum %d is sampled on %+v, spectrum 0 on %+v", i, v.grid, g), []string{"Combine"}, true}
		}
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, Error{raman.ErrInvalidParameter, fmt.Sprintf("weight %d is %v, want a non-negative number", i, w), []string{"Combine"}, true}
		}
	}
	y := make([]float64, len(spectra[0].y))
	for i, v := range spectra {
		floats.AddScaled(y, weights[i], v.y)
	}
	return &Spectrum{grid: g, y: y}, nil
}

//Average returns the plain average of the given spectra, which must share a
//grid.
func Average(spectra []*Spectrum) (*Spectrum, error) {
	w := make([]float64, len(spectra))
	for i := range w {
		w[i] = 1 / float64(len(spectra))
	}
	ret, err := Combine(spectra, w)
	if err != nil {
		return nil, errDecorate(err, "Average")
	}
	return ret, nil
}

//Subtract returns the difference spectrum a-b. Both spectra must share a
//grid. Note that the result can have negative samples; normalizing it by
//area is then on the caller's own head.
func Subtract(a, b *Spectrum) (*Spectrum, error) {
	if !a.grid.Eq(b.grid) {
		return nil, Error{raman.ErrGridMismatch, fmt.Sprintf("spectra sampled on %+v and %+v", a.grid, b.grid), []string{"Subtract"}, true}
	}
	y := make([]float64, len(a.y))
	floats.SubTo(y, a.y, b.y)
	return &Spectrum{grid: a.grid, y: y}, nil
}

//Normalize returns a rescaled copy of s with either its maximum sample equal
//to 1 (Peak) or its trapezoidal integral equal to 1 (Area). An all-zero
//spectrum cannot be normalized and gives a DegenerateSpectrum error instead
//of a division by zero.
func Normalize(s *Spectrum, mode NormMode) (*Spectrum, error) {
	if s.IsZero() {
		return nil, Error{raman.ErrDegenerateSpectrum, "cannot normalize an all-zero spectrum", []string{"Normalize"}, true}
	}
	var ref float64
	switch mode {
	case Peak:
		ref = s.Max()
	case Area:
		ref = s.Integral()
	default:
		return nil, Error{raman.ErrInvalidParameter, fmt.Sprintf("unknown normalization mode %d", mode), []string{"Normalize"}, true}
	}
	if ref == 0 {
		return nil, Error{raman.ErrDegenerateSpectrum, fmt.Sprintf("%s reference of the spectrum is zero", mode), []string{"Normalize"}, true}
	}
	y := make([]float64, len(s.y))
	floats.ScaleTo(y, 1/ref, s.y)
	return &Spectrum{grid: s.grid, y: y}, nil
}
