package spectrum

import (
	"fmt"
	"math"

	raman "github.com/ramanchem/goraman"
)

//Lorentzian evaluates at x a Lorentzian line shape centered at center, with
//full width at half maximum fwhm, scaled so that its value at the center is
//amplitude. Note that the shape is peak-normalized, not area-normalized: a
//mode contributes exactly its intensity at its own frequency.
func Lorentzian(x, amplitude, center, fwhm float64) float64 {
	hwhm := fwhm / 2
	return amplitude * (hwhm * hwhm) / ((x-center)*(x-center) + hwhm*hwhm)
}

//Broaden synthesizes a continuous spectrum from the discrete modes of t by
//placing at each mode's frequency a Lorentzian of the given full width at
//half maximum, scaled by the mode's intensity, and summing over modes at each
//point of the grid. An optional multiplicative frequency scale factor may be
//given, to correct the systematic bias of the level of theory (see
//raman.FreqScale for common values). Modes whose (scaled) frequency falls
//outside the grid still contribute their tails. An empty table gives an
//all-zero spectrum.
func Broaden(t *raman.ModeTable, g Grid, fwhm float64, scale ...float64) (*Spectrum, error) {
	if t == nil {
		return nil, Error{raman.ErrInvalidParameter, "nil ModeTable given", []string{"Broaden"}, true}
	}
	if err := g.validate(); err != nil {
		return nil, errDecorate(err, "Broaden")
	}
	if fwhm <= 0 || math.IsNaN(fwhm) {
		return nil, Error{raman.ErrInvalidParameter, fmt.Sprintf("line width must be positive, got %v", fwhm), []string{"Broaden"}, true}
	}
	s := 1.0
	if len(scale) > 0 {
		s = scale[0]
		if s <= 0 || math.IsNaN(s) {
			return nil, Error{raman.ErrInvalidParameter, fmt.Sprintf("frequency scale factor must be positive, got %v", s), []string{"Broaden"}, true}
		}
	}
	n := g.NPoints()
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x := g.Point(i)
		for j := 0; j < t.Len(); j++ {
			m := t.Mode(j)
			y[i] += Lorentzian(x, m.Intensity, s*m.Frequency, fwhm)
		}
	}
	return &Spectrum{grid: g, y: y}, nil
}
