//Package spectrum synthesizes continuous vibrational spectra from the
//discrete modes of a calculation, and combines and normalizes them. Spectra
//are value objects: every operation returns a new Spectrum and leaves its
//inputs alone.
package spectrum

import (
	"encoding/json"
	"fmt"
	"math"

	raman "github.com/ramanchem/goraman"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

//Grid describes the frequency axis a spectrum is sampled on: points
//Start, Start+Step, ... up to and including the last point not beyond Stop.
type Grid struct {
	Start float64 `json:"start"`
	Stop  float64 `json:"stop"`
	Step  float64 `json:"step"`
}

//rounding guard for the point count, so a Stop that is an exact multiple of
//Step away from Start is not dropped to floating-point noise.
const gridEps = 1e-9

func (g Grid) validate() error {
	if g.Step <= 0 || math.IsNaN(g.Step) {
		return Error{raman.ErrInvalidParameter, fmt.Sprintf("grid step must be positive, got %v", g.Step), []string{"Grid.validate"}, true}
	}
	if !(g.Start < g.Stop) {
		return Error{raman.ErrInvalidParameter, fmt.Sprintf("grid start (%v) must be smaller than stop (%v)", g.Start, g.Stop), []string{"Grid.validate"}, true}
	}
	return nil
}

//NPoints returns the number of sample points of the grid.
func (g Grid) NPoints() int {
	return int(math.Floor((g.Stop-g.Start)/g.Step+gridEps)) + 1
}

//Point returns the ith sample point of the grid.
func (g Grid) Point(i int) float64 {
	return g.Start + float64(i)*g.Step
}

//X returns a new slice with all the sample points of the grid, in increasing
//order.
func (g Grid) X() []float64 {
	n := g.NPoints()
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = g.Point(i)
	}
	return ret
}

//Eq returns whether g and o describe the same grid. Grids are compared
//exactly: two grids are the same grid only if they were built from the same
//numbers.
func (g Grid) Eq(o Grid) bool {
	return g.Start == o.Start && g.Stop == o.Stop && g.Step == o.Step
}

//Spectrum is a continuous spectrum: a frequency grid and one intensity sample
//per grid point. It is immutable by convention; accessors hand out copies.
type Spectrum struct {
	grid Grid
	y    []float64
}

//New builds a Spectrum from a grid and its samples. The number of samples
//must match the number of grid points.
func New(g Grid, samples []float64) (*Spectrum, error) {
	if err := g.validate(); err != nil {
		return nil, errDecorate(err, "New")
	}
	if len(samples) != g.NPoints() {
		return nil, Error{raman.ErrLengthMismatch, fmt.Sprintf("%d samples given for a grid of %d points", len(samples), g.NPoints()), []string{"New"}, true}
	}
	y := make([]float64, len(samples))
	copy(y, samples)
	return &Spectrum{grid: g, y: y}, nil
}

//Grid returns the grid the spectrum is sampled on.
func (S *Spectrum) Grid() Grid {
	return S.grid
}

//Len returns the number of sample points.
func (S *Spectrum) Len() int {
	return len(S.y)
}

//X returns the frequency of the ith sample point.
func (S *Spectrum) X(i int) float64 {
	return S.grid.Point(i)
}

//Y returns the intensity at the ith sample point.
func (S *Spectrum) Y(i int) float64 {
	return S.y[i]
}

//XSlice returns a copy of the frequency axis.
func (S *Spectrum) XSlice() []float64 {
	return S.grid.X()
}

//YSlice returns a copy of the intensity samples.
func (S *Spectrum) YSlice() []float64 {
	ret := make([]float64, len(S.y))
	copy(ret, S.y)
	return ret
}

//Max returns the largest intensity sample of the spectrum.
func (S *Spectrum) Max() float64 {
	return floats.Max(S.y)
}

//Integral returns the trapezoidal integral of the spectrum over its grid.
func (S *Spectrum) Integral() float64 {
	return integrate.Trapezoidal(S.grid.X(), S.y)
}

//IsZero returns whether every sample of the spectrum is zero.
func (S *Spectrum) IsZero() bool {
	for _, v := range S.y {
		if v != 0 {
			return false
		}
	}
	return true
}

func (S *Spectrum) String() string {
	return fmt.Sprintf("Spectrum: [%g, %g] 1/cm, step %g, %d points", S.grid.Start, S.grid.Stop, S.grid.Step, len(S.y))
}

func (S *Spectrum) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Grid    Grid      `json:"grid"`
		Samples []float64 `json:"samples"`
	}{
		Grid:    S.grid,
		Samples: S.y,
	})
}

func (S *Spectrum) UnmarshalJSON(b []byte) error {
	var a struct {
		Grid    Grid      `json:"grid"`
		Samples []float64 `json:"samples"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	t, err := New(a.Grid, a.Samples)
	if err != nil {
		return err
	}
	*S = *t
	return nil
}

//Errors

//Error is the concrete error of this package. It implements raman.Errorer.
type Error struct {
	kind     string //one of the raman.Err* constants
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("goRaman/spectrum: %s: %s", err.kind, err.message)
}

//Kind returns the failure kind, one of the raman.Err* constants.
func (err Error) Kind() string { return err.kind }

//Decorate adds the deco string to the decoration slice of the error and
//returns the resulting slice.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err Error) Critical() bool { return err.critical }

//errDecorate asserts that the error implements raman.Errorer and decorates it
//with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(raman.Errorer)
	err2.Decorate(caller)
	return err2
}
