//Package ramanplot draws broadened vibrational spectra, their discrete stems
//and side-by-side comparisons, using the gonum plotting library. Only PNG
//output is produced; anything fancier belongs to the caller.
package ramanplot

import (
	"fmt"
	"image/color"

	raman "github.com/ramanchem/goraman"
	"github.com/ramanchem/goraman/spectrum"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//default canvas size of the saved figures.
const (
	plotWidth  = 15 * vg.Centimeter
	plotHeight = 10 * vg.Centimeter
)

//curve colors, cycled over when several spectra share a canvas.
var palette = []color.RGBA{
	{R: 200, A: 255},
	{B: 200, A: 255},
	{G: 150, A: 255},
	{R: 150, B: 150, A: 255},
}

func basicSpecPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Wavenumber (1/cm)"
	p.Y.Label.Text = "Intensity"
	p.Add(plotter.NewGrid())
	return p
}

func curve(s *spectrum.Spectrum) (*plotter.Line, error) {
	pts := make(plotter.XYs, s.Len())
	for i := 0; i < s.Len(); i++ {
		pts[i].X = s.X(i)
		pts[i].Y = s.Y(i)
	}
	return plotter.NewLine(pts)
}

//PlotSpectrum saves a PNG of the broadened spectrum s under plotname (the
//.png extension is added here). If t is not nil, a vertical stem is drawn at
//each discrete mode of the table, from the baseline up to the mode intensity.
func PlotSpectrum(s *spectrum.Spectrum, t *raman.ModeTable, title, plotname string) error {
	p := basicSpecPlot(title)
	l, err := curve(s)
	if err != nil {
		return err
	}
	l.LineStyle.Color = palette[0]
	l.LineStyle.Width = vg.Points(1)
	p.Add(l)
	if t != nil {
		for i := 0; i < t.Len(); i++ {
			m := t.Mode(i)
			stem, err := plotter.NewLine(plotter.XYs{{X: m.Frequency, Y: 0}, {X: m.Frequency, Y: m.Intensity}})
			if err != nil {
				return err
			}
			stem.LineStyle.Color = color.RGBA{R: 100, G: 100, B: 100, A: 255}
			stem.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
			p.Add(stem)
		}
	}
	return p.Save(plotWidth, plotHeight, fmt.Sprintf("%s.png", plotname))
}

//PlotComparison saves a PNG with all the given spectra on one canvas, labeled
//in the legend, which is the usual way of eyeballing a mode assignment or the
//effect of a perturbation. All spectra must share a grid; this is not checked
//here, as overlaying different ranges is sometimes exactly what one wants.
func PlotComparison(spectra []*spectrum.Spectrum, labels []string, title, plotname string) error {
	if len(labels) != len(spectra) {
		return spectrumError(fmt.Sprintf("%d spectra but %d labels given", len(spectra), len(labels)))
	}
	p := basicSpecPlot(title)
	for i, s := range spectra {
		l, err := curve(s)
		if err != nil {
			return err
		}
		l.LineStyle.Color = palette[i%len(palette)]
		l.LineStyle.Width = vg.Points(1)
		p.Add(l)
		p.Legend.Add(labels[i], l)
	}
	p.Legend.Top = true
	return p.Save(plotWidth, plotHeight, fmt.Sprintf("%s.png", plotname))
}

//the only failure this package produces on its own; everything else comes
//from gonum/plot or from the inputs.
func spectrumError(msg string) error {
	return Error{raman.ErrLengthMismatch, msg, []string{"ramanplot"}, true}
}

//Error is the concrete error of this package. It implements raman.Errorer.
type Error struct {
	kind     string
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("goRaman/ramanplot: %s: %s", err.kind, err.message)
}

func (err Error) Kind() string { return err.kind }

func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err Error) Critical() bool { return err.critical }
