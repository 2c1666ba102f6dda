package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	raman "github.com/ramanchem/goraman"
	"github.com/ramanchem/goraman/assign"
	"github.com/ramanchem/goraman/gparse"
	"github.com/ramanchem/goraman/spectrum"
)

//config holds everything the subcommands take from a TOML file. Flags
//override whatever is read here.
type config struct {
	Start     float64 `toml:"start"`     //grid start, 1/cm
	Stop      float64 `toml:"stop"`      //grid stop, 1/cm
	Step      float64 `toml:"step"`      //grid step, 1/cm
	Width     float64 `toml:"width"`     //Lorentzian FWHM, 1/cm
	Scale     float64 `toml:"scale"`     //frequency scale factor
	Threshold float64 `toml:"threshold"` //assignment acceptance threshold
	Kind      string  `toml:"kind"`      //"ir" or "raman"
	Normalize string  `toml:"normalize"` //"none", "peak" or "area"
}

func defaultConfig() config {
	return config{
		Start:     0,
		Stop:      4000,
		Step:      1,
		Width:     raman.DefaultWidth,
		Scale:     1,
		Threshold: assign.DefaultThreshold,
		Kind:      string(gparse.Raman),
		Normalize: "none",
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c config) grid() spectrum.Grid {
	return spectrum.Grid{Start: c.Start, Stop: c.Stop, Step: c.Step}
}

func (c config) kind() gparse.Kind {
	return gparse.Kind(strings.ToLower(c.Kind))
}

//applyNormalize rescales s according to the config, or returns it untouched
//for "none".
func (c config) applyNormalize(s *spectrum.Spectrum) (*spectrum.Spectrum, error) {
	switch strings.ToLower(c.Normalize) {
	case "", "none":
		return s, nil
	case "peak":
		return spectrum.Normalize(s, spectrum.Peak)
	case "area":
		return spectrum.Normalize(s, spectrum.Area)
	}
	return nil, fmt.Errorf("unknown normalization mode %q (want none, peak or area)", c.Normalize)
}

//loadModes reads a mode table from a log or CSV file, deciding by extension.
//CSV tables carry no displacements and cannot be used for mode matching.
func loadModes(filename string, kind gparse.Kind) (*raman.ModeTable, []string, error) {
	base := strings.TrimSuffix(strings.TrimSuffix(filename, ".gz"), ".zst")
	if strings.HasSuffix(base, ".csv") {
		t, err := gparse.ModesFromCSV(filename)
		return t, nil, err
	}
	return gparse.ModesFromLog(filename, kind)
}
