/*
 * gaussian.go, part of goraman.
 *
 * Copyright 2015-2024 The goRaman developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package gparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	raman "github.com/ramanchem/goraman"
	v3 "github.com/ramanchem/goraman/v3"
)

//Kind selects which intensity column of a Gaussian frequency job to read.
type Kind string

const (
	IR    Kind = "ir"    //IR intensities, KM/Mole
	Raman Kind = "raman" //Raman scattering activities, A**4/AMU
)

//Sentinels in Gaussian output. The trailing "--" of the per-mode lines keeps
//us off the high-precision (freq=hpmodes) blocks, which use "---" and would
//otherwise be read twice.
const (
	freqsMark  = "Frequencies --"
	irMark     = "IR Inten"
	ramanMark  = "Raman Activ"
	hpModeMark = "---"
	distMark   = "Distance matrix (angstroms):"
	inOriMark  = "Input orientation:"
	stdOriMark = "Standard orientation:"
)

//Identifies distance matrix rows in Gaussian log files.
var dmRowRe = regexp.MustCompile(`^\s*\d+\s+[A-Z][a-z]?\s+(-?\d+\.\d+\s*)+$`)

//column-index header lines between distance matrix panels.
var dmHeaderRe = regexp.MustCompile(`^\s*\d+(\s+\d+)*\s*$`)

//logFile reads a Gaussian log, decompressing on the fly if the name ends in
//.gz, .zst or .zstd.
type logFile struct {
	f   *os.File
	r   io.Reader
	gz  *gzip.Reader
	zst *zstd.Decoder
}

func openLog(filename string) (*logFile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Error{raman.ErrUnableToOpen, err.Error(), filename, []string{"openLog"}, true}
	}
	ret := &logFile{f: f, r: f}
	switch {
	case strings.HasSuffix(filename, ".gz"):
		ret.gz, err = gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, Error{raman.ErrUnableToOpen, err.Error(), filename, []string{"openLog"}, true}
		}
		ret.r = ret.gz
	case strings.HasSuffix(filename, ".zst"), strings.HasSuffix(filename, ".zstd"):
		ret.zst, err = zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, Error{raman.ErrUnableToOpen, err.Error(), filename, []string{"openLog"}, true}
		}
		ret.r = ret.zst
	}
	return ret, nil
}

func (L *logFile) Read(p []byte) (int, error) {
	return L.r.Read(p)
}

func (L *logFile) Close() error {
	if L.gz != nil {
		L.gz.Close()
	}
	if L.zst != nil {
		L.zst.Close()
	}
	return L.f.Close()
}

//parseFloats returns every field of the line that parses as a float, in
//order. Labels and separators simply fail to parse and are left out.
func parseFloats(line string) []float64 {
	ret := []float64{}
	for _, v := range strings.Fields(line) {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			ret = append(ret, f)
		}
	}
	return ret
}

//ModesFromLog reads the harmonic frequency section of a Gaussian log file and
//returns the mode table, with per-atom normal-coordinate displacements, and
//the element symbol of each atom. kind selects IR intensities or Raman
//activities as the intensity of each mode.
func ModesFromLog(filename string, kind Kind) (*raman.ModeTable, []string, error) {
	if kind != IR && kind != Raman {
		return nil, nil, Error{raman.ErrInvalidParameter, fmt.Sprintf("kind must be %q or %q, got %q", IR, Raman, kind), filename, []string{"ModesFromLog"}, true}
	}
	fin, err := openLog(filename)
	if err != nil {
		return nil, nil, errDecorate(err, "ModesFromLog")
	}
	defer fin.Close()
	var (
		freqs    []float64
		irs      []float64
		ramans   []float64
		disp     [][]float64 //one flat x,y,z,... buffer per mode
		curModes []int       //modes of the block being read, up to 3
		atomNums []int
		inAtoms  bool
		firstBlk = true
	)
	scanner := bufio.NewScanner(fin)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.Contains(line, freqsMark) && !strings.Contains(line, hpModeMark):
			vals := parseFloats(line)
			curModes = curModes[:0]
			for _, v := range vals {
				curModes = append(curModes, len(freqs))
				freqs = append(freqs, v)
				disp = append(disp, []float64{})
			}
			if len(freqs) > len(vals) {
				firstBlk = false
			}
		case strings.Contains(line, irMark) && !strings.Contains(line, hpModeMark):
			irs = append(irs, parseFloats(line)...)
		case strings.Contains(line, ramanMark) && !strings.Contains(line, hpModeMark):
			ramans = append(ramans, parseFloats(line)...)
		default:
			fields := strings.Fields(line)
			if len(fields) > 0 && fields[0] == "Atom" && len(curModes) > 0 {
				inAtoms = true
				continue
			}
			if !inAtoms {
				continue
			}
			//a displacement row is: atom number, atomic number, then x y z
			//per mode of the block. Anything else ends the block.
			if len(fields) != 2+3*len(curModes) {
				inAtoms = false
				continue
			}
			if _, err := strconv.Atoi(fields[0]); err != nil {
				inAtoms = false
				continue
			}
			an, err := strconv.Atoi(fields[1])
			if err != nil {
				inAtoms = false
				continue
			}
			if firstBlk {
				atomNums = append(atomNums, an)
			}
			for k, mi := range curModes {
				for c := 0; c < 3; c++ {
					v, err := strconv.ParseFloat(fields[2+3*k+c], 64)
					if err != nil {
						return nil, nil, Error{raman.ErrWrongFormat, fmt.Sprintf("bad displacement entry %q", fields[2+3*k+c]), filename, []string{"ModesFromLog"}, true}
					}
					disp[mi] = append(disp[mi], v)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, Error{raman.ErrWrongFormat, err.Error(), filename, []string{"ModesFromLog"}, true}
	}
	if len(freqs) == 0 {
		return nil, nil, Error{raman.ErrNoFrequencies, "no harmonic frequency section found", filename, []string{"ModesFromLog"}, true}
	}
	intens := irs
	if kind == Raman {
		intens = ramans
	}
	if len(intens) != len(freqs) {
		return nil, nil, Error{raman.ErrNoFrequencies, fmt.Sprintf("%d frequencies but %d %s intensities", len(freqs), len(intens), kind), filename, []string{"ModesFromLog"}, true}
	}
	natoms := len(atomNums)
	modes := make([]*raman.Mode, len(freqs))
	for i := range freqs {
		m := &raman.Mode{Frequency: freqs[i], Intensity: intens[i]}
		if len(disp[i]) > 0 {
			if len(disp[i]) != 3*natoms {
				return nil, nil, Error{raman.ErrWrongFormat, fmt.Sprintf("mode %d has %d displacement entries, want %d", i, len(disp[i]), 3*natoms), filename, []string{"ModesFromLog"}, true}
			}
			m.Disp, err = v3.NewMatrix(disp[i])
			if err != nil {
				return nil, nil, Error{raman.ErrWrongFormat, err.Error(), filename, []string{"v3.NewMatrix", "ModesFromLog"}, true}
			}
		}
		modes[i] = m
	}
	table, err := raman.NewModeTable(modes)
	if err != nil {
		return nil, nil, errDecorate(err, "ModesFromLog")
	}
	symbols := make([]string, natoms)
	for i, z := range atomNums {
		symbols[i] = Symbol(z)
	}
	return table, symbols, nil
}

//CoordsFromLog reads the last cartesian geometry printed in a Gaussian log
//file (the standard orientation if present, the input orientation otherwise)
//and returns it, in Angstroms, together with the element symbol of each atom.
func CoordsFromLog(filename string) (*v3.Matrix, []string, error) {
	fin, err := openLog(filename)
	if err != nil {
		return nil, nil, errDecorate(err, "CoordsFromLog")
	}
	defer fin.Close()
	var (
		data     []float64
		atomNums []int
		curData  []float64
		curNums  []int
		inBlock  bool
		dashes   int
		standard bool //whether the kept block is a standard orientation
	)
	scanner := bufio.NewScanner(fin)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if strings.Contains(line, stdOriMark) || strings.Contains(line, inOriMark) {
			//input orientations never override a standard one
			if strings.Contains(line, inOriMark) && standard {
				inBlock = false
				continue
			}
			standard = strings.Contains(line, stdOriMark)
			inBlock = true
			dashes = 0
			curData = []float64{}
			curNums = []int{}
			continue
		}
		if !inBlock {
			continue
		}
		if strings.HasPrefix(trimmed, "---") {
			dashes++
			if dashes == 3 { //the closing rule of the table
				inBlock = false
				data = curData
				atomNums = curNums
			}
			continue
		}
		if dashes != 2 {
			continue //column headers
		}
		fields := strings.Fields(line)
		if len(fields) != 6 {
			return nil, nil, Error{raman.ErrWrongFormat, fmt.Sprintf("bad orientation row %q", trimmed), filename, []string{"CoordsFromLog"}, true}
		}
		an, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, Error{raman.ErrWrongFormat, fmt.Sprintf("bad atomic number in row %q", trimmed), filename, []string{"CoordsFromLog"}, true}
		}
		curNums = append(curNums, an)
		for c := 3; c < 6; c++ {
			v, err := strconv.ParseFloat(fields[c], 64)
			if err != nil {
				return nil, nil, Error{raman.ErrWrongFormat, fmt.Sprintf("bad coordinate in row %q", trimmed), filename, []string{"CoordsFromLog"}, true}
			}
			curData = append(curData, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, Error{raman.ErrWrongFormat, err.Error(), filename, []string{"CoordsFromLog"}, true}
	}
	if len(data) == 0 {
		return nil, nil, Error{raman.ErrWrongFormat, "no orientation section found", filename, []string{"CoordsFromLog"}, true}
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		return nil, nil, Error{raman.ErrWrongFormat, err.Error(), filename, []string{"v3.NewMatrix", "CoordsFromLog"}, true}
	}
	symbols := make([]string, len(atomNums))
	for i, z := range atomNums {
		symbols[i] = Symbol(z)
	}
	return coords, symbols, nil
}

//DistMatrixFromLog reads the interatomic distance matrix printed by Gaussian
//(in Angstroms). The matrix comes in panels of up to five columns; rows of
//each panel are appended to the triangle in the order they come.
func DistMatrixFromLog(filename string) (*raman.DistanceMatrix, error) {
	fin, err := openLog(filename)
	if err != nil {
		return nil, errDecorate(err, "DistMatrixFromLog")
	}
	defer fin.Close()
	var (
		rows  [][]float64
		inDM  bool
		found bool
	)
	scanner := bufio.NewScanner(fin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, distMark) {
			inDM = true
			found = true
			rows = [][]float64{}
			continue
		}
		if !inDM {
			continue
		}
		switch {
		case dmHeaderRe.MatchString(line): //column indexes between panels
			continue
		case dmRowRe.MatchString(line):
			fields := strings.Fields(line)
			ri, err := strconv.Atoi(fields[0])
			if err != nil || ri < 1 {
				return nil, Error{raman.ErrWrongFormat, fmt.Sprintf("bad distance matrix row %q", strings.TrimSpace(line)), filename, []string{"DistMatrixFromLog"}, true}
			}
			for len(rows) < ri {
				rows = append(rows, []float64{})
			}
			//fields 0 and 1 are the atom index and its element symbol
			for _, v := range fields[2:] {
				d, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return nil, Error{raman.ErrWrongFormat, fmt.Sprintf("bad distance entry %q", v), filename, []string{"DistMatrixFromLog"}, true}
				}
				rows[ri-1] = append(rows[ri-1], d)
			}
		default:
			//the matrix is always terminated by the stoichiometry line,
			//but any alien line means the section is over.
			inDM = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{raman.ErrWrongFormat, err.Error(), filename, []string{"DistMatrixFromLog"}, true}
	}
	if !found {
		return nil, Error{raman.ErrWrongFormat, "no distance matrix section found", filename, []string{"DistMatrixFromLog"}, true}
	}
	ret, err := raman.DistanceMatrixFromRows(rows)
	if err != nil {
		return nil, errDecorate(err, "DistMatrixFromLog")
	}
	return ret, nil
}

//Errors

//Error is the concrete error of this package. It implements raman.Errorer and
//additionally carries the name of the offending file.
type Error struct {
	kind     string //one of the raman.Err* constants
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("goRaman/gparse: %s: file %s: %s", err.kind, err.filename, err.message)
}

//Kind returns the failure kind, one of the raman.Err* constants.
func (err Error) Kind() string { return err.kind }

//FileName returns the file the failure was found in.
func (err Error) FileName() string { return err.filename }

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

func errDecorate(err error, caller string) error {
	err2 := err.(raman.Errorer)
	err2.Decorate(caller)
	return err2
}
