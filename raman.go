/*
 * raman.go, part of goraman.
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

package raman

import (
	"fmt"
	"math"
	"sort"

	v3 "github.com/ramanchem/goraman/v3"
)

// Mode is one normal mode of molecular vibration: a harmonic frequency in 1/cm,
// an intensity (IR intensity or Raman scattering activity, arbitrary units) and,
// when the source provides it, the normal-coordinate displacement of every atom.
// A negative frequency follows the usual convention for an imaginary mode.
type Mode struct {
	Frequency float64
	Intensity float64
	Disp      *v3.Matrix //natoms x 3, nil if the source carries no normal coordinates.
}

// Copy returns a copy of the Mode, with its own displacement matrix.
func (M *Mode) Copy() *Mode {
	if M == nil {
		panic(PanicNilMode)
	}
	ret := &Mode{Frequency: M.Frequency, Intensity: M.Intensity}
	if M.Disp != nil {
		ret.Disp = v3.Zeros(M.Disp.NVecs())
		ret.Disp.Copy(M.Disp.Dense)
	}
	return ret
}

// Imaginary returns whether the mode has an imaginary (negative by convention)
// frequency.
func (M *Mode) Imaginary() bool {
	return M.Frequency < 0
}

// NAtoms returns the number of atoms in the mode's displacement, or 0 if the
// mode carries no displacement.
func (M *Mode) NAtoms() int {
	if M.Disp == nil {
		return 0
	}
	return M.Disp.NVecs()
}

// AtomWeights returns, for each atom, the norm of its displacement in the mode,
// i.e. how much that atom moves. It returns nil if the mode carries no
// displacement.
func (M *Mode) AtomWeights() []float64 {
	if M.Disp == nil {
		return nil
	}
	n := M.Disp.NVecs()
	ret := make([]float64, n)
	for i := 0; i < n; i++ {
		x := M.Disp.At(i, 0)
		y := M.Disp.At(i, 1)
		z := M.Disp.At(i, 2)
		ret[i] = math.Sqrt(x*x + y*y + z*z)
	}
	return ret
}

// DominantAtoms returns the indexes of the n atoms that move the most in the
// mode, in decreasing order of displacement norm. If n exceeds the number of
// atoms, or the mode has no displacement, all available indexes are returned.
func (M *Mode) DominantAtoms(n int) []int {
	w := M.AtomWeights()
	if w == nil {
		return nil
	}
	idx := make([]int, len(w))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return w[idx[i]] > w[idx[j]] })
	if n > len(idx) || n < 0 {
		n = len(idx)
	}
	return idx[:n]
}

// ModeTable is an ordered set of vibrational modes from one calculation.
// The ordering is the calculation's own (ascending frequency by convention,
// not enforced). A ModeTable is meant to be built once from a parsed source
// and only read afterwards; none of the methods in this library mutate it.
type ModeTable struct {
	modes  []*Mode
	natoms int //0 when the modes carry no displacements
}

// NewModeTable builds a ModeTable after checking the table invariants: every
// frequency finite, every intensity non-negative, and every non-nil
// displacement with the same number of atoms. Imaginary (negative) frequencies
// are legal; they are flagged by Imaginary, not rejected.
func NewModeTable(modes []*Mode) (*ModeTable, error) {
	if modes == nil {
		return nil, Error{ErrInvalidParameter, "nil mode slice given", []string{"NewModeTable"}, true}
	}
	natoms := 0
	for i, v := range modes {
		if v == nil {
			return nil, Error{ErrInvalidParameter, fmt.Sprintf("mode %d is nil", i), []string{"NewModeTable"}, true}
		}
		if math.IsNaN(v.Frequency) || math.IsInf(v.Frequency, 0) {
			return nil, Error{ErrInvalidParameter, fmt.Sprintf("mode %d: frequency is not finite", i), []string{"NewModeTable"}, true}
		}
		if v.Intensity < 0 || math.IsNaN(v.Intensity) || math.IsInf(v.Intensity, 0) {
			return nil, Error{ErrInvalidParameter, fmt.Sprintf("mode %d: intensity %v is not a non-negative finite number", i, v.Intensity), []string{"NewModeTable"}, true}
		}
		if v.Disp == nil {
			continue
		}
		n := v.Disp.NVecs()
		if natoms == 0 {
			natoms = n
		}
		if n != natoms {
			return nil, Error{ErrAtomCountMismatch, fmt.Sprintf("mode %d has %d atoms, previous modes have %d", i, n, natoms), []string{"NewModeTable"}, true}
		}
	}
	return &ModeTable{modes: modes, natoms: natoms}, nil
}

// Mode returns the ith mode of the table. It panics if i is out of range,
// as this is considered a fundamental function.
func (T *ModeTable) Mode(i int) *Mode {
	if i < 0 || i >= len(T.modes) {
		panic(PanicModeOutOfRange)
	}
	return T.modes[i]
}

// Len returns the number of modes in the table.
func (T *ModeTable) Len() int {
	return len(T.modes)
}

// NAtoms returns the atom count shared by the displacements of the table, or
// 0 if the table carries no displacements.
func (T *ModeTable) NAtoms() int {
	return T.natoms
}

// HasDisp returns whether the modes of the table carry displacement vectors.
func (T *ModeTable) HasDisp() bool {
	return T.natoms > 0
}

// Frequencies returns a new slice with the frequency of each mode, in table
// order.
func (T *ModeTable) Frequencies() []float64 {
	ret := make([]float64, len(T.modes))
	for i, v := range T.modes {
		ret[i] = v.Frequency
	}
	return ret
}

// Intensities returns a new slice with the intensity of each mode, in table
// order.
func (T *ModeTable) Intensities() []float64 {
	ret := make([]float64, len(T.modes))
	for i, v := range T.modes {
		ret[i] = v.Intensity
	}
	return ret
}

// Imaginary returns the indexes of the imaginary-frequency modes of the table.
// An empty slice means a true minimum, one element a transition state.
func (T *ModeTable) Imaginary() []int {
	ret := []int{}
	for i, v := range T.modes {
		if v.Imaginary() {
			ret = append(ret, i)
		}
	}
	return ret
}

// SortedByFrequency returns a new ModeTable with the same modes in ascending
// frequency order. The receiver is not modified.
func (T *ModeTable) SortedByFrequency() *ModeTable {
	modes := make([]*Mode, len(T.modes))
	copy(modes, T.modes)
	sort.SliceStable(modes, func(i, j int) bool { return modes[i].Frequency < modes[j].Frequency })
	return &ModeTable{modes: modes, natoms: T.natoms}
}

func (T *ModeTable) String() string {
	return fmt.Sprintf("ModeTable: %d modes, %d atoms", len(T.modes), T.natoms)
}
