/*
 * raman_test.go, part of goraman.
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
	"testing"

	v3 "github.com/ramanchem/goraman/v3"
)

func mustMatrix(Te *testing.T, data []float64) *v3.Matrix {
	m, err := v3.NewMatrix(data)
	if err != nil {
		Te.Fatal(err)
	}
	return m
}

func TestModeTable(Te *testing.T) {
	d1 := mustMatrix(Te, []float64{0, 0, 1, 0, 0, -1})
	d2 := mustMatrix(Te, []float64{0, 1, 0, 0, -1, 0})
	table, err := NewModeTable([]*Mode{
		{Frequency: 1000, Intensity: 5, Disp: d1},
		{Frequency: 1500, Intensity: 10, Disp: d2},
	})
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(table)
	if table.Len() != 2 || table.NAtoms() != 2 || !table.HasDisp() {
		Te.Errorf("Wrong table shape: %v", table)
	}
	f := table.Frequencies()
	if f[0] != 1000 || f[1] != 1500 {
		Te.Errorf("Wrong frequencies: %v", f)
	}
	in := table.Intensities()
	if in[0] != 5 || in[1] != 10 {
		Te.Errorf("Wrong intensities: %v", in)
	}
	if len(table.Imaginary()) != 0 {
		Te.Error("No imaginary modes expected")
	}
}

func TestModeTableValidation(Te *testing.T) {
	_, err := NewModeTable(nil)
	if err == nil {
		Te.Error("A nil mode slice should be rejected")
	}
	_, err = NewModeTable([]*Mode{{Frequency: math.NaN(), Intensity: 1}})
	if err == nil {
		Te.Error("A NaN frequency should be rejected")
	}
	_, err = NewModeTable([]*Mode{{Frequency: 100, Intensity: -1}})
	if err == nil {
		Te.Error("A negative intensity should be rejected")
	}
	d1 := mustMatrix(Te, []float64{0, 0, 1})
	d2 := mustMatrix(Te, []float64{0, 0, 1, 0, 0, -1})
	_, err = NewModeTable([]*Mode{
		{Frequency: 100, Intensity: 1, Disp: d1},
		{Frequency: 200, Intensity: 1, Disp: d2},
	})
	if err == nil {
		Te.Error("Displacements with different atom counts should be rejected")
	}
	e, ok := err.(Errorer)
	if !ok || e.Kind() != ErrAtomCountMismatch {
		Te.Errorf("Expected an AtomCountMismatch error, got %v", err)
	}
	//negative frequencies are flagged, not rejected
	table, err := NewModeTable([]*Mode{{Frequency: -50, Intensity: 1}, {Frequency: 100, Intensity: 2}})
	if err != nil {
		Te.Fatal(err)
	}
	im := table.Imaginary()
	if len(im) != 1 || im[0] != 0 {
		Te.Errorf("Expected mode 0 flagged as imaginary, got %v", im)
	}
}

func TestModeWeights(Te *testing.T) {
	d := mustMatrix(Te, []float64{0, 0, 0.1, 0, 0.3, 0.4, 1, 0, 0})
	m := &Mode{Frequency: 1000, Intensity: 1, Disp: d}
	w := m.AtomWeights()
	want := []float64{0.1, 0.5, 1}
	for i := range w {
		if math.Abs(w[i]-want[i]) > 1e-12 {
			Te.Errorf("Atom %d: expected weight %v, got %v", i, want[i], w[i])
		}
	}
	dom := m.DominantAtoms(2)
	if len(dom) != 2 || dom[0] != 2 || dom[1] != 1 {
		Te.Errorf("Expected dominant atoms [2 1], got %v", dom)
	}
}

func TestSortedByFrequency(Te *testing.T) {
	table, err := NewModeTable([]*Mode{
		{Frequency: 1500, Intensity: 1},
		{Frequency: 1000, Intensity: 2},
	})
	if err != nil {
		Te.Fatal(err)
	}
	sorted := table.SortedByFrequency()
	if sorted.Mode(0).Frequency != 1000 || sorted.Mode(1).Frequency != 1500 {
		Te.Error("Table not sorted by frequency")
	}
	//the receiver must not change
	if table.Mode(0).Frequency != 1500 {
		Te.Error("SortedByFrequency mutated its receiver")
	}
}

func TestDistanceMatrix(Te *testing.T) {
	coords := mustMatrix(Te, []float64{
		0, 0, 0,
		3, 0, 0,
		0, 4, 0,
	})
	D := NewDistanceMatrix(coords)
	if D.Len() != 3 {
		Te.Fatalf("Expected 3 atoms, got %d", D.Len())
	}
	if D.At(0, 1) != 3 || D.At(1, 0) != 3 {
		Te.Errorf("Expected symmetric distance 3, got %v and %v", D.At(0, 1), D.At(1, 0))
	}
	if D.At(2, 1) != 5 {
		Te.Errorf("Expected distance 5, got %v", D.At(2, 1))
	}
	fl := D.Flattened()
	if len(fl) != 6 {
		Te.Errorf("Expected 6 flattened entries, got %d", len(fl))
	}
	S := D.Shift(1)
	if S.At(0, 1) != 4 || D.At(0, 1) != 3 {
		Te.Error("Shift wrong, or it mutated its receiver")
	}
}

func TestDistanceMatrixRMSD(Te *testing.T) {
	coords := mustMatrix(Te, []float64{0, 0, 0, 3, 0, 0, 0, 4, 0})
	D := NewDistanceMatrix(coords)
	same, err := D.RMSD(D)
	if err != nil {
		Te.Fatal(err)
	}
	if same != 0 {
		Te.Errorf("RMSD of a matrix with itself should be 0, got %v", same)
	}
	S := D.Shift(2)
	r, err := D.RMSD(S)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(r-2) > 1e-12 {
		Te.Errorf("Expected RMSD 2 against a 2-shifted copy, got %v", r)
	}
	//with a threshold under the shift, nothing is comparable
	_, err = D.RMSD(S, 1.0)
	if err == nil {
		Te.Error("Expected an error when the threshold excludes every entry")
	}
	other := NewDistanceMatrix(mustMatrix(Te, []float64{0, 0, 0, 1, 0, 0}))
	_, err = D.RMSD(other)
	if err == nil {
		Te.Error("Expected an error for matrices of different size")
	}
}

func TestDistanceMatrixFromRows(Te *testing.T) {
	_, err := DistanceMatrixFromRows([][]float64{{0}, {1, 0}, {2, 1, 0}})
	if err != nil {
		Te.Error(err)
	}
	_, err = DistanceMatrixFromRows([][]float64{{0}, {1, 0, 3}})
	if err == nil {
		Te.Error("Rows not in ascending length should be rejected")
	}
}
