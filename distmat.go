/*
 * distmat.go, part of goraman.
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

	v3 "github.com/ramanchem/goraman/v3"
)

// DistanceMatrix holds the pairwise interatomic distances of one molecular
// geometry, in Angstroms. Only the lower triangle is stored; At is symmetric.
type DistanceMatrix struct {
	rows [][]float64 //row i has i+1 entries, rows[i][i] = 0
}

// NewDistanceMatrix computes the distance matrix of the given coordinates.
func NewDistanceMatrix(coords *v3.Matrix) *DistanceMatrix {
	n := coords.NVecs()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, i+1)
		for j := 0; j <= i; j++ {
			dx := coords.At(i, 0) - coords.At(j, 0)
			dy := coords.At(i, 1) - coords.At(j, 1)
			dz := coords.At(i, 2) - coords.At(j, 2)
			rows[i][j] = math.Sqrt(dx*dx + dy*dy + dz*dz)
		}
	}
	return &DistanceMatrix{rows: rows}
}

// DistanceMatrixFromRows builds a DistanceMatrix from an already lower
// triangular slice of rows, where row i must have i+1 entries, as read from,
// say, a CSV file or a calculation log.
func DistanceMatrixFromRows(rows [][]float64) (*DistanceMatrix, error) {
	for i, v := range rows {
		if len(v) != i+1 {
			return nil, Error{ErrWrongFormat, fmt.Sprintf("row %d has %d entries, want %d: rows must come in ascending length", i, len(v), i+1), []string{"DistanceMatrixFromRows"}, true}
		}
	}
	return &DistanceMatrix{rows: rows}, nil
}

// Len returns the number of atoms covered by the matrix.
func (D *DistanceMatrix) Len() int {
	return len(D.rows)
}

// At returns the distance between atoms i and j. It is symmetric in its
// arguments and panics on out-of-range indexes.
func (D *DistanceMatrix) At(i, j int) float64 {
	if j > i {
		i, j = j, i
	}
	if i < 0 || j < 0 || i >= len(D.rows) {
		panic(PanicAtomOutOfRange)
	}
	return D.rows[i][j]
}

// Flattened returns a copy of the lower triangle of the matrix as a single
// slice, row by row.
func (D *DistanceMatrix) Flattened() []float64 {
	ret := make([]float64, 0, len(D.rows)*(len(D.rows)+1)/2)
	for _, row := range D.rows {
		ret = append(ret, row...)
	}
	return ret
}

// Shift returns a new matrix with every entry displaced by delta. It is handy
// to spot systematic offsets when comparing geometries from different
// programs.
func (D *DistanceMatrix) Shift(delta float64) *DistanceMatrix {
	rows := make([][]float64, len(D.rows))
	for i, row := range D.rows {
		rows[i] = make([]float64, len(row))
		for j, v := range row {
			rows[i][j] = v + delta
		}
	}
	return &DistanceMatrix{rows: rows}
}

// RMSD returns the root mean square deviation between the entries of D and
// those of other, which must cover the same number of atoms. If a positive
// threshold is given, only entry pairs differing by less than the threshold
// are considered, which discards gross conformational changes and keeps the
// local distortions.
func (D *DistanceMatrix) RMSD(other *DistanceMatrix, threshold ...float64) (float64, error) {
	if D.Len() != other.Len() {
		return 0, Error{ErrAtomCountMismatch, fmt.Sprintf("matrices cover %d and %d atoms", D.Len(), other.Len()), []string{"RMSD"}, true}
	}
	thres := 0.0
	if len(threshold) > 0 {
		thres = threshold[0]
	}
	a := D.Flattened()
	b := other.Flattened()
	sum := 0.0
	n := 0
	for i := range a {
		d := a[i] - b[i]
		if thres > 0 && math.Abs(d) >= thres {
			continue
		}
		sum += d * d
		n++
	}
	if n == 0 {
		return 0, Error{ErrInvalidParameter, "the given threshold leaves no entry pair to compare", []string{"RMSD"}, true}
	}
	return math.Sqrt(sum / float64(n)), nil
}

func (D *DistanceMatrix) String() string {
	return fmt.Sprintf("DistanceMatrix: %d atoms", len(D.rows))
}
