/*
 * errors.go, part of goraman.
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

import "fmt"

//This error system predates the "wrapping" errors of the standard library.
//Each package of goRaman has its own concrete Error type implementing the
//Errorer interface; callers dispatch on Kind instead of unwrapping.

// Errorer is the interface all errors in this library implement. Kind returns
// one of the Err* constants below, so callers can tell failures apart without
// depending on the concrete type of the error. The Decorate method adds and
// retrieves information from the error without changing its type or wrapping
// it around something else; the decoration slice should contain the names of
// the functions in the calling stack, plus, for each, any relevant extra
// information in the format "FunctionName: Extra info".
type Errorer interface {
	Error() string
	Kind() string
	Decorate(string) []string
}

// Failure kinds shared by all packages of the library.
const (
	ErrInvalidParameter   = "InvalidParameter"   //non-positive grid step or line width, start >= stop, bad threshold
	ErrGridMismatch       = "GridMismatch"       //combining spectra sampled on different grids
	ErrLengthMismatch     = "LengthMismatch"     //as many weights as spectra are needed
	ErrDegenerateSpectrum = "DegenerateSpectrum" //an all-zero spectrum cannot be normalized
	ErrAtomCountMismatch  = "AtomCountMismatch"  //displacements with different numbers of atoms
	ErrWrongFormat        = "WrongFormat"        //a source file does not have the expected shape
	ErrUnableToOpen       = "UnableToOpen"       //a source file cannot be opened
	ErrNoFrequencies      = "NoFrequencies"      //a source file has no vibrational data
)

// Error is the concrete error of the root package. It satisfies Errorer.
type Error struct {
	kind     string
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("goraman: %s: %s", err.kind, err.message)
}

// Kind returns the failure kind, one of the Err* constants.
func (err Error) Kind() string { return err.kind }

// Decorate adds the deco string to the decoration slice of the error, and
// returns the resulting slice. If given an empty string, it just returns the
// current slice.
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer receiver, it works,
	//since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics. It does satisfy the error interface,
// but for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	PanicNilMode        = PanicMsg("goRaman: nil *Mode given")
	PanicModeOutOfRange = PanicMsg("goRaman: mode index out of range")
	PanicAtomOutOfRange = PanicMsg("goRaman: atom index out of range")
)
