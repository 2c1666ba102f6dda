/*
 * constants.go, part of goraman.
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

//This provides useful defaults and conversion factors.

//Defaults
const (
	DefaultWidth  = 3.3  //Lorentzian FWHM in 1/cm, matches typical gas-phase Raman linewidths
	DefaultPoints = 5000 //points in a synthesized spectrum when the caller gives no grid
)

//Conversions
const (
	H2Kcal  = 627.509 //Hartree to Kcal/mol
	Kcal2H  = 1 / 627.509
	A2Bohr  = 1.889725989
	Bohr2A  = 1 / 1.889725989
	CM2THz  = 0.0299792458 //wavenumber (1/cm) to THz
	THz2CM  = 1 / 0.0299792458
)

//FreqScale holds empirical multiplicative corrections for the systematic
//overestimation of harmonic frequencies at some common levels of theory,
//keyed by "method/basis" in lower case. Taken from the NIST CCCBDB
//vibrational scaling factor compilation.
var FreqScale = map[string]float64{
	"hf/6-31g(d)":      0.8953,
	"b3lyp/6-31g(d)":   0.9613,
	"b3lyp/6-311+g(d,p)": 0.9679,
	"mp2/6-31g(d)":     0.9434,
	"pbe0/6-31g(d)":    0.9512,
	"wb97x-d/6-31g(d)": 0.9489,
}
