/*
 * doc.go, part of goraman.
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

/*Package raman is the main package of the goRaman library. It provides the data
model for post-processing vibrational-frequency calculations: vibrational modes
(frequency, intensity and per-atom displacement), tables of modes, and pairwise
distance matrices over atomic coordinates.


	**goRaman capabilities**

    Reads frequencies, intensities and normal-coordinate displacements from
	Gaussian log files, including gzip- and zstd-compressed ones, and from
	plain CSV frequency-intensity files (package gparse).

    Synthesizes continuous spectra from discrete modes by Lorentzian
	broadening, combines spectra with arbitrary weights (e.g. Boltzmann
	populations) and normalizes them by peak height or by area
	(package spectrum).

    Establishes the correspondence between the modes of two related
	calculations by the overlap of their displacement vectors, which survives
	the frequency reordering that small structural changes can cause
	(package assign).

    Builds and compares distance matrices over atomic coordinates.

    Plots broadened spectra and mode-by-mode comparisons with the gonum
	plotting library (package ramanplot).

The library proper performs no I/O other than in gparse, keeps no global
state, and every operation is a pure function of its explicit arguments, so
concurrent use on independent data needs no locking.
*/
package raman
