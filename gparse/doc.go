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

/*Package gparse extracts vibrational and geometric data from the output of
Gaussian frequency calculations, and from plain CSV files. It is the data
source for the rest of goRaman: it produces validated raman.ModeTable and
raman.DistanceMatrix values and takes the blame for every malformed input, so
the analysis packages never see one.

Log files may be given plain, gzip-compressed (.gz) or zstd-compressed
(.zst/.zstd); compression is detected from the file name.
*/
package gparse
