package gparse

import (
	"strconv"

	"golang.org/x/exp/slices"
)

//symbols, indexed by atomic number. Enough for anything a vibrational
//calculation is likely to be run on.
var symbols = []string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
}

//Symbol returns the element symbol for an atomic number. Numbers beyond the
//table come back as the number itself, which keeps reports readable instead
//of failing.
func Symbol(z int) string {
	if z < 1 || z >= len(symbols) {
		return strconv.Itoa(z)
	}
	return symbols[z]
}

//AtomicNumber returns the atomic number for an element symbol, or -1 if the
//symbol is unknown.
func AtomicNumber(symbol string) int {
	i := slices.Index(symbols, symbol)
	if i < 1 { //the empty placeholder sits at index 0
		return -1
	}
	return i
}
