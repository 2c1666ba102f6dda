//Command goraman post-processes vibrational-frequency calculations: it
//broadens discrete modes into continuous spectra, compares the modes of two
//related calculations by displacement overlap, and writes peak reports.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
