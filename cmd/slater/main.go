// SPDX-License-Identifier: MIT

// Command slater enumerates determinant bases and applies one- and two-body
// operators described in YAML problem files.
//
//	slater basis -n 2 -l 4
//	slater basis --shape 2,3
//	slater apply --problem hubbard.yaml --workers 4
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
