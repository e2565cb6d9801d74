// SPDX-License-Identifier: MIT

package occupation

import "errors"

var (
	// ErrConfiguration indicates an invalid (start, n, l) combination: zero
	// particles, or too few orbitals to seat n particles from start.
	ErrConfiguration = errors.New("occupation: invalid configuration")

	// ErrIndexOutOfRange indicates an orbital outside [0,l) or a rank outside [0,C(l,n)).
	ErrIndexOutOfRange = errors.New("occupation: index out of range")

	// ErrNotIncreasing indicates an orbital tuple that is not strictly increasing.
	ErrNotIncreasing = errors.New("occupation: orbitals must be strictly increasing")

	// ErrParticleNumber indicates an operator string that does not conserve n.
	ErrParticleNumber = errors.New("occupation: operator string changes particle number")

	// ErrOverflow indicates that C(l,n) does not fit into int.
	ErrOverflow = errors.New("occupation: basis size overflows int")
)
