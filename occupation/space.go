// SPDX-License-Identifier: MIT

package occupation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/slater/indexset"
)

// Space is the shared, immutable (n, l) configuration of an occupation basis.
// It is built once per problem; every State borrows it by pointer.
type Space struct {
	n, l  int
	binom [][]int // binom[a][b] = C(a,b) for 0<=a<=l, 0<=b<=n
	size  int     // C(l,n)
}

var _ indexset.Basis = (*Space)(nil)

// NewSpace validates (n, l) and precomputes the binomial table.
// MAIN DESCRIPTION:
//   - Build the shared configuration for n particles in l orbitals.
//
// Implementation:
//   - Stage 1: reject n <= 0 (no annihilation cursor) and n >= l (the
//     start-0 seating rule of Init).
//   - Stage 2: fill Pascal's triangle up to row l, column n, failing on overflow.
//
// Errors:
//   - ErrConfiguration, ErrOverflow.
//
// Complexity:
//   - Time O(l·n), Space O(l·n).
func NewSpace(n, l int) (*Space, error) {
	if n <= 0 {
		return nil, fmt.Errorf("occupation.NewSpace(n=%d,l=%d): zero particles: %w", n, l, ErrConfiguration)
	}
	if n >= l {
		return nil, fmt.Errorf("occupation.NewSpace(n=%d,l=%d): too few orbitals: %w", n, l, ErrConfiguration)
	}
	binom, err := pascal(l, n)
	if err != nil {
		return nil, fmt.Errorf("occupation.NewSpace(n=%d,l=%d): %w", n, l, err)
	}

	return &Space{n: n, l: l, binom: binom, size: binom[l][n]}, nil
}

// pascal returns C(a,b) for 0<=a<=rows, 0<=b<=cols.
func pascal(rows, cols int) ([][]int, error) {
	t := make([][]int, rows+1)
	for a := 0; a <= rows; a++ {
		t[a] = make([]int, cols+1)
		t[a][0] = 1
		for b := 1; b <= cols && b <= a; b++ {
			x, y := t[a-1][b-1], t[a-1][b]
			if x > math.MaxInt-y {
				return nil, ErrOverflow
			}
			t[a][b] = x + y
		}
	}

	return t, nil
}

// Binomial returns C(a, b), or ErrOverflow if it does not fit into int.
// C(a,b) is 0 for b < 0 or b > a.
func Binomial(a, b int) (int, error) {
	if b < 0 || a < 0 || b > a {
		return 0, nil
	}
	if b > a-b {
		b = a - b
	}
	result := 1
	for i := 1; i <= b; i++ {
		// result*(a-b+i) is divisible by i at every step.
		factor := a - b + i
		if result > math.MaxInt/factor {
			return 0, ErrOverflow
		}
		result = result * factor / i
	}

	return result, nil
}

// choose reads C(a,b) from the table; out-of-table arguments give 0.
func (sp *Space) choose(a, b int) int {
	if a < 0 || b < 0 || b > a || b > sp.n {
		return 0
	}

	return sp.binom[a][b]
}

// N returns the particle count.
func (sp *Space) N() int { return sp.n }

// L returns the orbital count.
func (sp *Space) L() int { return sp.l }

// Len returns C(l, n), the number of occupation states.
func (sp *Space) Len() int { return sp.size }

// Orbitals returns l.
func (sp *Space) Orbitals() int { return sp.l }

// Init returns {start, …, start+n-1}.
// Returns ErrConfiguration if start < 0 or start+n >= l.
func (sp *Space) Init(start int) (State, error) {
	if start < 0 || start+sp.n >= sp.l {
		return State{}, fmt.Errorf("occupation.Init(start=%d,n=%d,l=%d): %w", start, sp.n, sp.l, ErrConfiguration)
	}
	orbs := make([]int, sp.n)
	for i := range orbs {
		orbs[i] = start + i
	}

	return sp.newState(orbs), nil
}

// First returns the rank-0 state (0, 1, …, n-1).
func (sp *Space) First() indexset.IndexSet {
	st, _ := sp.Init(0) // n < l by construction

	return st
}

// Next returns the successor of s; false for the last state or a state of
// another Space.
func (sp *Space) Next(s indexset.IndexSet) (indexset.IndexSet, bool) {
	st, ok := s.(State)
	if !ok || st.space != sp {
		return nil, false
	}
	next, ok := st.Next()
	if !ok {
		return nil, false
	}

	return next, true
}

// At returns the state of rank k; see Unrank.
func (sp *Space) At(k int) (indexset.IndexSet, error) {
	st, err := sp.Unrank(k)
	if err != nil {
		return nil, err
	}

	return st, nil
}

// rank computes C(l,n)-1-Σ_i C(l-1-c_i, n-i): the lexicographic position of
// the tuple, via the combinadic of its reflected complement.
// Complexity: O(n).
func (sp *Space) rank(orbs []int) int {
	sum := 0
	for i, c := range orbs {
		sum += sp.choose(sp.l-1-c, sp.n-i)
	}

	return sp.size - 1 - sum
}

// Unrank returns the state of lexicographic rank k by greedy combinadic
// decoding: for each position pick the largest d with C(d, n-i) <= remainder.
// Returns ErrIndexOutOfRange if k ∉ [0, C(l,n)).
// Complexity: O(l + n).
func (sp *Space) Unrank(k int) (State, error) {
	if k < 0 || k >= sp.size {
		return State{}, fmt.Errorf("occupation.Unrank(%d) with C(%d,%d)=%d: %w", k, sp.l, sp.n, sp.size, ErrIndexOutOfRange)
	}
	rest := sp.size - 1 - k
	orbs := make([]int, sp.n)
	d := sp.l
	for i := 0; i < sp.n; i++ {
		t := sp.n - i
		d--
		for sp.choose(d, t) > rest {
			d--
		}
		rest -= sp.choose(d, t)
		orbs[i] = sp.l - 1 - d
	}

	return sp.newState(orbs), nil
}

// Rank returns the lexicographic position of st. States of other spaces are
// ranked within their own space.
func (sp *Space) Rank(st State) int { return st.rank }

// Init is the package-level form of (*Space).Init: it builds a Space for
// (n, l) and returns {start, …, start+n-1}.
// Errors: ErrConfiguration (n == 0, start+n >= l), ErrOverflow.
func Init(start, n, l int) (State, error) {
	sp, err := NewSpace(n, l)
	if err != nil {
		return State{}, err
	}

	return sp.Init(start)
}

// Unrank is the package-level form of (*Space).Unrank.
func Unrank(k, n, l int) (State, error) {
	sp, err := NewSpace(n, l)
	if err != nil {
		return State{}, err
	}

	return sp.Unrank(k)
}

// Rank returns the lexicographic position of st within its Space.
func Rank(st State) int { return st.rank }

// Next returns the successor of st in lexicographic order.
func Next(st State) (State, bool) { return st.Next() }
