// SPDX-License-Identifier: MIT

package occupation

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/slater/indexset"
)

// State is one Slater determinant: n strictly increasing occupied orbitals.
// States are values; successor and excitation steps build new States.
type State struct {
	space    *Space         // borrowed, never mutated
	orbitals []int          // strictly increasing, in [0,l)
	mask     *bitset.BitSet // occupancy bits, mirrors orbitals
	rank     int            // lexicographic position within space
}

var _ indexset.IndexSet = State{}

// newState wraps a validated, owned orbital slice.
func (sp *Space) newState(orbs []int) State {
	mask := bitset.New(uint(sp.l))
	for _, o := range orbs {
		mask.Set(uint(o))
	}

	return State{space: sp, orbitals: orbs, mask: mask, rank: sp.rank(orbs)}
}

// FromOrbitals validates a strictly increasing tuple of n orbitals in [0,l).
// Errors: ErrIndexOutOfRange (wrong length or orbital outside [0,l)),
// ErrNotIncreasing.
func (sp *Space) FromOrbitals(orbitals []int) (State, error) {
	if len(orbitals) != sp.n {
		return State{}, fmt.Errorf("occupation.FromOrbitals: %d orbitals for n=%d: %w", len(orbitals), sp.n, ErrIndexOutOfRange)
	}
	for i, o := range orbitals {
		if o < 0 || o >= sp.l {
			return State{}, fmt.Errorf("occupation.FromOrbitals: orbital %d not in [0,%d): %w", o, sp.l, ErrIndexOutOfRange)
		}
		if i > 0 && orbitals[i-1] >= o {
			return State{}, fmt.Errorf("occupation.FromOrbitals: %v: %w", orbitals, ErrNotIncreasing)
		}
	}

	return sp.newState(slices.Clone(orbitals)), nil
}

// Space returns the borrowed configuration.
func (st State) Space() *Space { return st.space }

// Orbitals returns a copy of the occupied orbitals, ascending.
func (st State) Orbitals() []int { return slices.Clone(st.orbitals) }

// Occupied reports whether orbital o is occupied.
func (st State) Occupied(o int) bool {
	return o >= 0 && st.mask != nil && st.mask.Test(uint(o))
}

// Index returns the combinatorial rank, the state's coefficient-vector position.
func (st State) Index() int { return st.rank }

// Equal compares two states by value.
func (st State) Equal(other State) bool {
	return st.space == other.space && slices.Equal(st.orbitals, other.orbitals)
}

// Next returns the lexicographic successor of st, or false if st is the last
// state (l-n, …, l-1).
// MAIN DESCRIPTION:
//   - Scan from the last position backward for the right-most position whose
//     value is below its maximum l-1-distance_from_end; increment it and
//     reset every later position to consecutive values above it.
//
// Complexity:
//   - Time O(n), Space O(n).
func (st State) Next() (State, bool) {
	if st.space == nil {
		return State{}, false
	}
	n, l := st.space.n, st.space.l
	next := slices.Clone(st.orbitals)

	cursor, dec := n-1, 0
	for next[cursor] >= l-1-dec {
		if cursor == 0 {
			return State{}, false // final state reached
		}
		cursor--
		dec++
	}
	next[cursor]++
	for c := cursor + 1; c < n; c++ {
		next[c] = next[cursor] + c - cursor
	}

	return st.space.newState(next), true
}

// between counts occupied orbitals strictly between a and b.
func (st State) between(a, b int) int {
	lo, hi := min(a, b), max(a, b)
	if hi-lo < 2 {
		return 0
	}

	return int(st.mask.Rank(uint(hi-1)) - st.mask.Rank(uint(lo)))
}

// ExcitationSign returns (-1)^m for a†_p a_q acting on st, where m counts the
// occupied orbitals strictly between p and q. For p == q it returns 1.
func (st State) ExcitationSign(p, q int) int {
	if st.between(p, q)%2 == 1 {
		return -1
	}

	return 1
}

// excite replaces each holes[i] with particles[i] and re-sorts.
func (st State) excite(holes, particles []int) State {
	orbs := make([]int, 0, len(st.orbitals))
	for _, o := range st.orbitals {
		if !slices.Contains(holes, o) {
			orbs = append(orbs, o)
		}
	}
	orbs = append(orbs, particles...)
	slices.Sort(orbs)

	return st.space.newState(orbs)
}

// OneBodyNeighbors enumerates all single excitations of st with their signs.
func (st State) OneBodyNeighbors() indexset.Enumerator { return NewOneBodyIterator(st) }

// TwoBodyNeighbors enumerates all double excitations of st with their signs.
func (st State) TwoBodyNeighbors() indexset.Enumerator { return NewTwoBodyIterator(st) }

// String renders the state as "|0 1 4⟩#rank".
func (st State) String() string {
	return fmt.Sprintf("|%s⟩#%d", fmtOrbitals(st.orbitals), st.rank)
}

func fmtOrbitals(orbs []int) string {
	s := fmt.Sprint(orbs)

	return s[1 : len(s)-1]
}
