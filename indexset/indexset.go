package indexset

import "iter"

// IndexSet is one basis state of a many-body representation.
type IndexSet interface {
	// Index returns the state's position in a coefficient vector.
	Index() int
	// Orbitals returns a fresh slice with the orbital of every particle.
	Orbitals() []int
	// OneBodyNeighbors enumerates states differing by one particle move.
	OneBodyNeighbors() Enumerator
	// TwoBodyNeighbors enumerates states differing by two particle moves.
	TwoBodyNeighbors() Enumerator
}

// Enumerator is a lazy, finite, non-restartable neighbor sequence.
// Next returns the next neighbor and true, or the zero Neighbor and false
// once the sequence is exhausted.
type Enumerator interface {
	Next() (Neighbor, bool)
}

// Excitation records which orbitals a transition vacates (Holes) and fills
// (Particles). Holes[i] is replaced by Particles[i]; both slices have the
// same length (1 for one-body, 2 for two-body neighbors).
type Excitation struct {
	Holes     []int
	Particles []int
}

// Neighbor is a (sign, state) pair produced by an Enumerator.
type Neighbor struct {
	Sign       int // +1 or -1
	State      IndexSet
	Excitation Excitation
}

// Basis enumerates every state of a representation in a fixed total order.
type Basis interface {
	// Len returns the number of basis states (the coefficient-vector length).
	Len() int
	// Orbitals returns the single-particle orbital count l.
	Orbitals() int
	// First returns the state with Index 0.
	First() IndexSet
	// Next returns the successor of s, or false if s is the last state.
	Next(s IndexSet) (IndexSet, bool)
	// At returns the state with Index k.
	At(k int) (IndexSet, error)
}

// Collect drains e into a slice.
func Collect(e Enumerator) []Neighbor {
	var out []Neighbor
	for nb, ok := e.Next(); ok; nb, ok = e.Next() {
		out = append(out, nb)
	}

	return out
}

// Count drains e and returns the number of neighbors it produced.
func Count(e Enumerator) int {
	n := 0
	for _, ok := e.Next(); ok; _, ok = e.Next() {
		n++
	}

	return n
}

// All adapts e to a range-over-func sequence of (sign, state) pairs.
// The sequence drains e; it can be ranged over once.
func All(e Enumerator) iter.Seq2[int, IndexSet] {
	return func(yield func(int, IndexSet) bool) {
		for nb, ok := e.Next(); ok; nb, ok = e.Next() {
			if !yield(nb.Sign, nb.State) {
				return
			}
		}
	}
}

// Walk calls fn for every state of b in successor order starting at index
// from and stopping before index to. It returns the first error from fn or
// from positioning at from.
func Walk(b Basis, from, to int, fn func(k int, s IndexSet) error) error {
	if from >= to {
		return nil
	}
	s, err := b.At(from)
	if err != nil {
		return err
	}
	for k := from; ; {
		if err = fn(k, s); err != nil {
			return err
		}
		k++
		if k >= to {
			return nil
		}
		next, ok := b.Next(s)
		if !ok {
			return nil
		}
		s = next
	}
}
