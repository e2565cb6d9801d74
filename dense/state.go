package dense

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/slater/indexset"
	"github.com/katalvlaran/slater/shape"
)

// State is a multi-index over a borrowed Shape plus its compound index.
// States are values: every transition builds a new State and none is mutated.
type State struct {
	shape    *shape.Shape // borrowed, never mutated
	indices  []int        // 0 <= indices[i] < shape.Dim(i)
	compound int          // mixed-radix encoding of indices
}

var _ indexset.IndexSet = State{}

// FromZeros returns the all-zero state (compound 0).
// Returns ErrNilShape if s is nil.
func FromZeros(s *shape.Shape) (State, error) {
	if s == nil {
		return State{}, ErrNilShape
	}

	return State{shape: s, indices: make([]int, s.Len())}, nil
}

// FromIndices validates indices against s and computes the compound index.
// The indices slice is copied.
// Returns ErrIndexOutOfRange if len(indices) != s.Len() or any
// indices[i] ∉ [0, s.Dim(i)).
// Complexity: O(k).
func FromIndices(indices []int, s *shape.Shape) (State, error) {
	if s == nil {
		return State{}, ErrNilShape
	}
	if len(indices) != s.Len() {
		return State{}, fmt.Errorf("dense.FromIndices: %d indices for shape %s: %w", len(indices), s, ErrIndexOutOfRange)
	}
	compound := 0
	for i, x := range indices {
		if x < 0 || x >= s.Dim(i) {
			return State{}, fmt.Errorf("dense.FromIndices: indices[%d]=%d for shape %s: %w", i, x, s, ErrIndexOutOfRange)
		}
		compound += x * s.Stride(i)
	}

	return State{shape: s, indices: slices.Clone(indices), compound: compound}, nil
}

// FromCompound decodes compound into indices by repeated div/mod, from the
// least to the most significant position.
// Returns ErrIndexOutOfRange if compound ∉ [0, s.Size()).
// Complexity: O(k).
func FromCompound(compound int, s *shape.Shape) (State, error) {
	if s == nil {
		return State{}, ErrNilShape
	}
	if compound < 0 || compound >= s.Size() {
		return State{}, fmt.Errorf("dense.FromCompound: %d for shape %s: %w", compound, s, ErrIndexOutOfRange)
	}
	indices := make([]int, s.Len())
	rest := compound
	for i := s.Len() - 1; i >= 0; i-- {
		d := s.Dim(i)
		indices[i] = rest % d
		rest /= d
	}

	return State{shape: s, indices: indices, compound: compound}, nil
}

// withChange returns a copy of st whose positions pos[i] hold values vals[i].
// The compound index is updated incrementally through the shape strides.
func (st State) withChange(pos, vals []int) State {
	next := State{shape: st.shape, indices: slices.Clone(st.indices), compound: st.compound}
	for i, p := range pos {
		next.compound += (vals[i] - next.indices[p]) * st.shape.Stride(p)
		next.indices[p] = vals[i]
	}

	return next
}

// Shape returns the borrowed shape.
func (st State) Shape() *shape.Shape { return st.shape }

// Indices returns a copy of the index tuple.
func (st State) Indices() []int { return slices.Clone(st.indices) }

// At returns the index at position i.
func (st State) At(i int) int { return st.indices[i] }

// Compound returns the flat mixed-radix index.
func (st State) Compound() int { return st.compound }

// Index returns the compound index, the state's coefficient-vector position.
func (st State) Index() int { return st.compound }

// Orbitals returns the index tuple: position i is particle i, its value the
// orbital it occupies.
func (st State) Orbitals() []int { return st.Indices() }

// Equal compares two states by value (shape identity and index tuple).
func (st State) Equal(other State) bool {
	return st.shape == other.shape && slices.Equal(st.indices, other.indices)
}

// OneBodyNeighbors enumerates all states differing in exactly one position.
func (st State) OneBodyNeighbors() indexset.Enumerator { return NewOneBodyIterator(st) }

// TwoBodyNeighbors enumerates all states differing in exactly two positions.
func (st State) TwoBodyNeighbors() indexset.Enumerator { return NewTwoBodyIterator(st) }

// String renders the state as "[i0 i1 ...]#compound".
func (st State) String() string {
	return fmt.Sprintf("%v#%d", st.indices, st.compound)
}
