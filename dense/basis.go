package dense

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/slater/indexset"
	"github.com/katalvlaran/slater/shape"
)

// Basis enumerates every State of a Shape in compound order. Read as a
// product basis, position i is particle i and its value the orbital it
// occupies; Orbitals() is the largest dimension.
type Basis struct {
	shape    *shape.Shape
	orbitals int
}

var _ indexset.Basis = (*Basis)(nil)

// NewBasis wraps a shape. Returns ErrNilShape if s is nil.
func NewBasis(s *shape.Shape) (*Basis, error) {
	if s == nil {
		return nil, ErrNilShape
	}

	return &Basis{shape: s, orbitals: slices.Max(s.Dims())}, nil
}

// Shape returns the borrowed shape.
func (b *Basis) Shape() *shape.Shape { return b.shape }

// Len returns Π dims.
func (b *Basis) Len() int { return b.shape.Size() }

// Orbitals returns the largest dimension size.
func (b *Basis) Orbitals() int { return b.orbitals }

// First returns the all-zero state.
func (b *Basis) First() indexset.IndexSet {
	st, _ := FromZeros(b.shape) // shape is non-nil by construction

	return st
}

// Next increments the index tuple like an odometer (last position fastest).
// It returns false for the last state and for states of another shape.
func (b *Basis) Next(s indexset.IndexSet) (indexset.IndexSet, bool) {
	st, ok := s.(State)
	if !ok || st.shape != b.shape {
		return nil, false
	}
	next := State{shape: b.shape, indices: slices.Clone(st.indices), compound: st.compound + 1}
	for i := len(next.indices) - 1; i >= 0; i-- {
		next.indices[i]++
		if next.indices[i] < b.shape.Dim(i) {
			return next, true
		}
		next.indices[i] = 0 // carry into the more significant position
	}

	return nil, false
}

// At returns the state with compound index k.
func (b *Basis) At(k int) (indexset.IndexSet, error) {
	st, err := FromCompound(k, b.shape)
	if err != nil {
		return nil, fmt.Errorf("dense.Basis.At: %w", err)
	}

	return st, nil
}
