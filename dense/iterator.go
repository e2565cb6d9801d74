package dense

import "github.com/katalvlaran/slater/indexset"

// cursor is one odometer wheel: slot indexes the variable-position list and
// off is the distance travelled from the start value at that position.
type cursor struct {
	slot int // index into the variable-position list; < 0 means exhausted
	off  int // 1..dim-1; reaching dim means the wheel is back at its start value
}

// OneBodyIterator yields every state that differs from its start state in
// exactly one position. Each neighbor is reported with sign +1 and the
// Excitation {old value} -> {new value} at the changed position.
//
// The sweep begins at the least significant variable position and advances
// its value by one (mod dim) per step; once the value would wrap back to the
// start value the wheel moves to the next more significant variable position.
// The iterator is exhausted when every wheel has completed its cycle, i.e. the
// synthesized tuple would equal the start tuple again.
//
// Unit dimensions are never visited. Count: Σ_{d_i>1} (d_i-1).
type OneBodyIterator struct {
	start State
	vars  []int // variable positions, ascending
	cur   cursor
}

var _ indexset.Enumerator = (*OneBodyIterator)(nil)

// NewOneBodyIterator prepares a one-body sweep around start.
// A zero-value start yields an empty sequence.
func NewOneBodyIterator(start State) *OneBodyIterator {
	it := &OneBodyIterator{start: start, cur: cursor{slot: -1}}
	if start.shape == nil {
		return it
	}
	it.vars = start.shape.Variable()
	it.cur = cursor{slot: len(it.vars) - 1, off: 1}

	return it
}

// Next returns the next (+1, neighbor) pair, or false once exhausted.
// Complexity: amortized O(k) per call (state copy).
func (it *OneBodyIterator) Next() (indexset.Neighbor, bool) {
	for it.cur.slot >= 0 {
		pos := it.vars[it.cur.slot]
		dim := it.start.shape.Dim(pos)
		if it.cur.off >= dim {
			// Wheel back at its start value: move to the next more significant position.
			it.cur = cursor{slot: it.cur.slot - 1, off: 1}
			continue
		}
		old := it.start.indices[pos]
		val := (old + it.cur.off) % dim
		it.cur.off++

		return indexset.Neighbor{
			Sign:  1,
			State: it.start.withChange([]int{pos}, []int{val}),
			Excitation: indexset.Excitation{
				Holes:     []int{old},
				Particles: []int{val},
			},
		}, true
	}

	return indexset.Neighbor{}, false
}

// TwoBodyIterator yields every state that differs from its start state in
// exactly two positions, each position pair and value pair exactly once.
//
// It is a nested odometer: the outer wheel holds one changed value at a more
// significant position i while the inner wheel sweeps every other-than-start
// value at each less significant position j > i. When the inner sweep is
// complete the outer wheel advances (wrapping like the one-body sweep) and the
// inner sweep restarts, bounded below by the outer position. The iterator is
// exhausted once the outer wheel has cycled through every position.
//
// Shapes with fewer than two variable positions yield an empty sequence.
// Count: Σ_{i<j} (d_i-1)(d_j-1) over variable positions.
type TwoBodyIterator struct {
	start State
	vars  []int // variable positions, ascending
	outer cursor
	inner cursor
}

var _ indexset.Enumerator = (*TwoBodyIterator)(nil)

// NewTwoBodyIterator prepares a two-body sweep around start.
// A zero-value start yields an empty sequence.
func NewTwoBodyIterator(start State) *TwoBodyIterator {
	it := &TwoBodyIterator{start: start, outer: cursor{slot: -1}}
	if start.shape == nil {
		return it
	}
	it.vars = start.shape.Variable()
	it.outer = cursor{slot: len(it.vars) - 2, off: 1}
	it.inner = it.resetInner()

	return it
}

// resetInner restarts the inner wheel at the least significant variable position.
func (it *TwoBodyIterator) resetInner() cursor {
	return cursor{slot: len(it.vars) - 1, off: 1}
}

// Next returns the next (+1, neighbor) pair, or false once exhausted.
// Complexity: amortized O(k) per call (state copy).
func (it *TwoBodyIterator) Next() (indexset.Neighbor, bool) {
	for it.outer.slot >= 0 {
		oPos := it.vars[it.outer.slot]
		oDim := it.start.shape.Dim(oPos)
		if it.outer.off >= oDim {
			// Outer wheel completed its cycle at this position.
			it.outer = cursor{slot: it.outer.slot - 1, off: 1}
			it.inner = it.resetInner()
			continue
		}
		if it.inner.slot <= it.outer.slot {
			// Inner sweep completed for the current outer value.
			it.outer.off++
			it.inner = it.resetInner()
			continue
		}
		iPos := it.vars[it.inner.slot]
		iDim := it.start.shape.Dim(iPos)
		if it.inner.off >= iDim {
			it.inner = cursor{slot: it.inner.slot - 1, off: 1}
			continue
		}

		oOld, iOld := it.start.indices[oPos], it.start.indices[iPos]
		oVal := (oOld + it.outer.off) % oDim
		iVal := (iOld + it.inner.off) % iDim
		it.inner.off++

		return indexset.Neighbor{
			Sign:  1,
			State: it.start.withChange([]int{oPos, iPos}, []int{oVal, iVal}),
			Excitation: indexset.Excitation{
				Holes:     []int{oOld, iOld},
				Particles: []int{oVal, iVal},
			},
		}, true
	}

	return indexset.Neighbor{}, false
}
