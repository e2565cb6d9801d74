// SPDX-License-Identifier: MIT

package occupation

import "github.com/katalvlaran/slater/indexset"

// OneBodyIterator yields every single excitation q → p of a start state:
// q runs over occupied orbitals ascending, p over unoccupied orbitals
// ascending. Each neighbor carries sign (-1)^m, m being the number of
// occupied orbitals strictly between p and q, i.e. the phase of a†_p a_q.
// Count: n·(l-n).
type OneBodyIterator struct {
	start State
	virt  []int // unoccupied orbitals, ascending
	hole  int   // index into start.orbitals
	part  int   // index into virt
}

var _ indexset.Enumerator = (*OneBodyIterator)(nil)

// NewOneBodyIterator prepares the single-excitation sweep around start.
// A zero-value start yields an empty sequence.
func NewOneBodyIterator(start State) *OneBodyIterator {
	return &OneBodyIterator{start: start, virt: start.virtuals()}
}

// Next returns the next (sign, neighbor) pair, or false once exhausted.
// Complexity: O(n) per call for the new tuple and its rank.
func (it *OneBodyIterator) Next() (indexset.Neighbor, bool) {
	if it.hole >= len(it.start.orbitals) || len(it.virt) == 0 {
		return indexset.Neighbor{}, false
	}
	q := it.start.orbitals[it.hole]
	p := it.virt[it.part]

	// Advance the odometer: particle index fastest, then the hole.
	it.part++
	if it.part == len(it.virt) {
		it.part = 0
		it.hole++
	}

	holes, particles := []int{q}, []int{p}

	return indexset.Neighbor{
		Sign:       it.start.ExcitationSign(p, q),
		State:      it.start.excite(holes, particles),
		Excitation: indexset.Excitation{Holes: holes, Particles: particles},
	}, true
}

// TwoBodyIterator yields every double excitation (q0,q1) → (p0,p1) of a
// start state with q0 < q1 occupied and p0 < p1 unoccupied. The sign is the
// phase of a†_{p0} a†_{p1} a_{q1} a_{q0} acting on the start state.
// Count: C(n,2)·C(l-n,2).
type TwoBodyIterator struct {
	start  State
	virt   []int
	h0, h1 int // indices into start.orbitals, h0 < h1
	p0, p1 int // indices into virt, p0 < p1
	done   bool
}

var _ indexset.Enumerator = (*TwoBodyIterator)(nil)

// NewTwoBodyIterator prepares the double-excitation sweep around start.
// States with fewer than two particles or two holes yield an empty sequence.
func NewTwoBodyIterator(start State) *TwoBodyIterator {
	virt := start.virtuals()
	return &TwoBodyIterator{
		start: start,
		virt:  virt,
		h1:    1,
		p1:    1,
		done:  len(start.orbitals) < 2 || len(virt) < 2,
	}
}

// Next returns the next (sign, neighbor) pair, or false once exhausted.
// Complexity: O(n) per call.
func (it *TwoBodyIterator) Next() (indexset.Neighbor, bool) {
	if it.done {
		return indexset.Neighbor{}, false
	}
	holes := []int{it.start.orbitals[it.h0], it.start.orbitals[it.h1]}
	particles := []int{it.virt[it.p0], it.virt[it.p1]}
	it.advance()

	sign, _ := signOf(it.start.mask,
		Create(particles[0]), Create(particles[1]),
		Annihilate(holes[1]), Annihilate(holes[0]),
	)

	return indexset.Neighbor{
		Sign:       sign,
		State:      it.start.excite(holes, particles),
		Excitation: indexset.Excitation{Holes: holes, Particles: particles},
	}, true
}

// advance steps the four wheels: p1 fastest, then p0, h1, h0.
func (it *TwoBodyIterator) advance() {
	n, v := len(it.start.orbitals), len(it.virt)
	if it.p1++; it.p1 < v {
		return
	}
	if it.p0++; it.p0 < v-1 {
		it.p1 = it.p0 + 1
		return
	}
	it.p0, it.p1 = 0, 1
	if it.h1++; it.h1 < n {
		return
	}
	if it.h0++; it.h0 < n-1 {
		it.h1 = it.h0 + 1
		return
	}
	it.done = true
}

// virtuals lists the unoccupied orbitals of st, ascending.
func (st State) virtuals() []int {
	if st.space == nil {
		return nil
	}
	out := make([]int, 0, st.space.l-st.space.n)
	for o := 0; o < st.space.l; o++ {
		if !st.mask.Test(uint(o)) {
			out = append(out, o)
		}
	}

	return out
}
