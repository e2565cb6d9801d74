// SPDX-License-Identifier: MIT

package occupation

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Op is one second-quantized operator: a creator a†_o or an annihilator a_o.
type Op struct {
	Orbital int
	Dagger  bool // true for a creation operator
}

// Create returns a†_p.
func Create(p int) Op { return Op{Orbital: p, Dagger: true} }

// Annihilate returns a_q.
func Annihilate(q int) Op { return Op{Orbital: q} }

// String renders "a+3" for a†_3 and "a3" for a_3.
func (o Op) String() string {
	if o.Dagger {
		return fmt.Sprintf("a+%d", o.Orbital)
	}

	return fmt.Sprintf("a%d", o.Orbital)
}

// Apply evaluates the operator product ops[0]·ops[1]·…·ops[k-1] on st; the
// right-most operator acts first. It returns the resulting determinant and
// its phase. A sign of 0 means the product annihilates st (creating into an
// occupied orbital or annihilating an empty one); the returned State is then
// the zero value.
// MAIN DESCRIPTION:
//   - Each operator acting on orbital o contributes (-1)^{#occupied below o}
//     in the current intermediate determinant.
//
// Errors:
//   - ErrIndexOutOfRange for orbitals outside [0,l).
//   - ErrParticleNumber if creators and annihilators do not balance.
//   - ErrConfiguration for a zero-value st.
//
// Complexity:
//   - Time O(k + l/64 + n), Space O(l/64).
func Apply(st State, ops ...Op) (State, int, error) {
	if st.space == nil {
		return State{}, 0, fmt.Errorf("occupation.Apply: zero state: %w", ErrConfiguration)
	}
	balance := 0
	for _, op := range ops {
		if op.Orbital < 0 || op.Orbital >= st.space.l {
			return State{}, 0, fmt.Errorf("occupation.Apply: %v outside [0,%d): %w", op, st.space.l, ErrIndexOutOfRange)
		}
		if op.Dagger {
			balance++
		} else {
			balance--
		}
	}
	if balance != 0 {
		return State{}, 0, fmt.Errorf("occupation.Apply: %v: %w", ops, ErrParticleNumber)
	}

	sign, mask := signOf(st.mask, ops...)
	if sign == 0 {
		return State{}, 0, nil
	}
	orbs := make([]int, 0, st.space.n)
	for o, ok := mask.NextSet(0); ok; o, ok = mask.NextSet(o + 1) {
		orbs = append(orbs, int(o))
	}

	return st.space.newState(orbs), sign, nil
}

// signOf applies ops right-to-left to a clone of mask and returns the
// accumulated phase (0 if the string vanishes) and the final occupancy.
// Orbitals must already be validated.
func signOf(mask *bitset.BitSet, ops ...Op) (int, *bitset.BitSet) {
	cur := mask.Clone()
	sign := 1
	for i := len(ops) - 1; i >= 0; i-- {
		o := uint(ops[i].Orbital)
		occupied := cur.Test(o)
		if occupied == ops[i].Dagger {
			return 0, nil // a†|occupied⟩ = a|empty⟩ = 0
		}
		if below(cur, o)%2 == 1 {
			sign = -sign
		}
		if ops[i].Dagger {
			cur.Set(o)
		} else {
			cur.Clear(o)
		}
	}

	return sign, cur
}

// below counts set bits strictly below o.
func below(mask *bitset.BitSet, o uint) uint {
	if o == 0 {
		return 0
	}

	return mask.Rank(o - 1)
}
