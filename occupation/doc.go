// Package occupation enumerates fermionic occupation-number states (Slater
// determinants) of n particles in l orbitals and their excitations.
//
// What:
//
//   - Space fixes (n, l) once per problem and is shared by pointer by every
//     State derived from it, together with a Pascal table for ranking.
//   - State is a strictly increasing tuple of n occupied orbitals. Next walks
//     all C(l,n) states in lexicographic order, from (0,1,…,n-1) to
//     (l-n,…,l-1).
//   - Rank/Unrank map a State to its 0-based position in that order through
//     the combinatorial number system, without scanning.
//   - OneBodyNeighbors/TwoBodyNeighbors enumerate single and double
//     excitations with their fermionic signs.
//   - Apply evaluates a string of creation/annihilation operators on a State.
//
// Sign convention:
//
//   - Orbitals are ordered ascending inside |D⟩ = a†_{c0} a†_{c1} … |0⟩.
//     Moving a particle from q to p (a†_p a_q) yields (-1)^m where m is the
//     number of occupied orbitals strictly between p and q.
//
// Errors:
//
//   - ErrConfiguration: zero particles, or start+n ≥ l.
//   - ErrIndexOutOfRange: orbital or rank outside the space.
//   - ErrNotIncreasing: orbital tuple not strictly increasing.
//   - ErrParticleNumber: an operator string that changes n.
//   - ErrOverflow: C(l,n) does not fit into int.
package occupation
