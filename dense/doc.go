// Package dense implements mixed-radix multi-index states over a shared
// shape.Shape and lazily enumerates their one- and two-position neighbors.
//
// What:
//
//   - State holds (shape, indices, compound) with the big-endian encoding
//     compound = Σ indices[i]·Π_{j>i} shape[j]; both forms always agree.
//   - OneBodyIterator yields every state differing in exactly one position.
//   - TwoBodyIterator yields every state differing in exactly two positions.
//   - Basis walks all Π shape states in compound order; when every dimension
//     equals l it models n distinguishable particles over l orbitals.
//
// Order:
//
//   - Both iterators sweep odometer-style: the least significant variable
//     position is advanced first, values run start+1, start+2, … wrapping
//     modulo the dimension, and the sweep moves to the next more significant
//     position once a value returns to its start.
//
// Complexity:
//
//   - FromIndices/FromCompound: O(k). Each iterator step: O(k) for the copy.
//   - One-body count: Σ(d_i-1). Two-body count: Σ_{i<j}(d_i-1)(d_j-1).
//
// Errors:
//
//   - ErrIndexOutOfRange: index tuple or compound outside the shape.
//   - ErrNilShape: nil shape argument.
package dense
