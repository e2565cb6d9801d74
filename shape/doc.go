// Package shape defines the immutable dimension list that every dense
// multi-index state is indexed against.
//
// What:
//
//   - Shape is an ordered sequence of positive dimension sizes d₀…d_{k-1}.
//   - Strides follow the big-endian mixed-radix convention:
//     stride(i) = Π_{j>i} d_j, so the last position is least significant.
//
// Ownership:
//
//   - A *Shape is built once per problem and shared by pointer. States and
//     iterators borrow it and never copy or mutate it; there is no mutator.
//
// Errors:
//
//   - ErrBadShape: empty shape, non-positive dimension, or Π dims overflowing int.
package shape
