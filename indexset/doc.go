// Package indexset defines the capability contract shared by every basis-state
// representation, so operator evaluators are written once and work over both
// dense multi-index states and fermionic occupation states.
//
// Contract:
//
//   - IndexSet exposes its coefficient-vector position (Index), the orbital
//     occupied by each particle (Orbitals), and two neighbor Enumerators.
//   - OneBodyNeighbors yields every state reachable by changing exactly one
//     particle's orbital; TwoBodyNeighbors yields every state reachable by
//     changing exactly two. Each neighbor is produced exactly once.
//   - Enumerators are lazy, finite and non-restartable: once Next reports
//     false it keeps doing so. They are never single-shot lookups.
//   - Basis walks all states of a representation in a fixed total order and
//     maps positions back to states.
//
// Each Neighbor carries the Excitation that produced it (holes vacated,
// particles created) and the ±1 sign from operator reordering; dense states
// always report +1.
package indexset
