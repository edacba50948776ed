// SPDX-License-Identifier: MIT

// Package capability defines the contract every container in this module
// uses to manage the values it stores.
//
// What
//
//   - Ops[T] is the capability triple: Copy, Compare and Destroy.
//   - Containers take a copy of every value at insertion time (Copy), order
//     values with a three-way comparison (Compare), and release stored copies
//     on removal or on container destruction (Destroy).
//   - Ordered[T]() serves ordered scalar types; Funcs[T] adapts plain
//     functions for everything else.
//
// Why
//
//	Containers are generic over their element type, but many element types
//	need more than assignment to be copied (slices, pointers to buffers) and
//	more than == to be ordered. Keeping the three operations behind a single
//	interface means a container can never be handed a copy function that
//	disagrees with its compare function.
//
// Compare contract
//
//	Compare(a, b) < 0 when a orders before b, 0 when equal, > 0 otherwise.
//	Sign normalises any result into {-1, 0, 1}.
//
// Errors
//
//   - ErrNilOps      if a nil capability is supplied to a constructor.
//   - ErrNilCompare  if Funcs is used without a CompareFn.
package capability
