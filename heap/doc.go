// SPDX-License-Identifier: MIT

// Package heap provides an array-backed binary heap of (key, value) entries
// with decrease-key support, used as the Dijkstra frontier.
//
// What
//
//   - Heap[K, V] orders entries by key, either as a Min heap (smallest key at
//     the root) or a Max heap (largest key at the root). The kind is fixed at
//     construction.
//   - Keys and values are managed through capability.Ops: the heap stores its
//     own copy of both on Insert and destroys them when the entry leaves the
//     heap or the heap is destroyed.
//   - Capacity doubles when the backing slice is full.
//
// Operations
//
//	Insert(key, value)            O(log n) amortised
//	ExtractMinOrMax() (Entry, ok) O(log n)
//	FindMinOrMax() (Entry, ok)    O(1)
//	DecreaseKey(index, key)       O(log n)
//	IndexByKey / IndexByValue     O(n) first-match scan, NotFound on miss
//	SortedEntries()               O(n log n), original heap untouched
//	Verify()                      O(n) heap-property check
//
// Empty and not-found outcomes
//
//	Extract and Find on an empty heap return ok == false. Index lookups return
//	NotFound. DecreaseKey with a key that is worse than the current one, or
//	with an index outside [0, Len()), is silently ignored.
//
// Positions
//
//	Indices returned by IndexByKey/IndexByValue are positions in the backing
//	slice; any mutating call may move entries, so an index is only valid until
//	the next Insert, Extract or DecreaseKey.
//
// Heap is not safe for concurrent use.
package heap
