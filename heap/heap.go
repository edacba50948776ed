// SPDX-License-Identifier: MIT

package heap

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvcontainers/capability"
)

// Heap is an array-backed binary heap of Entry[K, V].
type Heap[K, V any] struct {
	entries []Entry[K, V]
	kind    Kind
	keyOps  capability.Ops[K]
	valOps  capability.Ops[V]
	log     *slog.Logger
}

// New creates an empty heap with room for capacity entries.
//
// Errors:
//   - ErrBadCapacity if capacity < 1.
//   - ErrBadKind if kind is neither Min nor Max.
//   - capability.ErrNilOps / capability.ErrNilCompare for unusable ops.
func New[K, V any](capacity int, kind Kind, keyOps capability.Ops[K], valOps capability.Ops[V], opts ...Option) (*Heap[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	if kind != Min && kind != Max {
		return nil, fmt.Errorf("%w: %d", ErrBadKind, kind)
	}
	if err := capability.Validate(keyOps); err != nil {
		return nil, fmt.Errorf("heap: key ops: %w", err)
	}
	if err := capability.Validate(valOps); err != nil {
		return nil, fmt.Errorf("heap: value ops: %w", err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Heap[K, V]{
		entries: make([]Entry[K, V], 0, capacity),
		kind:    kind,
		keyOps:  keyOps,
		valOps:  valOps,
		log:     o.Logger,
	}, nil
}

// Kind returns the heap ordering.
func (h *Heap[K, V]) Kind() Kind { return h.kind }

// Len returns the number of stored entries.
func (h *Heap[K, V]) Len() int { return len(h.entries) }

// Cap returns the current capacity of the backing slice.
func (h *Heap[K, V]) Cap() int { return cap(h.entries) }

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[K, V]) IsEmpty() bool { return len(h.entries) == 0 }

// Insert stores copies of key and value and restores heap order.
// Complexity: O(log n) amortised.
func (h *Heap[K, V]) Insert(key K, value V) {
	if len(h.entries) == cap(h.entries) {
		h.grow()
	}
	h.entries = append(h.entries, Entry[K, V]{Key: h.keyOps.Copy(key), Value: h.valOps.Copy(value)})
	h.floatUp(len(h.entries) - 1)
}

// FindMinOrMax returns a copy of the root entry without removing it.
// Returns false on an empty heap.
func (h *Heap[K, V]) FindMinOrMax() (Entry[K, V], bool) {
	if len(h.entries) == 0 {
		return Entry[K, V]{}, false
	}

	return h.copyEntry(h.entries[0]), true
}

// ExtractMinOrMax removes the root entry and returns a copy of it.
// Returns false, without touching the heap, when it is empty.
// Complexity: O(log n).
func (h *Heap[K, V]) ExtractMinOrMax() (Entry[K, V], bool) {
	if len(h.entries) == 0 {
		return Entry[K, V]{}, false
	}
	out := h.copyEntry(h.entries[0])

	last := len(h.entries) - 1
	h.swap(0, last)
	h.release(h.entries[last])
	h.entries[last] = Entry[K, V]{}
	h.entries = h.entries[:last]
	h.floatDown(0)

	return out, true
}

// DecreaseKey replaces the key at index with newKey and floats the entry up.
//
// For a Min heap a newKey greater than the current key is ignored; for a Max
// heap a smaller one is. Equal keys are accepted. An index outside [0, Len())
// is ignored.
func (h *Heap[K, V]) DecreaseKey(index int, newKey K) {
	if index < 0 || index >= len(h.entries) {
		return
	}
	c := h.keyOps.Compare(newKey, h.entries[index].Key)
	if (h.kind == Min && c > 0) || (h.kind == Max && c < 0) {
		return
	}
	h.keyOps.Destroy(h.entries[index].Key)
	h.entries[index].Key = h.keyOps.Copy(newKey)
	h.floatUp(index)
}

// IndexByKey returns the position of the first entry whose key equals key,
// or NotFound. Complexity: O(n).
func (h *Heap[K, V]) IndexByKey(key K) int {
	for i := range h.entries {
		if h.keyOps.Compare(h.entries[i].Key, key) == 0 {
			return i
		}
	}

	return NotFound
}

// IndexByValue returns the position of the first entry whose value equals
// value, or NotFound. Complexity: O(n).
func (h *Heap[K, V]) IndexByValue(value V) int {
	for i := range h.entries {
		if h.valOps.Compare(h.entries[i].Value, value) == 0 {
			return i
		}
	}

	return NotFound
}

// At returns a copy of the entry at index. Returns false for an index outside
// [0, Len()).
func (h *Heap[K, V]) At(index int) (Entry[K, V], bool) {
	if index < 0 || index >= len(h.entries) {
		return Entry[K, V]{}, false
	}

	return h.copyEntry(h.entries[index]), true
}

// Clone returns a deep copy of the heap: every key and value is copied
// through the capabilities.
func (h *Heap[K, V]) Clone() *Heap[K, V] {
	c := &Heap[K, V]{
		entries: make([]Entry[K, V], len(h.entries), max(cap(h.entries), 1)),
		kind:    h.kind,
		keyOps:  h.keyOps,
		valOps:  h.valOps,
		log:     h.log,
	}
	for i, e := range h.entries {
		c.entries[i] = h.copyEntry(e)
	}

	return c
}

// SortedEntries returns copies of all entries ordered ascending (Min) or
// descending (Max) by key. The heap itself is not modified.
// Complexity: O(n log n).
func (h *Heap[K, V]) SortedEntries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(h.entries))
	tmp := h.Clone()
	for {
		e, ok := tmp.ExtractMinOrMax()
		if !ok {
			break
		}
		out = append(out, e)
	}
	tmp.Destroy()

	return out
}

// Verify checks the heap property over the whole backing slice.
// Returns ErrHeapOrder wrapped with the first offending position.
func (h *Heap[K, V]) Verify() error {
	for i := 1; i < len(h.entries); i++ {
		if p := parent(i); h.before(i, p) {
			return fmt.Errorf("%w: entry %d orders before its parent %d", ErrHeapOrder, i, p)
		}
	}

	return nil
}

// Destroy releases every stored key and value and the backing slice.
// The heap behaves as empty afterwards.
func (h *Heap[K, V]) Destroy() {
	for _, e := range h.entries {
		h.release(e)
	}
	h.entries = nil
}

func parent(i int) int { return (i - 1) / 2 }

func child(i, n int) int { return 2*i + 1 + n }

// before reports whether entry i must sit above entry j.
func (h *Heap[K, V]) before(i, j int) bool {
	c := h.keyOps.Compare(h.entries[i].Key, h.entries[j].Key)
	if h.kind == Min {
		return c < 0
	}

	return c > 0
}

func (h *Heap[K, V]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

func (h *Heap[K, V]) floatUp(i int) {
	for i > 0 && h.before(i, parent(i)) {
		h.swap(i, parent(i))
		i = parent(i)
	}
}

func (h *Heap[K, V]) floatDown(i int) {
	n := len(h.entries)
	for {
		best := i
		for c := 0; c < 2; c++ {
			if k := child(i, c); k < n && h.before(k, best) {
				best = k
			}
		}
		if best == i {
			return
		}
		h.swap(i, best)
		i = best
	}
}

func (h *Heap[K, V]) grow() {
	newCap := max(cap(h.entries)*growthFactor, 1)
	grown := make([]Entry[K, V], len(h.entries), newCap)
	copy(grown, h.entries)
	h.log.Debug("heap grown",
		slog.String("kind", h.kind.String()),
		slog.Int("from", cap(h.entries)),
		slog.Int("to", newCap),
	)
	h.entries = grown
}

func (h *Heap[K, V]) copyEntry(e Entry[K, V]) Entry[K, V] {
	return Entry[K, V]{Key: h.keyOps.Copy(e.Key), Value: h.valOps.Copy(e.Value)}
}

func (h *Heap[K, V]) release(e Entry[K, V]) {
	h.keyOps.Destroy(e.Key)
	h.valOps.Destroy(e.Value)
}
