// SPDX-License-Identifier: MIT

package heap_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcontainers/capability"
	"github.com/katalvlaran/lvcontainers/heap"
)

// liveInts counts copies made and destroyed so ownership rules can be checked.
type liveInts struct{ live int }

func (o *liveInts) Copy(v int) int       { o.live++; return v }
func (o *liveInts) Compare(a, b int) int { return capability.Ordered[int]().Compare(a, b) }
func (o *liveInts) Destroy(int)          { o.live-- }

func newIntHeap(t *testing.T, capacity int, kind heap.Kind) *heap.Heap[int, int] {
	t.Helper()
	h, err := heap.New(capacity, kind, capability.Ordered[int](), capability.Ordered[int]())
	require.NoError(t, err)

	return h
}

func keys(entries []heap.Entry[int, int]) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Key)
	}

	return out
}

func TestNew_Errors(t *testing.T) {
	ops := capability.Ordered[int]()

	_, err := heap.New(0, heap.Min, ops, ops)
	require.ErrorIs(t, err, heap.ErrBadCapacity)

	_, err = heap.New(4, heap.Kind(7), ops, ops)
	require.ErrorIs(t, err, heap.ErrBadKind)

	_, err = heap.New[int, int](4, heap.Min, nil, ops)
	require.ErrorIs(t, err, capability.ErrNilOps)

	_, err = heap.New[int, int](4, heap.Max, ops, capability.Funcs[int]{})
	require.ErrorIs(t, err, capability.ErrNilCompare)
}

func TestMinHeap_GrowthAndSortedEntries(t *testing.T) {
	h := newIntHeap(t, 5, heap.Min)

	for k := 10; k >= 1; k-- {
		h.Insert(k, k)
		require.NoError(t, h.Verify())
	}

	require.Equal(t, 10, h.Len())
	require.Equal(t, 10, h.Cap(), "capacity 5 doubles once")
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, keys(h.SortedEntries()))
	// original untouched
	require.Equal(t, 10, h.Len())
	require.NoError(t, h.Verify())

	for _, e := range h.SortedEntries() {
		require.Equal(t, e.Key, e.Value)
	}
}

func TestMaxHeap_SortedDescending(t *testing.T) {
	h := newIntHeap(t, 2, heap.Max)
	for _, k := range []int{4, 9, 1, 7, 7, 3} {
		h.Insert(k, -k)
	}

	got := keys(h.SortedEntries())
	require.Equal(t, []int{9, 7, 7, 4, 3, 1}, got)
	require.True(t, capability.IsSorted(capability.Ordered[int](), got, true))

	top, ok := h.FindMinOrMax()
	require.True(t, ok)
	require.Equal(t, heap.Entry[int, int]{Key: 9, Value: -9}, top)
}

func TestExtract_Empty(t *testing.T) {
	h := newIntHeap(t, 1, heap.Min)

	for i := 0; i < 3; i++ {
		_, ok := h.ExtractMinOrMax()
		require.False(t, ok)
		require.Zero(t, h.Len())
	}
	_, ok := h.FindMinOrMax()
	require.False(t, ok)
	require.True(t, h.IsEmpty())
}

func TestExtract_Order(t *testing.T) {
	h := newIntHeap(t, 4, heap.Min)
	for _, k := range []int{5, 3, 8, 1, 9, 2} {
		h.Insert(k, k*10)
	}

	var got []int
	for !h.IsEmpty() {
		e, ok := h.ExtractMinOrMax()
		require.True(t, ok)
		require.Equal(t, e.Key*10, e.Value)
		got = append(got, e.Key)
		require.NoError(t, h.Verify())
	}
	require.Equal(t, []int{1, 2, 3, 5, 8, 9}, got)
}

func TestDecreaseKey(t *testing.T) {
	h := newIntHeap(t, 8, heap.Min)
	for v := 0; v < 6; v++ {
		h.Insert(100+v, v)
	}

	idx := h.IndexByValue(4)
	require.NotEqual(t, heap.NotFound, idx)

	// worse key is ignored
	h.DecreaseKey(idx, 500)
	e, ok := h.At(idx)
	require.True(t, ok)
	require.Equal(t, 104, e.Key)

	// equal key is accepted and leaves order intact
	h.DecreaseKey(idx, 104)
	require.NoError(t, h.Verify())

	// better key floats to the root
	h.DecreaseKey(idx, 1)
	require.NoError(t, h.Verify())
	root, ok := h.FindMinOrMax()
	require.True(t, ok)
	require.Equal(t, heap.Entry[int, int]{Key: 1, Value: 4}, root)

	// out-of-range positions are ignored
	require.NotPanics(t, func() {
		h.DecreaseKey(-1, 0)
		h.DecreaseKey(h.Len(), 0)
	})
	require.Equal(t, 6, h.Len())
}

func TestDecreaseKey_MaxHeapRejectsSmaller(t *testing.T) {
	h := newIntHeap(t, 4, heap.Max)
	h.Insert(5, 0)
	h.Insert(10, 1)

	idx := h.IndexByValue(0)
	h.DecreaseKey(idx, 2)
	e, _ := h.At(idx)
	require.Equal(t, 5, e.Key)

	h.DecreaseKey(idx, 20)
	root, _ := h.FindMinOrMax()
	require.Equal(t, heap.Entry[int, int]{Key: 20, Value: 0}, root)
}

func TestIndexLookups(t *testing.T) {
	h := newIntHeap(t, 4, heap.Min)
	h.Insert(3, 30)
	h.Insert(1, 10)
	h.Insert(3, 31)

	require.Equal(t, heap.NotFound, h.IndexByKey(42))
	require.Equal(t, heap.NotFound, h.IndexByValue(42))

	i := h.IndexByKey(1)
	e, ok := h.At(i)
	require.True(t, ok)
	require.Equal(t, 10, e.Value)

	j := h.IndexByValue(31)
	e, _ = h.At(j)
	require.Equal(t, 3, e.Key)

	_, ok = h.At(99)
	require.False(t, ok)
}

func TestOwnership(t *testing.T) {
	kops, vops := &liveInts{}, &liveInts{}
	h, err := heap.New[int, int](2, heap.Min, kops, vops)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		h.Insert(i, i)
	}
	require.Equal(t, 5, kops.live)
	require.Equal(t, 5, vops.live)

	// extracted copy belongs to the caller: stored copy released, returned one live
	e, ok := h.ExtractMinOrMax()
	require.True(t, ok)
	kops.Destroy(e.Key)
	vops.Destroy(e.Value)
	require.Equal(t, 4, kops.live)
	require.Equal(t, 4, vops.live)

	// decrease-key swaps one key copy for another
	h.DecreaseKey(h.IndexByValue(3), -1)
	require.Equal(t, 4, kops.live)

	// sorting works on a clone and releases it
	sorted := h.SortedEntries()
	for _, s := range sorted {
		kops.Destroy(s.Key)
		vops.Destroy(s.Value)
	}
	require.Equal(t, 4, kops.live)

	h.Destroy()
	require.Zero(t, kops.live)
	require.Zero(t, vops.live)
	require.True(t, h.IsEmpty())
	_, ok = h.ExtractMinOrMax()
	require.False(t, ok)
}

func TestClone_Independent(t *testing.T) {
	h := newIntHeap(t, 4, heap.Min)
	for _, k := range []int{4, 2, 6} {
		h.Insert(k, k)
	}

	c := h.Clone()
	_, _ = c.ExtractMinOrMax()
	require.Equal(t, 3, h.Len())
	require.Equal(t, 2, c.Len())
	require.Equal(t, h.Kind(), c.Kind())
}

func TestWithLogger_RecordsGrowth(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h, err := heap.New(1, heap.Min, capability.Ordered[int](), capability.Ordered[int](), heap.WithLogger(logger))
	require.NoError(t, err)
	h.Insert(1, 1)
	h.Insert(2, 2)

	require.Contains(t, buf.String(), "heap grown")
	require.Contains(t, buf.String(), "to=2")
}

// TestRandomOperations keeps the heap property across a random mix of
// Insert/Extract/DecreaseKey and checks the drained multiset.
func TestRandomOperations(t *testing.T) {
	for _, kind := range []heap.Kind{heap.Min, heap.Max} {
		t.Run(kind.String(), func(t *testing.T) {
			r := rand.New(rand.NewSource(42))
			h := newIntHeap(t, 3, kind)
			model := map[int]int{} // value -> key

			next := 0
			for step := 0; step < 2000; step++ {
				switch op := r.Intn(10); {
				case op < 5:
					k := r.Intn(1000)
					h.Insert(k, next)
					model[next] = k
					next++
				case op < 8:
					e, ok := h.ExtractMinOrMax()
					require.Equal(t, len(model) > 0, ok)
					if ok {
						for _, k := range model {
							if kind == heap.Min {
								require.LessOrEqual(t, e.Key, k)
							} else {
								require.GreaterOrEqual(t, e.Key, k)
							}
						}
						delete(model, e.Value)
					}
				default:
					if h.IsEmpty() {
						continue
					}
					i := r.Intn(h.Len())
					e, _ := h.At(i)
					nk := e.Key - r.Intn(50)
					if kind == heap.Max {
						nk = e.Key + r.Intn(50)
					}
					h.DecreaseKey(i, nk)
					model[e.Value] = nk
				}
				require.NoError(t, h.Verify())
				require.Equal(t, len(model), h.Len())
			}

			want := make([]int, 0, len(model))
			for _, k := range model {
				want = append(want, k)
			}
			if kind == heap.Min {
				sort.Ints(want)
			} else {
				sort.Sort(sort.Reverse(sort.IntSlice(want)))
			}
			require.Equal(t, want, keys(h.SortedEntries()))
		})
	}
}
