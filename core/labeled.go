// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"iter"
)

// Labeled addresses a LabelGeneric Graph by arbitrary comparable labels.
//
// Labels are bound to dense indices in first-use order by AddEdge; the
// binding is bijective and permanent for the life of the Labeled value.
// Queries never bind labels.
type Labeled[L comparable] struct {
	g      *Graph
	index  map[L]int
	labels []L
}

// NewLabeled creates a generic-label graph with room for vertexCount labels.
// opts are applied to the underlying Graph; its label kind is always
// LabelGeneric.
func NewLabeled[L comparable](vertexCount int, opts ...GraphOption) (*Labeled[L], error) {
	all := make([]GraphOption, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithLabelKind(LabelGeneric))
	g, err := NewGraph(vertexCount, all...)
	if err != nil {
		return nil, err
	}

	return &Labeled[L]{
		g:      g,
		index:  make(map[L]int, vertexCount),
		labels: make([]L, 0, vertexCount),
	}, nil
}

// Graph returns the underlying integer-indexed graph, e.g. to run a search.
// Treat it as read-only: edges added through it land on indices whose
// future labels inherit them. Labeled queries ignore unbound indices.
func (lg *Labeled[L]) Graph() *Graph { return lg.g }

// Index returns the index bound to label.
func (lg *Labeled[L]) Index(label L) (int, bool) {
	i, ok := lg.index[label]
	return i, ok
}

// Label returns the label bound to index i.
func (lg *Labeled[L]) Label(i int) (L, bool) {
	if i < 0 || i >= len(lg.labels) {
		var zero L
		return zero, false
	}

	return lg.labels[i], true
}

// Bound returns how many labels have been bound so far.
func (lg *Labeled[L]) Bound() int { return len(lg.labels) }

// AddEdge connects labels u and v, binding either to a fresh index if needed.
// Returns ErrLabelSpaceFull, binding nothing, when the new labels do not fit.
func (lg *Labeled[L]) AddEdge(u, v L) error {
	need := 0
	if _, ok := lg.index[u]; !ok {
		need++
	}
	if _, ok := lg.index[v]; !ok && u != v {
		need++
	}
	if free := lg.g.VertexCount() - len(lg.labels); need > free {
		return fmt.Errorf("%w: need %d, %d free", ErrLabelSpaceFull, need, free)
	}

	return lg.g.AddEdge(lg.bind(u), lg.bind(v))
}

// HasEdge reports whether u and v are bound and adjacent.
func (lg *Labeled[L]) HasEdge(u, v L) bool {
	iu, ok := lg.index[u]
	if !ok {
		return false
	}
	iv, ok := lg.index[v]
	if !ok {
		return false
	}

	return lg.g.HasEdge(iu, iv)
}

// OutDegree returns the number of bound labels adjacent to label, or
// ErrLabelNotFound.
func (lg *Labeled[L]) OutDegree(label L) (int, error) {
	if _, ok := lg.index[label]; !ok {
		return 0, fmt.Errorf("%w: %v", ErrLabelNotFound, label)
	}
	d := 0
	for range lg.Neighbors(label) {
		d++
	}

	return d, nil
}

// Neighbors yields the labels adjacent to label. An unbound label yields
// nothing; neighbors at indices no label is bound to are skipped.
func (lg *Labeled[L]) Neighbors(label L) iter.Seq[L] {
	return func(yield func(L) bool) {
		i, ok := lg.index[label]
		if !ok {
			return
		}
		for n := range lg.g.Neighbors(i) {
			if n >= len(lg.labels) {
				continue
			}
			if !yield(lg.labels[n]) {
				return
			}
		}
	}
}

// Destroy releases the underlying graph and forgets all bindings.
func (lg *Labeled[L]) Destroy() {
	lg.g.Destroy()
	clear(lg.index)
	lg.labels = nil
}

func (lg *Labeled[L]) bind(label L) int {
	if i, ok := lg.index[label]; ok {
		return i
	}
	i := len(lg.labels)
	lg.index[label] = i
	lg.labels = append(lg.labels, label)

	return i
}
