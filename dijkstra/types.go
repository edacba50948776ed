// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvcontainers/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or destination is not a
	// vertex of the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

const (
	// Infinity is the frontier key of a vertex no relaxation has reached.
	// It never takes part in arithmetic.
	Infinity = math.MaxInt

	// Unreachable is the distance reported for a vertex that was never finalised.
	Unreachable = -1
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Ctx         – cancellation; checked once per extracted vertex.
// Logger      – debug records for start, finish and heap growth.
// MaxDistance – vertices farther than this are left unfinalised.
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
type Options struct {
	Ctx         context.Context
	Logger      *slog.Logger
	MaxDistance int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Ctx:         context.Background().
//   - Logger:      discards everything.
//   - MaxDistance: math.MaxInt (no distance limit; explore all reachable).
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Logger:      slog.New(slog.DiscardHandler),
		MaxDistance: math.MaxInt,
	}
}

// WithContext sets a custom context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not finalised.
// Negative values are recorded and surface as ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// Result is the outcome of one Dijkstra run. Its embedded SearchResult lists
// finalised vertices in order of non-decreasing distance.
type Result struct {
	*core.SearchResult
}

// Distance returns the shortest distance from Source to dest, or Unreachable
// if dest was never finalised or is not a vertex.
func (r *Result) Distance(dest int) int {
	d, ok := r.DistanceTo(dest)
	if !ok {
		return Unreachable
	}

	return d
}

// Parent returns the predecessor of v on its shortest path, or core.NoParent
// if v was never finalised. The source is its own parent.
func (r *Result) Parent(v int) int {
	p, _ := r.ParentOf(v)

	return p
}
