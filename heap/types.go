// SPDX-License-Identifier: MIT

package heap

import (
	"errors"
	"log/slog"
)

// Sentinel errors for heap construction and verification.
var (
	// ErrBadCapacity is returned when New is called with a capacity below 1.
	ErrBadCapacity = errors.New("heap: capacity must be positive")

	// ErrBadKind is returned for a Kind other than Min or Max.
	ErrBadKind = errors.New("heap: unknown heap kind")

	// ErrHeapOrder is returned by Verify when a child orders before its parent.
	ErrHeapOrder = errors.New("heap: heap property violated")
)

// NotFound is returned by index lookups that match nothing.
const NotFound = -1

// growthFactor is the multiplier applied to the capacity when the heap is full.
const growthFactor = 2

// Kind selects the ordering of a Heap.
type Kind int

const (
	// Min keeps the smallest key at the root.
	Min Kind = iota
	// Max keeps the largest key at the root.
	Max
)

// String returns "min" or "max".
func (k Kind) String() string {
	switch k {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "unknown"
	}
}

// Entry is a (key, value) pair. Key drives ordering; Value is opaque payload.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Options configures a Heap.
type Options struct {
	// Logger receives debug records (capacity growth). Defaults to a discard logger.
	Logger *slog.Logger
}

// Option configures a Heap via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a discard logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
}

// WithLogger sets the logger used for debug records. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
