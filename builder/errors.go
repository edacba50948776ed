// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices is returned when a size parameter is below a
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when an edge probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned by stochastic constructors run without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed is returned for a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
