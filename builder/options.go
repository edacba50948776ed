// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption configures the resolved builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call.
type builderConfig struct {
	rng *rand.Rand
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand uses r as the random source of stochastic constructors.
// It panics on a nil source.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh random source for stochastic constructors.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
