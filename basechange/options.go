// SPDX-License-Identifier: MIT
//
package basechange

import (
	"context"

	"github.com/rs/zerolog"
)

// Option configures a Swap call via functional arguments.
type Option func(*config)

type config struct {
	ctx    context.Context
	logger zerolog.Logger
}

func defaultConfig() config {
	return config{ctx: context.Background(), logger: zerolog.Nop()}
}

// WithContext sets a cancellation context checked between levels.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger attaches a structured logger for phase-boundary
// diagnostics. Defaults to zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func resolveOptions(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
