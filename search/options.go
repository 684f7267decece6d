// SPDX-License-Identifier: MIT
//
package search

import (
	"context"

	"github.com/rs/zerolog"
)

// Option configures a Search/FindOne call via functional arguments.
type Option func(*config)

type config struct {
	ctx    context.Context
	logger zerolog.Logger
}

func defaultConfig() config {
	return config{ctx: context.Background(), logger: zerolog.Nop()}
}

// WithContext sets a cancellation context checked periodically during
// the DFS walk.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger attaches a structured logger. Defaults to zerolog.Nop().
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
