// SPDX-License-Identifier: MIT
//
package schreiersims

import (
	"context"
	"math/big"

	"github.com/rs/zerolog"
)

// Option configures a builder call via functional arguments, mirroring
// builder.BuilderOption's shape.
type Option func(*config)

type config struct {
	ctx         context.Context
	logger      zerolog.Logger
	targetOrder *big.Int
}

func defaultConfig() config {
	return config{
		ctx:    context.Background(),
		logger: zerolog.Nop(),
	}
}

// WithContext sets a cancellation context checked at each outer-loop
// iteration of construction.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger attaches a structured logger for phase-boundary
// diagnostics. Defaults to zerolog.Nop() — never a hidden global sink.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithTargetOrder supplies a known group order to verify against once
// construction finishes; mismatch is reported as ErrIncompleteChain.
func WithTargetOrder(order *big.Int) Option {
	return func(c *config) { c.targetOrder = order }
}

func resolveOptions(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
