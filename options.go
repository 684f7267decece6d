// SPDX-License-Identifier: MIT
//
package permgroup

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mcanlas/alasc/perm"
)

// Option configures a Grp-level call via functional arguments.
type Option func(*config)

type config struct {
	ctx    context.Context
	logger zerolog.Logger
	action perm.Action
}

func defaultConfig() config {
	return config{
		ctx:    context.Background(),
		logger: zerolog.Nop(),
		action: perm.DefaultAction{},
	}
}

// WithContext sets a cancellation context, threaded down into
// whichever subpackage (schreiersims, basechange, search) the call
// delegates to.
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

// WithAction overrides the perm.Action used to compute orbits and
// transversals. Defaults to perm.DefaultAction{}.
func WithAction(action perm.Action) Option {
	return func(c *config) {
		if action != nil {
			c.action = action
		}
	}
}

func resolveOptions(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
