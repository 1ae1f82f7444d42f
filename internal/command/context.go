// Package command holds what every command implementation receives: the
// resolved execution mode, the operation factories, and how to load config.
package command

import (
	"github.com/rileyhilliard/icp/internal/config"
	"github.com/rileyhilliard/icp/internal/logger"
	"github.com/rileyhilliard/icp/internal/mode"
	"github.com/rileyhilliard/icp/internal/ops"
)

// Context is built once per process invocation.
type Context struct {
	Mode mode.Mode
	Ops  ops.Initializers

	// LoadResolver loads config for the mode. It runs only after the
	// arguments have passed validation. Nil means config.LoadResolver.
	LoadResolver func(mode.Mode) (*config.Resolver, error)

	Logger logger.Logger

	// DryRun stops after resolution; no operation is invoked.
	DryRun bool
}

// Resolver loads the resolver for c.Mode.
func (c *Context) Resolver() (*config.Resolver, error) {
	if c.LoadResolver != nil {
		return c.LoadResolver(c.Mode)
	}
	return config.LoadResolver(c.Mode)
}

// Log returns c.Logger, or a no-op logger if none is set.
func (c *Context) Log() logger.Logger {
	if c.Logger == nil {
		return logger.Noop()
	}
	return c.Logger
}
