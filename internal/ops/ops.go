// Package ops defines the networked operations commands invoke once their
// arguments have been validated and resolved. The operations are opaque to
// the rest of icp: something that either succeeds or returns an error.
package ops

import (
	"context"

	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/rileyhilliard/icp/internal/principal"
)

// Agent describes the endpoint an operation talks to.
type Agent struct {
	URL string
}

// Starter starts a canister.
type Starter interface {
	Start(ctx context.Context, canister principal.Principal) error
}

// Stopper stops a canister.
type Stopper interface {
	Stop(ctx context.Context, canister principal.Principal) error
}

// Transferer moves tokens between two accounts.
type Transferer interface {
	Transfer(ctx context.Context, from, to principal.Principal) error
}

// CanisterInitializers build canister operations for an agent.
type CanisterInitializers struct {
	Start func(Agent) Starter
	Stop  func(Agent) Stopper
}

// TokenInitializers build token operations for an agent.
type TokenInitializers struct {
	Transfer func(Agent) Transferer
}

// Initializers is the full set of operation factories a command context carries.
type Initializers struct {
	Canister CanisterInitializers
	Token    TokenInitializers
}

// Default returns initializers whose operations report that no transport
// is wired in yet.
func Default() Initializers {
	return Initializers{
		Canister: CanisterInitializers{
			Start: func(Agent) Starter { return unimplemented{name: "canister start"} },
			Stop:  func(Agent) Stopper { return unimplemented{name: "canister stop"} },
		},
		Token: TokenInitializers{
			Transfer: func(Agent) Transferer { return unimplemented{name: "token transfer"} },
		},
	}
}

type unimplemented struct {
	name string
}

func (u unimplemented) Start(context.Context, principal.Principal) error {
	return errors.NewNotImplemented(u.name)
}

func (u unimplemented) Stop(context.Context, principal.Principal) error {
	return errors.NewNotImplemented(u.name)
}

func (u unimplemented) Transfer(context.Context, principal.Principal, principal.Principal) error {
	return errors.NewNotImplemented(u.name)
}

// StarterFunc adapts a function to Starter.
type StarterFunc func(ctx context.Context, canister principal.Principal) error

func (f StarterFunc) Start(ctx context.Context, canister principal.Principal) error {
	return f(ctx, canister)
}

// StopperFunc adapts a function to Stopper.
type StopperFunc func(ctx context.Context, canister principal.Principal) error

func (f StopperFunc) Stop(ctx context.Context, canister principal.Principal) error {
	return f(ctx, canister)
}

// TransfererFunc adapts a function to Transferer.
type TransfererFunc func(ctx context.Context, from, to principal.Principal) error

func (f TransfererFunc) Transfer(ctx context.Context, from, to principal.Principal) error {
	return f(ctx, from, to)
}
