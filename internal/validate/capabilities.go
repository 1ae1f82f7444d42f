package validate

import (
	"github.com/rileyhilliard/icp/internal/args"
	"github.com/rileyhilliard/icp/internal/principal"
)

// Argument bundles expose the fields rules need through these narrow views.
// A rule depends on one view, never on a concrete bundle type, so the same
// rule serves every command whose bundle carries that field.

// HasCanister is implemented by bundles that address a canister.
type HasCanister interface {
	CanisterArg() args.Canister
}

// HasNetwork is implemented by bundles with an optional --network.
type HasNetwork interface {
	NetworkArg() *args.Network
}

// HasEnvironment is implemented by bundles with an optional --environment.
type HasEnvironment interface {
	EnvironmentArg() *string
}

// HasNetworkAndEnvironment is the pair checked for mutual exclusion.
type HasNetworkAndEnvironment interface {
	HasNetwork
	HasEnvironment
}

// HasSenderAndReceiver is implemented by bundles that move tokens between two ids.
type HasSenderAndReceiver interface {
	FromArg() principal.Principal
	ToArg() principal.Principal
}
