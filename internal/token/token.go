// Package token implements token movement between principals.
package token

import (
	"context"

	"github.com/rileyhilliard/icp/internal/args"
	"github.com/rileyhilliard/icp/internal/command"
	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/rileyhilliard/icp/internal/ops"
	"github.com/rileyhilliard/icp/internal/principal"
	"github.com/rileyhilliard/icp/internal/validate"
)

// TransferArgs are the arguments to `icp token transfer`.
type TransferArgs struct {
	From    principal.Principal
	To      principal.Principal
	Network *args.Network
}

func (a TransferArgs) FromArg() principal.Principal { return a.From }
func (a TransferArgs) ToArg() principal.Principal   { return a.To }
func (a TransferArgs) NetworkArg() *args.Network    { return a.Network }

var transferPipeline = validate.NewPipeline[TransferArgs](validate.FromAndToMustDifferRule)

// Plan is what a transfer resolved to.
type Plan struct {
	From    principal.Principal `json:"from"`
	To      principal.Principal `json:"to"`
	Network string              `json:"network,omitempty"`
	URL     string              `json:"url"`
	DryRun  bool                `json:"dry_run"`
}

// CheckTransfer runs validation only. The CLI uses it to fail before
// asking for confirmation.
func CheckTransfer(c *command.Context, a TransferArgs) error {
	return transferPipeline.Validate(a, c.Mode)
}

// Transfer validates args, resolves the network, then moves tokens.
func Transfer(ctx context.Context, c *command.Context, a TransferArgs) (Plan, error) {
	if err := CheckTransfer(c, a); err != nil {
		return Plan{}, err
	}

	r, err := c.Resolver()
	if err != nil {
		return Plan{}, err
	}
	net, err := r.ResolveNetwork(a.Network, nil)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{From: a.From, To: a.To, Network: net.Name, URL: net.URL, DryRun: c.DryRun}
	if c.DryRun {
		return plan, nil
	}

	c.Log().Debug("transferring %s -> %s at %s", a.From, a.To, net.URL)
	if err := c.Ops.Token.Transfer(ops.Agent{URL: net.URL}).Transfer(ctx, a.From, a.To); err != nil {
		var e *errors.Error
		if errors.As(err, &e) {
			return plan, err
		}
		return plan, errors.Wrap(err, "Couldn't transfer tokens from "+a.From.String()+" to "+a.To.String())
	}
	return plan, nil
}
