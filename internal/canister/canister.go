// Package canister implements the canister lifecycle commands.
package canister

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/icp/internal/args"
	"github.com/rileyhilliard/icp/internal/command"
	"github.com/rileyhilliard/icp/internal/config"
	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/rileyhilliard/icp/internal/ops"
	"github.com/rileyhilliard/icp/internal/principal"
	"github.com/rileyhilliard/icp/internal/validate"
)

// LifecycleArgs are the arguments shared by start and stop.
type LifecycleArgs struct {
	Canister    args.Canister
	Network     *args.Network
	Environment *string
}

func (a LifecycleArgs) CanisterArg() args.Canister { return a.Canister }
func (a LifecycleArgs) NetworkArg() *args.Network  { return a.Network }
func (a LifecycleArgs) EnvironmentArg() *string    { return a.Environment }

// StartArgs are the arguments to `icp canister start`.
type StartArgs struct{ LifecycleArgs }

// StopArgs are the arguments to `icp canister stop`.
type StopArgs struct{ LifecycleArgs }

var (
	startPipeline = validate.NewPipeline[StartArgs]()
	stopPipeline  = validate.NewPipeline[StopArgs]()
)

// CheckStart runs validation only.
func CheckStart(c *command.Context, a StartArgs) error {
	return startPipeline.Validate(a, c.Mode)
}

// CheckStop runs validation only.
func CheckStop(c *command.Context, a StopArgs) error {
	return stopPipeline.Validate(a, c.Mode)
}

// Plan is what a lifecycle command resolved to.
type Plan struct {
	Operation string              `json:"operation"`
	Canister  principal.Principal `json:"canister"`
	Network   string              `json:"network,omitempty"`
	URL       string              `json:"url"`
	DryRun    bool                `json:"dry_run"`
}

// Start validates args, resolves the canister and network, then starts the canister.
func Start(ctx context.Context, c *command.Context, a StartArgs) (Plan, error) {
	if err := CheckStart(c, a); err != nil {
		return Plan{}, err
	}
	plan, err := resolve(c, "start", a.LifecycleArgs)
	if err != nil || c.DryRun {
		return plan, err
	}

	c.Log().Debug("starting %s at %s", plan.Canister, plan.URL)
	if err := c.Ops.Canister.Start(ops.Agent{URL: plan.URL}).Start(ctx, plan.Canister); err != nil {
		return plan, wrapOp(err, "start", a.Canister)
	}
	return plan, nil
}

// Stop validates args, resolves the canister and network, then stops the canister.
func Stop(ctx context.Context, c *command.Context, a StopArgs) (Plan, error) {
	if err := CheckStop(c, a); err != nil {
		return Plan{}, err
	}
	plan, err := resolve(c, "stop", a.LifecycleArgs)
	if err != nil || c.DryRun {
		return plan, err
	}

	c.Log().Debug("stopping %s at %s", plan.Canister, plan.URL)
	if err := c.Ops.Canister.Stop(ops.Agent{URL: plan.URL}).Stop(ctx, plan.Canister); err != nil {
		return plan, wrapOp(err, "stop", a.Canister)
	}
	return plan, nil
}

// SetIDArgs are the arguments to `icp canister set-id`.
type SetIDArgs struct {
	Name    string
	ID      principal.Principal
	Network string
}

// SetID records a canister id for a named network in the project config.
// It has no meaning outside a project.
func SetID(c *command.Context, a SetIDArgs) error {
	if !c.Mode.IsProject() {
		return errors.New(errors.ErrConfig,
			"Canister ids can only be recorded inside a project",
			"Run from a directory containing icp.yaml, or create one with: icp init")
	}
	network := a.Network
	if network == "" {
		network = config.LocalNetwork
	}
	if err := config.SetCanisterID(c.Mode.ConfigPath(), a.Name, network, a.ID); err != nil {
		return err
	}
	c.Log().Debug("recorded %s=%s on %s", a.Name, a.ID, network)
	return nil
}

func resolve(c *command.Context, op string, a LifecycleArgs) (Plan, error) {
	r, err := c.Resolver()
	if err != nil {
		return Plan{}, err
	}
	net, err := r.ResolveNetwork(a.Network, a.Environment)
	if err != nil {
		return Plan{}, err
	}
	id, err := r.ResolveCanister(a.Canister, net)
	if err != nil {
		return Plan{}, err
	}
	return Plan{
		Operation: op,
		Canister:  id,
		Network:   net.Name,
		URL:       net.URL,
		DryRun:    c.DryRun,
	}, nil
}

func wrapOp(err error, op string, c args.Canister) error {
	// Already one of ours (e.g. not implemented); keep its message and hint.
	var e *errors.Error
	if errors.As(err, &e) {
		return err
	}
	return errors.Wrap(err, fmt.Sprintf("Couldn't %s canister %s", op, c.Text()))
}
