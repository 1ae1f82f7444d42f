package config

import (
	"fmt"

	"github.com/rileyhilliard/icp/internal/args"
	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/rileyhilliard/icp/internal/mode"
	"github.com/rileyhilliard/icp/internal/principal"
	"github.com/rileyhilliard/icp/internal/util"
)

// ResolvedNetwork is the concrete endpoint a command talks to.
type ResolvedNetwork struct {
	// Name is the symbolic network name, empty when given as a URL.
	Name string
	URL  string
}

// Resolver turns already-validated arguments into concrete ids and URLs.
// Project is nil in global mode.
type Resolver struct {
	Mode    mode.Mode
	Project *Config
	Global  *GlobalConfig
}

// LoadResolver loads whatever config the mode needs and validates it.
func LoadResolver(m mode.Mode) (*Resolver, error) {
	global, err := LoadGlobal()
	if err != nil {
		return nil, err
	}
	if err := ValidateGlobal(global); err != nil {
		return nil, err
	}

	r := &Resolver{Mode: m, Global: global}
	if m.IsProject() {
		cfg, err := Load(m.ConfigPath())
		if err != nil {
			return nil, err
		}
		if err := Validate(cfg); err != nil {
			return nil, err
		}
		r.Project = cfg
	}
	return r, nil
}

// ResolveNetwork picks the endpoint from --network, --environment or the
// mode's default.
func (r *Resolver) ResolveNetwork(network *args.Network, environment *string) (ResolvedNetwork, error) {
	if network != nil && network.IsURL() {
		return ResolvedNetwork{URL: network.Value()}, nil
	}

	if r.Project == nil {
		if network != nil {
			return ResolvedNetwork{}, errors.New(errors.ErrResolve,
				fmt.Sprintf("Network '%s' can't be resolved without a project", network.Value()),
				"Pass a network URL, e.g. --network "+MainNetworkURL)
		}
		return ResolvedNetwork{URL: r.Global.Network.URL}, nil
	}

	name := r.Project.DefaultNetwork
	switch {
	case environment != nil:
		env, ok := r.Project.Environments[*environment]
		if !ok {
			return ResolvedNetwork{}, errors.New(errors.ErrResolve,
				fmt.Sprintf("Environment '%s' not found", *environment),
				suggest(*environment, "environments", sortedKeys(r.Project.Environments)))
		}
		name = env.Network
	case network != nil:
		name = network.Value()
	}

	n, ok := r.Project.Networks[name]
	if !ok {
		return ResolvedNetwork{}, errors.New(errors.ErrResolve,
			fmt.Sprintf("Network '%s' not found", name),
			suggest(name, "networks", sortedKeys(r.Project.Networks)))
	}
	return ResolvedNetwork{Name: name, URL: n.URL}, nil
}

// ResolveCanister returns the canister id on the given network. Principals
// pass through untouched; names are looked up in the project config.
func (r *Resolver) ResolveCanister(c args.Canister, network ResolvedNetwork) (principal.Principal, error) {
	if p, ok := c.Principal(); ok {
		return p, nil
	}

	name, _ := c.Name()
	if r.Project == nil {
		return principal.Principal{}, errors.New(errors.ErrResolve,
			fmt.Sprintf("Canister '%s' can't be resolved without a project", name),
			"Pass the canister principal instead")
	}

	canister, ok := r.Project.Canisters[name]
	if !ok {
		return principal.Principal{}, errors.New(errors.ErrResolve,
			fmt.Sprintf("Canister '%s' not found", name),
			suggest(name, "canisters", sortedKeys(r.Project.Canisters)))
	}

	if network.Name == "" {
		return principal.Principal{}, errors.New(errors.ErrResolve,
			fmt.Sprintf("Canister '%s' can't be looked up on an unnamed network", name),
			"Use a network name from icp.yaml")
	}

	text, ok := canister.IDs[network.Name]
	if !ok {
		return principal.Principal{}, errors.New(errors.ErrResolve,
			fmt.Sprintf("Canister '%s' has no id on network '%s'", name, network.Name),
			fmt.Sprintf("Record one with: icp canister set-id %s <principal> --network %s", name, network.Name))
	}

	p, err := principal.Parse(text)
	if err != nil {
		return principal.Principal{}, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Canister '%s' has an invalid id on network '%s'", name, network.Name),
			"Fix the id in icp.yaml")
	}
	return p, nil
}

// suggest lists the known names, led by close matches for a misspelled one.
func suggest(input, kind string, names []string) string {
	list := fmt.Sprintf("Available %s: %s", kind, util.JoinOrNone(names))
	if hint := util.DidYouMean(input, names); hint != "" {
		return hint + " " + list
	}
	return list
}
