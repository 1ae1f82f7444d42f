package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/rileyhilliard/icp/internal/principal"
)

// Validate checks the project config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but icp only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade icp to the latest release.")
	}

	if _, ok := cfg.Networks[cfg.DefaultNetwork]; !ok {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Default network '%s' doesn't exist", cfg.DefaultNetwork),
			fmt.Sprintf("Available networks: %s", strings.Join(sortedKeys(cfg.Networks), ", ")))
	}

	for _, name := range sortedKeys(cfg.Networks) {
		if err := validateNetwork(name, cfg.Networks[name]); err != nil {
			return err
		}
	}

	for _, name := range sortedKeys(cfg.Environments) {
		env := cfg.Environments[name]
		if _, ok := cfg.Networks[env.Network]; !ok {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Environment '%s' uses unknown network '%s'", name, env.Network),
				fmt.Sprintf("Available networks: %s", strings.Join(sortedKeys(cfg.Networks), ", ")))
		}
	}

	for _, name := range sortedKeys(cfg.Canisters) {
		if err := validateCanister(name, cfg.Canisters[name], cfg.Networks); err != nil {
			return err
		}
	}

	return nil
}

func validateNetwork(name string, n Network) error {
	if !strings.HasPrefix(n.URL, "http://") && !strings.HasPrefix(n.URL, "https://") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Network '%s' has URL '%s', which is not http(s)", name, n.URL),
			"Network URLs must start with http:// or https://")
	}
	return nil
}

func validateCanister(name string, c Canister, networks map[string]Network) error {
	for _, network := range sortedKeys(c.IDs) {
		if _, ok := networks[network]; !ok {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Canister '%s' has an id for unknown network '%s'", name, network),
				fmt.Sprintf("Available networks: %s", strings.Join(sortedKeys(networks), ", ")))
		}
		if _, err := principal.Parse(c.IDs[network]); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Canister '%s' has an invalid id on network '%s'", name, network),
				"Canister ids look like ryjl3-tyaaa-aaaaa-aaaba-cai")
		}
	}
	return nil
}

// ValidateGlobal checks the global config for errors.
func ValidateGlobal(cfg *GlobalConfig) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Global config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentGlobalConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Global config is from the future (version %d, but icp only knows up to %d)", cfg.Version, CurrentGlobalConfigVersion),
			"Upgrade icp to the latest release.")
	}

	if err := validateNetwork("global default", Network(cfg.Network)); err != nil {
		return err
	}

	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown output.color '%s'", cfg.Output.Color),
			"Use one of: auto, always, never")
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
