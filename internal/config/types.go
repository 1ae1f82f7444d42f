package config

// CurrentConfigVersion is the schema version for icp.yaml.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// CurrentGlobalConfigVersion is the schema version for the global config.
const CurrentGlobalConfigVersion = 1

// Built-in network names, available in every project.
const (
	LocalNetwork = "local"
	MainNetwork  = "ic"
)

// Built-in endpoints.
const (
	LocalNetworkURL = "http://127.0.0.1:4943"
	MainNetworkURL  = "https://icp-api.io"
)

// Config represents a project's icp.yaml.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// DefaultNetwork is used when neither --network nor --environment is given.
	DefaultNetwork string `yaml:"default_network" mapstructure:"default_network"`

	// Networks maps symbolic names to endpoints. "local" and "ic" are
	// always defined unless overridden here.
	Networks map[string]Network `yaml:"networks,omitempty" mapstructure:"networks"`

	// Environments name a deployment target on some network.
	Environments map[string]Environment `yaml:"environments,omitempty" mapstructure:"environments"`

	// Canisters maps canister names to their ids per network.
	Canisters map[string]Canister `yaml:"canisters,omitempty" mapstructure:"canisters"`
}

// Network is a named endpoint.
type Network struct {
	URL string `yaml:"url" mapstructure:"url"`
}

// Environment binds an environment name to a network.
type Environment struct {
	Network string `yaml:"network" mapstructure:"network"`
}

// Canister records where a named canister lives.
type Canister struct {
	// IDs maps network name to canister principal text.
	IDs map[string]string `yaml:"ids" mapstructure:"ids"`
}

// GlobalConfig is ~/.config/icp/config.yaml, used when no project is found.
type GlobalConfig struct {
	Version int           `yaml:"version" mapstructure:"version"`
	Network GlobalNetwork `yaml:"network" mapstructure:"network"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
}

// GlobalNetwork holds the endpoint used in global mode without --network.
type GlobalNetwork struct {
	URL string `yaml:"url" mapstructure:"url"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// BuiltinNetworks returns the networks every project starts with.
func BuiltinNetworks() map[string]Network {
	return map[string]Network{
		LocalNetwork: {URL: LocalNetworkURL},
		MainNetwork:  {URL: MainNetworkURL},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:        CurrentConfigVersion,
		DefaultNetwork: LocalNetwork,
		Networks:       BuiltinNetworks(),
		Environments:   make(map[string]Environment),
		Canisters:      make(map[string]Canister),
	}
}

// DefaultGlobalConfig returns the global defaults.
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Version: CurrentGlobalConfigVersion,
		Network: GlobalNetwork{URL: MainNetworkURL},
		Output:  OutputConfig{Color: "auto"},
	}
}
