package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/spf13/viper"
)

const (
	// GlobalConfigDir is the directory for global config, relative to home.
	GlobalConfigDir = ".config/icp"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides for global settings,
	// e.g. ICP_NETWORK_URL.
	EnvPrefix = "ICP"
)

// Load reads a project config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setProjectDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+path,
				"Run 'icp init' to create one")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}
	fillProjectDefaults(cfg)

	return cfg, nil
}

// setProjectDefaults mirrors DefaultConfig for scalar keys.
func setProjectDefaults(v *viper.Viper) {
	v.SetDefault("version", CurrentConfigVersion)
	v.SetDefault("default_network", LocalNetwork)
}

// fillProjectDefaults merges built-in networks under user-defined ones and
// makes every map non-nil.
func fillProjectDefaults(cfg *Config) {
	if cfg.Networks == nil {
		cfg.Networks = make(map[string]Network)
	}
	for name, n := range BuiltinNetworks() {
		if _, ok := cfg.Networks[name]; !ok {
			cfg.Networks[name] = n
		}
	}
	if cfg.Environments == nil {
		cfg.Environments = make(map[string]Environment)
	}
	if cfg.Canisters == nil {
		cfg.Canisters = make(map[string]Canister)
	}
}

// GlobalConfigPath returns ~/.config/icp/config.yaml, or empty if the home
// directory is unknown.
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobal reads the global config. A missing file yields defaults.
// ICP_* environment variables override file values.
func LoadGlobal() (*GlobalConfig, error) {
	return LoadGlobalFrom(GlobalConfigPath())
}

// LoadGlobalFrom reads the global config from path. An empty path or a
// missing file yields defaults (plus environment overrides).
func LoadGlobalFrom(path string) (*GlobalConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultGlobalConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("network.url", def.Network.URL)
	v.SetDefault("output.color", def.Output.Color)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Failed to read global config",
					"Check the YAML syntax in "+path)
			}
		}
	}

	cfg := &GlobalConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid global config format",
			"Check the YAML syntax in "+path)
	}
	return cfg, nil
}
