package config

import (
	"testing"

	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:        "future version",
			mutate:      func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr:     true,
			errContains: "from the future",
		},
		{
			name:        "unknown default network",
			mutate:      func(c *Config) { c.DefaultNetwork = "nowhere" },
			wantErr:     true,
			errContains: "Default network 'nowhere'",
		},
		{
			name:        "network without http scheme",
			mutate:      func(c *Config) { c.Networks["lab"] = Network{URL: "lab.example.com"} },
			wantErr:     true,
			errContains: "Network 'lab'",
		},
		{
			name:        "environment on unknown network",
			mutate:      func(c *Config) { c.Environments["prod"] = Environment{Network: "mars"} },
			wantErr:     true,
			errContains: "Environment 'prod' uses unknown network 'mars'",
		},
		{
			name: "canister id on unknown network",
			mutate: func(c *Config) {
				c.Canisters["backend"] = Canister{IDs: map[string]string{"mars": "ryjl3-tyaaa-aaaaa-aaaba-cai"}}
			},
			wantErr:     true,
			errContains: "unknown network 'mars'",
		},
		{
			name: "invalid canister id",
			mutate: func(c *Config) {
				c.Canisters["backend"] = Canister{IDs: map[string]string{"ic": "not-a-principal"}}
			},
			wantErr:     true,
			errContains: "invalid id",
		},
		{
			name: "valid canister ids",
			mutate: func(c *Config) {
				c.Canisters["backend"] = Canister{IDs: map[string]string{
					"local": "rrkah-fqaaa-aaaaa-aaaaq-cai",
					"ic":    "ryjl3-tyaaa-aaaaa-aaaba-cai",
				}}
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidateGlobal(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *GlobalConfig
		errContains string
	}{
		{name: "nil", cfg: nil, errContains: "nil"},
		{
			name:        "future version",
			cfg:         &GlobalConfig{Version: 99, Network: GlobalNetwork{URL: MainNetworkURL}, Output: OutputConfig{Color: "auto"}},
			errContains: "from the future",
		},
		{
			name:        "bad url",
			cfg:         &GlobalConfig{Version: 1, Network: GlobalNetwork{URL: "icp-api.io"}, Output: OutputConfig{Color: "auto"}},
			errContains: "not http(s)",
		},
		{
			name:        "bad color",
			cfg:         &GlobalConfig{Version: 1, Network: GlobalNetwork{URL: MainNetworkURL}, Output: OutputConfig{Color: "rainbow"}},
			errContains: "output.color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGlobal(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
