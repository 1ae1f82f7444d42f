package canister

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/icp/internal/args"
	"github.com/rileyhilliard/icp/internal/command"
	"github.com/rileyhilliard/icp/internal/config"
	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/rileyhilliard/icp/internal/mode"
	"github.com/rileyhilliard/icp/internal/ops"
	opstesting "github.com/rileyhilliard/icp/internal/ops/testing"
	"github.com/rileyhilliard/icp/internal/principal"
	"github.com/rileyhilliard/icp/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	backendLocal = principal.MustParse("rrkah-fqaaa-aaaaa-aaaaq-cai")
	backendIC    = principal.MustParse("ryjl3-tyaaa-aaaaa-aaaba-cai")
	other        = principal.MustParse("rwlgt-iiaaa-aaaaa-aaaaa-cai")
)

func netPtr(n args.Network) *args.Network { return &n }
func strPtr(s string) *string             { return &s }

func testContext(m mode.Mode, fake *opstesting.FakeOps) *command.Context {
	return &command.Context{
		Mode: m,
		Ops:  fake.Initializers(),
		LoadResolver: func(m mode.Mode) (*config.Resolver, error) {
			r := &config.Resolver{Mode: m, Global: config.DefaultGlobalConfig()}
			if m.IsProject() {
				cfg := config.DefaultConfig()
				cfg.Environments["prod"] = config.Environment{Network: config.MainNetwork}
				cfg.Canisters["backend"] = config.Canister{IDs: map[string]string{
					config.LocalNetwork: backendLocal.String(),
					config.MainNetwork:  backendIC.String(),
				}}
				r.Project = cfg
			}
			return r, nil
		},
	}
}

func TestStart_ValidationFailureInvokesNothing(t *testing.T) {
	tests := []struct {
		name string
		mode mode.Mode
		args LifecycleArgs
		want validate.Diagnostic
	}{
		{
			name: "name in global mode",
			mode: mode.NewGlobal(),
			args: LifecycleArgs{Canister: args.CanisterByName("backend")},
			want: validate.CanisterPrincipalRequiredInGlobalMode,
		},
		{
			name: "network name and canister name in global mode",
			mode: mode.NewGlobal(),
			args: LifecycleArgs{
				Canister: args.CanisterByName("c"),
				Network:  netPtr(args.NetworkByName("n")),
			},
			want: validate.NetworkURLRequiredInGlobalMode,
		},
		{
			name: "environment and canister name in global mode",
			mode: mode.NewGlobal(),
			args: LifecycleArgs{
				Canister:    args.CanisterByName("backend"),
				Environment: strPtr("prod"),
			},
			want: validate.CanisterPrincipalRequiredInGlobalMode,
		},
		{
			name: "network and environment",
			mode: mode.NewProject("dir"),
			args: LifecycleArgs{
				Canister:    args.CanisterByName("backend"),
				Network:     netPtr(args.NetworkByName("ic")),
				Environment: strPtr("prod"),
			},
			want: validate.NetworkOrEnvironmentNotBoth,
		},
		{
			name: "url in project mode",
			mode: mode.NewProject("dir"),
			args: LifecycleArgs{
				Canister: args.CanisterByName("backend"),
				Network:  netPtr(args.NetworkByURL("http://localhost:8000")),
			},
			want: validate.NetworkNameRequiredInProjectMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := opstesting.NewFakeOps()
			loaded := false
			c := testContext(tt.mode, fake)
			load := c.LoadResolver
			c.LoadResolver = func(m mode.Mode) (*config.Resolver, error) {
				loaded = true
				return load(m)
			}

			_, err := Start(context.Background(), c, StartArgs{tt.args})
			require.Error(t, err)
			assert.Equal(t, string(tt.want), err.Error())

			var verr *validate.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.want, verr.Diagnostic)

			assert.False(t, loaded, "config should not load before validation passes")
			assert.Equal(t, 0, fake.TotalCalls())
		})
	}
}

func TestStart_InvokesOnce(t *testing.T) {
	tests := []struct {
		name    string
		mode    mode.Mode
		args    LifecycleArgs
		wantID  principal.Principal
		wantURL string
	}{
		{
			name:    "project name on default network",
			mode:    mode.NewProject("dir"),
			args:    LifecycleArgs{Canister: args.CanisterByName("backend")},
			wantID:  backendLocal,
			wantURL: config.LocalNetworkURL,
		},
		{
			name:    "project name in environment",
			mode:    mode.NewProject("dir"),
			args:    LifecycleArgs{Canister: args.CanisterByName("backend"), Environment: strPtr("prod")},
			wantID:  backendIC,
			wantURL: config.MainNetworkURL,
		},
		{
			name: "global principal with url",
			mode: mode.NewGlobal(),
			args: LifecycleArgs{
				Canister: args.CanisterByPrincipal(other),
				Network:  netPtr(args.NetworkByURL("http://localhost:8000")),
			},
			wantID:  other,
			wantURL: "http://localhost:8000",
		},
		{
			name:    "global principal on global network",
			mode:    mode.NewGlobal(),
			args:    LifecycleArgs{Canister: args.CanisterByPrincipal(other)},
			wantID:  other,
			wantURL: config.MainNetworkURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := opstesting.NewFakeOps()
			plan, err := Start(context.Background(), testContext(tt.mode, fake), StartArgs{tt.args})
			require.NoError(t, err)

			require.Len(t, fake.StartCalls, 1)
			assert.Empty(t, fake.StopCalls)
			assert.Equal(t, tt.wantID, fake.StartCalls[0].Canister)
			assert.Equal(t, ops.Agent{URL: tt.wantURL}, fake.StartCalls[0].Agent)

			assert.Equal(t, "start", plan.Operation)
			assert.Equal(t, tt.wantID, plan.Canister)
			assert.False(t, plan.DryRun)
		})
	}
}

func TestStop_InvokesOnce(t *testing.T) {
	fake := opstesting.NewFakeOps()
	c := testContext(mode.NewProject("dir"), fake)

	plan, err := Stop(context.Background(), c, StopArgs{LifecycleArgs{
		Canister: args.CanisterByName("backend"),
		Network:  netPtr(args.NetworkByName(config.MainNetwork)),
	}})
	require.NoError(t, err)

	require.Len(t, fake.StopCalls, 1)
	assert.Empty(t, fake.StartCalls)
	assert.Equal(t, backendIC, fake.StopCalls[0].Canister)
	assert.Equal(t, "stop", plan.Operation)
	assert.Equal(t, config.MainNetwork, plan.Network)
}

func TestStop_ValidationFailure(t *testing.T) {
	fake := opstesting.NewFakeOps()
	_, err := Stop(context.Background(), testContext(mode.NewGlobal(), fake), StopArgs{LifecycleArgs{
		Canister: args.CanisterByPrincipal(other),
		Network:  netPtr(args.NetworkByName("ic")),
	}})
	require.Error(t, err)
	assert.Equal(t, string(validate.NetworkURLRequiredInGlobalMode), err.Error())
	assert.Equal(t, 0, fake.TotalCalls())
}

func TestDryRunResolvesWithoutInvoking(t *testing.T) {
	fake := opstesting.NewFakeOps()
	c := testContext(mode.NewProject("dir"), fake)
	c.DryRun = true

	plan, err := Start(context.Background(), c, StartArgs{LifecycleArgs{Canister: args.CanisterByName("backend")}})
	require.NoError(t, err)
	assert.True(t, plan.DryRun)
	assert.Equal(t, backendLocal, plan.Canister)
	assert.Equal(t, config.LocalNetworkURL, plan.URL)
	assert.Equal(t, 0, fake.TotalCalls())
}

func TestResolutionFailureInvokesNothing(t *testing.T) {
	fake := opstesting.NewFakeOps()
	_, err := Start(context.Background(), testContext(mode.NewProject("dir"), fake),
		StartArgs{LifecycleArgs{Canister: args.CanisterByName("missing")}})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrResolve))
	assert.Equal(t, 0, fake.TotalCalls())
}

func TestOperationError(t *testing.T) {
	t.Run("foreign error is wrapped", func(t *testing.T) {
		fake := opstesting.NewFakeOps()
		fake.FailError = fmt.Errorf("replica rejected the call")

		_, err := Start(context.Background(), testContext(mode.NewProject("dir"), fake),
			StartArgs{LifecycleArgs{Canister: args.CanisterByName("backend")}})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrOperation))
		assert.Contains(t, err.Error(), "Couldn't start canister backend")
		assert.Contains(t, err.Error(), "replica rejected the call")
		assert.Len(t, fake.StartCalls, 1)
	})

	t.Run("structured error passes through", func(t *testing.T) {
		c := testContext(mode.NewGlobal(), opstesting.NewFakeOps())
		c.Ops = ops.Default()

		_, err := Stop(context.Background(), c, StopArgs{LifecycleArgs{Canister: args.CanisterByPrincipal(other)}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'canister stop' is not implemented yet")
	})
}

func TestSetID(t *testing.T) {
	t.Run("requires project", func(t *testing.T) {
		c := testContext(mode.NewGlobal(), opstesting.NewFakeOps())
		err := SetID(c, SetIDArgs{Name: "backend", ID: other})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("records id on default local network", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, mode.ProjectFileName)
		require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o644))

		c := testContext(mode.NewProject(dir), opstesting.NewFakeOps())
		require.NoError(t, SetID(c, SetIDArgs{Name: "backend", ID: other}))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, other.String(), cfg.Canisters["backend"].IDs[config.LocalNetwork])
	})
}
