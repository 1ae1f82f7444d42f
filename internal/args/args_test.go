package args

import (
	"testing"

	"github.com/rileyhilliard/icp/internal/principal"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCanister(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Canister
	}{
		{
			name: "principal text",
			text: "ryjl3-tyaaa-aaaaa-aaaba-cai",
			want: CanisterByPrincipal(principal.MustParse("ryjl3-tyaaa-aaaaa-aaaba-cai")),
		},
		{
			name: "anonymous principal",
			text: "2vxsx-fae",
			want: CanisterByPrincipal(principal.Anonymous()),
		},
		{name: "symbolic name", text: "my-canister", want: CanisterByName("my-canister")},
		{name: "principal with bad checksum falls back to name", text: "ryjl3-tyaaa-aaaaa-aaaba-caa", want: CanisterByName("ryjl3-tyaaa-aaaaa-aaaba-caa")},
		{name: "empty text is an empty name", text: "", want: CanisterByName("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCanister(tt.text))
		})
	}
}

func TestCanisterAccessors(t *testing.T) {
	name := CanisterByName("backend")
	n, ok := name.Name()
	assert.True(t, ok)
	assert.Equal(t, "backend", n)
	_, ok = name.Principal()
	assert.False(t, ok)
	assert.False(t, name.IsPrincipal())
	assert.Equal(t, CanisterName, name.Kind())
	assert.Equal(t, "Name(backend)", name.String())
	assert.Equal(t, "backend", name.Text())

	id := CanisterByPrincipal(principal.Anonymous())
	p, ok := id.Principal()
	assert.True(t, ok)
	assert.Equal(t, principal.Anonymous(), p)
	_, ok = id.Name()
	assert.False(t, ok)
	assert.True(t, id.IsPrincipal())
	assert.Equal(t, "Principal(2vxsx-fae)", id.String())
	assert.Equal(t, "2vxsx-fae", id.Text())
}

func TestCanisterEquality(t *testing.T) {
	assert.True(t, CanisterByName("a") == CanisterByName("a"))
	assert.False(t, CanisterByName("a") == CanisterByName("b"))
	assert.True(t, CanisterByPrincipal(principal.Anonymous()) == CanisterByPrincipal(principal.Anonymous()))
	assert.False(t, CanisterByName("2vxsx-fae") == CanisterByPrincipal(principal.Anonymous()))
}

func TestParseNetwork(t *testing.T) {
	tests := []struct {
		text string
		want Network
	}{
		{text: "http://x", want: NetworkByURL("http://x")},
		{text: "https://icp-api.io", want: NetworkByURL("https://icp-api.io")},
		{text: "my-net", want: NetworkByName("my-net")},
		{text: "local", want: NetworkByName("local")},
		{text: "HTTP://upper", want: NetworkByName("HTTP://upper")},
		{text: "ftp://nope", want: NetworkByName("ftp://nope")},
		{text: "http:/typo", want: NetworkByName("http:/typo")},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ParseNetwork(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, got.Value())
		})
	}
}

func TestNetworkAccessors(t *testing.T) {
	u := NetworkByURL("http://x")
	assert.True(t, u.IsURL())
	assert.False(t, u.IsName())
	assert.Equal(t, NetworkURL, u.Kind())
	assert.Equal(t, "Url(http://x)", u.String())

	n := NetworkByName("ic")
	assert.True(t, n.IsName())
	assert.False(t, n.IsURL())
	assert.Equal(t, "Name(ic)", n.String())

	assert.False(t, NetworkByName("http://x") == NetworkByURL("http://x"))
}

func TestNetworkFlag(t *testing.T) {
	var network *Network
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(NetworkFlag{Target: &network}, "network", "network name or url")

	require.NoError(t, fs.Parse(nil))
	assert.Nil(t, network, "unset flag leaves network absent")

	require.NoError(t, fs.Parse([]string{"--network", "https://icp-api.io"}))
	require.NotNil(t, network)
	assert.Equal(t, NetworkByURL("https://icp-api.io"), *network)
	assert.Equal(t, "https://icp-api.io", fs.Lookup("network").Value.String())
	assert.Equal(t, "network", fs.Lookup("network").Value.Type())
}

func TestOptionalString(t *testing.T) {
	var env *string
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(OptionalString{Target: &env}, "environment", "environment name")

	require.NoError(t, fs.Parse(nil))
	assert.Nil(t, env)
	assert.Equal(t, "", fs.Lookup("environment").Value.String())

	require.NoError(t, fs.Parse([]string{"--environment", ""}))
	require.NotNil(t, env, "explicit empty value still counts as present")
	assert.Equal(t, "", *env)

	require.NoError(t, fs.Parse([]string{"--environment", "staging"}))
	assert.Equal(t, "staging", *env)
}
