package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLoadProfile(t *testing.T) {
	registry := util.Uint160{1, 2, 3}
	asset := util.Uint160{4, 5, 6}

	path := filepath.Join(t.TempDir(), "profile.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
rpc: http://localhost:30333
registry: `+address.Uint160ToString(registry)+`
asset: `+asset.StringLE()+`
`), 0600))

	p, err := loadProfile(path)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:30333", p.RPC)

	d, err := p.contracts()
	require.NoError(t, err)
	require.Equal(t, registry, d.registry)
	require.NotNil(t, d.asset)
	require.Equal(t, asset, *d.asset)

	p.override(profile{RPC: "http://localhost:20332"})
	require.Equal(t, "http://localhost:20332", p.RPC)
	require.Equal(t, address.Uint160ToString(registry), p.Registry)

	_, err = loadProfile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("rpc: [unterminated"), 0600))
	_, err = loadProfile(path)
	require.Error(t, err)
}

func TestProfileContracts(t *testing.T) {
	d, err := profile{Registry: util.Uint160{9}.StringLE()}.contracts()
	require.NoError(t, err)
	require.Nil(t, d.asset)

	_, err = profile{Registry: "not an address"}.contracts()
	require.ErrorContains(t, err, "invalid registry contract")

	_, err = profile{Registry: util.Uint160{9}.StringLE(), Asset: "xyz"}.contracts()
	require.ErrorContains(t, err, "invalid asset contract")
}

func TestRunValidation(t *testing.T) {
	logger := zaptest.NewLogger(t)

	err := run(logger, profile{}, query{})
	require.ErrorContains(t, err, "missing Neo RPC endpoint")

	err = run(logger, profile{RPC: "http://localhost:30333"}, query{})
	require.ErrorContains(t, err, "missing node registry contract")
}
