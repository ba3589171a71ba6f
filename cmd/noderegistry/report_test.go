package main

import (
	"errors"
	"math/big"
	"testing"

	"github.com/netsepio/netsepio-contract/rpc/noderegistry"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestTokenID(t *testing.T) {
	require.Equal(t, "2g", encodeTokenID([]byte{'a'}))

	id, err := decodeTokenID("2g")
	require.NoError(t, err)
	require.Equal(t, []byte{'a'}, id)

	_, err = decodeTokenID("0OIl")
	require.Error(t, err)

	_, err = decodeTokenID("")
	require.Error(t, err)
}

func TestFormatNode(t *testing.T) {
	n := &noderegistry.NoderegistryNode{
		ID:     "alpha",
		Name:   "Alpha",
		Owner:  util.Uint160{1},
		Status: big.NewInt(2),
	}

	s := formatNode(n)
	require.Contains(t, s, "id:         alpha\n")
	require.Contains(t, s, "status:     MAINTENANCE\n")
	require.Contains(t, s, "asset:      <none>\n")
	require.NotContains(t, s, "checkpoint:")

	n.Asset = []byte{'a'}
	n.Checkpoint = "epoch-1"
	s = formatNode(n)
	require.Contains(t, s, "asset:      2g\n")
	require.Contains(t, s, "checkpoint: epoch-1\n")
}

func TestWrapNotFound(t *testing.T) {
	require.NoError(t, wrapNotFound(nil))

	err := wrapNotFound(errors.New("invocation failed: at instruction 42 (THROW): unhandled exception: \"record not found\""))
	require.ErrorIs(t, err, errNotFound)

	err = wrapNotFound(errors.New("connection refused"))
	require.False(t, errors.Is(err, errNotFound))
}
