package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	registryPath    = "../contracts/noderegistry"
	accessNodePath  = "../contracts/accessnode"
	nodeAssetPath   = "../contracts/nodeasset"
	brokenAssetPath = "testdata/brokenasset"
	issuerPath      = "testdata/issuer"
	tokenHolderPath = "../internal/testcontracts/tokenholder"
)

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// deployWithAdmin deploys contract from the given directory passing admin
// account as deploy data.
func deployWithAdmin(t *testing.T, e *neotest.Executor, ctrPath string, admin util.Uint160) util.Uint160 {
	ctr := neotest.CompileFile(t, e.CommitteeHash, ctrPath, path.Join(ctrPath, "config.yml"))
	e.DeployContract(t, ctr, []any{admin})
	return ctr.Hash
}

func deployContract(t *testing.T, e *neotest.Executor, ctrPath string) util.Uint160 {
	ctr := neotest.CompileFile(t, e.CommitteeHash, ctrPath, path.Join(ctrPath, "config.yml"))
	e.DeployContract(t, ctr, nil)
	return ctr.Hash
}

// requireEvent checks that the execution result contains exactly one
// notification with the given name and returns its arguments.
func requireEvent(t *testing.T, aer *state.AppExecResult, name string) []stackitem.Item {
	var found []stackitem.Item
	for _, ev := range aer.Events {
		if ev.Name != name {
			continue
		}
		require.Nil(t, found, "multiple %s notifications", name)
		found = ev.Item.Value().([]stackitem.Item)
	}
	require.NotNil(t, found, "missing %s notification", name)
	return found
}
