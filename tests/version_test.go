package tests

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/netsepio/netsepio-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	data, err := os.ReadFile("../VERSION")
	require.NoError(t, err)

	v := strings.TrimPrefix(string(data), "v")
	parts := strings.Split(strings.TrimSpace(v), ".")
	require.Len(t, parts, 3)

	var ver [3]int
	for i := range parts {
		ver[i], err = strconv.Atoi(parts[i])
		require.NoError(t, err)
	}

	require.Equal(t, common.Version, ver[0]*1_000_000+ver[1]*1_000+ver[2],
		"version from common package is different from the one in VERSION file")
}

func TestContractVersionAndUpdate(t *testing.T) {
	e := newExecutor(t)
	admin := e.NewAccount(t)
	stranger := e.NewAccount(t)

	for name, h := range map[string]util.Uint160{
		"noderegistry": deployWithAdmin(t, e, registryPath, admin.ScriptHash()),
		"accessnode":   deployWithAdmin(t, e, accessNodePath, admin.ScriptHash()),
		"nodeasset":    deployContract(t, e, nodeAssetPath),
	} {
		t.Run(name, func(t *testing.T) {
			c := e.NewInvoker(h, stranger)
			c.Invoke(t, common.Version, "version")
			c.InvokeFail(t, common.ErrUpdateAccess, "update", []byte{1}, []byte{2}, nil)
			e.NewInvoker(h, admin).InvokeFail(t, common.ErrUpdateAccess, "update", []byte{1}, []byte{2}, nil)
		})
	}
}
