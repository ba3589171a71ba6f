package noderegistry

import (
	"errors"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func nodeItem(asset stackitem.Item) stackitem.Item {
	return stackitem.NewStruct([]stackitem.Item{
		stackitem.Make("node-1"),
		stackitem.Make(util.Uint160{1}.BytesBE()),
		stackitem.Make(util.Uint160{2}.BytesBE()),
		stackitem.Make("alpha"),
		stackitem.Make("vpn"),
		stackitem.Make("{}"),
		stackitem.Make("10.0.0.1"),
		stackitem.Make("eu"),
		stackitem.Make("berlin"),
		stackitem.Make("meta"),
		stackitem.Make(1),
		asset,
		stackitem.Make("cp"),
	})
}

func TestGetNode(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("connection refused")
	_, err := r.GetNode("node-1")
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{
		State: vmstate.Halt.String(),
		Stack: []stackitem.Item{nodeItem(stackitem.Null{})},
	}
	n, err := r.GetNode("node-1")
	require.NoError(t, err)
	require.Equal(t, "node-1", n.ID)
	require.Equal(t, util.Uint160{2}, n.Owner)
	require.Equal(t, big.NewInt(1), n.Status)
	require.Nil(t, n.Asset)
	require.Equal(t, "cp", n.Checkpoint)

	ti.res.Stack = []stackitem.Item{nodeItem(stackitem.Make([]byte{0xAA, 0xBB}))}
	n, err = r.GetNode("node-1")
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB}, n.Asset)

	ti.res.Stack = []stackitem.Item{stackitem.Make(42)}
	_, err = r.GetNode("node-1")
	require.Error(t, err)

	ti.res = &result.Invoke{State: vmstate.Fault.String(), FaultException: "record not found"}
	_, err = r.GetNode("node-1")
	require.ErrorContains(t, err, "record not found")
}

func TestIsRegistered(t *testing.T) {
	ti := &testInv{res: &result.Invoke{
		State: vmstate.Halt.String(),
		Stack: []stackitem.Item{stackitem.Make(true)},
	}}
	ok, err := NewReader(ti, util.Uint160{}).IsRegistered("node-1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEventsFromApplicationLog(t *testing.T) {
	_, err := NodeDeactivatedEventsFromApplicationLog(nil)
	require.Error(t, err)

	owner := util.Uint160{9}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					Name: "NodeDeactivated",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make("node-1"),
						stackitem.Make(owner.BytesBE()),
					}),
				},
				{
					Name: "NodeStatusUpdated",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make("node-1"),
						stackitem.Make(2),
					}),
				},
			},
		}},
	}

	deactivated, err := NodeDeactivatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, deactivated, 1)
	require.Equal(t, "node-1", deactivated[0].ID)
	require.Equal(t, owner, deactivated[0].Owner)

	updated, err := NodeStatusUpdatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	require.Equal(t, big.NewInt(2), updated[0].Status)

	minted, err := NodeMintedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, minted)

	log.Executions[0].Events[0].Item = stackitem.NewArray([]stackitem.Item{stackitem.Make("node-1")})
	_, err = NodeDeactivatedEventsFromApplicationLog(log)
	require.Error(t, err)
}
