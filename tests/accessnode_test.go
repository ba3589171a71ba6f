package tests

import (
	"math/big"
	"testing"

	"github.com/netsepio/netsepio-contract/common"
	"github.com/netsepio/netsepio-contract/contracts/accessnode"
	"github.com/netsepio/netsepio-contract/contracts/noderegistry/nodestatus"
	accessrpc "github.com/netsepio/netsepio-contract/rpc/accessnode"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type accessEnv struct {
	e        *neotest.Executor
	admin    neotest.Signer
	operator neotest.Signer
	hash     util.Uint160
	assets   *assetEnv
}

func newAccessEnv(t *testing.T) *accessEnv {
	e := newExecutor(t)
	admin := e.NewAccount(t)
	operator := e.NewAccount(t)
	a := &accessEnv{
		e:        e,
		admin:    admin,
		operator: operator,
		hash:     deployWithAdmin(t, e, accessNodePath, admin.ScriptHash()),
		assets: &assetEnv{
			e:      e,
			asset:  deployContract(t, e, nodeAssetPath),
			issuer: deployContract(t, e, issuerPath),
		},
	}

	a.as(admin).Invoke(t, stackitem.Null{}, "setAsset", a.assets.asset)
	a.as(admin).Invoke(t, stackitem.Null{}, "initializeAuthority")
	a.as(admin).Invoke(t, stackitem.Null{}, "updateAuthority", operator.ScriptHash())
	return a
}

func (a *accessEnv) as(signers ...neotest.Signer) *neotest.ContractInvoker {
	return a.e.NewInvoker(a.hash, signers...)
}

func (a *accessEnv) registerWifi(t *testing.T, owner neotest.Signer, id int64) {
	a.as(owner).Invoke(t, stackitem.Null{}, "registerWifiNode",
		owner.ScriptHash(), id, "device-1", "cafe-wifi", "lisbon", int64(10))
}

func (a *accessEnv) registerVpn(t *testing.T, owner neotest.Signer, id int64) {
	a.as(owner).Invoke(t, stackitem.Null{}, "registerVpnNode",
		owner.ScriptHash(), id, "did:netsepio:1", "erebrus-1", "10.8.0.1", "isp", "eu", "berlin")
}

func getAccessNode(t *testing.T, c *neotest.ContractInvoker, method string, owner util.Uint160, id int64) *accessrpc.AccessnodeAccessNode {
	s, err := c.TestInvoke(t, method, owner, id)
	require.NoError(t, err)

	n := new(accessrpc.AccessnodeAccessNode)
	require.NoError(t, n.FromStackItem(s.Pop().Item()))
	return n
}

func getAccessRequest(t *testing.T, c *neotest.ContractInvoker, user util.Uint160, kind int, owner util.Uint160, id int64) *accessrpc.AccessnodeAccessRequest {
	s, err := c.TestInvoke(t, "getAccessRequest", user, kind, owner, id)
	require.NoError(t, err)

	r := new(accessrpc.AccessnodeAccessRequest)
	require.NoError(t, r.FromStackItem(s.Pop().Item()))
	return r
}

func TestRegisterWifiNode(t *testing.T) {
	a := newAccessEnv(t)
	owner := a.e.NewAccount(t)
	stranger := a.e.NewAccount(t)

	a.as(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, "registerWifiNode",
		owner.ScriptHash(), int64(1), "device", "ssid", "loc", int64(10))
	a.as(owner).InvokeFail(t, accessnode.ErrInvalidPrice, "registerWifiNode",
		owner.ScriptHash(), int64(1), "device", "ssid", "loc", int64(-1))
	a.as(owner).InvokeFail(t, accessnode.ErrInvalidOwner, "registerWifiNode",
		randomBytes(33), int64(1), "device", "ssid", "loc", int64(10))
	a.as(owner).InvokeFail(t, accessnode.ErrInvalidID, "registerWifiNode",
		owner.ScriptHash(), int64(-1), "device", "ssid", "loc", int64(10))
	a.as(owner).InvokeFail(t, common.ErrFieldTooLong+": ssid", "registerWifiNode",
		owner.ScriptHash(), int64(1), "device", longString(51), "loc", int64(10))
	a.as(owner).InvokeFail(t, common.ErrFieldTooLong+": location", "registerWifiNode",
		owner.ScriptHash(), int64(1), "device", "ssid", longString(101), int64(10))

	a.registerWifi(t, owner, 1)
	a.as(owner).InvokeFail(t, common.ErrRecordExists, "registerWifiNode",
		owner.ScriptHash(), int64(1), "device", "ssid", "loc", int64(10))

	n := getAccessNode(t, a.as(owner), "getWifiNode", owner.ScriptHash(), 1)
	require.Equal(t, big.NewInt(accessnode.KindWifi), n.Kind)
	require.Equal(t, "cafe-wifi", n.SSID)
	require.Equal(t, big.NewInt(10), n.PricePerMinute)
	require.True(t, n.Active)
	require.False(t, n.CanClose)

	// Slots are scoped by kind and owner.
	a.as(owner).InvokeFail(t, common.ErrRecordNotFound, "getVpnNode", owner.ScriptHash(), int64(1))
	a.registerVpn(t, owner, 1)
	a.registerWifi(t, stranger, 1)

	h := a.as(owner).Invoke(t, stackitem.Null{}, "updateWifiNode", owner.ScriptHash(), int64(1), "new-ssid", "porto", int64(0))
	requireEvent(t, a.e.CheckHalt(t, h), "WifiNodeUpdated")
	n = getAccessNode(t, a.as(owner), "getWifiNode", owner.ScriptHash(), 1)
	require.Equal(t, "new-ssid", n.SSID)
	require.Equal(t, "porto", n.Location)
	require.Equal(t, big.NewInt(0), n.PricePerMinute)

	a.as(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, "updateWifiNode", owner.ScriptHash(), int64(1), "x", "y", int64(1))
}

func TestVpnNode(t *testing.T) {
	a := newAccessEnv(t)
	owner := a.e.NewAccount(t)

	a.as(owner).InvokeFail(t, accessnode.ErrInvalidOwner, "registerVpnNode",
		randomBytes(33), int64(7), "did", "name", "addr", "isp", "eu", "berlin")
	a.as(owner).InvokeFail(t, common.ErrFieldTooLong+": isp", "registerVpnNode",
		owner.ScriptHash(), int64(7), "did", "name", "addr", longString(51), "eu", "berlin")

	a.registerVpn(t, owner, 7)
	n := getAccessNode(t, a.as(owner), "getVpnNode", owner.ScriptHash(), 7)
	require.Equal(t, big.NewInt(accessnode.KindVpn), n.Kind)
	require.Equal(t, big.NewInt(int64(nodestatus.Online)), n.Status)
	require.True(t, n.Active)

	a.as(owner).InvokeFail(t, accessnode.ErrInvalidStatus, "updateVpnNode", owner.ScriptHash(), int64(7), int64(5), "us")
	h := a.as(owner).Invoke(t, stackitem.Null{}, "updateVpnNode", owner.ScriptHash(), int64(7), int64(nodestatus.Maintenance), "us")
	ev := requireEvent(t, a.e.CheckHalt(t, h), "VpnNodeUpdated")
	require.Equal(t, stackitem.Make(7), ev[0])

	n = getAccessNode(t, a.as(owner), "getVpnNode", owner.ScriptHash(), 7)
	require.Equal(t, big.NewInt(int64(nodestatus.Maintenance)), n.Status)
	require.Equal(t, "us", n.Region)
}

func TestTwoPhaseClose(t *testing.T) {
	for _, kind := range []string{"Wifi", "Vpn"} {
		t.Run(kind, func(t *testing.T) {
			a := newAccessEnv(t)
			owner := a.e.NewAccount(t)
			stranger := a.e.NewAccount(t)
			if kind == "Wifi" {
				a.registerWifi(t, owner, 3)
			} else {
				a.registerVpn(t, owner, 3)
			}

			deactivate := "deactivate" + kind + "Node"
			closeNode := "close" + kind + "Node"
			get := "get" + kind + "Node"

			a.as(owner).InvokeFail(t, accessnode.ErrStillActive, closeNode, owner.ScriptHash(), int64(3))
			a.as(owner).InvokeFail(t, common.ErrOperatorWitnessFailed, deactivate, owner.ScriptHash(), int64(3))
			a.as(a.operator).InvokeFail(t, common.ErrRecordNotFound, deactivate, owner.ScriptHash(), int64(4))

			h := a.as(a.operator).Invoke(t, stackitem.Null{}, deactivate, owner.ScriptHash(), int64(3))
			ev := requireEvent(t, a.e.CheckHalt(t, h), "NodeDeactivated")
			require.Equal(t, stackitem.Make(owner.ScriptHash().BytesBE()), ev[0])

			n := getAccessNode(t, a.as(owner), get, owner.ScriptHash(), 3)
			require.False(t, n.Active)
			require.True(t, n.CanClose)
			require.Equal(t, big.NewInt(int64(nodestatus.Offline)), n.Status)

			a.as(a.admin).InvokeFail(t, accessnode.ErrNotActive, deactivate, owner.ScriptHash(), int64(3))

			// Deactivated node can't be brought back by its owner.
			if kind == "Wifi" {
				a.as(owner).InvokeFail(t, accessnode.ErrNotActive, "updateWifiNode",
					owner.ScriptHash(), int64(3), "ssid", "loc", int64(1))
			} else {
				a.as(owner).InvokeFail(t, accessnode.ErrNotActive, "updateVpnNode",
					owner.ScriptHash(), int64(3), int64(nodestatus.Online), "eu")
			}
			n = getAccessNode(t, a.as(owner), get, owner.ScriptHash(), 3)
			require.Equal(t, big.NewInt(int64(nodestatus.Offline)), n.Status)
			a.as(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, closeNode, owner.ScriptHash(), int64(3))
			a.as(a.operator).InvokeFail(t, common.ErrOwnerWitnessFailed, closeNode, owner.ScriptHash(), int64(3))

			h = a.as(owner).Invoke(t, stackitem.Null{}, closeNode, owner.ScriptHash(), int64(3))
			ev = requireEvent(t, a.e.CheckHalt(t, h), "NodeClosed")
			require.Equal(t, stackitem.Make(3), ev[0])

			a.as(owner).InvokeFail(t, common.ErrRecordNotFound, get, owner.ScriptHash(), int64(3))
			a.as(owner).InvokeFail(t, common.ErrRecordNotFound, closeNode, owner.ScriptHash(), int64(3))

			// The slot is free again.
			if kind == "Wifi" {
				a.registerWifi(t, owner, 3)
			} else {
				a.registerVpn(t, owner, 3)
			}
			require.True(t, getAccessNode(t, a.as(owner), get, owner.ScriptHash(), 3).Active)
		})
	}
}

func TestAccessRequests(t *testing.T) {
	a := newAccessEnv(t)
	owner := a.e.NewAccount(t)
	user := a.e.NewAccount(t)
	a.registerWifi(t, owner, 1)
	a.assets.mint(t, user.ScriptHash(), "pass")

	u := a.as(user)
	u.InvokeFail(t, accessnode.ErrInvalidKind, "requestAccess", user.ScriptHash(), 3, owner.ScriptHash(), int64(1))
	u.InvokeFail(t, common.ErrRecordNotFound, "requestAccess", user.ScriptHash(), accessnode.KindVpn, owner.ScriptHash(), int64(1))
	a.as(owner).InvokeFail(t, common.ErrWitnessFailed, "requestAccess", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))

	h := u.Invoke(t, stackitem.Null{}, "requestAccess", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))
	requireEvent(t, a.e.CheckHalt(t, h), "AccessRequested")
	u.InvokeFail(t, common.ErrRecordExists, "requestAccess", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))

	r := getAccessRequest(t, u, user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), 1)
	require.False(t, r.Accepted)
	require.False(t, r.CanClose)

	u.InvokeFail(t, accessnode.ErrRequestNotCloseable, "closeAccessRequest", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))
	a.as(a.operator).InvokeFail(t, accessnode.ErrNotAccepted, "settleAccessRequest", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))
	u.InvokeFail(t, common.ErrOperatorWitnessFailed, "manageAccessRequest", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1), true)

	a.as(a.operator).Invoke(t, stackitem.Null{}, "manageAccessRequest", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1), true)
	r = getAccessRequest(t, u, user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), 1)
	require.True(t, r.Accepted)
	require.False(t, r.CanClose)
	u.InvokeFail(t, accessnode.ErrRequestNotCloseable, "closeAccessRequest", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))

	h = a.as(a.operator).Invoke(t, stackitem.Null{}, "settleAccessRequest", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))
	requireEvent(t, a.e.CheckHalt(t, h), "AccessRequestSettled")
	r = getAccessRequest(t, u, user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), 1)
	require.True(t, r.Settled)
	require.True(t, r.CanClose)

	a.as(owner).InvokeFail(t, common.ErrWitnessFailed, "closeAccessRequest", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))
	h = u.Invoke(t, stackitem.Null{}, "closeAccessRequest", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))
	requireEvent(t, a.e.CheckHalt(t, h), "AccessRequestClosed")
	u.InvokeFail(t, common.ErrRecordNotFound, "getAccessRequest", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))

	t.Run("rejected", func(t *testing.T) {
		u.Invoke(t, stackitem.Null{}, "requestAccess", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))
		a.as(a.operator).Invoke(t, stackitem.Null{}, "manageAccessRequest", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1), false)
		r := getAccessRequest(t, u, user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), 1)
		require.False(t, r.Accepted)
		require.True(t, r.CanClose)
		u.Invoke(t, stackitem.Null{}, "closeAccessRequest", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))
	})

	t.Run("inactive node", func(t *testing.T) {
		a.as(a.admin).Invoke(t, stackitem.Null{}, "deactivateWifiNode", owner.ScriptHash(), int64(1))
		u.InvokeFail(t, accessnode.ErrNotActive, "requestAccess", user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))
	})
}

func TestRequestAccessAssetHolders(t *testing.T) {
	a := newAccessEnv(t)
	owner := a.e.NewAccount(t)
	holder := a.e.NewAccount(t)
	stranger := a.e.NewAccount(t)
	a.registerWifi(t, owner, 1)

	a.as(stranger).InvokeFail(t, common.ErrAdminWitnessFailed, "setAsset", stranger.ScriptHash())
	a.as(a.admin).InvokeFail(t, "invalid asset contract", "setAsset", []byte{1, 2, 3})
	a.as(stranger).Invoke(t, stackitem.Make(a.assets.asset.BytesBE()), "asset")

	a.as(stranger).InvokeFail(t, accessnode.ErrNoAsset, "requestAccess",
		stranger.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))

	a.assets.mint(t, holder.ScriptHash(), "pass")
	h := a.as(holder).Invoke(t, stackitem.Null{}, "requestAccess",
		holder.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))
	requireEvent(t, a.e.CheckHalt(t, h), "AccessRequested")

	t.Run("asset is not set", func(t *testing.T) {
		e := newExecutor(t)
		admin := e.NewAccount(t)
		bare := deployWithAdmin(t, e, accessNodePath, admin.ScriptHash())
		owner := e.NewAccount(t)
		user := e.NewAccount(t)

		e.NewInvoker(bare, owner).Invoke(t, stackitem.Null{}, "registerWifiNode",
			owner.ScriptHash(), int64(1), "device", "ssid", "loc", int64(10))
		e.NewInvoker(bare, user).InvokeFail(t, accessnode.ErrAssetNotSet, "asset")
		e.NewInvoker(bare, user).InvokeFail(t, accessnode.ErrAssetNotSet, "requestAccess",
			user.ScriptHash(), accessnode.KindWifi, owner.ScriptHash(), int64(1))
	})
}
