package tests

import (
	"math/big"
	"testing"

	"github.com/netsepio/netsepio-contract/common"
	"github.com/netsepio/netsepio-contract/contracts/noderegistry/nodestatus"
	"github.com/netsepio/netsepio-contract/contracts/noderegistry/registryconst"
	registryrpc "github.com/netsepio/netsepio-contract/rpc/noderegistry"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type registryEnv struct {
	e        *neotest.Executor
	admin    neotest.Signer
	registry util.Uint160
	asset    util.Uint160
}

func newRegistryEnv(t *testing.T) *registryEnv {
	e := newExecutor(t)
	admin := e.NewAccount(t)

	return &registryEnv{
		e:        e,
		admin:    admin,
		asset:    deployContract(t, e, nodeAssetPath),
		registry: deployWithAdmin(t, e, registryPath, admin.ScriptHash()),
	}
}

// as returns registry invoker signed by the given accounts.
func (r *registryEnv) as(signers ...neotest.Signer) *neotest.ContractInvoker {
	return r.e.NewInvoker(r.registry, signers...)
}

func (r *registryEnv) assetAs(signers ...neotest.Signer) *neotest.ContractInvoker {
	return r.e.NewInvoker(r.asset, signers...)
}

func (r *registryEnv) register(t *testing.T, owner neotest.Signer, id string) {
	r.as(owner).Invoke(t, stackitem.Null{}, "registerNode",
		owner.ScriptHash(), id, owner.ScriptHash(),
		"alpha", "vpn", `{"port":51820}`, "10.0.0.1", "eu-central", "berlin", "ipfs://meta")
}

func (r *registryEnv) createCollection(t *testing.T, asset util.Uint160) {
	r.as(r.admin).Invoke(t, stackitem.Null{}, "createCollection", asset, "NetSepio Nodes", "https://netsepio.com/nodes")
}

func (r *registryEnv) mint(t *testing.T, id string) []byte {
	var tokenID []byte
	r.as(r.admin).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {
		require.Len(t, stack, 1)
		b, err := stack[0].TryBytes()
		require.NoError(t, err)
		tokenID = b
	}, "mintNode", id, "alpha #1", "ipfs://alpha")
	return tokenID
}

func getNode(t *testing.T, c *neotest.ContractInvoker, id string) *registryrpc.NoderegistryNode {
	s, err := c.TestInvoke(t, "getNode", id)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	n := new(registryrpc.NoderegistryNode)
	require.NoError(t, n.FromStackItem(s.Pop().Item()))
	return n
}

func TestRegistryDeploy(t *testing.T) {
	e := newExecutor(t)
	ctr := neotest.CompileFile(t, e.CommitteeHash, registryPath, registryPath+"/config.yml")
	e.DeployContractCheckFAULT(t, ctr, []any{[]byte{1, 2, 3}}, common.ErrInvalidAdmin)

	r := newRegistryEnv(t)
	r.as(r.e.NewAccount(t)).Invoke(t, r.admin.ScriptHash(), "admin")
	r.as(r.admin).Invoke(t, common.Version, "version")
}

func TestRegisterNode(t *testing.T) {
	r := newRegistryEnv(t)
	owner := r.e.NewAccount(t)
	stranger := r.e.NewAccount(t)

	t.Run("no witness", func(t *testing.T) {
		r.as(stranger).InvokeFail(t, common.ErrWitnessFailed, "registerNode",
			owner.ScriptHash(), "node-1", owner.ScriptHash(),
			"alpha", "vpn", "", "", "", "", "")
	})
	t.Run("empty id", func(t *testing.T) {
		r.as(owner).InvokeFail(t, registryconst.InvalidIDError, "registerNode",
			owner.ScriptHash(), "", owner.ScriptHash(),
			"alpha", "vpn", "", "", "", "", "")
	})
	t.Run("invalid owner", func(t *testing.T) {
		r.as(owner).InvokeFail(t, registryconst.InvalidOwnerError, "registerNode",
			owner.ScriptHash(), "node-1", []byte{1, 2, 3},
			"alpha", "vpn", "", "", "", "", "")
	})
	t.Run("field too long", func(t *testing.T) {
		r.as(owner).InvokeFail(t, common.ErrFieldTooLong+": name", "registerNode",
			owner.ScriptHash(), "node-1", owner.ScriptHash(),
			longString(registryconst.MaxNameLength+1), "vpn", "", "", "", "", "")
		r.as(owner).InvokeFail(t, common.ErrFieldTooLong+": config", "registerNode",
			owner.ScriptHash(), "node-1", owner.ScriptHash(),
			"alpha", "vpn", longString(registryconst.MaxConfigLength+1), "", "", "", "")
	})

	r.as(owner).Invoke(t, false, "isRegistered", "node-1")

	// Field values on the bound are accepted as is.
	h := r.as(owner).Invoke(t, stackitem.Null{}, "registerNode",
		owner.ScriptHash(), "node-1", owner.ScriptHash(),
		longString(registryconst.MaxNameLength), "vpn", "{}", "10.0.0.1", "eu", "berlin", "meta")
	ev := requireEvent(t, r.e.CheckHalt(t, h), "NodeRegistered")
	require.Equal(t, stackitem.Make("node-1"), ev[0])
	require.Equal(t, stackitem.Make(owner.ScriptHash().BytesBE()), ev[8])

	r.as(owner).Invoke(t, true, "isRegistered", "node-1")

	n := getNode(t, r.as(owner), "node-1")
	require.Equal(t, "node-1", n.ID)
	require.Equal(t, owner.ScriptHash(), n.Registrant)
	require.Equal(t, owner.ScriptHash(), n.Owner)
	require.Equal(t, longString(registryconst.MaxNameLength), n.Name)
	require.Equal(t, big.NewInt(int64(nodestatus.Offline)), n.Status)
	require.Nil(t, n.Asset)
	require.Empty(t, n.Checkpoint)

	t.Run("duplicate", func(t *testing.T) {
		r.as(stranger).InvokeFail(t, common.ErrRecordExists, "registerNode",
			stranger.ScriptHash(), "node-1", stranger.ScriptHash(),
			"beta", "wifi", "", "", "", "", "")
	})

	t.Run("on behalf of another owner", func(t *testing.T) {
		r.as(stranger).Invoke(t, stackitem.Null{}, "registerNode",
			stranger.ScriptHash(), "node-2", owner.ScriptHash(),
			"beta", "wifi", "", "", "", "", "")
		n := getNode(t, r.as(stranger), "node-2")
		require.Equal(t, stranger.ScriptHash(), n.Registrant)
		require.Equal(t, owner.ScriptHash(), n.Owner)
	})

	r.as(owner).InvokeFail(t, common.ErrRecordNotFound, "getNode", "missing")
}

func TestUpdateNodeStatus(t *testing.T) {
	r := newRegistryEnv(t)
	owner := r.e.NewAccount(t)
	operator := r.e.NewAccount(t)
	r.register(t, owner, "node-1")

	r.as(owner).InvokeFail(t, common.ErrOperatorWitnessFailed, "updateNodeStatus", "node-1", int64(nodestatus.Online))
	r.as(r.admin).InvokeFail(t, registryconst.InvalidStatusError, "updateNodeStatus", "node-1", int64(3))
	r.as(r.admin).InvokeFail(t, registryconst.InvalidStatusError, "updateNodeStatus", "node-1", int64(-1))
	r.as(r.admin).InvokeFail(t, common.ErrRecordNotFound, "updateNodeStatus", "missing", int64(nodestatus.Online))

	h := r.as(r.admin).Invoke(t, stackitem.Null{}, "updateNodeStatus", "node-1", int64(nodestatus.Online))
	ev := requireEvent(t, r.e.CheckHalt(t, h), "NodeStatusUpdated")
	require.Equal(t, stackitem.Make(int64(nodestatus.Online)), ev[1])
	require.Equal(t, big.NewInt(int64(nodestatus.Online)), getNode(t, r.as(owner), "node-1").Status)

	r.as(operator).InvokeFail(t, common.ErrOperatorWitnessFailed, "updateNodeStatus", "node-1", int64(nodestatus.Maintenance))

	r.as(r.admin).Invoke(t, stackitem.Null{}, "initializeAuthority")
	r.as(r.admin).Invoke(t, stackitem.Null{}, "updateAuthority", operator.ScriptHash())

	r.as(operator).Invoke(t, stackitem.Null{}, "updateNodeStatus", "node-1", int64(nodestatus.Maintenance))
	require.Equal(t, big.NewInt(int64(nodestatus.Maintenance)), getNode(t, r.as(owner), "node-1").Status)

	// Admin keeps the capability after delegation.
	r.as(r.admin).Invoke(t, stackitem.Null{}, "updateNodeStatus", "node-1", int64(nodestatus.Offline))
}

func TestAuthority(t *testing.T) {
	r := newRegistryEnv(t)
	stranger := r.e.NewAccount(t)
	operator := r.e.NewAccount(t)

	r.as(stranger).InvokeFail(t, common.ErrAuthorityMissing, "authority")
	r.as(r.admin).InvokeFail(t, common.ErrAuthorityMissing, "updateAuthority", operator.ScriptHash())
	r.as(stranger).InvokeFail(t, common.ErrAdminWitnessFailed, "initializeAuthority")

	h := r.as(r.admin).Invoke(t, stackitem.Null{}, "initializeAuthority")
	ev := requireEvent(t, r.e.CheckHalt(t, h), "AuthorityUpdated")
	require.Equal(t, stackitem.Make(r.admin.ScriptHash().BytesBE()), ev[0])

	r.as(r.admin).InvokeFail(t, common.ErrAuthorityExists, "initializeAuthority")

	checkAuthority := func(t *testing.T, op util.Uint160) {
		s, err := r.as(stranger).TestInvoke(t, "authority")
		require.NoError(t, err)
		a := new(registryrpc.CommonAuthority)
		require.NoError(t, a.FromStackItem(s.Pop().Item()))
		require.Equal(t, r.admin.ScriptHash(), a.Admin)
		require.Equal(t, op, a.Operator)
	}
	checkAuthority(t, r.admin.ScriptHash())

	r.as(stranger).InvokeFail(t, common.ErrAdminWitnessFailed, "updateAuthority", stranger.ScriptHash())
	r.as(r.admin).InvokeFail(t, "invalid operator", "updateAuthority", []byte{1})
	r.as(r.admin).Invoke(t, stackitem.Null{}, "updateAuthority", operator.ScriptHash())
	checkAuthority(t, operator.ScriptHash())

	// Operator can't delegate its capability further.
	r.as(operator).InvokeFail(t, common.ErrAdminWitnessFailed, "updateAuthority", stranger.ScriptHash())
}

func TestCheckpoints(t *testing.T) {
	r := newRegistryEnv(t)
	owner := r.e.NewAccount(t)
	stranger := r.e.NewAccount(t)
	operator := r.e.NewAccount(t)
	r.register(t, owner, "node-1")

	t.Run("node checkpoint", func(t *testing.T) {
		h := r.as(owner).Invoke(t, stackitem.Null{}, "createCheckpoint", owner.ScriptHash(), "node-1", "cp-1")
		requireEvent(t, r.e.CheckHalt(t, h), "CheckpointCreated")
		require.Equal(t, "cp-1", getNode(t, r.as(owner), "node-1").Checkpoint)

		r.as(r.admin).Invoke(t, stackitem.Null{}, "createCheckpoint", r.admin.ScriptHash(), "node-1", "cp-2")
		require.Equal(t, "cp-2", getNode(t, r.as(owner), "node-1").Checkpoint)

		r.as(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, "createCheckpoint", stranger.ScriptHash(), "node-1", "cp-3")
		r.as(stranger).InvokeFail(t, common.ErrWitnessFailed, "createCheckpoint", owner.ScriptHash(), "node-1", "cp-3")
		r.as(owner).InvokeFail(t, common.ErrFieldTooLong+": checkpoint", "createCheckpoint",
			owner.ScriptHash(), "node-1", longString(registryconst.MaxCheckpointLength+1))
		r.as(owner).InvokeFail(t, common.ErrRecordNotFound, "createCheckpoint", owner.ScriptHash(), "missing", "cp")

		require.Equal(t, "cp-2", getNode(t, r.as(owner), "node-1").Checkpoint)
	})

	t.Run("standalone checkpoint", func(t *testing.T) {
		r.as(r.admin).InvokeFail(t, common.ErrAuthorityMissing, "submitCheckpoint", owner.ScriptHash(), "node-x", "data")

		r.as(r.admin).Invoke(t, stackitem.Null{}, "initializeAuthority")
		r.as(r.admin).Invoke(t, stackitem.Null{}, "updateAuthority", operator.ScriptHash())

		r.as(stranger).InvokeFail(t, common.ErrOperatorWitnessFailed, "submitCheckpoint", owner.ScriptHash(), "node-x", "data")
		r.as(r.admin).InvokeFail(t, common.ErrOperatorWitnessFailed, "submitCheckpoint", owner.ScriptHash(), "node-x", "data")

		r.as(operator).InvokeFail(t, common.ErrRecordNotFound, "getCheckpoint", owner.ScriptHash(), "node-x")

		// Node ID doesn't have to be registered.
		r.as(operator).Invoke(t, stackitem.Null{}, "submitCheckpoint", owner.ScriptHash(), "node-x", "data-1")
		h := r.as(operator).Invoke(t, stackitem.Null{}, "submitCheckpoint", owner.ScriptHash(), "node-x", "data-2")
		ev := requireEvent(t, r.e.CheckHalt(t, h), "CheckpointSubmitted")
		require.Equal(t, stackitem.Make("data-2"), ev[2])

		s, err := r.as(stranger).TestInvoke(t, "getCheckpoint", owner.ScriptHash(), "node-x")
		require.NoError(t, err)
		cp := new(registryrpc.NoderegistryCheckpoint)
		require.NoError(t, cp.FromStackItem(s.Pop().Item()))
		require.Equal(t, owner.ScriptHash(), cp.Owner)
		require.Equal(t, "node-x", cp.NodeID)
		require.Equal(t, "data-2", cp.Data)

		// Checkpoints of different owners don't collide.
		r.as(operator).InvokeFail(t, common.ErrRecordNotFound, "getCheckpoint", stranger.ScriptHash(), "node-x")
	})
}

func TestCollection(t *testing.T) {
	r := newRegistryEnv(t)
	stranger := r.e.NewAccount(t)

	r.as(stranger).InvokeFail(t, registryconst.CollectionMissingError, "getCollection")
	r.as(stranger).InvokeFail(t, common.ErrAdminWitnessFailed, "createCollection", r.asset, "NetSepio Nodes", "uri")
	r.as(r.admin).InvokeFail(t, "invalid asset contract", "createCollection", []byte{1, 2}, "NetSepio Nodes", "uri")

	h := r.as(r.admin).Invoke(t, stackitem.Null{}, "createCollection", r.asset, "NetSepio Nodes", "uri")
	requireEvent(t, r.e.CheckHalt(t, h), "CollectionCreated")

	r.as(r.admin).InvokeFail(t, registryconst.CollectionExistsError, "createCollection", r.asset, "Other", "uri")

	s, err := r.as(stranger).TestInvoke(t, "getCollection")
	require.NoError(t, err)
	col := new(registryrpc.NoderegistryCollection)
	require.NoError(t, col.FromStackItem(s.Pop().Item()))
	require.Equal(t, r.asset, col.Asset)
	require.Equal(t, "NetSepio Nodes", col.Name)
}

func TestMintNode(t *testing.T) {
	r := newRegistryEnv(t)
	owner := r.e.NewAccount(t)
	r.register(t, owner, "node-1")

	r.as(r.admin).InvokeFail(t, registryconst.CollectionMissingError, "mintNode", "node-1", "alpha #1", "ipfs://alpha")
	r.createCollection(t, r.asset)

	r.as(owner).InvokeFail(t, common.ErrAdminWitnessFailed, "mintNode", "node-1", "alpha #1", "ipfs://alpha")
	r.as(r.admin).InvokeFail(t, common.ErrRecordNotFound, "mintNode", "missing", "alpha #1", "ipfs://alpha")
	r.as(r.admin).InvokeFail(t, registryconst.NotBoundError, "updateNodeMetadata", "node-1", "ipfs://beta")

	tokenID := r.mint(t, "node-1")
	require.NotEmpty(t, tokenID)
	require.Equal(t, tokenID, getNode(t, r.as(owner), "node-1").Asset)

	r.as(r.admin).InvokeFail(t, registryconst.AssetExistsError, "mintNode", "node-1", "alpha #2", "ipfs://alpha")

	asset := r.assetAs(owner)
	asset.Invoke(t, owner.ScriptHash().BytesBE(), "ownerOf", tokenID)
	asset.Invoke(t, 1, "balanceOf", owner.ScriptHash())
	asset.Invoke(t, 1, "totalSupply")
	asset.Invoke(t, true, "isFrozen", tokenID)

	// Soulbound: the owner can't move the token away.
	asset.InvokeFail(t, "token is frozen", "transfer", r.e.NewAccount(t).ScriptHash(), tokenID, nil)

	h := r.as(r.admin).Invoke(t, stackitem.Null{}, "updateNodeMetadata", "node-1", "ipfs://beta")
	requireEvent(t, r.e.CheckHalt(t, h), "URIUpdated")
	requireEvent(t, r.e.CheckHalt(t, h), "NodeMetadataUpdated")

	s, err := asset.TestInvoke(t, "properties", tokenID)
	require.NoError(t, err)
	props := s.Pop().Item().Value().([]stackitem.MapElement)
	var uri string
	for _, kv := range props {
		k, _ := kv.Key.TryBytes()
		if string(k) == "uri" {
			v, _ := kv.Value.TryBytes()
			uri = string(v)
		}
	}
	require.Equal(t, "ipfs://beta", uri)
}

func TestDeactivateNode(t *testing.T) {
	t.Run("unbound", func(t *testing.T) {
		r := newRegistryEnv(t)
		owner := r.e.NewAccount(t)
		r.register(t, owner, "node-1")

		r.as(owner).InvokeFail(t, registryconst.InvalidAssetError, "deactivateNode", "node-1", []byte{1, 2, 3})
		r.as(r.admin).InvokeFail(t, common.ErrOwnerWitnessFailed, "deactivateNode", "node-1", nil)

		h := r.as(owner).Invoke(t, stackitem.Null{}, "deactivateNode", "node-1", nil)
		ev := requireEvent(t, r.e.CheckHalt(t, h), "NodeDeactivated")
		require.Equal(t, stackitem.Make("node-1"), ev[0])
		require.Equal(t, stackitem.Make(owner.ScriptHash().BytesBE()), ev[1])

		r.as(owner).Invoke(t, false, "isRegistered", "node-1")
		r.as(owner).InvokeFail(t, common.ErrRecordNotFound, "deactivateNode", "node-1", nil)
	})

	t.Run("bound", func(t *testing.T) {
		r := newRegistryEnv(t)
		owner := r.e.NewAccount(t)
		r.register(t, owner, "node-1")
		r.createCollection(t, r.asset)
		tokenID := r.mint(t, "node-1")

		r.as(owner).InvokeFail(t, registryconst.InvalidAssetError, "deactivateNode", "node-1", nil)
		r.as(owner).InvokeFail(t, registryconst.InvalidAssetError, "deactivateNode", "node-1", randomBytes(32))

		h := r.as(owner).Invoke(t, stackitem.Null{}, "deactivateNode", "node-1", tokenID)
		aer := r.e.CheckHalt(t, h)
		requireEvent(t, aer, "NodeDeactivated")
		transfer := requireEvent(t, aer, "Transfer")
		require.Equal(t, stackitem.Null{}, transfer[1])

		r.as(owner).Invoke(t, false, "isRegistered", "node-1")
		asset := r.assetAs(owner)
		asset.Invoke(t, 0, "totalSupply")
		asset.Invoke(t, 0, "balanceOf", owner.ScriptHash())
		asset.InvokeFail(t, "token not found", "ownerOf", tokenID)
	})

	t.Run("asset failure", func(t *testing.T) {
		r := newRegistryEnv(t)
		owner := r.e.NewAccount(t)
		broken := deployContract(t, r.e, brokenAssetPath)
		r.register(t, owner, "node-1")
		r.createCollection(t, broken)
		tokenID := r.mint(t, "node-1")

		r.as(owner).InvokeFail(t, "asset service failure", "deactivateNode", "node-1", tokenID)

		r.as(owner).Invoke(t, true, "isRegistered", "node-1")
		require.Equal(t, tokenID, getNode(t, r.as(owner), "node-1").Asset)
	})
}

func TestReregistration(t *testing.T) {
	r := newRegistryEnv(t)
	owner := r.e.NewAccount(t)
	newOwner := r.e.NewAccount(t)
	r.register(t, owner, "node-1")
	r.createCollection(t, r.asset)
	r.as(r.admin).Invoke(t, stackitem.Null{}, "updateNodeStatus", "node-1", int64(nodestatus.Online))
	r.as(owner).Invoke(t, stackitem.Null{}, "createCheckpoint", owner.ScriptHash(), "node-1", "cp")
	tokenID := r.mint(t, "node-1")

	r.as(owner).Invoke(t, stackitem.Null{}, "deactivateNode", "node-1", tokenID)
	r.register(t, newOwner, "node-1")

	n := getNode(t, r.as(newOwner), "node-1")
	require.Equal(t, newOwner.ScriptHash(), n.Owner)
	require.Equal(t, big.NewInt(int64(nodestatus.Offline)), n.Status)
	require.Nil(t, n.Asset)
	require.Empty(t, n.Checkpoint)

	// Fresh binding gets a fresh token.
	newTokenID := r.mint(t, "node-1")
	require.NotEqual(t, tokenID, newTokenID)
}

func TestNodeLifecycle(t *testing.T) {
	r := newRegistryEnv(t)
	alice := r.e.NewAccount(t)

	r.createCollection(t, r.asset)
	r.register(t, alice, "alpha")
	r.as(r.admin).Invoke(t, stackitem.Null{}, "updateNodeStatus", "alpha", int64(nodestatus.Online))
	r.as(alice).Invoke(t, stackitem.Null{}, "createCheckpoint", alice.ScriptHash(), "alpha", "epoch-1")
	tokenID := r.mint(t, "alpha")

	n := getNode(t, r.as(alice), "alpha")
	require.Equal(t, big.NewInt(int64(nodestatus.Online)), n.Status)
	require.Equal(t, "epoch-1", n.Checkpoint)
	require.Equal(t, tokenID, n.Asset)

	r.as(alice).Invoke(t, stackitem.Null{}, "deactivateNode", "alpha", tokenID)
	r.as(alice).InvokeFail(t, common.ErrRecordNotFound, "getNode", "alpha")
	r.assetAs(alice).Invoke(t, 0, "totalSupply")
}
