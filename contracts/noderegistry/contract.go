package noderegistry

import (
	"github.com/netsepio/netsepio-contract/common"
	"github.com/netsepio/netsepio-contract/contracts/noderegistry/nodestatus"
	"github.com/netsepio/netsepio-contract/contracts/noderegistry/registryconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Node groups data of the network node registered in the contract.
type Node struct {
	// Unique node identifier.
	ID string
	// Account that registered the node.
	Registrant interop.Hash160
	// Account controlling the node, it may differ from the registrant.
	Owner interop.Hash160

	Name     string
	Type     string
	Config   string
	Address  string
	Region   string
	Location string
	Metadata string

	// Current node state.
	Status nodestatus.Type

	// ID of the token bound to the node in the asset contract, nil if the
	// node is not bound.
	Asset []byte

	// Latest checkpoint submitted by the owner or the admin.
	Checkpoint string
}

// Checkpoint is a standalone checkpoint stored per (owner, node ID) pair.
type Checkpoint struct {
	Owner  interop.Hash160
	NodeID string
	Data   string
}

// Collection describes asset collection the nodes are bound to.
type Collection struct {
	// Asset contract address.
	Asset interop.Hash160
	Name  string
	URI   string
}

const (
	prefixNode       byte = 0x01
	prefixCheckpoint byte = 0x02

	collectionKey = "collection"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		admin interop.Hash160
	})

	ctx := storage.GetContext()
	common.InitAdmin(ctx, args.admin)

	runtime.Log("noderegistry contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccess)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("noderegistry contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Admin returns admin account the contract was deployed with.
func Admin() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return common.Admin(ctx)
}

// InitializeAuthority creates authority record with the admin being the
// operator. It must be signed by the admin and can be invoked only once.
func InitializeAuthority() {
	ctx := storage.GetContext()
	a := common.InitAuthority(ctx)

	runtime.Notify("AuthorityUpdated", a.Operator)
}

// UpdateAuthority delegates operator capability to the given account. It must
// be signed by the admin.
func UpdateAuthority(operator interop.Hash160) {
	ctx := storage.GetContext()
	common.SetOperator(ctx, operator)

	runtime.Notify("AuthorityUpdated", operator)
}

// Authority returns current authority record. It panics if the authority has
// not been initialized.
func Authority() common.Authority {
	ctx := storage.GetReadOnlyContext()
	return common.GetAuthority(ctx)
}

// CreateCollection sets the asset contract nodes are bound to along with the
// collection description. It must be signed by the admin and can be invoked
// only once.
func CreateCollection(asset interop.Hash160, name, uri string) {
	ctx := storage.GetContext()
	common.CheckAdmin(ctx)

	if storage.Get(ctx, collectionKey) != nil {
		panic(registryconst.CollectionExistsError)
	}
	if !common.IsValidAccount(asset) {
		panic("invalid asset contract")
	}
	common.CheckFieldLength("name", name, registryconst.MaxAssetNameLength)
	common.CheckFieldLength("uri", uri, registryconst.MaxAssetURILength)

	common.SetSerialized(ctx, collectionKey, Collection{
		Asset: asset,
		Name:  name,
		URI:   uri,
	})

	runtime.Notify("CollectionCreated", asset, name, uri)
}

// GetCollection returns asset collection. It panics if the collection has not
// been created.
func GetCollection() Collection {
	ctx := storage.GetReadOnlyContext()
	return getCollection(ctx)
}

// RegisterNode saves a new node with Offline status. The transaction must be
// signed by the registrant. Node ID must not be used by another live node.
func RegisterNode(registrant interop.Hash160, id string, owner interop.Hash160,
	name, nodeType, config, address, region, location, metadata string) {
	common.CheckWitness(registrant)

	if !common.IsValidAccount(owner) {
		panic(registryconst.InvalidOwnerError)
	}
	checkID(id)
	common.CheckFieldLength("name", name, registryconst.MaxNameLength)
	common.CheckFieldLength("type", nodeType, registryconst.MaxTypeLength)
	common.CheckFieldLength("config", config, registryconst.MaxConfigLength)
	common.CheckFieldLength("address", address, registryconst.MaxAddressLength)
	common.CheckFieldLength("region", region, registryconst.MaxRegionLength)
	common.CheckFieldLength("location", location, registryconst.MaxLocationLength)
	common.CheckFieldLength("metadata", metadata, registryconst.MaxMetadataLength)

	ctx := storage.GetContext()
	common.CreateRecord(ctx, nodeKey(id), Node{
		ID:         id,
		Registrant: registrant,
		Owner:      owner,
		Name:       name,
		Type:       nodeType,
		Config:     config,
		Address:    address,
		Region:     region,
		Location:   location,
		Metadata:   metadata,
		Status:     nodestatus.Offline,
		Asset:      nil,
		Checkpoint: "",
	})

	runtime.Notify("NodeRegistered", id, name, nodeType, config, address, region, location, metadata, owner)
}

// UpdateNodeStatus sets node status. It must be signed by the admin or the
// operator. Status MUST be from the [nodestatus.Type] enum.
func UpdateNodeStatus(id string, status int) {
	ctx := storage.GetContext()
	common.CheckAdminOrOperator(ctx)

	st := nodestatus.Type(status)
	if !nodestatus.IsValid(st) {
		panic(registryconst.InvalidStatusError)
	}

	key := nodeKey(id)
	n := common.GetRecord(ctx, key).(Node)
	n.Status = st
	common.PutRecord(ctx, key, n)

	runtime.Notify("NodeStatusUpdated", id, status)
}

// CreateCheckpoint replaces the checkpoint of the node. Caller must sign the
// transaction and be either the node owner or the admin.
func CreateCheckpoint(caller interop.Hash160, id string, data string) {
	ctx := storage.GetContext()

	key := nodeKey(id)
	n := common.GetRecord(ctx, key).(Node)
	common.CheckAdminOrOwner(ctx, caller, n.Owner)
	common.CheckFieldLength("checkpoint", data, registryconst.MaxCheckpointLength)

	n.Checkpoint = data
	common.PutRecord(ctx, key, n)

	runtime.Notify("CheckpointCreated", id, data)
}

// SubmitCheckpoint saves standalone checkpoint for the (owner, node ID) pair,
// the latest submission wins. It must be signed by the operator. Node ID is
// not required to reference a registered node.
func SubmitCheckpoint(owner interop.Hash160, id string, data string) {
	ctx := storage.GetContext()
	common.CheckOperator(ctx)

	if !common.IsValidAccount(owner) {
		panic(registryconst.InvalidOwnerError)
	}
	common.CheckFieldLength("node id", id, registryconst.MaxCheckpointNodeIDLength)
	common.CheckFieldLength("checkpoint", data, registryconst.MaxCheckpointLength)

	common.SetSerialized(ctx, checkpointKey(owner, id), Checkpoint{
		Owner:  owner,
		NodeID: id,
		Data:   data,
	})

	runtime.Notify("CheckpointSubmitted", owner, id, data)
}

// GetCheckpoint returns standalone checkpoint of the (owner, node ID) pair.
func GetCheckpoint(owner interop.Hash160, id string) Checkpoint {
	ctx := storage.GetReadOnlyContext()
	return common.GetRecord(ctx, checkpointKey(owner, id)).(Checkpoint)
}

// MintNode mints a frozen token for the node owner in the collection asset
// contract and binds it to the node. It must be signed by the admin. A node
// can be bound once; the binding is released by DeactivateNode only.
func MintNode(id string, name, uri string) []byte {
	ctx := storage.GetContext()
	common.CheckAdmin(ctx)

	common.CheckFieldLength("name", name, registryconst.MaxAssetNameLength)
	common.CheckFieldLength("uri", uri, registryconst.MaxAssetURILength)

	key := nodeKey(id)
	n := common.GetRecord(ctx, key).(Node)
	if n.Asset != nil {
		panic(registryconst.AssetExistsError)
	}

	col := getCollection(ctx)
	tokenID := contract.Call(col.Asset, "mint", contract.All, n.Owner, col.Name, name, uri).([]byte)

	n.Asset = tokenID
	common.PutRecord(ctx, key, n)

	runtime.Notify("NodeMinted", id, tokenID)
	return tokenID
}

// UpdateNodeMetadata changes URI of the token bound to the node. It must be
// signed by the admin.
func UpdateNodeMetadata(id string, uri string) {
	ctx := storage.GetContext()
	common.CheckAdmin(ctx)

	common.CheckFieldLength("uri", uri, registryconst.MaxAssetURILength)

	n := common.GetRecord(ctx, nodeKey(id)).(Node)
	if n.Asset == nil {
		panic(registryconst.NotBoundError)
	}

	col := getCollection(ctx)
	contract.Call(col.Asset, "updateURI", contract.All, n.Asset, uri)

	runtime.Notify("NodeMetadataUpdated", id, uri)
}

// DeactivateNode removes the node. It must be signed by the node owner.
//
// If the node is bound, asset MUST be the bound token ID: the token is
// unfrozen and burnt before the node is removed. If the node is not bound,
// asset MUST be empty and the node is removed without calling the asset
// contract. Node ID becomes available for registration afterwards.
func DeactivateNode(id string, asset []byte) {
	ctx := storage.GetContext()

	key := nodeKey(id)
	n := common.GetRecord(ctx, key).(Node)
	common.CheckOwnerWitness(n.Owner)

	if n.Asset != nil {
		if asset == nil || string(asset) != string(n.Asset) {
			panic(registryconst.InvalidAssetError)
		}

		col := getCollection(ctx)
		contract.Call(col.Asset, "setFrozen", contract.All, n.Asset, false)
		contract.Call(col.Asset, "burn", contract.All, n.Asset)
	} else if asset != nil && len(asset) != 0 {
		panic(registryconst.InvalidAssetError)
	}

	common.CloseRecord(ctx, key)

	runtime.Notify("NodeDeactivated", id, n.Owner)
}

// GetNode returns registered node by its ID.
func GetNode(id string) Node {
	ctx := storage.GetReadOnlyContext()
	return common.GetRecord(ctx, nodeKey(id)).(Node)
}

// IsRegistered checks whether the node with the given ID exists.
func IsRegistered(id string) bool {
	ctx := storage.GetReadOnlyContext()
	return common.RecordExists(ctx, nodeKey(id))
}

func checkID(id string) {
	if len(id) == 0 {
		panic(registryconst.InvalidIDError)
	}
	common.CheckFieldLength("id", id, registryconst.MaxIDLength)
}

func nodeKey(id string) []byte {
	return common.RecordKey(prefixNode, []byte(id))
}

func checkpointKey(owner interop.Hash160, id string) []byte {
	return common.RecordKey(prefixCheckpoint, append(owner, []byte(id)...))
}

func getCollection(ctx storage.Context) Collection {
	data := storage.Get(ctx, collectionKey)
	if data == nil {
		panic(registryconst.CollectionMissingError)
	}
	return std.Deserialize(data.([]byte)).(Collection)
}
