package accessnode

import (
	"github.com/netsepio/netsepio-contract/common"
	"github.com/netsepio/netsepio-contract/contracts/noderegistry/nodestatus"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Kinds of the access nodes.
const (
	KindWifi = 1
	KindVpn  = 2
)

// AccessNode groups data of wifi or vpn node. Fields not used by the node
// kind are left empty.
type AccessNode struct {
	Kind  int
	ID    int
	Owner interop.Hash160

	// Wifi only.
	DeviceID       string
	SSID           string
	PricePerMinute int

	// Vpn only.
	DID     string
	Name    string
	Address string
	ISP     string
	Region  string

	Location string
	Status   nodestatus.Type

	// Active is cleared by the admin or the operator on deactivation, after
	// that the owner may close the node.
	Active   bool
	CanClose bool
}

// AccessRequest is a user's request to access a node.
type AccessRequest struct {
	User     interop.Hash160
	Kind     int
	Owner    interop.Hash160
	NodeID   int
	Accepted bool
	Settled  bool
	CanClose bool
}

const (
	prefixNode    byte = 0x01
	prefixRequest byte = 0x02

	assetKey = "asset"
)

// Error messages.
const (
	ErrInvalidKind         = "invalid node kind"
	ErrInvalidID           = "invalid node id"
	ErrInvalidPrice        = "invalid price"
	ErrInvalidStatus       = "invalid node status"
	ErrNotActive           = "node is not active"
	ErrStillActive         = "node is still active"
	ErrNotCloseable        = "node is not closeable"
	ErrNotAccepted         = "request is not accepted"
	ErrRequestNotCloseable = "request is not closeable"
	ErrInvalidOwner        = "invalid owner"
	ErrAssetNotSet         = "asset contract is not set"
	ErrNoAsset             = "no asset owned"
)

// Values constraints.
const (
	maxFieldLength    = 50
	maxLocationLength = 100
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

	runtime.Log("accessnode contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccess)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("accessnode contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// InitializeAuthority creates authority record with the admin being the
// operator. It must be signed by the admin and can be invoked only once.
func InitializeAuthority() {
	ctx := storage.GetContext()
	a := common.InitAuthority(ctx)

	runtime.Notify("AuthorityUpdated", a.Operator)
}

// UpdateAuthority delegates operator capability to the given account.
func UpdateAuthority(operator interop.Hash160) {
	ctx := storage.GetContext()
	common.SetOperator(ctx, operator)

	runtime.Notify("AuthorityUpdated", operator)
}

// Authority returns current authority record.
func Authority() common.Authority {
	ctx := storage.GetReadOnlyContext()
	return common.GetAuthority(ctx)
}

// SetAsset sets the asset contract whose holders may request access to the
// nodes. It must be signed by the admin.
func SetAsset(asset interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckAdmin(ctx)

	if !common.IsValidAccount(asset) {
		panic("invalid asset contract")
	}
	storage.Put(ctx, assetKey, asset)

	runtime.Notify("AssetSet", asset)
}

// Asset returns the asset contract set by the admin.
func Asset() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getAsset(ctx)
}

// RegisterWifiNode saves active wifi node of the owner. It must be signed by
// the owner.
func RegisterWifiNode(owner interop.Hash160, id int, deviceID, ssid, location string, pricePerMinute int) {
	checkOwner(owner)
	checkID(id)
	common.CheckFieldLength("device id", deviceID, maxFieldLength)
	common.CheckFieldLength("ssid", ssid, maxFieldLength)
	common.CheckFieldLength("location", location, maxLocationLength)
	if pricePerMinute < 0 {
		panic(ErrInvalidPrice)
	}

	ctx := storage.GetContext()
	common.CreateRecord(ctx, nodeKey(KindWifi, owner, id), AccessNode{
		Kind:           KindWifi,
		ID:             id,
		Owner:          owner,
		DeviceID:       deviceID,
		SSID:           ssid,
		PricePerMinute: pricePerMinute,
		Location:       location,
		Status:         nodestatus.Online,
		Active:         true,
		CanClose:       false,
	})

	runtime.Notify("WifiNodeRegistered", owner, id, deviceID, ssid, location, pricePerMinute)
}

// RegisterVpnNode saves active vpn node of the owner in Online state. It must
// be signed by the owner.
func RegisterVpnNode(owner interop.Hash160, id int, did, name, address, isp, region, location string) {
	checkOwner(owner)
	checkID(id)
	common.CheckFieldLength("did", did, maxFieldLength)
	common.CheckFieldLength("name", name, maxFieldLength)
	common.CheckFieldLength("address", address, maxFieldLength)
	common.CheckFieldLength("isp", isp, maxFieldLength)
	common.CheckFieldLength("region", region, maxFieldLength)
	common.CheckFieldLength("location", location, maxLocationLength)

	ctx := storage.GetContext()
	common.CreateRecord(ctx, nodeKey(KindVpn, owner, id), AccessNode{
		Kind:     KindVpn,
		ID:       id,
		Owner:    owner,
		DID:      did,
		Name:     name,
		Address:  address,
		ISP:      isp,
		Region:   region,
		Location: location,
		Status:   nodestatus.Online,
		Active:   true,
		CanClose: false,
	})

	runtime.Notify("VpnNodeRegistered", owner, id, did, name, address, isp, region, location)
}

// UpdateWifiNode replaces mutable fields of the active wifi node. It must be
// signed by the owner.
func UpdateWifiNode(owner interop.Hash160, id int, ssid, location string, pricePerMinute int) {
	common.CheckOwnerWitness(owner)
	common.CheckFieldLength("ssid", ssid, maxFieldLength)
	common.CheckFieldLength("location", location, maxLocationLength)
	if pricePerMinute < 0 {
		panic(ErrInvalidPrice)
	}

	ctx := storage.GetContext()
	key := nodeKey(KindWifi, owner, id)
	n := common.GetRecord(ctx, key).(AccessNode)
	if !n.Active {
		panic(ErrNotActive)
	}
	n.SSID = ssid
	n.Location = location
	n.PricePerMinute = pricePerMinute
	common.PutRecord(ctx, key, n)

	runtime.Notify("WifiNodeUpdated", owner, id, ssid, location, pricePerMinute)
}

// UpdateVpnNode sets status and region of the active vpn node. It must be
// signed by the owner.
func UpdateVpnNode(owner interop.Hash160, id int, status int, region string) {
	common.CheckOwnerWitness(owner)
	common.CheckFieldLength("region", region, maxFieldLength)

	st := nodestatus.Type(status)
	if !nodestatus.IsValid(st) {
		panic(ErrInvalidStatus)
	}

	ctx := storage.GetContext()
	key := nodeKey(KindVpn, owner, id)
	n := common.GetRecord(ctx, key).(AccessNode)
	if !n.Active {
		panic(ErrNotActive)
	}
	n.Status = st
	n.Region = region
	common.PutRecord(ctx, key, n)

	runtime.Notify("VpnNodeUpdated", id, status, region)
}

// DeactivateWifiNode makes the wifi node closeable by its owner. It must be
// signed by the admin or the operator.
func DeactivateWifiNode(owner interop.Hash160, id int) {
	deactivate(KindWifi, owner, id)
}

// DeactivateVpnNode makes the vpn node closeable by its owner. It must be
// signed by the admin or the operator.
func DeactivateVpnNode(owner interop.Hash160, id int) {
	deactivate(KindVpn, owner, id)
}

// CloseWifiNode removes deactivated wifi node. It must be signed by the owner.
func CloseWifiNode(owner interop.Hash160, id int) {
	closeNode(KindWifi, owner, id)
}

// CloseVpnNode removes deactivated vpn node. It must be signed by the owner.
func CloseVpnNode(owner interop.Hash160, id int) {
	closeNode(KindVpn, owner, id)
}

// GetWifiNode returns wifi node of the owner.
func GetWifiNode(owner interop.Hash160, id int) AccessNode {
	ctx := storage.GetReadOnlyContext()
	return common.GetRecord(ctx, nodeKey(KindWifi, owner, id)).(AccessNode)
}

// GetVpnNode returns vpn node of the owner.
func GetVpnNode(owner interop.Hash160, id int) AccessNode {
	ctx := storage.GetReadOnlyContext()
	return common.GetRecord(ctx, nodeKey(KindVpn, owner, id)).(AccessNode)
}

// RequestAccess opens user's access request to the active node. It must be
// signed by the user holding at least one token of the asset contract.
func RequestAccess(user interop.Hash160, kind int, owner interop.Hash160, id int) {
	common.CheckWitness(user)
	checkKind(kind)

	ctx := storage.GetContext()
	n := common.GetRecord(ctx, nodeKey(kind, owner, id)).(AccessNode)
	if !n.Active {
		panic(ErrNotActive)
	}
	if contract.Call(getAsset(ctx), "balanceOf", contract.ReadStates, user).(int) == 0 {
		panic(ErrNoAsset)
	}

	common.CreateRecord(ctx, requestKey(user, kind, owner, id), AccessRequest{
		User:   user,
		Kind:   kind,
		Owner:  owner,
		NodeID: id,
	})

	runtime.Notify("AccessRequested", user, owner, id)
}

// ManageAccessRequest accepts or rejects access request. Rejected request
// becomes closeable. It must be signed by the operator.
func ManageAccessRequest(user interop.Hash160, kind int, owner interop.Hash160, id int, accepted bool) {
	ctx := storage.GetContext()
	common.CheckOperator(ctx)
	checkKind(kind)

	key := requestKey(user, kind, owner, id)
	r := common.GetRecord(ctx, key).(AccessRequest)
	r.Accepted = accepted
	if !accepted || r.Settled {
		r.CanClose = true
	}
	common.PutRecord(ctx, key, r)

	runtime.Notify("AccessRequestManaged", user, accepted)
}

// SettleAccessRequest marks accepted request as settled, after that it can be
// closed by the user. It must be signed by the operator.
func SettleAccessRequest(user interop.Hash160, kind int, owner interop.Hash160, id int) {
	ctx := storage.GetContext()
	common.CheckOperator(ctx)
	checkKind(kind)

	key := requestKey(user, kind, owner, id)
	r := common.GetRecord(ctx, key).(AccessRequest)
	if !r.Accepted {
		panic(ErrNotAccepted)
	}
	r.Settled = true
	r.CanClose = true
	common.PutRecord(ctx, key, r)

	runtime.Notify("AccessRequestSettled", user, id)
}

// CloseAccessRequest removes closeable request. It must be signed by the user.
func CloseAccessRequest(user interop.Hash160, kind int, owner interop.Hash160, id int) {
	common.CheckWitness(user)
	checkKind(kind)

	ctx := storage.GetContext()
	key := requestKey(user, kind, owner, id)
	r := common.GetRecord(ctx, key).(AccessRequest)
	if !r.CanClose {
		panic(ErrRequestNotCloseable)
	}
	common.CloseRecord(ctx, key)

	runtime.Notify("AccessRequestClosed", user, id)
}

// GetAccessRequest returns user's access request to the node.
func GetAccessRequest(user interop.Hash160, kind int, owner interop.Hash160, id int) AccessRequest {
	checkKind(kind)
	ctx := storage.GetReadOnlyContext()
	return common.GetRecord(ctx, requestKey(user, kind, owner, id)).(AccessRequest)
}

func deactivate(kind int, owner interop.Hash160, id int) {
	ctx := storage.GetContext()
	common.CheckAdminOrOperator(ctx)

	key := nodeKey(kind, owner, id)
	n := common.GetRecord(ctx, key).(AccessNode)
	if !n.Active {
		panic(ErrNotActive)
	}
	n.Active = false
	n.CanClose = true
	n.Status = nodestatus.Offline
	common.PutRecord(ctx, key, n)

	runtime.Notify("NodeDeactivated", owner, id)
}

func closeNode(kind int, owner interop.Hash160, id int) {
	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	key := nodeKey(kind, owner, id)
	n := common.GetRecord(ctx, key).(AccessNode)
	if n.Active {
		panic(ErrStillActive)
	}
	if !n.CanClose {
		panic(ErrNotCloseable)
	}
	common.CloseRecord(ctx, key)

	runtime.Notify("NodeClosed", id, owner)
}

func getAsset(ctx storage.Context) interop.Hash160 {
	asset := storage.Get(ctx, assetKey)
	if asset == nil {
		panic(ErrAssetNotSet)
	}
	return asset.(interop.Hash160)
}

func checkOwner(owner interop.Hash160) {
	if !common.IsValidAccount(owner) {
		panic(ErrInvalidOwner)
	}
	common.CheckOwnerWitness(owner)
}

func checkID(id int) {
	if id < 0 {
		panic(ErrInvalidID)
	}
}

func checkKind(kind int) {
	if kind != KindWifi && kind != KindVpn {
		panic(ErrInvalidKind)
	}
}

// nodeKey returns kind + owner + LE(id) slot.
func nodeKey(kind int, owner interop.Hash160, id int) []byte {
	key := append([]byte{prefixNode, byte(kind)}, owner...)
	return append(key, convert.ToBytes(id)...)
}

func requestKey(user interop.Hash160, kind int, owner interop.Hash160, id int) []byte {
	key := append([]byte{prefixRequest, byte(kind)}, owner...)
	key = append(key, user...)
	return append(key, convert.ToBytes(id)...)
}
