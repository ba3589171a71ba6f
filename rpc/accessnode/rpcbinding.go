// Package accessnode contains RPC wrappers for NetSepio Access Nodes contract.
package accessnode

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// CommonAuthority is a contract-specific common.Authority type used by its methods.
type CommonAuthority struct {
	Admin util.Uint160
	Operator util.Uint160
}

// AccessnodeAccessNode is a contract-specific accessnode.AccessNode type used by its methods.
type AccessnodeAccessNode struct {
	Kind *big.Int
	ID *big.Int
	Owner util.Uint160
	DeviceID string
	SSID string
	PricePerMinute *big.Int
	DID string
	Name string
	Address string
	ISP string
	Region string
	Location string
	Status *big.Int
	Active bool
	CanClose bool
}

// AccessnodeAccessRequest is a contract-specific accessnode.AccessRequest type used by its methods.
type AccessnodeAccessRequest struct {
	User util.Uint160
	Kind *big.Int
	Owner util.Uint160
	NodeID *big.Int
	Accepted bool
	Settled bool
	CanClose bool
}

// AssetSetEvent represents "AssetSet" event emitted by the contract.
type AssetSetEvent struct {
	Asset util.Uint160
}

// AuthorityUpdatedEvent represents "AuthorityUpdated" event emitted by the contract.
type AuthorityUpdatedEvent struct {
	Operator util.Uint160
}

// WifiNodeRegisteredEvent represents "WifiNodeRegistered" event emitted by the contract.
type WifiNodeRegisteredEvent struct {
	Owner util.Uint160
	ID *big.Int
	DeviceID string
	SSID string
	Location string
	PricePerMinute *big.Int
}

// VpnNodeRegisteredEvent represents "VpnNodeRegistered" event emitted by the contract.
type VpnNodeRegisteredEvent struct {
	Owner util.Uint160
	ID *big.Int
	DID string
	Name string
	Address string
	ISP string
	Region string
	Location string
}

// WifiNodeUpdatedEvent represents "WifiNodeUpdated" event emitted by the contract.
type WifiNodeUpdatedEvent struct {
	Owner util.Uint160
	ID *big.Int
	SSID string
	Location string
	PricePerMinute *big.Int
}

// VpnNodeUpdatedEvent represents "VpnNodeUpdated" event emitted by the contract.
type VpnNodeUpdatedEvent struct {
	ID *big.Int
	Status *big.Int
	Region string
}

// NodeDeactivatedEvent represents "NodeDeactivated" event emitted by the contract.
type NodeDeactivatedEvent struct {
	Owner util.Uint160
	ID *big.Int
}

// NodeClosedEvent represents "NodeClosed" event emitted by the contract.
type NodeClosedEvent struct {
	ID *big.Int
	Owner util.Uint160
}

// AccessRequestedEvent represents "AccessRequested" event emitted by the contract.
type AccessRequestedEvent struct {
	User util.Uint160
	Owner util.Uint160
	ID *big.Int
}

// AccessRequestManagedEvent represents "AccessRequestManaged" event emitted by the contract.
type AccessRequestManagedEvent struct {
	User util.Uint160
	Accepted bool
}

// AccessRequestSettledEvent represents "AccessRequestSettled" event emitted by the contract.
type AccessRequestSettledEvent struct {
	User util.Uint160
	ID *big.Int
}

// AccessRequestClosedEvent represents "AccessRequestClosed" event emitted by the contract.
type AccessRequestClosedEvent struct {
	User util.Uint160
	ID *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Asset invokes `asset` method of contract.
func (c *ContractReader) Asset() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "asset"))
}

// Authority invokes `authority` method of contract.
func (c *ContractReader) Authority() (*CommonAuthority, error) {
	return itemToCommonAuthority(unwrap.Item(c.invoker.Call(c.hash, "authority")))
}

// GetAccessRequest invokes `getAccessRequest` method of contract.
func (c *ContractReader) GetAccessRequest(user util.Uint160, kind *big.Int, owner util.Uint160, id *big.Int) (*AccessnodeAccessRequest, error) {
	return itemToAccessnodeAccessRequest(unwrap.Item(c.invoker.Call(c.hash, "getAccessRequest", user, kind, owner, id)))
}

// GetVpnNode invokes `getVpnNode` method of contract.
func (c *ContractReader) GetVpnNode(owner util.Uint160, id *big.Int) (*AccessnodeAccessNode, error) {
	return itemToAccessnodeAccessNode(unwrap.Item(c.invoker.Call(c.hash, "getVpnNode", owner, id)))
}

// GetWifiNode invokes `getWifiNode` method of contract.
func (c *ContractReader) GetWifiNode(owner util.Uint160, id *big.Int) (*AccessnodeAccessNode, error) {
	return itemToAccessnodeAccessNode(unwrap.Item(c.invoker.Call(c.hash, "getWifiNode", owner, id)))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CloseAccessRequest creates a transaction invoking `closeAccessRequest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CloseAccessRequest(user util.Uint160, kind *big.Int, owner util.Uint160, id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "closeAccessRequest", user, kind, owner, id)
}

// CloseAccessRequestTransaction creates a transaction invoking `closeAccessRequest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CloseAccessRequestTransaction(user util.Uint160, kind *big.Int, owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "closeAccessRequest", user, kind, owner, id)
}

// CloseAccessRequestUnsigned creates a transaction invoking `closeAccessRequest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CloseAccessRequestUnsigned(user util.Uint160, kind *big.Int, owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "closeAccessRequest", nil, user, kind, owner, id)
}

// CloseVpnNode creates a transaction invoking `closeVpnNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CloseVpnNode(owner util.Uint160, id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "closeVpnNode", owner, id)
}

// CloseVpnNodeTransaction creates a transaction invoking `closeVpnNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CloseVpnNodeTransaction(owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "closeVpnNode", owner, id)
}

// CloseVpnNodeUnsigned creates a transaction invoking `closeVpnNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CloseVpnNodeUnsigned(owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "closeVpnNode", nil, owner, id)
}

// CloseWifiNode creates a transaction invoking `closeWifiNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CloseWifiNode(owner util.Uint160, id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "closeWifiNode", owner, id)
}

// CloseWifiNodeTransaction creates a transaction invoking `closeWifiNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CloseWifiNodeTransaction(owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "closeWifiNode", owner, id)
}

// CloseWifiNodeUnsigned creates a transaction invoking `closeWifiNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CloseWifiNodeUnsigned(owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "closeWifiNode", nil, owner, id)
}

// DeactivateVpnNode creates a transaction invoking `deactivateVpnNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeactivateVpnNode(owner util.Uint160, id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deactivateVpnNode", owner, id)
}

// DeactivateVpnNodeTransaction creates a transaction invoking `deactivateVpnNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeactivateVpnNodeTransaction(owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deactivateVpnNode", owner, id)
}

// DeactivateVpnNodeUnsigned creates a transaction invoking `deactivateVpnNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeactivateVpnNodeUnsigned(owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deactivateVpnNode", nil, owner, id)
}

// DeactivateWifiNode creates a transaction invoking `deactivateWifiNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeactivateWifiNode(owner util.Uint160, id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deactivateWifiNode", owner, id)
}

// DeactivateWifiNodeTransaction creates a transaction invoking `deactivateWifiNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeactivateWifiNodeTransaction(owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deactivateWifiNode", owner, id)
}

// DeactivateWifiNodeUnsigned creates a transaction invoking `deactivateWifiNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeactivateWifiNodeUnsigned(owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deactivateWifiNode", nil, owner, id)
}

// InitializeAuthority creates a transaction invoking `initializeAuthority` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) InitializeAuthority() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initializeAuthority")
}

// InitializeAuthorityTransaction creates a transaction invoking `initializeAuthority` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitializeAuthorityTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initializeAuthority")
}

// InitializeAuthorityUnsigned creates a transaction invoking `initializeAuthority` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitializeAuthorityUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initializeAuthority", nil)
}

// ManageAccessRequest creates a transaction invoking `manageAccessRequest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ManageAccessRequest(user util.Uint160, kind *big.Int, owner util.Uint160, id *big.Int, accepted bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "manageAccessRequest", user, kind, owner, id, accepted)
}

// ManageAccessRequestTransaction creates a transaction invoking `manageAccessRequest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ManageAccessRequestTransaction(user util.Uint160, kind *big.Int, owner util.Uint160, id *big.Int, accepted bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "manageAccessRequest", user, kind, owner, id, accepted)
}

// ManageAccessRequestUnsigned creates a transaction invoking `manageAccessRequest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ManageAccessRequestUnsigned(user util.Uint160, kind *big.Int, owner util.Uint160, id *big.Int, accepted bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "manageAccessRequest", nil, user, kind, owner, id, accepted)
}

// RegisterVpnNode creates a transaction invoking `registerVpnNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterVpnNode(owner util.Uint160, id *big.Int, did string, name string, address string, isp string, region string, location string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerVpnNode", owner, id, did, name, address, isp, region, location)
}

// RegisterVpnNodeTransaction creates a transaction invoking `registerVpnNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterVpnNodeTransaction(owner util.Uint160, id *big.Int, did string, name string, address string, isp string, region string, location string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerVpnNode", owner, id, did, name, address, isp, region, location)
}

// RegisterVpnNodeUnsigned creates a transaction invoking `registerVpnNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterVpnNodeUnsigned(owner util.Uint160, id *big.Int, did string, name string, address string, isp string, region string, location string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerVpnNode", nil, owner, id, did, name, address, isp, region, location)
}

// RegisterWifiNode creates a transaction invoking `registerWifiNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterWifiNode(owner util.Uint160, id *big.Int, deviceID string, ssid string, location string, pricePerMinute *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerWifiNode", owner, id, deviceID, ssid, location, pricePerMinute)
}

// RegisterWifiNodeTransaction creates a transaction invoking `registerWifiNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterWifiNodeTransaction(owner util.Uint160, id *big.Int, deviceID string, ssid string, location string, pricePerMinute *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerWifiNode", owner, id, deviceID, ssid, location, pricePerMinute)
}

// RegisterWifiNodeUnsigned creates a transaction invoking `registerWifiNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterWifiNodeUnsigned(owner util.Uint160, id *big.Int, deviceID string, ssid string, location string, pricePerMinute *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerWifiNode", nil, owner, id, deviceID, ssid, location, pricePerMinute)
}

// RequestAccess creates a transaction invoking `requestAccess` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RequestAccess(user util.Uint160, kind *big.Int, owner util.Uint160, id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "requestAccess", user, kind, owner, id)
}

// RequestAccessTransaction creates a transaction invoking `requestAccess` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RequestAccessTransaction(user util.Uint160, kind *big.Int, owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "requestAccess", user, kind, owner, id)
}

// RequestAccessUnsigned creates a transaction invoking `requestAccess` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RequestAccessUnsigned(user util.Uint160, kind *big.Int, owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "requestAccess", nil, user, kind, owner, id)
}

// SetAsset creates a transaction invoking `setAsset` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAsset(asset util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAsset", asset)
}

// SetAssetTransaction creates a transaction invoking `setAsset` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAssetTransaction(asset util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAsset", asset)
}

// SetAssetUnsigned creates a transaction invoking `setAsset` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAssetUnsigned(asset util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAsset", nil, asset)
}

// SettleAccessRequest creates a transaction invoking `settleAccessRequest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SettleAccessRequest(user util.Uint160, kind *big.Int, owner util.Uint160, id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "settleAccessRequest", user, kind, owner, id)
}

// SettleAccessRequestTransaction creates a transaction invoking `settleAccessRequest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SettleAccessRequestTransaction(user util.Uint160, kind *big.Int, owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "settleAccessRequest", user, kind, owner, id)
}

// SettleAccessRequestUnsigned creates a transaction invoking `settleAccessRequest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SettleAccessRequestUnsigned(user util.Uint160, kind *big.Int, owner util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "settleAccessRequest", nil, user, kind, owner, id)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateAuthority creates a transaction invoking `updateAuthority` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateAuthority(operator util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateAuthority", operator)
}

// UpdateAuthorityTransaction creates a transaction invoking `updateAuthority` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateAuthorityTransaction(operator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateAuthority", operator)
}

// UpdateAuthorityUnsigned creates a transaction invoking `updateAuthority` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateAuthorityUnsigned(operator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateAuthority", nil, operator)
}

// UpdateVpnNode creates a transaction invoking `updateVpnNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateVpnNode(owner util.Uint160, id *big.Int, status *big.Int, region string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateVpnNode", owner, id, status, region)
}

// UpdateVpnNodeTransaction creates a transaction invoking `updateVpnNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateVpnNodeTransaction(owner util.Uint160, id *big.Int, status *big.Int, region string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateVpnNode", owner, id, status, region)
}

// UpdateVpnNodeUnsigned creates a transaction invoking `updateVpnNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateVpnNodeUnsigned(owner util.Uint160, id *big.Int, status *big.Int, region string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateVpnNode", nil, owner, id, status, region)
}

// UpdateWifiNode creates a transaction invoking `updateWifiNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateWifiNode(owner util.Uint160, id *big.Int, ssid string, location string, pricePerMinute *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateWifiNode", owner, id, ssid, location, pricePerMinute)
}

// UpdateWifiNodeTransaction creates a transaction invoking `updateWifiNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateWifiNodeTransaction(owner util.Uint160, id *big.Int, ssid string, location string, pricePerMinute *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateWifiNode", owner, id, ssid, location, pricePerMinute)
}

// UpdateWifiNodeUnsigned creates a transaction invoking `updateWifiNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateWifiNodeUnsigned(owner util.Uint160, id *big.Int, ssid string, location string, pricePerMinute *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateWifiNode", nil, owner, id, ssid, location, pricePerMinute)
}

// itemToCommonAuthority converts stack item into *CommonAuthority.
func itemToCommonAuthority(item stackitem.Item, err error) (*CommonAuthority, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CommonAuthority)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CommonAuthority from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CommonAuthority) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Admin, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Admin: %w", err)
	}

	index++
	res.Operator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	return nil
}

// itemToAccessnodeAccessNode converts stack item into *AccessnodeAccessNode.
func itemToAccessnodeAccessNode(item stackitem.Item, err error) (*AccessnodeAccessNode, error) {
	if err != nil {
		return nil, err
	}
	var res = new(AccessnodeAccessNode)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of AccessnodeAccessNode from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *AccessnodeAccessNode) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 15 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Kind, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Kind: %w", err)
	}

	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.DeviceID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field DeviceID: %w", err)
	}

	index++
	res.SSID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field SSID: %w", err)
	}

	index++
	res.PricePerMinute, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PricePerMinute: %w", err)
	}

	index++
	res.DID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field DID: %w", err)
	}

	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Address, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Address: %w", err)
	}

	index++
	res.ISP, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ISP: %w", err)
	}

	index++
	res.Region, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Region: %w", err)
	}

	index++
	res.Location, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Location: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	index++
	res.CanClose, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field CanClose: %w", err)
	}

	return nil
}

// itemToAccessnodeAccessRequest converts stack item into *AccessnodeAccessRequest.
func itemToAccessnodeAccessRequest(item stackitem.Item, err error) (*AccessnodeAccessRequest, error) {
	if err != nil {
		return nil, err
	}
	var res = new(AccessnodeAccessRequest)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of AccessnodeAccessRequest from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *AccessnodeAccessRequest) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.User, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	res.Kind, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Kind: %w", err)
	}

	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.NodeID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NodeID: %w", err)
	}

	index++
	res.Accepted, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Accepted: %w", err)
	}

	index++
	res.Settled, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Settled: %w", err)
	}

	index++
	res.CanClose, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field CanClose: %w", err)
	}

	return nil
}

// AssetSetEventsFromApplicationLog retrieves a set of all emitted events
// with "AssetSet" name from the provided [result.ApplicationLog].
func AssetSetEventsFromApplicationLog(log *result.ApplicationLog) ([]*AssetSetEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AssetSetEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AssetSet" {
				continue
			}
			event := new(AssetSetEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AssetSetEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AssetSetEvent or
// returns an error if it's not possible to do to so.
func (e *AssetSetEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Asset, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	return nil
}

// AuthorityUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "AuthorityUpdated" name from the provided [result.ApplicationLog].
func AuthorityUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuthorityUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AuthorityUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AuthorityUpdated" {
				continue
			}
			event := new(AuthorityUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AuthorityUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuthorityUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *AuthorityUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Operator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	return nil
}

// WifiNodeRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "WifiNodeRegistered" name from the provided [result.ApplicationLog].
func WifiNodeRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*WifiNodeRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WifiNodeRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WifiNodeRegistered" {
				continue
			}
			event := new(WifiNodeRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WifiNodeRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WifiNodeRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *WifiNodeRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.DeviceID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field DeviceID: %w", err)
	}

	index++
	e.SSID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field SSID: %w", err)
	}

	index++
	e.Location, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Location: %w", err)
	}

	index++
	e.PricePerMinute, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PricePerMinute: %w", err)
	}

	return nil
}

// VpnNodeRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "VpnNodeRegistered" name from the provided [result.ApplicationLog].
func VpnNodeRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*VpnNodeRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VpnNodeRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VpnNodeRegistered" {
				continue
			}
			event := new(VpnNodeRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VpnNodeRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VpnNodeRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *VpnNodeRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.DID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field DID: %w", err)
	}

	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Address, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Address: %w", err)
	}

	index++
	e.ISP, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ISP: %w", err)
	}

	index++
	e.Region, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Region: %w", err)
	}

	index++
	e.Location, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Location: %w", err)
	}

	return nil
}

// WifiNodeUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "WifiNodeUpdated" name from the provided [result.ApplicationLog].
func WifiNodeUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*WifiNodeUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WifiNodeUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WifiNodeUpdated" {
				continue
			}
			event := new(WifiNodeUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WifiNodeUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WifiNodeUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *WifiNodeUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.SSID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field SSID: %w", err)
	}

	index++
	e.Location, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Location: %w", err)
	}

	index++
	e.PricePerMinute, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PricePerMinute: %w", err)
	}

	return nil
}

// VpnNodeUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "VpnNodeUpdated" name from the provided [result.ApplicationLog].
func VpnNodeUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VpnNodeUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VpnNodeUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VpnNodeUpdated" {
				continue
			}
			event := new(VpnNodeUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VpnNodeUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VpnNodeUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *VpnNodeUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	e.Region, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Region: %w", err)
	}

	return nil
}

// NodeDeactivatedEventsFromApplicationLog retrieves a set of all emitted events
// with "NodeDeactivated" name from the provided [result.ApplicationLog].
func NodeDeactivatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*NodeDeactivatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NodeDeactivatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NodeDeactivated" {
				continue
			}
			event := new(NodeDeactivatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NodeDeactivatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NodeDeactivatedEvent or
// returns an error if it's not possible to do to so.
func (e *NodeDeactivatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}

// NodeClosedEventsFromApplicationLog retrieves a set of all emitted events
// with "NodeClosed" name from the provided [result.ApplicationLog].
func NodeClosedEventsFromApplicationLog(log *result.ApplicationLog) ([]*NodeClosedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NodeClosedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NodeClosed" {
				continue
			}
			event := new(NodeClosedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NodeClosedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NodeClosedEvent or
// returns an error if it's not possible to do to so.
func (e *NodeClosedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// AccessRequestedEventsFromApplicationLog retrieves a set of all emitted events
// with "AccessRequested" name from the provided [result.ApplicationLog].
func AccessRequestedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AccessRequestedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AccessRequestedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AccessRequested" {
				continue
			}
			event := new(AccessRequestedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AccessRequestedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AccessRequestedEvent or
// returns an error if it's not possible to do to so.
func (e *AccessRequestedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.User, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}

// AccessRequestManagedEventsFromApplicationLog retrieves a set of all emitted events
// with "AccessRequestManaged" name from the provided [result.ApplicationLog].
func AccessRequestManagedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AccessRequestManagedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AccessRequestManagedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AccessRequestManaged" {
				continue
			}
			event := new(AccessRequestManagedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AccessRequestManagedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AccessRequestManagedEvent or
// returns an error if it's not possible to do to so.
func (e *AccessRequestManagedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.User, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	e.Accepted, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Accepted: %w", err)
	}

	return nil
}

// AccessRequestSettledEventsFromApplicationLog retrieves a set of all emitted events
// with "AccessRequestSettled" name from the provided [result.ApplicationLog].
func AccessRequestSettledEventsFromApplicationLog(log *result.ApplicationLog) ([]*AccessRequestSettledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AccessRequestSettledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AccessRequestSettled" {
				continue
			}
			event := new(AccessRequestSettledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AccessRequestSettledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AccessRequestSettledEvent or
// returns an error if it's not possible to do to so.
func (e *AccessRequestSettledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.User, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}

// AccessRequestClosedEventsFromApplicationLog retrieves a set of all emitted events
// with "AccessRequestClosed" name from the provided [result.ApplicationLog].
func AccessRequestClosedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AccessRequestClosedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AccessRequestClosedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AccessRequestClosed" {
				continue
			}
			event := new(AccessRequestClosedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AccessRequestClosedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AccessRequestClosedEvent or
// returns an error if it's not possible to do to so.
func (e *AccessRequestClosedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.User, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}
