// Package noderegistry contains RPC wrappers for NetSepio Node Registry contract.
package noderegistry

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

// NoderegistryNode is a contract-specific noderegistry.Node type used by its methods.
type NoderegistryNode struct {
	ID string
	Registrant util.Uint160
	Owner util.Uint160
	Name string
	Type string
	Config string
	Address string
	Region string
	Location string
	Metadata string
	Status *big.Int
	Asset []byte
	Checkpoint string
}

// NoderegistryCheckpoint is a contract-specific noderegistry.Checkpoint type used by its methods.
type NoderegistryCheckpoint struct {
	Owner util.Uint160
	NodeID string
	Data string
}

// NoderegistryCollection is a contract-specific noderegistry.Collection type used by its methods.
type NoderegistryCollection struct {
	Asset util.Uint160
	Name string
	URI string
}

// AuthorityUpdatedEvent represents "AuthorityUpdated" event emitted by the contract.
type AuthorityUpdatedEvent struct {
	Operator util.Uint160
}

// CollectionCreatedEvent represents "CollectionCreated" event emitted by the contract.
type CollectionCreatedEvent struct {
	Asset util.Uint160
	Name string
	URI string
}

// NodeRegisteredEvent represents "NodeRegistered" event emitted by the contract.
type NodeRegisteredEvent struct {
	ID string
	Name string
	NodeType string
	Config string
	Address string
	Region string
	Location string
	Metadata string
	Owner util.Uint160
}

// NodeStatusUpdatedEvent represents "NodeStatusUpdated" event emitted by the contract.
type NodeStatusUpdatedEvent struct {
	ID string
	Status *big.Int
}

// CheckpointCreatedEvent represents "CheckpointCreated" event emitted by the contract.
type CheckpointCreatedEvent struct {
	ID string
	Data string
}

// CheckpointSubmittedEvent represents "CheckpointSubmitted" event emitted by the contract.
type CheckpointSubmittedEvent struct {
	Owner util.Uint160
	ID string
	Data string
}

// NodeMintedEvent represents "NodeMinted" event emitted by the contract.
type NodeMintedEvent struct {
	ID string
	Asset []byte
}

// NodeMetadataUpdatedEvent represents "NodeMetadataUpdated" event emitted by the contract.
type NodeMetadataUpdatedEvent struct {
	ID string
	URI string
}

// NodeDeactivatedEvent represents "NodeDeactivated" event emitted by the contract.
type NodeDeactivatedEvent struct {
	ID string
	Owner util.Uint160
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

// Admin invokes `admin` method of contract.
func (c *ContractReader) Admin() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "admin"))
}

// Authority invokes `authority` method of contract.
func (c *ContractReader) Authority() (*CommonAuthority, error) {
	return itemToCommonAuthority(unwrap.Item(c.invoker.Call(c.hash, "authority")))
}

// GetCheckpoint invokes `getCheckpoint` method of contract.
func (c *ContractReader) GetCheckpoint(owner util.Uint160, id string) (*NoderegistryCheckpoint, error) {
	return itemToNoderegistryCheckpoint(unwrap.Item(c.invoker.Call(c.hash, "getCheckpoint", owner, id)))
}

// GetCollection invokes `getCollection` method of contract.
func (c *ContractReader) GetCollection() (*NoderegistryCollection, error) {
	return itemToNoderegistryCollection(unwrap.Item(c.invoker.Call(c.hash, "getCollection")))
}

// GetNode invokes `getNode` method of contract.
func (c *ContractReader) GetNode(id string) (*NoderegistryNode, error) {
	return itemToNoderegistryNode(unwrap.Item(c.invoker.Call(c.hash, "getNode", id)))
}

// IsRegistered invokes `isRegistered` method of contract.
func (c *ContractReader) IsRegistered(id string) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isRegistered", id))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CreateCheckpoint creates a transaction invoking `createCheckpoint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateCheckpoint(caller util.Uint160, id string, data string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createCheckpoint", caller, id, data)
}

// CreateCheckpointTransaction creates a transaction invoking `createCheckpoint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateCheckpointTransaction(caller util.Uint160, id string, data string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createCheckpoint", caller, id, data)
}

// CreateCheckpointUnsigned creates a transaction invoking `createCheckpoint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateCheckpointUnsigned(caller util.Uint160, id string, data string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createCheckpoint", nil, caller, id, data)
}

// CreateCollection creates a transaction invoking `createCollection` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateCollection(asset util.Uint160, name string, uri string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createCollection", asset, name, uri)
}

// CreateCollectionTransaction creates a transaction invoking `createCollection` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateCollectionTransaction(asset util.Uint160, name string, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createCollection", asset, name, uri)
}

// CreateCollectionUnsigned creates a transaction invoking `createCollection` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateCollectionUnsigned(asset util.Uint160, name string, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createCollection", nil, asset, name, uri)
}

// DeactivateNode creates a transaction invoking `deactivateNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeactivateNode(id string, asset []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deactivateNode", id, asset)
}

// DeactivateNodeTransaction creates a transaction invoking `deactivateNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeactivateNodeTransaction(id string, asset []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deactivateNode", id, asset)
}

// DeactivateNodeUnsigned creates a transaction invoking `deactivateNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeactivateNodeUnsigned(id string, asset []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deactivateNode", nil, id, asset)
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

// MintNode creates a transaction invoking `mintNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MintNode(id string, name string, uri string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mintNode", id, name, uri)
}

// MintNodeTransaction creates a transaction invoking `mintNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintNodeTransaction(id string, name string, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mintNode", id, name, uri)
}

// MintNodeUnsigned creates a transaction invoking `mintNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintNodeUnsigned(id string, name string, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mintNode", nil, id, name, uri)
}

// RegisterNode creates a transaction invoking `registerNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterNode(registrant util.Uint160, id string, owner util.Uint160, name string, nodeType string, config string, address string, region string, location string, metadata string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerNode", registrant, id, owner, name, nodeType, config, address, region, location, metadata)
}

// RegisterNodeTransaction creates a transaction invoking `registerNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterNodeTransaction(registrant util.Uint160, id string, owner util.Uint160, name string, nodeType string, config string, address string, region string, location string, metadata string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerNode", registrant, id, owner, name, nodeType, config, address, region, location, metadata)
}

// RegisterNodeUnsigned creates a transaction invoking `registerNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterNodeUnsigned(registrant util.Uint160, id string, owner util.Uint160, name string, nodeType string, config string, address string, region string, location string, metadata string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerNode", nil, registrant, id, owner, name, nodeType, config, address, region, location, metadata)
}

// SubmitCheckpoint creates a transaction invoking `submitCheckpoint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitCheckpoint(owner util.Uint160, id string, data string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitCheckpoint", owner, id, data)
}

// SubmitCheckpointTransaction creates a transaction invoking `submitCheckpoint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitCheckpointTransaction(owner util.Uint160, id string, data string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitCheckpoint", owner, id, data)
}

// SubmitCheckpointUnsigned creates a transaction invoking `submitCheckpoint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitCheckpointUnsigned(owner util.Uint160, id string, data string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitCheckpoint", nil, owner, id, data)
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

// UpdateNodeMetadata creates a transaction invoking `updateNodeMetadata` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateNodeMetadata(id string, uri string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateNodeMetadata", id, uri)
}

// UpdateNodeMetadataTransaction creates a transaction invoking `updateNodeMetadata` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateNodeMetadataTransaction(id string, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateNodeMetadata", id, uri)
}

// UpdateNodeMetadataUnsigned creates a transaction invoking `updateNodeMetadata` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateNodeMetadataUnsigned(id string, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateNodeMetadata", nil, id, uri)
}

// UpdateNodeStatus creates a transaction invoking `updateNodeStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateNodeStatus(id string, status *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateNodeStatus", id, status)
}

// UpdateNodeStatusTransaction creates a transaction invoking `updateNodeStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateNodeStatusTransaction(id string, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateNodeStatus", id, status)
}

// UpdateNodeStatusUnsigned creates a transaction invoking `updateNodeStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateNodeStatusUnsigned(id string, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateNodeStatus", nil, id, status)
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

// itemToNoderegistryNode converts stack item into *NoderegistryNode.
func itemToNoderegistryNode(item stackitem.Item, err error) (*NoderegistryNode, error) {
	if err != nil {
		return nil, err
	}
	var res = new(NoderegistryNode)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of NoderegistryNode from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *NoderegistryNode) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 13 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Registrant, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Registrant: %w", err)
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
	res.Type, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Type: %w", err)
	}

	index++
	res.Config, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Config: %w", err)
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
	res.Metadata, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Metadata: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	if _, ok := arr[index].(stackitem.Null); !ok {
		res.Asset, err = arr[index].TryBytes()
	}
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	index++
	res.Checkpoint, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Checkpoint: %w", err)
	}

	return nil
}

// itemToNoderegistryCheckpoint converts stack item into *NoderegistryCheckpoint.
func itemToNoderegistryCheckpoint(item stackitem.Item, err error) (*NoderegistryCheckpoint, error) {
	if err != nil {
		return nil, err
	}
	var res = new(NoderegistryCheckpoint)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of NoderegistryCheckpoint from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *NoderegistryCheckpoint) FromStackItem(item stackitem.Item) error {
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
	res.NodeID, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field NodeID: %w", err)
	}

	index++
	res.Data, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Data: %w", err)
	}

	return nil
}

// itemToNoderegistryCollection converts stack item into *NoderegistryCollection.
func itemToNoderegistryCollection(item stackitem.Item, err error) (*NoderegistryCollection, error) {
	if err != nil {
		return nil, err
	}
	var res = new(NoderegistryCollection)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of NoderegistryCollection from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *NoderegistryCollection) FromStackItem(item stackitem.Item) error {
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
	res.Asset, err = func (item stackitem.Item) (util.Uint160, error) {
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
	res.URI, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field URI: %w", err)
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

// CollectionCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "CollectionCreated" name from the provided [result.ApplicationLog].
func CollectionCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CollectionCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CollectionCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CollectionCreated" {
				continue
			}
			event := new(CollectionCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CollectionCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CollectionCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *CollectionCreatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.URI, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field URI: %w", err)
	}

	return nil
}

// NodeRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "NodeRegistered" name from the provided [result.ApplicationLog].
func NodeRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*NodeRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NodeRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NodeRegistered" {
				continue
			}
			event := new(NodeRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NodeRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NodeRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *NodeRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 9 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field ID: %w", err)
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
	e.NodeType, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field NodeType: %w", err)
	}

	index++
	e.Config, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Config: %w", err)
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

	index++
	e.Metadata, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Metadata: %w", err)
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

// NodeStatusUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "NodeStatusUpdated" name from the provided [result.ApplicationLog].
func NodeStatusUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*NodeStatusUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NodeStatusUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NodeStatusUpdated" {
				continue
			}
			event := new(NodeStatusUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NodeStatusUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NodeStatusUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *NodeStatusUpdatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	return nil
}

// CheckpointCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "CheckpointCreated" name from the provided [result.ApplicationLog].
func CheckpointCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CheckpointCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CheckpointCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CheckpointCreated" {
				continue
			}
			event := new(CheckpointCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CheckpointCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CheckpointCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *CheckpointCreatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Data, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Data: %w", err)
	}

	return nil
}

// CheckpointSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "CheckpointSubmitted" name from the provided [result.ApplicationLog].
func CheckpointSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CheckpointSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CheckpointSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CheckpointSubmitted" {
				continue
			}
			event := new(CheckpointSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CheckpointSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CheckpointSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *CheckpointSubmittedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Data, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Data: %w", err)
	}

	return nil
}

// NodeMintedEventsFromApplicationLog retrieves a set of all emitted events
// with "NodeMinted" name from the provided [result.ApplicationLog].
func NodeMintedEventsFromApplicationLog(log *result.ApplicationLog) ([]*NodeMintedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NodeMintedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NodeMinted" {
				continue
			}
			event := new(NodeMintedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NodeMintedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NodeMintedEvent or
// returns an error if it's not possible to do to so.
func (e *NodeMintedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Asset, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	return nil
}

// NodeMetadataUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "NodeMetadataUpdated" name from the provided [result.ApplicationLog].
func NodeMetadataUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*NodeMetadataUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NodeMetadataUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NodeMetadataUpdated" {
				continue
			}
			event := new(NodeMetadataUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NodeMetadataUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NodeMetadataUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *NodeMetadataUpdatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.URI, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field URI: %w", err)
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
	e.ID, err = func (item stackitem.Item) (string, error) {
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
