// Package nodeasset contains RPC wrappers for NetSepio Node Asset contract.
package nodeasset

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep11"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// TransferEvent represents "Transfer" event emitted by the contract.
type TransferEvent struct {
	From util.Uint160
	To util.Uint160
	Amount *big.Int
	TokenID []byte
}

// FrozenEvent represents "Frozen" event emitted by the contract.
type FrozenEvent struct {
	TokenID []byte
	Frozen bool
}

// URIUpdatedEvent represents "URIUpdated" event emitted by the contract.
type URIUpdatedEvent struct {
	TokenID []byte
	URI string
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep11.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep11.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep11.NonDivisibleReader
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep11.BaseWriter
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep11.NewNonDivisibleReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep11ndt = nep11.NewNonDivisible(actor, hash)
	return &Contract{ContractReader{nep11ndt.NonDivisibleReader, actor, hash}, nep11ndt.BaseWriter, actor, hash}
}

// IsFrozen invokes `isFrozen` method of contract.
func (c *ContractReader) IsFrozen(tokenID []byte) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isFrozen", tokenID))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Burn creates a transaction invoking `burn` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Burn(tokenID []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "burn", tokenID)
}

// BurnTransaction creates a transaction invoking `burn` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BurnTransaction(tokenID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "burn", tokenID)
}

// BurnUnsigned creates a transaction invoking `burn` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BurnUnsigned(tokenID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "burn", nil, tokenID)
}

// Mint creates a transaction invoking `mint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Mint(owner util.Uint160, collection string, name string, uri string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mint", owner, collection, name, uri)
}

// MintTransaction creates a transaction invoking `mint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintTransaction(owner util.Uint160, collection string, name string, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mint", owner, collection, name, uri)
}

// MintUnsigned creates a transaction invoking `mint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintUnsigned(owner util.Uint160, collection string, name string, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mint", nil, owner, collection, name, uri)
}

// SetFrozen creates a transaction invoking `setFrozen` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetFrozen(tokenID []byte, frozen bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setFrozen", tokenID, frozen)
}

// SetFrozenTransaction creates a transaction invoking `setFrozen` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetFrozenTransaction(tokenID []byte, frozen bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setFrozen", tokenID, frozen)
}

// SetFrozenUnsigned creates a transaction invoking `setFrozen` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetFrozenUnsigned(tokenID []byte, frozen bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setFrozen", nil, tokenID, frozen)
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

// UpdateURI creates a transaction invoking `updateURI` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateURI(tokenID []byte, uri string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateURI", tokenID, uri)
}

// UpdateURITransaction creates a transaction invoking `updateURI` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateURITransaction(tokenID []byte, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateURI", tokenID, uri)
}

// UpdateURIUnsigned creates a transaction invoking `updateURI` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateURIUnsigned(tokenID []byte, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateURI", nil, tokenID, uri)
}

// TransferEventsFromApplicationLog retrieves a set of all emitted events
// with "Transfer" name from the provided [result.ApplicationLog].
func TransferEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Transfer" {
				continue
			}
			event := new(TransferEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferEvent or
// returns an error if it's not possible to do to so.
func (e *TransferEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	if _, ok := arr[index].(stackitem.Null); !ok {
		e.From, err = func (item stackitem.Item) (util.Uint160, error) {
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
	}
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	if _, ok := arr[index].(stackitem.Null); !ok {
		e.To, err = func (item stackitem.Item) (util.Uint160, error) {
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
	}
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.TokenID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TokenID: %w", err)
	}

	return nil
}

// FrozenEventsFromApplicationLog retrieves a set of all emitted events
// with "Frozen" name from the provided [result.ApplicationLog].
func FrozenEventsFromApplicationLog(log *result.ApplicationLog) ([]*FrozenEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FrozenEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Frozen" {
				continue
			}
			event := new(FrozenEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FrozenEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FrozenEvent or
// returns an error if it's not possible to do to so.
func (e *FrozenEvent) FromStackItem(item *stackitem.Array) error {
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
	e.TokenID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TokenID: %w", err)
	}

	index++
	e.Frozen, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Frozen: %w", err)
	}

	return nil
}

// URIUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "URIUpdated" name from the provided [result.ApplicationLog].
func URIUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*URIUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*URIUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "URIUpdated" {
				continue
			}
			event := new(URIUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize URIUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to URIUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *URIUpdatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.TokenID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TokenID: %w", err)
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
