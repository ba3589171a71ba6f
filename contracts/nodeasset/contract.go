package nodeasset

import (
	"github.com/netsepio/netsepio-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Prefixes used for contract data storage.
const (
	// prefixTotalSupply contains total supply of minted tokens.
	prefixTotalSupply byte = 0x00
	// prefixBalance contains map from the owner to their balance.
	prefixBalance byte = 0x01
	// prefixAccountToken contains map from (owner + token key) to token ID,
	// where token key = hash160(token ID).
	prefixAccountToken byte = 0x02
	// prefixCounter contains the number of tokens ever minted, it is a part
	// of token ID derivation.
	prefixCounter byte = 0x03
	// prefixToken contains map from token key to TokenState.
	prefixToken byte = 0x21
)

// Values constraints.
const (
	maxCollectionLength = 100
	maxNameLength       = 100
	maxURILength        = 200
)

// Error messages.
const (
	ErrTokenNotFound = "token not found"
	ErrFrozen        = "token is frozen"
	ErrNotIssuer     = "token is not issued by the caller"
	ErrNotContract   = "tokens are minted by contracts only"
)

// TokenState is a type minted tokens are saved to.
type TokenState struct {
	ID         []byte
	Owner      interop.Hash160
	Issuer     interop.Hash160
	Collection string
	Name       string
	URI        string
	Frozen     bool
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	ctx := storage.GetContext()
	storage.Put(ctx, []byte{prefixTotalSupply}, 0)
	storage.Put(ctx, []byte{prefixCounter}, 0)

	runtime.Log("nodeasset contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccess)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("nodeasset contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Symbol returns token symbol.
func Symbol() string {
	return "NODE"
}

// Decimals returns token decimals, tokens are non-divisible.
func Decimals() int {
	return 0
}

// TotalSupply returns the number of existing tokens.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, []byte{prefixTotalSupply}).(int)
}

// OwnerOf returns the owner of the specified token.
func OwnerOf(tokenID []byte) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	ts := getTokenState(ctx, tokenID)
	return ts.Owner
}

// Properties returns properties of the specified token.
func Properties(tokenID []byte) map[string]any {
	ctx := storage.GetReadOnlyContext()
	ts := getTokenState(ctx, tokenID)
	return map[string]any{
		"name":       ts.Name,
		"collection": ts.Collection,
		"uri":        ts.URI,
		"frozen":     ts.Frozen,
	}
}

// IsFrozen checks whether the token is frozen (non-transferable and
// non-burnable).
func IsFrozen(tokenID []byte) bool {
	ctx := storage.GetReadOnlyContext()
	ts := getTokenState(ctx, tokenID)
	return ts.Frozen
}

// BalanceOf returns the number of tokens owned by the specified owner.
func BalanceOf(owner interop.Hash160) int {
	if !common.IsValidAccount(owner) {
		panic(`invalid owner`)
	}
	ctx := storage.GetReadOnlyContext()
	balance := storage.Get(ctx, append([]byte{prefixBalance}, owner...))
	if balance == nil {
		return 0
	}
	return balance.(int)
}

// Tokens returns iterator over IDs of all existing tokens.
func Tokens() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{prefixToken}, storage.ValuesOnly|storage.DeserializeValues|storage.PickField0)
}

// TokensOf returns iterator over IDs of tokens owned by the specified owner.
func TokensOf(owner interop.Hash160) iterator.Iterator {
	if !common.IsValidAccount(owner) {
		panic(`invalid owner`)
	}
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{prefixAccountToken}, owner...), storage.ValuesOnly)
}

// Transfer transfers the token to a new owner. Frozen tokens can't be
// transferred.
func Transfer(to interop.Hash160, tokenID []byte, data any) bool {
	if !common.IsValidAccount(to) {
		panic(`invalid receiver`)
	}
	ctx := storage.GetContext()
	ts := getTokenState(ctx, tokenID)
	from := ts.Owner
	if !runtime.CheckWitness(from) {
		return false
	}
	if ts.Frozen {
		panic(ErrFrozen)
	}
	if !from.Equals(to) {
		ts.Owner = to
		putTokenState(ctx, ts)

		updateBalance(ctx, tokenID, from, -1)
		updateBalance(ctx, tokenID, to, +1)
	}
	postTransfer(from, to, tokenID, data)
	return true
}

// Mint creates a new frozen token owned by owner and returns its ID. The
// calling contract becomes the token issuer, only the issuer can unfreeze,
// update and burn the token.
func Mint(owner interop.Hash160, collection, name, uri string) []byte {
	issuer := runtime.GetCallingScriptHash()
	if management.GetContract(issuer) == nil {
		panic(ErrNotContract)
	}
	if !common.IsValidAccount(owner) {
		panic(`invalid owner`)
	}
	common.CheckFieldLength("collection", collection, maxCollectionLength)
	common.CheckFieldLength("name", name, maxNameLength)
	common.CheckFieldLength("uri", uri, maxURILength)

	ctx := storage.GetContext()
	counterKey := []byte{prefixCounter}
	n := storage.Get(ctx, counterKey).(int) + 1
	storage.Put(ctx, counterKey, n)

	tokenID := []byte(crypto.Sha256(append(append([]byte{}, issuer...), []byte(std.Itoa(n, 10))...)))

	putTokenState(ctx, TokenState{
		ID:         tokenID,
		Owner:      owner,
		Issuer:     issuer,
		Collection: collection,
		Name:       name,
		URI:        uri,
		Frozen:     true,
	})
	updateBalance(ctx, tokenID, owner, +1)
	updateTotalSupply(ctx, +1)

	var from interop.Hash160
	postTransfer(from, owner, tokenID, nil)
	runtime.Notify("Frozen", tokenID, true)

	return tokenID
}

// SetFrozen freezes or unfreezes the token. It can be invoked by the issuer
// only.
func SetFrozen(tokenID []byte, frozen bool) {
	ctx := storage.GetContext()
	ts := getTokenState(ctx, tokenID)
	checkIssuer(ts)

	ts.Frozen = frozen
	putTokenState(ctx, ts)

	runtime.Notify("Frozen", tokenID, frozen)
}

// UpdateURI replaces URI of the token. It can be invoked by the issuer only.
func UpdateURI(tokenID []byte, uri string) {
	common.CheckFieldLength("uri", uri, maxURILength)

	ctx := storage.GetContext()
	ts := getTokenState(ctx, tokenID)
	checkIssuer(ts)

	ts.URI = uri
	putTokenState(ctx, ts)

	runtime.Notify("URIUpdated", tokenID, uri)
}

// Burn destroys the token. It can be invoked by the issuer only and the token
// must be unfrozen first.
func Burn(tokenID []byte) {
	ctx := storage.GetContext()
	ts := getTokenState(ctx, tokenID)
	checkIssuer(ts)

	if ts.Frozen {
		panic(ErrFrozen)
	}

	storage.Delete(ctx, append([]byte{prefixToken}, getTokenKey(tokenID)...))
	updateBalance(ctx, tokenID, ts.Owner, -1)
	updateTotalSupply(ctx, -1)

	var to interop.Hash160
	postTransfer(ts.Owner, to, tokenID, nil)
}

func checkIssuer(ts TokenState) {
	if !runtime.GetCallingScriptHash().Equals(ts.Issuer) {
		panic(ErrNotIssuer)
	}
}

// updateBalance updates account's balance and account's tokens.
func updateBalance(ctx storage.Context, tokenID []byte, acc interop.Hash160, diff int) {
	balanceKey := append([]byte{prefixBalance}, acc...)
	var balance int
	if b := storage.Get(ctx, balanceKey); b != nil {
		balance = b.(int)
	}
	balance += diff
	if balance == 0 {
		storage.Delete(ctx, balanceKey)
	} else {
		storage.Put(ctx, balanceKey, balance)
	}

	tokenKey := getTokenKey(tokenID)
	accountTokenKey := append(append([]byte{prefixAccountToken}, acc...), tokenKey...)
	if diff < 0 {
		storage.Delete(ctx, accountTokenKey)
	} else {
		storage.Put(ctx, accountTokenKey, tokenID)
	}
}

// updateTotalSupply adds the specified diff to the total supply.
func updateTotalSupply(ctx storage.Context, diff int) {
	tsKey := []byte{prefixTotalSupply}
	ts := storage.Get(ctx, tsKey).(int)
	storage.Put(ctx, tsKey, ts+diff)
}

// postTransfer sends Transfer notification to the network and calls onNEP11Payment
// method.
func postTransfer(from, to interop.Hash160, tokenID []byte, data any) {
	runtime.Notify("Transfer", from, to, 1, tokenID)
	if to != nil && management.GetContract(to) != nil {
		contract.Call(to, "onNEP11Payment", contract.All, from, 1, tokenID, data)
	}
}

// getTokenKey computes hash160 from the given tokenID.
func getTokenKey(tokenID []byte) []byte {
	return crypto.Ripemd160(tokenID)
}

func getTokenState(ctx storage.Context, tokenID []byte) TokenState {
	data := storage.Get(ctx, append([]byte{prefixToken}, getTokenKey(tokenID)...))
	if data == nil {
		panic(ErrTokenNotFound)
	}
	return std.Deserialize(data.([]byte)).(TokenState)
}

func putTokenState(ctx storage.Context, ts TokenState) {
	common.SetSerialized(ctx, append([]byte{prefixToken}, getTokenKey(ts.ID)...), ts)
}
