package issuer

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
)

func Mint(asset, owner interop.Hash160, name string) []byte {
	return contract.Call(asset, "mint", contract.All, owner, "test", name, "uri").([]byte)
}

func SetFrozen(asset interop.Hash160, tokenID []byte, frozen bool) {
	contract.Call(asset, "setFrozen", contract.All, tokenID, frozen)
}

func UpdateURI(asset interop.Hash160, tokenID []byte, uri string) {
	contract.Call(asset, "updateURI", contract.All, tokenID, uri)
}

func Burn(asset interop.Hash160, tokenID []byte) {
	contract.Call(asset, "burn", contract.All, tokenID)
}
