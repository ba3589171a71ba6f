package brokenasset

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// Mint returns the same token ID for every call.
func Mint(owner interop.Hash160, collection, name, uri string) []byte {
	return []byte("broken-token")
}

func SetFrozen(tokenID []byte, frozen bool) {
	runtime.Log("setFrozen")
}

func UpdateURI(tokenID []byte, uri string) {
	runtime.Log("updateURI")
}

func Burn(tokenID []byte) {
	panic("asset service failure")
}
