package tokenholder

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Receipt is the last received token.
type Receipt struct {
	Asset   interop.Hash160
	From    interop.Hash160
	TokenID []byte
	Data    any
}

// OnNEP11Payment accepts any node token unless data is "reject".
func OnNEP11Payment(from interop.Hash160, amount int, tokenID []byte, data any) {
	if amount != 1 {
		panic("wrong amount")
	}
	if data != nil && data.(string) == "reject" {
		panic("token rejected")
	}
	storage.Put(storage.GetContext(), "receipt", std.Serialize(Receipt{
		Asset:   runtime.GetCallingScriptHash(),
		From:    from,
		TokenID: tokenID,
		Data:    data,
	}))
}

// LastReceipt returns the last accepted token.
func LastReceipt() Receipt {
	val := storage.Get(storage.GetReadOnlyContext(), "receipt")
	if val == nil {
		return Receipt{}
	}
	return std.Deserialize(val.([]byte)).(Receipt)
}

func Verify() bool {
	return true
}
