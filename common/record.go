package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

var (
	// ErrRecordExists is thrown on attempt to create a record in an occupied slot.
	ErrRecordExists = "record already exists"
	// ErrRecordNotFound is thrown when the slot of the requested record is empty.
	ErrRecordNotFound = "record not found"
	// ErrFieldTooLong is thrown when a field value exceeds its declared bound.
	ErrFieldTooLong = "field exceeds declared length"
)

// RecordKey returns storage slot of the record with the given identifier.
// Identifier is hashed, so slots of one prefix have the same length
// regardless of the identifier size.
func RecordKey(prefix byte, id []byte) []byte {
	return append([]byte{prefix}, crypto.Ripemd160(id)...)
}

// RecordExists checks whether the slot is occupied.
func RecordExists(ctx storage.Context, key []byte) bool {
	return storage.Get(ctx, key) != nil
}

// CreateRecord puts serialized record into an empty slot. It panics with
// ErrRecordExists if the slot is occupied, so two registrations of the same
// identifier never both succeed.
func CreateRecord(ctx storage.Context, key []byte, rec any) {
	if storage.Get(ctx, key) != nil {
		panic(ErrRecordExists)
	}
	SetSerialized(ctx, key, rec)
}

// GetRecord returns deserialized record from the slot. It panics with
// ErrRecordNotFound if the slot is empty.
func GetRecord(ctx storage.Context, key []byte) any {
	data := storage.Get(ctx, key)
	if data == nil {
		panic(ErrRecordNotFound)
	}
	return std.Deserialize(data.([]byte))
}

// PutRecord overwrites existing record in place.
func PutRecord(ctx storage.Context, key []byte, rec any) {
	if storage.Get(ctx, key) == nil {
		panic(ErrRecordNotFound)
	}
	SetSerialized(ctx, key, rec)
}

// CloseRecord erases the record, the slot becomes available for CreateRecord.
func CloseRecord(ctx storage.Context, key []byte) {
	if storage.Get(ctx, key) == nil {
		panic(ErrRecordNotFound)
	}
	storage.Delete(ctx, key)
}

// CheckFieldLength panics with ErrFieldTooLong if value is longer than max
// bytes. Values are never truncated.
func CheckFieldLength(field, value string, max int) {
	if len(value) > max {
		panic(ErrFieldTooLong + ": " + field)
	}
}
