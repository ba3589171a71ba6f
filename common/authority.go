package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Authority groups deployment-wide capabilities. Admin is fixed when the
// contract is deployed, Operator is delegated by the admin.
type Authority struct {
	Admin    interop.Hash160
	Operator interop.Hash160
}

const (
	adminKey     = "admin"
	authorityKey = "authority"
)

var (
	// ErrAuthorityExists is thrown on repeated authority initialization.
	ErrAuthorityExists = "authority is already initialized"
	// ErrAuthorityMissing is thrown when operator capability is requested
	// before the authority is initialized.
	ErrAuthorityMissing = "authority is not initialized"
	// ErrInvalidAdmin is thrown on deploy with malformed admin account.
	ErrInvalidAdmin = "invalid admin"
)

// InitAdmin saves admin account of the deployment. It must be called from
// _deploy only, admin never changes afterwards.
func InitAdmin(ctx storage.Context, admin interop.Hash160) {
	if !IsValidAccount(admin) {
		panic(ErrInvalidAdmin)
	}
	storage.Put(ctx, adminKey, admin)
}

// Admin returns admin account set on deploy.
func Admin(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

// InitAuthority creates authority singleton with admin being the operator.
// Requires admin witness.
func InitAuthority(ctx storage.Context) Authority {
	CheckAdmin(ctx)

	if storage.Get(ctx, authorityKey) != nil {
		panic(ErrAuthorityExists)
	}

	admin := Admin(ctx)
	a := Authority{
		Admin:    admin,
		Operator: admin,
	}
	SetSerialized(ctx, authorityKey, a)

	return a
}

// GetAuthority returns authority singleton. It panics if the authority
// has not been initialized yet.
func GetAuthority(ctx storage.Context) Authority {
	data := storage.Get(ctx, authorityKey)
	if data == nil {
		panic(ErrAuthorityMissing)
	}

	return std.Deserialize(data.([]byte)).(Authority)
}

// SetOperator delegates operator capability. Requires admin witness.
func SetOperator(ctx storage.Context, operator interop.Hash160) {
	CheckAdmin(ctx)

	if !IsValidAccount(operator) {
		panic("invalid operator")
	}

	a := GetAuthority(ctx)
	a.Operator = operator
	SetSerialized(ctx, authorityKey, a)
}

// CheckAdmin panics with ErrAdminWitnessFailed if the transaction is not
// signed by the admin.
func CheckAdmin(ctx storage.Context) {
	checkWitnessWithPanic(Admin(ctx), ErrAdminWitnessFailed)
}

// CheckOperator panics with ErrOperatorWitnessFailed if the transaction is
// not signed by the current operator.
func CheckOperator(ctx storage.Context) {
	a := GetAuthority(ctx)
	checkWitnessWithPanic(a.Operator, ErrOperatorWitnessFailed)
}

// CheckAdminOrOperator accepts either admin or operator witness. Admin is
// accepted even before the authority is initialized.
func CheckAdminOrOperator(ctx storage.Context) {
	if runtime.CheckWitness(Admin(ctx)) {
		return
	}

	data := storage.Get(ctx, authorityKey)
	if data != nil {
		a := std.Deserialize(data.([]byte)).(Authority)
		if runtime.CheckWitness(a.Operator) {
			return
		}
	}

	panic(ErrOperatorWitnessFailed)
}

// CheckAdminOrOwner verifies caller witness and then requires caller to be
// either the record owner or the admin.
func CheckAdminOrOwner(ctx storage.Context, caller, owner interop.Hash160) {
	CheckWitness(caller)

	if caller.Equals(owner) || caller.Equals(Admin(ctx)) {
		return
	}

	panic(ErrOwnerWitnessFailed)
}
