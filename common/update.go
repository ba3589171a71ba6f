package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrUpdateAccess is thrown on contract update attempt by anyone but
// the committee.
const ErrUpdateAccess = "only committee can update contract"

// HasUpdateAccess returns true if contract can be updated.
func HasUpdateAccess() bool {
	return runtime.CheckWitness(CommitteeAddress())
}

// CommitteeAddress returns (N/2 + 1) multisignature account of the
// committee.
func CommitteeAddress() []byte {
	committee := neo.GetCommittee()
	l := len(committee)
	keys := []interop.PublicKey{}
	for _, key := range committee {
		keys = append(keys, key)
	}

	return contract.CreateMultisigAccount(l-(l-1)/2, keys)
}
