package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

var (
	// ErrAdminWitnessFailed appears when the method must be called
	// by the admin of the deployment but was not.
	ErrAdminWitnessFailed = "admin witness check failed"
	// ErrOperatorWitnessFailed appears when the method must be called
	// by the operator (or the admin, if allowed) but was not.
	ErrOperatorWitnessFailed = "operator witness check failed"
	// ErrOwnerWitnessFailed appears when the method must be called
	// by an owner of some record but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using certain account but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrOwnerWitnessFailed)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

// IsValidAccount returns true if the provided address is a valid Uint160.
func IsValidAccount(acc interop.Hash160) bool {
	return acc != nil && len(acc) == interop.Hash160Len
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
