package tests

import (
	"math/rand"
	"strings"
)

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

// longString returns a string of n bytes to exceed field bounds.
func longString(n int) string {
	return strings.Repeat("x", n)
}
