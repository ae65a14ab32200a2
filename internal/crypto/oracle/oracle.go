// Package oracle defines the hash functions the signing code consumes.
//
// The signer never calls crypto/sha512 directly; it asks an Oracle. That
// keeps the hash swappable in tests (for example to simulate an unavailable
// hardware hash engine) while SHA2 is the only implementation that produces
// Ed25519-compatible signatures.
package oracle

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
)

// ErrUnavailable reports that the hash engine could not produce a digest.
var ErrUnavailable = errors.New("oracle: hash unavailable")

// Oracle computes fixed-length digests over the concatenation of parts.
type Oracle interface {
	Sum512(parts ...[]byte) ([64]byte, error)
	Sum256(parts ...[]byte) ([32]byte, error)
}

// SHA2 is the SHA-512 / SHA-256 oracle.
type SHA2 struct{}

// Sum512 returns SHA-512(parts[0] || parts[1] || ...).
func (SHA2) Sum512(parts ...[]byte) ([64]byte, error) {
	var out [64]byte
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	h.Sum(out[:0])
	return out, nil
}

// Sum256 returns SHA-256(parts[0] || parts[1] || ...).
func (SHA2) Sum256(parts ...[]byte) ([32]byte, error) {
	var out [32]byte
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	h.Sum(out[:0])
	return out, nil
}

// Compile-time assertion that SHA2 implements Oracle.
var _ Oracle = SHA2{}
