package xeddsa

import (
	"fmt"

	"github.com/caveman99/CustomCrypto/internal/crypto/entropy"
	"github.com/caveman99/CustomCrypto/internal/crypto/oracle"
)

// Derivation selects how the Edwards scalar is derived from an X25519 private key.
type Derivation int

const (
	// DeriveHashed hashes the X25519 private key as an Ed25519 seed.
	DeriveHashed Derivation = iota
	// DeriveDirect uses the clamped X25519 private key as the scalar.
	DeriveDirect
)

func (d Derivation) String() string {
	switch d {
	case DeriveHashed:
		return "hashed"
	case DeriveDirect:
		return "direct"
	default:
		return fmt.Sprintf("Derivation(%d)", int(d))
	}
}

// ParseDerivation parses the String form of a Derivation.
func ParseDerivation(s string) (Derivation, error) {
	switch s {
	case "hashed", "":
		return DeriveHashed, nil
	case "direct":
		return DeriveDirect, nil
	}
	return 0, fmt.Errorf("xeddsa: unknown derivation %q (want hashed or direct)", s)
}

// Option configures a Signer.
type Option func(*Signer)

// WithOracle sets the hash oracle. Only SHA-512 yields Ed25519-compatible
// signatures; other oracles are for testing.
func WithOracle(o oracle.Oracle) Option {
	return func(s *Signer) { s.oracle = o }
}

// WithRandom sets the random source used to hedge nonces.
func WithRandom(src entropy.Source) Option {
	return func(s *Signer) { s.random = src }
}

// WithDerivation sets the scalar derivation.
func WithDerivation(d Derivation) Option {
	return func(s *Signer) { s.derivation = d }
}
