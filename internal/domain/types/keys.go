package types

import "fmt"

// X25519Public is a Curve25519 (Montgomery u-coordinate) public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 private key.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// Ed25519Public is the RFC 8032 encoding of an Edwards public key. Keys
// converted from X25519 always have the sign bit clear.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Private is an Edwards signing scalar, reduced mod the group order.
// It is not an RFC 8032 seed.
type Ed25519Private [32]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }

// Signature is an Ed25519-compatible signature, R || s.
type Signature [64]byte

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s[:] }

// MustX25519Public copies b into an X25519Public and panics on a length mismatch.
func MustX25519Public(b []byte) X25519Public {
	if len(b) != 32 {
		panic(fmt.Errorf("X25519 public: want 32 bytes, got %d", len(b)))
	}
	var out X25519Public
	copy(out[:], b)
	return out
}

// MustEd25519Public copies b into an Ed25519Public and panics on a length mismatch.
func MustEd25519Public(b []byte) Ed25519Public {
	if len(b) != 32 {
		panic(fmt.Errorf("Ed25519 public: want 32 bytes, got %d", len(b)))
	}
	var out Ed25519Public
	copy(out[:], b)
	return out
}

// MustSignature copies b into a Signature and panics on a length mismatch.
func MustSignature(b []byte) Signature {
	if len(b) != 64 {
		panic(fmt.Errorf("signature: want 64 bytes, got %d", len(b)))
	}
	var out Signature
	copy(out[:], b)
	return out
}
