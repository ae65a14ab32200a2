// Package xeddsa signs messages with Curve25519 (X25519) private keys and
// produces signatures that any RFC 8032 Ed25519 verifier accepts.
//
// # Key conversion
//
// ConvertKeys turns a 32-byte X25519 private key into an Edwards scalar a and
// public point A = aB. The Montgomery form keeps only the u-coordinate, so the
// sign of the Edwards x-coordinate is lost; XEdDSA fixes it to zero. When A
// comes out "negative" the scalar is negated (a' = -a mod L) and the sign bit of
// A cleared, which keeps a' and A' consistent.
//
// Two derivations of a are supported:
//
//   - DeriveHashed (default) treats the X25519 key as an Ed25519 seed:
//     a = clamp(SHA-512(seed)[:32]), exactly as Ed25519 key generation does.
//   - DeriveDirect uses the clamped X25519 scalar itself, as in Signal's
//     XEdDSA. A is then the birational image of the X25519 public key, so
//     VerifyCurve can check signatures from the X25519 public key alone.
//
// # Signing
//
// Sign derives a hedged nonce r = H(0xFE || 0xFF*31 || k || M || Z) mod L, where
// k is the X25519 private key and Z 64 fresh random bytes, then computes
// R = rB, h = H(R || A || M) mod L and s = r + h*a mod L. The signature is R || s.
//
// Because Z is fresh on every call, signing the same message twice yields
// different signatures; both verify. This is deliberate: a fault or a repeated
// RNG output can no longer force two signatures to share a nonce. A missing
// random source or hash oracle fails the call with ErrSigningUnavailable; Sign
// never falls back to a deterministic or zero nonce.
//
// # Memory
//
// Every intermediate holding key material is wiped before Sign or
// ConvertKeys returns, on success and on error. The returned private scalar
// belongs to the caller.
package xeddsa
