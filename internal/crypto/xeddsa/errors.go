package xeddsa

import "errors"

var (
	// ErrInvalidKeyEncoding is returned when a key or signature buffer has the
	// wrong length. Every 32-byte value is an acceptable key encoding.
	ErrInvalidKeyEncoding = errors.New("xeddsa: invalid key encoding")

	// ErrSigningUnavailable is returned when the random source or hash oracle
	// fails, or would have produced a degenerate nonce.
	ErrSigningUnavailable = errors.New("xeddsa: signing unavailable")

	// ErrKeyMismatch is returned by Sign when the supplied X25519 public key is
	// not the public key of the supplied private key.
	ErrKeyMismatch = errors.New("xeddsa: public key does not match private key")
)
