// Package signing signs messages with the identity's X25519 key through
// XEdDSA and verifies the resulting Ed25519-compatible signatures.
package signing
