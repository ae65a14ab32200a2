// Package store provides file-based persistence for the identity and signed
// pre-keys.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Stored files live under the configured home directory.
//
// Secrets are sealed in a versioned envelope: version 2 derives the key with
// Argon2id, version 1 (read only) with scrypt. Both use ChaCha20-Poly1305
// with a fresh salt per seal and the salt as associated data.
//
// The package includes stores for:
//   - Identity keys (IdentityFileStore)
//   - Signed pre-keys (PreKeyFileStore)
package store
