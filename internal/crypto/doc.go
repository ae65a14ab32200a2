// Package crypto exposes the small helpers the app layers share.
//
// Contents
//
//   - X25519 key generation from an entropy.Source (GenerateX25519)
//   - Passphrase key-encryption keys via Argon2id (DeriveKEK, KDFParams)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - Base64 helpers for the CLI (B64, DecodeB64)
//
// # Notes
//
// Signing lives in the xeddsa subpackage and its arithmetic in field, scalar
// and edwards. Functions here return fixed-size array types defined in
// internal/domain; callers should wipe returned secrets with memzero when done.
package crypto
