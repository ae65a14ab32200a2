// Package identity manages creation, encryption and loading of the local identity.
//
// It enforces passphrase policy, generates the X25519 key pair, and persists
// it via the domain.IdentityStore. The signing key is not generated here: it
// is derived from the X25519 private key when needed (see services/signing).
package identity
