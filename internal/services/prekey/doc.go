// Package prekey manages signed pre-keys.
//
// A signed pre-key is an X25519 key pair whose public key is signed by the
// identity's X25519 key through XEdDSA with direct derivation, so a peer
// holding only the identity's X25519 public key can check it.
package prekey
