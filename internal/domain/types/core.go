package types

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// SignedPreKeyID uniquely identifies a signed pre-key.
type SignedPreKeyID string

// String returns the string form of the identifier.
func (id SignedPreKeyID) String() string { return string(id) }
