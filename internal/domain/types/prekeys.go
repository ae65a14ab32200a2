package types

// SignedPreKey is the public half of a pre-key together with the identity's
// signature over its public key.
type SignedPreKey struct {
	ID         SignedPreKeyID `json:"id"`
	Pub        X25519Public   `json:"pub"`
	Signature  Signature      `json:"signature"`
	CreatedUTC int64          `json:"created_utc"`
}

// SignedPreKeyPair is a SignedPreKey plus its private key, as kept locally.
type SignedPreKeyPair struct {
	SignedPreKey
	Priv X25519Private `json:"-"`
}
