package types

// Identity holds your long-term X25519 key pair. The signing key is derived
// from XPriv on demand and never stored.
type Identity struct {
	XPub  X25519Public  `json:"xpub"`
	XPriv X25519Private `json:"xpriv"`
}
