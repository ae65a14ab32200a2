package interfaces

import domaintypes "github.com/caveman99/CustomCrypto/internal/domain/types"

// IdentityStore persists your long-term identity keys.
type IdentityStore interface {
	SaveIdentity(passphrase string, id domaintypes.Identity) error
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
}

// PreKeyStore manages signed pre-keys on disk. Public halves are readable
// without a passphrase; private halves are sealed with one.
type PreKeyStore interface {
	SaveSignedPreKey(passphrase string, pair domaintypes.SignedPreKeyPair) error
	LoadSignedPreKey(id domaintypes.SignedPreKeyID) (domaintypes.SignedPreKey, bool, error)
	LoadSignedPreKeyPair(
		passphrase string,
		id domaintypes.SignedPreKeyID,
	) (domaintypes.SignedPreKeyPair, bool, error)
	ListSignedPreKeys() ([]domaintypes.SignedPreKey, error)

	// Current signed pre-key selection
	SetCurrentSignedPreKeyID(id domaintypes.SignedPreKeyID) error
	CurrentSignedPreKeyID() (domaintypes.SignedPreKeyID, bool, error)
}
