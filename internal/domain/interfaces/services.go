package interfaces

import domaintypes "github.com/caveman99/CustomCrypto/internal/domain/types"

// IdentityService creates, retrieves, and inspects your identity keys.
type IdentityService interface {
	GenerateIdentity(passphrase string) (
		domaintypes.Identity,
		domaintypes.Fingerprint,
		error,
	)
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
	FingerprintIdentity(passphrase string) (domaintypes.Fingerprint, error)
}

// SigningService signs with the identity key and verifies signatures.
type SigningService interface {
	PublicKeys(passphrase string) (domaintypes.X25519Public, domaintypes.Ed25519Public, error)
	Sign(passphrase string, message []byte) (domaintypes.Signature, error)
	Verify(pub domaintypes.Ed25519Public, message []byte, sig domaintypes.Signature) bool
	VerifyCurve(pub domaintypes.X25519Public, message []byte, sig domaintypes.Signature) bool
}

// PreKeyService generates signed pre-keys and checks peers' ones.
type PreKeyService interface {
	GenerateSignedPreKey(passphrase string) (domaintypes.SignedPreKey, error)
	CurrentSignedPreKey() (domaintypes.SignedPreKey, error)
	VerifySignedPreKey(identity domaintypes.X25519Public, spk domaintypes.SignedPreKey) error
}
