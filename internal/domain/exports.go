package domain

import (
	interfaces "github.com/caveman99/CustomCrypto/internal/domain/interfaces"
	types "github.com/caveman99/CustomCrypto/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint      = types.Fingerprint
	SignedPreKeyID   = types.SignedPreKeyID
	Identity         = types.Identity
	SignedPreKey     = types.SignedPreKey
	SignedPreKeyPair = types.SignedPreKeyPair
	X25519Public     = types.X25519Public
	X25519Private    = types.X25519Private
	Ed25519Public    = types.Ed25519Public
	Ed25519Private   = types.Ed25519Private
	Signature        = types.Signature
)

// Constructors re-exported from the types subpackage.
var (
	MustX25519Public  = types.MustX25519Public
	MustEd25519Public = types.MustEd25519Public
	MustSignature     = types.MustSignature
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityService = interfaces.IdentityService
	SigningService  = interfaces.SigningService
	PreKeyService   = interfaces.PreKeyService
	IdentityStore   = interfaces.IdentityStore
	PreKeyStore     = interfaces.PreKeyStore
)
