package identity

import (
	"fmt"
	"unicode"

	"github.com/cloudflare/cfssl/log"

	"github.com/caveman99/CustomCrypto/internal/crypto"
	"github.com/caveman99/CustomCrypto/internal/crypto/entropy"
	"github.com/caveman99/CustomCrypto/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages identity key creation and access using a backing store.
type Service struct {
	store  domain.IdentityStore
	random entropy.Source
}

// New returns an identity service backed by the given store, drawing keys from random.
func New(s domain.IdentityStore, random entropy.Source) *Service {
	return &Service{store: s, random: random}
}

// GenerateIdentity creates a new identity, saves it encrypted with the passphrase,
// and returns the identity plus a short fingerprint of the X25519 public key.
func (s *Service) GenerateIdentity(
	passphrase string,
) (domain.Identity, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.Identity{}, "", ErrWeakPassphrase
	}

	priv, pub, err := crypto.GenerateX25519(s.random)
	if err != nil {
		return domain.Identity{}, "", fmt.Errorf("generate identity key: %w", err)
	}

	id := domain.Identity{XPub: pub, XPriv: priv}
	if err := s.store.SaveIdentity(passphrase, id); err != nil {
		return domain.Identity{}, "", err
	}
	fp := fingerprint(id.XPub)
	log.Infof("identity created, fingerprint %s", fp)
	return id, fp, nil
}

// LoadIdentity decrypts and returns the local identity.
func (s *Service) LoadIdentity(passphrase string) (domain.Identity, error) {
	return s.store.LoadIdentity(passphrase)
}

// FingerprintIdentity returns a short fingerprint of the local X25519 public key.
func (s *Service) FingerprintIdentity(passphrase string) (domain.Fingerprint, error) {
	id, err := s.store.LoadIdentity(passphrase)
	if err != nil {
		return "", err
	}
	return fingerprint(id.XPub), nil
}

func fingerprint(pub domain.X25519Public) domain.Fingerprint {
	return domain.Fingerprint(crypto.Fingerprint(pub.Slice()))
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len([]rune(passphrase)) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
