package signing

import (
	"errors"

	"github.com/cloudflare/cfssl/log"

	"github.com/caveman99/CustomCrypto/internal/crypto/xeddsa"
	"github.com/caveman99/CustomCrypto/internal/domain"
	"github.com/caveman99/CustomCrypto/internal/metrics"
	"github.com/caveman99/CustomCrypto/internal/util/memzero"
)

// Service signs with the identity key held in an IdentityStore.
type Service struct {
	ids     domain.IdentityStore
	signer  *xeddsa.Signer
	metrics *metrics.Metrics
}

// New returns a signing service. m may be nil.
func New(ids domain.IdentityStore, signer *xeddsa.Signer, m *metrics.Metrics) *Service {
	return &Service{ids: ids, signer: signer, metrics: m}
}

// PublicKeys returns the identity's X25519 public key and the Edwards public
// key that verifies its signatures. The private key does not leave the service.
func (s *Service) PublicKeys(passphrase string) (domain.X25519Public, domain.Ed25519Public, error) {
	id, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return domain.X25519Public{}, domain.Ed25519Public{}, err
	}
	defer memzero.Zero(id.XPriv[:])

	edPriv, edPub, err := s.signer.ConvertKeys(id.XPriv[:])
	memzero.Zero(edPriv[:])
	if err != nil {
		return domain.X25519Public{}, domain.Ed25519Public{}, err
	}
	return id.XPub, edPub, nil
}

// Sign signs message with the identity key.
func (s *Service) Sign(passphrase string, message []byte) (domain.Signature, error) {
	id, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		s.metrics.SignFailed("identity")
		return domain.Signature{}, err
	}
	defer memzero.Zero(id.XPriv[:])

	sig, err := s.signer.Sign(id.XPriv[:], id.XPub[:], message)
	if err != nil {
		s.metrics.SignFailed(failureReason(err))
		log.Errorf("sign: %v", err)
		return domain.Signature{}, err
	}
	s.metrics.Signed()
	log.Debugf("signed %d-byte message with %s derivation", len(message), s.signer.Derivation())
	return sig, nil
}

// Verify reports whether sig is valid for message under an Edwards public key.
func (s *Service) Verify(pub domain.Ed25519Public, message []byte, sig domain.Signature) bool {
	ok := xeddsa.Verify(pub[:], message, sig[:])
	s.record(ok)
	return ok
}

// VerifyCurve reports whether sig is valid for message under an X25519
// public key. Only direct-derivation signatures verify this way.
func (s *Service) VerifyCurve(pub domain.X25519Public, message []byte, sig domain.Signature) bool {
	ok := xeddsa.VerifyCurve(pub[:], message, sig[:])
	s.record(ok)
	return ok
}

func (s *Service) record(ok bool) {
	s.metrics.Verified(ok)
	if !ok {
		log.Debugf("signature rejected")
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, xeddsa.ErrKeyMismatch):
		return "key_mismatch"
	case errors.Is(err, xeddsa.ErrInvalidKeyEncoding):
		return "invalid_key"
	case errors.Is(err, xeddsa.ErrSigningUnavailable):
		return "unavailable"
	default:
		return "other"
	}
}

// Compile-time assertion that Service implements domain.SigningService.
var _ domain.SigningService = (*Service)(nil)
