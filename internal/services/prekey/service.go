package prekey

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/cloudflare/cfssl/log"

	"github.com/caveman99/CustomCrypto/internal/crypto"
	"github.com/caveman99/CustomCrypto/internal/crypto/entropy"
	"github.com/caveman99/CustomCrypto/internal/crypto/xeddsa"
	"github.com/caveman99/CustomCrypto/internal/domain"
	"github.com/caveman99/CustomCrypto/internal/metrics"
	"github.com/caveman99/CustomCrypto/internal/util/memzero"
)

// keyTypeCurve25519 prefixes serialised public keys before signing.
const keyTypeCurve25519 = 0x05

var (
	// ErrNoSignedPreKey is returned when no current signed pre-key exists.
	ErrNoSignedPreKey = errors.New("no signed pre-key available")
	// ErrBadSignature is returned when a signed pre-key's signature does not verify.
	ErrBadSignature = errors.New("signed pre-key signature is invalid")
)

// Service generates, stores and checks signed pre-keys.
type Service struct {
	ids     domain.IdentityStore
	ps      domain.PreKeyStore
	random  entropy.Source
	signer  *xeddsa.Signer
	metrics *metrics.Metrics
	now     func() time.Time
}

// New returns a pre-key service. m may be nil.
func New(ids domain.IdentityStore, ps domain.PreKeyStore, random entropy.Source, m *metrics.Metrics) *Service {
	return &Service{
		ids:    ids,
		ps:     ps,
		random: random,
		signer: xeddsa.NewSigner(
			xeddsa.WithRandom(random),
			xeddsa.WithDerivation(xeddsa.DeriveDirect),
		),
		metrics: m,
		now:     time.Now,
	}
}

// GenerateSignedPreKey creates a pre-key pair, signs its public key with the
// identity key, stores it and marks it current.
func (s *Service) GenerateSignedPreKey(passphrase string) (domain.SignedPreKey, error) {
	id, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return domain.SignedPreKey{}, err
	}
	defer memzero.Zero(id.XPriv[:])

	priv, pub, err := crypto.GenerateX25519(s.random)
	if err != nil {
		return domain.SignedPreKey{}, fmt.Errorf("generate signed pre-key: %w", err)
	}
	defer memzero.Zero(priv[:])

	sig, err := s.signer.Sign(id.XPriv[:], id.XPub[:], serialize(pub))
	if err != nil {
		s.metrics.SignFailed("prekey")
		return domain.SignedPreKey{}, fmt.Errorf("sign pre-key: %w", err)
	}
	s.metrics.Signed()

	now := s.now().UTC()
	pair := domain.SignedPreKeyPair{
		SignedPreKey: domain.SignedPreKey{
			ID:         domain.SignedPreKeyID(fmt.Sprintf("spk-%d-%s", now.Unix(), hex.EncodeToString(pub[:4]))),
			Pub:        pub,
			Signature:  sig,
			CreatedUTC: now.Unix(),
		},
		Priv: priv,
	}
	if err := s.ps.SaveSignedPreKey(passphrase, pair); err != nil {
		return domain.SignedPreKey{}, err
	}
	if err := s.ps.SetCurrentSignedPreKeyID(pair.ID); err != nil {
		return domain.SignedPreKey{}, err
	}
	log.Infof("signed pre-key %s created", pair.ID)
	return pair.SignedPreKey, nil
}

// CurrentSignedPreKey returns the public half of the current signed pre-key.
func (s *Service) CurrentSignedPreKey() (domain.SignedPreKey, error) {
	id, ok, err := s.ps.CurrentSignedPreKeyID()
	if err != nil {
		return domain.SignedPreKey{}, err
	}
	if !ok {
		return domain.SignedPreKey{}, ErrNoSignedPreKey
	}
	spk, found, err := s.ps.LoadSignedPreKey(id)
	if err != nil {
		return domain.SignedPreKey{}, err
	}
	if !found {
		return domain.SignedPreKey{}, fmt.Errorf("%w: current id %s is missing", ErrNoSignedPreKey, id)
	}
	return spk, nil
}

// VerifySignedPreKey checks spk's signature against a peer's identity key.
func (s *Service) VerifySignedPreKey(identity domain.X25519Public, spk domain.SignedPreKey) error {
	ok := xeddsa.VerifyCurve(identity[:], serialize(spk.Pub), spk.Signature[:])
	s.metrics.Verified(ok)
	if !ok {
		log.Warningf("signed pre-key %s failed verification", spk.ID)
		return ErrBadSignature
	}
	return nil
}

// serialize returns the type-prefixed public key that gets signed.
func serialize(pub domain.X25519Public) []byte {
	out := make([]byte, 0, 1+len(pub))
	out = append(out, keyTypeCurve25519)
	return append(out, pub[:]...)
}

// Compile-time assertion that Service implements domain.PreKeyService.
var _ domain.PreKeyService = (*Service)(nil)
