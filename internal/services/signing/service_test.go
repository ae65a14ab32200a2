package signing_test

import (
	"crypto/ed25519"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/caveman99/CustomCrypto/internal/crypto/entropy"
	"github.com/caveman99/CustomCrypto/internal/crypto/xeddsa"
	"github.com/caveman99/CustomCrypto/internal/domain"
	"github.com/caveman99/CustomCrypto/internal/metrics"
	"github.com/caveman99/CustomCrypto/internal/services/signing"
)

// memStore is an in-memory IdentityStore.
type memStore struct {
	id   domain.Identity
	pass string
}

func (m *memStore) SaveIdentity(passphrase string, id domain.Identity) error {
	m.id, m.pass = id, passphrase
	return nil
}

func (m *memStore) LoadIdentity(passphrase string) (domain.Identity, error) {
	if passphrase != m.pass {
		return domain.Identity{}, errors.New("wrong passphrase")
	}
	return m.id, nil
}

func fixture(t *testing.T, opts ...xeddsa.Option) (*signing.Service, *metrics.Metrics, domain.Identity) {
	t.Helper()
	priv := domain.X25519Private{}
	require.NoError(t, entropy.Portable().FillRandom(priv[:]))
	pub, err := curveBase(priv)
	require.NoError(t, err)

	id := domain.Identity{XPriv: priv, XPub: pub}
	m := metrics.New()
	return signing.New(&memStore{id: id, pass: "pw"}, xeddsa.NewSigner(opts...), m), m, id
}

func TestSignVerify(t *testing.T) {
	svc, m, id := fixture(t)

	curvePub, pub, err := svc.PublicKeys("pw")
	require.NoError(t, err)
	require.Equal(t, id.XPub, curvePub)

	msg := []byte("hello")
	sig, err := svc.Sign("pw", msg)
	require.NoError(t, err)

	require.True(t, ed25519.Verify(pub[:], msg, sig[:]))
	require.True(t, svc.Verify(pub, msg, sig))
	require.False(t, svc.Verify(pub, []byte("hellp"), sig))

	require.Equal(t, 1.0, counterValue(t, m, "xeddsa_signatures_total"))
	n, err := testutil.GatherAndCount(m.Registry(), "xeddsa_verifications_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestVerifyCurveWithDirectDerivation(t *testing.T) {
	svc, _, id := fixture(t, xeddsa.WithDerivation(xeddsa.DeriveDirect))

	sig, err := svc.Sign("pw", []byte("spk"))
	require.NoError(t, err)
	require.True(t, svc.VerifyCurve(id.XPub, []byte("spk"), sig))
}

func TestSignFailures(t *testing.T) {
	svc, m, _ := fixture(t, xeddsa.WithRandom(entropy.FromReader(nil)))

	_, err := svc.Sign("pw", []byte("x"))
	require.ErrorIs(t, err, xeddsa.ErrSigningUnavailable)

	_, err = svc.Sign("nope", []byte("x"))
	require.Error(t, err)

	n, err := testutil.GatherAndCount(m.Registry(), "xeddsa_sign_failures_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestPublicKeysRequiresPassphrase(t *testing.T) {
	svc, _, _ := fixture(t)
	_, _, err := svc.PublicKeys("nope")
	require.Error(t, err)
}
