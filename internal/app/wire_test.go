package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caveman99/CustomCrypto/internal/app"
	"github.com/caveman99/CustomCrypto/internal/crypto"
	"github.com/caveman99/CustomCrypto/internal/crypto/xeddsa"
	"github.com/caveman99/CustomCrypto/internal/store"
)

func TestWireEndToEnd(t *testing.T) {
	home := filepath.Join(t.TempDir(), "keys")
	metricsFile := filepath.Join(t.TempDir(), "xeddsa.prom")

	w, err := app.NewWire(
		app.Config{Home: home, Derivation: xeddsa.DeriveDirect, MetricsFile: metricsFile},
		store.WithKDFParams(crypto.KDFParams{Time: 1, MemoryKiB: 64, Threads: 1}),
	)
	require.NoError(t, err)

	const pass = "Correct-Horse-42"
	id, _, err := w.Identity.GenerateIdentity(pass)
	require.NoError(t, err)

	sig, err := w.Signing.Sign(pass, []byte("msg"))
	require.NoError(t, err)
	require.True(t, w.Signing.VerifyCurve(id.XPub, []byte("msg"), sig))

	curvePub, pub, err := w.Signing.PublicKeys(pass)
	require.NoError(t, err)
	require.Equal(t, id.XPub, curvePub)
	require.True(t, w.Signing.Verify(pub, []byte("msg"), sig))

	spk, err := w.PreKeys.GenerateSignedPreKey(pass)
	require.NoError(t, err)
	require.NoError(t, w.PreKeys.VerifySignedPreKey(id.XPub, spk))

	require.NoError(t, w.Close())
	b, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	require.Contains(t, string(b), "xeddsa_signatures_total 2")
}

func TestWireRequiresHome(t *testing.T) {
	_, err := app.NewWire(app.Config{})
	require.Error(t, err)
}
