package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPass = "Correct-Horse-42"

func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--home", home, "-p", testPass}, args...))
	err := execute(root)
	return out.String(), err
}

func field(t *testing.T, out, name string) string {
	t.Helper()
	m := regexp.MustCompile(`(?m)^` + name + `:\s+(\S+)$`).FindStringSubmatch(out)
	require.NotNil(t, m, "no %s in %q", name, out)
	return m[1]
}

func TestSignVerifyRoundTrip(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "init")
	require.NoError(t, err)
	require.Contains(t, out, "Fingerprint:")

	out, err = run(t, home, "pubkey")
	require.NoError(t, err)
	edPub := field(t, out, "ed25519")

	sig, err := run(t, home, "sign", "hello")
	require.NoError(t, err)
	sig = string(bytes.TrimSpace([]byte(sig)))

	out, err = run(t, home, "verify", "--pub", edPub, "--sig", sig, "hello")
	require.NoError(t, err)
	require.Contains(t, out, "signature OK")

	_, err = run(t, home, "verify", "--pub", edPub, "--sig", sig, "hellO")
	require.ErrorIs(t, err, errInvalidSignature)
}

func TestDirectDerivationVerifiesWithCurveKey(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "init")
	require.NoError(t, err)

	out, err := run(t, home, "pubkey")
	require.NoError(t, err)
	curvePub := field(t, out, "x25519")

	sig, err := run(t, home, "--derivation", "direct", "sign", "hello")
	require.NoError(t, err)
	sig = string(bytes.TrimSpace([]byte(sig)))

	_, err = run(t, home, "verify", "--curve-pub", curvePub, "--sig", sig, "hello")
	require.NoError(t, err)
}

func TestPreKeyGenerateAndVerify(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "init")
	require.NoError(t, err)
	out, err := run(t, home, "pubkey")
	require.NoError(t, err)
	identity := field(t, out, "x25519")

	out, err = run(t, home, "prekey", "generate")
	require.NoError(t, err)
	pub, sig := field(t, out, "pub"), field(t, out, "signature")

	shown, err := run(t, home, "prekey", "show")
	require.NoError(t, err)
	require.Equal(t, out, shown)

	out, err = run(t, home, "prekey", "verify", "--identity", identity, "--pub", pub, "--sig", sig)
	require.NoError(t, err)
	require.Contains(t, out, "signed pre-key OK")

	_, err = run(t, home, "prekey", "verify", "--identity", pub, "--pub", pub, "--sig", sig)
	require.Error(t, err)
}

func TestUsageErrors(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, home, "verify", "--sig", "AA==", "m")
	require.Error(t, err)

	_, err = run(t, home, "--derivation", "bogus", "fingerprint")
	require.Error(t, err)

	_, err = run(t, home, "sign")
	require.Error(t, err)
}

func TestMetricsWrittenWhenCommandFails(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "init")
	require.NoError(t, err)
	out, err := run(t, home, "pubkey")
	require.NoError(t, err)
	edPub := field(t, out, "ed25519")
	sig, err := run(t, home, "sign", "hello")
	require.NoError(t, err)
	sig = string(bytes.TrimSpace([]byte(sig)))

	mf := filepath.Join(t.TempDir(), "xeddsa.prom")
	_, err = run(t, home, "--metrics-file", mf, "verify", "--pub", edPub, "--sig", sig, "hellO")
	require.ErrorIs(t, err, errInvalidSignature)

	b, err := os.ReadFile(mf)
	require.NoError(t, err)
	require.Contains(t, string(b), `xeddsa_verifications_total{result="invalid"} 1`)
}

func TestMetricsWrittenWhenSigningFails(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "init")
	require.NoError(t, err)

	mf := filepath.Join(t.TempDir(), "xeddsa.prom")
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--home", home, "-p", "Wrong-Horse-42", "--metrics-file", mf, "sign", "hello"})
	require.Error(t, execute(root))

	b, err := os.ReadFile(mf)
	require.NoError(t, err)
	require.Contains(t, string(b), `xeddsa_sign_failures_total{reason="identity"} 1`)
}
