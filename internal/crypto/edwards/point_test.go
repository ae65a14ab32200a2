package edwards_test

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha512"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"

	"github.com/caveman99/CustomCrypto/internal/crypto/edwards"
	"github.com/caveman99/CustomCrypto/internal/crypto/scalar"
)

// basePointEncoding is the RFC 8032 encoding of B (y = 4/5, x even).
var basePointEncoding = append([]byte{0x58}, bytes.Repeat([]byte{0x66}, 31)...)

func scalarFromUint(t *testing.T, n byte) *scalar.Scalar {
	t.Helper()
	b := make([]byte, scalar.Size)
	b[0] = n
	s, err := new(scalar.Scalar).SetCanonicalBytes(b)
	require.NoError(t, err)
	return s
}

func randomScalar(t *testing.T, rng *rand.Rand) *scalar.Scalar {
	t.Helper()
	b := make([]byte, scalar.WideSize)
	rng.Read(b)
	s, err := new(scalar.Scalar).SetUniformBytes(b)
	require.NoError(t, err)
	return s
}

func TestGenerator(t *testing.T) {
	g := edwards.NewGeneratorPoint()
	require.True(t, g.OnCurve())
	require.Equal(t, basePointEncoding, g.Bytes())
	require.True(t, edwards.NewIdentityPoint().OnCurve())
}

func TestScalarBaseMultMatchesEd25519(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 32; i++ {
		seed := make([]byte, ed25519.SeedSize)
		rng.Read(seed)

		h := sha512.Sum512(seed)
		h[0] &= 248
		h[31] &= 127
		h[31] |= 64
		a, err := new(scalar.Scalar).SetBytesModOrder(h[:32])
		require.NoError(t, err)

		p := new(edwards.Point).ScalarBaseMult(a)
		require.True(t, p.OnCurve())

		want := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
		require.Equal(t, []byte(want), p.Bytes())
	}
}

func TestGroupLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g := edwards.NewGeneratorPoint()

	var dbl, sum edwards.Point
	require.Equal(t, 1, dbl.Double(g).Equal(sum.Add(g, g)))
	require.Equal(t, 1, dbl.Equal(new(edwards.Point).ScalarBaseMult(scalarFromUint(t, 2))))

	id := edwards.NewIdentityPoint()
	require.Equal(t, 1, sum.Add(g, id).Equal(g))
	require.Equal(t, 1, sum.Add(g, new(edwards.Point).Negate(g)).Equal(id))

	// (L-1)B + B is the identity.
	lm1 := new(edwards.Point).ScalarBaseMult(scalar.MinusOne())
	require.Equal(t, 1, sum.Add(lm1, g).Equal(id))

	for i := 0; i < 8; i++ {
		a := randomScalar(t, rng)
		b := randomScalar(t, rng)
		ab := new(scalar.Scalar).Add(a, b)

		aB := new(edwards.Point).ScalarBaseMult(a)
		bB := new(edwards.Point).ScalarBaseMult(b)
		require.Equal(t, 1, new(edwards.Point).Add(aB, bB).Equal(new(edwards.Point).ScalarBaseMult(ab)))

		// b(aB) = (ab)B
		prod := new(scalar.Scalar).Multiply(a, b)
		require.Equal(t, 1, new(edwards.Point).ScalarMult(b, aB).Equal(new(edwards.Point).ScalarBaseMult(prod)))
	}
}

func TestNegateFlipsSignBit(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 8; i++ {
		p := new(edwards.Point).ScalarBaseMult(randomScalar(t, rng))
		enc := p.Bytes()
		neg := new(edwards.Point).Negate(p).Bytes()

		require.Equal(t, enc[:31], neg[:31])
		require.Equal(t, enc[31]^0x80, neg[31])
	}
}

func TestMontgomeryToEdwards(t *testing.T) {
	got, err := edwards.MontgomeryToEdwards(curve25519.Basepoint)
	require.NoError(t, err)
	require.Equal(t, basePointEncoding, got[:])

	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 16; i++ {
		k := make([]byte, curve25519.ScalarSize)
		rng.Read(k)
		u, err := curve25519.X25519(k, curve25519.Basepoint)
		require.NoError(t, err)

		clamped := append([]byte(nil), k...)
		clamped[0] &= 248
		clamped[31] &= 127
		clamped[31] |= 64
		a, err := new(scalar.Scalar).SetBytesModOrder(clamped)
		require.NoError(t, err)
		want := new(edwards.Point).ScalarBaseMult(a).Bytes()
		want[31] &= 0x7f

		got, err := edwards.MontgomeryToEdwards(u)
		require.NoError(t, err)
		require.Equal(t, want, got[:])
	}

	_, err = edwards.MontgomeryToEdwards(make([]byte, 31))
	require.Error(t, err)
}
