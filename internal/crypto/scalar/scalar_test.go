package scalar_test

import (
	"bytes"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caveman99/CustomCrypto/internal/crypto/scalar"
)

var bigL, _ = new(big.Int).SetString(
	"7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

func leToBig(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}

func bigToLE(n *big.Int) [scalar.Size]byte {
	var out [scalar.Size]byte
	be := n.Bytes()
	for i := range be {
		out[i] = be[len(be)-1-i]
	}
	return out
}

func randomReduced(rng *rand.Rand) (*scalar.Scalar, *big.Int) {
	n := new(big.Int).Rand(rng, bigL)
	b := bigToLE(n)
	s, err := new(scalar.Scalar).SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}
	return s, n
}

func TestOrderConstant(t *testing.T) {
	l := scalar.Order()
	require.Equal(t, 0, leToBig(l[:]).Cmp(bigL))

	minusOne := scalar.MinusOne().Array()
	require.Equal(t, 0, leToBig(minusOne[:]).Cmp(new(big.Int).Sub(bigL, big.NewInt(1))))
}

func TestMulAddMatchesBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a, aa := randomReduced(rng)
		b, bb := randomReduced(rng)
		c, cc := randomReduced(rng)

		want := new(big.Int).Mul(aa, bb)
		want.Add(want, cc).Mod(want, bigL)

		got := new(scalar.Scalar).MulAdd(a, b, c)
		require.Equal(t, bigToLE(want), got.Array())
	}
}

func TestMulAddAcceptsUnreducedInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		var a, b, c [scalar.Size]byte
		rng.Read(a[:])
		rng.Read(b[:])
		rng.Read(c[:])
		if i == 0 {
			a = [scalar.Size]byte{}
			for j := range b {
				b[j], c[j] = 0xff, 0xff
			}
		}
		if i == 1 {
			for j := range a {
				a[j], b[j], c[j] = 0xff, 0xff, 0xff
			}
		}

		want := new(big.Int).Mul(leToBig(a[:]), leToBig(b[:]))
		want.Add(want, leToBig(c[:])).Mod(want, bigL)

		require.Equal(t, bigToLE(want), scalar.MulAdd(&a, &b, &c))
	}
}

func TestMulAddEdgeCases(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b, _ := randomReduced(rng)
	c, _ := randomReduced(rng)

	t.Run("zero multiplicand yields c", func(t *testing.T) {
		got := new(scalar.Scalar).MulAdd(scalar.Zero(), b, c)
		require.Equal(t, 1, got.Equal(c))
	})

	t.Run("unreduced c is reduced when a is zero", func(t *testing.T) {
		var zero, cc [scalar.Size]byte
		cc = scalar.Order()
		cc[0]++ // L + 1
		got := scalar.MulAdd(&zero, &zero, &cc)
		require.Equal(t, [scalar.Size]byte{1}, got)
	})

	t.Run("exact multiple of L yields zero", func(t *testing.T) {
		one := [scalar.Size]byte{1}
		minusOne := scalar.MinusOne().Array()
		got := scalar.MulAdd(&one, &one, &minusOne)
		require.Equal(t, [scalar.Size]byte{}, got)

		// (L-1) * (L-1) + (L-1) = (L-1) * L
		got = scalar.MulAdd(&minusOne, &minusOne, &minusOne)
		require.Equal(t, [scalar.Size]byte{}, got)
	})
}

func TestNegate(t *testing.T) {
	require.Equal(t, [scalar.Size]byte{}, new(scalar.Scalar).Negate(scalar.Zero()).Array(),
		"negating zero must yield ZERO, not L")

	one, err := new(scalar.Scalar).SetCanonicalBytes([]byte{1, 31: 0})
	require.NoError(t, err)
	require.Equal(t, 1, new(scalar.Scalar).Negate(one).Equal(scalar.MinusOne()))

	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 500; i++ {
		a, aa := randomReduced(rng)
		neg := new(scalar.Scalar).Negate(a)
		want := new(big.Int).Neg(aa)
		want.Mod(want, bigL)
		require.Equal(t, bigToLE(want), neg.Array())

		require.Equal(t, 1, new(scalar.Scalar).Negate(neg).Equal(a))
		require.Equal(t, 1, new(scalar.Scalar).Add(a, neg).IsZero())
	}
}

func TestNegateUnreducedBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		var a [scalar.Size]byte
		rng.Read(a[:])
		want := new(big.Int).Neg(leToBig(a[:]))
		want.Mod(want, bigL)
		require.Equal(t, bigToLE(want), scalar.Negate(&a))
	}
}

func TestNegateBoundaryInputs(t *testing.T) {
	ones := [scalar.Size]byte{}
	for i := range ones {
		ones[i] = 0xff
	}
	top := [scalar.Size]byte{31: 0x80}
	for _, a := range [][scalar.Size]byte{{}, scalar.Order(), ones, top, {0: 1}} {
		want := new(big.Int).Neg(leToBig(a[:]))
		want.Mod(want, bigL)
		require.Equal(t, bigToLE(want), scalar.Negate(&a), "%x", a)
	}
	order := scalar.Order()
	require.Equal(t, [scalar.Size]byte{}, scalar.Negate(&order))
}

func TestSetUniformBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	inputs := [][]byte{bytes.Repeat([]byte{0xff}, scalar.WideSize), make([]byte, scalar.WideSize)}
	for i := 0; i < 500; i++ {
		b := make([]byte, scalar.WideSize)
		rng.Read(b)
		inputs = append(inputs, b)
	}
	for _, in := range inputs {
		s, err := new(scalar.Scalar).SetUniformBytes(in)
		require.NoError(t, err)
		want := new(big.Int).Mod(leToBig(in), bigL)
		require.Equal(t, bigToLE(want), s.Array())
	}

	_, err := new(scalar.Scalar).SetUniformBytes(make([]byte, 32))
	require.Error(t, err)
}

func TestSetBytesModOrder(t *testing.T) {
	l := scalar.Order()
	s, err := new(scalar.Scalar).SetBytesModOrder(l[:])
	require.NoError(t, err)
	require.Equal(t, 1, s.IsZero())

	all := bytes.Repeat([]byte{0xff}, scalar.Size)
	s, err = new(scalar.Scalar).SetBytesModOrder(all)
	require.NoError(t, err)
	require.Equal(t, bigToLE(new(big.Int).Mod(leToBig(all), bigL)), s.Array())
}

func TestSetCanonicalBytes(t *testing.T) {
	l := scalar.Order()
	_, err := new(scalar.Scalar).SetCanonicalBytes(l[:])
	require.Error(t, err, "L itself is not canonical")

	minusOne := scalar.MinusOne().Array()
	s, err := new(scalar.Scalar).SetCanonicalBytes(minusOne[:])
	require.NoError(t, err)
	require.Equal(t, minusOne[:], s.Bytes())

	_, err = new(scalar.Scalar).SetCanonicalBytes(make([]byte, 31))
	require.Error(t, err)
}

func TestWipe(t *testing.T) {
	s := scalar.MinusOne()
	s.Wipe()
	require.Equal(t, 1, s.IsZero())
}
