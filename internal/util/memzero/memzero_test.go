package memzero_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caveman99/CustomCrypto/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := bytes.Repeat([]byte{0xaa}, 48)
	memzero.Zero(b)
	require.Equal(t, make([]byte, 48), b)

	memzero.Zero(nil)
}

func TestInt64s(t *testing.T) {
	x := []int64{1, -2, 3 << 40}
	memzero.Int64s(x)
	require.Equal(t, []int64{0, 0, 0}, x)
}

func TestScopeWipesOnErrorPath(t *testing.T) {
	var a, b []byte
	var tracked [32]byte

	fail := func() error {
		var scope memzero.Scope
		defer scope.Wipe()

		a = scope.Alloc(16)
		b = scope.Alloc(64)
		copy(a, bytes.Repeat([]byte{1}, 16))
		copy(b, bytes.Repeat([]byte{2}, 64))
		tracked[0], tracked[31] = 7, 9
		scope.Track(tracked[:])
		return errors.New("boom")
	}

	require.Error(t, fail())
	require.Equal(t, make([]byte, 16), a)
	require.Equal(t, make([]byte, 64), b)
	require.Equal(t, [32]byte{}, tracked)
}

func TestScopeWipeTwice(t *testing.T) {
	var scope memzero.Scope
	buf := scope.Alloc(8)
	buf[0] = 1
	scope.Wipe()
	scope.Wipe()
	require.Zero(t, buf[0])
}
