package scalar

import (
	"crypto/subtle"
	"errors"

	"github.com/caveman99/CustomCrypto/internal/util/memzero"
)

// Size is the length of an encoded scalar.
const Size = 32

// WideSize is the length of a uniformly random input to SetUniformBytes.
const WideSize = 64

// order is L, little-endian.
var order = [Size]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// minusOne is L - 1, little-endian.
var minusOne = [Size]byte{
	0xec, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

var (
	errInvalidLength    = errors.New("scalar: invalid scalar length")
	errInvalidWideLen   = errors.New("scalar: invalid wide input length")
	errNonCanonicalForm = errors.New("scalar: value is not reduced modulo L")
)

// Scalar is an integer modulo L. The zero value is a valid zero scalar.
type Scalar struct {
	s [Size]byte
}

// Zero returns a new Scalar set to 0.
func Zero() *Scalar { return &Scalar{} }

// MinusOne returns a new Scalar set to L - 1.
func MinusOne() *Scalar { return &Scalar{s: minusOne} }

// Order returns the little-endian encoding of L.
func Order() [Size]byte { return order }

// Set sets s = x and returns s.
func (s *Scalar) Set(x *Scalar) *Scalar {
	*s = *x
	return s
}

// SetCanonicalBytes sets s = x, where x is a 32-byte little-endian encoding of
// a value below L. Any other input is rejected.
func (s *Scalar) SetCanonicalBytes(x []byte) (*Scalar, error) {
	if len(x) != Size {
		return nil, errInvalidLength
	}
	var b [Size]byte
	copy(b[:], x)
	if !isReduced(&b) {
		return nil, errNonCanonicalForm
	}
	s.s = b
	return s, nil
}

// SetBytesModOrder sets s = x mod L, where x is any 32-byte little-endian
// integer, such as a clamped private key.
func (s *Scalar) SetBytesModOrder(x []byte) (*Scalar, error) {
	if len(x) != Size {
		return nil, errInvalidLength
	}
	var wide [2 * Size]int64
	for i := 0; i < Size; i++ {
		wide[i] = int64(x[i])
	}
	reduce(&s.s, &wide)
	memzero.Int64s(wide[:])
	return s, nil
}

// SetUniformBytes sets s = x mod L, where x is a 64-byte little-endian
// integer, typically a SHA-512 digest.
func (s *Scalar) SetUniformBytes(x []byte) (*Scalar, error) {
	if len(x) != WideSize {
		return nil, errInvalidWideLen
	}
	var wide [2 * Size]int64
	for i := 0; i < WideSize; i++ {
		wide[i] = int64(x[i])
	}
	reduce(&s.s, &wide)
	memzero.Int64s(wide[:])
	return s, nil
}

// MulAdd sets s = a * b + c mod L and returns s.
func (s *Scalar) MulAdd(a, b, c *Scalar) *Scalar {
	s.s = MulAdd(&a.s, &b.s, &c.s)
	return s
}

// Multiply sets s = a * b mod L and returns s.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	return s.MulAdd(a, b, Zero())
}

// Add sets s = a + b mod L and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	var wide [2 * Size]int64
	for i := 0; i < Size; i++ {
		wide[i] = int64(a.s[i]) + int64(b.s[i])
	}
	reduce(&s.s, &wide)
	memzero.Int64s(wide[:])
	return s
}

// Negate sets s = -a mod L and returns s. The negation of zero is zero.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.s = Negate(&a.s)
	return s
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, s.s[:])
	return out
}

// Array returns the canonical encoding of s as a fixed-size array.
func (s *Scalar) Array() [Size]byte { return s.s }

// Equal returns 1 if s and t are equal, and 0 otherwise.
func (s *Scalar) Equal(t *Scalar) int {
	return subtle.ConstantTimeCompare(s.s[:], t.s[:])
}

// Select sets s to a if cond == 1, and to b if cond == 0, in constant time.
func (s *Scalar) Select(a, b *Scalar, cond int) *Scalar {
	var out [Size]byte
	copy(out[:], b.s[:])
	subtle.ConstantTimeCopy(cond, out[:], a.s[:])
	s.s = out
	return s
}

// IsZero returns 1 if s is zero, and 0 otherwise.
func (s *Scalar) IsZero() int {
	var zero [Size]byte
	return subtle.ConstantTimeCompare(s.s[:], zero[:])
}

// Wipe overwrites s with zero.
func (s *Scalar) Wipe() {
	memzero.Zero(s.s[:])
}

// MulAdd returns a * b + c mod L. Inputs need not be reduced; any 32-byte
// little-endian values are accepted.
func MulAdd(a, b, c *[Size]byte) [Size]byte {
	var wide [2 * Size]int64
	for i := 0; i < Size; i++ {
		wide[i] = int64(c[i])
	}
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			wide[i+j] += int64(a[i]) * int64(b[j])
		}
	}
	var out [Size]byte
	reduce(&out, &wide)
	memzero.Int64s(wide[:])
	return out
}

// Negate returns -a mod L. a may be any 32-byte little-endian value,
// including one at or above L; the result is always canonical, and the
// negation of zero (or of L) is zero.
func Negate(a *[Size]byte) [Size]byte {
	var wide [2 * Size]int64
	for i := 0; i < Size; i++ {
		wide[i] = int64(order[i]) - int64(a[i])
	}
	var out [Size]byte
	reduce(&out, &wide)
	memzero.Int64s(wide[:])
	return out
}

// reduce sets out = x mod L, where x = sum(x[i] * 2^(8i)). Columns may be
// negative or exceed a byte, up to a few million in magnitude.
func reduce(out *[Size]byte, x *[2 * Size]int64) {
	// Eliminate columns 63..32 using 2^256 = -16 * (L - 2^252) (mod L).
	// Only order[0..15] are non-zero, so column i touches columns i-32..i-13.
	for i := 2*Size - 1; i >= Size; i-- {
		var carry int64
		j := i - Size
		for ; j < i-12; j++ {
			x[j] += carry - 16*x[i]*int64(order[j-(i-Size)])
			carry = (x[j] + 128) >> 8
			x[j] -= carry << 8
		}
		x[j] += carry
		x[i] = 0
	}

	// Columns are now within a few units of [-128, 127]. Subtract
	// floor(x[31] / 16) * L to clear everything above bit 252.
	var carry int64
	for j := 0; j < Size; j++ {
		x[j] += carry - (x[31]>>4)*int64(order[j])
		carry = x[j] >> 8
		x[j] &= 255
	}

	// A negative remainder leaves carry == -1; add L back once.
	for j := 0; j < Size; j++ {
		x[j] -= carry * int64(order[j])
	}

	for i := 0; i < Size; i++ {
		x[i+1] += x[i] >> 8
		out[i] = byte(x[i] & 255)
	}
	x[Size] = 0

	if !isReduced(out) {
		panic("scalar: reduction produced a value outside [0, L)")
	}
}

// isReduced reports whether s < L, without branching on s.
func isReduced(s *[Size]byte) bool {
	var borrow int
	for i := 0; i < Size; i++ {
		d := int(s[i]) - int(order[i]) - borrow
		borrow = (d >> 8) & 1
	}
	return borrow == 1
}
