package edwards

import (
	"errors"
	"math/big"

	"github.com/caveman99/CustomCrypto/internal/crypto/field"
	"github.com/caveman99/CustomCrypto/internal/crypto/scalar"
	"github.com/caveman99/CustomCrypto/internal/util/memzero"
)

// PointSize is the length of an encoded point.
const PointSize = 32

// d is the curve constant -121665/121666.
var d = func() *field.Element {
	num := new(field.Element).SetUint64(121665)
	num.Negate(num)
	den := new(field.Element).SetUint64(121666)
	den.Invert(den)
	return num.Multiply(num, den)
}()

var d2 = new(field.Element).Add(d, d)

// Base point coordinates from RFC 8032, section 5.1.
var (
	generatorX = mustDecimal("15112221349535400772501151409588531511454012693041857206046113283949847762202")
	generatorY = mustDecimal("46316835694926478169428394003475163141307993866256225615783033603165251855960")
)

var errInvalidMontgomery = errors.New("edwards: invalid Montgomery u-coordinate length")

// Point is a point on the curve. The zero value is NOT valid; use
// NewIdentityPoint or NewGeneratorPoint.
type Point struct {
	x, y, z, t field.Element

	// Equal points can have different representations, so == is disallowed.
	_ [0]func()
}

// NewIdentityPoint returns a new Point set to the identity.
func NewIdentityPoint() *Point {
	return (&Point{}).Identity()
}

// NewGeneratorPoint returns a new Point set to the base point B.
func NewGeneratorPoint() *Point {
	return (&Point{}).Generator()
}

// Identity sets v to the neutral element (0, 1) and returns v.
func (v *Point) Identity() *Point {
	v.x.Zero()
	v.y.One()
	v.z.One()
	v.t.Zero()
	return v
}

// Generator sets v to the base point B and returns v.
func (v *Point) Generator() *Point {
	v.x.Set(generatorX)
	v.y.Set(generatorY)
	v.z.One()
	v.t.Multiply(generatorX, generatorY)
	return v
}

// Set sets v = u and returns v.
func (v *Point) Set(u *Point) *Point {
	*v = *u
	return v
}

// Add sets v = p + q and returns v.
func (v *Point) Add(p, q *Point) *Point {
	var a, b, c, zz, e, f, g, h, t0, t1 field.Element

	t0.Subtract(&p.y, &p.x)
	t1.Subtract(&q.y, &q.x)
	a.Multiply(&t0, &t1)

	t0.Add(&p.y, &p.x)
	t1.Add(&q.y, &q.x)
	b.Multiply(&t0, &t1)

	c.Multiply(&p.t, &q.t)
	c.Multiply(&c, d2)

	zz.Multiply(&p.z, &q.z)
	zz.Add(&zz, &zz)

	e.Subtract(&b, &a)
	f.Subtract(&zz, &c)
	g.Add(&zz, &c)
	h.Add(&b, &a)

	v.x.Multiply(&e, &f)
	v.y.Multiply(&g, &h)
	v.t.Multiply(&e, &h)
	v.z.Multiply(&f, &g)
	return v
}

// Double sets v = p + p and returns v.
func (v *Point) Double(p *Point) *Point {
	var a, b, c, e, f, g, h, t0 field.Element

	a.Square(&p.x)
	b.Square(&p.y)
	c.Square(&p.z)
	c.Add(&c, &c)

	h.Add(&a, &b)
	t0.Add(&p.x, &p.y)
	t0.Square(&t0)
	e.Subtract(&h, &t0)
	g.Subtract(&a, &b)
	f.Add(&c, &g)

	v.x.Multiply(&e, &f)
	v.y.Multiply(&g, &h)
	v.t.Multiply(&e, &h)
	v.z.Multiply(&f, &g)
	return v
}

// Negate sets v = -p and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.t.Negate(&p.t)
	return v
}

// Select sets v to a if cond == 1 and to b if cond == 0, in constant time.
func (v *Point) Select(a, b *Point, cond int) *Point {
	v.x.Select(&a.x, &b.x, cond)
	v.y.Select(&a.y, &b.y, cond)
	v.z.Select(&a.z, &b.z, cond)
	v.t.Select(&a.t, &b.t, cond)
	return v
}

// ScalarBaseMult sets v = s * B and returns v.
func (v *Point) ScalarBaseMult(s *scalar.Scalar) *Point {
	return v.ScalarMult(s, NewGeneratorPoint())
}

// ScalarMult sets v = s * q and returns v.
//
// Every bit costs one doubling, one addition and one constant-time select,
// whatever its value.
func (v *Point) ScalarMult(s *scalar.Scalar, q *Point) *Point {
	k := s.Array()
	defer memzero.Zero(k[:])

	var base Point
	base.Set(q)

	acc := NewIdentityPoint()
	var sum Point
	for i := 8*scalar.Size - 1; i >= 0; i-- {
		bit := int(k[i/8]>>uint(i%8)) & 1
		acc.Double(acc)
		sum.Add(acc, &base)
		acc.Select(&sum, acc, bit)
	}
	return v.Set(acc)
}

// Bytes returns the RFC 8032 encoding of v: the canonical y-coordinate with
// the sign of x in the top bit.
func (v *Point) Bytes() []byte {
	var zInv, x, y field.Element
	zInv.Invert(&v.z)
	x.Multiply(&v.x, &zInv)
	y.Multiply(&v.y, &zInv)

	out := y.Bytes()
	out[31] |= byte(x.IsNegative() << 7)
	return out
}

// Equal returns 1 if v is equivalent to u, and 0 otherwise.
func (v *Point) Equal(u *Point) int {
	var t1, t2, t3, t4 field.Element
	t1.Multiply(&v.x, &u.z)
	t2.Multiply(&u.x, &v.z)
	t3.Multiply(&v.y, &u.z)
	t4.Multiply(&u.y, &v.z)
	return t1.Equal(&t2) & t3.Equal(&t4)
}

// MontgomeryToEdwards maps a Curve25519 u-coordinate to the encoding of the
// Edwards point with y = (u - 1) / (u + 1) and a non-negative x.
//
// The top bit of u is ignored, as X25519 does. u = -1 has no image and maps to
// y = 0, because the inverse of zero is zero.
func MontgomeryToEdwards(u []byte) ([PointSize]byte, error) {
	var out [PointSize]byte
	if len(u) != PointSize {
		return out, errInvalidMontgomery
	}
	var uu, one, num, den, y field.Element
	if _, err := uu.SetBytes(u); err != nil {
		return out, err
	}
	one.One()
	num.Subtract(&uu, &one)
	den.Add(&uu, &one)
	den.Invert(&den)
	y.Multiply(&num, &den)
	copy(out[:], y.Bytes())
	return out, nil
}

// mustDecimal parses a base-10 field constant.
func mustDecimal(s string) *field.Element {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("edwards: invalid constant " + s)
	}
	var le [32]byte
	n.FillBytes(le[:])
	for i, j := 0, len(le)-1; i < j; i, j = i+1, j-1 {
		le[i], le[j] = le[j], le[i]
	}
	fe, err := new(field.Element).SetBytes(le[:])
	if err != nil {
		panic(err)
	}
	return fe
}
