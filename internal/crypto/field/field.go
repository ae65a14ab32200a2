// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file in this directory.
//
// The limb layout, carry propagation, reduction and 128-bit multiply helpers
// are derived from filippo.io/edwards25519/field.

package field

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"math/bits"
)

const maskLow51Bits uint64 = (1 << 51) - 1

// Element is an element of GF(2^255-19). The zero value is a valid zero element.
type Element struct {
	l0, l1, l2, l3, l4 uint64
}

var feZero = &Element{0, 0, 0, 0, 0}

// Zero sets v = 0 and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

// One sets v = 1 and returns v.
func (v *Element) One() *Element {
	*v = Element{1, 0, 0, 0, 0}
	return v
}

// SetUint64 sets v = x for x < 2^51 and returns v.
func (v *Element) SetUint64(x uint64) *Element {
	*v = Element{x & maskLow51Bits, 0, 0, 0, 0}
	return v
}

// Set sets v = a and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// Add sets v = a + b and returns v.
func (v *Element) Add(a, b *Element) *Element {
	v.l0 = a.l0 + b.l0
	v.l1 = a.l1 + b.l1
	v.l2 = a.l2 + b.l2
	v.l3 = a.l3 + b.l3
	v.l4 = a.l4 + b.l4
	return v.carryPropagate()
}

// Subtract sets v = a - b and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	// Add 2p first so no limb underflows.
	v.l0 = (a.l0 + 0xFFFFFFFFFFFDA) - b.l0
	v.l1 = (a.l1 + 0xFFFFFFFFFFFFE) - b.l1
	v.l2 = (a.l2 + 0xFFFFFFFFFFFFE) - b.l2
	v.l3 = (a.l3 + 0xFFFFFFFFFFFFE) - b.l3
	v.l4 = (a.l4 + 0xFFFFFFFFFFFFE) - b.l4
	return v.carryPropagate()
}

// Negate sets v = -a and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(feZero, a)
}

// Multiply sets v = a * b and returns v.
func (v *Element) Multiply(a, b *Element) *Element {
	a0, a1, a2, a3, a4 := a.l0, a.l1, a.l2, a.l3, a.l4
	b0, b1, b2, b3, b4 := b.l0, b.l1, b.l2, b.l3, b.l4

	// 2^255 = 19 mod p, so limb products that land at or above 2^255 fold
	// back multiplied by 19.
	a1x19 := a1 * 19
	a2x19 := a2 * 19
	a3x19 := a3 * 19
	a4x19 := a4 * 19

	r0 := mul64(a0, b0)
	r0 = addMul64(r0, a1x19, b4)
	r0 = addMul64(r0, a2x19, b3)
	r0 = addMul64(r0, a3x19, b2)
	r0 = addMul64(r0, a4x19, b1)

	r1 := mul64(a0, b1)
	r1 = addMul64(r1, a1, b0)
	r1 = addMul64(r1, a2x19, b4)
	r1 = addMul64(r1, a3x19, b3)
	r1 = addMul64(r1, a4x19, b2)

	r2 := mul64(a0, b2)
	r2 = addMul64(r2, a1, b1)
	r2 = addMul64(r2, a2, b0)
	r2 = addMul64(r2, a3x19, b4)
	r2 = addMul64(r2, a4x19, b3)

	r3 := mul64(a0, b3)
	r3 = addMul64(r3, a1, b2)
	r3 = addMul64(r3, a2, b1)
	r3 = addMul64(r3, a3, b0)
	r3 = addMul64(r3, a4x19, b4)

	r4 := mul64(a0, b4)
	r4 = addMul64(r4, a1, b3)
	r4 = addMul64(r4, a2, b2)
	r4 = addMul64(r4, a3, b1)
	r4 = addMul64(r4, a4, b0)

	v.reduceWide(r0, r1, r2, r3, r4)
	return v
}

// Square sets v = a * a and returns v.
func (v *Element) Square(a *Element) *Element {
	l0, l1, l2, l3, l4 := a.l0, a.l1, a.l2, a.l3, a.l4

	l0x2 := l0 * 2
	l1x2 := l1 * 2
	l1x38 := l1 * 38
	l2x38 := l2 * 38
	l3x38 := l3 * 38
	l3x19 := l3 * 19
	l4x19 := l4 * 19

	r0 := mul64(l0, l0)
	r0 = addMul64(r0, l1x38, l4)
	r0 = addMul64(r0, l2x38, l3)

	r1 := mul64(l0x2, l1)
	r1 = addMul64(r1, l2x38, l4)
	r1 = addMul64(r1, l3x19, l3)

	r2 := mul64(l0x2, l2)
	r2 = addMul64(r2, l1, l1)
	r2 = addMul64(r2, l3x38, l4)

	r3 := mul64(l0x2, l3)
	r3 = addMul64(r3, l1x2, l2)
	r3 = addMul64(r3, l4x19, l4)

	r4 := mul64(l0x2, l4)
	r4 = addMul64(r4, l1x2, l3)
	r4 = addMul64(r4, l2, l2)

	v.reduceWide(r0, r1, r2, r3, r4)
	return v
}

// Invert sets v = 1/z mod p and returns v. If z == 0, Invert returns v = 0.
func (v *Element) Invert(z *Element) *Element {
	// z^(p-2) via 255 squarings and 11 multiplications.
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Element

	z2.Square(z)             // 2
	t.Square(&z2)            // 4
	t.Square(&t)             // 8
	z9.Multiply(&t, z)       // 9
	z11.Multiply(&z9, &z2)   // 11
	t.Square(&z11)           // 22
	z2_5_0.Multiply(&t, &z9) // 31 = 2^5 - 2^0

	t.Square(&z2_5_0) // 2^6 - 2^1
	for i := 0; i < 4; i++ {
		t.Square(&t) // 2^10 - 2^5
	}
	z2_10_0.Multiply(&t, &z2_5_0) // 2^10 - 2^0

	t.Square(&z2_10_0) // 2^11 - 2^1
	for i := 0; i < 9; i++ {
		t.Square(&t) // 2^20 - 2^10
	}
	z2_20_0.Multiply(&t, &z2_10_0) // 2^20 - 2^0

	t.Square(&z2_20_0) // 2^21 - 2^1
	for i := 0; i < 19; i++ {
		t.Square(&t) // 2^40 - 2^20
	}
	t.Multiply(&t, &z2_20_0) // 2^40 - 2^0

	t.Square(&t) // 2^41 - 2^1
	for i := 0; i < 9; i++ {
		t.Square(&t) // 2^50 - 2^10
	}
	z2_50_0.Multiply(&t, &z2_10_0) // 2^50 - 2^0

	t.Square(&z2_50_0) // 2^51 - 2^1
	for i := 0; i < 49; i++ {
		t.Square(&t) // 2^100 - 2^50
	}
	z2_100_0.Multiply(&t, &z2_50_0) // 2^100 - 2^0

	t.Square(&z2_100_0) // 2^101 - 2^1
	for i := 0; i < 99; i++ {
		t.Square(&t) // 2^200 - 2^100
	}
	t.Multiply(&t, &z2_100_0) // 2^200 - 2^0

	t.Square(&t) // 2^201 - 2^1
	for i := 0; i < 49; i++ {
		t.Square(&t) // 2^250 - 2^50
	}
	t.Multiply(&t, &z2_50_0) // 2^250 - 2^0

	t.Square(&t) // 2^251 - 2^1
	t.Square(&t) // 2^252 - 2^2
	t.Square(&t) // 2^253 - 2^3
	t.Square(&t) // 2^254 - 2^4
	t.Square(&t) // 2^255 - 2^5

	return v.Multiply(&t, &z11) // 2^255 - 21
}

// SetBytes sets v to x, a 32-byte little-endian encoding, and returns v.
//
// The most significant bit of x is ignored. Encodings of values in [p, 2^255)
// are accepted and reduced.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.New("field: invalid element length")
	}
	v.l0 = binary.LittleEndian.Uint64(x[0:8]) & maskLow51Bits
	v.l1 = (binary.LittleEndian.Uint64(x[6:14]) >> 3) & maskLow51Bits
	v.l2 = (binary.LittleEndian.Uint64(x[12:20]) >> 6) & maskLow51Bits
	v.l3 = (binary.LittleEndian.Uint64(x[19:27]) >> 1) & maskLow51Bits
	v.l4 = (binary.LittleEndian.Uint64(x[24:32]) >> 12) & maskLow51Bits
	return v, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	var out [32]byte
	return v.bytes(&out)
}

func (v *Element) bytes(out *[32]byte) []byte {
	t := *v
	t.reduce()

	var buf [8]byte
	for i, l := range [5]uint64{t.l0, t.l1, t.l2, t.l3, t.l4} {
		bitsOffset := i * 51
		binary.LittleEndian.PutUint64(buf[:], l<<uint(bitsOffset%8))
		for j, bb := range buf {
			off := bitsOffset/8 + j
			if off >= len(out) {
				break
			}
			out[off] |= bb
		}
	}
	return out[:]
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	var sa, sv [32]byte
	u.bytes(&sa)
	v.bytes(&sv)
	return subtle.ConstantTimeCompare(sa[:], sv[:])
}

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := mask64Bits(cond)
	v.l0 = (m & a.l0) | (^m & b.l0)
	v.l1 = (m & a.l1) | (^m & b.l1)
	v.l2 = (m & a.l2) | (^m & b.l2)
	v.l3 = (m & a.l3) | (^m & b.l3)
	v.l4 = (m & a.l4) | (^m & b.l4)
	return v
}

// IsNegative returns 1 if v is negative, and 0 otherwise. An element is
// negative when the least significant bit of its canonical encoding is set.
func (v *Element) IsNegative() int {
	return int(v.Bytes()[0] & 1)
}

// mask64Bits returns 0xffffffff_ffffffff if cond is 1, and 0 otherwise.
func mask64Bits(cond int) uint64 { return ^(uint64(cond) - 1) }

// carryPropagate brings the limbs below 52 bits by applying the reduction
// identity (a * 2^255 + b = a * 19 + b) to the l4 carry.
func (v *Element) carryPropagate() *Element {
	c0 := v.l0 >> 51
	c1 := v.l1 >> 51
	c2 := v.l2 >> 51
	c3 := v.l3 >> 51
	c4 := v.l4 >> 51

	v.l0 = v.l0&maskLow51Bits + c4*19
	v.l1 = v.l1&maskLow51Bits + c0
	v.l2 = v.l2&maskLow51Bits + c1
	v.l3 = v.l3&maskLow51Bits + c2
	v.l4 = v.l4&maskLow51Bits + c3
	return v
}

// reduce brings v into the canonical range [0, p).
func (v *Element) reduce() *Element {
	v.carryPropagate()

	// v < 2^255 + 2^13 * 19 now. c is 1 exactly when v >= p, because then
	// v + 19 overflows 2^255.
	c := (v.l0 + 19) >> 51
	c = (v.l1 + c) >> 51
	c = (v.l2 + c) >> 51
	c = (v.l3 + c) >> 51
	c = (v.l4 + c) >> 51

	v.l0 += 19 * c

	v.l1 += v.l0 >> 51
	v.l0 = v.l0 & maskLow51Bits
	v.l2 += v.l1 >> 51
	v.l1 = v.l1 & maskLow51Bits
	v.l3 += v.l2 >> 51
	v.l2 = v.l2 & maskLow51Bits
	v.l4 += v.l3 >> 51
	v.l3 = v.l3 & maskLow51Bits
	// The bit above 2^255 is dropped, which subtracts 2^255 (we added 19).
	v.l4 = v.l4 & maskLow51Bits

	return v
}

// reduceWide folds five 128-bit column sums back into 51-bit limbs.
func (v *Element) reduceWide(r0, r1, r2, r3, r4 uint128) {
	c0 := shiftRightBy51(r0)
	c1 := shiftRightBy51(r1)
	c2 := shiftRightBy51(r2)
	c3 := shiftRightBy51(r3)
	c4 := shiftRightBy51(r4)

	rr0 := r0.lo&maskLow51Bits + c4*19
	rr1 := r1.lo&maskLow51Bits + c0
	rr2 := r2.lo&maskLow51Bits + c1
	rr3 := r3.lo&maskLow51Bits + c2
	rr4 := r4.lo&maskLow51Bits + c3

	*v = Element{rr0, rr1, rr2, rr3, rr4}
	v.carryPropagate()
}

// uint128 holds a 128-bit number as two 64-bit limbs.
type uint128 struct {
	lo, hi uint64
}

// mul64 returns a * b.
func mul64(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{lo, hi}
}

// addMul64 returns v + a * b.
func addMul64(v uint128, a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	lo, c := bits.Add64(lo, v.lo, 0)
	hi, _ = bits.Add64(hi, v.hi, c)
	return uint128{lo, hi}
}

// shiftRightBy51 returns a >> 51. a is assumed to be at most 115 bits.
func shiftRightBy51(a uint128) uint64 {
	return (a.hi << (64 - 51)) | (a.lo >> 51)
}
