// Package field implements arithmetic in GF(2^255-19), the base field of
// Curve25519 and Ed25519.
//
// # Representation
//
// An Element holds five 51-bit limbs, v = l0 + l1*2^51 + l2*2^102 + l3*2^153 +
// l4*2^204. Every operation finishes with a carry propagation so that limbs
// stay below 2^52. That "loose" form is accepted as input by every operation,
// so callers chain Add, Multiply and Square without canonicalising in between.
// Only Bytes produces the unique representative in [0, p).
//
// # Constant time
//
// No operation branches on, or indexes memory by, the value of an Element.
// Invert uses a fixed addition chain for the exponent p-2.
package field
