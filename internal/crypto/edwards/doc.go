// Package edwards implements the group of the twisted Edwards curve
//
//	-x^2 + y^2 = 1 - (121665/121666) x^2 y^2
//
// over GF(2^255-19), the curve behind Ed25519 and birationally equivalent to
// Curve25519.
//
// Points use extended coordinates (X:Y:Z:T) with x = X/Z, y = Y/Z and
// T = XY/Z. The addition law is complete on this curve, so Add needs no special
// case for the identity or for doubling. Scalar multiplication walks all 256
// bits with a double-and-add-always ladder and constant-time selection.
package edwards
