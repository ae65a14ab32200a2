// Package scalar implements arithmetic modulo the prime order of the Ed25519
// base point,
//
//	L = 2^252 + 27742317777372353535851937790883648493.
//
// Values are little-endian 32-byte integers. Products are accumulated as 64
// signed byte-sized columns and reduced with a radix-2^8 elimination that
// relies on L's shape: bytes 16 through 30 of L are zero, so each high column
// folds into only twenty lower ones. A Scalar always holds a value in [0, L);
// a reduction that ever produced anything else is a bug and panics.
package scalar
