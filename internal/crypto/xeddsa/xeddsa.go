package xeddsa

import (
	"crypto/ed25519"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/curve25519"

	"github.com/caveman99/CustomCrypto/internal/crypto/edwards"
	"github.com/caveman99/CustomCrypto/internal/crypto/entropy"
	"github.com/caveman99/CustomCrypto/internal/crypto/oracle"
	"github.com/caveman99/CustomCrypto/internal/crypto/scalar"
	"github.com/caveman99/CustomCrypto/internal/util/memzero"
)

const (
	// PrivateKeySize is the length of X25519 and converted Edwards private keys.
	PrivateKeySize = 32
	// PublicKeySize is the length of X25519 and Edwards public keys.
	PublicKeySize = 32
	// SignatureSize is the length of a signature, R || s.
	SignatureSize = 64

	hedgeSize = 64
)

// noncePrefix domain-separates the nonce hash from the challenge hash. It is
// the little-endian encoding of 2^256 - 2.
var noncePrefix = [32]byte{
	0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// Signer converts keys and signs. It holds no mutable state, so one Signer
// may be shared between goroutines.
type Signer struct {
	oracle     oracle.Oracle
	random     entropy.Source
	derivation Derivation
}

// NewSigner returns a Signer using SHA-512, the system random source and
// DeriveHashed, adjusted by opts.
func NewSigner(opts ...Option) *Signer {
	s := &Signer{
		oracle:     oracle.SHA2{},
		random:     entropy.System(),
		derivation: DeriveHashed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Derivation returns the scalar derivation s uses.
func (s *Signer) Derivation() Derivation { return s.derivation }

var defaultSigner = NewSigner()

// ConvertKeys converts curvePriv with the default Signer.
func ConvertKeys(curvePriv []byte) (edPriv, edPub [PublicKeySize]byte, err error) {
	return defaultSigner.ConvertKeys(curvePriv)
}

// Sign signs message with the default Signer.
func Sign(curvePriv, curvePub, message []byte) ([SignatureSize]byte, error) {
	return defaultSigner.Sign(curvePriv, curvePub, message)
}

// ConvertKeys derives the sign-normalised Edwards key pair for an X25519
// private key. edPriv is the scalar a' (reduced mod L) and edPub the RFC 8032
// encoding of a'B, whose sign bit is always zero.
func (s *Signer) ConvertKeys(curvePriv []byte) (edPriv, edPub [PublicKeySize]byte, err error) {
	if len(curvePriv) != PrivateKeySize {
		return edPriv, edPub, fmt.Errorf("%w: private key is %d bytes, want %d",
			ErrInvalidKeyEncoding, len(curvePriv), PrivateKeySize)
	}

	var scope memzero.Scope
	defer scope.Wipe()

	a, pub, err := s.convert(curvePriv, &scope)
	if err != nil {
		return edPriv, edPub, err
	}
	defer a.Wipe()

	return a.Array(), pub, nil
}

// Sign returns an Ed25519-compatible signature over message by the Edwards
// key derived from curvePriv.
//
// curvePub must be the X25519 public key of curvePriv; it is recomputed and
// compared rather than trusted, and a mismatch yields ErrKeyMismatch.
func (s *Signer) Sign(curvePriv, curvePub, message []byte) ([SignatureSize]byte, error) {
	var sig [SignatureSize]byte
	if len(curvePriv) != PrivateKeySize {
		return sig, fmt.Errorf("%w: private key is %d bytes, want %d",
			ErrInvalidKeyEncoding, len(curvePriv), PrivateKeySize)
	}
	if len(curvePub) != PublicKeySize {
		return sig, fmt.Errorf("%w: public key is %d bytes, want %d",
			ErrInvalidKeyEncoding, len(curvePub), PublicKeySize)
	}
	if err := checkPublicKey(curvePriv, curvePub); err != nil {
		return sig, err
	}

	var scope memzero.Scope
	defer scope.Wipe()

	a, pub, err := s.convert(curvePriv, &scope)
	if err != nil {
		return sig, err
	}
	defer a.Wipe()

	hedge := scope.Alloc(hedgeSize)
	if err := s.random.FillRandom(hedge); err != nil {
		return sig, fmt.Errorf("%w: %v", ErrSigningUnavailable, err)
	}
	if isAllZero(hedge) {
		return sig, fmt.Errorf("%w: random source returned only zeros", ErrSigningUnavailable)
	}

	nonceDigest, err := s.oracle.Sum512(noncePrefix[:], curvePriv, message, hedge)
	if err != nil {
		return sig, fmt.Errorf("%w: %v", ErrSigningUnavailable, err)
	}
	scope.Track(nonceDigest[:])

	r, err := new(scalar.Scalar).SetUniformBytes(nonceDigest[:])
	if err != nil {
		return sig, err
	}
	defer r.Wipe()
	if r.IsZero() == 1 {
		return sig, fmt.Errorf("%w: derived nonce is zero", ErrSigningUnavailable)
	}

	R := new(edwards.Point).ScalarBaseMult(r).Bytes()

	challenge, err := s.oracle.Sum512(R, pub[:], message)
	if err != nil {
		return sig, fmt.Errorf("%w: %v", ErrSigningUnavailable, err)
	}
	h, err := new(scalar.Scalar).SetUniformBytes(challenge[:])
	if err != nil {
		return sig, err
	}

	S := new(scalar.Scalar).MulAdd(h, a, r)
	copy(sig[:32], R)
	copy(sig[32:], S.Bytes())
	return sig, nil
}

// Verify reports whether sig is a valid Ed25519 signature of message by edPub.
func Verify(edPub, message, sig []byte) bool {
	if len(edPub) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(edPub), message, sig)
}

// VerifyCurve reports whether sig is a valid signature of message by the
// holder of the X25519 public key curvePub. It only accepts signatures made
// with DeriveDirect, whose Edwards key is the image of curvePub.
func VerifyCurve(curvePub, message, sig []byte) bool {
	edPub, err := edwards.MontgomeryToEdwards(curvePub)
	if err != nil {
		return false
	}
	return Verify(edPub[:], message, sig)
}

// convert derives the sign-normalised scalar and public key. Temporary
// buffers are registered with scope; the returned scalar is the caller's to wipe.
func (s *Signer) convert(curvePriv []byte, scope *memzero.Scope) (*scalar.Scalar, [PublicKeySize]byte, error) {
	var pub [PublicKeySize]byte

	seed := scope.Alloc(scalar.Size)
	switch s.derivation {
	case DeriveDirect:
		copy(seed, curvePriv)
	case DeriveHashed:
		digest, err := s.oracle.Sum512(curvePriv)
		if err != nil {
			return nil, pub, fmt.Errorf("%w: %v", ErrSigningUnavailable, err)
		}
		scope.Track(digest[:])
		copy(seed, digest[:scalar.Size])
	default:
		return nil, pub, fmt.Errorf("xeddsa: unknown derivation %v", s.derivation)
	}
	clamp(seed)

	a, err := new(scalar.Scalar).SetBytesModOrder(seed)
	if err != nil {
		return nil, pub, err
	}

	enc := new(edwards.Point).ScalarBaseMult(a).Bytes()
	negative := int(enc[31] >> 7)

	var negA scalar.Scalar
	negA.Negate(a)
	a.Select(&negA, a, negative)
	negA.Wipe()

	// -(aB) has the same y and the opposite x sign.
	enc[31] &= 0x7f
	copy(pub[:], enc)
	return a, pub, nil
}

// clamp clears the cofactor bits and fixes bit 254, as RFC 7748 and RFC 8032 do.
func clamp(k []byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

// checkPublicKey recomputes the X25519 public key of priv and compares it to pub.
func checkPublicKey(priv, pub []byte) error {
	want, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	if subtle.ConstantTimeCompare(want, pub) != 1 {
		return ErrKeyMismatch
	}
	return nil
}

func isAllZero(b []byte) bool {
	var acc byte
	for _, c := range b {
		acc |= c
	}
	return acc == 0
}
