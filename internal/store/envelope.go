package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"github.com/caveman99/CustomCrypto/internal/crypto"
	"github.com/caveman99/CustomCrypto/internal/crypto/entropy"
	"github.com/caveman99/CustomCrypto/internal/util/memzero"
)

const (
	// Envelope versions understood by open. Only the newest is written.
	envelopeScrypt   = 1
	envelopeArgon2id = 2

	saltBytes = 16
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// ciphertext has been modified / corrupted.
	ErrWrongPassphrase = errors.New("store: wrong passphrase or corrupted data")
	// ErrUnsupportedEnvelope is returned for envelope versions this build cannot open.
	ErrUnsupportedEnvelope = errors.New("store: unsupported envelope version")
)

// envelope is the on-disk JSON structure holding the ciphertext and KDF parameters.
type envelope struct {
	V    int    `json:"v"`
	Salt []byte `json:"salt"`

	// v2
	Argon *crypto.KDFParams `json:"argon2id,omitempty"`

	// v1
	N int `json:"scrypt_N,omitempty"`
	R int `json:"scrypt_r,omitempty"`
	P int `json:"scrypt_p,omitempty"`

	Cipher []byte `json:"cipher"`
}

// sealer seals and opens secrets under a passphrase.
type sealer struct {
	params crypto.KDFParams
	random entropy.Source
}

// seal derives a key from passphrase and seals raw into a JSON envelope.
func (s sealer) seal(passphrase string, raw []byte) ([]byte, error) {
	salt := make([]byte, saltBytes)
	if err := s.random.FillRandom(salt); err != nil {
		return nil, err
	}
	key := crypto.DeriveKEK(passphrase, salt, s.params)
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key is never reused
	params := s.params
	return json.Marshal(envelope{
		V:      envelopeArgon2id,
		Salt:   salt,
		Argon:  &params,
		Cipher: aead.Seal(nil, nonce[:], raw, salt),
	})
}

// open decrypts a JSON envelope using a key derived from passphrase.
func (s sealer) open(passphrase string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("store: decode envelope: %w", err)
	}
	if len(env.Salt) == 0 {
		return nil, fmt.Errorf("store: envelope has no salt")
	}

	var key []byte
	switch env.V {
	case envelopeArgon2id:
		if env.Argon == nil {
			return nil, fmt.Errorf("store: envelope is missing argon2id parameters")
		}
		key = crypto.DeriveKEK(passphrase, env.Salt, *env.Argon)
	case envelopeScrypt:
		var err error
		key, err = scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
		if err != nil {
			return nil, fmt.Errorf("store: scrypt: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %d", ErrUnsupportedEnvelope, env.V)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, env.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
