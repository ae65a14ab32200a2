package store

import (
	"github.com/caveman99/CustomCrypto/internal/crypto"
	"github.com/caveman99/CustomCrypto/internal/crypto/entropy"
)

// Option configures a file store.
type Option func(*sealer)

// WithKDFParams sets the Argon2id cost used for newly sealed secrets.
func WithKDFParams(p crypto.KDFParams) Option {
	return func(s *sealer) { s.params = p }
}

// WithRandom sets the source of salts.
func WithRandom(src entropy.Source) Option {
	return func(s *sealer) { s.random = src }
}

func newSealer(opts []Option) sealer {
	s := sealer{params: crypto.DefaultKDFParams(), random: entropy.System()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
