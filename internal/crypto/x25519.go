package crypto

import (
	"golang.org/x/crypto/curve25519"

	"github.com/caveman99/CustomCrypto/internal/crypto/entropy"
	"github.com/caveman99/CustomCrypto/internal/domain"
)

// GenerateX25519 returns a fresh Curve25519 key pair drawn from src.
// The private key is clamped per RFC 7748.
func GenerateX25519(src entropy.Source) (priv domain.X25519Private, pub domain.X25519Public, err error) {
	if err = src.FillRandom(priv[:]); err != nil {
		return
	}
	clamp(&priv)
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return
	}
	copy(pub[:], pb)
	return
}

func clamp(k *domain.X25519Private) {
	kb := k[:]
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}
