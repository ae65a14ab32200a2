package crypto

import "golang.org/x/crypto/argon2"

// KeyBytes is the length of a derived key-encryption key.
const KeyBytes = 32

// KDFParams are the Argon2id cost parameters stored next to each sealed secret.
type KDFParams struct {
	Time      uint32 `json:"t"`
	MemoryKiB uint32 `json:"m"`
	Threads   uint8  `json:"p"`
}

// DefaultKDFParams returns the interactive Argon2id profile (64 MiB, one pass).
func DefaultKDFParams() KDFParams {
	return KDFParams{Time: 1, MemoryKiB: 64 * 1024, Threads: 4}
}

// DeriveKEK derives a key-encryption key from a passphrase and salt using Argon2id.
func DeriveKEK(passphrase string, salt []byte, p KDFParams) []byte {
	return argon2.IDKey([]byte(passphrase), salt, p.Time, p.MemoryKiB, p.Threads, KeyBytes)
}
