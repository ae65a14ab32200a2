package crypto

import (
	"encoding/hex"

	"github.com/caveman99/CustomCrypto/internal/crypto/oracle"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars), grouped
// in fours for reading aloud.
func Fingerprint(pub []byte) string {
	sum, _ := oracle.SHA2{}.Sum256(pub) // SHA2 never fails
	h := hex.EncodeToString(sum[:10])
	out := make([]byte, 0, len(h)+len(h)/4)
	for i := 0; i < len(h); i += 4 {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, h[i:i+4]...)
	}
	return string(out)
}
