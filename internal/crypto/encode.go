package crypto

import (
	"encoding/base64"
	"fmt"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// DecodeB64 decodes standard base64 and checks the decoded length when want > 0.
func DecodeB64(s string, want int) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if want > 0 && len(b) != want {
		return nil, fmt.Errorf("decoded %d bytes, want %d", len(b), want)
	}
	return b, nil
}
