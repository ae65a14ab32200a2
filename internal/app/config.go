package app

import (
	"os"
	"path/filepath"

	"github.com/caveman99/CustomCrypto/internal/crypto/entropy"
	"github.com/caveman99/CustomCrypto/internal/crypto/xeddsa"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home        string            // key directory, e.g. $HOME/.xeddsa
	Derivation  xeddsa.Derivation // identity signing-key derivation
	MetricsFile string            // optional Prometheus textfile written on Close
	Random      entropy.Source    // optional; defaults to entropy.System()
}

// DefaultHome returns $HOME/.xeddsa.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".xeddsa"), nil
}
