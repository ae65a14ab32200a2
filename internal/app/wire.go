package app

import (
	"fmt"
	"os"

	"github.com/cloudflare/cfssl/log"

	"github.com/caveman99/CustomCrypto/internal/crypto/entropy"
	"github.com/caveman99/CustomCrypto/internal/crypto/xeddsa"
	"github.com/caveman99/CustomCrypto/internal/domain"
	"github.com/caveman99/CustomCrypto/internal/metrics"
	identitysvc "github.com/caveman99/CustomCrypto/internal/services/identity"
	prekeysvc "github.com/caveman99/CustomCrypto/internal/services/prekey"
	signingsvc "github.com/caveman99/CustomCrypto/internal/services/signing"
	"github.com/caveman99/CustomCrypto/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Identity domain.IdentityService
	Signing  domain.SigningService
	PreKeys  domain.PreKeyService
	Metrics  *metrics.Metrics

	metricsFile string
}

// NewWire constructs the dependency graph from cfg, creating cfg.Home if needed.
func NewWire(cfg Config, opts ...store.Option) (*Wire, error) {
	if cfg.Home == "" {
		return nil, fmt.Errorf("app: home directory not set")
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	random := cfg.Random
	if random == nil {
		random = entropy.System()
	}
	opts = append([]store.Option{store.WithRandom(random)}, opts...)

	// File-based stores
	identityStore := store.NewIdentityFileStore(cfg.Home, opts...)
	prekeyStore := store.NewPreKeyFileStore(cfg.Home, opts...)

	m := metrics.New()
	signer := xeddsa.NewSigner(
		xeddsa.WithRandom(random),
		xeddsa.WithDerivation(cfg.Derivation),
	)

	log.Debugf("wired stores under %s, %s derivation", cfg.Home, cfg.Derivation)
	return &Wire{
		Identity:    identitysvc.New(identityStore, random),
		Signing:     signingsvc.New(identityStore, signer, m),
		PreKeys:     prekeysvc.New(identityStore, prekeyStore, random, m),
		Metrics:     m,
		metricsFile: cfg.MetricsFile,
	}, nil
}

// Close flushes metrics to the configured textfile, if any.
func (w *Wire) Close() error {
	if w.metricsFile == "" {
		return nil
	}
	if err := w.Metrics.WriteFile(w.metricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	log.Debugf("metrics written to %s", w.metricsFile)
	return nil
}
