package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/caveman99/CustomCrypto/internal/domain"
	"github.com/caveman99/CustomCrypto/internal/util/memzero"
)

const idFilename = "identity.json.enc"

// ErrNoIdentity is returned by LoadIdentity before an identity has been saved.
var ErrNoIdentity = errors.New("store: no identity; run init first")

// IdentityFileStore persists the local identity to disk.
type IdentityFileStore struct {
	dir    string
	sealer sealer
	mu     sync.Mutex
}

// NewIdentityFileStore returns an IdentityFileStore rooted at dir.
func NewIdentityFileStore(dir string, opts ...Option) *IdentityFileStore {
	return &IdentityFileStore{dir: dir, sealer: newSealer(opts)}
}

// SaveIdentity writes the encrypted identity to disk, replacing any previous one.
func (s *IdentityFileStore) SaveIdentity(passphrase string, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	ct, err := s.sealer.seal(passphrase, raw)
	if err != nil {
		return fmt.Errorf("seal identity: %w", err)
	}
	return writeFile(filepath.Join(s.dir, idFilename), ct, 0o600)
}

// LoadIdentity reads and decrypts the identity.
func (s *IdentityFileStore) LoadIdentity(passphrase string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, idFilename))
	if errors.Is(err, os.ErrNotExist) {
		return domain.Identity{}, ErrNoIdentity
	}
	if err != nil {
		return domain.Identity{}, err
	}
	pt, err := s.sealer.open(passphrase, b)
	if err != nil {
		return domain.Identity{}, err
	}
	defer memzero.Zero(pt)

	var id domain.Identity
	if err := json.Unmarshal(pt, &id); err != nil {
		return domain.Identity{}, fmt.Errorf("decode identity: %w", err)
	}
	return id, nil
}

// Compile-time assertion that IdentityFileStore implements domain.IdentityStore.
var _ domain.IdentityStore = (*IdentityFileStore)(nil)
