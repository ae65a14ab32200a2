package store

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/caveman99/CustomCrypto/internal/domain"
	"github.com/caveman99/CustomCrypto/internal/util/memzero"
)

const (
	spkPairsFile   = "spk_pairs.json"
	prekeyMetaFile = "prekey_meta.json"
)

// PreKeyFileStore persists signed pre-key state to disk.
type PreKeyFileStore struct {
	dir    string
	sealer sealer
	mu     sync.Mutex
}

// NewPreKeyFileStore returns a PreKeyFileStore rooted at dir.
func NewPreKeyFileStore(dir string, opts ...Option) *PreKeyFileStore {
	return &PreKeyFileStore{dir: dir, sealer: newSealer(opts)}
}

// Internal record types.
type spkRecord struct {
	domain.SignedPreKey
	SealedPriv []byte `json:"sealed_priv"`
}

type prekeyMeta struct {
	CurrentSignedPreKeyID domain.SignedPreKeyID `json:"current_signed_pre_key_id"`
}

func (s *PreKeyFileStore) records() (map[domain.SignedPreKeyID]spkRecord, error) {
	m := map[domain.SignedPreKeyID]spkRecord{}
	if err := readJSON(filepath.Join(s.dir, spkPairsFile), &m); err != nil {
		return nil, err
	}
	return m, nil
}

// SaveSignedPreKey stores a signed pre-key, sealing its private half with passphrase.
func (s *PreKeyFileStore) SaveSignedPreKey(passphrase string, pair domain.SignedPreKeyPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.records()
	if err != nil {
		return err
	}
	sealed, err := s.sealer.seal(passphrase, pair.Priv[:])
	if err != nil {
		return fmt.Errorf("seal signed pre-key: %w", err)
	}
	m[pair.ID] = spkRecord{SignedPreKey: pair.SignedPreKey, SealedPriv: sealed}
	return writeJSON(filepath.Join(s.dir, spkPairsFile), m, 0o600)
}

// LoadSignedPreKey retrieves the public half of a signed pre-key by id.
func (s *PreKeyFileStore) LoadSignedPreKey(id domain.SignedPreKeyID) (domain.SignedPreKey, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.records()
	if err != nil {
		return domain.SignedPreKey{}, false, err
	}
	r, ok := m[id]
	return r.SignedPreKey, ok, nil
}

// LoadSignedPreKeyPair retrieves and unseals a signed pre-key by id.
func (s *PreKeyFileStore) LoadSignedPreKeyPair(
	passphrase string,
	id domain.SignedPreKeyID,
) (domain.SignedPreKeyPair, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.records()
	if err != nil {
		return domain.SignedPreKeyPair{}, false, err
	}
	r, ok := m[id]
	if !ok {
		return domain.SignedPreKeyPair{}, false, nil
	}
	priv, err := s.sealer.open(passphrase, r.SealedPriv)
	if err != nil {
		return domain.SignedPreKeyPair{}, false, err
	}
	defer memzero.Zero(priv)
	if len(priv) != len(domain.X25519Private{}) {
		return domain.SignedPreKeyPair{}, false, fmt.Errorf("signed pre-key %s: private key is %d bytes", id, len(priv))
	}

	pair := domain.SignedPreKeyPair{SignedPreKey: r.SignedPreKey}
	copy(pair.Priv[:], priv)
	return pair, true, nil
}

// ListSignedPreKeys returns the public halves of all stored signed pre-keys,
// oldest first.
func (s *PreKeyFileStore) ListSignedPreKeys() ([]domain.SignedPreKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.records()
	if err != nil {
		return nil, err
	}
	out := make([]domain.SignedPreKey, 0, len(m))
	for _, r := range m {
		out = append(out, r.SignedPreKey)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedUTC != out[j].CreatedUTC {
			return out[i].CreatedUTC < out[j].CreatedUTC
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// SetCurrentSignedPreKeyID records which signed pre-key id is current.
func (s *PreKeyFileStore) SetCurrentSignedPreKeyID(id domain.SignedPreKeyID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, prekeyMetaFile)
	meta := prekeyMeta{CurrentSignedPreKeyID: id}
	return writeJSON(path, meta, 0o600)
}

// CurrentSignedPreKeyID returns the recorded current signed pre-key id.
func (s *PreKeyFileStore) CurrentSignedPreKeyID() (domain.SignedPreKeyID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, prekeyMetaFile)
	var meta prekeyMeta
	if err := readJSON(path, &meta); err != nil {
		return "", false, err
	}
	if meta.CurrentSignedPreKeyID == "" {
		return "", false, nil
	}
	return meta.CurrentSignedPreKeyID, true, nil
}

// Compile-time assertion that PreKeyFileStore implements domain.PreKeyStore.
var _ domain.PreKeyStore = (*PreKeyFileStore)(nil)
