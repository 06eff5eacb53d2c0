package calcpro

import (
	"fmt"
	"hash"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
)

// Store is a small key-value store for calculator preferences and history.
// Each key is kept as a checksummed JSON record under root/records.
type Store struct {
	root     string
	hashFunc HashFunc
	nowFunc  NowFunc
	mu       sync.RWMutex
	fs       afero.Fs
	log      *slog.Logger
}

// HashFunc defines a function that creates a new hash.Hash instance.
type HashFunc func() hash.Hash

// StoreOption defines a function that configures a Store.
type StoreOption func(*Store)

// WithFs sets a custom filesystem for the store.
// This is primarily useful for testing with in-memory filesystems.
//
// Example:
//
//	store, err := calcpro.Open(".calcpro", calcpro.WithFs(afero.NewMemMapFs()))
func WithFs(fs afero.Fs) StoreOption {
	return func(s *Store) {
		s.fs = fs
	}
}

// WithHashFunc sets the checksum hash. The default is xxHash64.
//
// Note: Changing the hash function makes existing records fail their checksum.
func WithHashFunc(hashFunc HashFunc) StoreOption {
	return func(s *Store) {
		s.hashFunc = hashFunc
	}
}

// WithStoreNowFunc sets the time function used for record timestamps.
func WithStoreNowFunc(nowFunc NowFunc) StoreOption {
	return func(s *Store) {
		s.nowFunc = nowFunc
	}
}

// WithStoreLogger sets the store's logger. The default discards everything.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.log = logger
		}
	}
}

// Open creates a store at the given root directory.
// The directory will be created if it doesn't exist.
func Open(root string, options ...StoreOption) (*Store, error) {
	store := &Store{
		root:     root,
		fs:       afero.NewOsFs(),
		nowFunc:  time.Now,
		hashFunc: defaultHashFunc,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(store)
	}

	if err := store.fs.MkdirAll(store.recordsDir(), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create records directory: %w", err)
	}

	return store, nil
}

// OpenTemp creates a temporary in-memory store for testing.
func OpenTemp() *Store {
	store, err := Open("", WithFs(afero.NewMemMapFs()))
	if err != nil {
		panic(fmt.Sprintf("failed to create temp store: %v", err))
	}
	return store
}

// Get returns the value stored under key.
// Returns ErrNotFound if the key has no record and an error wrapping
// ErrCorrupt if the record cannot be decoded or fails its checksum.
func (s *Store) Get(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	exists, err := afero.Exists(s.fs, s.recordPath(key))
	if err != nil {
		return nil, fmt.Errorf("failed to check record: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	r, err := s.loadRecord(key)
	if err != nil {
		return nil, err
	}
	return r.Value, nil
}

// Put stores value under key, replacing any previous record.
func (s *Store) Put(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sum, err := s.checksum(value)
	if err != nil {
		return err
	}
	return s.saveRecord(&record{
		Key:       key,
		Checksum:  sum,
		UpdatedAt: s.now(),
		Value:     value,
	})
}

// Has reports whether key has a readable record.
func (s *Store) Has(key string) bool {
	_, err := s.Get(key)
	return err == nil
}

// Delete removes the record for key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.recordPath(key)
	if exists, _ := afero.Exists(s.fs, path); exists {
		if err := s.fs.Remove(path); err != nil {
			return fmt.Errorf("failed to remove record: %w", err)
		}
	}
	return nil
}

// Clear removes all records.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.RemoveAll(s.recordsDir()); err != nil {
		return fmt.Errorf("failed to remove records: %w", err)
	}
	if err := s.fs.MkdirAll(s.recordsDir(), 0o755); err != nil {
		return fmt.Errorf("failed to recreate records directory: %w", err)
	}
	return nil
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos, err := afero.ReadDir(s.fs, s.recordsDir())
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	keys := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), recordExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(info.Name(), recordExt))
	}
	sort.Strings(keys)
	return keys, nil
}

// Close releases any resources. Currently a no-op.
func (s *Store) Close() error {
	return nil
}

const recordExt = ".json"

// recordsDir returns the path to the records directory.
func (s *Store) recordsDir() string {
	return filepath.Join(s.root, "records")
}

// recordPath returns the path to the record file for key.
func (s *Store) recordPath(key string) string {
	return filepath.Join(s.recordsDir(), key+recordExt)
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// now returns the current time.
func (s *Store) now() time.Time {
	return s.nowFunc()
}

// defaultHashFunc returns the default hash function (xxHash64).
func defaultHashFunc() hash.Hash {
	return xxhash.New()
}
