package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/yourname/befree/internal"
)

// Store owns the single JSON document backing the whole API. The cache
// is loaded lazily on first access; a missing file initializes an empty
// document and writes it immediately. Any other read failure is fatal.
//
// One mutex guards the full load-mutate-persist cycle, not just the
// write. Two concurrent Update calls therefore never work from the same
// snapshot, which closes the lost-update window between loading a copy
// and persisting it. Writes happen under the same lock, so the file
// always reflects persists in issuance order and never interleaves.
type Store struct {
	path   string
	mu     sync.Mutex
	cache  *Document // nil until first access
	logger internal.Logger
}

func NewStore(path string, logger internal.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load returns a deep copy of the current document.
func (s *Store) Load() (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.cache.Clone(), nil
}

// Update runs fn against a snapshot of the document and persists the
// result. If fn returns an error nothing is persisted and the on-disk
// document stays as it was. This is the only mutation path.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}

	working := s.cache.Clone()
	if err := fn(working); err != nil {
		return err
	}
	return s.persistLocked(working)
}

// ensureLoaded reads the backing file into the cache on first access.
// Caller holds s.mu.
func (s *Store) ensureLoaded() error {
	if s.cache != nil {
		return nil
	}

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Infof("storage: %s missing, initializing empty database", s.path)
			return s.persistLocked(NewDocument())
		}
		return internal.StorageError("open", err)
	}
	defer file.Close()

	doc := &Document{}
	if err := json.NewDecoder(file).Decode(doc); err != nil {
		return internal.StorageError("decode", err)
	}
	doc.normalize()
	s.cache = doc
	return nil
}

// persistLocked replaces the cache with a copy of doc and overwrites
// the backing file with pretty-printed JSON. Caller holds s.mu.
func (s *Store) persistLocked(doc *Document) error {
	if err := atomicWriteFileJSON(s.path, doc); err != nil {
		return internal.StorageError("write", err)
	}
	s.cache = doc.Clone()
	return nil
}

// atomicWriteFileJSON writes data to a temp file and renames it over
// filePath so a crash mid-write never leaves a truncated document.
func atomicWriteFileJSON(filePath string, data interface{}) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}
