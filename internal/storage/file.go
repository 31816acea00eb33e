// Package storage provides the file-backed persistence store for
// countdown data. Each key maps to one file in the data directory;
// writes go through a temp file and rename so a crash never leaves a
// half-written blob behind.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aBirrueta/Tick/countdown"
)

// FileStore implements countdown.Store on top of a directory of files.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created
// lazily on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Get reads the bytes stored under key. A missing file reports
// countdown.ErrKeyNotFound.
func (s *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", countdown.ErrKeyNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

// Set writes data under key atomically.
func (s *FileStore) Set(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	target := s.path(key)
	tmpFile, err := os.CreateTemp(s.dir, filepath.Base(target)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmpFile.Name()

	_, err = tmpFile.Write(data)
	if closeErr := tmpFile.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(name, target); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// path maps a key to its file. Keys are used verbatim as file names;
// the engine only uses fixed keys with no separators.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
