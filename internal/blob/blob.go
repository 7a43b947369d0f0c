// Package blob stores uploaded binary content on the local filesystem,
// one file per server-generated storage key. The metadata store is the
// only index into this directory; no reverse lookup exists.
package blob

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("file not found")

type Store struct {
	baseDir string
}

func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save writes data to disk under a freshly generated storage key and
// returns the key and the number of bytes written. The key is a random
// UUID plus the original file's extension, so two uploads can never
// collide. Content goes to a temp file first and is renamed into place.
func (s *Store) Save(originalName string, data io.Reader) (string, int64, error) {
	key := uuid.NewString() + safeExt(originalName)

	tmpPath := filepath.Join(s.baseDir, fmt.Sprintf("tmp-%d", time.Now().UnixNano()))
	defer os.Remove(tmpPath)

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", 0, err
	}
	size, err := io.Copy(f, data)
	f.Close()
	if err != nil {
		return "", 0, err
	}

	if err := os.Rename(tmpPath, filepath.Join(s.baseDir, key)); err != nil {
		return "", 0, err
	}
	return key, size, nil
}

// Open resolves a storage key to its blob. Keys containing path
// separators or traversal elements are rejected before touching the
// filesystem, since Download accepts the key straight from the URL.
func (s *Store) Open(key string) (*os.File, int64, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, ErrNotFound
	}
	if err != nil {
		return nil, 0, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

// Remove deletes the blob for key. Missing blobs are not an error.
func (s *Store) Remove(key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) keyPath(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == "." || key == ".." {
		return "", ErrNotFound
	}
	return filepath.Join(s.baseDir, key), nil
}

// safeExt extracts a lowercase extension from a client-supplied filename,
// dropping anything that could not have come from an honest name.
func safeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if ext == "" || ext == "." || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
