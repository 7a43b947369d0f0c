package jsonstore

import (
	"path/filepath"
	"sync"

	"rootle-backend/internal/models"
	"rootle-backend/internal/store"
)

type FileStore struct {
	path  string
	mutex sync.Mutex
}

func NewFileStore(dataDir string) *FileStore {
	return &FileStore{path: filepath.Join(dataDir, "files.json")}
}

func (s *FileStore) Append(record models.FileRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	records, err := readDocument[models.FileRecord](s.path)
	if err != nil {
		return err
	}

	records = append(records, record)
	return writeDocument(s.path, records)
}

func (s *FileStore) Query(filter store.FileFilter) ([]models.FileRecord, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	records, err := readDocument[models.FileRecord](s.path)
	if err != nil {
		return nil, err
	}

	matched := make([]models.FileRecord, 0, len(records))
	for _, r := range records {
		if filter.Matches(r) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}
