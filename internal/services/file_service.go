package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"rootle-backend/internal/blob"
	"rootle-backend/internal/models"
	"rootle-backend/internal/store"
)

var (
	ErrMissingFile           = errors.New("no file provided")
	ErrMissingClassification = errors.New("faculty and department are required")
	ErrUnsupportedType       = errors.New("invalid file type")
)

// allowedMimeTypes is the upload allow-list: PDF, both Word formats, and
// any image type. Anything else is rejected before a byte hits disk.
var allowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

func mimeTypeAllowed(mimeType string) bool {
	return allowedMimeTypes[mimeType] || strings.HasPrefix(mimeType, "image/")
}

type UploadInput struct {
	OriginalName string
	MimeType     string
	Faculty      string
	Department   string
	Data         io.Reader
}

type FileService struct {
	files store.FileStore
	blobs *blob.Store
}

func NewFileService(files store.FileStore, blobs *blob.Store) *FileService {
	return &FileService{files: files, blobs: blobs}
}

// Upload validates the request, stores the blob under a generated key and
// appends the metadata record. All validation happens before any write,
// so a rejected upload leaves no partial state.
func (s *FileService) Upload(uploader string, in UploadInput) (*models.FileRecord, error) {
	if in.Data == nil || in.OriginalName == "" {
		return nil, ErrMissingFile
	}
	if in.Faculty == "" || in.Department == "" {
		return nil, ErrMissingClassification
	}
	if !mimeTypeAllowed(in.MimeType) {
		return nil, ErrUnsupportedType
	}

	key, size, err := s.blobs.Save(in.OriginalName, in.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	record := models.FileRecord{
		ID:           uuid.NewString(),
		OriginalName: in.OriginalName,
		SavedName:    key,
		Uploader:     uploader,
		UploadDate:   time.Now().UTC(),
		MimeType:     in.MimeType,
		Size:         size,
		Faculty:      in.Faculty,
		Department:   in.Department,
	}

	if err := s.files.Append(record); err != nil {
		// keep blob and record in step
		s.blobs.Remove(key)
		return nil, fmt.Errorf("failed to save file metadata: %w", err)
	}
	return &record, nil
}

// ListMine returns the caller's own uploads, optionally narrowed by
// faculty and department.
func (s *FileService) ListMine(uploader, faculty, department string) ([]models.FileRecord, error) {
	return s.files.Query(store.FileFilter{
		Uploader:   uploader,
		Faculty:    faculty,
		Department: department,
	})
}

// ListAll returns every upload regardless of owner, optionally narrowed
// by faculty and department.
func (s *FileService) ListAll(faculty, department string) ([]models.FileRecord, error) {
	return s.files.Query(store.FileFilter{
		Faculty:    faculty,
		Department: department,
	})
}

// Open resolves a storage key against the blob store for download.
func (s *FileService) Open(key string) (*os.File, int64, error) {
	return s.blobs.Open(key)
}
