package store

import (
	"errors"

	"rootle-backend/internal/models"
)

var (
	ErrDuplicateAccount = errors.New("username already exists")
	ErrAccountNotFound  = errors.New("account not found")
)

// FileFilter narrows a Query. Empty fields are unconstrained; supplied
// fields must all match (AND semantics).
type FileFilter struct {
	Uploader   string
	Faculty    string
	Department string
}

func (f FileFilter) Matches(r models.FileRecord) bool {
	if f.Uploader != "" && r.Uploader != f.Uploader {
		return false
	}
	if f.Faculty != "" && r.Faculty != f.Faculty {
		return false
	}
	if f.Department != "" && r.Department != f.Department {
		return false
	}
	return true
}

// UserStore is the durable credential collection. Append fails with
// ErrDuplicateAccount when the username is already taken.
type UserStore interface {
	Append(account models.Account) error
	Get(username string) (*models.Account, error)
}

// FileStore is the durable file-metadata collection. Query returns
// matching records in insertion order and never fails on an empty match.
type FileStore interface {
	Append(record models.FileRecord) error
	Query(filter FileFilter) ([]models.FileRecord, error)
}
