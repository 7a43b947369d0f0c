package postgres

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"rootle-backend/internal/models"
	"rootle-backend/internal/store"
)

type FileStore struct {
	db *sqlx.DB
}

func NewFileStore(db *sqlx.DB) *FileStore {
	return &FileStore{db: db}
}

func (s *FileStore) Append(record models.FileRecord) error {
	query := `
		insert into files (id, original_name, saved_name, uploader, upload_date, mimetype, size, faculty, department)
		values (:id, :original_name, :saved_name, :uploader, :upload_date, :mimetype, :size, :faculty, :department)
	`
	if _, err := s.db.NamedExec(query, record); err != nil {
		return fmt.Errorf("failed to insert file record: %w", err)
	}
	return nil
}

func (s *FileStore) Query(filter store.FileFilter) ([]models.FileRecord, error) {
	query := "select id, original_name, saved_name, uploader, upload_date, mimetype, size, faculty, department from files"

	var conds []string
	var args []interface{}
	addCond := func(column, value string) {
		if value != "" {
			args = append(args, value)
			conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	addCond("uploader", filter.Uploader)
	addCond("faculty", filter.Faculty)
	addCond("department", filter.Department)

	if len(conds) > 0 {
		query += " where " + strings.Join(conds, " and ")
	}
	query += " order by seq"

	records := make([]models.FileRecord, 0)
	if err := s.db.Select(&records, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query file records: %w", err)
	}
	return records, nil
}
