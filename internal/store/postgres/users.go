package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"rootle-backend/internal/models"
	"rootle-backend/internal/store"
)

const uniqueViolation = "23505"

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Append(account models.Account) error {
	query := `
		insert into accounts (username, password_hash)
		values ($1, $2)
	`
	if _, err := s.db.Exec(query, account.Username, account.PasswordHash); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return store.ErrDuplicateAccount
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

func (s *UserStore) Get(username string) (*models.Account, error) {
	var account models.Account
	query := "select username, password_hash from accounts where username = $1"

	if err := s.db.Get(&account, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}
