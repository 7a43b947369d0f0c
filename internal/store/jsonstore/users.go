package jsonstore

import (
	"path/filepath"
	"sync"

	"rootle-backend/internal/models"
	"rootle-backend/internal/store"
)

type UserStore struct {
	path  string
	mutex sync.Mutex
}

func NewUserStore(dataDir string) *UserStore {
	return &UserStore{path: filepath.Join(dataDir, "users.json")}
}

func (s *UserStore) Append(account models.Account) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	accounts, err := readDocument[models.Account](s.path)
	if err != nil {
		return err
	}

	for _, a := range accounts {
		if a.Username == account.Username {
			return store.ErrDuplicateAccount
		}
	}

	accounts = append(accounts, account)
	return writeDocument(s.path, accounts)
}

func (s *UserStore) Get(username string) (*models.Account, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	accounts, err := readDocument[models.Account](s.path)
	if err != nil {
		return nil, err
	}

	for _, a := range accounts {
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, store.ErrAccountNotFound
}
