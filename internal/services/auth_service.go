package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"rootle-backend/internal/auth"
	"rootle-backend/internal/models"
	"rootle-backend/internal/store"
)

var (
	ErrInvalidInput = errors.New("username and password are required")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must not learn which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	users  store.UserStore
	tokens *auth.Manager
}

func NewAuthService(users store.UserStore, tokens *auth.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.Account{
		Username:     username,
		PasswordHash: string(bytes),
	}
	return s.users.Append(account)
}

// Login verifies credentials and returns a fresh signed token.
func (s *AuthService) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidInput
	}

	account, err := s.users.Get(username)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.Username)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
