package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookshelf/internal/models"
	"bookshelf/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows. The handlers turn these into form notices.
var (
	ErrMissingFields      = errors.New("username and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService handles registration and login.
type AuthService struct {
	users repository.Users
}

func NewAuthService(users repository.Users) *AuthService {
	return &AuthService{users: users}
}

// Register validates the submitted form and creates the user. Checks run in a
// fixed order and the first failure wins: missing fields, then password
// confirmation, then username uniqueness. Nothing is persisted on failure.
func (s *AuthService) Register(ctx context.Context, username, password, confirm string) (int, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return 0, ErrMissingFields
	}
	if password != confirm {
		return 0, ErrPasswordMismatch
	}

	_, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return 0, ErrUsernameTaken
	case !errors.Is(err, repository.ErrNotFound):
		return 0, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(ctx, username, hash)
	if err != nil {
		// Lost a race against a concurrent registration of the same name.
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	return id, nil
}

// Authenticate verifies the credentials and returns the user. Unknown
// username and wrong password collapse into one error so callers cannot
// enumerate accounts.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
