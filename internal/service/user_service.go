package service

import (
	"context"
	"errors"
	"strings"

	"bookshelf/internal/models"
	"bookshelf/internal/repository"
)

type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Rename changes a user's username, re-checking uniqueness the same way
// registration does.
func (s *UserService) Rename(ctx context.Context, id int, username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrMissingFields
	}

	existing, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		if existing.ID == id {
			return nil // renaming to the current name is a no-op
		}
		return ErrUsernameTaken
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}

	if err := s.users.UpdateUsername(ctx, id, username); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Delete removes the account. The repository deletes all owned books in the
// same transaction.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.users.Delete(ctx, id)
}
