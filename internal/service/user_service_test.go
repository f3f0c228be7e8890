package service

import (
	"context"
	"testing"

	"bookshelf/internal/models"
	"bookshelf/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Rename(t *testing.T) {
	t.Run("empty username rejected", func(t *testing.T) {
		repo := &mockUsersRepo{}
		svc := NewUserService(repo)

		err := svc.Rename(context.Background(), 7, "   ")
		assert.ErrorIs(t, err, ErrMissingFields)
		assert.Empty(t, repo.updateCalls)
	})

	t.Run("taken username rejected", func(t *testing.T) {
		repo := &mockUsersRepo{
			GetByUsernameFn: func(string) (*models.User, error) {
				return &models.User{ID: 9, Username: "taken"}, nil
			},
		}
		svc := NewUserService(repo)

		err := svc.Rename(context.Background(), 7, "taken")
		assert.ErrorIs(t, err, ErrUsernameTaken)
		assert.Empty(t, repo.updateCalls)
	})

	t.Run("renaming to own current name is a no-op", func(t *testing.T) {
		repo := &mockUsersRepo{
			GetByUsernameFn: func(string) (*models.User, error) {
				return &models.User{ID: 7, Username: "alice"}, nil
			},
		}
		svc := NewUserService(repo)

		require.NoError(t, svc.Rename(context.Background(), 7, "alice"))
		assert.Empty(t, repo.updateCalls)
	})

	t.Run("success", func(t *testing.T) {
		repo := &mockUsersRepo{
			GetByUsernameFn:  noUser,
			UpdateUsernameFn: func(int, string) error { return nil },
		}
		svc := NewUserService(repo)

		require.NoError(t, svc.Rename(context.Background(), 7, "alice2"))
		assert.Equal(t, []string{"alice2"}, repo.updateCalls)
	})

	t.Run("constraint race maps to ErrUsernameTaken", func(t *testing.T) {
		repo := &mockUsersRepo{
			GetByUsernameFn:  noUser,
			UpdateUsernameFn: func(int, string) error { return repository.ErrDuplicate },
		}
		svc := NewUserService(repo)

		err := svc.Rename(context.Background(), 7, "alice2")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestUserService_DeleteDelegatesToRepository(t *testing.T) {
	repo := &mockUsersRepo{
		DeleteFn: func(int) error { return nil },
	}
	svc := NewUserService(repo)

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, []int{7}, repo.deleteCalls)
}
