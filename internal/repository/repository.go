package repository

import (
	"context"
	"database/sql"

	"bookshelf/internal/models"
)

type Users interface {
	Create(ctx context.Context, username, passwordHash string) (int, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateUsername(ctx context.Context, id int, username string) error
	// Delete removes the user and every book they own in one transaction.
	Delete(ctx context.Context, id int) error
}

type Books interface {
	Create(ctx context.Context, b models.Book) (int, error)
	GetByID(ctx context.Context, id int) (*models.Book, error)
	ListAll(ctx context.Context) ([]models.Book, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Book, error)
	// Update writes title/author/year/genre/description; owner_id is never touched.
	Update(ctx context.Context, b models.Book) error
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Users Users
	Books Books
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Books: NewBookRepository(db),
	}
}
