package service

import (
	"context"

	"bookshelf/internal/models"
	"bookshelf/internal/repository"
	"bookshelf/internal/session"
)

type Authorization interface {
	Register(ctx context.Context, username, password, confirm string) (int, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// Books exposes catalog operations. Ownership checks stay with the caller
// (see CanModify); these methods trust the id they are given.
type Books interface {
	Add(ctx context.Context, ownerID int, in BookInput) (int, error)
	Get(ctx context.Context, id int) (*models.Book, error)
	ListAll(ctx context.Context) ([]models.Book, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Book, error)
	Update(ctx context.Context, id int, in BookInput) error
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
}

type Users interface {
	Get(ctx context.Context, id int) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Rename(ctx context.Context, id int, username string) error
	Delete(ctx context.Context, id int) error
}

// CanModify is the ownership guard: only the authenticated owner of a book
// may mutate it.
func CanModify(ident session.Identity, b *models.Book) bool {
	return ident.Authenticated() && b != nil && ident.UserID == b.OwnerID
}

type Service struct {
	Authorization
	Books
	Users
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users),
		Books:         NewBookService(repos.Books),
		Users:         NewUserService(repos.Users),
	}
}
