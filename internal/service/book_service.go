package service

import (
	"context"
	"errors"
	"strings"

	"bookshelf/internal/models"
	"bookshelf/internal/repository"
)

// ErrMissingBookFields rejects add/edit submissions without title or author.
var ErrMissingBookFields = errors.New("title and author are required")

// BookInput carries the editable fields of a book form. Year is nil when the
// field was left empty.
type BookInput struct {
	Title       string
	Author      string
	Year        *int
	Genre       string
	Description string
}

type BookService struct {
	books repository.Books
}

func NewBookService(books repository.Books) *BookService {
	return &BookService{books: books}
}

func validateBookInput(in BookInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Author) == "" {
		return ErrMissingBookFields
	}
	return nil
}

// Add creates a book owned by ownerID with the default not_started status.
func (s *BookService) Add(ctx context.Context, ownerID int, in BookInput) (int, error) {
	if err := validateBookInput(in); err != nil {
		return 0, err
	}
	return s.books.Create(ctx, models.Book{
		Title:       in.Title,
		Author:      in.Author,
		Year:        in.Year,
		Genre:       in.Genre,
		Description: in.Description,
		Status:      models.StatusNotStarted,
		OwnerID:     ownerID,
	})
}

func (s *BookService) Get(ctx context.Context, id int) (*models.Book, error) {
	return s.books.GetByID(ctx, id)
}

func (s *BookService) ListAll(ctx context.Context) ([]models.Book, error) {
	return s.books.ListAll(ctx)
}

func (s *BookService) ListByOwner(ctx context.Context, ownerID int) ([]models.Book, error) {
	return s.books.ListByOwner(ctx, ownerID)
}

// Update rewrites the editable fields; the owner column is never part of the
// statement, so ownership cannot change here.
func (s *BookService) Update(ctx context.Context, id int, in BookInput) error {
	if err := validateBookInput(in); err != nil {
		return err
	}
	return s.books.Update(ctx, models.Book{
		ID:          id,
		Title:       in.Title,
		Author:      in.Author,
		Year:        in.Year,
		Genre:       in.Genre,
		Description: in.Description,
	})
}

// UpdateStatus sets the reading status. Values outside the enum are silently
// ignored: no mutation, no error.
func (s *BookService) UpdateStatus(ctx context.Context, id int, status string) error {
	if !models.ValidStatus(status) {
		return nil
	}
	return s.books.UpdateStatus(ctx, id, status)
}

func (s *BookService) Delete(ctx context.Context, id int) error {
	return s.books.Delete(ctx, id)
}
