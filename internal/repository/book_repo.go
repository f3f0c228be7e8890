package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookshelf/internal/models"
)

type BookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

var _ Books = (*BookRepository)(nil)

const (
	insertBookSQL = `
		INSERT INTO books (title, author, year, genre, description, status, owner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	selectBookSQL = `
		SELECT id, title, author, year, genre, description, status, owner_id
		FROM books WHERE id = ?
	`
	selectAllBooksSQL = `
		SELECT id, title, author, year, genre, description, status, owner_id
		FROM books ORDER BY title ASC
	`
	selectBooksByOwnerSQL = `
		SELECT id, title, author, year, genre, description, status, owner_id
		FROM books WHERE owner_id = ? ORDER BY title ASC
	`
	// owner_id deliberately absent: ownership is immutable after creation.
	updateBookSQL = `
		UPDATE books SET title = ?, author = ?, year = ?, genre = ?, description = ?
		WHERE id = ?
	`
	updateBookStatusSQL = `UPDATE books SET status = ? WHERE id = ?`
	deleteBookSQL       = `DELETE FROM books WHERE id = ?`
)

// yearArg converts the optional year into a driver-friendly value (NULL when nil).
func yearArg(year *int) any {
	if year == nil {
		return nil
	}
	return *year
}

// scanBook reads one book row, mapping a NULL year back to nil.
func scanBook(scan func(dest ...any) error) (models.Book, error) {
	var (
		b     models.Book
		year  sql.NullInt64
		genre sql.NullString
		desc  sql.NullString
	)
	if err := scan(&b.ID, &b.Title, &b.Author, &year, &genre, &desc, &b.Status, &b.OwnerID); err != nil {
		return models.Book{}, err
	}
	if year.Valid {
		y := int(year.Int64)
		b.Year = &y
	}
	b.Genre = genre.String
	b.Description = desc.String
	return b, nil
}

// Create inserts a new book and returns its ID. An empty status falls back to
// the not_started default.
func (r *BookRepository) Create(ctx context.Context, b models.Book) (int, error) {
	if b.Status == "" {
		b.Status = models.StatusNotStarted
	}
	res, err := r.db.ExecContext(ctx, insertBookSQL,
		b.Title, b.Author, yearArg(b.Year), b.Genre, b.Description, b.Status, b.OwnerID)
	if err != nil {
		return 0, fmt.Errorf("insert book %q: %w", b.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for book %q: %w", b.Title, err)
	}
	return int(lastID), nil
}

// GetByID fetches a book by id. Returns ErrNotFound if absent.
func (r *BookRepository) GetByID(ctx context.Context, id int) (*models.Book, error) {
	row := r.db.QueryRowContext(ctx, selectBookSQL, id)
	b, err := scanBook(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select book id=%d: %w", id, err)
	}
	return &b, nil
}

// ListAll returns every book in the catalog.
func (r *BookRepository) ListAll(ctx context.Context) ([]models.Book, error) {
	return r.list(ctx, selectAllBooksSQL)
}

// ListByOwner returns the books owned by one user.
func (r *BookRepository) ListByOwner(ctx context.Context, ownerID int) ([]models.Book, error) {
	return r.list(ctx, selectBooksByOwnerSQL, ownerID)
}

func (r *BookRepository) list(ctx context.Context, query string, args ...any) ([]models.Book, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select books: %w", err)
	}
	defer rows.Close()

	out := make([]models.Book, 0, 16)
	for rows.Next() {
		b, err := scanBook(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate book rows: %w", err)
	}
	return out, nil
}

// Update rewrites the editable fields of a book. Returns ErrNotFound if absent.
func (r *BookRepository) Update(ctx context.Context, b models.Book) error {
	res, err := r.db.ExecContext(ctx, updateBookSQL,
		b.Title, b.Author, yearArg(b.Year), b.Genre, b.Description, b.ID)
	if err != nil {
		return fmt.Errorf("update book id=%d: %w", b.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for book id=%d: %w", b.ID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus sets the reading status of a book. Returns ErrNotFound if absent.
func (r *BookRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	res, err := r.db.ExecContext(ctx, updateBookStatusSQL, status, id)
	if err != nil {
		return fmt.Errorf("update status for book id=%d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for book id=%d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a book. Returns ErrNotFound if absent.
func (r *BookRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteBookSQL, id)
	if err != nil {
		return fmt.Errorf("delete book id=%d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected deleting book id=%d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
