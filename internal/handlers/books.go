package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"bookshelf/internal/models"
	"bookshelf/internal/repository"
	"bookshelf/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	noticeNotYourBook   = "You can only modify your own books."
	noticeMissingFields = "Title and author are required."
	noticeInvalidYear   = "Year must be a whole number."
)

// bookForm echoes raw form values back into a re-rendered template.
type bookForm struct {
	Title       string
	Author      string
	Year        string
	Genre       string
	Description string
}

func bookFormFromRequest(c *gin.Context) bookForm {
	return bookForm{
		Title:       c.PostForm("title"),
		Author:      c.PostForm("author"),
		Year:        c.PostForm("year"),
		Genre:       c.PostForm("genre"),
		Description: c.PostForm("description"),
	}
}

func bookFormFromModel(b *models.Book) bookForm {
	f := bookForm{
		Title:       b.Title,
		Author:      b.Author,
		Genre:       b.Genre,
		Description: b.Description,
	}
	if b.Year != nil {
		f.Year = strconv.Itoa(*b.Year)
	}
	return f
}

// toInput validates the form. An empty year stays nil; a non-numeric year is
// a validation error, not a zero.
func (f bookForm) toInput() (service.BookInput, string) {
	in := service.BookInput{
		Title:       f.Title,
		Author:      f.Author,
		Genre:       f.Genre,
		Description: f.Description,
	}
	if strings.TrimSpace(f.Title) == "" || strings.TrimSpace(f.Author) == "" {
		return in, noticeMissingFields
	}
	if raw := strings.TrimSpace(f.Year); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return in, noticeInvalidYear
		}
		in.Year = &y
	}
	return in, ""
}

// bookID parses the :id path parameter; anything non-numeric is a 404.
func (h *Handler) bookID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.renderError(c, http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// fetchBook loads the target book or renders 404/500.
func (h *Handler) fetchBook(c *gin.Context, id int) (*models.Book, bool) {
	b, err := h.services.Books.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.renderError(c, http.StatusNotFound)
		} else {
			h.internalError(c, "book_fetch_failed", err, "book_id", id)
		}
		return nil, false
	}
	return b, true
}

// authorizeBook enforces the ownership guard. Denial is soft: a notice plus a
// redirect to the read-only view, never an HTTP error.
func (h *Handler) authorizeBook(c *gin.Context, b *models.Book) bool {
	if service.CanModify(h.identity(c), b) {
		return true
	}
	if h.log != nil {
		h.log.Infow("book_modify_denied", "book_id", b.ID, "user_id", h.identity(c).UserID)
	}
	h.flashAndRedirect(c, noticeNotYourBook, bookViewPath(b.ID))
	return false
}

func bookViewPath(id int) string {
	return fmt.Sprintf("/books/%d/view", id)
}

func (h *Handler) listBooks(c *gin.Context) {
	books, err := h.services.Books.ListAll(c.Request.Context())
	if err != nil {
		h.internalError(c, "books_list_failed", err)
		return
	}
	h.render(c, http.StatusOK, "books.html", gin.H{"Books": books})
}

func (h *Handler) myBooks(c *gin.Context) {
	ident := h.identity(c)
	books, err := h.services.Books.ListByOwner(c.Request.Context(), ident.UserID)
	if err != nil {
		h.internalError(c, "my_books_list_failed", err, "user_id", ident.UserID)
		return
	}
	h.render(c, http.StatusOK, "my_books.html", gin.H{"Books": books})
}

func (h *Handler) viewBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}
	b, ok := h.fetchBook(c, id)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, "book.html", gin.H{
		"Book":      b,
		"CanModify": service.CanModify(h.identity(c), b),
		"Statuses":  []string{models.StatusNotStarted, models.StatusReading, models.StatusFinished},
	})
}

func (h *Handler) addBookForm(c *gin.Context) {
	h.render(c, http.StatusOK, "book_form.html", gin.H{
		"Action": "/books/add",
		"Title":  "Add book",
		"Form":   bookForm{},
	})
}

func (h *Handler) addBook(c *gin.Context) {
	form := bookFormFromRequest(c)
	in, notice := form.toInput()
	if notice != "" {
		h.render(c, http.StatusOK, "book_form.html", gin.H{
			"Action": "/books/add",
			"Title":  "Add book",
			"Form":   form,
			"Error":  notice,
		})
		return
	}

	ident := h.identity(c)
	id, err := h.services.Books.Add(c.Request.Context(), ident.UserID, in)
	if err != nil {
		h.internalError(c, "book_add_failed", err, "user_id", ident.UserID)
		return
	}
	h.flashAndRedirect(c, "Book added.", bookViewPath(id))
}

func (h *Handler) editBookForm(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}
	b, ok := h.fetchBook(c, id)
	if !ok {
		return
	}
	if !h.authorizeBook(c, b) {
		return
	}
	h.render(c, http.StatusOK, "book_form.html", gin.H{
		"Action": fmt.Sprintf("/books/%d/edit", b.ID),
		"Title":  "Edit book",
		"Form":   bookFormFromModel(b),
	})
}

func (h *Handler) editBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}
	b, ok := h.fetchBook(c, id)
	if !ok {
		return
	}
	if !h.authorizeBook(c, b) {
		return
	}

	form := bookFormFromRequest(c)
	in, notice := form.toInput()
	if notice != "" {
		h.render(c, http.StatusOK, "book_form.html", gin.H{
			"Action": fmt.Sprintf("/books/%d/edit", b.ID),
			"Title":  "Edit book",
			"Form":   form,
			"Error":  notice,
		})
		return
	}

	if err := h.services.Books.Update(c.Request.Context(), b.ID, in); err != nil {
		h.internalError(c, "book_update_failed", err, "book_id", b.ID)
		return
	}
	h.flashAndRedirect(c, "Book updated.", bookViewPath(b.ID))
}

func (h *Handler) deleteBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}
	b, ok := h.fetchBook(c, id)
	if !ok {
		return
	}
	if !h.authorizeBook(c, b) {
		return
	}

	if err := h.services.Books.Delete(c.Request.Context(), b.ID); err != nil {
		h.internalError(c, "book_delete_failed", err, "book_id", b.ID)
		return
	}
	h.flashAndRedirect(c, "Book deleted.", "/my-books")
}

func (h *Handler) updateBookStatus(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}
	b, ok := h.fetchBook(c, id)
	if !ok {
		return
	}
	if !h.authorizeBook(c, b) {
		return
	}

	status := c.PostForm("status")
	if err := h.services.Books.UpdateStatus(c.Request.Context(), b.ID, status); err != nil {
		h.internalError(c, "book_status_failed", err, "book_id", b.ID, "status", status)
		return
	}
	// Unknown status values are ignored upstream; only flash for real changes.
	if models.ValidStatus(status) {
		h.sessions.Flash(c.Writer, c.Request, "Status updated.")
	}
	h.redirect(c, bookViewPath(b.ID))
}
