package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bookshelf/internal/models"
	"bookshelf/internal/repository"

	"github.com/gin-gonic/gin"
)

func (h *Handler) index(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "users_list_failed", err)
		return
	}
	h.render(c, http.StatusOK, "index.html", gin.H{"Users": users})
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "users_list_failed", err)
		return
	}
	h.render(c, http.StatusOK, "users.html", gin.H{"Users": users})
}

// fetchUser loads the target user or renders 404/500.
func (h *Handler) fetchUser(c *gin.Context) (*models.User, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.renderError(c, http.StatusNotFound)
		return nil, false
	}
	u, err := h.services.Users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.renderError(c, http.StatusNotFound)
		} else {
			h.internalError(c, "user_fetch_failed", err, "user_id", id)
		}
		return nil, false
	}
	return u, true
}

func (h *Handler) viewUser(c *gin.Context) {
	u, ok := h.fetchUser(c)
	if !ok {
		return
	}
	books, err := h.services.Books.ListByOwner(c.Request.Context(), u.ID)
	if err != nil {
		h.internalError(c, "user_books_list_failed", err, "user_id", u.ID)
		return
	}
	h.render(c, http.StatusOK, "user.html", gin.H{
		"Profile":   u,
		"BookCount": len(books),
	})
}

func (h *Handler) userBooks(c *gin.Context) {
	u, ok := h.fetchUser(c)
	if !ok {
		return
	}
	books, err := h.services.Books.ListByOwner(c.Request.Context(), u.ID)
	if err != nil {
		h.internalError(c, "user_books_list_failed", err, "user_id", u.ID)
		return
	}
	h.render(c, http.StatusOK, "user_books.html", gin.H{
		"Profile": u,
		"Books":   books,
	})
}
