package handlers

import (
	"errors"
	"net/http"

	"bookshelf/internal/service"
	"bookshelf/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) editProfileForm(c *gin.Context) {
	h.render(c, http.StatusOK, "profile_edit.html", gin.H{
		"Username": h.identity(c).Username,
	})
}

func (h *Handler) editProfile(c *gin.Context) {
	ident := h.identity(c)
	username := c.PostForm("username")

	err := h.services.Users.Rename(c.Request.Context(), ident.UserID, username)
	switch {
	case err == nil:
		// Keep the session binding in step with the new name.
		if err := h.sessions.SignIn(c.Writer, c.Request, session.Identity{UserID: ident.UserID, Username: username}); err != nil {
			h.internalError(c, "session_refresh_failed", err)
			return
		}
		h.flashAndRedirect(c, "Profile updated.", "/profile/edit")
	case errors.Is(err, service.ErrMissingFields):
		h.render(c, http.StatusOK, "profile_edit.html", gin.H{
			"Error":    "Username is required.",
			"Username": username,
		})
	case errors.Is(err, service.ErrUsernameTaken):
		h.render(c, http.StatusOK, "profile_edit.html", gin.H{
			"Error":    "That username is already taken.",
			"Username": username,
		})
	default:
		h.internalError(c, "profile_rename_failed", err, "user_id", ident.UserID)
	}
}

func (h *Handler) deleteProfile(c *gin.Context) {
	ident := h.identity(c)
	if err := h.services.Users.Delete(c.Request.Context(), ident.UserID); err != nil {
		h.internalError(c, "account_delete_failed", err, "user_id", ident.UserID)
		return
	}
	if err := h.sessions.SignOut(c.Writer, c.Request); err != nil && h.log != nil {
		h.log.Errorw("session_sign_out_failed", "err", err)
	}
	h.flashAndRedirect(c, "Your account and books have been deleted.", "/")
}
