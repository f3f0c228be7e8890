package handlers

import (
	"errors"
	"net/http"

	"bookshelf/internal/service"
	"bookshelf/internal/session"

	"github.com/gin-gonic/gin"
)

const noticeInvalidCredentials = "Invalid username or password."

func (h *Handler) loginForm(c *gin.Context) {
	if h.identity(c).Authenticated() {
		h.redirect(c, "/")
		return
	}
	h.render(c, http.StatusOK, "login.html", nil)
}

func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	u, err := h.services.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("login_failed", "username", username)
			}
			h.render(c, http.StatusOK, "login.html", gin.H{
				"Error":    noticeInvalidCredentials,
				"Username": username,
			})
			return
		}
		h.internalError(c, "login_lookup_failed", err, "username", username)
		return
	}

	if err := h.sessions.SignIn(c.Writer, c.Request, session.Identity{UserID: u.ID, Username: u.Username}); err != nil {
		h.internalError(c, "session_sign_in_failed", err)
		return
	}
	h.redirect(c, "/")
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.sessions.SignOut(c.Writer, c.Request); err != nil && h.log != nil {
		h.log.Errorw("session_sign_out_failed", "err", err)
	}
	h.flashAndRedirect(c, "You have been logged out.", "/login")
}

func (h *Handler) registerForm(c *gin.Context) {
	if h.identity(c).Authenticated() {
		h.redirect(c, "/")
		return
	}
	h.render(c, http.StatusOK, "register.html", nil)
}

func (h *Handler) register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	_, err := h.services.Register(c.Request.Context(), username, password, confirm)
	switch {
	case err == nil:
		h.flashAndRedirect(c, "Registration successful. Please log in.", "/login")
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrUsernameTaken):
		if h.log != nil {
			h.log.Infow("registration_rejected", "username", username, "reason", err)
		}
		h.render(c, http.StatusOK, "register.html", gin.H{
			"Error":    registrationNotice(err),
			"Username": username,
		})
	default:
		h.internalError(c, "registration_failed", err, "username", username)
	}
}

// registrationNotice turns a validation error into the user-visible message.
func registrationNotice(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		return "Username and password are required."
	case errors.Is(err, service.ErrPasswordMismatch):
		return "Passwords do not match."
	case errors.Is(err, service.ErrUsernameTaken):
		return "That username is already taken."
	}
	return err.Error()
}
