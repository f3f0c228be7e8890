package handlers

import (
	"net/http"
	"time"

	"bookshelf/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const identityKey = "identity"

// identityMiddleware resolves the session identity once per request and
// stores it in the Gin context so handlers never read ambient session state.
func (h *Handler) identityMiddleware(c *gin.Context) {
	c.Set(identityKey, h.sessions.Current(c.Request))
	c.Next()
}

// identity returns the request-scoped identity (anonymous when unset).
func (h *Handler) identity(c *gin.Context) session.Identity {
	if v, ok := c.Get(identityKey); ok {
		if ident, ok := v.(session.Identity); ok {
			return ident
		}
	}
	return session.Identity{}
}

// requireAuth redirects anonymous visitors to the login page with a warning
// notice. Runs before any ownership check on mutating routes.
func (h *Handler) requireAuth(c *gin.Context) {
	if !h.identity(c).Authenticated() {
		h.sessions.Flash(c.Writer, c.Request, "Please log in to continue.")
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// requestLogger tags every request with an id and logs the outcome.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	reqID := uuid.NewString()

	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
