package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// render executes a page template with the identity and any pending flash
// notices merged into the data.
func (h *Handler) render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["User"] = h.identity(c)
	data["Flashes"] = h.sessions.Flashes(c.Writer, c.Request)
	c.HTML(code, name, data)
}

// renderError is the single mapping from a status code to the generic error
// view (404, 403 and 500 all land here).
func (h *Handler) renderError(c *gin.Context, code int) {
	c.HTML(code, "error.html", gin.H{
		"Code": code,
		"Text": http.StatusText(code),
		"User": h.identity(c),
	})
	c.Abort()
}

// internalError logs the failure and renders the 500 view.
func (h *Handler) internalError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	h.renderError(c, http.StatusInternalServerError)
}

// redirect ends a handler with a 303 so the browser re-requests via GET.
func (h *Handler) redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// flashAndRedirect queues a notice and redirects.
func (h *Handler) flashAndRedirect(c *gin.Context, msg, location string) {
	h.sessions.Flash(c.Writer, c.Request, msg)
	h.redirect(c, location)
}
