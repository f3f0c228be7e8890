package handlers

import (
	"net/http"

	"bookshelf/internal/logger"
	"bookshelf/internal/service"
	"bookshelf/internal/session"

	"github.com/gin-gonic/gin"
)

// Handler wires the HTTP layer to services, sessions and logging.
type Handler struct {
	services *service.Service
	sessions *session.Manager
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, sessions *session.Manager, log *logger.Logger) *Handler {
	return &Handler{services: services, sessions: sessions, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// templateGlob locates the HTML templates (e.g. "web/templates/*.html").
func (h *Handler) InitRoutes(templateGlob string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger, h.identityMiddleware)
	router.LoadHTMLGlob(templateGlob)

	// Home and public listings
	router.GET("/", h.index)
	router.GET("/users", h.listUsers)
	router.GET("/users/:id", h.viewUser)
	router.GET("/users/:id/books", h.userBooks)

	h.registerAuthRoutes(router)
	h.registerBookRoutes(router)
	h.registerProfileRoutes(router)

	// Unknown paths share the generic error view.
	router.NoRoute(func(c *gin.Context) {
		h.renderError(c, http.StatusNotFound)
	})

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/login", h.loginForm)
	r.POST("/login", h.login)
	r.GET("/logout", h.logout)
	r.GET("/register", h.registerForm)
	r.POST("/register", h.register)
}

func (h *Handler) registerBookRoutes(r *gin.Engine) {
	r.GET("/my-books", h.requireAuth, h.myBooks)

	books := r.Group("/books")
	{
		books.GET("", h.listBooks)
		books.GET("/:id/view", h.viewBook)

		// Mutating routes check authentication before anything else.
		books.GET("/add", h.requireAuth, h.addBookForm)
		books.POST("/add", h.requireAuth, h.addBook)
		books.GET("/:id/edit", h.requireAuth, h.editBookForm)
		books.POST("/:id/edit", h.requireAuth, h.editBook)
		books.POST("/:id/delete", h.requireAuth, h.deleteBook)
		books.POST("/:id/status", h.requireAuth, h.updateBookStatus)
	}
}

func (h *Handler) registerProfileRoutes(r *gin.Engine) {
	profile := r.Group("/profile", h.requireAuth)
	{
		profile.GET("/edit", h.editProfileForm)
		profile.POST("/edit", h.editProfile)
		profile.POST("/delete", h.deleteProfile)
	}
}
