package handlers

import (
	"context"

	"bookshelf/internal/models"
	"bookshelf/internal/service"
	"bookshelf/internal/session"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int
	registerErr error
	authUser    *models.User
	authErr     error

	registerCalls int
	lastRegister  [3]string // username, password, confirm
	lastAuth      [2]string // username, password
}

func (m *mockAuth) Register(_ context.Context, username, password, confirm string) (int, error) {
	m.registerCalls++
	m.lastRegister = [3]string{username, password, confirm}
	return m.registerID, m.registerErr
}

func (m *mockAuth) Authenticate(_ context.Context, username, password string) (*models.User, error) {
	m.lastAuth = [2]string{username, password}
	if m.authErr != nil {
		return nil, m.authErr
	}
	return m.authUser, nil
}

type mockBooks struct {
	addID     int
	addErr    error
	getBook   *models.Book
	getErr    error
	listAll   []models.Book
	listOwned []models.Book
	updateErr error
	statusErr error
	deleteErr error

	addCalls    int
	lastAddIn   service.BookInput
	lastAddOwn  int
	updateCalls int
	lastUpdIn   service.BookInput
	statusCalls int
	lastStatus  string
	deleteCalls int
	lastDelete  int
	lastOwnerQ  int
}

func (m *mockBooks) Add(_ context.Context, ownerID int, in service.BookInput) (int, error) {
	m.addCalls++
	m.lastAddOwn = ownerID
	m.lastAddIn = in
	return m.addID, m.addErr
}

func (m *mockBooks) Get(_ context.Context, id int) (*models.Book, error) {
	return m.getBook, m.getErr
}

func (m *mockBooks) ListAll(_ context.Context) ([]models.Book, error) {
	return m.listAll, nil
}

func (m *mockBooks) ListByOwner(_ context.Context, ownerID int) ([]models.Book, error) {
	m.lastOwnerQ = ownerID
	return m.listOwned, nil
}

func (m *mockBooks) Update(_ context.Context, id int, in service.BookInput) error {
	m.updateCalls++
	m.lastUpdIn = in
	return m.updateErr
}

func (m *mockBooks) UpdateStatus(_ context.Context, id int, status string) error {
	m.statusCalls++
	m.lastStatus = status
	return m.statusErr
}

func (m *mockBooks) Delete(_ context.Context, id int) error {
	m.deleteCalls++
	m.lastDelete = id
	return m.deleteErr
}

type mockUsers struct {
	user      *models.User
	getErr    error
	list      []models.User
	renameErr error
	deleteErr error

	renameCalls int
	lastRename  string
	deleteCalls int
	lastDelete  int
}

func (m *mockUsers) Get(_ context.Context, id int) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

func (m *mockUsers) List(_ context.Context) ([]models.User, error) {
	return m.list, nil
}

func (m *mockUsers) Rename(_ context.Context, id int, username string) error {
	m.renameCalls++
	m.lastRename = username
	return m.renameErr
}

func (m *mockUsers) Delete(_ context.Context, id int) error {
	m.deleteCalls++
	m.lastDelete = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

const testTemplates = "../../web/templates/*.html"

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, session.NewManager("handler-test-secret"), nil)
	return h.InitRoutes(testTemplates)
}
