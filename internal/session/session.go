// Package session binds a browser session cookie to an authenticated user
// and carries one-shot flash notices between redirects.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "bookshelf-session"

// Identity is the user bound to the current session. The zero value is the
// anonymous marker.
type Identity struct {
	UserID   int
	Username string
}

// Authenticated reports whether the identity belongs to a signed-in user.
func (i Identity) Authenticated() bool {
	return i.UserID != 0
}

// Manager reads and writes the signed session cookie.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Current returns the identity bound to the request's session, or the
// anonymous identity when the cookie is absent or invalid.
func (m *Manager) Current(r *http.Request) Identity {
	session, _ := m.store.Get(r, sessionName)
	userID, ok := session.Values["user_id"].(int)
	if !ok {
		return Identity{}
	}
	username, _ := session.Values["username"].(string)
	return Identity{UserID: userID, Username: username}
}

// SignIn binds the session to the given identity.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, ident Identity) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values["user_id"] = ident.UserID
	session.Values["username"] = ident.Username
	return session.Save(r, w)
}

// SignOut clears the session binding unconditionally.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values = make(map[interface{}]interface{})
	return session.Save(r, w)
}

// Flash queues a one-shot notice shown on the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, msg string) {
	session, _ := m.store.Get(r, sessionName)
	session.AddFlash(msg)
	_ = session.Save(r, w)
}

// Flashes drains and returns the queued notices.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := m.store.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save(r, w) // persist the drain
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
