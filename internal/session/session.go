package session

import (
	"net/http"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/models"

	"github.com/gorilla/sessions"
)

const (
	Name = "movie-session"

	isAuthKey     = "is_authenticated"
	userIDKey     = "user_id"
	usernameKey   = "username"
	userRoleKey   = "user_role"
	searchPageKey = "search_page"
)

// User is what the session caches about the signed-in user.
type User struct {
	ID       string
	Username string
	Role     string
}

// Manager wraps the cookie store. One session per interactive client,
// holding the auth flag, the current user and the search page offset.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

func (m *Manager) get(r *http.Request) *sessions.Session {
	// Get never returns a nil session; a bad cookie just yields a fresh one
	sess, _ := m.store.Get(r, Name)
	return sess
}

// Current returns the signed-in user recorded in the session, if any.
func (m *Manager) Current(r *http.Request) (*User, bool) {
	sess := m.get(r)
	if isAuth, _ := sess.Values[isAuthKey].(bool); !isAuth {
		return nil, false
	}
	return &User{
		ID:       getString(sess, userIDKey),
		Username: getString(sess, usernameKey),
		Role:     getString(sess, userRoleKey),
	}, true
}

// SignIn transitions the session from anonymous to authenticated.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, u *models.UserDoc) error {
	sess := m.get(r)
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.ID.Hex()
	sess.Values[usernameKey] = u.Username
	sess.Values[userRoleKey] = u.Role
	sess.Values[searchPageKey] = 0
	return sess.Save(r, w)
}

// SignOut clears everything, pagination state included, and expires the
// cookie.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess := m.get(r)
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// SearchPage returns the session's current search page offset (0 based).
func (m *Manager) SearchPage(r *http.Request) int {
	sess := m.get(r)
	if page, ok := sess.Values[searchPageKey].(int); ok && page >= 0 {
		return page
	}
	return 0
}

// SetSearchPage stores the page offset, floored at 0.
func (m *Manager) SetSearchPage(w http.ResponseWriter, r *http.Request, page int) error {
	if page < 0 {
		page = 0
	}
	sess := m.get(r)
	sess.Values[searchPageKey] = page
	return sess.Save(r, w)
}

func getString(sess *sessions.Session, key string) string {
	v, _ := sess.Values[key].(string)
	return v
}
