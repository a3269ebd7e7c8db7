package session

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

const cookieName = "chatfront_session"

// Manager issues and resolves the signed session-token cookie. The
// token itself is opaque; all state lives server-side in a Store.
type Manager struct {
	codec *securecookie.SecureCookie
}

// NewManager builds a Manager signing cookies with the supplied secret.
func NewManager(secret []byte) *Manager {
	return &Manager{codec: securecookie.New(secret, nil)}
}

// Token resolves the caller's session token, minting a fresh one when
// the cookie is absent or fails signature verification.
func (m *Manager) Token(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(cookieName); err == nil {
		var token string
		if err := m.codec.Decode(cookieName, cookie.Value, &token); err == nil && token != "" {
			return token
		}
	}

	token := uuid.NewString()
	encoded, err := m.codec.Encode(cookieName, token)
	if err != nil {
		// Encode only fails on a broken codec; the caller still gets a
		// usable token for the current request.
		return token
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}
