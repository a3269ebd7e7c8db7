package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"chatfront/internal/middleware"
	"chatfront/internal/model/chat"
	"chatfront/internal/model/user"
	"chatfront/internal/service/session"
	"chatfront/internal/view"
)

// Handler serves the login, registration and logout routes.
type Handler struct {
	users    user.Store
	sessions session.Store
	views    *view.Templates
}

// New creates the auth handler.
func New(users user.Store, sessions session.Store, views *view.Templates) *Handler {
	return &Handler{users: users, sessions: sessions, views: views}
}

// RegisterRoutes mounts the public auth routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/login", h.handleLoginPage)
	r.Post("/login", h.handleLogin)
	r.Get("/register", h.handleRegisterPage)
	r.Post("/register", h.handleRegister)
	r.Get("/logout", h.handleLogout)
}

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, view.FormData{})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	identity, ok := h.users.Authenticate(username, password)
	if !ok {
		h.renderLogin(w, view.FormData{Error: "Invalid credentials"})
		return
	}

	h.startSession(w, r, identity)
}

func (h *Handler) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, view.FormData{})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.renderRegister(w, view.FormData{Error: "Username and password are required"})
		return
	}

	if err := h.users.Create(username, password); err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			h.renderRegister(w, view.FormData{Error: "Username already taken"})
			return
		}
		log.Printf("[auth] create user failed: %v", err)
		h.renderRegister(w, view.FormData{Error: "Registration failed"})
		return
	}

	h.startSession(w, r, username)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(r.Context(), middleware.Token(r.Context()))
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// startSession binds the identity to the caller's session with a fresh
// empty transcript and completes the post/redirect/get cycle.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, identity string) {
	token := middleware.Token(r.Context())
	h.sessions.Put(r.Context(), token, session.Session{
		User:         identity,
		Conversation: []chat.Turn{},
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderLogin(w http.ResponseWriter, data view.FormData) {
	if err := h.views.RenderLogin(w, data); err != nil {
		log.Printf("[auth] render login failed: %v", err)
	}
}

func (h *Handler) renderRegister(w http.ResponseWriter, data view.FormData) {
	if err := h.views.RenderRegister(w, data); err != nil {
		log.Printf("[auth] render register failed: %v", err)
	}
}
