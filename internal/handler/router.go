package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"chatfront/internal/handler/auth"
	"chatfront/internal/handler/chat"
	middlewarePkg "chatfront/internal/middleware"
	"chatfront/internal/model/user"
	"chatfront/internal/service/session"
	"chatfront/internal/view"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(users user.Store, sessions session.Store, sessionMgr *session.Manager, gateway chat.Completer, views *view.Templates) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.WithSession(sessionMgr))

	authHandler := auth.New(users, sessions, views)
	chatHandler := chat.New(sessions, gateway, views)

	authHandler.RegisterRoutes(r)

	r.Group(func(g chi.Router) {
		g.Use(middlewarePkg.RequireUser(sessions))
		chatHandler.RegisterRoutes(g)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
