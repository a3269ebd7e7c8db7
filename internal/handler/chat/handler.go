package chat

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"chatfront/internal/middleware"
	chatmodel "chatfront/internal/model/chat"
	"chatfront/internal/service/session"
	"chatfront/internal/view"
)

// Completer produces one assistant reply for one user message. Any
// upstream failure is already folded into the returned text.
type Completer interface {
	Complete(ctx context.Context, userText string) string
}

// Handler serves the chat page and message submission.
type Handler struct {
	sessions session.Store
	gateway  Completer
	views    *view.Templates
}

// New creates the chat handler.
func New(sessions session.Store, gateway Completer, views *view.Templates) *Handler {
	return &Handler{sessions: sessions, gateway: gateway, views: views}
}

// RegisterRoutes mounts the chat routes. Callers are expected to guard
// them with middleware.RequireUser.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleChatPage)
	r.Post("/chat", h.handleMessage)
}

func (h *Handler) handleChatPage(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r.Context(), middleware.Token(r.Context()))

	data := view.ChatData{
		User:         sess.User,
		Conversation: view.Conversation(sess.Conversation),
	}
	if err := h.views.RenderChat(w, data); err != nil {
		log.Printf("[chat] render page failed: %v", err)
	}
}

// handleMessage appends the user turn, asks the gateway for a reply,
// appends the assistant turn and redirects back to the page so a
// refresh does not resubmit.
func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	text := strings.TrimSpace(r.FormValue("message"))
	if text == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	token := middleware.Token(r.Context())
	sess, _ := h.sessions.Get(r.Context(), token)

	sess.Conversation = append(sess.Conversation, chatmodel.UserTurn(text))
	reply := h.gateway.Complete(r.Context(), text)
	sess.Conversation = append(sess.Conversation, chatmodel.AssistantTurn(reply))

	h.sessions.Put(r.Context(), token, sess)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
