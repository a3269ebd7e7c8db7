package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates renders the application's pages from the embedded set.
type Templates struct {
	set *template.Template
}

// New parses the embedded page templates.
func New() (*Templates, error) {
	set, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Templates{set: set}, nil
}

// FormData feeds the login and register pages. Error, when non-empty,
// is shown inline above the form.
type FormData struct {
	Error string
}

// ChatData feeds the chat page. Conversation is already-escaped markup
// produced by Conversation.
type ChatData struct {
	User         string
	Conversation template.HTML
}

func (t *Templates) RenderLogin(w io.Writer, data FormData) error {
	return t.set.ExecuteTemplate(w, "login.html", data)
}

func (t *Templates) RenderRegister(w io.Writer, data FormData) error {
	return t.set.ExecuteTemplate(w, "register.html", data)
}

func (t *Templates) RenderChat(w io.Writer, data ChatData) error {
	return t.set.ExecuteTemplate(w, "index.html", data)
}
