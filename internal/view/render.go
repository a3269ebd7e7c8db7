package view

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"chatfront/internal/model/chat"
)

// Conversation converts an ordered transcript into escaped markup, one
// block per turn. Turn text is escaped here and nowhere else; the
// result is safe to splice into a page regardless of what the user or
// the model produced.
func Conversation(turns []chat.Turn) template.HTML {
	if len(turns) == 0 {
		return ""
	}

	var b strings.Builder
	for i, turn := range turns {
		roleClass, label := "assistant", "Assistant"
		if turn.Role == chat.RoleUser {
			roleClass, label = "user", "You"
		}
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, `<div class="msg"><span class="%s">%s:</span> %s</div>`,
			roleClass, label, html.EscapeString(turn.Text))
	}
	return template.HTML(b.String())
}
