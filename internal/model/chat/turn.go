package chat

// Role identifies the originator of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation. Text holds the raw value
// supplied by its origin; escaping happens at render time only, so the
// stored text stays the source of truth.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// UserTurn builds a turn recording the user's message.
func UserTurn(text string) Turn {
	return Turn{Role: RoleUser, Text: text}
}

// AssistantTurn builds a turn recording the model's reply.
func AssistantTurn(text string) Turn {
	return Turn{Role: RoleAssistant, Text: text}
}
