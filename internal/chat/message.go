// Package chat holds the conversation state, prompt construction, and turn
// logic for a humanizer session.
package chat

// Role tags who authored a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DisplayName returns the label shown next to a transcript entry.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Editor"
	default:
		return string(r)
	}
}

// Message is a single entry in the visible transcript. Messages are value
// types and are never modified after being appended.
type Message struct {
	Role    Role
	Content string
}
