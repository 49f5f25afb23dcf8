package chat

// Conversation is the append-only transcript of one interactive session.
// It lives entirely in memory, only grows, and is discarded with the session.
// It is mutated only by the Controller on the session's single logical
// thread, so no locking is needed.
type Conversation struct {
	messages []Message
}

// NewConversation returns an empty transcript.
func NewConversation() *Conversation {
	return &Conversation{}
}

// Append adds a message at the end of the transcript. There is no
// deduplication and no cap.
func (c *Conversation) Append(m Message) {
	c.messages = append(c.messages, m)
}

// Messages returns a copy of the transcript in append order.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// AssistantMessages returns the assistant entries in append order, skipping
// user entries.
func (c *Conversation) AssistantMessages() []Message {
	var out []Message
	for _, m := range c.messages {
		if m.Role == RoleAssistant {
			out = append(out, m)
		}
	}
	return out
}

// LatestAssistant returns the content of the most recent assistant message,
// or false if no assistant turn has completed yet.
func (c *Conversation) LatestAssistant() (string, bool) {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Role == RoleAssistant {
			return c.messages[i].Content, true
		}
	}
	return "", false
}

// IsEmpty reports whether any turn has completed.
func (c *Conversation) IsEmpty() bool {
	return len(c.messages) == 0
}

// Len returns the number of transcript entries.
func (c *Conversation) Len() int {
	return len(c.messages)
}
