package chat

import "strings"

// Persona is the fixed system message sent with every request.
const Persona = "You are a skilled editor. You polish articles to sound professional and human-like."

const baseMandate = "Your job is to act as a professional humanizer and Grammarly-like editor. " +
	"Always fix grammar, spelling, and awkward phrasing. " +
	"Make the text smooth, natural, and engaging while keeping the meaning unchanged. " +
	"Do not add new facts.\n\n"

// Prompt is the two-message payload sent to the model for one turn.
type Prompt struct {
	System string
	User   string
}

// Assemble builds the outgoing payload. The user message is the base mandate,
// then an instructions line when instructions trim non-empty, then the text
// itself, unmodified and last. Whitespace-only instructions are treated the
// same as none.
func Assemble(text, instructions string) Prompt {
	var b strings.Builder
	b.WriteString(baseMandate)
	if extra := strings.TrimSpace(instructions); extra != "" {
		b.WriteString("Extra instructions: ")
		b.WriteString(extra)
		b.WriteString("\n\n")
	}
	b.WriteString(text)
	return Prompt{System: Persona, User: b.String()}
}
