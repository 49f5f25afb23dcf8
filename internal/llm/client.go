// Package llm provides a provider-agnostic interface for chat-completion
// calls.
package llm

import "context"

// Client is the single capability the turn controller consumes: send one
// system + user message pair, get the assistant's reply text back. The call
// blocks until the provider answers or fails; any timeout comes from ctx.
type Client interface {
	Chat(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
