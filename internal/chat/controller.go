package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/exedev/humanize/internal/bus"
	"github.com/exedev/humanize/internal/llm"
)

// ErrEmptyArticle is returned by Submit when the pasted article is blank.
var ErrEmptyArticle = errors.New("chat: empty article")

// Controller drives one request/response cycle at a time against a single
// Conversation. The session runs one turn per user action on one goroutine;
// the Controller is not safe for concurrent turns.
type Controller struct {
	conv   *Conversation
	client llm.Client
	bus    *bus.MessageBus
}

func NewController(client llm.Client, b *bus.MessageBus) *Controller {
	return &Controller{
		conv:   NewConversation(),
		client: client,
		bus:    b,
	}
}

// Conversation exposes the session transcript for rendering.
func (ct *Controller) Conversation() *Conversation {
	return ct.conv
}

// SetClient rebinds the model client. Stored messages are unaffected; only
// future turns use the new client.
func (ct *Controller) SetClient(c llm.Client) {
	ct.client = c
	ct.publish(bus.MsgModelChanged, "")
}

// Turn runs one interaction: initial mode while the conversation is empty,
// refinement mode once any turn has completed. The conversation never
// transitions back to empty.
func (ct *Controller) Turn(ctx context.Context, input string) error {
	if ct.conv.IsEmpty() {
		return ct.Submit(ctx, input)
	}
	return ct.Refine(ctx, input)
}

// Submit handles the first submission, a full article body. A blank article
// is rejected before any network call and leaves the conversation untouched.
// Both transcript entries are appended only after the model call succeeds,
// so a failed initial turn leaves no trace.
func (ct *Controller) Submit(ctx context.Context, article string) error {
	if strings.TrimSpace(article) == "" {
		return ErrEmptyArticle
	}
	ct.publish(bus.MsgTurnStarted, article)

	p := Assemble(article, "")
	reply, err := ct.client.Chat(ctx, p.System, p.User)
	if err != nil {
		ct.publish(bus.MsgTurnFailed, err.Error())
		return err
	}

	ct.conv.Append(Message{Role: RoleUser, Content: article})
	ct.conv.Append(Message{Role: RoleAssistant, Content: reply})
	ct.publish(bus.MsgTurnCompleted, reply)
	return nil
}

// Refine handles a follow-up turn. The follow-up is appended before the
// model call so the visible transcript stays responsive; on failure that
// user entry remains without a paired reply and the next turn carries on
// from there. The text being reworked is the latest assistant output,
// falling back to the follow-up itself if no assistant turn exists.
func (ct *Controller) Refine(ctx context.Context, followUp string) error {
	ct.conv.Append(Message{Role: RoleUser, Content: followUp})
	ct.publish(bus.MsgTurnStarted, followUp)

	latest, ok := ct.conv.LatestAssistant()
	if !ok {
		latest = followUp
	}

	p := Assemble(latest, followUp)
	reply, err := ct.client.Chat(ctx, p.System, p.User)
	if err != nil {
		ct.publish(bus.MsgTurnFailed, err.Error())
		return err
	}

	ct.conv.Append(Message{Role: RoleAssistant, Content: reply})
	ct.publish(bus.MsgTurnCompleted, reply)
	return nil
}

func (ct *Controller) publish(t bus.MsgType, payload string) {
	if ct.bus == nil {
		return
	}
	ct.bus.Publish(bus.Message{Type: t, Payload: payload, Time: time.Now()})
}
