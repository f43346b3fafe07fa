package service

import (
	"context"
	"fmt"
	"time"

	"github.com/homecraft/homecraft-cli/internal/logger"
	"github.com/homecraft/homecraft-cli/internal/model"
)

const chatGreeting = "Hello! I'm your AI Smart Home Assistant. I'm here to help you with product information, " +
	"installation guidance, troubleshooting, and any other questions about our smart home solutions. " +
	"How can I assist you today?"

// Chat holds the assistant conversation state. Like the session, it is
// a single-writer context object.
type Chat struct {
	messages  []model.ChatMessage
	open      bool
	minimized bool
	api       model.ChatAPI
	logger    *logger.Logger
	now       func() time.Time
}

func NewChat(api model.ChatAPI, logger *logger.Logger) *Chat {
	c := &Chat{api: api, logger: logger, now: time.Now}
	c.messages = []model.ChatMessage{{
		Text:      chatGreeting,
		Sender:    model.SenderBot,
		Timestamp: c.now(),
	}}
	return c
}

// Messages returns the conversation so far.
func (c *Chat) Messages() []model.ChatMessage {
	return c.messages
}

// AddMessage appends a message, stamping it with the current time.
// Messages arriving while the chat is open are already seen.
func (c *Chat) AddMessage(text, sender string) {
	c.messages = append(c.messages, model.ChatMessage{
		Text:      text,
		Sender:    sender,
		Timestamp: c.now(),
		Seen:      c.open,
	})
}

// ToggleOpen flips the chat window; opening marks everything seen.
func (c *Chat) ToggleOpen() {
	c.open = !c.open
	if c.open {
		for i := range c.messages {
			c.messages[i].Seen = true
		}
	}
}

// ToggleMinimize flips the minimized flag.
func (c *Chat) ToggleMinimize() {
	c.minimized = !c.minimized
}

// IsOpen reports whether the chat window is open.
func (c *Chat) IsOpen() bool {
	return c.open
}

// IsMinimized reports whether the chat window is minimized.
func (c *Chat) IsMinimized() bool {
	return c.minimized
}

// Send records the user's prompt, asks the assistant and records its
// reply. The prompt stays in the conversation even when the call
// fails, so the user can retry.
func (c *Chat) Send(ctx context.Context, prompt string) (string, error) {
	c.AddMessage(prompt, model.SenderUser)

	reply, err := c.api.SendMessage(ctx, prompt)
	if err != nil {
		c.logger.Error("Chat service: assistant call failed", "error", err)
		return "", fmt.Errorf("failed to reach assistant: %w", err)
	}

	c.AddMessage(reply, model.SenderBot)
	return reply, nil
}
