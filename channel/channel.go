package channel

import "context"

// Option is one selectable button: a human label and the opaque token posted
// back when the user presses it.
type Option struct {
	Label string `json:"label"`
	Token string `json:"token"`
}

// Channel is the outbound half of the conversation surface. The inbound half
// arrives through the HTTP webhook endpoints.
type Channel interface {
	// SendText delivers a plain text message to the conversation.
	SendText(ctx context.Context, chatID int64, text string) error
	// SendChoice delivers a text message with an ordered list of buttons.
	SendChoice(ctx context.Context, chatID int64, text string, options []Option) error
}
