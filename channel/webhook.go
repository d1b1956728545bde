package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// WebhookChannel pushes outbound messages to the chat gateway that owns the
// actual user surface (Telegram, web chat, ...). The gateway accepts a JSON
// payload per message.
type WebhookChannel struct {
	GatewayURL string
	Client     *http.Client
	Logger     *zap.Logger
}

// NewWebhookChannel creates a WebhookChannel with a bounded request timeout.
func NewWebhookChannel(gatewayURL string, logger *zap.Logger) *WebhookChannel {
	return &WebhookChannel{
		GatewayURL: gatewayURL,
		Client:     &http.Client{Timeout: 10 * time.Second},
		Logger:     logger,
	}
}

type outboundMessage struct {
	ChatID  int64    `json:"chatId"`
	Text    string   `json:"text"`
	Options []Option `json:"options,omitempty"`
}

func (c *WebhookChannel) SendText(ctx context.Context, chatID int64, text string) error {
	return c.post(ctx, outboundMessage{ChatID: chatID, Text: text})
}

func (c *WebhookChannel) SendChoice(ctx context.Context, chatID int64, text string, options []Option) error {
	return c.post(ctx, outboundMessage{ChatID: chatID, Text: text, Options: options})
}

func (c *WebhookChannel) post(ctx context.Context, msg outboundMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal outbound message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		c.Logger.Warn("Gateway rejected outbound message",
			zap.Int64("chatId", msg.ChatID), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}
	return nil
}
