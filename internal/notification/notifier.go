// Package notification delivers owner notifications (new orders, contact
// form submissions). Delivery failures are never fatal to the operation that
// triggered them.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type Message struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// WebhookNotifier posts the message as JSON to a configured endpoint.
type WebhookNotifier struct {
	url    string
	http   *http.Client
	logger zerolog.Logger
}

func NewWebhookNotifier(url string, logger zerolog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		http:   &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("notification webhook unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification webhook error (%d)", resp.StatusCode)
	}

	n.logger.Debug().Str("title", msg.Title).Msg("owner notified")
	return nil
}

// NopNotifier is used when no webhook is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(ctx context.Context, msg Message) error { return nil }
