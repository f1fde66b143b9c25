package notification_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/danielasalgadov/zona-de-riego/internal/notification"
)

func TestWebhookNotifier_Notify_Success(t *testing.T) {
	var got notification.Message

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := notification.NewWebhookNotifier(srv.URL, zerolog.Nop())

	err := n.Notify(context.Background(), notification.Message{
		Title:   "New Order #1 from Daniela",
		Content: "Total: $250.00 MXN",
	})
	assert.NoError(t, err)
	assert.Equal(t, "New Order #1 from Daniela", got.Title)
}

func TestWebhookNotifier_Notify_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := notification.NewWebhookNotifier(srv.URL, zerolog.Nop())

	err := n.Notify(context.Background(), notification.Message{Title: "t", Content: "c"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "webhook error (500)")
}

func TestWebhookNotifier_Notify_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	n := notification.NewWebhookNotifier(srv.URL, zerolog.Nop())

	err := n.Notify(context.Background(), notification.Message{Title: "t", Content: "c"})
	assert.Error(t, err)
}

func TestNopNotifier(t *testing.T) {
	var n notification.Notifier = notification.NopNotifier{}
	assert.NoError(t, n.Notify(context.Background(), notification.Message{Title: "t"}))
}
