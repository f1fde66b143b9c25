package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/rs/zerolog"

	"github.com/danielasalgadov/zona-de-riego/internal/metrics"
	"github.com/danielasalgadov/zona-de-riego/internal/notification"
)

type ContactUsecase struct {
	notifier notification.Notifier
	logger   zerolog.Logger
	metrics  *metrics.Metrics
}

func NewContactUsecase(notifier notification.Notifier, logger zerolog.Logger, m *metrics.Metrics) *ContactUsecase {
	return &ContactUsecase{notifier: notifier, logger: logger, metrics: m}
}

type ContactInput struct {
	Name        string
	Email       string
	Phone       string // optional
	InquiryType string
	Message     string
}

// Submit validates the form and forwards it to the owner. A failed dispatch
// is logged but the submission still succeeds; transport trouble is not the
// visitor's problem.
func (u *ContactUsecase) Submit(ctx context.Context, in ContactInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "Name is required")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return NewHTTPError(http.StatusBadRequest, "Invalid email address")
	}
	if strings.TrimSpace(in.InquiryType) == "" {
		return NewHTTPError(http.StatusBadRequest, "Inquiry type is required")
	}
	if len(strings.TrimSpace(in.Message)) < 10 {
		return NewHTTPError(http.StatusBadRequest, "Message must be at least 10 characters")
	}

	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		phone = "Not provided"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", strings.TrimSpace(in.Name))
	fmt.Fprintf(&b, "Email: %s\n", strings.TrimSpace(in.Email))
	fmt.Fprintf(&b, "Phone: %s\n", phone)
	fmt.Fprintf(&b, "Inquiry Type: %s\n\n", strings.TrimSpace(in.InquiryType))
	fmt.Fprintf(&b, "Message:\n%s\n", strings.TrimSpace(in.Message))

	if err := u.notifier.Notify(ctx, notification.Message{
		Title:   fmt.Sprintf("New Contact Form Submission from %s", strings.TrimSpace(in.Name)),
		Content: b.String(),
	}); err != nil {
		u.metrics.NotificationFailures.Inc()
		u.logger.Warn().Err(err).Msg("contact notification failed")
	}

	u.metrics.ContactSubmissions.Inc()
	return nil
}
