// Package email delivers queued account emails.
package email

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/resend/resend-go/v2"

	"github.com/finance-app/backend/internal/application/adapter"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SetBaseURL points the client at another Resend-compatible endpoint.
func (c *ResendClient) SetBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing resend base url: %w", err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	c.client.BaseURL = u
	return nil
}

// Send sends an email via Resend and returns the Resend message id.
func (c *ResendClient) Send(ctx context.Context, email adapter.OutgoingEmail) (string, error) {
	to := email.To
	if email.Name != "" {
		to = fmt.Sprintf("%s <%s>", email.Name, email.To)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{to},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", classifySendError(err)
	}
	return resp.Id, nil
}

// classifySendError separates failures a retry cannot fix (401, 403, 422)
// from transient ones (429, 5xx, network).
func classifySendError(err error) error {
	if isPermanentError(err) {
		return domainerror.NewEmailError(
			domainerror.ErrCodePermanentEmailFailure,
			"permanent email failure",
			fmt.Errorf("%w: %v", domainerror.ErrPermanentEmailFailure, err),
		)
	}
	return domainerror.NewEmailError(
		domainerror.ErrCodeEmailSendFailed,
		"temporary email failure",
		fmt.Errorf("%w: %v", domainerror.ErrEmailSendFailed, err),
	)
}

var permanentPatterns = []string{
	"401",
	"403",
	"422",
	"unauthorized",
	"forbidden",
	"validation",
	"invalid",
	"bad request",
}

func isPermanentError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range permanentPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// MockEmailSender records messages instead of sending them.
type MockEmailSender struct {
	mu          sync.Mutex
	sent        []adapter.OutgoingEmail
	failErr     error
	isPermanent bool
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// Send implements the adapter.EmailSender interface for testing.
func (m *MockEmailSender) Send(_ context.Context, email adapter.OutgoingEmail) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failErr != nil {
		if m.isPermanent {
			return "", domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"mock permanent failure",
				fmt.Errorf("%w: %v", domainerror.ErrPermanentEmailFailure, m.failErr),
			)
		}
		return "", domainerror.NewEmailError(
			domainerror.ErrCodeEmailSendFailed,
			"mock temporary failure",
			fmt.Errorf("%w: %v", domainerror.ErrEmailSendFailed, m.failErr),
		)
	}

	m.sent = append(m.sent, email)
	return fmt.Sprintf("mock-%d", len(m.sent)), nil
}

// SentEmails returns a copy of the delivered messages.
func (m *MockEmailSender) SentEmails() []adapter.OutgoingEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]adapter.OutgoingEmail(nil), m.sent...)
}

// SetFailure configures the mock to fail with the given error.
func (m *MockEmailSender) SetFailure(err error, permanent bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
	m.isPermanent = permanent
}

// Reset clears all sent emails and failure configuration.
func (m *MockEmailSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.failErr = nil
	m.isPermanent = false
}

var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*MockEmailSender)(nil)
)
