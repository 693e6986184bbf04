package adapter

import (
	"context"
)

// OutgoingEmail is a fully rendered message.
type OutgoingEmail struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// EmailSender delivers rendered messages through an email provider.
type EmailSender interface {
	// Send delivers the message and returns the provider's message id.
	Send(ctx context.Context, email OutgoingEmail) (string, error)
}

// EmailService queues account emails for background delivery.
type EmailService interface {
	// QueueWelcomeEmail queues the greeting sent after registration.
	QueueWelcomeEmail(ctx context.Context, input WelcomeEmailInput) error

	// QueuePasswordResetEmail queues a password reset link.
	QueuePasswordResetEmail(ctx context.Context, input PasswordResetEmailInput) error
}

// WelcomeEmailInput holds the data for the welcome email.
type WelcomeEmailInput struct {
	UserEmail string
	UserName  string
	AppURL    string
}

// PasswordResetEmailInput holds the data for the password reset email.
type PasswordResetEmailInput struct {
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}
