package email

import (
	"context"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

const appName = "Finance App"

// Service turns account events into queued email jobs.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueWelcomeEmail queues the greeting sent after registration.
func (s *Service) QueueWelcomeEmail(ctx context.Context, input adapter.WelcomeEmailInput) error {
	job := entity.NewEmailJob(
		entity.TemplateWelcome,
		input.UserEmail,
		input.UserName,
		"Welcome to "+appName,
		map[string]string{
			"user_name": input.UserName,
			"app_url":   input.AppURL,
		},
	)
	return s.queue.Enqueue(ctx, job)
}

// QueuePasswordResetEmail queues a password reset link.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.PasswordResetEmailInput) error {
	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		"Reset your password - "+appName,
		map[string]string{
			"user_name":  input.UserName,
			"reset_url":  input.ResetURL,
			"expires_in": input.ExpiresIn,
		},
	)
	return s.queue.Enqueue(ctx, job)
}

var _ adapter.EmailService = (*Service)(nil)
