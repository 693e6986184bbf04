package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus is the delivery state of a queued email.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplate names the template an email is rendered from.
type EmailTemplate string

const (
	TemplateWelcome       EmailTemplate = "welcome"
	TemplatePasswordReset EmailTemplate = "password_reset"
)

// DefaultEmailMaxAttempts bounds delivery attempts before a job is failed.
const DefaultEmailMaxAttempts = 3

// emailRetryDelays is indexed by the number of failed attempts so far.
var emailRetryDelays = []time.Duration{0, time.Minute, 5 * time.Minute}

// EmailJob is one email waiting in the outbound queue.
type EmailJob struct {
	ID             uuid.UUID
	Template       EmailTemplate
	RecipientEmail string
	RecipientName  string
	Subject        string
	Data           map[string]string
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob queues an email for immediate delivery.
func NewEmailJob(template EmailTemplate, recipientEmail, recipientName, subject string, data map[string]string) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		Template:       template,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		Data:           data,
		Status:         EmailStatusPending,
		MaxAttempts:    DefaultEmailMaxAttempts,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing claims the job for a delivery attempt.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent records a successful delivery and the provider's message id.
func (e *EmailJob) MarkSent(providerID string, now time.Time) {
	e.Status = EmailStatusSent
	e.ProviderID = providerID
	e.ProcessedAt = &now
}

// MarkFailed records a failed attempt. Permanent failures and exhausted jobs
// end in EmailStatusFailed; others are rescheduled.
func (e *EmailJob) MarkFailed(err error, permanent bool, now time.Time) {
	e.Attempts++
	e.LastError = err.Error()

	if permanent || !e.CanRetry() {
		e.Status = EmailStatusFailed
		e.ProcessedAt = &now
		return
	}
	e.Status = EmailStatusPending
	e.ScheduledAt = now.Add(retryDelay(e.Attempts))
}

// CanRetry reports whether attempts remain.
func (e *EmailJob) CanRetry() bool {
	return e.Attempts < e.MaxAttempts
}

// IsDue reports whether the job is pending and its scheduled time has passed.
func (e *EmailJob) IsDue(now time.Time) bool {
	return e.Status == EmailStatusPending && !now.Before(e.ScheduledAt)
}

func retryDelay(attempts int) time.Duration {
	if attempts < len(emailRetryDelays) {
		return emailRetryDelays[attempts]
	}
	return emailRetryDelays[len(emailRetryDelays)-1]
}
