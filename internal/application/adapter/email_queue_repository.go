package adapter

import (
	"context"
	"time"

	"github.com/finance-app/backend/internal/domain/entity"
)

// EmailQueueRepository stores outbound emails until the worker delivers them.
type EmailQueueRepository interface {
	// Enqueue stores a new email job.
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// FindDue returns pending jobs scheduled at or before now, oldest first.
	FindDue(ctx context.Context, now time.Time, limit int) ([]*entity.EmailJob, error)

	// Save stores the new state of a job.
	Save(ctx context.Context, job *entity.EmailJob) error

	// FindByRecipient lists the jobs addressed to email, newest first.
	FindByRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error)

	// PurgeSent deletes sent jobs processed before the cutoff.
	PurgeSent(ctx context.Context, before time.Time) (int64, error)
}
