package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/email/templates"
)

// sentRetention is how long delivered jobs stay in the queue table.
const sentRetention = 7 * 24 * time.Hour

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// Worker processes the email queue and sends emails.
type Worker struct {
	queue        adapter.EmailQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
	now          func() time.Time
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	defaults := DefaultWorkerConfig()
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Run polls the queue until ctx is cancelled. It always returns nil so it
// can run inside an errgroup next to the HTTP server.
func (w *Worker) Run(ctx context.Context) error {
	slog.Info("Email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.ProcessNow(ctx)

	purge := time.NewTicker(time.Hour)
	defer purge.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return nil
		case <-ticker.C:
			w.ProcessNow(ctx)
		case <-purge.C:
			w.purgeSent(ctx)
		}
	}
}

// ProcessNow sends one batch of due emails and returns how many were delivered.
func (w *Worker) ProcessNow(ctx context.Context) int {
	jobs, err := w.queue.FindDue(ctx, w.now(), w.batchSize)
	if err != nil {
		slog.Error("Failed to get due email jobs", "error", err)
		return 0
	}
	if len(jobs) == 0 {
		return 0
	}

	slog.Debug("Processing email batch", "count", len(jobs))

	sent := 0
	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		if w.processJob(ctx, job) {
			sent++
		}
	}
	return sent
}

func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) bool {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.Template,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Save(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return false
	}

	html, text, err := w.renderer.Render(job.Template, job.Data)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		w.handleFailure(ctx, job, err, true)
		return false
	}

	providerID, err := w.sender.Send(ctx, adapter.OutgoingEmail{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send email", "error", err)
		w.handleFailure(ctx, job, err, domainerror.IsPermanentEmailFailure(err))
		return false
	}

	job.MarkSent(providerID, w.now())
	if err := w.queue.Save(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return false
	}

	logger.Info("Email sent", "provider_id", providerID)
	return true
}

func (w *Worker) handleFailure(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent, w.now())

	if saveErr := w.queue.Save(ctx, job); saveErr != nil {
		slog.Error("Failed to update job after failure", "job_id", job.ID, "error", saveErr)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("Email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
		return
	}
	slog.Info("Email job scheduled for retry",
		"job_id", job.ID,
		"attempts", job.Attempts,
		"scheduled_at", job.ScheduledAt,
	)
}

func (w *Worker) purgeSent(ctx context.Context) {
	n, err := w.queue.PurgeSent(ctx, w.now().Add(-sentRetention))
	if err != nil {
		slog.Error("Failed to purge sent emails", "error", err)
		return
	}
	if n > 0 {
		slog.Debug("Purged sent emails", "count", n)
	}
}
