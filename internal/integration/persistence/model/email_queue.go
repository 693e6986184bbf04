package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// EmailQueueModel represents the email_queue table in the database.
// TemplateData holds the template variables as a JSON object.
type EmailQueueModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Template       string    `gorm:"type:varchar(50);not null"`
	RecipientEmail string    `gorm:"type:varchar(255);not null;index"`
	RecipientName  string    `gorm:"type:varchar(255)"`
	Subject        string    `gorm:"type:varchar(500);not null"`
	TemplateData   string    `gorm:"type:text;not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_email_queue_due,priority:1"`
	Attempts       int       `gorm:"not null;default:0"`
	MaxAttempts    int       `gorm:"not null;default:3"`
	LastError      string    `gorm:"type:text"`
	ProviderID     string    `gorm:"type:varchar(100)"`
	CreatedAt      time.Time `gorm:"not null"`
	ScheduledAt    time.Time `gorm:"not null;index:idx_email_queue_due,priority:2"`
	ProcessedAt    *time.Time
}

// TableName returns the table name for the EmailQueueModel.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}

// ToEntity converts an EmailQueueModel to a domain EmailJob entity.
func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	data := make(map[string]string)
	if m.TemplateData != "" {
		if err := json.Unmarshal([]byte(m.TemplateData), &data); err != nil {
			slog.Warn("Failed to unmarshal email template data", "error", err, "id", m.ID)
		}
	}

	return &entity.EmailJob{
		ID:             m.ID,
		Template:       entity.EmailTemplate(m.Template),
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		Data:           data,
		Status:         entity.EmailStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ProviderID:     m.ProviderID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
		ProcessedAt:    m.ProcessedAt,
	}
}

// EmailQueueModelFromEntity creates an EmailQueueModel from a domain EmailJob entity.
func EmailQueueModelFromEntity(job *entity.EmailJob) *EmailQueueModel {
	data, err := json.Marshal(job.Data)
	if err != nil || job.Data == nil {
		data = []byte("{}")
	}

	return &EmailQueueModel{
		ID:             job.ID,
		Template:       string(job.Template),
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		TemplateData:   string(data),
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ProviderID:     job.ProviderID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
		ProcessedAt:    job.ProcessedAt,
	}
}
