package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-app/backend/internal/integration/persistence/model"
)

// TokenRepository stores refresh and password reset tokens by their hash.
// Raw token values never reach the database.
type TokenRepository interface {
	// SaveRefreshToken stores a new refresh token hash.
	SaveRefreshToken(ctx context.Context, tokenHash string, userID uuid.UUID, expiresAt time.Time) error

	// FindActiveRefreshToken returns the token if it exists, is not invalidated and
	// has not expired at now. It returns nil when there is no such token.
	FindActiveRefreshToken(ctx context.Context, tokenHash string, now time.Time) (*model.RefreshTokenModel, error)

	// InvalidateRefreshToken marks a refresh token as invalidated.
	InvalidateRefreshToken(ctx context.Context, tokenHash string) error

	// InvalidateAllUserRefreshTokens invalidates all refresh tokens for a user.
	InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error

	// SavePasswordResetToken stores a new password reset token hash.
	SavePasswordResetToken(ctx context.Context, tokenHash string, userID uuid.UUID, email string, expiresAt time.Time) error

	// FindUnusedPasswordResetToken returns the unused token or nil.
	FindUnusedPasswordResetToken(ctx context.Context, tokenHash string) (*model.PasswordResetTokenModel, error)

	// MarkPasswordResetTokenUsed marks a password reset token as used.
	MarkPasswordResetTokenUsed(ctx context.Context, tokenHash string) error
}

// tokenRepository implements the TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

func (r *tokenRepository) SaveRefreshToken(ctx context.Context, tokenHash string, userID uuid.UUID, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Create(&model.RefreshTokenModel{
		ID:        uuid.New(),
		TokenHash: tokenHash,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}).Error
}

func (r *tokenRepository) FindActiveRefreshToken(ctx context.Context, tokenHash string, now time.Time) (*model.RefreshTokenModel, error) {
	var refreshToken model.RefreshTokenModel
	result := r.db.WithContext(ctx).
		Where("token_hash = ? AND invalidated = ? AND expires_at > ?", tokenHash, false, now).
		First(&refreshToken)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &refreshToken, nil
}

func (r *tokenRepository) InvalidateRefreshToken(ctx context.Context, tokenHash string) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ?", tokenHash).
		Update("invalidated", true).Error
}

func (r *tokenRepository) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND invalidated = ?", userID, false).
		Update("invalidated", true).Error
}

func (r *tokenRepository) SavePasswordResetToken(ctx context.Context, tokenHash string, userID uuid.UUID, email string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Create(&model.PasswordResetTokenModel{
		ID:        uuid.New(),
		TokenHash: tokenHash,
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}).Error
}

func (r *tokenRepository) FindUnusedPasswordResetToken(ctx context.Context, tokenHash string) (*model.PasswordResetTokenModel, error) {
	var resetToken model.PasswordResetTokenModel
	result := r.db.WithContext(ctx).
		Where("token_hash = ? AND used = ?", tokenHash, false).
		First(&resetToken)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &resetToken, nil
}

func (r *tokenRepository) MarkPasswordResetTokenUsed(ctx context.Context, tokenHash string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("token_hash = ?", tokenHash).
		Updates(map[string]any{
			"used":    true,
			"used_at": &now,
		}).Error
}
