package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/persistence"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

func newTokenRepository(t *testing.T) persistence.TokenRepository {
	t.Helper()
	return persistence.NewTokenRepository(newTokenDB(t))
}

func newTokenDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(&model.RefreshTokenModel{}, &model.PasswordResetTokenModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestTokenService(t *testing.T) adapter.TokenService {
	return NewTokenService(TokenConfig{
		Secret:          "test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}, newTokenRepository(t))
}

func TestTokenPairRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(ctx, userID, "ana@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pair.RefreshToken) != 64 {
		t.Errorf("expected a 64 hex char refresh token, got %d chars", len(pair.RefreshToken))
	}
	if !pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt) {
		t.Error("expected refresh token to outlive access token")
	}

	claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("access token rejected: %v", err)
	}
	if claims.UserID != userID || claims.Email != "ana@example.com" {
		t.Errorf("unexpected claims %+v", claims)
	}

	if _, err := svc.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
		t.Error("expected refresh token to be rejected as access token")
	}

	refreshClaims, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken)
	if err != nil || refreshClaims.UserID != userID {
		t.Fatalf("refresh token rejected: %v", err)
	}

	if err := svc.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken); err == nil {
		t.Error("expected revoked refresh token to be rejected")
	}
}

func TestAccessTokenRejections(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	sign := func(secret, issuer string, expires time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomClaims{
			UserID:    userID.String(),
			TokenType: tokenTypeAccess,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(expires),
			},
		})
		s, err := token.SignedString([]byte(secret))
		if err != nil {
			t.Fatal(err)
		}
		return s
	}

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", sign("other-secret", tokenIssuer, time.Now().Add(time.Hour))},
		{"wrong issuer", sign("test-secret", "someone-else", time.Now().Add(time.Hour))},
		{"expired", sign("test-secret", tokenIssuer, time.Now().Add(-time.Minute))},
		{"garbage", "not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ValidateAccessToken(ctx, tt.token); err == nil {
				t.Error("expected token to be rejected")
			}
		})
	}

	if _, err := svc.ValidateAccessToken(ctx, sign("test-secret", tokenIssuer, time.Now().Add(time.Hour))); err != nil {
		t.Errorf("expected well-formed token to pass, got %v", err)
	}
}

func TestInvalidateAllUserTokens(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	first, _ := svc.GenerateTokenPair(ctx, userID, "a@example.com")
	second, _ := svc.GenerateTokenPair(ctx, userID, "a@example.com")
	other, _ := svc.GenerateTokenPair(ctx, uuid.New(), "b@example.com")

	if err := svc.InvalidateAllUserTokens(ctx, userID); err != nil {
		t.Fatal(err)
	}
	for _, token := range []string{first.RefreshToken, second.RefreshToken} {
		if _, err := svc.ValidateRefreshToken(ctx, token); err == nil {
			t.Error("expected user token to be revoked")
		}
	}
	if _, err := svc.ValidateRefreshToken(ctx, other.RefreshToken); err != nil {
		t.Errorf("expected other user's token to survive, got %v", err)
	}
}

func TestPasswordResetTokens(t *testing.T) {
	svc := NewPasswordResetTokenService(newTokenRepository(t))
	ctx := context.Background()
	userID := uuid.New()

	token, err := svc.GenerateResetToken(ctx, userID, "ana@example.com")
	if err != nil {
		t.Fatal(err)
	}
	found, err := svc.ValidateResetToken(ctx, token.Token)
	if err != nil || found.UserID != userID {
		t.Fatalf("expected token to validate, got %v", err)
	}
	if time.Until(found.ExpiresAt) > time.Hour {
		t.Error("expected a one hour expiry")
	}
	_ = svc.InvalidateResetToken(ctx, token.Token)
	if _, err := svc.ValidateResetToken(ctx, token.Token); !errors.Is(err, domainerror.ErrInvalidResetToken) {
		t.Errorf("expected used token to be rejected with ErrInvalidResetToken, got %v", err)
	}
}

func TestPasswordResetTokenLookupFailure(t *testing.T) {
	db := newTokenDB(t)
	svc := NewPasswordResetTokenService(persistence.NewTokenRepository(db))
	if err := db.Migrator().DropTable(&model.PasswordResetTokenModel{}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.ValidateResetToken(context.Background(), "whatever")
	if err == nil {
		t.Fatal("expected an error from a missing table")
	}
	if errors.Is(err, domainerror.ErrInvalidResetToken) {
		t.Errorf("expected a storage failure, got %v", err)
	}
}

func TestPasswordService(t *testing.T) {
	svc := &passwordService{cost: bcrypt.MinCost}

	hash, err := svc.HashPassword("correct horse")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.VerifyPassword(hash, "correct horse"); err != nil {
		t.Errorf("expected password to verify, got %v", err)
	}
	if err := svc.VerifyPassword(hash, "wrong horse"); err == nil {
		t.Error("expected wrong password to fail")
	}

	tests := []struct {
		password string
		wantErr  bool
	}{
		{"short", true},
		{"12345678", false},
		{strings.Repeat("x", 72), false},
		{strings.Repeat("x", 73), true},
	}
	for _, tt := range tests {
		if err := svc.ValidatePasswordStrength(tt.password); (err != nil) != tt.wantErr {
			t.Errorf("ValidatePasswordStrength(len %d) error = %v, wantErr %v", len(tt.password), err, tt.wantErr)
		}
	}
}

func TestParseSuggestion(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantID  string
		wantErr bool
	}{
		{
			name:   "plain json",
			text:   `{"category_id": "11111111-1111-1111-1111-111111111111", "confidence": 0.9, "reasoning": "food"}`,
			wantID: entity.GroceriesCategoryID.String(),
		},
		{
			name:   "fenced json",
			text:   "```json\n{\"category_id\": \"33333333-3333-3333-3333-333333333333\", \"confidence\": 0.5}\n```",
			wantID: entity.EntertainmentCategoryID.String(),
		},
		{
			name:   "unknown id",
			text:   `{"category_id": "groceries", "confidence": 0.7}`,
			wantID: uuid.Nil.String(),
		},
		{
			name:    "not json",
			text:    "I think it is groceries",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSuggestion(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got.CategoryID.String() != tt.wantID {
				t.Errorf("expected %s, got %s", tt.wantID, got.CategoryID)
			}
		})
	}
}

func TestSuggestionPromptListsCategories(t *testing.T) {
	prompt := buildSuggestionPrompt(adapter.CategorySuggestionRequest{
		ItemName: "Netflix",
		Categories: []adapter.CategoryOption{
			{ID: entity.EntertainmentCategoryID, Name: "Entertainment", Description: "Movies"},
			{ID: entity.OtherCategoryID, Name: "Other"},
		},
	})
	for _, want := range []string{entity.EntertainmentCategoryID.String(), entity.OtherCategoryID.String(), `"Netflix"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %s", want)
		}
	}
	if NewGeminiService("", "").IsAvailable() {
		t.Error("expected service without key to be unavailable")
	}
}
