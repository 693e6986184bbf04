package adaptertest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// TokenService is an in-memory adapter.TokenService issuing predictable tokens.
type TokenService struct {
	mu      sync.Mutex
	access  map[string]adapter.TokenClaims
	refresh map[string]uuid.UUID
	revoked map[string]bool
}

// NewTokenService creates an empty token service.
func NewTokenService() *TokenService {
	return &TokenService{
		access:  make(map[string]adapter.TokenClaims),
		refresh: make(map[string]uuid.UUID),
		revoked: make(map[string]bool),
	}
}

func (s *TokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	pair := &adapter.TokenPair{
		AccessToken:           "access-" + uuid.NewString(),
		RefreshToken:          "refresh-" + uuid.NewString(),
		AccessTokenExpiresAt:  now.Add(time.Hour),
		RefreshTokenExpiresAt: now.Add(24 * time.Hour),
	}
	s.access[pair.AccessToken] = adapter.TokenClaims{UserID: userID, Email: email, ExpiresAt: pair.AccessTokenExpiresAt}
	s.refresh[pair.RefreshToken] = userID
	return pair, nil
}

func (s *TokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	claims, ok := s.access[token]
	if !ok {
		return nil, errors.New("unknown access token")
	}
	return &claims, nil
}

func (s *TokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.refresh[token]
	if !ok || s.revoked[token] {
		return nil, errors.New("invalid refresh token")
	}
	return &adapter.TokenClaims{UserID: userID}, nil
}

func (s *TokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = true
	return nil
}

func (s *TokenService) InvalidateAllUserTokens(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, owner := range s.refresh {
		if owner == userID {
			s.revoked[token] = true
		}
	}
	return nil
}

// IsRevoked reports whether a refresh token was revoked.
func (s *TokenService) IsRevoked(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revoked[token]
}

// EmailService records queued emails instead of sending them.
type EmailService struct {
	mu      sync.Mutex
	Welcome []adapter.WelcomeEmailInput
	Resets  []adapter.PasswordResetEmailInput
}

func (s *EmailService) QueueWelcomeEmail(_ context.Context, input adapter.WelcomeEmailInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Welcome = append(s.Welcome, input)
	return nil
}

func (s *EmailService) QueuePasswordResetEmail(_ context.Context, input adapter.PasswordResetEmailInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Resets = append(s.Resets, input)
	return nil
}

// PasswordService hashes by prefixing, for tests that do not need bcrypt.
type PasswordService struct{}

func (PasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (PasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (PasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password too short")
	}
	return nil
}

// CategorySuggester returns a fixed answer.
type CategorySuggester struct {
	Available  bool
	Suggestion *adapter.CategorySuggestion
	Err        error
	// Requests records every call.
	Requests []adapter.CategorySuggestionRequest
}

func (s *CategorySuggester) Suggest(_ context.Context, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	s.Requests = append(s.Requests, request)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Suggestion, nil
}

func (s *CategorySuggester) IsAvailable() bool {
	return s.Available
}

// ResetTokenService keeps password reset tokens in memory.
type ResetTokenService struct {
	mu     sync.Mutex
	tokens map[string]adapter.PasswordResetToken
	// TTL defaults to one hour.
	TTL time.Duration
	// LookupErr, when set, is returned by ValidateResetToken.
	LookupErr error
}

// NewResetTokenService creates an empty reset token service.
func NewResetTokenService() *ResetTokenService {
	return &ResetTokenService{tokens: make(map[string]adapter.PasswordResetToken), TTL: time.Hour}
}

func (s *ResetTokenService) GenerateResetToken(_ context.Context, userID uuid.UUID, email string) (*adapter.PasswordResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := adapter.PasswordResetToken{
		Token:     "reset-" + uuid.NewString(),
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().UTC().Add(s.TTL),
	}
	s.tokens[token.Token] = token
	return &token, nil
}

func (s *ResetTokenService) ValidateResetToken(_ context.Context, token string) (*adapter.PasswordResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LookupErr != nil {
		return nil, s.LookupErr
	}
	t, ok := s.tokens[token]
	if !ok {
		return nil, domainerror.ErrInvalidResetToken
	}
	return &t, nil
}

func (s *ResetTokenService) InvalidateResetToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
