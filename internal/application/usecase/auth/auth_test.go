package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/finance-app/backend/internal/application/adapter/adaptertest"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

type fixture struct {
	users  *adaptertest.UserRepository
	tokens *adaptertest.TokenService
	resets *adaptertest.ResetTokenService
	emails *adaptertest.EmailService
	pw     adaptertest.PasswordService
}

func newFixture() *fixture {
	return &fixture{
		users:  adaptertest.NewUserRepository(),
		tokens: adaptertest.NewTokenService(),
		resets: adaptertest.NewResetTokenService(),
		emails: &adaptertest.EmailService{},
	}
}

func (f *fixture) register(t *testing.T, email, password string) *RegisterUserOutput {
	t.Helper()
	out, err := NewRegisterUserUseCase(f.users, f.pw, f.tokens, f.emails, "http://app").Execute(context.Background(), RegisterUserInput{
		Email: email, Name: "Test User", Password: password,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return out
}

func authCode(err error) domainerror.AuthErrorCode {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		return authErr.Code
	}
	return ""
}

func TestRegisterUser(t *testing.T) {
	f := newFixture()
	out := f.register(t, "  Ana@Example.com ", "password123")

	if out.User.Email != "ana@example.com" {
		t.Errorf("expected normalized email, got %q", out.User.Email)
	}
	if out.Tokens.AccessToken == "" || out.Tokens.RefreshToken == "" {
		t.Error("expected token pair")
	}
	if len(f.emails.Welcome) != 1 || f.emails.Welcome[0].AppURL != "http://app" {
		t.Errorf("expected one welcome email, got %+v", f.emails.Welcome)
	}

	uc := NewRegisterUserUseCase(f.users, f.pw, f.tokens, nil, "")
	tests := []struct {
		name     string
		input    RegisterUserInput
		wantCode domainerror.AuthErrorCode
	}{
		{"duplicate email", RegisterUserInput{Email: "ANA@example.com", Password: "password123"}, domainerror.ErrCodeEmailExists},
		{"invalid email", RegisterUserInput{Email: "not-an-email", Password: "password123"}, domainerror.ErrCodeInvalidEmail},
		{"weak password", RegisterUserInput{Email: "bo@example.com", Password: "short"}, domainerror.ErrCodeWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if got := authCode(err); got != tt.wantCode {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestLoginUser(t *testing.T) {
	f := newFixture()
	f.register(t, "ana@example.com", "password123")
	uc := NewLoginUserUseCase(f.users, f.pw, f.tokens)

	out, err := uc.Execute(context.Background(), LoginUserInput{Email: "ANA@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.Email != "ana@example.com" {
		t.Errorf("unexpected user %q", out.User.Email)
	}

	for _, input := range []LoginUserInput{
		{Email: "ana@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "password123"},
	} {
		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for %s, got %v", input.Email, err)
		}
	}
}

func TestRefreshTokenRotates(t *testing.T) {
	f := newFixture()
	reg := f.register(t, "ana@example.com", "password123")
	uc := NewRefreshTokenUseCase(f.users, f.tokens)

	out, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: reg.Tokens.RefreshToken})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Tokens.RefreshToken == reg.Tokens.RefreshToken {
		t.Error("expected a new refresh token")
	}
	if !f.tokens.IsRevoked(reg.Tokens.RefreshToken) {
		t.Error("expected the old refresh token to be revoked")
	}

	_, err = uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: reg.Tokens.RefreshToken})
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken on reuse, got %v", err)
	}
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	f := newFixture()
	reg := f.register(t, "ana@example.com", "password123")

	if _, err := NewLogoutUserUseCase(f.tokens).Execute(context.Background(), LogoutUserInput{RefreshToken: reg.Tokens.RefreshToken}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.tokens.IsRevoked(reg.Tokens.RefreshToken) {
		t.Error("expected refresh token revoked")
	}
}

func TestResetPasswordLookupFailure(t *testing.T) {
	f := newFixture()
	storeDown := errors.New("connection refused")
	f.resets.LookupErr = storeDown
	reset := NewResetPasswordUseCase(f.users, f.pw, f.resets, f.tokens)

	_, err := reset.Execute(context.Background(), ResetPasswordInput{Token: "any", NewPassword: "new-password"})
	if !errors.Is(err, storeDown) {
		t.Fatalf("expected the lookup failure to be wrapped, got %v", err)
	}
	if errors.Is(err, domainerror.ErrInvalidResetToken) {
		t.Error("expected a lookup failure not to read as an invalid token")
	}

	f.resets.LookupErr = nil
	_, err = reset.Execute(context.Background(), ResetPasswordInput{Token: "unknown", NewPassword: "new-password"})
	if !errors.Is(err, domainerror.ErrInvalidResetToken) {
		t.Errorf("expected ErrInvalidResetToken for an unknown token, got %v", err)
	}
}

func TestForgotAndResetPassword(t *testing.T) {
	f := newFixture()
	reg := f.register(t, "ana@example.com", "password123")
	forgot := NewForgotPasswordUseCase(f.users, f.resets, f.emails, "http://app")

	unknown, err := forgot.Execute(context.Background(), ForgotPasswordInput{Email: "nobody@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	known, err := forgot.Execute(context.Background(), ForgotPasswordInput{Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unknown.Message != known.Message {
		t.Error("expected identical answers for known and unknown emails")
	}
	if len(f.emails.Resets) != 1 {
		t.Fatalf("expected one reset email, got %d", len(f.emails.Resets))
	}

	resetURL := f.emails.Resets[0].ResetURL
	token := resetURL[strings.Index(resetURL, "token=")+len("token="):]
	reset := NewResetPasswordUseCase(f.users, f.pw, f.resets, f.tokens)

	_, err = reset.Execute(context.Background(), ResetPasswordInput{Token: token, NewPassword: "short"})
	if !errors.Is(err, domainerror.ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}

	if _, err := reset.Execute(context.Background(), ResetPasswordInput{Token: token, NewPassword: "new-password"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.tokens.IsRevoked(reg.Tokens.RefreshToken) {
		t.Error("expected all refresh tokens revoked")
	}

	_, err = reset.Execute(context.Background(), ResetPasswordInput{Token: token, NewPassword: "another-password"})
	if !errors.Is(err, domainerror.ErrInvalidResetToken) {
		t.Errorf("expected ErrInvalidResetToken on reuse, got %v", err)
	}

	if _, err := NewLoginUserUseCase(f.users, f.pw, f.tokens).Execute(context.Background(), LoginUserInput{Email: "ana@example.com", Password: "new-password"}); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
}
