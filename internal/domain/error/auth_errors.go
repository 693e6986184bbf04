package error

import "errors"

// Account and session errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password does not meet minimum requirements")

	// ErrInvalidToken covers malformed, expired and revoked access or refresh tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidResetToken covers unknown, used and expired reset tokens.
	ErrInvalidResetToken = errors.New("invalid or expired password reset token")

	// ErrRateLimited is returned when a client exceeded its attempt budget.
	ErrRateLimited = errors.New("too many attempts")
)

// AuthErrorCode identifies an AuthError. Format: AUTH-XXYYYY, XX groups the flow.
type AuthErrorCode string

const (
	// Registration (01)
	ErrCodeEmailExists  AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidEmail AuthErrorCode = "AUTH-010003"

	// Login (02)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"

	// Tokens (03)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"

	// Password reset (04)
	ErrCodeInvalidResetToken AuthErrorCode = "AUTH-040001"
	ErrCodeExpiredResetToken AuthErrorCode = "AUTH-040002"
)

// AuthError is a registration, login, token or password reset failure.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AuthError) Unwrap() error { return e.Err }

// NewAuthError creates a new AuthError.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{Code: code, Message: message, Err: err}
}

// NewRateLimitedError is returned to clients that exceeded their attempt budget.
func NewRateLimitedError() *AuthError {
	return NewAuthError(ErrCodeRateLimited, "Too many requests. Please try again later.", ErrRateLimited)
}
