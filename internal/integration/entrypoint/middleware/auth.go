// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey holds the authenticated user's uuid.UUID.
	UserIDKey ContextKey = "user_id"
	// UserEmailKey holds the authenticated user's email.
	UserEmailKey ContextKey = "user_email"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller from a bearer access token.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate rejects requests without a valid access token with 401.
// Handlers behind it read the caller through GetUserIDFromContext.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, code, message := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c, code, message)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			unauthorized(c, domainerror.ErrCodeInvalidToken, "Invalid or expired token")
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Set(string(UserEmailKey), claims.Email)
		c.Next()
	}
}

// bearerToken extracts the token, or returns the rejection to send.
func bearerToken(header string) (token string, code domainerror.AuthErrorCode, message string) {
	switch {
	case header == "":
		return "", domainerror.ErrCodeMissingToken, "Authorization header is required"
	case !strings.HasPrefix(header, bearerPrefix):
		return "", domainerror.ErrCodeInvalidToken, "Invalid authorization header format"
	}
	token = strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", domainerror.ErrCodeMissingToken, "Token is required"
	}
	return token, "", ""
}

func unauthorized(c *gin.Context, code domainerror.AuthErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// GetUserIDFromContext returns the user set by Authenticate.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	id, ok := c.Value(string(UserIDKey)).(uuid.UUID)
	return id, ok
}

// GetUserEmailFromContext returns the email set by Authenticate.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, ok := c.Value(string(UserEmailKey)).(string)
	return email, ok
}
