package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

const internalErrorMessage = "An internal error occurred"

// errorStatuses maps domain sentinels to HTTP status codes. The first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{domainerror.ErrCategoryNotFound, http.StatusNotFound},
	{domainerror.ErrBillItemNotFound, http.StatusNotFound},
	{domainerror.ErrBillNotFound, http.StatusNotFound},
	{domainerror.ErrPeriodNotFound, http.StatusNotFound},

	{domainerror.ErrCategoryNameExists, http.StatusConflict},
	{domainerror.ErrPredefinedCategoryImmutable, http.StatusConflict},
	{domainerror.ErrItemAlreadyInBill, http.StatusConflict},
	{domainerror.ErrItemNotInBill, http.StatusConflict},
	{domainerror.ErrCurrencyMismatch, http.StatusConflict},
	{domainerror.ErrInvalidDateRange, http.StatusConflict},
	{domainerror.ErrBillAlreadyInPeriod, http.StatusConflict},
	{domainerror.ErrBillNotInPeriod, http.StatusConflict},

	{domainerror.ErrEmailAlreadyExists, http.StatusConflict},
	{domainerror.ErrInvalidCredentials, http.StatusUnauthorized},
	{domainerror.ErrInvalidToken, http.StatusUnauthorized},
	{domainerror.ErrUserNotFound, http.StatusUnauthorized},
	{domainerror.ErrRateLimited, http.StatusTooManyRequests},
	{domainerror.ErrWeakPassword, http.StatusBadRequest},
	{domainerror.ErrInvalidEmail, http.StatusBadRequest},
	{domainerror.ErrInvalidResetToken, http.StatusBadRequest},

	{domainerror.ErrSuggestionUnavailable, http.StatusServiceUnavailable},
	{domainerror.ErrSuggestionFailed, http.StatusBadGateway},
}

// respondError writes the response for a use case failure.
func respondError(ctx *gin.Context, err error) {
	var validationErr *domainerror.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: validationErr.Message,
			Code:  string(validationErr.Code),
			Fields: []dto.FieldError{{
				Field:   validationErr.Field,
				Message: validationErr.Message,
			}},
		})
		return
	}

	for _, candidate := range errorStatuses {
		if errors.Is(err, candidate.target) {
			code, message := describeError(err)
			ctx.JSON(candidate.status, dto.ErrorResponse{
				Error: message,
				Code:  code,
			})
			return
		}
	}

	slog.ErrorContext(ctx.Request.Context(), "Unhandled error",
		"path", ctx.Request.URL.Path,
		"method", ctx.Request.Method,
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: internalErrorMessage,
	})
}

// describeError extracts the code and message of a domain error family.
func describeError(err error) (code, message string) {
	var (
		categoryErr *domainerror.CategoryError
		itemErr     *domainerror.BillItemError
		billErr     *domainerror.BillError
		periodErr   *domainerror.PeriodError
		authErr     *domainerror.AuthError
	)
	switch {
	case errors.As(err, &categoryErr):
		return string(categoryErr.Code), categoryErr.Message
	case errors.As(err, &itemErr):
		return string(itemErr.Code), itemErr.Message
	case errors.As(err, &billErr):
		return string(billErr.Code), billErr.Message
	case errors.As(err, &periodErr):
		return string(periodErr.Code), periodErr.Message
	case errors.As(err, &authErr):
		return string(authErr.Code), authErr.Message
	default:
		return "", err.Error()
	}
}

// respondBindingError writes the 400 body for a request that failed binding.
func respondBindingError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
}

// currentUser returns the authenticated user or writes a 401.
func currentUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses a UUID path parameter or writes a 400.
func pathID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: name + " must be a valid UUID",
			Code:  string(domainerror.ErrCodeInvalidField),
			Fields: []dto.FieldError{{
				Field:   name,
				Message: name + " must be a valid UUID",
			}},
		})
		return uuid.Nil, false
	}
	return id, true
}
