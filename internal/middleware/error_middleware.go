package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dapi/studenttrack/internal/app/models/dto"
	"github.com/dapi/studenttrack/internal/pkg/apperrors"
	"github.com/dapi/studenttrack/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Business-rule
// failures carry their message verbatim so the form layer can display it
// unchanged; unknown errors are logged and collapse to a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	message, field := customErrorParts(err)

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, fallback(message, "Validation failed"))
		if field != "" {
			detail = detail.WithField(field)
		}
		c.JSON(http.StatusBadRequest, dto.APIResponse{Error: detail})

	case errors.Is(err, apperrors.ErrDuplicateKey):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, fallback(message, "Resource already exists")),
		})

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, fallback(message, "Invalid email or password")),
		})

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})

	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})

	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found"),
		})

	case errors.Is(err, apperrors.ErrUserNotFound), errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}

func customErrorParts(err error) (message, field string) {
	var ce *apperrors.CustomError
	if errors.As(err, &ce) {
		return ce.Message, ce.Field
	}
	return "", ""
}

func fallback(message, def string) string {
	if message != "" {
		return message
	}
	return def
}
