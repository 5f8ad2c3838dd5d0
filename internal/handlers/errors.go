package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body returned by every handler. Field is set
// for validation failures tied to one request field.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// respondError maps a service error onto an HTTP status and writes it.
// Unexpected errors are logged and reported with fallback so internals do
// not leak to the client.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var fieldErr *apperrors.FieldError
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &fieldErr):
		logger.Warn("Validation failed", slog.String("field", fieldErr.Field), slog.String("error", fieldErr.Message))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fieldErr.Message, Field: fieldErr.Field})
	case errors.As(err, &appErr) && appErr.Code != 0 && appErr.Code != http.StatusInternalServerError:
		logger.Warn("Request rejected", slog.Int("status", appErr.Code), slog.String("error", err.Error()))
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Resource already exists"})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Resource still referenced", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Resource is still referenced by other records"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// bindError reports a request that failed binding or validation tags.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
}

// requireUserID reads the authenticated user or aborts with 401.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
