package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/parcelado-app/parcelado_backend/internal/dto"
	"github.com/parcelado-app/parcelado_backend/internal/middleware"
)

// respondError maps service errors to HTTP statuses. Handlers deal with the
// statuses they want to phrase specifically (usually 404) before calling
// this; everything else funnels through here.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		logger.Warn(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// bindPeriod binds and converts the month/year query parameters, defaulting
// to the current period when both are absent. It writes the 400 response
// itself and reports success through ok.
func bindPeriod(c *gin.Context) (domain.Period, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind period query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period: " + err.Error()})
		return domain.Period{}, false
	}
	if q.IsZero() {
		return domain.CurrentPeriod(time.Now()), true
	}

	period, err := q.ToDomain()
	if err != nil {
		logger.Warn("Invalid period query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.Period{}, false
	}
	return period, true
}
