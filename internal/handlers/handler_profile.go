package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/parcelado-app/parcelado_backend/internal/core/ports/services"
	"github.com/parcelado-app/parcelado_backend/internal/dto"
	"github.com/parcelado-app/parcelado_backend/internal/middleware"
)

// profileHandler handles HTTP requests for per-user settings.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

// newProfileHandler creates a new profileHandler.
func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes registers routes related to the user profile.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profile := rg.Group("/profile")
	{
		profile.GET("/salary", h.getSalary)
		profile.PUT("/salary", h.updateSalary)
	}
}

// getSalary godoc
// @Summary Get the user's salary
// @Description Returns the configured salary; zero when none was set yet
// @Tags profile
// @Produce json
// @Success 200 {object} dto.SalaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve salary"
// @Security BearerAuth
// @Router /profile/salary [get]
func (h *profileHandler) getSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	salary, err := h.profileService.GetSalary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve salary")
		return
	}

	c.JSON(http.StatusOK, dto.SalaryResponse{Salary: salary.Round(2)})
}

// updateSalary godoc
// @Summary Set the user's salary
// @Description Creates or updates the user's salary
// @Tags profile
// @Accept json
// @Produce json
// @Param salary body dto.UpdateSalaryRequest true "Salary"
// @Success 200 {object} dto.SalaryResponse
// @Failure 400 {object} map[string]string "Invalid or negative salary"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update salary"
// @Security BearerAuth
// @Router /profile/salary [put]
func (h *profileHandler) updateSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSalary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.profileService.UpdateSalary(c.Request.Context(), userID, req.Salary)
	if err != nil {
		respondError(c, logger, err, "Failed to update salary")
		return
	}

	logger.Info("Salary updated")
	c.JSON(http.StatusOK, dto.SalaryResponse{Salary: profile.Salary.Round(2)})
}
