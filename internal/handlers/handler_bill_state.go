package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
	portssvc "github.com/parcelado-app/parcelado_backend/internal/core/ports/services"
	"github.com/parcelado-app/parcelado_backend/internal/dto"
	"github.com/parcelado-app/parcelado_backend/internal/middleware"
)

// billStateHandler handles HTTP requests for the per-period bill state of a
// card: the paid flag and manual extra charges.
type billStateHandler struct {
	billStateService portssvc.BillStateSvcFacade
}

// newBillStateHandler creates a new billStateHandler.
func newBillStateHandler(bs portssvc.BillStateSvcFacade) *billStateHandler {
	return &billStateHandler{billStateService: bs}
}

// registerBillStateRoutes registers routes for per-period bill state.
func registerBillStateRoutes(rg *gin.RouterGroup, billStateService portssvc.BillStateSvcFacade) {
	h := newBillStateHandler(billStateService)

	bill := rg.Group("/cards/:cardID/bill")
	{
		bill.POST("/toggle-paid", h.togglePaid)
		bill.POST("/extra-value", h.addExtraValue)
	}
}

// togglePaid godoc
// @Summary Toggle the paid flag of a card's bill
// @Description Flips the paid flag for (card, period); the state row is created on first use
// @Tags bill-state
// @Produce json
// @Param cardID path string true "Card ID"
// @Param month query int false "Calendar month (1-12), defaults to the current period"
// @Param year query int false "Year, defaults to the current period"
// @Success 200 {object} dto.BillStateResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to toggle paid flag"
// @Security BearerAuth
// @Router /cards/{cardID}/bill/toggle-paid [post]
func (h *billStateHandler) togglePaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardID := c.Param("cardID")

	period, ok := bindPeriod(c)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	state, err := h.billStateService.TogglePaid(c.Request.Context(), userID, cardID, period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		respondError(c, logger, err, "Failed to toggle paid flag")
		return
	}

	logger.Info("Bill paid flag toggled",
		slog.String("card_id", cardID),
		slog.Bool("is_paid", state.IsPaid))
	c.JSON(http.StatusOK, dto.ToBillStateResponse(state))
}

// addExtraValue godoc
// @Summary Add a manual charge to a card's bill
// @Description Adds a positive amount on top of the period's derived due; amounts accumulate
// @Tags bill-state
// @Accept json
// @Produce json
// @Param cardID path string true "Card ID"
// @Param month query int false "Calendar month (1-12), defaults to the current period"
// @Param year query int false "Year, defaults to the current period"
// @Param adjustment body dto.AddExtraValueRequest true "Amount to add"
// @Success 200 {object} dto.BillStateResponse
// @Failure 400 {object} map[string]string "Invalid period or non-positive amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to add extra value"
// @Security BearerAuth
// @Router /cards/{cardID}/bill/extra-value [post]
func (h *billStateHandler) addExtraValue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardID := c.Param("cardID")

	period, ok := bindPeriod(c)
	if !ok {
		return
	}

	var req dto.AddExtraValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddExtraValue", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	state, err := h.billStateService.AddExtraValue(c.Request.Context(), userID, cardID, period, req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		respondError(c, logger, err, "Failed to add extra value")
		return
	}

	logger.Info("Extra value added",
		slog.String("card_id", cardID),
		slog.String("extra_value", state.ExtraValue.String()))
	c.JSON(http.StatusOK, dto.ToBillStateResponse(state))
}
