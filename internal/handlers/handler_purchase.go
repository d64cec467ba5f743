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

// purchaseHandler handles HTTP requests related to installment purchases.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

// registerPurchaseRoutes registers routes related to installment purchases.
// Creation and listing hang off the owning card; deletion addresses the
// purchase directly.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	rg.POST("/cards/:cardID/purchases", h.createPurchase)
	rg.GET("/cards/:cardID/purchases", h.listPurchases)
	rg.DELETE("/purchases/:purchaseID", h.deletePurchase)
}

// createPurchase godoc
// @Summary Add an installment purchase to a card
// @Description Creates an immutable installment purchase starting at the given calendar period
// @Tags purchases
// @Accept json
// @Produce json
// @Param cardID path string true "Card ID"
// @Param purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid request or purchase data"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to create purchase"
// @Security BearerAuth
// @Router /cards/{cardID}/purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardID := c.Param("cardID")

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), userID, cardID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		respondError(c, logger, err, "Failed to create purchase")
		return
	}

	logger.Info("Purchase created",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("card_id", cardID))
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// listPurchases godoc
// @Summary List a card's installment purchases
// @Description Lists every purchase of the card regardless of period
// @Tags purchases
// @Produce json
// @Param cardID path string true "Card ID"
// @Success 200 {object} dto.ListPurchasesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to list purchases"
// @Security BearerAuth
// @Router /cards/{cardID}/purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardID := c.Param("cardID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	purchases, err := h.purchaseService.ListPurchasesByCard(c.Request.Context(), userID, cardID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		respondError(c, logger, err, "Failed to list purchases")
		return
	}

	resp := dto.ListPurchasesResponse{Purchases: make([]dto.PurchaseResponse, len(purchases))}
	for i := range purchases {
		resp.Purchases[i] = dto.ToPurchaseResponse(&purchases[i])
	}
	c.JSON(http.StatusOK, resp)
}

// deletePurchase godoc
// @Summary Delete an installment purchase
// @Description Removes a purchase; its installments disappear from every derived statement
// @Tags purchases
// @Produce json
// @Param purchaseID path string true "Purchase ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to delete purchase"
// @Security BearerAuth
// @Router /purchases/{purchaseID} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), userID, purchaseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
			return
		}
		respondError(c, logger, err, "Failed to delete purchase")
		return
	}

	logger.Info("Purchase deleted", slog.String("purchase_id", purchaseID))
	c.Status(http.StatusNoContent)
}
