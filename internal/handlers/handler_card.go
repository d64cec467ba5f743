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

// cardHandler handles HTTP requests related to credit cards.
type cardHandler struct {
	cardService portssvc.CardSvcFacade
}

// newCardHandler creates a new cardHandler.
func newCardHandler(cs portssvc.CardSvcFacade) *cardHandler {
	return &cardHandler{cardService: cs}
}

// registerCardRoutes registers routes related to credit cards.
func registerCardRoutes(rg *gin.RouterGroup, cardService portssvc.CardSvcFacade) {
	h := newCardHandler(cardService)

	cards := rg.Group("/cards")
	{
		cards.POST("", h.createCard)
		cards.GET("", h.listCards)
		cards.GET("/:cardID", h.getCard)
		cards.PUT("/:cardID", h.updateCard)
		cards.DELETE("/:cardID", h.deleteCard)
	}
}

// createCard godoc
// @Summary Create a new credit card
// @Description Creates a new credit card for the logged-in user
// @Tags cards
// @Accept json
// @Produce json
// @Param card body dto.CreateCardRequest true "Card details"
// @Success 201 {object} dto.CardResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create card"
// @Security BearerAuth
// @Router /cards [post]
func (h *cardHandler) createCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create card")
		return
	}

	logger.Info("Card created", slog.String("card_id", card.CardID))
	c.JSON(http.StatusCreated, dto.ToCardResponse(card))
}

// listCards godoc
// @Summary List credit cards
// @Description Lists the logged-in user's credit cards, oldest first
// @Tags cards
// @Produce json
// @Success 200 {object} dto.ListCardsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list cards"
// @Security BearerAuth
// @Router /cards [get]
func (h *cardHandler) listCards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cards, err := h.cardService.ListCards(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list cards")
		return
	}

	resp := dto.ListCardsResponse{Cards: make([]dto.CardResponse, len(cards))}
	for i := range cards {
		resp.Cards[i] = dto.ToCardResponse(&cards[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getCard godoc
// @Summary Get a credit card by ID
// @Description Retrieves one of the logged-in user's credit cards
// @Tags cards
// @Produce json
// @Param cardID path string true "Card ID"
// @Success 200 {object} dto.CardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to retrieve card"
// @Security BearerAuth
// @Router /cards/{cardID} [get]
func (h *cardHandler) getCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardID := c.Param("cardID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	card, err := h.cardService.GetCardByID(c.Request.Context(), userID, cardID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		respondError(c, logger, err, "Failed to retrieve card")
		return
	}

	c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

// updateCard godoc
// @Summary Rename a credit card
// @Description Updates the bank name of one of the logged-in user's cards
// @Tags cards
// @Accept json
// @Produce json
// @Param cardID path string true "Card ID"
// @Param card body dto.UpdateCardRequest true "Fields to update"
// @Success 200 {object} dto.CardResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to update card"
// @Security BearerAuth
// @Router /cards/{cardID} [put]
func (h *cardHandler) updateCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardID := c.Param("cardID")

	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), userID, cardID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		respondError(c, logger, err, "Failed to update card")
		return
	}

	logger.Info("Card updated", slog.String("card_id", cardID))
	c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

// deleteCard godoc
// @Summary Delete a credit card
// @Description Deletes a card along with its purchases and bill states
// @Tags cards
// @Produce json
// @Param cardID path string true "Card ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to delete card"
// @Security BearerAuth
// @Router /cards/{cardID} [delete]
func (h *cardHandler) deleteCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardID := c.Param("cardID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.cardService.DeleteCard(c.Request.Context(), userID, cardID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		respondError(c, logger, err, "Failed to delete card")
		return
	}

	logger.Info("Card deleted", slog.String("card_id", cardID))
	c.Status(http.StatusNoContent)
}
