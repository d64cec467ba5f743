package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
	portssvc "github.com/parcelado-app/parcelado_backend/internal/core/ports/services"
	"github.com/parcelado-app/parcelado_backend/internal/dto"
	"github.com/parcelado-app/parcelado_backend/internal/middleware"
)

// summaryHandler handles the derived read surface: per-card statements and
// the portfolio summary for a viewing period.
type summaryHandler struct {
	statementService portssvc.StatementReaderSvc
	summaryService   portssvc.SummaryReaderSvc
}

// newSummaryHandler creates a new summaryHandler.
func newSummaryHandler(st portssvc.StatementReaderSvc, sum portssvc.SummaryReaderSvc) *summaryHandler {
	return &summaryHandler{statementService: st, summaryService: sum}
}

// registerSummaryRoutes registers the derived statement and summary routes.
func registerSummaryRoutes(rg *gin.RouterGroup, statementService portssvc.StatementReaderSvc, summaryService portssvc.SummaryReaderSvc) {
	h := newSummaryHandler(statementService, summaryService)

	rg.GET("/cards/:cardID/statement", h.getCardStatement)
	rg.GET("/statements", h.listCardStatements)
	rg.GET("/summary", h.getPortfolioSummary)
}

// getCardStatement godoc
// @Summary Get one card's bill for a period
// @Description Derives the card's bill (active installments, monthly due, remaining debt) for the given calendar period
// @Tags statements
// @Produce json
// @Param cardID path string true "Card ID"
// @Param month query int false "Calendar month (1-12), defaults to the current period"
// @Param year query int false "Year, defaults to the current period"
// @Success 200 {object} dto.CardStatementResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to derive statement"
// @Security BearerAuth
// @Router /cards/{cardID}/statement [get]
func (h *summaryHandler) getCardStatement(c *gin.Context) {
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

	statement, err := h.statementService.GetCardStatement(c.Request.Context(), userID, cardID, period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		respondError(c, logger, err, "Failed to derive statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToCardStatementResponse(statement))
}

// listCardStatements godoc
// @Summary List all card bills for a period
// @Description Derives the bill of every card for the given calendar period
// @Tags statements
// @Produce json
// @Param month query int false "Calendar month (1-12), defaults to the current period"
// @Param year query int false "Year, defaults to the current period"
// @Success 200 {array} dto.CardStatementResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to derive statements"
// @Security BearerAuth
// @Router /statements [get]
func (h *summaryHandler) listCardStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

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

	statements, err := h.statementService.ListCardStatements(c.Request.Context(), userID, period)
	if err != nil {
		respondError(c, logger, err, "Failed to derive statements")
		return
	}

	resp := make([]dto.CardStatementResponse, len(statements))
	for i := range statements {
		resp[i] = dto.ToCardStatementResponse(&statements[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getPortfolioSummary godoc
// @Summary Get the portfolio summary for a period
// @Description Rolls card dues, expenses, debt and salary into the period's totals
// @Tags summary
// @Produce json
// @Param month query int false "Calendar month (1-12), defaults to the current period"
// @Param year query int false "Year, defaults to the current period"
// @Success 200 {object} dto.PortfolioSummaryResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to derive summary"
// @Security BearerAuth
// @Router /summary [get]
func (h *summaryHandler) getPortfolioSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

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

	summary, err := h.summaryService.GetPortfolioSummary(c.Request.Context(), userID, period)
	if err != nil {
		respondError(c, logger, err, "Failed to derive summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToPortfolioSummaryResponse(summary))
}
