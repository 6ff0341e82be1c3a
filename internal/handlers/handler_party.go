package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Emran025/accounting-system-sub005/internal/apperrors"
	portssvc "github.com/Emran025/accounting-system-sub005/internal/core/ports/services"
	"github.com/Emran025/accounting-system-sub005/internal/dto"
	"github.com/Emran025/accounting-system-sub005/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler handles HTTP requests related to parties.
type partyHandler struct {
	partyService  portssvc.PartySvcFacade
	ledgerService portssvc.LedgerSvcFacade
}

// newPartyHandler creates a new partyHandler.
func newPartyHandler(partyService portssvc.PartySvcFacade, ledgerService portssvc.LedgerSvcFacade) *partyHandler {
	return &partyHandler{
		partyService:  partyService,
		ledgerService: ledgerService,
	}
}

func respondPartyError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Party not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	default:
		logger.Error("Party operation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to " + action})
	}
}

// createParty godoc
// @Summary Register a party
// @Description Creates a customer, supplier, or sales representative
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.CreatePartyRequest true "Party to register"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Failed to create party"
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondPartyError(c, logger, err, "create party")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List parties
// @Description Retrieves parties, optionally filtered by type
// @Tags parties
// @Produce  json
// @Param   party_type query string false "Filter by party type"
// @Param   limit query int false "Page size (default 20)"
// @Param   offset query int false "Offset (default 0)"
// @Success 200 {object} dto.ListPartiesResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to list parties"
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid query parameters"})
		return
	}

	resp, err := h.partyService.ListParties(c.Request.Context(), params)
	if err != nil {
		respondPartyError(c, logger, err, "list parties")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getParty godoc
// @Summary Get a party
// @Tags parties
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{partyID} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	party, err := h.partyService.GetPartyByID(c.Request.Context(), c.Param("partyID"))
	if err != nil {
		respondPartyError(c, logger, err, "retrieve party")
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// updateParty godoc
// @Summary Update a party
// @Description Updates name, phone, or address
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Param   party body dto.UpdatePartyRequest true "Fields to change"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{partyID} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), c.Param("partyID"), req, userID)
	if err != nil {
		respondPartyError(c, logger, err, "update party")
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// deactivateParty godoc
// @Summary Deactivate a party
// @Description Marks a party inactive; its ledger history stays intact
// @Tags parties
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Party already inactive"
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{partyID} [delete]
func (h *partyHandler) deactivateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	if err := h.partyService.DeactivateParty(c.Request.Context(), c.Param("partyID"), userID); err != nil {
		respondPartyError(c, logger, err, "deactivate party")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// getPartyBalance godoc
// @Summary Get a party's recomputed balance
// @Description Aggregates the party's non-deleted ledger entries; the cached column is only a convenience
// @Tags parties
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Success 200 {object} dto.PartyBalanceResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{partyID}/balance [get]
func (h *partyHandler) getPartyBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.partyService.GetPartyBalance(c.Request.Context(), c.Param("partyID"))
	if err != nil {
		respondPartyError(c, logger, err, "compute party balance")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getPartyStatement godoc
// @Summary Get a party's statement
// @Description Token-paginated chronological statement with a running balance per entry
// @Tags parties
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Cursor returned by the previous page"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid cursor"
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{partyID}/statement [get]
func (h *partyHandler) getPartyStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	party, err := h.partyService.GetPartyByID(c.Request.Context(), partyID)
	if err != nil {
		respondPartyError(c, logger, err, "retrieve party")
		return
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, convErr := strconv.Atoi(limitStr)
		if convErr != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	resp, err := h.ledgerService.GetStatement(c.Request.Context(), party.PartyType.LedgerFor(), partyID, limit, nextToken)
	if err != nil {
		respondPartyError(c, logger, err, "retrieve statement")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// registerPartyRoutes registers party specific routes
func registerPartyRoutes(group *gin.RouterGroup, partyService portssvc.PartySvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newPartyHandler(partyService, ledgerService)

	parties := group.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:partyID", h.getParty)
		parties.PUT("/:partyID", h.updateParty)
		parties.DELETE("/:partyID", h.deactivateParty)
		parties.GET("/:partyID/balance", h.getPartyBalance)
		parties.GET("/:partyID/statement", h.getPartyStatement)
	}
}
