package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Emran025/accounting-system-sub005/internal/apperrors"
	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	portssvc "github.com/Emran025/accounting-system-sub005/internal/core/ports/services"
	"github.com/Emran025/accounting-system-sub005/internal/dto"
	"github.com/Emran025/accounting-system-sub005/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to ledger entries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ledgerService,
	}
}

// ledgerKindFromPath maps the lowercase path segment to a ledger kind.
func ledgerKindFromPath(c *gin.Context) (domain.LedgerKind, bool) {
	kind := domain.LedgerKind(strings.ToUpper(c.Param("ledgerType")))
	if !domain.ValidLedgerKind(kind) {
		return "", false
	}
	return kind, true
}

// respondLedgerError maps service errors to HTTP responses.
func respondLedgerError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action))
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Entry not found"})
	case errors.Is(err, apperrors.ErrImmutableField),
		errors.Is(err, apperrors.ErrImmutableReference),
		errors.Is(err, apperrors.ErrEditWindowExpired),
		errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting ledger operation", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	default:
		logger.Error("Ledger operation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to " + action})
	}
}

// listEntries godoc
// @Summary List ledger entries
// @Description Retrieves a filtered, paginated page of entries with aggregate statistics over the filtered non-deleted set
// @Tags ledgers
// @Produce  json
// @Param   ledgerType path string true "Ledger type (receivable, payable, representative)"
// @Param   party_id query string false "Filter by party"
// @Param   page query int false "Page number (default 1)"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   search query string false "Substring match over description and reference kind"
// @Param   type query string false "Filter by entry type"
// @Param   date_from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param   date_to query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param   show_deleted query bool false "Include soft-deleted entries in the listing"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /ledgers/{ledgerType}/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledgerKind, ok := ledgerKindFromPath(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown ledger type"})
		return
	}

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid query parameters"})
		return
	}

	resp, err := h.ledgerService.ListEntries(c.Request.Context(), ledgerKind, params)
	if err != nil {
		respondLedgerError(c, logger, err, "list entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// createEntry godoc
// @Summary Record a ledger entry
// @Description Creates a new entry and moves the party's cached balance in the same database transaction
// @Tags ledgers
// @Accept  json
// @Produce  json
// @Param   ledgerType path string true "Ledger type (receivable, payable, representative)"
// @Param   entry body dto.CreateEntryRequest true "Entry to record"
// @Success 201 {object} dto.EntryEnvelope
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Router /ledgers/{ledgerType}/entries [post]
func (h *ledgerHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledgerKind, ok := ledgerKindFromPath(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown ledger type"})
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), ledgerKind, req, creatorUserID)
	if err != nil {
		respondLedgerError(c, logger, err, "create entry")
		return
	}

	logger.Info("Entry created via API", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.EntryEnvelope{Success: true, Data: dto.ToEntryResponse(entry)})
}

// getEntry godoc
// @Summary Get a ledger entry
// @Description Retrieves a single entry by ID, including soft-deleted ones
// @Tags ledgers
// @Produce  json
// @Param   ledgerType path string true "Ledger type (receivable, payable, representative)"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryEnvelope
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Router /ledgers/{ledgerType}/entries/{entryID} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledgerKind, ok := ledgerKindFromPath(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown ledger type"})
		return
	}

	entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), ledgerKind, c.Param("entryID"))
	if err != nil {
		respondLedgerError(c, logger, err, "retrieve entry")
		return
	}

	c.JSON(http.StatusOK, dto.EntryEnvelope{Success: true, Data: dto.ToEntryResponse(entry)})
}

// updateEntry godoc
// @Summary Edit or restore a ledger entry
// @Description Edits mutable fields within the edit window, or restores a soft-deleted entry when the restore flag is set. The entry type is immutable.
// @Tags ledgers
// @Accept  json
// @Produce  json
// @Param   ledgerType path string true "Ledger type (receivable, payable, representative)"
// @Param   entryID path string true "Entry ID"
// @Param   entry body dto.UpdateEntryRequest true "Fields to change"
// @Success 200 {object} dto.EntryEnvelope
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Edit window expired or immutable field"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Router /ledgers/{ledgerType}/entries/{entryID} [put]
func (h *ledgerHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledgerKind, ok := ledgerKindFromPath(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown ledger type"})
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	entryID := c.Param("entryID")
	entry, err := h.ledgerService.UpdateEntry(c.Request.Context(), ledgerKind, entryID, req, userID)
	if err != nil {
		respondLedgerError(c, logger, err, "update entry")
		return
	}

	logger.Info("Entry updated via API", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.EntryEnvelope{Success: true, Data: dto.ToEntryResponse(entry)})
}

// deleteEntry godoc
// @Summary Soft delete a ledger entry
// @Description Moves an entry to DELETED and backs its amount out of the party balance. Deleting an already deleted entry is a no-op success.
// @Tags ledgers
// @Produce  json
// @Param   ledgerType path string true "Ledger type (receivable, payable, representative)"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is owned by a source document"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Router /ledgers/{ledgerType}/entries/{entryID} [delete]
func (h *ledgerHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledgerKind, ok := ledgerKindFromPath(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown ledger type"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	entryID := c.Param("entryID")
	if err := h.ledgerService.SoftDeleteEntry(c.Request.Context(), ledgerKind, entryID, userID); err != nil {
		respondLedgerError(c, logger, err, "delete entry")
		return
	}

	logger.Info("Entry soft deleted via API", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// restoreEntry godoc
// @Summary Restore a soft-deleted ledger entry
// @Description Moves a DELETED entry back to ACTIVE and re-applies its amount to the party balance
// @Tags ledgers
// @Produce  json
// @Param   ledgerType path string true "Ledger type (receivable, payable, representative)"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryEnvelope
// @Failure 404 {object} map[string]string "Entry not found or not deleted"
// @Failure 500 {object} map[string]string "Failed to restore entry"
// @Router /ledgers/{ledgerType}/entries/{entryID}/restore [post]
func (h *ledgerHandler) restoreEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledgerKind, ok := ledgerKindFromPath(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown ledger type"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	entryID := c.Param("entryID")
	entry, err := h.ledgerService.RestoreEntry(c.Request.Context(), ledgerKind, entryID, userID)
	if err != nil {
		respondLedgerError(c, logger, err, "restore entry")
		return
	}

	logger.Info("Entry restored via API", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.EntryEnvelope{Success: true, Data: dto.ToEntryResponse(entry)})
}

// RegisterLedgerRoutes registers ledger entry routes
func RegisterLedgerRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledgers := group.Group("/ledgers/:ledgerType")
	{
		ledgers.GET("/entries", h.listEntries)
		ledgers.POST("/entries", h.createEntry)
		ledgers.GET("/entries/:entryID", h.getEntry)
		ledgers.PUT("/entries/:entryID", h.updateEntry)
		ledgers.DELETE("/entries/:entryID", h.deleteEntry)
		ledgers.POST("/entries/:entryID/restore", h.restoreEntry)
	}
}
