package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Emran025/accounting-system-sub005/internal/apperrors"
	portssvc "github.com/Emran025/accounting-system-sub005/internal/core/ports/services"
	"github.com/Emran025/accounting-system-sub005/internal/dto"
	"github.com/Emran025/accounting-system-sub005/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for aggregate reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// getAgingReport godoc
// @Summary Aging report
// @Description Buckets each party's outstanding ledger balance by days overdue
// @Tags reports
// @Produce  json
// @Param   ledger query string true "Ledger (receivable, payable, representative)"
// @Param   as_of query string false "Reference date (YYYY-MM-DD, default today)"
// @Success 200 {object} dto.AgingReportResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/aging [get]
func (h *reportingHandler) getAgingReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AgingReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid query parameters"})
		return
	}

	resp, err := h.reportingService.GetAgingReport(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		logger.Error("Failed to build aging report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to build aging report"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getLedgerSummary godoc
// @Summary Ledger summary report
// @Description Totals non-deleted entries per type for a ledger over a period
// @Tags reports
// @Produce  json
// @Param   ledger query string true "Ledger (receivable, payable, representative)"
// @Param   date_from query string true "Inclusive lower bound (YYYY-MM-DD)"
// @Param   date_to query string true "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.LedgerSummaryResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/ledger-summary [get]
func (h *reportingHandler) getLedgerSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.LedgerSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid query parameters"})
		return
	}

	resp, err := h.reportingService.GetLedgerSummary(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		logger.Error("Failed to build ledger summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to build ledger summary"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// registerReportingRoutes registers reporting specific routes
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := group.Group("/reports")
	{
		reports.GET("/aging", h.getAgingReport)
		reports.GET("/ledger-summary", h.getLedgerSummary)
	}
}
