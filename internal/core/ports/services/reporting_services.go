package services

import (
	"context"

	"github.com/Emran025/accounting-system-sub005/internal/dto"
)

// ReportingSvcFacade defines aggregate reporting operations.
type ReportingSvcFacade interface {
	GetAgingReport(ctx context.Context, params dto.AgingReportParams) (*dto.AgingReportResponse, error)
	GetLedgerSummary(ctx context.Context, params dto.LedgerSummaryParams) (*dto.LedgerSummaryResponse, error)
}
