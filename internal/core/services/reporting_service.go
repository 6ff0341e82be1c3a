package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Emran025/accounting-system-sub005/internal/apperrors"
	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	portsrepo "github.com/Emran025/accounting-system-sub005/internal/core/ports/repositories"
	portssvc "github.com/Emran025/accounting-system-sub005/internal/core/ports/services"
	"github.com/Emran025/accounting-system-sub005/internal/dto"
	"github.com/Emran025/accounting-system-sub005/internal/middleware"
)

// reportingService provides aggregate reports over the ledgers.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// parseLedgerParam maps the lowercase query value to a ledger kind.
func parseLedgerParam(value string) (domain.LedgerKind, error) {
	kind := domain.LedgerKind(strings.ToUpper(value))
	if !domain.ValidLedgerKind(kind) {
		return "", fmt.Errorf("%w: unknown ledger %q", apperrors.ErrValidation, value)
	}
	return kind, nil
}

// GetAgingReport buckets outstanding balances by days overdue.
func (s *reportingService) GetAgingReport(ctx context.Context, params dto.AgingReportParams) (*dto.AgingReportResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ledgerKind, err := parseLedgerParam(params.Ledger)
	if err != nil {
		return nil, err
	}

	asOf := time.Now().UTC()
	if params.AsOf != "" {
		parsed, err := time.Parse(dateLayout, params.AsOf)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid as_of %q", apperrors.ErrValidation, params.AsOf)
		}
		// Include the whole reference day.
		asOf = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	rows, err := s.reportingRepo.GetAgingData(ctx, ledgerKind, asOf)
	if err != nil {
		logger.Error("Failed to fetch aging data", slog.String("error", err.Error()), slog.String("ledger", string(ledgerKind)))
		return nil, fmt.Errorf("failed to fetch aging data: %w", err)
	}

	responses := make([]dto.AgingRowResponse, len(rows))
	for i, row := range rows {
		responses[i] = dto.ToAgingRowResponse(row)
	}
	return &dto.AgingReportResponse{
		Success: true,
		Ledger:  params.Ledger,
		AsOf:    asOf.Format(dateLayout),
		Data:    responses,
	}, nil
}

// GetLedgerSummary totals entries per type over a reporting period.
func (s *reportingService) GetLedgerSummary(ctx context.Context, params dto.LedgerSummaryParams) (*dto.LedgerSummaryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ledgerKind, err := parseLedgerParam(params.Ledger)
	if err != nil {
		return nil, err
	}

	from, err := time.Parse(dateLayout, params.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date_from %q", apperrors.ErrValidation, params.DateFrom)
	}
	to, err := time.Parse(dateLayout, params.DateTo)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date_to %q", apperrors.ErrValidation, params.DateTo)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: date_to precedes date_from", apperrors.ErrValidation)
	}
	to = to.Add(24*time.Hour - time.Nanosecond)

	rows, err := s.reportingRepo.GetLedgerSummaryData(ctx, ledgerKind, from, to)
	if err != nil {
		logger.Error("Failed to fetch ledger summary data", slog.String("error", err.Error()), slog.String("ledger", string(ledgerKind)))
		return nil, fmt.Errorf("failed to fetch ledger summary data: %w", err)
	}

	responses := make([]dto.LedgerSummaryRowResponse, len(rows))
	for i, row := range rows {
		responses[i] = dto.ToLedgerSummaryRowResponse(row)
	}
	return &dto.LedgerSummaryResponse{
		Success: true,
		Ledger:  params.Ledger,
		Data:    responses,
	}, nil
}
