package repositories

import (
	"context"
	"time"

	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
)

// ReportingRepository defines read-only aggregate queries for reports.
type ReportingRepository interface {
	// GetAgingData buckets each party's outstanding balance on a ledger by days
	// overdue relative to asOf. Parties with a zero balance are omitted.
	GetAgingData(ctx context.Context, ledgerKind domain.LedgerKind, asOf time.Time) ([]domain.AgingRow, error)

	// GetLedgerSummaryData totals entries per type for a ledger over the
	// inclusive date range [from, to].
	GetLedgerSummaryData(ctx context.Context, ledgerKind domain.LedgerKind, from, to time.Time) ([]domain.LedgerSummaryRow, error)
}
