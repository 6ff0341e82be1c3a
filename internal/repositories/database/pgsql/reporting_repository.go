package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	portsrepo "github.com/Emran025/accounting-system-sub005/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetAgingData buckets each party's outstanding balance by days between the
// entry's transaction date and asOf. Only non-deleted entries count, and
// parties whose net balance is zero are dropped from the report.
func (r *reportingRepository) GetAgingData(ctx context.Context, ledgerKind domain.LedgerKind, asOf time.Time) ([]domain.AgingRow, error) {
	query := `
		SELECT
			p.party_id,
			p.name AS party_name,
			COALESCE(SUM(` + signedAgingExpr + `) FILTER (WHERE e.transaction_date > $2::timestamptz - INTERVAL '30 days'), 0) AS bucket_current,
			COALESCE(SUM(` + signedAgingExpr + `) FILTER (WHERE e.transaction_date <= $2::timestamptz - INTERVAL '30 days'
				AND e.transaction_date > $2::timestamptz - INTERVAL '60 days'), 0) AS bucket_31_60,
			COALESCE(SUM(` + signedAgingExpr + `) FILTER (WHERE e.transaction_date <= $2::timestamptz - INTERVAL '60 days'
				AND e.transaction_date > $2::timestamptz - INTERVAL '90 days'), 0) AS bucket_61_90,
			COALESCE(SUM(` + signedAgingExpr + `) FILTER (WHERE e.transaction_date <= $2::timestamptz - INTERVAL '90 days'), 0) AS bucket_over_90,
			COALESCE(SUM(` + signedAgingExpr + `), 0) AS total_due
		FROM ledger_entries e
		JOIN parties p ON e.party_id = p.party_id
		WHERE e.ledger_kind = $1
			AND e.status = 'ACTIVE'
			AND e.transaction_date <= $2
		GROUP BY p.party_id, p.name
		HAVING COALESCE(SUM(` + signedAgingExpr + `), 0) <> 0
		ORDER BY p.name ASC;
	`

	rows, err := r.Pool.Query(ctx, query, string(ledgerKind), asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying aging data: %w", err)
	}
	defer rows.Close()

	var result []domain.AgingRow
	for rows.Next() {
		var row domain.AgingRow
		if err := rows.Scan(
			&row.PartyID,
			&row.PartyName,
			&row.Current,
			&row.Days31To60,
			&row.Days61To90,
			&row.Over90Days,
			&row.TotalDue,
		); err != nil {
			return nil, fmt.Errorf("error scanning aging row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating aging rows: %w", err)
	}
	return result, nil
}

// signedAgingExpr is signedAmountExpr qualified for the joined entries alias.
const signedAgingExpr = `CASE WHEN e.entry_type IN ('PAYMENT', 'RETURN') THEN -e.amount ELSE e.amount END`

// GetLedgerSummaryData totals non-deleted entries per type for a ledger over
// the inclusive range [from, to].
func (r *reportingRepository) GetLedgerSummaryData(ctx context.Context, ledgerKind domain.LedgerKind, from, to time.Time) ([]domain.LedgerSummaryRow, error) {
	query := `
		SELECT
			entry_type,
			COALESCE(SUM(amount), 0) AS total_amount,
			COUNT(*) AS entry_count
		FROM ledger_entries
		WHERE ledger_kind = $1
			AND status = 'ACTIVE'
			AND transaction_date >= $2
			AND transaction_date <= $3
		GROUP BY entry_type
		ORDER BY entry_type;
	`

	rows, err := r.Pool.Query(ctx, query, string(ledgerKind), from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger summary data: %w", err)
	}
	defer rows.Close()

	var result []domain.LedgerSummaryRow
	for rows.Next() {
		var row domain.LedgerSummaryRow
		var entryType string
		if err := rows.Scan(&entryType, &row.TotalAmount, &row.EntryCount); err != nil {
			return nil, fmt.Errorf("error scanning ledger summary row: %w", err)
		}
		row.EntryType = domain.EntryType(entryType)
		row.Direction = domain.DirectionOf(row.EntryType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger summary rows: %w", err)
	}
	return result, nil
}
