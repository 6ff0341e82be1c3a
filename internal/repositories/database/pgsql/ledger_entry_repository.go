package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Emran025/accounting-system-sub005/internal/apperrors"
	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	portsrepo "github.com/Emran025/accounting-system-sub005/internal/core/ports/repositories"
	"github.com/Emran025/accounting-system-sub005/internal/models"
	"github.com/Emran025/accounting-system-sub005/internal/utils/accounting"
	"github.com/Emran025/accounting-system-sub005/internal/utils/mapping"
	"github.com/Emran025/accounting-system-sub005/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const entryColumns = `entry_id, ledger_kind, party_id, entry_type, amount, transaction_date,
	       description, reference_kind, reference_id, status,
	       created_at, created_by, last_updated_at, last_updated_by`

// signedAmountExpr mirrors accounting.SignedAmount in SQL so running balances
// and aggregates use the same sign convention as the service layer.
const signedAmountExpr = `CASE WHEN entry_type IN ('PAYMENT', 'RETURN') THEN -amount ELSE amount END`

type PgxEntryRepository struct {
	BaseRepository
	partyRepo portsrepo.PartyRepositoryFacade
}

// newPgxEntryRepository creates a new repository for ledger entry data.
func newPgxEntryRepository(pool *pgxpool.Pool, partyRepo portsrepo.PartyRepositoryFacade) portsrepo.EntryRepositoryWithTx {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
		partyRepo:      partyRepo,
	}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryWithTx
var _ portsrepo.EntryRepositoryWithTx = (*PgxEntryRepository)(nil)

// SaveEntry inserts a ledger entry and applies its signed amount to the
// party's cached balance within a single DB transaction.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	modelEntry := mapping.ToModelLedgerEntry(entry)
	insertQuery := `
		INSERT INTO ledger_entries (
			entry_id, ledger_kind, party_id, entry_type, amount, transaction_date,
			description, reference_kind, reference_id, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelEntry.EntryID,
		modelEntry.LedgerKind,
		modelEntry.PartyID,
		modelEntry.EntryType,
		modelEntry.Amount,
		modelEntry.TransactionDate,
		modelEntry.Description,
		modelEntry.ReferenceKind,
		modelEntry.ReferenceID,
		modelEntry.Status,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger entry "+modelEntry.EntryID, err)
	}

	// Lock the party row before touching its cached balance.
	if _, err := r.partyRepo.FindPartyByIDForUpdate(ctx, tx, entry.PartyID); err != nil {
		return err
	}

	delta, err := accounting.BalanceDelta(entry.EntryType, entry.Amount, false)
	if err != nil {
		return apperrors.NewAppError(500, "failed to compute balance delta for entry "+entry.EntryID, err)
	}
	if err := r.partyRepo.ApplyBalanceDeltaInTx(ctx, tx, entry.PartyID, delta, entry.CreatedBy, entry.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateEntry rewrites the mutable fields of an entry under a row lock and
// shifts the party's cached balance by the difference between the old and new
// signed amounts. The entry's status is rechecked under the lock: a row soft
// deleted after the caller's read reports ErrNotFound instead of being edited.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `
		SELECT entry_type, amount, status
		FROM ledger_entries
		WHERE entry_id = $1
		FOR UPDATE;
	`
	var oldType string
	var oldAmount decimal.Decimal
	var oldStatus models.EntryStatus
	err = tx.QueryRow(ctx, lockQuery, entry.EntryID).Scan(&oldType, &oldAmount, &oldStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock ledger entry "+entry.EntryID, err)
	}
	if oldStatus != models.Active {
		// The row was soft deleted after the caller's read; deleted entries
		// are not editable.
		return apperrors.ErrNotFound
	}

	modelEntry := mapping.ToModelLedgerEntry(entry)
	updateQuery := `
		UPDATE ledger_entries
		SET amount = $2,
		    transaction_date = $3,
		    description = $4,
		    reference_kind = $5,
		    reference_id = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE entry_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery,
		modelEntry.EntryID,
		modelEntry.Amount,
		modelEntry.TransactionDate,
		modelEntry.Description,
		modelEntry.ReferenceKind,
		modelEntry.ReferenceID,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update ledger entry "+modelEntry.EntryID, err)
	}

	oldSigned, err := accounting.SignedAmount(domain.EntryType(oldType), oldAmount)
	if err != nil {
		return apperrors.NewAppError(500, "failed to compute previous signed amount for entry "+entry.EntryID, err)
	}
	newSigned, err := accounting.SignedAmount(entry.EntryType, entry.Amount)
	if err != nil {
		return apperrors.NewAppError(500, "failed to compute new signed amount for entry "+entry.EntryID, err)
	}
	delta := newSigned.Sub(oldSigned)
	if !delta.IsZero() {
		if _, err := r.partyRepo.FindPartyByIDForUpdate(ctx, tx, entry.PartyID); err != nil {
			return err
		}
		if err := r.partyRepo.ApplyBalanceDeltaInTx(ctx, tx, entry.PartyID, delta, entry.LastUpdatedBy, entry.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// SetEntryStatus flips the soft-delete status of an entry and adjusts the
// party's cached balance on an actual transition. Returns the status the
// entry held before the call; a same-status call commits nothing.
func (r *PgxEntryRepository) SetEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus, updatedBy string, updatedAt time.Time) (domain.EntryStatus, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `
		SELECT party_id, entry_type, amount, status
		FROM ledger_entries
		WHERE entry_id = $1
		FOR UPDATE;
	`
	var m models.LedgerEntry
	err = tx.QueryRow(ctx, lockQuery, entryID).Scan(&m.PartyID, &m.EntryType, &m.Amount, &m.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to lock ledger entry "+entryID, err)
	}

	previous := domain.EntryStatus(m.Status)
	if previous == status {
		// Nothing to transition; release the lock without writing.
		if err := r.Rollback(ctx, tx); err != nil {
			return "", err
		}
		return previous, nil
	}

	updateQuery := `
		UPDATE ledger_entries
		SET status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE entry_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, entryID, string(status), updatedAt, updatedBy); err != nil {
		return "", apperrors.NewAppError(500, "failed to update status of ledger entry "+entryID, err)
	}

	removing := status == domain.Deleted
	delta, err := accounting.BalanceDelta(domain.EntryType(m.EntryType), m.Amount, removing)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to compute balance delta for entry "+entryID, err)
	}
	if _, err := r.partyRepo.FindPartyByIDForUpdate(ctx, tx, m.PartyID); err != nil {
		return "", err
	}
	if err := r.partyRepo.ApplyBalanceDeltaInTx(ctx, tx, m.PartyID, delta, updatedBy, updatedAt); err != nil {
		return "", err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}
	return previous, nil
}

// FindEntryByID retrieves a ledger entry by its ID, regardless of status.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE entry_id = $1;
	`
	m, err := scanEntryRow(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger entry by ID "+entryID, err)
	}

	domainEntry := mapping.ToDomainLedgerEntry(*m)
	return &domainEntry, nil
}

// ListEntries retrieves one page of entries matching the filter plus the
// total record count of the filtered set.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, filter portsrepo.EntryFilter, limit, offset int) (*portsrepo.EntryPage, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	whereClause, args := buildEntryFilter(filter, filter.ShowDeleted)

	countQuery := `SELECT COUNT(*) FROM ledger_entries ` + whereClause
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, apperrors.NewAppError(500, "failed to count ledger entries", err)
	}

	listQuery := `
		SELECT ` + entryColumns + `
		FROM ledger_entries ` + whereClause + `
		ORDER BY transaction_date DESC, entry_id DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2) + `;`
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	defer rows.Close()

	modelEntries := make([]models.LedgerEntry, 0, limit)
	for rows.Next() {
		m, err := scanEntryRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		modelEntries = append(modelEntries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	return &portsrepo.EntryPage{
		Entries:      mapping.ToDomainLedgerEntrySlice(modelEntries),
		TotalRecords: total,
	}, nil
}

// AggregateStats computes ledger statistics over the filtered set. Deleted
// rows never contribute, regardless of filter.ShowDeleted.
func (r *PgxEntryRepository) AggregateStats(ctx context.Context, filter portsrepo.EntryFilter) (*domain.LedgerStats, error) {
	whereClause, args := buildEntryFilter(filter, false)

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE entry_type IN ('INVOICE', 'ADJUSTMENT')), 0) AS total_debit,
			COALESCE(SUM(amount) FILTER (WHERE entry_type IN ('PAYMENT', 'RETURN')), 0) AS total_credit,
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'PAYMENT'), 0) AS total_payments,
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'RETURN'), 0) AS total_returns,
			COUNT(*) AS transaction_count
		FROM ledger_entries ` + whereClause + `;`

	stats := domain.EmptyLedgerStats()
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&stats.TotalDebit,
		&stats.TotalCredit,
		&stats.TotalPayments,
		&stats.TotalReturns,
		&stats.TransactionCount,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate ledger stats", err)
	}
	stats.Balance = stats.TotalDebit.Sub(stats.TotalCredit)
	return &stats, nil
}

// ListStatement retrieves a token-paginated statement for a party, each entry
// annotated with the running balance after it. Running balances are computed
// by a window over the party's full active history so any page is consistent
// with any other.
func (r *PgxEntryRepository) ListStatement(ctx context.Context, ledgerKind domain.LedgerKind, partyID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to decide whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT * FROM (
			SELECT ` + entryColumns + `,
			       SUM(` + signedAmountExpr + `) OVER (
			           ORDER BY transaction_date ASC, entry_id ASC
			       ) AS running_balance
			FROM ledger_entries
			WHERE ledger_kind = $1 AND party_id = $2 AND status = 'ACTIVE'
		) s
	`
	orderByClause := `ORDER BY s.transaction_date DESC, s.entry_id DESC`

	args := []interface{}{string(ledgerKind), partyID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastEntryID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` WHERE (s.transaction_date, s.entry_id) < ($3, $4)`
		args = append(args, lastDate, lastEntryID)
	}
	query += " " + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query statement for party "+partyID, err)
	}
	defer rows.Close()

	modelEntries := make([]models.LedgerEntry, 0, fetchLimit)
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.LedgerKind,
			&m.PartyID,
			&m.EntryType,
			&m.Amount,
			&m.TransactionDate,
			&m.Description,
			&m.ReferenceKind,
			&m.ReferenceID,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.RunningBalance,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan statement row for party "+partyID, err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating statement rows for party "+partyID, err)
	}

	var nextTokenVal *string
	results := modelEntries
	if len(modelEntries) > limit {
		last := modelEntries[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.EntryID)
		nextTokenVal = &token
		results = modelEntries[:limit]
	}

	return mapping.ToDomainLedgerEntrySlice(results), nextTokenVal, nil
}

// buildEntryFilter assembles the WHERE clause for list and aggregate queries.
// includeDeleted controls whether DELETED rows pass the status predicate.
func buildEntryFilter(filter portsrepo.EntryFilter, includeDeleted bool) (string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}

	addClause := func(condition string, value interface{}) {
		args = append(args, value)
		clauses = append(clauses, condition+" $"+strconv.Itoa(len(args)))
	}

	if filter.LedgerKind != "" {
		addClause("ledger_kind =", string(filter.LedgerKind))
	}
	if filter.PartyID != "" {
		addClause("party_id =", filter.PartyID)
	}
	if filter.EntryType != "" {
		addClause("entry_type =", string(filter.EntryType))
	}
	if filter.DateFrom != nil {
		addClause("transaction_date >=", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addClause("transaction_date <=", *filter.DateTo)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		placeholder := "$" + strconv.Itoa(len(args))
		clauses = append(clauses, "(description ILIKE "+placeholder+" OR reference_kind ILIKE "+placeholder+")")
	}
	if !includeDeleted {
		clauses = append(clauses, "status = 'ACTIVE'")
	}

	if len(clauses) == 0 {
		return "", args
	}
	where := "WHERE " + clauses[0]
	for _, c := range clauses[1:] {
		where += " AND " + c
	}
	return where, args
}

// scanEntryRow scans one ledger entry row in entryColumns order.
func scanEntryRow(row pgx.Row) (*models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.LedgerKind,
		&m.PartyID,
		&m.EntryType,
		&m.Amount,
		&m.TransactionDate,
		&m.Description,
		&m.ReferenceKind,
		&m.ReferenceID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
