package repositories

import (
	"context"
	"time"

	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
)

// EntryFilter narrows the entry set a list or aggregate query operates on.
// Zero values mean "no constraint". DateFrom/DateTo are inclusive.
type EntryFilter struct {
	LedgerKind  domain.LedgerKind
	PartyID     string
	Search      string // substring match over description and reference kind
	EntryType   domain.EntryType
	DateFrom    *time.Time
	DateTo      *time.Time
	ShowDeleted bool // include DELETED rows in the listing; never in stats
}

// EntryPage is one page of a filtered entry listing together with the total
// record count of the filtered set (before pagination).
type EntryPage struct {
	Entries      []domain.LedgerEntry
	TotalRecords int64
}

// EntryReader defines read operations for ledger entry data
type EntryReader interface {
	// FindEntryByID retrieves a specific ledger entry by its unique identifier,
	// regardless of its soft-delete status.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves one page of entries matching the filter, ordered by
	// transaction_date DESC with entry_id DESC as tie-break.
	ListEntries(ctx context.Context, filter EntryFilter, limit, offset int) (*EntryPage, error)

	// AggregateStats computes ledger statistics over the filtered, non-deleted
	// set. Deleted rows never contribute, even when filter.ShowDeleted is set.
	AggregateStats(ctx context.Context, filter EntryFilter) (*domain.LedgerStats, error)

	// ListStatement retrieves a token-paginated chronological statement for a
	// party, each entry annotated with its running balance. Returns the
	// page's entries and the next-page token.
	ListStatement(ctx context.Context, ledgerKind domain.LedgerKind, partyID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// EntryWriter defines write operations for ledger entry data.
// Every mutation runs in a database transaction that also adjusts the party's
// cached balance, so the cache cannot drift from the entry rows.
type EntryWriter interface {
	// SaveEntry persists a new ledger entry and applies balanceDelta to the
	// party's cached balance atomically.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	// UpdateEntry rewrites the mutable fields of an entry under a row lock and
	// shifts the party's cached balance by the amount difference.
	UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error

	// SetEntryStatus flips the soft-delete status under a row lock, adjusting
	// the cached balance. Returns the entry's previous status.
	SetEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus, updatedBy string, updatedAt time.Time) (domain.EntryStatus, error)
}

// EntryRepositoryFacade combines all ledger entry repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}

// EntryRepositoryWithTx extends EntryRepositoryFacade with transaction capabilities
type EntryRepositoryWithTx interface {
	EntryRepositoryFacade
	TransactionManager
}
