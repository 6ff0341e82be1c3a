package services

import (
	"context"

	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	"github.com/Emran025/accounting-system-sub005/internal/dto"
)

// LedgerReaderSvc defines read operations over a party ledger.
type LedgerReaderSvc interface {
	// GetEntryByID retrieves a single entry regardless of soft-delete state.
	GetEntryByID(ctx context.Context, ledgerKind domain.LedgerKind, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a filtered, paginated page of entries with the
	// aggregate statistics of the filtered non-deleted set.
	ListEntries(ctx context.Context, ledgerKind domain.LedgerKind, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// GetStatement retrieves a token-paginated statement with running balances.
	GetStatement(ctx context.Context, ledgerKind domain.LedgerKind, partyID string, limit int, nextToken *string) (*dto.StatementResponse, error)
}

// LedgerWriterSvc defines write operations over a party ledger.
type LedgerWriterSvc interface {
	// CreateEntry validates and records a new ledger entry.
	CreateEntry(ctx context.Context, ledgerKind domain.LedgerKind, req dto.CreateEntryRequest, creatorUserID string) (*domain.LedgerEntry, error)

	// UpdateEntry edits an entry's mutable fields within the edit window.
	UpdateEntry(ctx context.Context, ledgerKind domain.LedgerKind, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error)

	// SoftDeleteEntry moves an entry to DELETED. Deleting an already deleted
	// entry is a no-op success.
	SoftDeleteEntry(ctx context.Context, ledgerKind domain.LedgerKind, entryID string, userID string) error

	// RestoreEntry moves a DELETED entry back to ACTIVE. Restoring an entry
	// that is not currently deleted fails with apperrors.ErrNotFound.
	RestoreEntry(ctx context.Context, ledgerKind domain.LedgerKind, entryID string, userID string) (*domain.LedgerEntry, error)
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
