package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Emran025/accounting-system-sub005/internal/apperrors"
	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	portsrepo "github.com/Emran025/accounting-system-sub005/internal/core/ports/repositories"
	portssvc "github.com/Emran025/accounting-system-sub005/internal/core/ports/services"
	"github.com/Emran025/accounting-system-sub005/internal/dto"
	"github.com/Emran025/accounting-system-sub005/internal/middleware"
	"github.com/Emran025/accounting-system-sub005/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const (
	dateLayout      = "2006-01-02"
	maxPageSize     = 100
	defaultPageSize = 20
)

var (
	ErrAmountNotPositive = errors.New("entry amount must be positive")
	ErrPartyInactive     = errors.New("party is inactive")
	ErrLedgerMismatch    = errors.New("party does not belong to this ledger")
)

// ledgerService provides core ledger entry operations.
type ledgerService struct {
	entryRepo  portsrepo.EntryRepositoryWithTx
	partyRepo  portsrepo.PartyRepositoryFacade
	editWindow time.Duration
}

// NewLedgerService creates a new ledger service. editWindow bounds how long
// after its transaction date an entry stays editable.
func NewLedgerService(entryRepo portsrepo.EntryRepositoryWithTx, partyRepo portsrepo.PartyRepositoryFacade, editWindow time.Duration) portssvc.LedgerSvcFacade {
	return &ledgerService{
		entryRepo:  entryRepo,
		partyRepo:  partyRepo,
		editWindow: editWindow,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// resolveParty fetches the party and checks it belongs to the target ledger.
func (s *ledgerService) resolveParty(ctx context.Context, ledgerKind domain.LedgerKind, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find party %s: %w", partyID, err)
	}
	if party.PartyType.LedgerFor() != ledgerKind {
		return nil, fmt.Errorf("%w: party %s is a %s", ErrLedgerMismatch, partyID, party.PartyType)
	}
	return party, nil
}

// CreateEntry validates and records a new ledger entry. The party's cached
// balance moves in the same database transaction as the insert.
func (s *ledgerService) CreateEntry(ctx context.Context, ledgerKind domain.LedgerKind, req dto.CreateEntryRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidLedgerKind(ledgerKind) {
		return nil, fmt.Errorf("%w: unknown ledger %q", apperrors.ErrValidation, ledgerKind)
	}
	if !domain.ValidEntryType(req.EntryType) {
		return nil, fmt.Errorf("%w: unknown entry type %q", apperrors.ErrValidation, req.EntryType)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}

	party, err := s.resolveParty(ctx, ledgerKind, req.PartyID)
	if err != nil {
		if errors.Is(err, ErrLedgerMismatch) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		return nil, err
	}
	if !party.IsActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPartyInactive)
	}

	var ref *domain.DocumentRef
	if req.Reference != nil {
		ref = &domain.DocumentRef{Kind: domain.DocumentKind(req.Reference.Kind), ID: req.Reference.ID}
		if err := ref.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
	}

	now := time.Now().UTC()
	entry := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		LedgerKind:      ledgerKind,
		PartyID:         req.PartyID,
		EntryType:       req.EntryType,
		Amount:          req.Amount.Round(2),
		TransactionDate: req.TransactionDate.Time,
		Description:     req.Description,
		Reference:       ref,
		Status:          domain.Active,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		logger.Error("Failed to save ledger entry", slog.String("error", err.Error()), slog.String("party_id", req.PartyID))
		return nil, fmt.Errorf("failed to save ledger entry: %w", err)
	}

	logger.Info("Ledger entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("ledger", string(ledgerKind)),
		slog.String("party_id", entry.PartyID),
		slog.String("type", string(entry.EntryType)))
	return &entry, nil
}

// GetEntryByID retrieves an entry and hides entries of other ledgers.
func (s *ledgerService) GetEntryByID(ctx context.Context, ledgerKind domain.LedgerKind, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	if entry.LedgerKind != ledgerKind {
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

// UpdateEntry edits an entry's mutable fields. The entry type is immutable,
// deleted entries cannot be edited, and edits outside the edit window are
// rejected. A request with the restore flag set is a restore, not an edit.
func (s *ledgerService) UpdateEntry(ctx context.Context, ledgerKind domain.LedgerKind, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Restore {
		return s.RestoreEntry(ctx, ledgerKind, entryID, userID)
	}

	entry, err := s.GetEntryByID(ctx, ledgerKind, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status == domain.Deleted {
		// A deleted entry is invisible to edits until restored.
		return nil, apperrors.ErrNotFound
	}

	if req.EntryType != nil && *req.EntryType != entry.EntryType {
		return nil, fmt.Errorf("%w: entry type cannot be changed", apperrors.ErrImmutableField)
	}

	// The window is anchored on the transaction date, not the insert time.
	now := time.Now().UTC()
	if s.editWindow > 0 && now.Sub(entry.TransactionDate) > s.editWindow {
		return nil, fmt.Errorf("%w: entry %s is dated %s", apperrors.ErrEditWindowExpired, entryID, entry.TransactionDate.Format(time.RFC3339))
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
		}
		entry.Amount = req.Amount.Round(2)
	}
	if req.TransactionDate != nil {
		entry.TransactionDate = req.TransactionDate.Time
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		logger.Error("Failed to update ledger entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update ledger entry %s: %w", entryID, err)
	}

	logger.Info("Ledger entry updated", slog.String("entry_id", entryID), slog.String("ledger", string(ledgerKind)))
	return entry, nil
}

// SoftDeleteEntry moves an entry to DELETED. Entries born from an invoice
// document must be removed through that document, not through the ledger.
// Deleting an already deleted entry succeeds without change.
func (s *ledgerService) SoftDeleteEntry(ctx context.Context, ledgerKind domain.LedgerKind, entryID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.GetEntryByID(ctx, ledgerKind, entryID)
	if err != nil {
		return err
	}
	if entry.EntryType == domain.Invoice && entry.Reference != nil && entry.Reference.IsInvoiceDocument() {
		return fmt.Errorf("%w: entry %s belongs to %s %d", apperrors.ErrImmutableReference, entryID, entry.Reference.Kind, entry.Reference.ID)
	}

	previous, err := s.entryRepo.SetEntryStatus(ctx, entryID, domain.Deleted, userID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to soft delete ledger entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return fmt.Errorf("failed to soft delete ledger entry %s: %w", entryID, err)
	}
	if previous == domain.Deleted {
		logger.Info("Ledger entry already deleted", slog.String("entry_id", entryID))
		return nil
	}

	logger.Info("Ledger entry soft deleted", slog.String("entry_id", entryID), slog.String("ledger", string(ledgerKind)))
	return nil
}

// RestoreEntry moves a DELETED entry back to ACTIVE. An entry that is not
// currently deleted has nothing to restore.
func (s *ledgerService) RestoreEntry(ctx context.Context, ledgerKind domain.LedgerKind, entryID string, userID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetEntryByID(ctx, ledgerKind, entryID); err != nil {
		return nil, err
	}

	previous, err := s.entryRepo.SetEntryStatus(ctx, entryID, domain.Active, userID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to restore ledger entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to restore ledger entry %s: %w", entryID, err)
	}
	if previous == domain.Active {
		return nil, fmt.Errorf("%w: entry %s is not deleted", apperrors.ErrNotFound, entryID)
	}

	restored, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload restored entry %s: %w", entryID, err)
	}

	logger.Info("Ledger entry restored", slog.String("entry_id", entryID), slog.String("ledger", string(ledgerKind)))
	return restored, nil
}

// ListEntries retrieves one page of entries plus the aggregate statistics of
// the filtered non-deleted set. Pagination never affects the statistics.
func (s *ledgerService) ListEntries(ctx context.Context, ledgerKind domain.LedgerKind, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidLedgerKind(ledgerKind) {
		return nil, fmt.Errorf("%w: unknown ledger %q", apperrors.ErrValidation, ledgerKind)
	}

	filter, err := buildFilter(ledgerKind, params)
	if err != nil {
		return nil, err
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := (page - 1) * limit

	entryPage, err := s.entryRepo.ListEntries(ctx, *filter, limit, offset)
	if err != nil {
		logger.Error("Failed to list ledger entries", slog.String("error", err.Error()), slog.String("ledger", string(ledgerKind)))
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	stats, err := s.entryRepo.AggregateStats(ctx, *filter)
	if err != nil {
		logger.Error("Failed to aggregate ledger stats", slog.String("error", err.Error()), slog.String("ledger", string(ledgerKind)))
		return nil, fmt.Errorf("failed to aggregate ledger stats: %w", err)
	}

	return &dto.ListEntriesResponse{
		Success: true,
		Data:    dto.ToEntryResponses(entryPage.Entries),
		Stats:   dto.ToLedgerStatsResponse(*stats),
		Pagination: dto.PaginationResponse{
			CurrentPage:  page,
			TotalPages:   pagination.TotalPages(entryPage.TotalRecords, limit),
			TotalRecords: entryPage.TotalRecords,
			PerPage:      limit,
		},
	}, nil
}

// GetStatement retrieves a token-paginated statement with running balances
// for one party.
func (s *ledgerService) GetStatement(ctx context.Context, ledgerKind domain.LedgerKind, partyID string, limit int, nextToken *string) (*dto.StatementResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.resolveParty(ctx, ledgerKind, partyID); err != nil {
		if errors.Is(err, ErrLedgerMismatch) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	entries, token, err := s.entryRepo.ListStatement(ctx, ledgerKind, partyID, limit, nextToken)
	if err != nil {
		logger.Error("Failed to list statement", slog.String("error", err.Error()), slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to list statement for party %s: %w", partyID, err)
	}

	responses := make([]dto.EntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToStatementEntryResponse(&entries[i])
	}
	return &dto.StatementResponse{
		Success:   true,
		PartyID:   partyID,
		Data:      responses,
		NextToken: token,
	}, nil
}

// buildFilter parses the listing query parameters into a repository filter.
func buildFilter(ledgerKind domain.LedgerKind, params dto.ListEntriesParams) (*portsrepo.EntryFilter, error) {
	filter := portsrepo.EntryFilter{
		LedgerKind:  ledgerKind,
		PartyID:     params.PartyID,
		Search:      params.Search,
		ShowDeleted: params.ShowDeleted,
	}

	if params.EntryType != "" {
		t := domain.EntryType(params.EntryType)
		if !domain.ValidEntryType(t) {
			return nil, fmt.Errorf("%w: unknown entry type %q", apperrors.ErrValidation, params.EntryType)
		}
		filter.EntryType = t
	}
	if params.DateFrom != "" {
		from, err := time.Parse(dateLayout, params.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date_from %q", apperrors.ErrValidation, params.DateFrom)
		}
		filter.DateFrom = &from
	}
	if params.DateTo != "" {
		to, err := time.Parse(dateLayout, params.DateTo)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date_to %q", apperrors.ErrValidation, params.DateTo)
		}
		// The upper bound is inclusive of the whole day.
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &endOfDay
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, fmt.Errorf("%w: date_to precedes date_from", apperrors.ErrValidation)
	}
	return &filter, nil
}
