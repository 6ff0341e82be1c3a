package services

import (
	"context"
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
)

// partyService provides party registry operations.
type partyService struct {
	partyRepo portsrepo.PartyRepositoryFacade
	entryRepo portsrepo.EntryRepositoryWithTx
}

// NewPartyService creates a new party service. entryRepo backs the
// recomputed balance endpoint.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade, entryRepo portsrepo.EntryRepositoryWithTx) portssvc.PartySvcFacade {
	return &partyService{
		partyRepo: partyRepo,
		entryRepo: entryRepo,
	}
}

// Ensure partyService implements the portssvc.PartySvcFacade interface
var _ portssvc.PartySvcFacade = (*partyService)(nil)

// CreateParty registers a new customer, supplier, or representative.
func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidPartyType(req.PartyType) {
		return nil, fmt.Errorf("%w: unknown party type %q", apperrors.ErrValidation, req.PartyType)
	}

	now := time.Now().UTC()
	party := domain.Party{
		PartyID:   uuid.NewString(),
		PartyType: req.PartyType,
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		logger.Error("Failed to save party", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save party: %w", err)
	}

	logger.Info("Party created", slog.String("party_id", party.PartyID), slog.String("party_type", string(party.PartyType)))
	return &party, nil
}

// GetPartyByID retrieves a party by ID.
func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find party %s: %w", partyID, err)
	}
	return party, nil
}

// ListParties retrieves parties, optionally filtered by type.
func (s *partyService) ListParties(ctx context.Context, params dto.ListPartiesParams) (*dto.ListPartiesResponse, error) {
	var partyType domain.PartyType
	if params.PartyType != "" {
		partyType = domain.PartyType(params.PartyType)
		if !domain.ValidPartyType(partyType) {
			return nil, fmt.Errorf("%w: unknown party type %q", apperrors.ErrValidation, params.PartyType)
		}
	}

	parties, err := s.partyRepo.ListParties(ctx, partyType, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return &dto.ListPartiesResponse{
		Success: true,
		Data:    dto.ToPartyResponses(parties),
	}, nil
}

// UpdateParty updates the mutable details of a party.
func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, userID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, err := s.GetPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidation)
		}
		party.Name = *req.Name
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.Address != nil {
		party.Address = *req.Address
	}
	party.LastUpdatedAt = time.Now().UTC()
	party.LastUpdatedBy = userID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		logger.Error("Failed to update party", slog.String("error", err.Error()), slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to update party %s: %w", partyID, err)
	}

	logger.Info("Party updated", slog.String("party_id", partyID))
	return party, nil
}

// DeactivateParty marks a party inactive so no new entries can target it.
// Its ledger history stays intact.
func (s *partyService) DeactivateParty(ctx context.Context, partyID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.partyRepo.DeactivateParty(ctx, partyID, userID); err != nil {
		logger.Error("Failed to deactivate party", slog.String("error", err.Error()), slog.String("party_id", partyID))
		return fmt.Errorf("failed to deactivate party %s: %w", partyID, err)
	}

	logger.Info("Party deactivated", slog.String("party_id", partyID))
	return nil
}

// GetPartyBalance recomputes the party's balance from its ledger entries.
// The aggregate is authoritative; the cached column is a convenience.
func (s *partyService) GetPartyBalance(ctx context.Context, partyID string) (*dto.PartyBalanceResponse, error) {
	party, err := s.GetPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	ledgerKind := party.PartyType.LedgerFor()
	stats, err := s.entryRepo.AggregateStats(ctx, portsrepo.EntryFilter{
		LedgerKind: ledgerKind,
		PartyID:    partyID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate balance for party %s: %w", partyID, err)
	}

	return &dto.PartyBalanceResponse{
		Success: true,
		PartyID: partyID,
		Ledger:  string(ledgerKind),
		Stats:   dto.ToLedgerStatsResponse(*stats),
	}, nil
}
