package services

import (
	"context"

	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	"github.com/Emran025/accounting-system-sub005/internal/dto"
)

// PartySvcFacade defines the business operations over parties.
type PartySvcFacade interface {
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, params dto.ListPartiesParams) (*dto.ListPartiesResponse, error)
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, userID string) (*domain.Party, error)
	DeactivateParty(ctx context.Context, partyID string, userID string) error

	// GetPartyBalance returns the party's cached balance alongside the
	// freshly aggregated balance from its ledger entries.
	GetPartyBalance(ctx context.Context, partyID string) (*dto.PartyBalanceResponse, error)
}
