package dto

import (
	"time"

	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
)

// CreatePartyRequest defines the data needed to register a party.
type CreatePartyRequest struct {
	Name      string           `json:"name" binding:"required"`
	PartyType domain.PartyType `json:"party_type" binding:"required,oneof=CUSTOMER SUPPLIER REPRESENTATIVE"`
	Phone     string           `json:"phone"`
	Address   string           `json:"address"`
}

// UpdatePartyRequest defines the fields a party edit may change.
type UpdatePartyRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ListPartiesParams defines query parameters for listing parties.
type ListPartiesParams struct {
	PartyType string `form:"party_type"`
	Limit     int    `form:"limit,default=20"`
	Offset    int    `form:"offset,default=0"`
}

// PartyResponse defines the data returned for a party. CurrentBalance is the
// cached column; the /parties/:id/balance endpoint recomputes from the ledger.
type PartyResponse struct {
	PartyID        string    `json:"id"`
	PartyType      string    `json:"party_type"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	IsActive       bool      `json:"is_active"`
	CurrentBalance string    `json:"current_balance"`
	CreatedAt      time.Time `json:"created_at"`
}

// PartyBalanceResponse is the recomputed, authoritative balance of a party.
type PartyBalanceResponse struct {
	Success bool                `json:"success"`
	PartyID string              `json:"party_id"`
	Ledger  string              `json:"ledger"`
	Stats   LedgerStatsResponse `json:"stats"`
}

// ListPartiesResponse wraps the list of parties.
type ListPartiesResponse struct {
	Success bool            `json:"success"`
	Data    []PartyResponse `json:"data"`
}

// ToPartyResponse converts a domain.Party to a PartyResponse DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:        p.PartyID,
		PartyType:      string(p.PartyType),
		Name:           p.Name,
		Phone:          p.Phone,
		Address:        p.Address,
		IsActive:       p.IsActive,
		CurrentBalance: p.CurrentBalance.StringFixed(2),
		CreatedAt:      p.CreatedAt,
	}
}

// ToPartyResponses converts a slice of domain parties to DTOs.
func ToPartyResponses(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i := range parties {
		res[i] = ToPartyResponse(&parties[i])
	}
	return res
}
