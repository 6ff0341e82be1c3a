package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateOnlyLayout = "2006-01-02"

// DateOnly is a calendar date carried in JSON request bodies as "YYYY-MM-DD".
// RFC3339 timestamps are accepted too, for clients that send full instants.
type DateOnly struct {
	time.Time
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(dateOnlyLayout) + `"`), nil
}

// DocumentRefRequest carries the optional polymorphic link to the document
// that originated a ledger entry.
type DocumentRefRequest struct {
	Kind string `json:"kind" binding:"required"`
	ID   int64  `json:"id" binding:"required,gt=0"`
}

// CreateEntryRequest defines the data needed to record a ledger entry.
type CreateEntryRequest struct {
	PartyID         string              `json:"party_id" binding:"required"`
	EntryType       domain.EntryType    `json:"type" binding:"required,oneof=INVOICE PAYMENT RETURN ADJUSTMENT"`
	Amount          decimal.Decimal     `json:"amount" binding:"required"`
	TransactionDate DateOnly            `json:"date" binding:"required"`
	Description     string              `json:"description"`
	Reference       *DocumentRefRequest `json:"reference"`
}

// UpdateEntryRequest defines the fields an entry edit may change.
// Pointers distinguish "not provided" from zero values. Restore toggles the
// soft-delete state back to active instead of editing fields.
type UpdateEntryRequest struct {
	EntryType       *domain.EntryType `json:"type"` // Accepted only if unchanged; the type of an entry is immutable
	Amount          *decimal.Decimal  `json:"amount"`
	TransactionDate *DateOnly         `json:"date"`
	Description     *string           `json:"description"`
	Restore         bool              `json:"restore"`
}

// ListEntriesParams defines the query parameters of the ledger listing endpoint.
type ListEntriesParams struct {
	PartyID     string `form:"party_id"`
	Page        int    `form:"page,default=1"`
	Limit       int    `form:"limit,default=20"`
	Search      string `form:"search"`
	EntryType   string `form:"type"`
	DateFrom    string `form:"date_from" time_format:"2006-01-02"`
	DateTo      string `form:"date_to" time_format:"2006-01-02"`
	ShowDeleted bool   `form:"show_deleted"`
}

// EntryResponse defines the data returned for a ledger entry. Amounts are
// fixed to two decimal places.
type EntryResponse struct {
	EntryID         string              `json:"id"`
	LedgerKind      string              `json:"ledger"`
	PartyID         string              `json:"party_id"`
	EntryType       string              `json:"type"`
	Direction       string              `json:"direction"`
	Amount          string              `json:"amount"`
	TransactionDate string              `json:"date"`
	Description     string              `json:"description,omitempty"`
	Reference       *DocumentRefRequest `json:"reference,omitempty"`
	IsDeleted       bool                `json:"is_deleted"`
	RunningBalance  string              `json:"running_balance,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	CreatedBy       string              `json:"created_by,omitempty"`
}

// LedgerStatsResponse summarises the filtered, non-deleted entry set.
// The sign convention is explicit in the payload: a positive balance on a
// receivable ledger means the party owes the business; on a payable ledger it
// means the business owes the party.
type LedgerStatsResponse struct {
	TotalDebit       string `json:"total_debit"`
	TotalCredit      string `json:"total_credit"`
	TotalPayments    string `json:"total_payments"`
	TotalReturns     string `json:"total_returns"`
	Balance          string `json:"balance"`
	TransactionCount int64  `json:"transaction_count"`
}

// PaginationResponse carries offset pagination metadata.
type PaginationResponse struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalRecords int64 `json:"total_records"`
	PerPage      int   `json:"per_page"`
}

// ListEntriesResponse is the envelope of the ledger listing endpoint.
type ListEntriesResponse struct {
	Success    bool                `json:"success"`
	Data       []EntryResponse     `json:"data"`
	Stats      LedgerStatsResponse `json:"stats"`
	Pagination PaginationResponse  `json:"pagination"`
}

// EntryEnvelope wraps a single entry mutation result.
type EntryEnvelope struct {
	Success bool          `json:"success"`
	Data    EntryResponse `json:"data"`
}

// StatementResponse is the envelope of the party statement endpoint.
type StatementResponse struct {
	Success   bool            `json:"success"`
	PartyID   string          `json:"party_id"`
	Data      []EntryResponse `json:"data"`
	NextToken *string         `json:"next_token,omitempty"`
}

// ToEntryResponse converts a domain.LedgerEntry to an EntryResponse DTO.
func ToEntryResponse(e *domain.LedgerEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:         e.EntryID,
		LedgerKind:      string(e.LedgerKind),
		PartyID:         e.PartyID,
		EntryType:       string(e.EntryType),
		Direction:       string(e.Direction()),
		Amount:          e.Amount.StringFixed(2),
		TransactionDate: e.TransactionDate.Format("2006-01-02"),
		Description:     e.Description,
		IsDeleted:       e.Status == domain.Deleted,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
	if e.Reference != nil {
		resp.Reference = &DocumentRefRequest{Kind: string(e.Reference.Kind), ID: e.Reference.ID}
	}
	return resp
}

// ToEntryResponses converts a slice of domain entries to DTOs.
func ToEntryResponses(entries []domain.LedgerEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}

// ToStatementEntryResponse converts an entry carrying a running balance.
func ToStatementEntryResponse(e *domain.LedgerEntry) EntryResponse {
	resp := ToEntryResponse(e)
	resp.RunningBalance = e.RunningBalance.StringFixed(2)
	return resp
}

// ToLedgerStatsResponse converts domain stats to the response DTO.
func ToLedgerStatsResponse(s domain.LedgerStats) LedgerStatsResponse {
	return LedgerStatsResponse{
		TotalDebit:       s.TotalDebit.StringFixed(2),
		TotalCredit:      s.TotalCredit.StringFixed(2),
		TotalPayments:    s.TotalPayments.StringFixed(2),
		TotalReturns:     s.TotalReturns.StringFixed(2),
		Balance:          s.Balance.StringFixed(2),
		TransactionCount: s.TransactionCount,
	}
}
