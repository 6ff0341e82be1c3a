package dto

import (
	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
)

// AgingReportParams defines query parameters for the aging report.
type AgingReportParams struct {
	Ledger string `form:"ledger" binding:"required,oneof=receivable payable representative"`
	AsOf   string `form:"as_of" time_format:"2006-01-02"`
}

// AgingRowResponse is one party's bucketed outstanding balance.
type AgingRowResponse struct {
	PartyID    string `json:"party_id"`
	PartyName  string `json:"party_name"`
	Current    string `json:"current"`
	Days31To60 string `json:"days_31_60"`
	Days61To90 string `json:"days_61_90"`
	Over90Days string `json:"over_90"`
	TotalDue   string `json:"total_due"`
}

// AgingReportResponse is the envelope of the aging report endpoint.
type AgingReportResponse struct {
	Success bool               `json:"success"`
	Ledger  string             `json:"ledger"`
	AsOf    string             `json:"as_of"`
	Data    []AgingRowResponse `json:"data"`
}

// LedgerSummaryParams defines query parameters for the ledger summary report.
type LedgerSummaryParams struct {
	Ledger   string `form:"ledger" binding:"required,oneof=receivable payable representative"`
	DateFrom string `form:"date_from" binding:"required" time_format:"2006-01-02"`
	DateTo   string `form:"date_to" binding:"required" time_format:"2006-01-02"`
}

// LedgerSummaryRowResponse totals one entry type over the period.
type LedgerSummaryRowResponse struct {
	EntryType   string `json:"type"`
	Direction   string `json:"direction"`
	TotalAmount string `json:"total_amount"`
	EntryCount  int64  `json:"entry_count"`
}

// LedgerSummaryResponse is the envelope of the summary report endpoint.
type LedgerSummaryResponse struct {
	Success bool                       `json:"success"`
	Ledger  string                     `json:"ledger"`
	Data    []LedgerSummaryRowResponse `json:"data"`
}

// ToAgingRowResponse converts a domain aging row to its DTO.
func ToAgingRowResponse(r domain.AgingRow) AgingRowResponse {
	return AgingRowResponse{
		PartyID:    r.PartyID,
		PartyName:  r.PartyName,
		Current:    r.Current.StringFixed(2),
		Days31To60: r.Days31To60.StringFixed(2),
		Days61To90: r.Days61To90.StringFixed(2),
		Over90Days: r.Over90Days.StringFixed(2),
		TotalDue:   r.TotalDue.StringFixed(2),
	}
}

// ToLedgerSummaryRowResponse converts a domain summary row to its DTO.
func ToLedgerSummaryRowResponse(r domain.LedgerSummaryRow) LedgerSummaryRowResponse {
	return LedgerSummaryRowResponse{
		EntryType:   string(r.EntryType),
		Direction:   string(r.Direction),
		TotalAmount: r.TotalAmount.StringFixed(2),
		EntryCount:  r.EntryCount,
	}
}
