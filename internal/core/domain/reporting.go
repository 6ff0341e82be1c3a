package domain

import "github.com/shopspring/decimal"

// AgingRow is one party's outstanding balance bucketed by days overdue, as of
// a reference date. Buckets are computed from transaction_date of non-deleted
// entries.
type AgingRow struct {
	PartyID    string          `json:"partyID"`
	PartyName  string          `json:"partyName"`
	Current    decimal.Decimal `json:"current"`    // 0-30 days
	Days31To60 decimal.Decimal `json:"days31to60"` // 31-60 days
	Days61To90 decimal.Decimal `json:"days61to90"` // 61-90 days
	Over90Days decimal.Decimal `json:"over90Days"` // 90+ days
	TotalDue   decimal.Decimal `json:"totalDue"`
}

// LedgerSummaryRow aggregates one entry type's debit and credit totals for a
// ledger over a reporting period.
type LedgerSummaryRow struct {
	EntryType   EntryType       `json:"entryType"`
	Direction   EntryDirection  `json:"direction"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	EntryCount  int64           `json:"entryCount"`
}
