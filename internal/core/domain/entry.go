package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerKind identifies which party ledger an entry belongs to.
type LedgerKind string

const (
	// Receivable tracks what customers owe the business (AR). A positive
	// balance means the party owes the business.
	Receivable LedgerKind = "RECEIVABLE"
	// Payable tracks what the business owes suppliers (AP). A positive
	// balance means the business owes the party.
	Payable LedgerKind = "PAYABLE"
	// Representative tracks settlements with sales representatives. Same
	// sign convention as Receivable.
	Representative LedgerKind = "REPRESENTATIVE"
)

// EntryType classifies a ledger entry. The debit/credit direction is derived
// from the type, never stored: INVOICE and ADJUSTMENT are debits, PAYMENT and
// RETURN are credits.
type EntryType string

const (
	Invoice    EntryType = "INVOICE"
	Payment    EntryType = "PAYMENT"
	Return     EntryType = "RETURN"
	Adjustment EntryType = "ADJUSTMENT"
)

// EntryStatus is the two-state soft-delete machine of a ledger entry.
// ACTIVE -> (soft delete) -> DELETED -> (restore) -> ACTIVE; no other transitions.
type EntryStatus string

const (
	Active  EntryStatus = "ACTIVE"
	Deleted EntryStatus = "DELETED"
)

// EntryDirection indicates whether an entry increases or decreases the party balance.
type EntryDirection string

const (
	Debit  EntryDirection = "DEBIT"
	Credit EntryDirection = "CREDIT"
)

// LedgerEntry represents a single financial event recorded against a party.
// Amount is always positive; direction comes from the entry type.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"` // Primary Key (UUID)
	LedgerKind      LedgerKind      `json:"ledgerKind"`
	PartyID         string          `json:"partyID"` // FK -> parties.party_id
	EntryType       EntryType       `json:"entryType"`
	Amount          decimal.Decimal `json:"amount"` // Positive, 2 decimal places
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"` // Nullable
	Reference       *DocumentRef    `json:"reference,omitempty"`
	Status          EntryStatus     `json:"status"`
	AuditFields
	RunningBalance decimal.Decimal `json:"runningBalance,omitempty"` // Populated on statement reads only
}

// Direction returns the debit/credit side of the entry.
func (e *LedgerEntry) Direction() EntryDirection {
	return DirectionOf(e.EntryType)
}

// DirectionOf maps an entry type to its debit/credit direction.
func DirectionOf(t EntryType) EntryDirection {
	switch t {
	case Payment, Return:
		return Credit
	default:
		return Debit
	}
}

// ValidEntryType reports whether t is one of the enumerated entry kinds.
func ValidEntryType(t EntryType) bool {
	switch t {
	case Invoice, Payment, Return, Adjustment:
		return true
	}
	return false
}

// ValidLedgerKind reports whether k names a known ledger.
func ValidLedgerKind(k LedgerKind) bool {
	switch k {
	case Receivable, Payable, Representative:
		return true
	}
	return false
}

// LedgerStats summarises the filtered, non-deleted entries of a party ledger.
// Deleted entries never contribute, even when they are listed.
type LedgerStats struct {
	TotalDebit       decimal.Decimal `json:"totalDebit"`   // INVOICE + ADJUSTMENT
	TotalCredit      decimal.Decimal `json:"totalCredit"`  // PAYMENT + RETURN
	TotalPayments    decimal.Decimal `json:"totalPayments"`
	TotalReturns     decimal.Decimal `json:"totalReturns"`
	Balance          decimal.Decimal `json:"balance"` // TotalDebit - TotalCredit
	TransactionCount int64           `json:"transactionCount"`
}

// EmptyLedgerStats returns an all-zero stats block (empty result sets are not errors).
func EmptyLedgerStats() LedgerStats {
	return LedgerStats{
		TotalDebit:    decimal.Zero,
		TotalCredit:   decimal.Zero,
		TotalPayments: decimal.Zero,
		TotalReturns:  decimal.Zero,
		Balance:       decimal.Zero,
	}
}
