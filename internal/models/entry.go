package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus mirrors the ledger_entries.status column.
type EntryStatus string

const (
	Active  EntryStatus = "ACTIVE"
	Deleted EntryStatus = "DELETED"
)

// LedgerEntry is the database shape of a ledger entry row.
// ReferenceKind/ReferenceID hold the weak document link (nullable, no FK).
type LedgerEntry struct {
	EntryID         string          `db:"entry_id"`
	LedgerKind      string          `db:"ledger_kind"`
	PartyID         string          `db:"party_id"`
	EntryType       string          `db:"entry_type"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	ReferenceKind   *string         `db:"reference_kind"`
	ReferenceID     *int64          `db:"reference_id"`
	Status          EntryStatus     `db:"status"`
	AuditFields
	RunningBalance decimal.Decimal `db:"running_balance"` // Computed on statement reads, not persisted
}
