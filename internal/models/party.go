package models

import "github.com/shopspring/decimal"

// Party represents a row in the shared parties table, discriminated by party_type.
type Party struct {
	PartyID   string `db:"party_id"`
	PartyType string `db:"party_type"`
	Name      string `db:"name"`
	Phone     string `db:"phone"`
	Address   string `db:"address"`
	IsActive  bool   `db:"is_active"`
	AuditFields
	CurrentBalance decimal.Decimal `db:"current_balance"` // Cached; ledger aggregate is authoritative
}
