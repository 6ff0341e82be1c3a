package domain

import "github.com/shopspring/decimal"

// PartyType discriminates the shared parties table.
type PartyType string

const (
	Customer            PartyType = "CUSTOMER"
	Supplier            PartyType = "SUPPLIER"
	SalesRepresentative PartyType = "REPRESENTATIVE"
)

// LedgerFor maps a party type to the ledger its entries belong to.
func (t PartyType) LedgerFor() LedgerKind {
	switch t {
	case Supplier:
		return Payable
	case SalesRepresentative:
		return Representative
	default:
		return Receivable
	}
}

// Party is a customer, supplier, or sales representative the business keeps a
// ledger for. CurrentBalance is a cached convenience column maintained in the
// same database transaction as every ledger write; the aggregate over ledger
// entries remains the authoritative value.
type Party struct {
	PartyID   string    `json:"partyID"` // Primary Key (UUID)
	PartyType PartyType `json:"partyType"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`   // Nullable
	Address   string    `json:"address"` // Nullable
	IsActive  bool      `json:"isActive"`
	AuditFields
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// ValidPartyType reports whether t is one of the enumerated party kinds.
func ValidPartyType(t PartyType) bool {
	switch t {
	case Customer, Supplier, SalesRepresentative:
		return true
	}
	return false
}
