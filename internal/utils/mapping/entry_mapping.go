package mapping

import (
	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	"github.com/Emran025/accounting-system-sub005/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	m := models.LedgerEntry{
		EntryID:         d.EntryID,
		LedgerKind:      string(d.LedgerKind),
		PartyID:         d.PartyID,
		EntryType:       string(d.EntryType),
		Amount:          d.Amount,
		TransactionDate: d.TransactionDate,
		Description:     d.Description,
		Status:          models.EntryStatus(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
		RunningBalance:  d.RunningBalance,
	}
	if d.Reference != nil {
		kind := string(d.Reference.Kind)
		id := d.Reference.ID
		m.ReferenceKind = &kind
		m.ReferenceID = &id
	}
	return m
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	d := domain.LedgerEntry{
		EntryID:         m.EntryID,
		LedgerKind:      domain.LedgerKind(m.LedgerKind),
		PartyID:         m.PartyID,
		EntryType:       domain.EntryType(m.EntryType),
		Amount:          m.Amount,
		TransactionDate: m.TransactionDate,
		Description:     m.Description,
		Status:          domain.EntryStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
		RunningBalance:  m.RunningBalance,
	}
	if m.ReferenceKind != nil && m.ReferenceID != nil {
		d.Reference = &domain.DocumentRef{
			Kind: domain.DocumentKind(*m.ReferenceKind),
			ID:   *m.ReferenceID,
		}
	}
	return d
}

// ToDomainLedgerEntrySlice converts a slice of model entries to domain entries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
