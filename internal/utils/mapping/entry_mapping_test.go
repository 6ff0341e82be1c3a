package mapping

import (
	"testing"
	"time"

	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerEntryMapping_DocumentReference(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	d := domain.LedgerEntry{
		EntryID:         "entry-1",
		LedgerKind:      domain.Receivable,
		PartyID:         "party-1",
		EntryType:       domain.Invoice,
		Amount:          decimal.NewFromFloat(99.50),
		TransactionDate: now,
		Description:     "Invoice with source document",
		Reference:       &domain.DocumentRef{Kind: domain.RefSalesInvoice, ID: 42},
		Status:          domain.Active,
	}

	m := ToModelLedgerEntry(d)

	// The reference ID is numeric end to end; the column is BIGINT.
	require.NotNil(t, m.ReferenceKind)
	require.NotNil(t, m.ReferenceID)
	assert.Equal(t, "sales_invoices", *m.ReferenceKind)
	assert.Equal(t, int64(42), *m.ReferenceID)

	back := ToDomainLedgerEntry(m)
	require.NotNil(t, back.Reference)
	assert.Equal(t, domain.RefSalesInvoice, back.Reference.Kind)
	assert.Equal(t, int64(42), back.Reference.ID)
	assert.Equal(t, d.EntryID, back.EntryID)
	assert.True(t, d.Amount.Equal(back.Amount))
}

func TestLedgerEntryMapping_NoReference(t *testing.T) {
	d := domain.LedgerEntry{
		EntryID:    "entry-2",
		LedgerKind: domain.Payable,
		EntryType:  domain.Payment,
		Amount:     decimal.NewFromInt(10),
		Status:     domain.Active,
	}

	m := ToModelLedgerEntry(d)
	assert.Nil(t, m.ReferenceKind)
	assert.Nil(t, m.ReferenceID)

	back := ToDomainLedgerEntry(m)
	assert.Nil(t, back.Reference)
}
