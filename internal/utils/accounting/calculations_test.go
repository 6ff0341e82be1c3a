package accounting_test

import (
	"testing"

	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	"github.com/Emran025/accounting-system-sub005/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedAmount(t *testing.T) {
	amount := decimal.NewFromFloat(100.50)

	tests := []struct {
		name      string
		entryType domain.EntryType
		expected  string
	}{
		{"invoice is a debit", domain.Invoice, "100.50"},
		{"adjustment is a debit", domain.Adjustment, "100.50"},
		{"payment is a credit", domain.Payment, "-100.50"},
		{"return is a credit", domain.Return, "-100.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := accounting.SignedAmount(tt.entryType, amount)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, signed.StringFixed(2))
		})
	}
}

func TestSignedAmount_UnknownType(t *testing.T) {
	_, err := accounting.SignedAmount(domain.EntryType("REFUND"), decimal.NewFromInt(10))
	assert.Error(t, err)
}

func TestBalanceDelta(t *testing.T) {
	amount := decimal.NewFromInt(40)

	// Creating or restoring applies the signed amount.
	delta, err := accounting.BalanceDelta(domain.Payment, amount, false)
	require.NoError(t, err)
	assert.Equal(t, "-40.00", delta.StringFixed(2))

	// Soft deleting reverses it.
	delta, err = accounting.BalanceDelta(domain.Payment, amount, true)
	require.NoError(t, err)
	assert.Equal(t, "40.00", delta.StringFixed(2))

	delta, err = accounting.BalanceDelta(domain.Invoice, amount, true)
	require.NoError(t, err)
	assert.Equal(t, "-40.00", delta.StringFixed(2))
}

func TestComputeStats(t *testing.T) {
	entries := []domain.LedgerEntry{
		{EntryType: domain.Invoice, Amount: decimal.NewFromInt(100), Status: domain.Active},
		{EntryType: domain.Payment, Amount: decimal.NewFromInt(40), Status: domain.Active},
		{EntryType: domain.Return, Amount: decimal.NewFromInt(10), Status: domain.Active},
	}

	stats := accounting.ComputeStats(entries)

	assert.Equal(t, "100.00", stats.TotalDebit.StringFixed(2))
	assert.Equal(t, "50.00", stats.TotalCredit.StringFixed(2))
	assert.Equal(t, "40.00", stats.TotalPayments.StringFixed(2))
	assert.Equal(t, "10.00", stats.TotalReturns.StringFixed(2))
	assert.Equal(t, "50.00", stats.Balance.StringFixed(2))
	assert.Equal(t, int64(3), stats.TransactionCount)
}

func TestComputeStats_SkipsDeleted(t *testing.T) {
	entries := []domain.LedgerEntry{
		{EntryType: domain.Invoice, Amount: decimal.NewFromInt(100), Status: domain.Active},
		{EntryType: domain.Invoice, Amount: decimal.NewFromInt(999), Status: domain.Deleted},
	}

	stats := accounting.ComputeStats(entries)

	assert.Equal(t, "100.00", stats.TotalDebit.StringFixed(2))
	assert.Equal(t, int64(1), stats.TransactionCount)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := accounting.ComputeStats(nil)

	assert.True(t, stats.Balance.IsZero())
	assert.Equal(t, int64(0), stats.TransactionCount)
}
