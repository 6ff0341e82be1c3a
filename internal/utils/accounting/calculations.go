package accounting

import (
	"fmt"

	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the debit/credit sign of an entry type to its amount.
// DEBIT entry types (INVOICE, ADJUSTMENT) are positive, CREDIT entry types
// (PAYMENT, RETURN) are negative. The result is the entry's contribution to
// the party balance; what a positive balance *means* depends on the ledger
// kind (see domain.LedgerKind).
func SignedAmount(entryType domain.EntryType, amount decimal.Decimal) (decimal.Decimal, error) {
	if !domain.ValidEntryType(entryType) {
		return decimal.Zero, fmt.Errorf("unknown entry type %q", entryType)
	}
	if domain.DirectionOf(entryType) == domain.Credit {
		return amount.Neg(), nil
	}
	return amount, nil
}

// BalanceDelta computes the change an entry applies to the party's cached
// balance. Restoring or creating an entry applies the signed amount; soft
// deleting applies its negation.
func BalanceDelta(entryType domain.EntryType, amount decimal.Decimal, removing bool) (decimal.Decimal, error) {
	delta, err := SignedAmount(entryType, amount)
	if err != nil {
		return decimal.Zero, err
	}
	if removing {
		return delta.Neg(), nil
	}
	return delta, nil
}

// ComputeStats aggregates a set of active entries into ledger statistics.
// The repository normally computes these in SQL; this helper exists for the
// statement path and for tests that assert the same arithmetic.
func ComputeStats(entries []domain.LedgerEntry) domain.LedgerStats {
	stats := domain.EmptyLedgerStats()
	for _, e := range entries {
		if e.Status == domain.Deleted {
			continue
		}
		switch e.EntryType {
		case domain.Payment:
			stats.TotalPayments = stats.TotalPayments.Add(e.Amount)
			stats.TotalCredit = stats.TotalCredit.Add(e.Amount)
		case domain.Return:
			stats.TotalReturns = stats.TotalReturns.Add(e.Amount)
			stats.TotalCredit = stats.TotalCredit.Add(e.Amount)
		default:
			stats.TotalDebit = stats.TotalDebit.Add(e.Amount)
		}
		stats.TransactionCount++
	}
	stats.Balance = stats.TotalDebit.Sub(stats.TotalCredit)
	return stats
}
