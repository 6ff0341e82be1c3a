package repositories

import (
	"context"
	"time"

	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	// FindPartyByID retrieves a party by its unique identifier.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves a paginated list of parties of the given type.
	// An empty partyType lists all parties.
	ListParties(ctx context.Context, partyType domain.PartyType, limit, offset int) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates the mutable details of a party (name, phone, address).
	UpdateParty(ctx context.Context, party domain.Party) error

	// DeactivateParty marks a party inactive. Returns apperrors.ErrNotFound if
	// missing and apperrors.ErrValidation if already inactive.
	DeactivateParty(ctx context.Context, partyID string, deactivatedBy string) error
}

// PartyBalanceWriter defines cached-balance maintenance performed inside a
// caller-owned database transaction, so a ledger write and its balance
// adjustment commit or roll back together.
type PartyBalanceWriter interface {
	// FindPartyByIDForUpdate selects a party and locks its row for update
	// within the given transaction.
	FindPartyByIDForUpdate(ctx context.Context, tx pgx.Tx, partyID string) (*domain.Party, error)

	// ApplyBalanceDeltaInTx shifts the party's cached balance within the given
	// transaction.
	ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, partyID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

// PartyRepositoryFacade combines all party repository interfaces.
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
	PartyBalanceWriter
}
