package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/Emran025/accounting-system-sub005/internal/apperrors"
	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	portsrepo "github.com/Emran025/accounting-system-sub005/internal/core/ports/repositories"
	"github.com/Emran025/accounting-system-sub005/internal/models"
	"github.com/Emran025/accounting-system-sub005/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const partyColumns = `party_id, party_type, name, phone, address, is_active, current_balance,
	       created_at, created_by, last_updated_at, last_updated_by`

type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPartyRepository implements portsrepo.PartyRepositoryFacade
var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

// SaveParty persists a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (
			party_id, party_type, name, phone, address, is_active, current_balance,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PartyID,
		m.PartyType,
		m.Name,
		m.Phone,
		m.Address,
		m.IsActive,
		m.CurrentBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert party "+m.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a party by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE party_id = $1;
	`
	m, err := scanPartyRow(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find party by ID "+partyID, err)
	}
	domainParty := mapping.ToDomainParty(*m)
	return &domainParty, nil
}

// ListParties retrieves parties ordered by name, optionally filtered by type.
func (r *PgxPartyRepository) ListParties(ctx context.Context, partyType domain.PartyType, limit, offset int) ([]domain.Party, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows pgx.Rows
	var err error
	if partyType != "" {
		query := `
			SELECT ` + partyColumns + `
			FROM parties
			WHERE party_type = $1
			ORDER BY name ASC, party_id ASC
			LIMIT $2 OFFSET $3;
		`
		rows, err = r.Pool.Query(ctx, query, string(partyType), limit, offset)
	} else {
		query := `
			SELECT ` + partyColumns + `
			FROM parties
			ORDER BY name ASC, party_id ASC
			LIMIT $1 OFFSET $2;
		`
		rows, err = r.Pool.Query(ctx, query, limit, offset)
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query parties", err)
	}
	defer rows.Close()

	parties := []domain.Party{}
	for rows.Next() {
		m, err := scanPartyRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party row", err)
		}
		parties = append(parties, mapping.ToDomainParty(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating party rows", err)
	}
	return parties, nil
}

// UpdateParty updates the mutable details of a party.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		UPDATE parties
		SET name = $2,
		    phone = $3,
		    address = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE party_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.PartyID,
		m.Name,
		m.Phone,
		m.Address,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update party "+m.PartyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("party " + m.PartyID + " not found for update")
	}
	return nil
}

// DeactivateParty marks a party inactive. The entries it is linked to stay
// untouched; only new entries against it are rejected by the service layer.
func (r *PgxPartyRepository) DeactivateParty(ctx context.Context, partyID string, deactivatedBy string) error {
	query := `
		UPDATE parties
		SET is_active = FALSE,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE party_id = $1 AND is_active;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, partyID, time.Now().UTC(), deactivatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate party "+partyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Distinguish a missing party from one that is already inactive.
		if _, findErr := r.FindPartyByID(ctx, partyID); findErr != nil {
			return findErr
		}
		return apperrors.NewValidationError("party " + partyID + " is already inactive")
	}
	return nil
}

// FindPartyByIDForUpdate selects a party and locks its row within the given
// transaction.
func (r *PgxPartyRepository) FindPartyByIDForUpdate(ctx context.Context, tx pgx.Tx, partyID string) (*domain.Party, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE party_id = $1
		FOR UPDATE;
	`
	m, err := scanPartyRow(tx.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock party "+partyID, err)
	}
	domainParty := mapping.ToDomainParty(*m)
	return &domainParty, nil
}

// ApplyBalanceDeltaInTx shifts a party's cached balance within the given
// transaction. Callers must hold the row lock first.
func (r *PgxPartyRepository) ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, partyID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE parties
		SET current_balance = current_balance + $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE party_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, partyID, delta, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to apply balance delta to party "+partyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("party " + partyID + " not found for balance update")
	}
	return nil
}

// scanPartyRow scans one party row in partyColumns order.
func scanPartyRow(row pgx.Row) (*models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartyID,
		&m.PartyType,
		&m.Name,
		&m.Phone,
		&m.Address,
		&m.IsActive,
		&m.CurrentBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
