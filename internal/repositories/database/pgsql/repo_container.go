package pgsql

import (
	portsrepo "github.com/Emran025/accounting-system-sub005/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	partyRepo := newPgxPartyRepository(dbPool)
	entryRepo := newPgxEntryRepository(dbPool, partyRepo)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		EntryRepo:     entryRepo,
		PartyRepo:     partyRepo,
		UserRepo:      userRepo,
		ReportingRepo: reportingRepo,
	}
}
