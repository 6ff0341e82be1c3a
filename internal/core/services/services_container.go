package services

import (
	portsrepo "github.com/Emran025/accounting-system-sub005/internal/core/ports/repositories"
	portssvc "github.com/Emran025/accounting-system-sub005/internal/core/ports/services"
	"github.com/Emran025/accounting-system-sub005/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Party = NewPartyService(repos.PartyRepo, repos.EntryRepo)
	container.Ledger = NewLedgerService(repos.EntryRepo, repos.PartyRepo, cfg.LedgerEditWindow)
	container.User = NewUserService(repos.UserRepo, cfg)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade    = (*ledgerService)(nil)
	_ portssvc.PartySvcFacade     = (*partyService)(nil)
	_ portssvc.UserSvcFacade      = (*userService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)
