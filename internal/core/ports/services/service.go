package services

// ServiceContainer bundles every service facade for handler wiring.
type ServiceContainer struct {
	Ledger    LedgerSvcFacade
	Party     PartySvcFacade
	User      UserSvcFacade
	Reporting ReportingSvcFacade
}
