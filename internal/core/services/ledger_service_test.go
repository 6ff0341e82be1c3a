package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Emran025/accounting-system-sub005/internal/apperrors"
	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	portsrepo "github.com/Emran025/accounting-system-sub005/internal/core/ports/repositories"
	portssvc "github.com/Emran025/accounting-system-sub005/internal/core/ports/services"
	"github.com/Emran025/accounting-system-sub005/internal/core/services"
	"github.com/Emran025/accounting-system-sub005/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockEntryRepository is a mock type for the EntryRepositoryWithTx interface
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) SetEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus, updatedBy string, updatedAt time.Time) (domain.EntryStatus, error) {
	args := m.Called(ctx, entryID, status, updatedBy, updatedAt)
	return args.Get(0).(domain.EntryStatus), args.Error(1)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, filter portsrepo.EntryFilter, limit, offset int) (*portsrepo.EntryPage, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.EntryPage), args.Error(1)
}

func (m *MockEntryRepository) AggregateStats(ctx context.Context, filter portsrepo.EntryFilter) (*domain.LedgerStats, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerStats), args.Error(1)
}

func (m *MockEntryRepository) ListStatement(ctx context.Context, ledgerKind domain.LedgerKind, partyID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, ledgerKind, partyID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.LedgerEntry), token, args.Error(2)
}

func (m *MockEntryRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockEntryRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockEntryRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockPartyRepository is a mock type for the PartyRepositoryFacade interface
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, partyType domain.PartyType, limit, offset int) ([]domain.Party, error) {
	args := m.Called(ctx, partyType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) DeactivateParty(ctx context.Context, partyID string, deactivatedBy string) error {
	args := m.Called(ctx, partyID, deactivatedBy)
	return args.Error(0)
}

func (m *MockPartyRepository) FindPartyByIDForUpdate(ctx context.Context, tx pgx.Tx, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, tx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, partyID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, partyID, delta, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Test Suite Setup ---

const testEditWindow = 48 * time.Hour

type LedgerServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	mockPartyRepo *MockPartyRepository
	service       portssvc.LedgerSvcFacade
	userID        string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.service = services.NewLedgerService(suite.mockEntryRepo, suite.mockPartyRepo, testEditWindow)
	suite.userID = uuid.NewString()
}

func (suite *LedgerServiceTestSuite) activeCustomer() *domain.Party {
	return &domain.Party{
		PartyID:   uuid.NewString(),
		PartyType: domain.Customer,
		Name:      "Acme Retail",
		IsActive:  true,
	}
}

func (suite *LedgerServiceTestSuite) activeEntry(kind domain.LedgerKind, entryType domain.EntryType) *domain.LedgerEntry {
	now := time.Now().UTC()
	return &domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		LedgerKind:      kind,
		PartyID:         uuid.NewString(),
		EntryType:       entryType,
		Amount:          decimal.NewFromFloat(150.00),
		TransactionDate: now,
		Status:          domain.Active,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     suite.userID,
			LastUpdatedAt: now,
			LastUpdatedBy: suite.userID,
		},
	}
}

// --- CreateEntry ---

func (suite *LedgerServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	party := suite.activeCustomer()
	req := dto.CreateEntryRequest{
		PartyID:         party.PartyID,
		EntryType:       domain.Invoice,
		Amount:          decimal.NewFromFloat(199.999),
		TransactionDate: dto.DateOnly{Time: time.Now().UTC()},
		Description:     "Opening invoice",
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, domain.Receivable, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(domain.Receivable, entry.LedgerKind)
	suite.Equal(domain.Invoice, entry.EntryType)
	suite.Equal("200.00", entry.Amount.StringFixed(2)) // rounded to 2dp
	suite.Equal(domain.Active, entry.Status)
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.WithinDuration(time.Now(), entry.CreatedAt, time.Second)

	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_InvalidEntryType() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		PartyID:         uuid.NewString(),
		EntryType:       domain.EntryType("REFUND"),
		Amount:          decimal.NewFromInt(10),
		TransactionDate: dto.DateOnly{Time: time.Now().UTC()},
	}

	entry, err := suite.service.CreateEntry(ctx, domain.Receivable, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		PartyID:         uuid.NewString(),
		EntryType:       domain.Payment,
		Amount:          decimal.NewFromInt(-5),
		TransactionDate: dto.DateOnly{Time: time.Now().UTC()},
	}

	_, err := suite.service.CreateEntry(ctx, domain.Receivable, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_InactiveParty() {
	ctx := context.Background()
	party := suite.activeCustomer()
	party.IsActive = false
	req := dto.CreateEntryRequest{
		PartyID:         party.PartyID,
		EntryType:       domain.Invoice,
		Amount:          decimal.NewFromInt(50),
		TransactionDate: dto.DateOnly{Time: time.Now().UTC()},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()

	_, err := suite.service.CreateEntry(ctx, domain.Receivable, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_PartyOnWrongLedger() {
	ctx := context.Background()
	party := suite.activeCustomer() // customers live on the receivable ledger
	req := dto.CreateEntryRequest{
		PartyID:         party.PartyID,
		EntryType:       domain.Invoice,
		Amount:          decimal.NewFromInt(50),
		TransactionDate: dto.DateOnly{Time: time.Now().UTC()},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()

	_, err := suite.service.CreateEntry(ctx, domain.Payable, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_UnknownReferenceKind() {
	ctx := context.Background()
	party := suite.activeCustomer()
	req := dto.CreateEntryRequest{
		PartyID:         party.PartyID,
		EntryType:       domain.Invoice,
		Amount:          decimal.NewFromInt(50),
		TransactionDate: dto.DateOnly{Time: time.Now().UTC()},
		Reference:       &dto.DocumentRefRequest{Kind: "expense_claims", ID: 12},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()

	_, err := suite.service.CreateEntry(ctx, domain.Receivable, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_PartyNotFound() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreateEntryRequest{
		PartyID:         partyID,
		EntryType:       domain.Invoice,
		Amount:          decimal.NewFromInt(50),
		TransactionDate: dto.DateOnly{Time: time.Now().UTC()},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateEntry(ctx, domain.Receivable, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- GetEntryByID ---

func (suite *LedgerServiceTestSuite) TestGetEntryByID_HidesOtherLedgers() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Payable, domain.Invoice)

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	found, err := suite.service.GetEntryByID(ctx, domain.Receivable, entry.EntryID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdateEntry ---

func (suite *LedgerServiceTestSuite) TestUpdateEntry_Success() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)
	newAmount := decimal.NewFromFloat(250.50)
	newDesc := "Corrected invoice total"
	req := dto.UpdateEntryRequest{
		Amount:      &newAmount,
		Description: &newDesc,
	}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("UpdateEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	updated, err := suite.service.UpdateEntry(ctx, domain.Receivable, entry.EntryID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal("250.50", updated.Amount.StringFixed(2))
	suite.Equal(newDesc, updated.Description)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_TypeIsImmutable() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)
	otherType := domain.Payment
	req := dto.UpdateEntryRequest{EntryType: &otherType}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.UpdateEntry(ctx, domain.Receivable, entry.EntryID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrImmutableField)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_SameTypeAccepted() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)
	sameType := domain.Invoice
	req := dto.UpdateEntryRequest{EntryType: &sameType}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("UpdateEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	_, err := suite.service.UpdateEntry(ctx, domain.Receivable, entry.EntryID, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_InsideEditWindow() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)
	entry.TransactionDate = time.Now().UTC().Add(-47 * time.Hour)
	newDesc := "Still editable"
	req := dto.UpdateEntryRequest{Description: &newDesc}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("UpdateEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	_, err := suite.service.UpdateEntry(ctx, domain.Receivable, entry.EntryID, req, suite.userID)

	suite.Require().NoError(err)
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_EditWindowExpired() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)
	entry.TransactionDate = time.Now().UTC().Add(-49 * time.Hour)
	newDesc := "Too late"
	req := dto.UpdateEntryRequest{Description: &newDesc}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.UpdateEntry(ctx, domain.Receivable, entry.EntryID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrEditWindowExpired)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_NoWindowWhenDisabled() {
	ctx := context.Background()
	service := services.NewLedgerService(suite.mockEntryRepo, suite.mockPartyRepo, 0)
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)
	entry.TransactionDate = time.Now().UTC().Add(-30 * 24 * time.Hour)
	newDesc := "Window disabled"
	req := dto.UpdateEntryRequest{Description: &newDesc}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("UpdateEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	_, err := service.UpdateEntry(ctx, domain.Receivable, entry.EntryID, req, suite.userID)

	suite.Require().NoError(err)
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_DeletedEntryNotFound() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)
	entry.Status = domain.Deleted
	newDesc := "Edit on a deleted row"
	req := dto.UpdateEntryRequest{Description: &newDesc}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.UpdateEntry(ctx, domain.Receivable, entry.EntryID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_DeletedBetweenReadAndWrite() {
	// The repository rechecks the row's status under its lock and reports
	// ErrNotFound when a concurrent soft delete landed first. The service
	// surfaces that as a not-found, not a generic failure.
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)
	newDesc := "Edit racing a delete"
	req := dto.UpdateEntryRequest{Description: &newDesc}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("UpdateEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateEntry(ctx, domain.Receivable, entry.EntryID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

// --- SoftDeleteEntry ---

func (suite *LedgerServiceTestSuite) TestSoftDeleteEntry_Success() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Payment)

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("SetEntryStatus", ctx, entry.EntryID, domain.Deleted, suite.userID, mock.AnythingOfType("time.Time")).
		Return(domain.Active, nil).Once()

	err := suite.service.SoftDeleteEntry(ctx, domain.Receivable, entry.EntryID, suite.userID)

	suite.Require().NoError(err)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSoftDeleteEntry_Idempotent() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Payment)
	entry.Status = domain.Deleted

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("SetEntryStatus", ctx, entry.EntryID, domain.Deleted, suite.userID, mock.AnythingOfType("time.Time")).
		Return(domain.Deleted, nil).Once()

	err := suite.service.SoftDeleteEntry(ctx, domain.Receivable, entry.EntryID, suite.userID)

	// Deleting an already deleted entry is a no-op success.
	suite.Require().NoError(err)
}

func (suite *LedgerServiceTestSuite) TestSoftDeleteEntry_InvoiceReferenceImmutable() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)
	entry.Reference = &domain.DocumentRef{Kind: domain.RefSalesInvoice, ID: 42}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	err := suite.service.SoftDeleteEntry(ctx, domain.Receivable, entry.EntryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrImmutableReference)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SetEntryStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestSoftDeleteEntry_ManualReferenceDeletable() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)
	entry.Reference = &domain.DocumentRef{Kind: domain.RefManual, ID: 7}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("SetEntryStatus", ctx, entry.EntryID, domain.Deleted, suite.userID, mock.AnythingOfType("time.Time")).
		Return(domain.Active, nil).Once()

	err := suite.service.SoftDeleteEntry(ctx, domain.Receivable, entry.EntryID, suite.userID)

	suite.Require().NoError(err)
}

// --- RestoreEntry ---

func (suite *LedgerServiceTestSuite) TestRestoreEntry_Success() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)
	entry.Status = domain.Deleted
	restored := *entry
	restored.Status = domain.Active

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("SetEntryStatus", ctx, entry.EntryID, domain.Active, suite.userID, mock.AnythingOfType("time.Time")).
		Return(domain.Deleted, nil).Once()
	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(&restored, nil).Once()

	result, err := suite.service.RestoreEntry(ctx, domain.Receivable, entry.EntryID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(domain.Active, result.Status)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRestoreEntry_ActiveEntryNotFound() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("SetEntryStatus", ctx, entry.EntryID, domain.Active, suite.userID, mock.AnythingOfType("time.Time")).
		Return(domain.Active, nil).Once()

	_, err := suite.service.RestoreEntry(ctx, domain.Receivable, entry.EntryID, suite.userID)

	// Restoring an entry that is not deleted reports not found.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_RestoreFlagDelegates() {
	ctx := context.Background()
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)
	entry.Status = domain.Deleted
	restored := *entry
	restored.Status = domain.Active
	req := dto.UpdateEntryRequest{Restore: true}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockEntryRepo.On("SetEntryStatus", ctx, entry.EntryID, domain.Active, suite.userID, mock.AnythingOfType("time.Time")).
		Return(domain.Deleted, nil).Once()
	suite.mockEntryRepo.On("FindEntryByID", ctx, entry.EntryID).Return(&restored, nil).Once()

	result, err := suite.service.UpdateEntry(ctx, domain.Receivable, entry.EntryID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Active, result.Status)
}

// --- ListEntries ---

func (suite *LedgerServiceTestSuite) TestListEntries_Success() {
	ctx := context.Background()
	entries := []domain.LedgerEntry{
		*suite.activeEntry(domain.Receivable, domain.Invoice),
		*suite.activeEntry(domain.Receivable, domain.Payment),
	}
	stats := domain.EmptyLedgerStats()
	stats.TotalDebit = decimal.NewFromInt(150)
	stats.TotalCredit = decimal.NewFromInt(150)
	stats.TotalPayments = decimal.NewFromInt(150)
	stats.TransactionCount = 2

	suite.mockEntryRepo.On("ListEntries", ctx, mock.AnythingOfType("repositories.EntryFilter"), 20, 0).
		Return(&portsrepo.EntryPage{Entries: entries, TotalRecords: 45}, nil).Once()
	suite.mockEntryRepo.On("AggregateStats", ctx, mock.AnythingOfType("repositories.EntryFilter")).
		Return(&stats, nil).Once()

	resp, err := suite.service.ListEntries(ctx, domain.Receivable, dto.ListEntriesParams{Page: 1, Limit: 20})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.Success)
	suite.Len(resp.Data, 2)
	suite.Equal(int64(45), resp.Pagination.TotalRecords)
	suite.Equal(3, resp.Pagination.TotalPages)
	suite.Equal("150.00", resp.Stats.TotalPayments)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListEntries_ClampsPageSize() {
	ctx := context.Background()
	stats := domain.EmptyLedgerStats()

	suite.mockEntryRepo.On("ListEntries", ctx, mock.AnythingOfType("repositories.EntryFilter"), 100, 0).
		Return(&portsrepo.EntryPage{Entries: nil, TotalRecords: 0}, nil).Once()
	suite.mockEntryRepo.On("AggregateStats", ctx, mock.AnythingOfType("repositories.EntryFilter")).
		Return(&stats, nil).Once()

	_, err := suite.service.ListEntries(ctx, domain.Receivable, dto.ListEntriesParams{Page: 1, Limit: 5000})

	suite.Require().NoError(err)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListEntries_InvalidDateRange() {
	ctx := context.Background()
	params := dto.ListEntriesParams{DateFrom: "2026-03-10", DateTo: "2026-03-01"}

	_, err := suite.service.ListEntries(ctx, domain.Receivable, params)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestListEntries_BadDateFormat() {
	ctx := context.Background()
	params := dto.ListEntriesParams{DateFrom: "10/03/2026"}

	_, err := suite.service.ListEntries(ctx, domain.Receivable, params)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestListEntries_UnknownTypeFilter() {
	ctx := context.Background()
	params := dto.ListEntriesParams{EntryType: "CREDIT_NOTE"}

	_, err := suite.service.ListEntries(ctx, domain.Receivable, params)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- GetStatement ---

func (suite *LedgerServiceTestSuite) TestGetStatement_Success() {
	ctx := context.Background()
	party := suite.activeCustomer()
	entry := suite.activeEntry(domain.Receivable, domain.Invoice)
	entry.PartyID = party.PartyID
	entry.RunningBalance = decimal.NewFromFloat(150.00)
	token := "eyJvcGFxdWUiOnRydWV9"

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()
	suite.mockEntryRepo.On("ListStatement", ctx, domain.Receivable, party.PartyID, 20, (*string)(nil)).
		Return([]domain.LedgerEntry{*entry}, &token, nil).Once()

	resp, err := suite.service.GetStatement(ctx, domain.Receivable, party.PartyID, 20, nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.Success)
	suite.Require().Len(resp.Data, 1)
	suite.Equal("150.00", resp.Data[0].RunningBalance)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(token, *resp.NextToken)
}

func (suite *LedgerServiceTestSuite) TestGetStatement_PartyOnWrongLedger() {
	ctx := context.Background()
	party := suite.activeCustomer()

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()

	_, err := suite.service.GetStatement(ctx, domain.Payable, party.PartyID, 20, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "ListStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetStatement_RepoError() {
	ctx := context.Background()
	party := suite.activeCustomer()

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()
	suite.mockEntryRepo.On("ListStatement", ctx, domain.Receivable, party.PartyID, 20, (*string)(nil)).
		Return(nil, nil, fmt.Errorf("db connection lost")).Once()

	_, err := suite.service.GetStatement(ctx, domain.Receivable, party.PartyID, 20, nil)

	suite.Require().Error(err)
}

// Run the suite
func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
