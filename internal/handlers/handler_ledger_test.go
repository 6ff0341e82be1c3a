package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Emran025/accounting-system-sub005/internal/apperrors"
	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	portssvc "github.com/Emran025/accounting-system-sub005/internal/core/ports/services"
	"github.com/Emran025/accounting-system-sub005/internal/dto"
	"github.com/Emran025/accounting-system-sub005/internal/handlers"
	"github.com/Emran025/accounting-system-sub005/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateEntry(ctx context.Context, ledgerKind domain.LedgerKind, req dto.CreateEntryRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, ledgerKind, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) GetEntryByID(ctx context.Context, ledgerKind domain.LedgerKind, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, ledgerKind, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) UpdateEntry(ctx context.Context, ledgerKind domain.LedgerKind, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, ledgerKind, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) SoftDeleteEntry(ctx context.Context, ledgerKind domain.LedgerKind, entryID string, userID string) error {
	args := m.Called(ctx, ledgerKind, entryID, userID)
	return args.Error(0)
}

func (m *MockLedgerService) RestoreEntry(ctx context.Context, ledgerKind domain.LedgerKind, entryID string, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, ledgerKind, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ListEntries(ctx context.Context, ledgerKind domain.LedgerKind, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, ledgerKind, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockLedgerService) GetStatement(ctx context.Context, ledgerKind domain.LedgerKind, partyID string, limit int, nextToken *string) (*dto.StatementResponse, error) {
	args := m.Called(ctx, ledgerKind, partyID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatementResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	jwtSecret         string
	userID            string
}

func (suite *LedgerHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterLedgerRoutes(v1, suite.mockLedgerService)
}

func (suite *LedgerHandlerTestSuite) doRequest(method, url string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleEntry(kind domain.LedgerKind) *domain.LedgerEntry {
	now := time.Now().UTC()
	return &domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		LedgerKind:      kind,
		PartyID:         uuid.NewString(),
		EntryType:       domain.Invoice,
		Amount:          decimal.NewFromFloat(120.50),
		TransactionDate: now,
		Description:     "Invoice 120.50",
		Status:          domain.Active,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     uuid.NewString(),
			LastUpdatedAt: now,
			LastUpdatedBy: uuid.NewString(),
		},
	}
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestCreateEntry_Success() {
	entry := sampleEntry(domain.Receivable)
	payload, _ := json.Marshal(gin.H{
		"party_id": entry.PartyID,
		"type":     "INVOICE",
		"amount":   "120.50",
		"date":     "2026-08-01",
	})

	// The body carries a plain calendar date, not an RFC3339 instant.
	wantDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	suite.mockLedgerService.On("CreateEntry",
		mock.Anything,
		domain.Receivable,
		mock.MatchedBy(func(req dto.CreateEntryRequest) bool {
			return req.TransactionDate.Equal(wantDate) && req.PartyID == entry.PartyID
		}),
		suite.userID,
	).Return(entry, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/ledgers/receivable/entries", payload)

	suite.Equal(http.StatusCreated, w.Code)
	var envelope dto.EntryEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	suite.True(envelope.Success)
	suite.Equal(entry.EntryID, envelope.Data.EntryID)
	suite.Equal("120.50", envelope.Data.Amount)
	suite.Equal("DEBIT", envelope.Data.Direction)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_UnknownLedgerType() {
	payload, _ := json.Marshal(gin.H{
		"party_id": uuid.NewString(),
		"type":     "INVOICE",
		"amount":   "10",
		"date":     "2026-08-01",
	})

	w := suite.doRequest(http.MethodPost, "/api/v1/ledgers/inventory/entries", payload)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_ValidationError() {
	payload, _ := json.Marshal(gin.H{
		"party_id": uuid.NewString(),
		"type":     "ADJUSTMENT",
		"amount":   "55",
		"date":     "2026-08-01",
	})

	suite.mockLedgerService.On("CreateEntry",
		mock.Anything, domain.Payable, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID,
	).Return(nil, fmt.Errorf("%w: party is inactive", apperrors.ErrValidation)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/ledgers/payable/entries", payload)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(false, body["success"])
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ledgers/receivable/entries", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetEntry_NotFound() {
	entryID := uuid.NewString()

	suite.mockLedgerService.On("GetEntryByID", mock.Anything, domain.Receivable, entryID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/ledgers/receivable/entries/"+entryID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestUpdateEntry_ImmutableTypeConflict() {
	entryID := uuid.NewString()
	payload, _ := json.Marshal(gin.H{"type": "PAYMENT"})

	suite.mockLedgerService.On("UpdateEntry",
		mock.Anything, domain.Receivable, entryID, mock.AnythingOfType("dto.UpdateEntryRequest"), suite.userID,
	).Return(nil, fmt.Errorf("%w: entry type cannot be changed", apperrors.ErrImmutableField)).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/ledgers/receivable/entries/"+entryID, payload)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestUpdateEntry_EditWindowExpired() {
	entryID := uuid.NewString()
	payload, _ := json.Marshal(gin.H{"description": "late edit"})

	suite.mockLedgerService.On("UpdateEntry",
		mock.Anything, domain.Receivable, entryID, mock.AnythingOfType("dto.UpdateEntryRequest"), suite.userID,
	).Return(nil, fmt.Errorf("%w: too old", apperrors.ErrEditWindowExpired)).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/ledgers/receivable/entries/"+entryID, payload)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestDeleteEntry_Success() {
	entryID := uuid.NewString()

	suite.mockLedgerService.On("SoftDeleteEntry", mock.Anything, domain.Payable, entryID, suite.userID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/ledgers/payable/entries/"+entryID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(true, body["success"])
}

func (suite *LedgerHandlerTestSuite) TestDeleteEntry_InvoiceReferenceConflict() {
	entryID := uuid.NewString()

	suite.mockLedgerService.On("SoftDeleteEntry", mock.Anything, domain.Receivable, entryID, suite.userID).
		Return(fmt.Errorf("%w: belongs to sales_invoices 42", apperrors.ErrImmutableReference)).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/ledgers/receivable/entries/"+entryID, nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestRestoreEntry_Success() {
	entry := sampleEntry(domain.Receivable)

	suite.mockLedgerService.On("RestoreEntry", mock.Anything, domain.Receivable, entry.EntryID, suite.userID).
		Return(entry, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/ledgers/receivable/entries/"+entry.EntryID+"/restore", nil)

	suite.Equal(http.StatusOK, w.Code)
	var envelope dto.EntryEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	suite.False(envelope.Data.IsDeleted)
}

func (suite *LedgerHandlerTestSuite) TestListEntries_Success() {
	entry := sampleEntry(domain.Representative)
	resp := &dto.ListEntriesResponse{
		Success: true,
		Data:    dto.ToEntryResponses([]domain.LedgerEntry{*entry}),
		Stats: dto.LedgerStatsResponse{
			TotalDebit:       "120.50",
			TotalCredit:      "0.00",
			TotalPayments:    "0.00",
			TotalReturns:     "0.00",
			Balance:          "120.50",
			TransactionCount: 1,
		},
		Pagination: dto.PaginationResponse{CurrentPage: 1, TotalPages: 1, TotalRecords: 1, PerPage: 20},
	}

	suite.mockLedgerService.On("ListEntries",
		mock.Anything,
		domain.Representative,
		mock.MatchedBy(func(p dto.ListEntriesParams) bool {
			return p.PartyID == entry.PartyID && p.Limit == 20
		}),
	).Return(resp, nil).Once()

	url := fmt.Sprintf("/api/v1/ledgers/representative/entries?party_id=%s&limit=20", entry.PartyID)
	w := suite.doRequest(http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Success)
	suite.Len(body.Data, 1)
	suite.Equal("120.50", body.Stats.Balance)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
