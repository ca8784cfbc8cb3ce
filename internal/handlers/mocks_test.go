package handlers_test

import (
	"context"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) authResult(args mock.Arguments) (*domain.AuthResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.AuthResult, error) {
	return m.authResult(m.Called(ctx, req))
}
func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.AuthResult, error) {
	return m.authResult(m.Called(ctx, req))
}
func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}
func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}
func (m *MockAuthService) Authenticate(ctx context.Context, token string, refreshEndpoint bool) (*domain.TokenClaims, *domain.User, error) {
	args := m.Called(ctx, token, refreshEndpoint)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.TokenClaims), args.Get(1).(*domain.User), args.Error(2)
}
func (m *MockAuthService) LoginWithGoogle(ctx context.Context, idToken string) (*domain.AuthResult, error) {
	return m.authResult(m.Called(ctx, idToken))
}
func (m *MockAuthService) LoginWithGoogleCode(ctx context.Context, code string) (*domain.AuthResult, error) {
	return m.authResult(m.Called(ctx, code))
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, filter domain.UserListFilter) (*domain.Page[domain.User], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.User]), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// MockDocumentService covers the read and delete side every document service shares.
type MockDocumentService[T any] struct {
	mock.Mock
}

func (m *MockDocumentService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}
func (m *MockDocumentService[T]) List(ctx context.Context, query domain.ListQuery) (*domain.Page[T], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[T]), args.Error(1)
}
func (m *MockDocumentService[T]) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDocumentService[T]) result(args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// --- Mock JournalEntryService ---
type MockJournalEntryService struct {
	MockDocumentService[domain.JournalEntry]
}

func (m *MockJournalEntryService) Create(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	return m.result(m.Called(ctx, req, userID))
}
func (m *MockJournalEntryService) Update(ctx context.Context, id string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	return m.result(m.Called(ctx, id, req, userID))
}
func (m *MockJournalEntryService) Post(ctx context.Context, id string, userID string) (*domain.JournalEntry, error) {
	return m.result(m.Called(ctx, id, userID))
}

var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

// --- Mock GeneralLedgerService ---
type MockGeneralLedgerService struct {
	MockDocumentService[domain.GeneralLedgerEntry]
}

func (m *MockGeneralLedgerService) Create(ctx context.Context, req dto.CreateGeneralLedgerEntryRequest, userID string) (*domain.GeneralLedgerEntry, error) {
	return m.result(m.Called(ctx, req, userID))
}
func (m *MockGeneralLedgerService) Update(ctx context.Context, id string, req dto.UpdateGeneralLedgerEntryRequest, userID string) (*domain.GeneralLedgerEntry, error) {
	return m.result(m.Called(ctx, id, req, userID))
}
func (m *MockGeneralLedgerService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}
func (m *MockGeneralLedgerService) IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}
func (m *MockGeneralLedgerService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}

var _ portssvc.GeneralLedgerSvcFacade = (*MockGeneralLedgerService)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	MockDocumentService[domain.Invoice]
}

func (m *MockInvoiceService) Create(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	return m.result(m.Called(ctx, req, userID))
}
func (m *MockInvoiceService) Update(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	return m.result(m.Called(ctx, id, req))
}
func (m *MockInvoiceService) UpdateStatus(ctx context.Context, id string, req dto.StatusUpdateRequest, userID string) (*domain.Invoice, error) {
	return m.result(m.Called(ctx, id, req, userID))
}
func (m *MockInvoiceService) RecordPayment(ctx context.Context, id string, payment domain.InvoicePayment) (*domain.Invoice, error) {
	return m.result(m.Called(ctx, id, payment))
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetStats(ctx context.Context) *domain.DashboardStats {
	return m.Called(ctx).Get(0).(*domain.DashboardStats)
}

var _ portssvc.DashboardSvcFacade = (*MockDashboardService)(nil)
