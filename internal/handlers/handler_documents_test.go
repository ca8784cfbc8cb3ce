package handlers_test

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func balancedEntryRequest(debit, credit int64) dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EntryType:         "Journal Entry",
		Title:             "Office rent",
		AccountingEntries: []dto.AccountingLineRequest{
			{Account: "Rent Expense", Debit: decimal.NewFromInt(debit)},
			{Account: "Cash", Credit: decimal.NewFromInt(credit)},
		},
	}
}

func (s *HandlerTestSuite) TestCreateJournalEntry_Balanced() {
	token := s.generateTestToken(testUserID, domain.RoleManager)
	entry := &domain.JournalEntry{Document: domain.Document{ID: otherID}, EntryID: "JE1717171717171", Title: "Office rent"}
	s.journal.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateJournalEntryRequest"), testUserID).Return(entry, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/journal-entry", balancedEntryRequest(100, 100), token)

	s.Equal(http.StatusCreated, w.Code)
	var body domain.JournalEntry
	s.decodeData(w, &body)
	s.Equal(otherID, body.ID)
	s.Equal("JE1717171717171", body.EntryID)
	s.journal.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestCreateJournalEntry_UnbalancedIsBadRequest() {
	token := s.generateTestToken(testUserID, domain.RoleAdmin)
	s.journal.On("Create", mock.Anything, mock.Anything, testUserID).
		Return(nil, apperrors.Validationf("total debit (100) must equal total credit (90)")).Once()

	w := s.do(http.MethodPost, "/api/v1/journal-entry", balancedEntryRequest(100, 90), token)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("total debit (100) must equal total credit (90)", s.errorMessage(w))
}

func (s *HandlerTestSuite) TestCreateJournalEntry_MemberForbidden() {
	token := s.generateTestToken(testUserID, domain.RoleMember)

	w := s.do(http.MethodPost, "/api/v1/journal-entry", balancedEntryRequest(100, 100), token)

	s.Equal(http.StatusForbidden, w.Code)
	s.journal.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateJournalEntry_MissingLines() {
	token := s.generateTestToken(testUserID, domain.RoleManager)
	req := balancedEntryRequest(100, 100)
	req.AccountingEntries = nil

	w := s.do(http.MethodPost, "/api/v1/journal-entry", req, token)

	s.Equal(http.StatusBadRequest, w.Code)
	s.journal.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestListJournalEntries_Pagination() {
	token := s.generateTestToken(testUserID, domain.RoleMember)
	page := &domain.Page[domain.JournalEntry]{
		Items: []domain.JournalEntry{{EntryID: "JE1"}, {EntryID: "JE2"}},
		Total: 12,
		Page:  2,
		Limit: 2,
	}
	s.journal.On("List", mock.Anything, mock.MatchedBy(func(q domain.ListQuery) bool {
		return q.Page == 2 && q.Limit == 2 && q.Filter["company"] == "Acme"
	})).Return(page, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/journal-entry?page=2&limit=2&company=Acme", nil, token)

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		Items      []domain.JournalEntry `json:"items"`
		Pagination struct {
			CurrentPage int   `json:"currentPage"`
			TotalPage   int   `json:"totalPage"`
			TotalItems  int64 `json:"totalItems"`
			PerPage     int   `json:"perpage"`
		} `json:"pagination"`
	}
	s.decodeData(w, &body)
	s.Len(body.Items, 2)
	s.Equal(2, body.Pagination.CurrentPage)
	s.Equal(6, body.Pagination.TotalPage)
	s.Equal(int64(12), body.Pagination.TotalItems)
	s.Equal(2, body.Pagination.PerPage)
}

func (s *HandlerTestSuite) TestListJournalEntries_ByStatusPath() {
	token := s.generateTestToken(testUserID, domain.RoleMember)
	s.journal.On("List", mock.Anything, mock.MatchedBy(func(q domain.ListQuery) bool {
		return q.Filter["status"] == "Posted"
	})).Return(&domain.Page[domain.JournalEntry]{Page: 1, Limit: 10}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/journal-entry/status/Posted", nil, token)

	s.Equal(http.StatusOK, w.Code)
	s.journal.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestGetJournalEntry_NotFound() {
	token := s.generateTestToken(testUserID, domain.RoleMember)
	s.journal.On("GetByID", mock.Anything, otherID).
		Return(nil, fmt.Errorf("journal_entries document %s: %w", otherID, apperrors.ErrNotFound)).Once()

	w := s.do(http.MethodGet, "/api/v1/journal-entry/"+otherID, nil, token)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Resource not found", s.errorMessage(w))
}

func (s *HandlerTestSuite) TestPostJournalEntry() {
	token := s.generateTestToken(testUserID, domain.RoleAdmin)
	s.journal.On("Post", mock.Anything, otherID, testUserID).
		Return(&domain.JournalEntry{Status: domain.JournalEntryStatus("Posted")}, nil).Once()

	w := s.do(http.MethodPatch, "/api/v1/journal-entry/"+otherID+"/post", nil, token)

	s.Equal(http.StatusOK, w.Code)
	var body domain.JournalEntry
	s.decodeData(w, &body)
	s.Equal("Posted", string(body.Status))
}

func (s *HandlerTestSuite) TestDeleteJournalEntry() {
	token := s.generateTestToken(testUserID, domain.RoleManager)
	s.journal.On("Delete", mock.Anything, otherID).Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/journal-entry/"+otherID, nil, token)

	s.Equal(http.StatusOK, w.Code)
	var body dto.MessageResponse
	s.decodeData(w, &body)
	s.Equal("Journal entry deleted successfully", body.Message)
}

func (s *HandlerTestSuite) TestInternalErrorIsNotLeaked() {
	token := s.generateTestToken(testUserID, domain.RoleMember)
	s.journal.On("List", mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused to 10.0.0.7")).Once()

	w := s.do(http.MethodGet, "/api/v1/journal-entry", nil, token)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("Internal server error", s.errorMessage(w))
	s.NotContains(w.Body.String(), "10.0.0.7")
}

func (s *HandlerTestSuite) TestBalanceSheet() {
	token := s.generateTestToken(testUserID, domain.RoleMember)
	sheet := &domain.BalanceSheet{
		Assets:           []domain.AccountBalance{},
		Liabilities:      []domain.AccountBalance{},
		Equity:           []domain.AccountBalance{},
		TotalAssets:      decimal.NewFromInt(500),
		TotalLiabilities: decimal.NewFromInt(200),
		TotalEquity:      decimal.Zero,
	}
	s.ledger.On("BalanceSheet", mock.Anything).Return(sheet, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/general-ledger/balance-sheet", nil, token)

	s.Equal(http.StatusOK, w.Code)
	var body domain.BalanceSheet
	s.decodeData(w, &body)
	s.True(decimal.NewFromInt(500).Equal(body.TotalAssets))
	s.True(decimal.NewFromInt(200).Equal(body.TotalLiabilities))
	s.Empty(body.Equity)
}

func (s *HandlerTestSuite) TestLedgerDateRange() {
	token := s.generateTestToken(testUserID, domain.RoleMember)
	s.ledger.On("List", mock.Anything, mock.MatchedBy(func(q domain.ListQuery) bool {
		return q.Range != nil && q.Range.Field == "date" &&
			q.Range.From.Format("2006-01-02") == "2024-01-01" &&
			q.Range.To.Format("2006-01-02") == "2024-01-31"
	})).Return(&domain.Page[domain.GeneralLedgerEntry]{Page: 1, Limit: 10}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/general-ledger/date-range/2024-01-01/2024-01-31", nil, token)

	s.Equal(http.StatusOK, w.Code)
	s.ledger.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestLedgerDateRange_Invalid() {
	token := s.generateTestToken(testUserID, domain.RoleMember)

	w := s.do(http.MethodGet, "/api/v1/general-ledger/date-range/2024-02-01/2024-01-01", nil, token)

	s.Equal(http.StatusBadRequest, w.Code)
	s.ledger.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestRecordPayment_NonPositiveAmount() {
	token := s.generateTestToken(testUserID, domain.RoleManager)
	s.invoices.On("RecordPayment", mock.Anything, otherID, mock.AnythingOfType("domain.InvoicePayment")).
		Return(nil, apperrors.Validationf("payment amount must be greater than zero")).Once()

	w := s.do(http.MethodPost, "/api/v1/invoice/"+otherID+"/payment", map[string]any{"amount": 0}, token)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("payment amount must be greater than zero", s.errorMessage(w))
}

func (s *HandlerTestSuite) TestRecordPayment_Partial() {
	token := s.generateTestToken(testUserID, domain.RoleAdmin)
	invoice := &domain.Invoice{
		Document:          domain.Document{ID: otherID},
		PaidAmount:        decimal.NewFromInt(100),
		OutstandingAmount: decimal.NewFromInt(167),
		PaymentStatus:     domain.PaymentPartial,
	}
	s.invoices.On("RecordPayment", mock.Anything, otherID, mock.MatchedBy(func(p domain.InvoicePayment) bool {
		return p.Amount.Equal(decimal.NewFromInt(100)) && p.Method == "Bank Transfer"
	})).Return(invoice, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/invoice/"+otherID+"/payment",
		map[string]any{"amount": 100, "paymentMethod": "Bank Transfer"}, token)

	s.Equal(http.StatusOK, w.Code)
	var body domain.Invoice
	s.decodeData(w, &body)
	s.Equal(domain.PaymentPartial, body.PaymentStatus)
	s.True(decimal.NewFromInt(167).Equal(body.OutstandingAmount))
}

func (s *HandlerTestSuite) TestRecordPayment_MemberForbidden() {
	token := s.generateTestToken(testUserID, domain.RoleMember)

	w := s.do(http.MethodPost, "/api/v1/invoice/"+otherID+"/payment", map[string]any{"amount": 10}, token)

	s.Equal(http.StatusForbidden, w.Code)
	s.invoices.AssertNotCalled(s.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestDashboardStats() {
	token := s.generateTestToken(testUserID, domain.RoleOwner)
	s.dashboard.On("GetStats", mock.Anything).Return(&domain.DashboardStats{
		TotalUsers:       4,
		PendingApprovals: 2,
		RecentActivities: []string{"Purchase request PR-1 created for Office chairs"},
	}).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/stats", nil, token)

	s.Equal(http.StatusOK, w.Code)
	var body domain.DashboardStats
	s.decodeData(w, &body)
	s.Equal(int64(4), body.TotalUsers)
	s.Equal(int64(2), body.PendingApprovals)
	s.Len(body.RecentActivities, 1)
}

func (s *HandlerTestSuite) TestDashboardStats_StudentForbidden() {
	token := s.generateTestToken(testUserID, domain.RoleStudent)

	w := s.do(http.MethodGet, "/api/v1/dashboard/stats", nil, token)

	s.Equal(http.StatusForbidden, w.Code)
}
