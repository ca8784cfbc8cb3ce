package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_accounting_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func countingRepo[T any](n int64) *MockDocumentRepository[T] {
	repo := new(MockDocumentRepository[T])
	repo.On("Count", mock.Anything, mock.Anything).Return(n, nil)
	return repo
}

func TestDashboardService_GetStats(t *testing.T) {
	users := new(MockUserRepository)
	users.On("CountUsers", mock.Anything).Return(int64(12), nil)
	users.On("CountActiveUsersSince", mock.Anything, mock.Anything).Return(int64(4), nil)
	users.On("CountRegistrationsByDay", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	t0 := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	prs := []domain.PurchaseRequest{
		{Document: domain.Document{CreatedAt: t0.Add(3 * time.Hour)}, PRNumber: "PR-3", Department: "IT", Status: domain.PurchaseRequestApproved},
		{Document: domain.Document{CreatedAt: t0.Add(2 * time.Hour)}, PRNumber: "PR-2", Department: "IT", Status: domain.PurchaseRequestPending},
		{Document: domain.Document{CreatedAt: t0.Add(1 * time.Hour)}, PRNumber: "PR-1", Department: "HR", Status: domain.PurchaseRequestRejected},
	}
	prRepo := new(MockDocumentRepository[domain.PurchaseRequest])
	prRepo.On("Count", mock.Anything, domain.Filter{}).Return(int64(3), nil)
	prRepo.On("Count", mock.Anything, domain.Filter{"status": "Pending"}).Return(int64(1), nil)
	prRepo.On("FindAll", mock.Anything, mock.Anything).Return(prs, int64(3), nil)

	poRepo := countingRepo[domain.PurchaseOrder](2)
	poRepo.On("FindAll", mock.Anything, mock.Anything).Return([]domain.PurchaseOrder{
		{Document: domain.Document{CreatedAt: t0.Add(4 * time.Hour)}, PONumber: "PO-1", Currency: "RM"},
	}, int64(1), nil)
	invRepo := countingRepo[domain.Invoice](5)
	invRepo.On("FindAll", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("timeout"))

	glRepo := new(MockDocumentRepository[domain.GeneralLedgerEntry])
	glRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), errors.New("timeout"))

	svc := services.NewDashboardService(portsrepo.RepositoryProvider{
		UserRepo:            users,
		JournalEntryRepo:    countingRepo[domain.JournalEntry](7),
		GeneralLedgerRepo:   glRepo,
		ChartOfAccountsRepo: countingRepo[domain.ChartOfAccount](20),
		PurchaseRequestRepo: prRepo,
		PurchaseOrderRepo:   poRepo,
		ReceivingRepo:       countingRepo[domain.Receiving](1),
		InvoiceRepo:         invRepo,
		PaymentVoucherRepo:  countingRepo[domain.PaymentVoucher](6),
	})

	stats := svc.GetStats(context.Background())

	require.NotNil(t, stats)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(4), stats.ActiveUsers)
	assert.Equal(t, int64(3), stats.TotalPurchaseRequests)
	assert.Equal(t, int64(1), stats.PendingApprovals)
	assert.Equal(t, int64(2), stats.TotalPurchaseOrders)
	assert.Equal(t, int64(5), stats.TotalInvoices)
	assert.Equal(t, int64(1), stats.TotalReceivingRecords)
	assert.Equal(t, int64(6), stats.TotalPaymentVouchers)
	assert.Equal(t, int64(20), stats.TotalChartOfAccounts)
	assert.Equal(t, int64(7), stats.TotalJournalEntries)
	assert.Zero(t, stats.TotalGeneralLedgerEntries)

	require.Len(t, stats.RecentActivities, 4)
	assert.Contains(t, stats.RecentActivities[0], "PO-1")
	assert.Contains(t, stats.RecentActivities[1], "PR-3")
	assert.NotNil(t, stats.UserActivityOverTime)
	assert.Empty(t, stats.UserActivityOverTime)

	require.Len(t, stats.ApprovalRateByDepartment, 2)
	assert.Equal(t, domain.ApprovalBreakdown{Department: "HR", Rejected: 1}, stats.ApprovalRateByDepartment[0])
	assert.Equal(t, domain.ApprovalBreakdown{Department: "IT", Approved: 1, Pending: 1}, stats.ApprovalRateByDepartment[1])
}
