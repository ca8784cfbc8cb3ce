package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
)

const (
	activityWindow      = 30 * 24 * time.Hour
	recentActivityLimit = 5
)

type dashboardService struct {
	BaseService
	repos portsrepo.RepositoryProvider
	now   func() time.Time
}

// NewDashboardService aggregates across every repository in repos.
func NewDashboardService(repos portsrepo.RepositoryProvider) portssvc.DashboardSvcFacade {
	return &dashboardService{repos: repos, now: time.Now}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func (s *dashboardService) GetStats(ctx context.Context) *domain.DashboardStats {
	since := s.now().Add(-activityWindow)
	r := s.repos
	stats := &domain.DashboardStats{
		TotalUsers:                s.count(ctx, "users", r.UserRepo.CountUsers),
		ActiveUsers:               s.count(ctx, "active users", func(ctx context.Context) (int64, error) { return r.UserRepo.CountActiveUsersSince(ctx, since) }),
		TotalPurchaseRequests:     s.count(ctx, "purchase requests", countAll(r.PurchaseRequestRepo, nil)),
		PendingApprovals:          s.count(ctx, "pending approvals", countAll(r.PurchaseRequestRepo, domain.Filter{"status": string(domain.PurchaseRequestPending)})),
		TotalPurchaseOrders:       s.count(ctx, "purchase orders", countAll(r.PurchaseOrderRepo, nil)),
		TotalInvoices:             s.count(ctx, "invoices", countAll(r.InvoiceRepo, nil)),
		TotalReceivingRecords:     s.count(ctx, "receivings", countAll(r.ReceivingRepo, nil)),
		TotalPaymentVouchers:      s.count(ctx, "payment vouchers", countAll(r.PaymentVoucherRepo, nil)),
		TotalChartOfAccounts:      s.count(ctx, "chart of accounts", countAll(r.ChartOfAccountsRepo, nil)),
		TotalJournalEntries:       s.count(ctx, "journal entries", countAll(r.JournalEntryRepo, nil)),
		TotalGeneralLedgerEntries: s.count(ctx, "general ledger entries", countAll(r.GeneralLedgerRepo, nil)),
	}
	stats.RecentActivities = s.recentActivities(ctx)
	stats.UserActivityOverTime = s.registrations(ctx, since)
	stats.ApprovalRateByDepartment = s.approvalRates(ctx)
	return stats
}

func countAll[T any](repo portsrepo.DocumentReader[T], filter domain.Filter) func(context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		if filter == nil {
			filter = domain.Filter{}
		}
		return repo.Count(ctx, filter)
	}
}

func (s *dashboardService) count(ctx context.Context, what string, fn func(context.Context) (int64, error)) int64 {
	n, err := fn(ctx)
	if err != nil {
		s.LogError(ctx, err, "Dashboard count failed", slog.String("aggregate", what))
		return 0
	}
	return n
}

func (s *dashboardService) recentActivities(ctx context.Context) []string {
	recent := domain.ListQuery{Page: 1, Limit: recentActivityLimit}
	type activity struct {
		at   time.Time
		text string
	}
	var all []activity

	if prs, _, err := s.repos.PurchaseRequestRepo.FindAll(ctx, recent); err != nil {
		s.LogError(ctx, err, "Dashboard recent purchase requests failed")
	} else {
		for _, pr := range prs {
			all = append(all, activity{pr.CreatedAt, fmt.Sprintf("Purchase request %s created for %s", pr.PRNumber, pr.Department)})
		}
	}
	if pos, _, err := s.repos.PurchaseOrderRepo.FindAll(ctx, recent); err != nil {
		s.LogError(ctx, err, "Dashboard recent purchase orders failed")
	} else {
		for _, po := range pos {
			all = append(all, activity{po.CreatedAt, fmt.Sprintf("Purchase order %s issued (%s)", po.PONumber, utils.FormatAmount(po.GrandTotal, po.Currency))})
		}
	}
	if invs, _, err := s.repos.InvoiceRepo.FindAll(ctx, recent); err != nil {
		s.LogError(ctx, err, "Dashboard recent invoices failed")
	} else {
		for _, inv := range invs {
			all = append(all, activity{inv.CreatedAt, fmt.Sprintf("Invoice %s recorded (%s)", inv.InvoiceNumber, inv.PaymentStatus)})
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].at.After(all[j].at) })
	out := []string{}
	for i := 0; i < len(all) && i < recentActivityLimit; i++ {
		out = append(out, all[i].text)
	}
	return out
}

func (s *dashboardService) registrations(ctx context.Context, since time.Time) []domain.DailyCount {
	days, err := s.repos.UserRepo.CountRegistrationsByDay(ctx, since)
	if err != nil {
		s.LogError(ctx, err, "Dashboard registrations failed")
		return []domain.DailyCount{}
	}
	if days == nil {
		return []domain.DailyCount{}
	}
	return days
}

func (s *dashboardService) approvalRates(ctx context.Context) []domain.ApprovalBreakdown {
	prs, _, err := s.repos.PurchaseRequestRepo.FindAll(ctx, domain.ListQuery{})
	if err != nil {
		s.LogError(ctx, err, "Dashboard approval rates failed")
		return []domain.ApprovalBreakdown{}
	}
	byDept := map[string]*domain.ApprovalBreakdown{}
	for _, pr := range prs {
		dept := pr.Department
		if dept == "" {
			dept = "Unassigned"
		}
		b, ok := byDept[dept]
		if !ok {
			b = &domain.ApprovalBreakdown{Department: dept}
			byDept[dept] = b
		}
		switch pr.Status {
		case domain.PurchaseRequestApproved:
			b.Approved++
		case domain.PurchaseRequestRejected:
			b.Rejected++
		case domain.PurchaseRequestPending:
			b.Pending++
		}
	}
	out := make([]domain.ApprovalBreakdown, 0, len(byDept))
	for _, b := range byDept {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out
}
