package domain

// DailyCount is the number of events on one calendar day (YYYY-MM-DD).
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// ApprovalBreakdown counts purchase request outcomes for one department.
type ApprovalBreakdown struct {
	Department string `json:"department"`
	Approved   int64  `json:"approved"`
	Rejected   int64  `json:"rejected"`
	Pending    int64  `json:"pending"`
}

// DashboardStats is the aggregate shown on the landing page.
type DashboardStats struct {
	TotalUsers                int64               `json:"totalUsers"`
	ActiveUsers               int64               `json:"activeUsers"`
	TotalPurchaseRequests     int64               `json:"totalPurchaseRequests"`
	PendingApprovals          int64               `json:"pendingApprovals"`
	TotalPurchaseOrders       int64               `json:"totalPurchaseOrders"`
	TotalInvoices             int64               `json:"totalInvoices"`
	TotalReceivingRecords     int64               `json:"totalReceivingRecords"`
	TotalPaymentVouchers      int64               `json:"totalPaymentVouchers"`
	TotalChartOfAccounts      int64               `json:"totalChartOfAccounts"`
	TotalJournalEntries       int64               `json:"totalJournalEntries"`
	TotalGeneralLedgerEntries int64               `json:"totalGeneralLedgerEntries"`
	RecentActivities          []string            `json:"recentActivities"`
	UserActivityOverTime      []DailyCount        `json:"userActivityOverTime"`
	ApprovalRateByDepartment  []ApprovalBreakdown `json:"approvalRateByDepartment"`
}
