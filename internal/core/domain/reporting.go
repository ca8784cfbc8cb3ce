package domain

import (
	"github.com/shopspring/decimal"
)

// AccountBalance is the accumulated position of one account number.
// Balance always equals DebitBalance - CreditBalance.
type AccountBalance struct {
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	AccountType   string          `json:"accountType"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
	Balance       decimal.Decimal `json:"balance"`
}

// BalanceSheet groups Asset, Liability and Equity accounts. Totals are expressed in each
// section's normal balance, so credit-heavy liabilities yield a positive TotalLiabilities.
type BalanceSheet struct {
	Assets           []AccountBalance `json:"assets"`
	Liabilities      []AccountBalance `json:"liabilities"`
	Equity           []AccountBalance `json:"equity"`
	TotalAssets      decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities decimal.Decimal  `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal  `json:"totalEquity"`
	Unclassified     []AccountBalance `json:"unclassified,omitempty"`
}

// IncomeStatement groups Revenue and Expense accounts.
type IncomeStatement struct {
	Revenue       []AccountBalance `json:"revenue"`
	Expenses      []AccountBalance `json:"expenses"`
	TotalRevenue  decimal.Decimal  `json:"totalRevenue"`
	TotalExpenses decimal.Decimal  `json:"totalExpenses"`
	NetIncome     decimal.Decimal  `json:"netIncome"`
	Unclassified  []AccountBalance `json:"unclassified,omitempty"`
}

// TrialBalance lists every account with grand totals.
type TrialBalance struct {
	Items              []AccountBalance `json:"items"`
	TotalDebitBalance  decimal.Decimal  `json:"totalDebitBalance"`
	TotalCreditBalance decimal.Decimal  `json:"totalCreditBalance"`
	IsBalanced         bool             `json:"isBalanced"`
}
