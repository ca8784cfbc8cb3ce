package dto

import (
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateChartOfAccountRequest is the body of POST /chart-of-accounts.
type CreateChartOfAccountRequest struct {
	AccountNumber   string           `json:"accountNumber" binding:"required"`
	AccountName     string           `json:"accountName" binding:"required"`
	AccountType     string           `json:"accountType" binding:"required"`
	ParentAccount   string           `json:"parentAccount"`
	RootType        string           `json:"rootType" binding:"required"`
	Company         string           `json:"company" binding:"required"`
	AccountCurrency string           `json:"accountCurrency"`
	TaxRate         *decimal.Decimal `json:"taxRate"`
	BalanceMustBe   string           `json:"balanceMustBe" binding:"omitempty,oneof=Debit Credit"`
	IsEnabled       *bool            `json:"isEnabled"`
	Description     string           `json:"description"`
	Notes           string           `json:"notes"`
}

func (r CreateChartOfAccountRequest) ToDomain() domain.ChartOfAccount {
	a := domain.ChartOfAccount{
		AccountNumber:   r.AccountNumber,
		AccountName:     r.AccountName,
		AccountType:     r.AccountType,
		ParentAccount:   r.ParentAccount,
		RootType:        r.RootType,
		Company:         r.Company,
		AccountCurrency: r.AccountCurrency,
		TaxRate:         r.TaxRate,
		BalanceMustBe:   r.BalanceMustBe,
		IsEnabled:       true,
		Description:     r.Description,
		Notes:           r.Notes,
	}
	if r.IsEnabled != nil {
		a.IsEnabled = *r.IsEnabled
	}
	return a
}

// UpdateChartOfAccountRequest carries the fields that may change on an account.
type UpdateChartOfAccountRequest struct {
	AccountNumber   *string          `json:"accountNumber" binding:"omitempty,min=1"`
	AccountName     *string          `json:"accountName" binding:"omitempty,min=1"`
	AccountType     *string          `json:"accountType" binding:"omitempty,min=1"`
	ParentAccount   *string          `json:"parentAccount"`
	RootType        *string          `json:"rootType"`
	Company         *string          `json:"company"`
	AccountCurrency *string          `json:"accountCurrency"`
	TaxRate         *decimal.Decimal `json:"taxRate"`
	BalanceMustBe   *string          `json:"balanceMustBe" binding:"omitempty,oneof=Debit Credit"`
	IsEnabled       *bool            `json:"isEnabled"`
	Description     *string          `json:"description"`
	Notes           *string          `json:"notes"`
}

func (r UpdateChartOfAccountRequest) ApplyTo(a *domain.ChartOfAccount) {
	setString(&a.AccountNumber, r.AccountNumber)
	setString(&a.AccountName, r.AccountName)
	setString(&a.AccountType, r.AccountType)
	setString(&a.ParentAccount, r.ParentAccount)
	setString(&a.RootType, r.RootType)
	setString(&a.Company, r.Company)
	setString(&a.AccountCurrency, r.AccountCurrency)
	if r.TaxRate != nil {
		a.TaxRate = r.TaxRate
	}
	setString(&a.BalanceMustBe, r.BalanceMustBe)
	if r.IsEnabled != nil {
		a.IsEnabled = *r.IsEnabled
	}
	setString(&a.Description, r.Description)
	setString(&a.Notes, r.Notes)
}

// ListChartOfAccountsParams defines query parameters for listing accounts.
type ListChartOfAccountsParams struct {
	ListParams
	AccountType string `form:"accountType"`
	RootType    string `form:"rootType"`
	Company     string `form:"company"`
	IsEnabled   string `form:"isEnabled" binding:"omitempty,oneof=true false"`
}

func (p ListChartOfAccountsParams) ToListQuery() domain.ListQuery {
	q := p.query(filterOf(
		"accountType", p.AccountType,
		"rootType", p.RootType,
		"company", p.Company,
		"isEnabled", p.IsEnabled,
	))
	q.Sort = []domain.SortKey{{Field: "accountNumber"}}
	return q
}

// AccountNumberResponse is returned by the number generator.
type AccountNumberResponse struct {
	AccountNumber string `json:"accountNumber"`
}
