package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "Asset"
	Liability AccountType = "Liability"
	Equity    AccountType = "Equity"
	Revenue   AccountType = "Revenue"
	Expense   AccountType = "Expense"
)

// UnknownAccountType labels ledger groups whose entries carry no type.
const UnknownAccountType = "Unknown"

// ParseAccountType matches s case-insensitively against the recognised types.
func ParseAccountType(s string) (AccountType, bool) {
	for _, t := range []AccountType{Asset, Liability, Equity, Revenue, Expense} {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, true
		}
	}
	return "", false
}

// ChartOfAccount is one node of the chart of accounts. The tree is described by ParentAccount,
// which holds the parent's AccountNumber.
type ChartOfAccount struct {
	Document
	AccountNumber   string           `json:"accountNumber"`
	AccountName     string           `json:"accountName"`
	AccountType     string           `json:"accountType"`
	ParentAccount   string           `json:"parentAccount,omitempty"`
	RootType        string           `json:"rootType"`
	Company         string           `json:"company"`
	AccountCurrency string           `json:"accountCurrency"`
	TaxRate         *decimal.Decimal `json:"taxRate,omitempty"`
	BalanceMustBe   string           `json:"balanceMustBe,omitempty"`
	IsEnabled       bool             `json:"isEnabled"`
	Description     string           `json:"description,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	AuditFields
}

func (a ChartOfAccount) NaturalKey() string { return a.AccountNumber }

// AccountNode is a chart-of-accounts entry with its children attached.
type AccountNode struct {
	ChartOfAccount
	Children []*AccountNode `json:"children"`
}
