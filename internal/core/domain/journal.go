package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryStatus indicates the state of a journal entry.
type JournalEntryStatus string

const (
	JournalDraft     JournalEntryStatus = "Draft"
	JournalSubmitted JournalEntryStatus = "Submitted"
	JournalApproved  JournalEntryStatus = "Approved"
	JournalPosted    JournalEntryStatus = "Posted"
)

// AccountingLine is a single debit or credit line of a journal entry.
type AccountingLine struct {
	Account     string          `json:"account"`
	PartyType   string          `json:"partyType,omitempty"`
	Party       string          `json:"party,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// JournalEntry represents a balanced set of accounting lines.
// TotalDebit and TotalCredit always agree within the balance tolerance.
type JournalEntry struct {
	Document
	EntryID           string             `json:"entryId"`
	EntryType         string             `json:"entryType"`
	Title             string             `json:"title"`
	ReferenceNo       string             `json:"referenceNo,omitempty"`
	PostingDate       time.Time          `json:"postingDate"`
	Company           string             `json:"company,omitempty"`
	FinanceBook       string             `json:"financeBook,omitempty"`
	AccountingEntries []AccountingLine   `json:"accountingEntries"`
	TotalDebit        decimal.Decimal    `json:"totalDebit"`
	TotalCredit       decimal.Decimal    `json:"totalCredit"`
	UserRemarks       string             `json:"userRemarks,omitempty"`
	BillNo            string             `json:"billNo,omitempty"`
	ReferenceDate     *time.Time         `json:"referenceDate,omitempty"`
	BillDate          *time.Time         `json:"billDate,omitempty"`
	DueDate           *time.Time         `json:"dueDate,omitempty"`
	MultiCurrency     bool               `json:"multiCurrency"`
	Status            JournalEntryStatus `json:"status"`
	AuditFields
}

func (e JournalEntry) NaturalKey() string { return e.EntryID }
