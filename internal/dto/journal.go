package dto

import (
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountingLineRequest is one debit or credit line in a journal request.
type AccountingLineRequest struct {
	Account     string          `json:"account" binding:"required"`
	PartyType   string          `json:"partyType"`
	Party       string          `json:"party"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

func toAccountingLines(in []AccountingLineRequest) []domain.AccountingLine {
	lines := make([]domain.AccountingLine, len(in))
	for i, l := range in {
		lines[i] = domain.AccountingLine{
			Account:     l.Account,
			PartyType:   l.PartyType,
			Party:       l.Party,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return lines
}

// CreateJournalEntryRequest is the body of POST /journal-entry.
type CreateJournalEntryRequest struct {
	EntryType         string                  `json:"entryType" binding:"required"`
	Title             string                  `json:"title" binding:"required"`
	ReferenceNo       string                  `json:"referenceNo"`
	PostingDate       Date                    `json:"postingDate"`
	Company           string                  `json:"company"`
	FinanceBook       string                  `json:"financeBook"`
	AccountingEntries []AccountingLineRequest `json:"accountingEntries" binding:"required,min=1,dive"`
	UserRemarks       string                  `json:"userRemarks"`
	BillNo            string                  `json:"billNo"`
	ReferenceDate     *Date                   `json:"referenceDate"`
	BillDate          *Date                   `json:"billDate"`
	DueDate           *Date                   `json:"dueDate"`
	MultiCurrency     bool                    `json:"multiCurrency"`
	Status            string                  `json:"status" binding:"omitempty,oneof=Draft Submitted Approved Posted"`
}

func (r CreateJournalEntryRequest) ToDomain() domain.JournalEntry {
	return domain.JournalEntry{
		EntryType:         r.EntryType,
		Title:             r.Title,
		ReferenceNo:       r.ReferenceNo,
		PostingDate:       r.PostingDate.Time,
		Company:           r.Company,
		FinanceBook:       r.FinanceBook,
		AccountingEntries: toAccountingLines(r.AccountingEntries),
		UserRemarks:       r.UserRemarks,
		BillNo:            r.BillNo,
		ReferenceDate:     timePtr(r.ReferenceDate),
		BillDate:          timePtr(r.BillDate),
		DueDate:           timePtr(r.DueDate),
		MultiCurrency:     r.MultiCurrency,
		Status:            domain.JournalEntryStatus(r.Status),
	}
}

// UpdateJournalEntryRequest carries the fields that may change on a journal entry.
type UpdateJournalEntryRequest struct {
	EntryType         *string                 `json:"entryType" binding:"omitempty,min=1"`
	Title             *string                 `json:"title" binding:"omitempty,min=1"`
	ReferenceNo       *string                 `json:"referenceNo"`
	PostingDate       *Date                   `json:"postingDate"`
	Company           *string                 `json:"company"`
	FinanceBook       *string                 `json:"financeBook"`
	AccountingEntries []AccountingLineRequest `json:"accountingEntries" binding:"omitempty,min=1,dive"`
	UserRemarks       *string                 `json:"userRemarks"`
	BillNo            *string                 `json:"billNo"`
	ReferenceDate     *Date                   `json:"referenceDate"`
	BillDate          *Date                   `json:"billDate"`
	DueDate           *Date                   `json:"dueDate"`
	MultiCurrency     *bool                   `json:"multiCurrency"`
	Status            *string                 `json:"status" binding:"omitempty,oneof=Draft Submitted Approved Posted"`
}

// LinesChanged reports whether the update replaces the accounting lines.
func (r UpdateJournalEntryRequest) LinesChanged() bool {
	return r.AccountingEntries != nil
}

// ApplyTo copies the supplied fields onto e.
func (r UpdateJournalEntryRequest) ApplyTo(e *domain.JournalEntry) {
	setString(&e.EntryType, r.EntryType)
	setString(&e.Title, r.Title)
	setString(&e.ReferenceNo, r.ReferenceNo)
	setString(&e.Company, r.Company)
	setString(&e.FinanceBook, r.FinanceBook)
	setString(&e.UserRemarks, r.UserRemarks)
	setString(&e.BillNo, r.BillNo)
	if r.PostingDate != nil {
		e.PostingDate = r.PostingDate.Time
	}
	if r.AccountingEntries != nil {
		e.AccountingEntries = toAccountingLines(r.AccountingEntries)
	}
	if r.ReferenceDate != nil {
		e.ReferenceDate = timePtr(r.ReferenceDate)
	}
	if r.BillDate != nil {
		e.BillDate = timePtr(r.BillDate)
	}
	if r.DueDate != nil {
		e.DueDate = timePtr(r.DueDate)
	}
	if r.MultiCurrency != nil {
		e.MultiCurrency = *r.MultiCurrency
	}
	if r.Status != nil {
		e.Status = domain.JournalEntryStatus(*r.Status)
	}
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	ListParams
	EntryType string `form:"entryType"`
	Status    string `form:"status"`
	Company   string `form:"company"`
}

func (p ListJournalEntriesParams) ToListQuery() domain.ListQuery {
	return p.query(filterOf("entryType", p.EntryType, "status", p.Status, "company", p.Company))
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setDecimal(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = *src
	}
}
