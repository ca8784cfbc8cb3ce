package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
	"github.com/SscSPs/procurement_accounting_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type generalLedgerService struct {
	documentCRUD[domain.GeneralLedgerEntry]
}

func NewGeneralLedgerService(repo portsrepo.DocumentRepository[domain.GeneralLedgerEntry]) portssvc.GeneralLedgerSvcFacade {
	return &generalLedgerService{documentCRUD: newDocumentCRUD(repo, "general ledger entry")}
}

var _ portssvc.GeneralLedgerSvcFacade = (*generalLedgerService)(nil)

func (s *generalLedgerService) Create(ctx context.Context, req dto.CreateGeneralLedgerEntryRequest, userID string) (*domain.GeneralLedgerEntry, error) {
	entry, hasBalance := req.ToDomain()
	if err := accounting.ValidateGeneralLedger(&entry); err != nil {
		return nil, err
	}
	if !hasBalance {
		entry.Balance = accounting.CalculateBalance(decimal.Zero, entry.Debit, entry.Credit)
	}
	if entry.Currency == "" {
		entry.Currency = utils.DefaultCurrency
	}
	if entry.ExchangeRate.IsZero() {
		entry.ExchangeRate = decimal.NewFromInt(1)
	}
	entry.CreatedBy = userID
	entry.UpdatedBy = userID

	if err := s.create(ctx, &entry); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Ledger entry created",
		slog.String("id", entry.ID),
		slog.String("account_number", entry.AccountNumber),
		slog.String("amount", utils.FormatAmount(entry.Debit.Sub(entry.Credit), entry.Currency)))
	return &entry, nil
}

func (s *generalLedgerService) Update(ctx context.Context, id string, req dto.UpdateGeneralLedgerEntryRequest, userID string) (*domain.GeneralLedgerEntry, error) {
	return s.mutate(ctx, id, func(entry *domain.GeneralLedgerEntry) error {
		req.ApplyTo(entry)
		if err := accounting.ValidateGeneralLedger(entry); err != nil {
			return err
		}
		entry.UpdatedBy = userID
		return nil
	})
}

func (s *generalLedgerService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	entries, err := s.allEntries(ctx)
	if err != nil {
		return nil, err
	}
	sheet := accounting.GenerateBalanceSheet(entries)
	s.warnUnclassified(ctx, "balance sheet", sheet.Unclassified)
	return &sheet, nil
}

func (s *generalLedgerService) IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error) {
	entries, err := s.allEntries(ctx)
	if err != nil {
		return nil, err
	}
	statement := accounting.GenerateIncomeStatement(entries)
	s.warnUnclassified(ctx, "income statement", statement.Unclassified)
	return &statement, nil
}

func (s *generalLedgerService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	entries, err := s.allEntries(ctx)
	if err != nil {
		return nil, err
	}
	trial := accounting.GenerateTrialBalance(entries)
	if !trial.IsBalanced {
		s.LogWarn(ctx, "Trial balance does not balance",
			slog.String("total_debit", trial.TotalDebitBalance.String()),
			slog.String("total_credit", trial.TotalCreditBalance.String()))
	}
	return &trial, nil
}

func (s *generalLedgerService) allEntries(ctx context.Context) ([]domain.GeneralLedgerEntry, error) {
	entries, err := s.scan(ctx, domain.ListQuery{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger entries for statement")
		return nil, err
	}
	return entries, nil
}

func (s *generalLedgerService) warnUnclassified(ctx context.Context, report string, accounts []domain.AccountBalance) {
	if len(accounts) == 0 {
		return
	}
	s.LogWarn(ctx, "Ledger accounts with unrecognised type left out of "+report,
		slog.Int("count", len(accounts)))
}
