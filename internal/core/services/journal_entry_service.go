package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
	"github.com/SscSPs/procurement_accounting_app/internal/utils/accounting"
)

// journalEntryService only ever persists entries whose debits and credits balance.
type journalEntryService struct {
	documentCRUD[domain.JournalEntry]
	now func() time.Time
}

func NewJournalEntryService(repo portsrepo.DocumentRepository[domain.JournalEntry]) portssvc.JournalEntrySvcFacade {
	return &journalEntryService{
		documentCRUD: newDocumentCRUD(repo, "journal entry"),
		now:          time.Now,
	}
}

var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

func (s *journalEntryService) Create(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	entry := req.ToDomain()
	if err := accounting.BalanceJournalEntry(&entry); err != nil {
		s.LogInfo(ctx, "Journal entry rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	entry.EntryID = utils.GenerateSequencedNumber("JE", s.now())
	if entry.Status == "" {
		entry.Status = domain.JournalDraft
	}
	entry.CreatedBy = userID
	entry.UpdatedBy = userID

	if err := s.create(ctx, &entry); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("total_debit", entry.TotalDebit.String()),
		slog.String("total_credit", entry.TotalCredit.String()))
	return &entry, nil
}

func (s *journalEntryService) Update(ctx context.Context, id string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	return s.mutate(ctx, id, func(entry *domain.JournalEntry) error {
		req.ApplyTo(entry)
		if req.LinesChanged() {
			if err := accounting.BalanceJournalEntry(entry); err != nil {
				return err
			}
		} else if err := accounting.ValidateJournalEntry(entry); err != nil {
			return err
		}
		entry.UpdatedBy = userID
		return nil
	})
}

func (s *journalEntryService) Post(ctx context.Context, id string, userID string) (*domain.JournalEntry, error) {
	entry, err := s.mutate(ctx, id, func(entry *domain.JournalEntry) error {
		entry.Status = domain.JournalPosted
		entry.UpdatedBy = userID
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry posted", slog.String("entry_id", entry.EntryID))
	return entry, nil
}
