package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
)

const accountNumberAttempts = 5

type chartOfAccountsService struct {
	documentCRUD[domain.ChartOfAccount]
	now func() time.Time
}

func NewChartOfAccountsService(repo portsrepo.DocumentRepository[domain.ChartOfAccount]) portssvc.ChartOfAccountsSvcFacade {
	return &chartOfAccountsService{
		documentCRUD: newDocumentCRUD(repo, "account"),
		now:          time.Now,
	}
}

var _ portssvc.ChartOfAccountsSvcFacade = (*chartOfAccountsService)(nil)

func (s *chartOfAccountsService) Create(ctx context.Context, req dto.CreateChartOfAccountRequest, userID string) (*domain.ChartOfAccount, error) {
	account := req.ToDomain()
	if err := s.ensureNumberFree(ctx, account.AccountNumber); err != nil {
		return nil, err
	}
	if account.AccountCurrency == "" {
		account.AccountCurrency = utils.DefaultCurrency
	}
	account.CreatedBy = userID
	account.UpdatedBy = userID

	if err := s.create(ctx, &account); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Account created", slog.String("account_number", account.AccountNumber))
	return &account, nil
}

func (s *chartOfAccountsService) Update(ctx context.Context, id string, req dto.UpdateChartOfAccountRequest, userID string) (*domain.ChartOfAccount, error) {
	return s.mutate(ctx, id, func(account *domain.ChartOfAccount) error {
		if req.AccountNumber != nil && *req.AccountNumber != account.AccountNumber {
			if err := s.ensureNumberFree(ctx, *req.AccountNumber); err != nil {
				return err
			}
		}
		req.ApplyTo(account)
		if req.ParentAccount != nil && *req.ParentAccount == account.AccountNumber {
			return apperrors.Validationf("an account cannot be its own parent")
		}
		account.UpdatedBy = userID
		return nil
	})
}

// Hierarchy nests enabled accounts under their parent account number. Accounts whose parent is
// missing or disabled become roots.
func (s *chartOfAccountsService) Hierarchy(ctx context.Context) ([]*domain.AccountNode, error) {
	accounts, err := s.scan(ctx, domain.ListQuery{
		Filter: domain.Filter{"isEnabled": "true"},
		Sort:   []domain.SortKey{{Field: "accountNumber"}},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for hierarchy")
		return nil, err
	}
	return buildAccountTree(accounts), nil
}

func buildAccountTree(accounts []domain.ChartOfAccount) []*domain.AccountNode {
	nodes := make(map[string]*domain.AccountNode, len(accounts))
	ordered := make([]*domain.AccountNode, 0, len(accounts))
	for _, a := range accounts {
		node := &domain.AccountNode{ChartOfAccount: a, Children: []*domain.AccountNode{}}
		nodes[a.AccountNumber] = node
		ordered = append(ordered, node)
	}

	roots := make([]*domain.AccountNode, 0)
	for _, node := range ordered {
		parent, ok := nodes[node.ParentAccount]
		if node.ParentAccount == "" || !ok || parent == node {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}

// GenerateAccountNumber returns the upper-cased first three letters of accountType followed by the
// last six digits of the current unix milliseconds, e.g. ASS171717.
func (s *chartOfAccountsService) GenerateAccountNumber(ctx context.Context, accountType string) (string, error) {
	prefix := strings.ToUpper(strings.TrimSpace(accountType))
	if prefix == "" {
		return "", apperrors.Validationf("account type is required")
	}
	if r := []rune(prefix); len(r) > 3 {
		prefix = string(r[:3])
	}

	now := s.now()
	for i := 0; i < accountNumberAttempts; i++ {
		ms := now.Add(time.Duration(i) * time.Millisecond).UnixMilli()
		number := fmt.Sprintf("%s%06d", prefix, ms%1_000_000)
		n, err := s.repo.Count(ctx, domain.Filter{"accountNumber": number})
		if err != nil {
			s.LogError(ctx, err, "Failed to check account number", slog.String("account_number", number))
			return "", err
		}
		if n == 0 {
			return number, nil
		}
	}
	return "", fmt.Errorf("could not find a free account number for %s: %w", prefix, apperrors.ErrDuplicate)
}

func (s *chartOfAccountsService) ensureNumberFree(ctx context.Context, number string) error {
	n, err := s.repo.Count(ctx, domain.Filter{"accountNumber": number})
	if err != nil {
		s.LogError(ctx, err, "Failed to check account number", slog.String("account_number", number))
		return err
	}
	if n > 0 {
		return fmt.Errorf("account number %s already exists: %w", number, apperrors.ErrDuplicate)
	}
	return nil
}
