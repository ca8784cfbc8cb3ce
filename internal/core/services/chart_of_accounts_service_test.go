package services_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/core/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChartOfAccountsService_Hierarchy(t *testing.T) {
	repo := new(MockDocumentRepository[domain.ChartOfAccount])
	accounts := []domain.ChartOfAccount{
		{AccountNumber: "1000", AccountName: "Assets", IsEnabled: true},
		{AccountNumber: "1100", AccountName: "Cash", ParentAccount: "1000", IsEnabled: true},
		{AccountNumber: "1110", AccountName: "Petty Cash", ParentAccount: "1100", IsEnabled: true},
		{AccountNumber: "2000", AccountName: "Liabilities", IsEnabled: true},
		{AccountNumber: "2100", AccountName: "Orphan", ParentAccount: "2999", IsEnabled: true},
	}
	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(q domain.ListQuery) bool {
		return q.Filter["isEnabled"] == "true" && q.Limit == 0
	})).Return(accounts, int64(len(accounts)), nil)

	roots, err := services.NewChartOfAccountsService(repo).Hierarchy(context.Background())

	require.NoError(t, err)
	require.Len(t, roots, 3)
	assert.Equal(t, "1000", roots[0].AccountNumber)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "1100", roots[0].Children[0].AccountNumber)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, "1110", roots[0].Children[0].Children[0].AccountNumber)
	assert.Equal(t, "2000", roots[1].AccountNumber)
	assert.Empty(t, roots[1].Children)
	assert.Equal(t, "2100", roots[2].AccountNumber)
}

func TestChartOfAccountsService_CreateDuplicateNumber(t *testing.T) {
	repo := new(MockDocumentRepository[domain.ChartOfAccount])
	repo.On("Count", mock.Anything, domain.Filter{"accountNumber": "1000"}).Return(int64(1), nil).Once()

	_, err := services.NewChartOfAccountsService(repo).Create(context.Background(), dto.CreateChartOfAccountRequest{
		AccountNumber: "1000",
		AccountName:   "Assets",
		AccountType:   "Asset",
		RootType:      "Asset",
		Company:       "ACME",
	}, testUserID)

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestChartOfAccountsService_GenerateAccountNumber(t *testing.T) {
	repo := new(MockDocumentRepository[domain.ChartOfAccount])
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)

	number, err := services.NewChartOfAccountsService(repo).GenerateAccountNumber(context.Background(), "asset")

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ASS\d{6}$`), number)
}
