package dto

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalAcceptsBothLayouts(t *testing.T) {
	var body struct {
		A Date `json:"a"`
		B Date `json:"b"`
	}
	err := json.Unmarshal([]byte(`{"a":"2024-03-01","b":"2024-03-01T10:30:00+02:00"}`), &body)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), body.A.Time)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC), body.B.Time)
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"01/03/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240301`), &d))
}

func TestListParams_DefaultsAndEmptyFilters(t *testing.T) {
	p := ListJournalEntriesParams{Status: "Posted", Company: "  "}
	q := p.ToListQuery()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, domain.Filter{"status": "Posted"}, q.Filter)
}

func TestListChartOfAccounts_SortsByAccountNumber(t *testing.T) {
	q := ListChartOfAccountsParams{IsEnabled: "true"}.ToListQuery()
	assert.Equal(t, []domain.SortKey{{Field: "accountNumber"}}, q.Sort)
	assert.Equal(t, "true", q.Filter["isEnabled"])
}

func TestListGeneralLedgerParams_DateBecomesDayRange(t *testing.T) {
	q, err := ListGeneralLedgerParams{Date: "2024-05-10"}.ToListQuery()
	require.NoError(t, err)
	require.NotNil(t, q.Range)
	assert.Equal(t, "date", q.Range.Field)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), q.Range.From)
	assert.True(t, q.Range.To.Before(time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)))

	_, err = ListGeneralLedgerParams{Date: "yesterday"}.ToListQuery()
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestDateRangeQuery(t *testing.T) {
	q, err := DateRangeQuery(ListParams{}, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, 31, q.Range.To.Day())

	_, err = DateRangeQuery(ListParams{}, "2024-02-01", "2024-01-01")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestUpdateJournalEntryRequest_ApplyTo(t *testing.T) {
	title := "Rent"
	e := domain.JournalEntry{Title: "old", EntryType: "Journal"}
	req := UpdateJournalEntryRequest{Title: &title}
	req.ApplyTo(&e)
	assert.Equal(t, "Rent", e.Title)
	assert.Equal(t, "Journal", e.EntryType)
	assert.False(t, req.LinesChanged())
}

func TestPurchaseOrderItems_DeriveAmount(t *testing.T) {
	req := CreatePurchaseOrderRequest{Items: []PurchaseOrderItemRequest{
		{ItemCode: "A", Quantity: decimal.NewFromInt(3), Rate: decimal.NewFromInt(4)},
	}}
	po, totals := req.ToDomain()
	assert.True(t, po.Items[0].Amount.Equal(decimal.NewFromInt(12)))
	assert.False(t, totals.HasGrandTotal)
	assert.False(t, totals.HasQuantity)
}

func TestCreateChartOfAccountRequest_EnabledByDefault(t *testing.T) {
	a := CreateChartOfAccountRequest{AccountNumber: "1000"}.ToDomain()
	assert.True(t, a.IsEnabled)

	off := false
	a = CreateChartOfAccountRequest{AccountNumber: "1000", IsEnabled: &off}.ToDomain()
	assert.False(t, a.IsEnabled)
}
