package pgsql

import (
	"testing"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhereFiltersInStableOrder(t *testing.T) {
	where, args, err := journalEntrySchema.buildWhere(domain.ListQuery{
		Filter: domain.Filter{"status": "Draft", "entryType": "Journal Entry"},
	})
	require.NoError(t, err)
	assert.Equal(t, " WHERE doc->>'entryType' = $1 AND doc->>'status' = $2", where)
	assert.Equal(t, []any{"Journal Entry", "Draft"}, args)
}

func TestBuildWhereSearchAndRange(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	where, args, err := generalLedgerSchema.buildWhere(domain.ListQuery{
		Filter: domain.Filter{"company": "ACME"},
		Search: "50%_off",
		Range:  &domain.DateRange{Field: "date", From: from, To: to},
	})
	require.NoError(t, err)
	assert.Equal(t,
		" WHERE doc->>'company' = $1"+
			" AND (doc->>'account' ILIKE $2 OR doc->>'accountNumber' ILIKE $2 OR doc->>'description' ILIKE $2)"+
			" AND (doc->>'date')::timestamptz >= $3 AND (doc->>'date')::timestamptz <= $4",
		where)
	assert.Equal(t, []any{"ACME", `%50\%\_off%`, from, to}, args)
}

func TestBuildWhereRejectsUnknownFields(t *testing.T) {
	_, _, err := invoiceSchema.buildWhere(domain.ListQuery{Filter: domain.Filter{"doc; DROP TABLE invoices": "x"}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = invoiceSchema.buildWhere(domain.ListQuery{Range: &domain.DateRange{Field: "nope"}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestBuildWhereEmpty(t *testing.T) {
	where, args, err := receivingSchema.buildWhere(domain.ListQuery{Search: "   "})
	require.NoError(t, err)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildOrder(t *testing.T) {
	order, err := chartOfAccountsSchema.buildOrder(nil)
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY natural_key ASC", order)

	order, err = purchaseOrderSchema.buildOrder([]domain.SortKey{{Field: "createdAt", Desc: true}})
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY created_at DESC, id ASC", order)

	_, err = purchaseOrderSchema.buildOrder([]domain.SortKey{{Field: "grandTotal; --"}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
