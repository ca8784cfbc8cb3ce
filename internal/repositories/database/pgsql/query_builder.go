package pgsql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
)

// documentSchema describes how the JSON fields of one document table can be queried.
// fields maps a JSON field name to the SQL expression used for equality filters, ranges and sorting.
type documentSchema struct {
	table       string
	fields      map[string]string
	search      []string
	defaultSort string
}

// commonFields are available on every document table.
var commonFields = map[string]string{
	"id":        "id",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func textField(name string) string {
	return fmt.Sprintf("doc->>'%s'", name)
}

func timeField(name string) string {
	return fmt.Sprintf("(doc->>'%s')::timestamptz", name)
}

func (s documentSchema) expr(field string) (string, bool) {
	if e, ok := s.fields[field]; ok {
		return e, true
	}
	e, ok := commonFields[field]
	return e, ok
}

type whereBuilder struct {
	clauses []string
	args    []any
}

// add appends a clause. format receives the placeholder number of arg via %[1]d.
func (w *whereBuilder) add(format string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(format, len(w.args)))
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (s documentSchema) applyFilter(w *whereBuilder, filter domain.Filter) error {
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e, ok := s.expr(k)
		if !ok {
			return apperrors.Validationf("unknown filter field %q", k)
		}
		w.add(e+" = $%[1]d", filter[k])
	}
	return nil
}

// buildWhere turns the filter, search and range parts of q into a WHERE clause and its arguments.
func (s documentSchema) buildWhere(q domain.ListQuery) (string, []any, error) {
	w := &whereBuilder{}
	if err := s.applyFilter(w, q.Filter); err != nil {
		return "", nil, err
	}

	if search := strings.TrimSpace(q.Search); search != "" && len(s.search) > 0 {
		parts := make([]string, len(s.search))
		for i, e := range s.search {
			parts[i] = e + " ILIKE $%[1]d"
		}
		w.add("("+strings.Join(parts, " OR ")+")", "%"+escapeLike(search)+"%")
	}

	if q.Range != nil {
		e, ok := s.expr(q.Range.Field)
		if !ok {
			return "", nil, apperrors.Validationf("unknown range field %q", q.Range.Field)
		}
		if !q.Range.From.IsZero() {
			w.add(e+" >= $%[1]d", q.Range.From)
		}
		if !q.Range.To.IsZero() {
			w.add(e+" <= $%[1]d", q.Range.To)
		}
	}
	return w.sql(), w.args, nil
}

// buildOrder renders q.Sort, falling back to the schema default.
func (s documentSchema) buildOrder(keys []domain.SortKey) (string, error) {
	if len(keys) == 0 {
		return " ORDER BY " + s.defaultSort, nil
	}
	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		e, ok := s.expr(k.Field)
		if !ok {
			return "", apperrors.Validationf("unknown sort field %q", k.Field)
		}
		dir := "ASC"
		if k.Desc {
			dir = "DESC"
		}
		parts = append(parts, e+" "+dir)
	}
	parts = append(parts, "id ASC")
	return " ORDER BY " + strings.Join(parts, ", "), nil
}
