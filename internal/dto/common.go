package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/utils/pagination"
)

// ListParams are the paging and search query parameters shared by every listing.
type ListParams struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search string `form:"search"`
}

func (p ListParams) query(filter domain.Filter) domain.ListQuery {
	page, limit := pagination.Normalize(p.Page, p.Limit)
	return domain.ListQuery{Page: page, Limit: limit, Filter: filter, Search: strings.TrimSpace(p.Search)}
}

// filterOf builds an equality filter from key/value pairs, skipping empty values.
func filterOf(kv ...string) domain.Filter {
	f := domain.Filter{}
	for i := 0; i+1 < len(kv); i += 2 {
		if v := strings.TrimSpace(kv[i+1]); v != "" {
			f[kv[i]] = v
		}
	}
	return f
}

// ListResponse is the body of every paginated listing.
type ListResponse[T any] struct {
	Items      []T             `json:"items"`
	Pagination pagination.Meta `json:"pagination"`
}

// ToListResponse converts a page of results into its response shape.
func ToListResponse[T any](p *domain.Page[T]) ListResponse[T] {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Pagination: pagination.NewMeta(p.Page, p.Limit, p.Total)}
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusUpdateRequest moves a document to a new workflow status.
type StatusUpdateRequest struct {
	Status        string `json:"status" binding:"required"`
	ApprovalNotes string `json:"approvalNotes"`
}

const dateLayout = "2006-01-02"

var errEndBeforeStart = errors.New("end date is before start date")

func invalid(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}

// Date accepts either an RFC 3339 timestamp or a plain YYYY-MM-DD date.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}

// ParseDate parses an RFC 3339 timestamp or a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}

func timePtr(d *Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
