package domain

import (
	"time"
)

// AuditFields records who created and last touched a record.
type AuditFields struct {
	CreatedBy string `json:"createdBy,omitempty"` // UserID Reference
	UpdatedBy string `json:"updatedBy,omitempty"` // UserID Reference
}

// Document is the envelope every stored business record carries.
type Document struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta exposes the envelope to the generic repository.
func (d *Document) Meta() *Document { return d }

// Entity is implemented by pointers to records persisted through the document repository.
// NaturalKey returns the human-facing unique number (entry id, PO number...) or "" when the
// record has none.
type Entity interface {
	Meta() *Document
	NaturalKey() string
}

// Filter holds equality conditions keyed by JSON field name.
type Filter map[string]string

// SortKey orders a listing by a JSON field name.
type SortKey struct {
	Field string
	Desc  bool
}

// DateRange restricts a listing to From <= Field <= To.
type DateRange struct {
	Field string
	From  time.Time
	To    time.Time
}

// ListQuery describes a filtered, sorted, optionally paginated listing.
// A Limit of 0 returns every matching record.
type ListQuery struct {
	Page   int
	Limit  int
	Filter Filter
	Search string
	Range  *DateRange
	Sort   []SortKey
}

// Page is one page of a listing together with the total number of matches.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}
