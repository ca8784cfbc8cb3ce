package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Meta is the pagination block returned with every listing.
type Meta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPage   int   `json:"totalPage"`
	TotalItems  int64 `json:"totalItems"`
	PerPage     int   `json:"perpage"`
}

// Normalize applies the defaults to page and limit and caps limit at MaxLimit.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Offset is the number of rows skipped before page. A zero limit means no paging.
func Offset(page, limit int) int {
	if limit <= 0 || page <= 1 {
		return 0
	}
	return (page - 1) * limit
}

// NewMeta builds the pagination block for a page of a listing with total matches.
func NewMeta(page, limit int, total int64) Meta {
	totalPage := 0
	if limit > 0 {
		totalPage = int((total + int64(limit) - 1) / int64(limit))
	}
	return Meta{
		CurrentPage: page,
		TotalPage:   totalPage,
		TotalItems:  total,
		PerPage:     limit,
	}
}
