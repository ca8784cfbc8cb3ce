package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name              string
		page, limit       int
		wantPage, wantLim int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative", -3, -1, 1, 10},
		{"kept", 4, 25, 4, 25},
		{"capped", 2, 1000, 2, MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := Normalize(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLim, limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 20, Offset(3, 10))
	assert.Equal(t, 0, Offset(5, 0))
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, Meta{CurrentPage: 1, TotalPage: 3, TotalItems: 21, PerPage: 10}, NewMeta(1, 10, 21))
	assert.Equal(t, Meta{CurrentPage: 1, TotalPage: 0, TotalItems: 0, PerPage: 10}, NewMeta(1, 10, 0))
	assert.Equal(t, Meta{CurrentPage: 2, TotalPage: 2, TotalItems: 20, PerPage: 10}, NewMeta(2, 10, 20))
}
