package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name             string
		page, limit      int
		total, wantPages int
	}{
		{"exact fit", 1, 10, 20, 2},
		{"partial last page", 2, 10, 25, 3},
		{"single item", 1, 20, 1, 1},
		{"empty", 1, 20, 0, 0},
		{"limit larger than total", 1, 100, 7, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.limit, p.Limit)
			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.wantPages, p.Pages)
		})
	}
}
