package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		pageSize int
		want     Page
	}{
		{"defaults", 0, 0, Page{Page: 1, PageSize: 20}},
		{"negative values", -3, -1, Page{Page: 1, PageSize: 20}},
		{"passthrough", 4, 50, Page{Page: 4, PageSize: 50}},
		{"clamped to max", 1, 500, Page{Page: 1, PageSize: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePage(tc.page, tc.pageSize))
		})
	}
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, Page{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, Page{Page: 3, PageSize: 20}.Offset())
}
