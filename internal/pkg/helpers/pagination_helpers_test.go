package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset uint64
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "third page", page: 3, size: 25, wantOffset: 50, wantLimit: 25},
		{name: "zero page falls back to first", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "negative size gets default", page: 2, size: -5, wantOffset: 10, wantLimit: DefaultPageSize},
		{name: "oversized page size gets default", page: 1, size: 500, wantOffset: 0, wantLimit: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("full pages", func(t *testing.T) {
		info := NewPaginationInfo(45, 2, 10)
		assert.Equal(t, 2, info.CurrentPage)
		assert.Equal(t, 5, info.TotalPages)
		assert.Equal(t, int64(45), info.TotalItems)
	})

	t.Run("empty result set keeps one page", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.TotalPages)
		assert.Equal(t, 1, info.CurrentPage)
	})

	t.Run("page past the end clamps", func(t *testing.T) {
		info := NewPaginationInfo(10, 9, 10)
		assert.Equal(t, 1, info.CurrentPage)
	})
}
