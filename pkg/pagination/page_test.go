package pagination_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

func TestLimits_Resolve(t *testing.T) {
	limits := pagination.DefaultLimits()

	tests := []struct {
		name    string
		req     pagination.Request
		want    pagination.Request
		wantErr bool
	}{
		{"zero size uses default", pagination.Request{Page: 0}, pagination.Request{Page: 0, Size: 20}, false},
		{"max size accepted", pagination.Request{Page: 3, Size: 100}, pagination.Request{Page: 3, Size: 100}, false},
		{"negative page", pagination.Request{Page: -1, Size: 10}, pagination.Request{}, true},
		{"negative size", pagination.Request{Page: 0, Size: -5}, pagination.Request{}, true},
		{"oversized page is rejected, not clamped", pagination.Request{Page: 0, Size: 101}, pagination.Request{}, true},
		{"offset overflow", pagination.Request{Page: math.MaxInt/64 + 1, Size: 64}, pagination.Request{}, true},
		{"largest page for size", pagination.Request{Page: math.MaxInt / 64, Size: 64}, pagination.Request{Page: math.MaxInt / 64, Size: 64}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := limits.Resolve(tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsBadRequest(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPage(t *testing.T) {
	req := pagination.Request{Page: 1, Size: 10}
	assert.Equal(t, 10, req.Offset())

	page := pagination.NewPage([]string{"a", "b"}, req, 12)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, int64(12), page.TotalItems)
	assert.Equal(t, 1, page.Page)

	empty := pagination.NewPage[string](nil, pagination.Request{Size: 10}, 0)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestMap(t *testing.T) {
	page := pagination.NewPage([]int{1, 2, 3}, pagination.Request{Size: 3}, 7)
	mapped := pagination.Map(page, func(i int) string { return string(rune('a' + i - 1)) })

	assert.Equal(t, []string{"a", "b", "c"}, mapped.Items)
	assert.Equal(t, 3, mapped.TotalPages)
}
