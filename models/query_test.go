package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarKarl30/UTS-BackEnd-Prog/core"
)

func TestToQueryRequest_Defaults(t *testing.T) {
	req := ListQuery{}.ToQueryRequest("email")

	assert.Equal(t, "email", req.SortField)
	assert.Equal(t, core.SortAsc, req.SortOrder)
	assert.Nil(t, req.PageNumber)
	assert.Nil(t, req.PageSize)
	assert.False(t, req.Paginated())
}

func TestToQueryRequest_ExplicitValues(t *testing.T) {
	req := ListQuery{
		Search:     "amy",
		SortField:  "name",
		SortOrder:  "desc",
		PageNumber: "2",
		PageSize:   "10",
	}.ToQueryRequest("email")

	assert.Equal(t, "amy", req.Search)
	assert.Equal(t, "name", req.SortField)
	assert.Equal(t, "desc", req.SortOrder)
	require.True(t, req.Paginated())
	assert.Equal(t, 2, *req.PageNumber)
	assert.Equal(t, 10, *req.PageSize)
}

func TestToQueryRequest_NonNumericPaginationMeansUnpaginated(t *testing.T) {
	tests := []struct {
		name string
		num  string
		size string
	}{
		{"both absent", "", ""},
		{"size absent", "1", ""},
		{"number absent", "", "10"},
		{"non-numeric number", "abc", "10"},
		{"non-numeric size", "1", "xyz"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := ListQuery{PageNumber: tc.num, PageSize: tc.size}.ToQueryRequest("email")
			assert.False(t, req.Paginated())
		})
	}
}
