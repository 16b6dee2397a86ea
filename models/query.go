package models

import (
	"strconv"

	"github.com/MarKarl30/UTS-BackEnd-Prog/core"
)

// ListQuery is the raw query-string shape shared by every list endpoint.
// We keep it in models to share between handlers and services.
// page_number and page_size arrive as strings so "absent or non-numeric"
// can be treated as unpaginated mode instead of failing the bind.
type ListQuery struct {
	Search     string `form:"search"`
	SortField  string `form:"sortField"`
	SortOrder  string `form:"sortOrder"`
	PageNumber string `form:"page_number"`
	PageSize   string `form:"page_size"`
}

// ToQueryRequest converts the raw query strings into an immutable
// core.QueryRequest. defaultField is the resource's default sort field.
func (q ListQuery) ToQueryRequest(defaultField string) core.QueryRequest {
	req := core.QueryRequest{
		Search:    q.Search,
		SortField: q.SortField,
		SortOrder: q.SortOrder,
	}
	if req.SortField == "" {
		req.SortField = defaultField
	}
	if req.SortOrder == "" {
		req.SortOrder = core.SortAsc
	}

	// Both values must parse for pagination to kick in; anything else
	// means "return everything".
	if n, err := strconv.Atoi(q.PageNumber); err == nil {
		if s, err := strconv.Atoi(q.PageSize); err == nil {
			req.PageNumber = &n
			req.PageSize = &s
		}
	}
	return req
}
