// Generic list-query pipeline: search, sort, project, paginate.
// Pure logic with no Gin/Mongo dependency; every list endpoint
// (users, products, purchases) runs through the same code with only
// the field extractors varying per resource.
package core

import (
	"fmt"
	"sort"
	"strings"
)

// Sort directions accepted in a list query. Anything that is not "asc"
// sorts descending.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// QueryRequest is an immutable bundle of list-query parameters. Handlers
// construct one per request and pass it down by value; nothing here is
// shared process-wide.
type QueryRequest struct {
	Search    string
	SortField string
	SortOrder string

	// PageNumber and PageSize are pointers so "absent" is distinguishable
	// from zero. Both absent means fetch everything, unpaginated.
	PageNumber *int
	PageSize   *int
}

// Paginated reports whether the request asks for a page slice.
// Either value missing means unpaginated mode.
func (r QueryRequest) Paginated() bool {
	return r.PageNumber != nil && r.PageSize != nil
}

// QueryResult is the response envelope for list endpoints.
// Count and TotalPages describe the full unfiltered collection, not the
// filtered subset; that is the documented policy for every resource.
type QueryResult[P any] struct {
	PageNumber      *int `json:"page_number"`
	PageSize        *int `json:"page_size"`
	Count           int  `json:"count"`
	TotalPages      int  `json:"total_pages"`
	HasPreviousPage bool `json:"has_previous_page"`
	HasNextPage     bool `json:"has_next_page"`
	Data            []P  `json:"data"`
}

// FieldExtractor returns the searchable text fields of a record, in the
// resource's own order. An empty string never matches a search term.
type FieldExtractor[T any] func(T) []string

// SortKeyExtractor returns the value of the named sort field on a record,
// or "" when the record has no such field.
type SortKeyExtractor[T any] func(record T, field string) string

// Projector maps a record to its public response shape, dropping
// internal-only fields such as password hashes.
type Projector[T, P any] func(T) P

// RunQuery filters, sorts, projects and paginates records per req.
//
// Rules preserved from the resource services this generalizes:
//   - search is lower-cased and matched as a substring of any searchable field
//   - sort compares lower-cased values; missing field sorts as ""
//   - ties keep their input order (stable sort)
//   - count/total_pages reflect the unfiltered collection
//   - an out-of-range page yields an empty data slice, never an error
//
// page_size of 0 in paginated mode is rejected as ErrValidation instead of
// dividing by zero.
func RunQuery[T, P any](
	records []T,
	req QueryRequest,
	fields FieldExtractor[T],
	sortKey SortKeyExtractor[T],
	project Projector[T, P],
) (*QueryResult[P], error) {
	if req.Paginated() && *req.PageSize <= 0 {
		return nil, fmt.Errorf("%w: page_size must be a positive integer", ErrValidation)
	}

	// Search: keep records where any searchable field contains the term.
	searchString := strings.ToLower(req.Search)
	filtered := records
	if searchString != "" {
		filtered = make([]T, 0, len(records))
		for _, rec := range records {
			for _, f := range fields(rec) {
				if f != "" && strings.Contains(strings.ToLower(f), searchString) {
					filtered = append(filtered, rec)
					break
				}
			}
		}
	}

	// Sort: stable so equal keys keep their relative input order.
	// Work on a copy so the caller's slice is left alone.
	sorted := make([]T, len(filtered))
	copy(sorted, filtered)
	asc := req.SortOrder == SortAsc
	sort.SliceStable(sorted, func(i, j int) bool {
		a := strings.ToLower(sortKey(sorted[i], req.SortField))
		b := strings.ToLower(sortKey(sorted[j], req.SortField))
		if asc {
			return a < b
		}
		return a > b
	})

	// Project to the public field subset.
	projected := make([]P, len(sorted))
	for i, rec := range sorted {
		projected[i] = project(rec)
	}

	count := len(records)
	res := &QueryResult[P]{
		PageNumber: req.PageNumber,
		PageSize:   req.PageSize,
		Count:      count,
		Data:       projected,
	}

	if !req.Paginated() {
		return res, nil
	}

	page, size := *req.PageNumber, *req.PageSize
	res.TotalPages = (count + size - 1) / size // ceil(count/size)
	res.HasPreviousPage = page > 1
	res.HasNextPage = page < res.TotalPages

	// page_number <= 0 is not an error; the offset just clamps to the start.
	offset := (page - 1) * size
	if offset < 0 {
		offset = 0
	}
	if offset >= len(projected) {
		res.Data = []P{}
		return res, nil
	}
	end := offset + size
	if end > len(projected) {
		end = len(projected)
	}
	res.Data = projected[offset:end]
	return res, nil
}
