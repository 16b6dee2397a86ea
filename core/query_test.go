package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contact is a stand-in record; the real pipeline runs over users,
// products and purchases with the same extractors pattern.
type contact struct {
	Name  string
	Email string
}

type publicContact struct {
	Name  string
	Email string
}

func contactFields(c contact) []string { return []string{c.Name, c.Email} }

func contactSortKey(c contact, field string) string {
	switch field {
	case "name":
		return c.Name
	case "email":
		return c.Email
	default:
		return ""
	}
}

func contactProject(c contact) publicContact {
	return publicContact{Name: c.Name, Email: c.Email}
}

func intPtr(n int) *int { return &n }

func runContacts(t *testing.T, records []contact, req QueryRequest) *QueryResult[publicContact] {
	t.Helper()
	res, err := RunQuery(records, req, contactFields, contactSortKey, contactProject)
	require.NoError(t, err)
	return res
}

func TestRunQuery_SortAscUnpaginated(t *testing.T) {
	// GIVEN an unsorted collection and no pagination
	records := []contact{
		{Name: "Bob", Email: "b@x.com"},
		{Name: "Amy", Email: "a@x.com"},
	}
	req := QueryRequest{SortField: "name", SortOrder: SortAsc}

	// WHEN
	res := runContacts(t, records, req)

	// THEN everything comes back, sorted
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Amy", res.Data[0].Name)
	assert.Equal(t, "Bob", res.Data[1].Name)
	assert.Equal(t, 2, res.Count)
	assert.Nil(t, res.PageNumber)
}

func TestRunQuery_FirstPage(t *testing.T) {
	records := []contact{
		{Name: "Bob", Email: "b@x.com"},
		{Name: "Amy", Email: "a@x.com"},
	}
	req := QueryRequest{
		SortField:  "name",
		SortOrder:  SortAsc,
		PageNumber: intPtr(1),
		PageSize:   intPtr(1),
	}

	res := runContacts(t, records, req)

	require.Len(t, res.Data, 1)
	assert.Equal(t, "Amy", res.Data[0].Name)
	assert.True(t, res.HasNextPage)
	assert.False(t, res.HasPreviousPage)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 2, res.TotalPages)
}

func TestRunQuery_SearchMatchesAnyField(t *testing.T) {
	records := []contact{
		{Name: "Amy", Email: "amy@corp.io"},
		{Name: "Bob", Email: "bob@corp.io"},
		{Name: "Carol", Email: "c@other.net"},
	}
	// upper-case term; matching is case-insensitive
	req := QueryRequest{Search: "CORP", SortField: "name", SortOrder: SortAsc}

	res := runContacts(t, records, req)

	// only records with "corp" in a searchable field survive
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Amy", res.Data[0].Name)
	assert.Equal(t, "Bob", res.Data[1].Name)
	// count stays the unfiltered collection size
	assert.Equal(t, 3, res.Count)
}

func TestRunQuery_SearchMissingFieldNeverMatches(t *testing.T) {
	records := []contact{
		{Name: "", Email: "a@x.com"}, // no name on this one
		{Name: "Ann", Email: "b@y.com"},
	}
	req := QueryRequest{Search: "ann", SortField: "name", SortOrder: SortAsc}

	res := runContacts(t, records, req)

	require.Len(t, res.Data, 1)
	assert.Equal(t, "Ann", res.Data[0].Name)
}

func TestRunQuery_PaginationPartitions(t *testing.T) {
	// GIVEN seven records and page size three
	records := []contact{
		{Name: "g"}, {Name: "c"}, {Name: "e"}, {Name: "a"},
		{Name: "f"}, {Name: "b"}, {Name: "d"},
	}

	// full sorted sequence, unpaginated
	full := runContacts(t, records, QueryRequest{SortField: "name", SortOrder: SortAsc})

	// WHEN concatenating consecutive pages
	var pages []publicContact
	for page := 1; page <= 3; page++ {
		res := runContacts(t, records, QueryRequest{
			SortField:  "name",
			SortOrder:  SortAsc,
			PageNumber: intPtr(page),
			PageSize:   intPtr(3),
		})
		pages = append(pages, res.Data...)
	}

	// THEN pages reassemble the full sequence: no gaps, no duplicates
	assert.Equal(t, full.Data, pages)
}

func TestRunQuery_SortStability(t *testing.T) {
	// equal sort keys must keep their input order
	records := []contact{
		{Name: "Amy", Email: "second@x.com"},
		{Name: "Amy", Email: "first@x.com"},
		{Name: "Amy", Email: "third@x.com"},
	}
	res := runContacts(t, records, QueryRequest{SortField: "name", SortOrder: SortAsc})

	require.Len(t, res.Data, 3)
	assert.Equal(t, "second@x.com", res.Data[0].Email)
	assert.Equal(t, "first@x.com", res.Data[1].Email)
	assert.Equal(t, "third@x.com", res.Data[2].Email)
}

func TestRunQuery_UnknownSortFieldKeepsInputOrder(t *testing.T) {
	// every record yields "" for an unknown field, so the stable sort
	// leaves the input order untouched
	records := []contact{{Name: "z"}, {Name: "a"}, {Name: "m"}}
	res := runContacts(t, records, QueryRequest{SortField: "nope", SortOrder: SortAsc})

	assert.Equal(t, "z", res.Data[0].Name)
	assert.Equal(t, "a", res.Data[1].Name)
	assert.Equal(t, "m", res.Data[2].Name)
}

func TestRunQuery_Descending(t *testing.T) {
	records := []contact{{Name: "a"}, {Name: "c"}, {Name: "b"}}
	// anything that is not "asc" sorts descending
	res := runContacts(t, records, QueryRequest{SortField: "name", SortOrder: "desc"})

	assert.Equal(t, "c", res.Data[0].Name)
	assert.Equal(t, "b", res.Data[1].Name)
	assert.Equal(t, "a", res.Data[2].Name)
}

func TestRunQuery_MissingSortFieldSortsFirstAsc(t *testing.T) {
	records := []contact{
		{Name: "Bea", Email: "b@x.com"},
		{Name: "", Email: "empty@x.com"},
	}
	res := runContacts(t, records, QueryRequest{SortField: "name", SortOrder: SortAsc})

	// empty string sorts before any name
	assert.Equal(t, "empty@x.com", res.Data[0].Email)
}

func TestRunQuery_PageSizeZeroRejected(t *testing.T) {
	records := []contact{{Name: "a"}}
	req := QueryRequest{
		SortField:  "name",
		SortOrder:  SortAsc,
		PageNumber: intPtr(1),
		PageSize:   intPtr(0),
	}

	_, err := RunQuery(records, req, contactFields, contactSortKey, contactProject)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRunQuery_PageNumberZeroClampsOffset(t *testing.T) {
	records := []contact{{Name: "a"}, {Name: "b"}}
	req := QueryRequest{
		SortField:  "name",
		SortOrder:  SortAsc,
		PageNumber: intPtr(0), // not rejected; offset clamps to 0
		PageSize:   intPtr(1),
	}

	res := runContacts(t, records, req)

	require.Len(t, res.Data, 1)
	assert.Equal(t, "a", res.Data[0].Name)
	assert.False(t, res.HasPreviousPage)
}

func TestRunQuery_OffsetPastEndIsEmpty(t *testing.T) {
	records := []contact{{Name: "a"}, {Name: "b"}}
	req := QueryRequest{
		SortField:  "name",
		SortOrder:  SortAsc,
		PageNumber: intPtr(9),
		PageSize:   intPtr(5),
	}

	res := runContacts(t, records, req)

	assert.Empty(t, res.Data)
	assert.False(t, res.HasNextPage)
}

func TestRunQuery_EmptyCollection(t *testing.T) {
	res := runContacts(t, nil, QueryRequest{
		SortField:  "name",
		SortOrder:  SortAsc,
		PageNumber: intPtr(1),
		PageSize:   intPtr(10),
	})

	assert.Empty(t, res.Data)
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, 0, res.TotalPages)
}
