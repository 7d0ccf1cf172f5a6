package tenancy

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type record struct {
	ID       string
	TenantID string
}

func (r record) GetID() string       { return r.ID }
func (r record) GetTenantID() string { return r.TenantID }

type TenancyTestSuite struct {
	suite.Suite
}

func TestTenancy(t *testing.T) {
	suite.Run(t, new(TenancyTestSuite))
}

func (s *TenancyTestSuite) TestRequireTenantID() {
	s.NoError(RequireTenantID("tenant1"))
	s.ErrorIs(RequireTenantID(""), ErrMissingTenantContext)
	s.ErrorIs(RequireTenantID("   "), ErrMissingTenantContext)
}

func (s *TenancyTestSuite) TestFilterByTenant_OnlyReturnsOwnRecords() {
	records := []record{
		{ID: "a", TenantID: "tenant1"},
		{ID: "b", TenantID: "tenant2"},
		{ID: "c", TenantID: "tenant1"},
	}

	filtered := FilterByTenant(records, "tenant1")

	s.Len(filtered, 2)
	s.Equal("a", filtered[0].ID)
	s.Equal("c", filtered[1].ID)
}

func (s *TenancyTestSuite) TestFilterByTenant_UnknownTenantIsEmpty() {
	records := []record{{ID: "a", TenantID: "tenant1"}}
	s.Empty(FilterByTenant(records, "tenant9"))
}

func (s *TenancyTestSuite) TestFindByIDAndTenant() {
	records := []record{
		{ID: "a", TenantID: "tenant1"},
		{ID: "b", TenantID: "tenant2"},
	}

	found, ok := FindByIDAndTenant(records, "a", "tenant1")
	s.True(ok)
	s.Equal("a", found.ID)

	// A record owned by another tenant behaves exactly like a missing record.
	_, ok = FindByIDAndTenant(records, "b", "tenant1")
	s.False(ok)

	_, ok = FindByIDAndTenant(records, "missing", "tenant1")
	s.False(ok)
}

func (s *TenancyTestSuite) TestFindByIDAndTenant_SameIDUnderTwoTenants() {
	records := []record{
		{ID: "1", TenantID: "hotel-a"},
		{ID: "1", TenantID: "hotel-b"},
	}

	found, ok := FindByIDAndTenant(records, "1", "hotel-a")
	s.True(ok)
	s.Equal("hotel-a", found.TenantID)

	found, ok = FindByIDAndTenant(records, "1", "hotel-b")
	s.True(ok)
	s.Equal("hotel-b", found.TenantID)

	_, ok = FindByIDAndTenant(records, "1", "hotel-c")
	s.False(ok)
}

func (s *TenancyTestSuite) TestPaginate() {
	items := make([]record, 25)
	for i := range items {
		items[i] = record{ID: string(rune('a' + i)), TenantID: "tenant1"}
	}

	page := Paginate(items, 2, 10)

	s.Equal(int64(25), page.Total)
	s.Equal(2, page.Page)
	s.Equal(10, page.PageSize)
	s.Equal(3, page.TotalPages)
	s.Len(page.Items, 10)
	s.Equal(items[10].ID, page.Items[0].ID)
}

func (s *TenancyTestSuite) TestPaginate_Defaults() {
	items := []record{{ID: "a"}, {ID: "b"}}

	page := Paginate(items, 0, 0)

	s.Equal(DefaultPage, page.Page)
	s.Equal(DefaultPageSize, page.PageSize)
	s.Equal(int64(2), page.Total)
	s.Equal(1, page.TotalPages)
	s.Len(page.Items, 2)
}

func (s *TenancyTestSuite) TestPaginate_PastEndIsEmpty() {
	items := []record{{ID: "a"}}

	page := Paginate(items, 5, 10)

	s.Empty(page.Items)
	s.Equal(int64(1), page.Total)
}
