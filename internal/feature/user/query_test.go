package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-dashboard/internal/domain"
)

func ids(us []domain.User) []int {
	out := make([]int, 0, len(us))
	for _, u := range us {
		out = append(out, u.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		search string
		status domain.StatusFilter
		want   []int
	}{
		{"empty search all status", "", domain.StatusAll, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"jo matches names and city", "jo", domain.StatusAll, []int{1, 3, 10}},
		{"case insensitive", "JO", domain.StatusAll, []int{1, 3, 10}},
		{"city substring", "san", domain.StatusAll, []int{7, 8, 10}},
		{"email domain with status", "example.com", domain.StatusFilter(domain.StatusPending), []int{4, 9}},
		{"status only", "", domain.StatusFilter(domain.StatusActive), []int{1, 2, 5, 6, 8, 10}},
		{"inactive", "", domain.StatusFilter(domain.StatusInactive), []int{3, 7}},
		{"search and status both required", "jo", domain.StatusFilter(domain.StatusActive), []int{1, 10}},
		{"phone is not searched", "555", domain.StatusAll, []int{}},
		{"state is not searched", "TX", domain.StatusAll, []int{}},
		{"no match", "zzz", domain.StatusAll, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(SampleUsers(), tt.search, tt.status)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_SubsequenceOfInput(t *testing.T) {
	all := SampleUsers()
	for _, term := range []string{"", "a", "e", "an", "son", "example"} {
		for _, st := range []domain.StatusFilter{domain.StatusAll, domain.StatusFilter(domain.StatusActive), domain.StatusFilter(domain.StatusInactive), domain.StatusFilter(domain.StatusPending)} {
			got := Filter(all, term, st)
			// 保持原顺序，且被排除的记录不应同时满足两个条件
			kept := map[int]bool{}
			last := 0
			for _, u := range got {
				assert.Greater(t, u.ID, last)
				last = u.ID
				kept[u.ID] = true
			}
			for _, u := range all {
				if !kept[u.ID] {
					assert.False(t, matchesSearch(u, term) && matchesStatus(u, st), "id %d excluded", u.ID)
				}
			}
		}
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name  string
		field domain.SortField
		dir   domain.Direction
		want  []int
	}{
		{"first name asc", domain.SortFirstName, domain.Asc, []int{10, 5, 8, 2, 1, 6, 9, 3, 7, 4}},
		{"first name desc", domain.SortFirstName, domain.Desc, []int{4, 7, 3, 9, 6, 1, 2, 8, 5, 10}},
		{"status asc keeps ties in input order", domain.SortStatus, domain.Asc, []int{1, 2, 5, 6, 8, 10, 3, 7, 4, 9}},
		{"status desc keeps ties in input order", domain.SortStatus, domain.Desc, []int{4, 9, 3, 7, 1, 2, 5, 6, 8, 10}},
		{"state asc", domain.SortState, domain.Asc, []int{5, 2, 8, 10, 3, 1, 6, 4, 7, 9}},
		{"state desc", domain.SortState, domain.Desc, []int{4, 7, 9, 6, 1, 3, 2, 8, 10, 5}},
		{"join date chronological", domain.SortJoinDate, domain.Asc, []int{1, 2, 3, 5, 6, 7, 8, 10, 9, 4}},
		{"last login compares text", domain.SortLastLogin, domain.Asc, []int{7, 3, 9, 4, 2, 6, 1, 8, 10, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Sort(SampleUsers(), tt.field, tt.dir)))
		})
	}
}

func TestSort_CaseSensitive(t *testing.T) {
	in := []domain.User{
		{ID: 1, FirstName: "alice"},
		{ID: 2, FirstName: "Bob"},
		{ID: 3, FirstName: "Alice"},
	}
	assert.Equal(t, []int{3, 2, 1}, ids(Sort(in, domain.SortFirstName, domain.Asc)))
}

func TestSort_ReverseWithoutTies(t *testing.T) {
	asc := Sort(SampleUsers(), domain.SortEmail, domain.Asc)
	desc := Sort(SampleUsers(), domain.SortEmail, domain.Desc)
	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := SampleUsers()
	_ = Sort(in, domain.SortLastName, domain.Desc)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(in))
}

func TestSort_UnknownFieldKeepsOrder(t *testing.T) {
	got := Sort(SampleUsers(), domain.SortField("id"), domain.Asc)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(got))
	assert.Empty(t, Sort(nil, domain.SortFirstName, domain.Asc))
}

func TestSort_SameDayJoinDatesTie(t *testing.T) {
	d := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	in := []domain.User{{ID: 1, JoinDate: d}, {ID: 2, JoinDate: d.AddDate(0, 0, -1)}, {ID: 3, JoinDate: d}}
	assert.Equal(t, []int{2, 1, 3}, ids(Sort(in, domain.SortJoinDate, domain.Asc)))
	assert.Equal(t, []int{1, 3, 2}, ids(Sort(in, domain.SortJoinDate, domain.Desc)))
}

func TestPaginate(t *testing.T) {
	all := SampleUsers()

	items, pages := Paginate(all, 1, 5)
	assert.Equal(t, 2, pages)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(items))

	items, _ = Paginate(all, 2, 5)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, ids(items))

	items, pages = Paginate(all[:2], 99, 5)
	assert.Equal(t, 1, pages)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items, pages = Paginate(nil, 1, 5)
	assert.Equal(t, 0, pages)
	assert.Empty(t, items)

	items, pages = Paginate(all, 0, 5)
	assert.Equal(t, 2, pages)
	assert.Empty(t, items)

	items, pages = Paginate(all, 1, 0)
	assert.Equal(t, 0, pages)
	assert.Empty(t, items)
}

func TestPaginate_ConcatenationRebuildsSequence(t *testing.T) {
	all := Sort(SampleUsers(), domain.SortCity, domain.Desc)
	for size := 1; size <= len(all)+1; size++ {
		_, pages := Paginate(all, 1, size)
		assert.Equal(t, (len(all)+size-1)/size, pages)

		var joined []domain.User
		for p := 1; p <= pages; p++ {
			items, _ := Paginate(all, p, size)
			assert.LessOrEqual(t, len(items), size)
			joined = append(joined, items...)
		}
		assert.Equal(t, ids(all), ids(joined), "size=%d", size)
	}
}

func TestQuery_ActiveByFirstName(t *testing.T) {
	q := domain.DefaultQueryState()
	q.Status = domain.StatusFilter(domain.StatusActive)

	r1 := Query(SampleUsers(), q)
	assert.Equal(t, 6, r1.TotalMatched)
	assert.Equal(t, 2, r1.TotalPages)
	assert.Equal(t, []int{10, 5, 8, 2, 1}, ids(r1.Items))

	q.Page = 2
	r2 := Query(SampleUsers(), q)
	assert.Equal(t, []int{6}, ids(r2.Items))
	assert.Equal(t, 2, r2.TotalPages)
}

func TestQuery_NoMatch(t *testing.T) {
	q := domain.DefaultQueryState()
	q.Search = "nobody"
	r := Query(SampleUsers(), q)
	assert.Equal(t, 0, r.TotalMatched)
	assert.Equal(t, 0, r.TotalPages)
	assert.Empty(t, r.Items)
}

func TestQuery_Idempotent(t *testing.T) {
	q := domain.QueryState{
		Search: "a", Status: domain.StatusAll, SortField: domain.SortStatus,
		SortDir: domain.Desc, Page: 2, PageSize: 3,
	}
	assert.Equal(t, Query(SampleUsers(), q), Query(SampleUsers(), q))
}

func TestToggleSort(t *testing.T) {
	q := domain.DefaultQueryState()

	q = ToggleSort(q, domain.SortFirstName)
	assert.Equal(t, domain.SortFirstName, q.SortField)
	assert.Equal(t, domain.Desc, q.SortDir)

	q = ToggleSort(q, domain.SortFirstName)
	assert.Equal(t, domain.Asc, q.SortDir)

	q.SortDir = domain.Desc
	q = ToggleSort(q, domain.SortEmail)
	assert.Equal(t, domain.SortEmail, q.SortField)
	assert.Equal(t, domain.Asc, q.SortDir)
}

func TestCacheKey_IgnoresPaging(t *testing.T) {
	a := domain.DefaultQueryState()
	b := a
	b.Page, b.PageSize = 7, 20
	assert.Equal(t, CacheKey(a), CacheKey(b))

	b.Search = "x"
	assert.NotEqual(t, CacheKey(a), CacheKey(b))
}
