package params

import (
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query      string
		wantLimit  int
		wantPage   int
		wantOffset int
	}{
		{"", 12, 1, 0},
		{"limit=6&page=2", 6, 2, 6},
		{"limit=0", 12, 1, 0},
		{"limit=500", 48, 1, 0},
		{"page=-3", 12, 1, 0},
		{"limit=abc&page=xyz", 12, 1, 0},
	}
	for _, tt := range tests {
		q, _ := url.ParseQuery(tt.query)
		p := ParsePagination(q)
		if p.Limit != tt.wantLimit || p.Page != tt.wantPage || p.Offset != tt.wantOffset {
			t.Fatalf("ParsePagination(%q) = %+v, want limit=%d page=%d offset=%d",
				tt.query, p, tt.wantLimit, tt.wantPage, tt.wantOffset)
		}
	}
}

func TestPage(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5}
	p := Pagination{Limit: 2, Page: 2, Offset: 2}
	got := Page(items, &p)
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Fatalf("Page() = %v, want [3 4]", got)
	}
	if p.Total != 5 || p.TotalPages != 3 || !p.HasNext || !p.HasPrev {
		t.Fatalf("meta = %+v", p)
	}

	p = Pagination{Limit: 2, Page: 9, Offset: 16}
	if got := Page(items, &p); len(got) != 0 || got == nil {
		t.Fatalf("Page() past the end = %#v, want empty non-nil", got)
	}
}

func TestParseSort(t *testing.T) {
	t.Parallel()

	q, _ := url.ParseQuery("sortBy=likes")
	s, err := ParseSort(q, "likes", "reviews_count")
	if err != nil {
		t.Fatalf("ParseSort() error = %v", err)
	}
	if s.By != "likes" || s.Order != "desc" {
		t.Fatalf("ParseSort() = %+v, want likes desc", s)
	}

	q, _ = url.ParseQuery("sortBy=reviews_count&order=ASC")
	if s, err = ParseSort(q, "likes", "reviews_count"); err != nil || s.Order != "asc" {
		t.Fatalf("ParseSort() = %+v, %v, want asc", s, err)
	}

	q, _ = url.ParseQuery("sortBy=price")
	if _, err = ParseSort(q, "likes"); err == nil {
		t.Fatalf("ParseSort(price) error = nil, want error")
	}

	q, _ = url.ParseQuery("sortBy=likes&order=sideways")
	if _, err = ParseSort(q, "likes"); err == nil {
		t.Fatalf("ParseSort(order=sideways) error = nil, want error")
	}

	if s, err = ParseSort(url.Values{}, "likes"); err != nil || s != (Sort{}) {
		t.Fatalf("ParseSort(empty) = %+v, %v", s, err)
	}
}
