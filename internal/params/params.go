package params

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultLimit = 12
	maxLimit     = 48
)

// Pagination holds the requested page and the metadata computed once the
// total is known.
//
// /meals?page=2&limit=6 -> Pagination{Limit: 6, Page: 2, Offset: 6}
type Pagination struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	Page       int  `json:"page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ParsePagination parses ?limit=...&page=... falling back to defaults on bad input.
func ParsePagination(q url.Values) Pagination {
	p := Pagination{
		Limit: defaultLimit,
		Page:  1,
	}

	if limitStr := strings.TrimSpace(q.Get("limit")); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			switch {
			case limit <= 0:
				p.Limit = defaultLimit
			case limit > maxLimit:
				p.Limit = maxLimit
			default:
				p.Limit = limit
			}
		}
	}

	if pageStr := strings.TrimSpace(q.Get("page")); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = page
		}
	}

	p.Offset = (p.Page - 1) * p.Limit
	return p
}

// ComputeMeta updates pagination after the total count is known.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	if p.Limit > 0 {
		p.TotalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	p.HasPrev = p.Page > 1
	p.HasNext = (p.Page * p.Limit) < total
}

// Page returns the slice of items for p and fills in its metadata.
func Page[T any](items []T, p *Pagination) []T {
	p.ComputeMeta(len(items))
	if p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}

// Sort is an optional ?sortBy=...&order=... pair.
type Sort struct {
	By    string `json:"sortBy,omitempty"`
	Order string `json:"order,omitempty"`
}

// ParseSort accepts only the listed fields. An empty sortBy means no sorting;
// order defaults to desc.
func ParseSort(q url.Values, allowed ...string) (Sort, error) {
	by := strings.TrimSpace(q.Get("sortBy"))
	if by == "" {
		return Sort{}, nil
	}

	valid := false
	for _, a := range allowed {
		if by == a {
			valid = true
			break
		}
	}
	if !valid {
		return Sort{}, fmt.Errorf("cannot sort by %q", by)
	}

	order := strings.ToLower(strings.TrimSpace(q.Get("order")))
	switch order {
	case "":
		order = "desc"
	case "asc", "desc":
	default:
		return Sort{}, fmt.Errorf("invalid order %q", order)
	}
	return Sort{By: by, Order: order}, nil
}
