package schema

import "math"

const (
	DefaultPageLimit = 25
	MaxPageLimit     = 100

	// MaxPageNumber keeps Skip and Paginate within int64 at any limit
	MaxPageNumber = math.MaxInt64/MaxPageLimit - 1
)

// Page selects a window of a listing, 1-based
type Page struct {
	Number int64
	Limit  int64
}

// Normalize clamps the page into the accepted range
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Number > MaxPageNumber {
		p.Number = MaxPageNumber
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Skip returns the number of documents before the page
func (p Page) Skip() int64 {
	return (p.Number - 1) * p.Limit
}

type PageRef struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// Paginate links the neighbours of p given the total number of documents
func Paginate(p Page, total int64) Pagination {
	var pg Pagination
	if p.Number < MaxPageNumber && p.Number*p.Limit < total {
		pg.Next = &PageRef{Page: p.Number + 1, Limit: p.Limit}
	}
	if p.Number > 1 {
		pg.Prev = &PageRef{Page: p.Number - 1, Limit: p.Limit}
	}
	return pg
}
