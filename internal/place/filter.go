package place

import (
	"math"
	"strconv"
	"strings"

	"yellowbooks/internal/validation"
)

// CategoryAll is the category value that disables type filtering.
const CategoryAll = "all"

// Filter is the search predicate. It is one of MatchAll, TextFilter,
// CategoryFilter or TextAndCategory.
type Filter interface {
	isFilter()
}

// MatchAll matches every place.
type MatchAll struct{}

// TextFilter matches places whose name or description contains Text,
// ignoring case.
type TextFilter struct {
	Text string
}

// CategoryFilter matches places of a single type.
type CategoryFilter struct {
	Type Type
}

// TextAndCategory requires both the text and the type to match.
type TextAndCategory struct {
	Text string
	Type Type
}

func (MatchAll) isFilter()        {}
func (TextFilter) isFilter()      {}
func (CategoryFilter) isFilter()  {}
func (TextAndCategory) isFilter() {}

// NewFilter builds the predicate for a search. An empty category or "all"
// disables type filtering; any other unknown category is rejected.
func NewFilter(query, category string) (Filter, error) {
	text := strings.TrimSpace(query)
	category = strings.TrimSpace(category)

	if category == "" || category == CategoryAll {
		if text == "" {
			return MatchAll{}, nil
		}
		return TextFilter{Text: text}, nil
	}

	t := Type(category)
	if !t.Valid() {
		return nil, NewValidationError(validation.Var("type", category, "oneof=all restaurant hotel shop clinic service other"))
	}
	if text == "" {
		return CategoryFilter{Type: t}, nil
	}
	return TextAndCategory{Text: text, Type: t}, nil
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit within int range.
	MaxPage      = math.MaxInt32
)

// Page is a normalised page request.
type Page struct {
	Number int
	Limit  int
}

// NewPage coerces non-positive values to the defaults and caps the page
// number and limit.
func NewPage(number, limit int) Page {
	if number < 1 {
		number = DefaultPage
	}
	if number > MaxPage {
		number = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Number: number, Limit: limit}
}

// ParsePage reads page and limit from query string values; anything that is
// not a positive integer falls back to the default.
func ParsePage(number, limit string) Page {
	n, _ := strconv.Atoi(strings.TrimSpace(number))
	l, _ := strconv.Atoi(strings.TrimSpace(limit))
	return NewPage(n, l)
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Pagination is the page metadata returned alongside search results.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func NewPagination(p Page, total int) Pagination {
	return Pagination{
		Page:  p.Number,
		Limit: p.Limit,
		Total: total,
		Pages: (total + p.Limit - 1) / p.Limit,
	}
}

// SearchParams are the raw search inputs.
type SearchParams struct {
	Query    string
	Category string
	Page     int
	Limit    int
}

// SearchResult is one page of places plus pagination metadata.
type SearchResult struct {
	Items      []Place
	Pagination Pagination
}
