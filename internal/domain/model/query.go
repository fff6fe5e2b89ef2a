package model

import (
	"fmt"
	"math"
	"strings"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"

	DefaultPage     = 1
	DefaultPageSize = 10

	// MaxPage bounds the page number the HTTP surface accepts.
	MaxPage = 1_000_000_000
)

// Query is the descriptor one pipeline run consumes.
type Query struct {
	Page          int           `json:"page"`
	PageSize      int           `json:"page_size"`
	SortField     string        `json:"sort_field,omitempty"`
	SortDirection SortDirection `json:"sort_direction"`
	Filters       FilterSet     `json:"filters,omitempty"`
}

func ParseSortDirection(s string) (SortDirection, bool) {
	switch SortDirection(strings.ToLower(s)) {
	case SortAsc, "":
		return SortAsc, true
	case SortDesc:
		return SortDesc, true
	default:
		return "", false
	}
}

func (d SortDirection) Flip() SortDirection {
	if d == SortDesc {
		return SortAsc
	}

	return SortDesc
}

func (q Query) HasSort() bool { return q.SortField != "" }

// Offset is the index of the first item on the page, never negative. It
// saturates at math.MaxInt instead of overflowing.
func (q Query) Offset() int {
	return PageOffset(q.Page, q.PageSize)
}

// HasMore reports whether total items extend past the page.
func (q Query) HasMore(total int) bool {
	return PageHasMore(q.Page, q.PageSize, total)
}

func PageOffset(page, pageSize int) int {
	skipped := max(page, 1) - 1
	if pageSize <= 0 || skipped == 0 {
		return 0
	}

	if skipped > math.MaxInt/pageSize {
		return math.MaxInt
	}

	return skipped * pageSize
}

// PageHasMore is page*pageSize < total, evaluated without multiplying.
func PageHasMore(page, pageSize, total int) bool {
	if pageSize <= 0 || total <= 0 {
		return false
	}

	return max(page, 1)-1 < (total-1)/pageSize
}

// Normalized clamps page to at least 1 and fills in defaults.
func (q Query) Normalized() Query {
	q.Page = max(q.Page, DefaultPage)

	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}

	if q.SortDirection != SortDesc {
		q.SortDirection = SortAsc
	}

	normalized := make(FilterSet, len(q.Filters))
	for field, clause := range q.Filters {
		normalized[field] = clause.Normalized()
	}

	q.Filters = normalized

	return q
}

// CanonicalString is stable for equal descriptors and is used to derive cache keys.
func (q Query) CanonicalString() string {
	var b strings.Builder

	fmt.Fprintf(&b, "page=%d;size=%d;sort=%s;dir=%s", q.Page, q.PageSize, q.SortField, q.SortDirection)

	for _, field := range q.Filters.Fields() {
		c := q.Filters[field]
		fmt.Fprintf(&b, ";f[%s]=%s:%q:%s:%s:%q", field, c.Type1, c.Value1, c.Operator, c.Type2, c.Value2)
	}

	return b.String()
}

type QueryBuilder struct {
	query Query
}

func NewQuery() *QueryBuilder {
	return &QueryBuilder{
		query: Query{
			Page:          DefaultPage,
			PageSize:      DefaultPageSize,
			SortDirection: SortAsc,
			Filters:       FilterSet{},
		},
	}
}

func (b *QueryBuilder) Paginate(page, size int) *QueryBuilder {
	b.query.Page = page
	b.query.PageSize = size

	return b
}

// OrderBy takes "title" for ascending or "-title" for descending.
func (b *QueryBuilder) OrderBy(field string) *QueryBuilder {
	direction := SortAsc

	if strings.HasPrefix(field, "-") {
		direction = SortDesc
		field = field[1:]
	}

	b.query.SortField = field
	b.query.SortDirection = direction

	return b
}

func (b *QueryBuilder) Where(field string, clause FilterClause) *QueryBuilder {
	b.query.Filters[field] = clause

	return b
}

// WhereLeg filters with a single leg; the second leg is a no-op contains "".
func (b *QueryBuilder) WhereLeg(field string, comparison ComparisonType, value string) *QueryBuilder {
	clause := DefaultFilterClause()
	clause.Type1 = comparison
	clause.Value1 = value

	return b.Where(field, clause)
}

func (b *QueryBuilder) Build() Query {
	q := b.query
	q.Filters = q.Filters.Clone()

	return q.Normalized()
}
