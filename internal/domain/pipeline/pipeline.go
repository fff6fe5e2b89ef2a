// Package pipeline runs a query descriptor over an in-memory record set:
// filter, then stable sort, then paginate. Every function here is pure.
package pipeline

import (
	"slices"

	"github.com/architeacher/datatable/internal/domain/model"
)

// Execute returns the requested page together with the filtered total.
func Execute[T any](records []T, schema *model.Schema[T], query model.Query) model.Page[T] {
	query = query.Normalized()

	return Paginate(Arrange(records, schema, query), query.Page, query.PageSize)
}

// Arrange applies the filter and sort steps without paginating.
func Arrange[T any](records []T, schema *model.Schema[T], query model.Query) []T {
	filtered := Filter(records, schema, query.Filters)

	if !query.HasSort() {
		return filtered
	}

	return Sort(filtered, schema, query.SortField, query.SortDirection)
}

// Filter keeps a record when every clause in filters matches it. The input is never modified.
func Filter[T any](records []T, schema *model.Schema[T], filters model.FilterSet) []T {
	if len(filters) == 0 {
		return slices.Clone(records)
	}

	spec := filters.Specification()
	kept := make([]T, 0, len(records))

	for _, record := range records {
		if spec.IsSatisfiedBy(schema.Lookup(record)) {
			kept = append(kept, record)
		}
	}

	return kept
}

// Sort orders records stably by field. An unknown field leaves the order unchanged.
func Sort[T any](records []T, schema *model.Schema[T], field string, direction model.SortDirection) []T {
	sorted := slices.Clone(records)

	f, ok := schema.Field(field)
	if !ok {
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b T) int {
		cmp := f.Accessor(a).Compare(f.Accessor(b))
		if direction == model.SortDesc {
			return -cmp
		}

		return cmp
	})

	return sorted
}

// Paginate slices records to the requested page; out of range pages are empty.
func Paginate[T any](records []T, page, pageSize int) model.Page[T] {
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}

	total := len(records)
	start := model.PageOffset(page, pageSize)

	items := make([]T, 0)
	if start < total {
		end := start + min(pageSize, total-start)
		items = append(items, records[start:end]...)
	}

	return model.Page[T]{
		Items:    items,
		Total:    total,
		HasMore:  model.PageHasMore(page, pageSize, total),
		Number:   max(page, 1),
		PageSize: pageSize,
	}
}
