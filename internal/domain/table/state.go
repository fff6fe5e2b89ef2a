// Package table holds the interactive state of one data table and the
// transitions user intents drive through it.
package table

import (
	"github.com/architeacher/datatable/internal/domain/model"
)

type (
	// PendingFilters are edits not yet applied; they never reach a query.
	PendingFilters model.FilterSet

	// AppliedFilters are the clauses every query is built from.
	AppliedFilters model.FilterSet

	State struct {
		Page          int                 `json:"page"`
		PageSize      int                 `json:"page_size"`
		SortField     string              `json:"sort_field,omitempty"`
		SortDirection model.SortDirection `json:"sort_direction"`
		Applied       AppliedFilters      `json:"applied_filters"`
		Pending       PendingFilters      `json:"pending_filters"`
	}
)

func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}

	return State{
		Page:          model.DefaultPage,
		PageSize:      pageSize,
		SortDirection: model.SortAsc,
		Applied:       AppliedFilters{},
		Pending:       PendingFilters{},
	}
}

// Query builds the descriptor for the current state from the applied filters only.
func (s State) Query() model.Query {
	return model.Query{
		Page:          s.Page,
		PageSize:      s.PageSize,
		SortField:     s.SortField,
		SortDirection: s.SortDirection,
		Filters:       model.FilterSet(s.Applied).Clone(),
	}.Normalized()
}

// PendingClause is the clause the filter editor for field shows.
func (s State) PendingClause(field string) model.FilterClause {
	if clause, ok := s.Pending[field]; ok {
		return clause
	}

	return model.DefaultFilterClause()
}

func (s State) clone() State {
	s.Applied = AppliedFilters(model.FilterSet(s.Applied).Clone())
	s.Pending = PendingFilters(model.FilterSet(s.Pending).Clone())

	return s
}

// Sort flips the direction when field is already the sort field, otherwise sorts
// ascending by field. The page is kept.
func (s State) Sort(field string) State {
	next := s.clone()

	if next.SortField == field {
		next.SortDirection = next.SortDirection.Flip()

		return next
	}

	next.SortField = field
	next.SortDirection = model.SortAsc

	return next
}

func (s State) EditFilter(field string, clause model.FilterClause) State {
	next := s.clone()
	next.Pending[field] = clause.Normalized()

	return next
}

// ApplyFilter promotes the pending clause for field. A clause that constrains
// nothing clears the field instead.
func (s State) ApplyFilter(field string) State {
	clause := s.PendingClause(field)
	if !clause.Applicable() {
		return s.ClearFilter(field)
	}

	next := s.clone()
	next.Applied[field] = clause
	next.Page = model.DefaultPage

	return next
}

func (s State) ClearFilter(field string) State {
	next := s.clone()
	delete(next.Applied, field)
	delete(next.Pending, field)
	next.Page = model.DefaultPage

	return next
}

func (s State) ChangePage(page int) State {
	next := s.clone()
	next.Page = max(page, model.DefaultPage)

	return next
}

func (s State) ChangePageSize(size int) State {
	next := s.clone()
	next.PageSize = size
	next.Page = model.DefaultPage

	return next
}

// RequiresFetch reports whether moving from s to next changes the query descriptor.
func (s State) RequiresFetch(next State) bool {
	return s.Page != next.Page ||
		s.PageSize != next.PageSize ||
		s.SortField != next.SortField ||
		s.SortDirection != next.SortDirection ||
		!model.FilterSet(s.Applied).Equal(model.FilterSet(next.Applied))
}
