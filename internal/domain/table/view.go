package table

import (
	"fmt"

	"github.com/architeacher/datatable/internal/domain/model"
)

// View is a consistent snapshot of a table: its state, the last settled
// result and whether a newer fetch is still outstanding.
type View[T any] struct {
	State       State  `json:"state"`
	Items       []T    `json:"items"`
	Total       int    `json:"total"`
	HasMore     bool   `json:"has_more"`
	TotalPages  int    `json:"total_pages"`
	Loading     bool   `json:"loading"`
	Failed      bool   `json:"failed"`
	Error       string `json:"error,omitempty"`
	CanPrevious bool   `json:"can_previous"`
	CanNext     bool   `json:"can_next"`
	Sequence    uint64 `json:"sequence"`
	// Settled is the sequence of the fetch whose result Items reflect.
	Settled uint64 `json:"settled"`
}

// Caption renders the pager label, e.g. "Page 2 of 10".
func (v View[T]) Caption() string {
	return fmt.Sprintf("Page %d of %d", v.State.Page, v.TotalPages)
}

func (v View[T]) Pagination() model.Pagination {
	return model.Pagination{
		Page:        v.State.Page,
		Size:        v.State.PageSize,
		TotalItems:  v.Total,
		TotalPages:  v.TotalPages,
		HasNext:     v.CanNext,
		HasPrevious: v.CanPrevious,
	}
}
