package model

// Page is the result of one query: the visible slice plus totals over the filtered set.
type Page[T any] struct {
	Items    []T  `json:"items"`
	Total    int  `json:"total"`
	HasMore  bool `json:"has_more"`
	Number   int  `json:"page"`
	PageSize int  `json:"page_size"`
}

type Pagination struct {
	Page        int  `json:"page"`
	Size        int  `json:"size"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// TotalPages rounds up; zero items means zero pages.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}

	return (total + pageSize - 1) / pageSize
}

func (p Page[T]) Pagination() Pagination {
	return Pagination{
		Page:        p.Number,
		Size:        p.PageSize,
		TotalItems:  p.Total,
		TotalPages:  TotalPages(p.Total, p.PageSize),
		HasNext:     p.HasMore,
		HasPrevious: p.Number > 1,
	}
}
