package ports

//counterfeiter:generate -o ../mocks/table_service.go . TableService
//counterfeiter:generate -o ../mocks/session_service.go . SessionService
//counterfeiter:generate -o ../mocks/records_cache.go . RecordsCache

import (
	"context"
	"time"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/domain/table"
)

type (
	// SessionRef addresses one session of one table.
	SessionRef struct {
		Table string
		ID    string
	}

	SessionView struct {
		ID    string `json:"id"`
		Table string `json:"table"`
		table.View[model.Post]
	}

	// TableService answers stateless queries against a registered table.
	TableService interface {
		// Tables lists the registered table names in lexical order.
		Tables(ctx context.Context) ([]string, error)
		Columns(ctx context.Context, table string) ([]model.Column, error)
		ListRecords(ctx context.Context, table string, query model.Query) (*model.Page[model.Post], error)
		// ExportRecords renders every matching record, ignoring the page of query.
		ExportRecords(ctx context.Context, table string, query model.Query) (*model.Export, error)
	}

	// SessionService drives server-side table sessions. With wait set, a
	// transition returns once its fetch settled; otherwise the view may still be loading.
	SessionService interface {
		CreateSession(ctx context.Context, table string, pageSize int, wait bool) (*SessionView, error)
		GetSession(ctx context.Context, ref SessionRef, wait bool) (*SessionView, error)
		Sort(ctx context.Context, ref SessionRef, field string, wait bool) (*SessionView, error)
		EditFilter(ctx context.Context, ref SessionRef, field string, clause model.FilterClause) (*SessionView, error)
		ApplyFilter(ctx context.Context, ref SessionRef, field string, wait bool) (*SessionView, error)
		ClearFilter(ctx context.Context, ref SessionRef, field string, wait bool) (*SessionView, error)
		ChangePage(ctx context.Context, ref SessionRef, page int, wait bool) (*SessionView, error)
		ChangePageSize(ctx context.Context, ref SessionRef, size int, wait bool) (*SessionView, error)
		Refresh(ctx context.Context, ref SessionRef, wait bool) (*SessionView, error)
		DeleteSession(ctx context.Context, ref SessionRef) error
	}

	// RecordsCache stores result pages per table and descriptor.
	RecordsCache interface {
		GetPage(ctx context.Context, table string, query model.Query) (*model.Page[model.Post], bool, error)
		SetPage(ctx context.Context, table string, query model.Query, page *model.Page[model.Post], ttl time.Duration) error
		InvalidateTable(ctx context.Context, table string) (int64, error)
		IsHealthy(ctx context.Context) bool
	}
)
