//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Package ports defines the contracts between use cases and adapters.
package ports

//counterfeiter:generate -o ../mocks/post_source.go . PostSource

import (
	"context"

	"github.com/architeacher/datatable/internal/domain/model"
)

type (
	// RecordSource serves one page of a table for a query descriptor.
	// Implementations either push the query down (SQL) or fetch the full set and
	// run it through the in-memory pipeline.
	RecordSource[T any] interface {
		Fetch(ctx context.Context, query model.Query) (model.Page[T], error)
	}

	// PostSource is the concrete source for the posts table.
	PostSource interface {
		RecordSource[model.Post]
	}

	// RecordLoader returns every record of a table, unfiltered.
	RecordLoader[T any] interface {
		LoadAll(ctx context.Context) ([]T, error)
	}

	// Pinger is implemented by sources with a reachable backend.
	Pinger interface {
		Ping(ctx context.Context) error
	}
)
