package records

import (
	"context"
	"fmt"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/domain/pipeline"
	"github.com/architeacher/datatable/internal/ports"
)

// PipelineSource fetches the whole collection on every call and answers the
// query in memory.
type PipelineSource[T any] struct {
	schema *model.Schema[T]
	loader ports.RecordLoader[T]
}

func NewPipelineSource[T any](schema *model.Schema[T], loader ports.RecordLoader[T]) *PipelineSource[T] {
	return &PipelineSource[T]{schema: schema, loader: loader}
}

func (s *PipelineSource[T]) Fetch(ctx context.Context, query model.Query) (model.Page[T], error) {
	records, err := s.loader.LoadAll(ctx)
	if err != nil {
		return model.Page[T]{}, fmt.Errorf("loading %s: %w", s.schema.Name(), err)
	}

	return pipeline.Execute(records, s.schema, query), nil
}

// Ping reports the loader's reachability; loaders without a backend are always up.
func (s *PipelineSource[T]) Ping(ctx context.Context) error {
	if pinger, ok := s.loader.(ports.Pinger); ok {
		return pinger.Ping(ctx)
	}

	return nil
}
