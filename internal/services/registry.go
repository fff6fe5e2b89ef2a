package services

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/ports"
)

type (
	// Table binds a schema to the source that serves its records.
	Table struct {
		Schema *model.Schema[model.Post]
		Source ports.PostSource
	}

	TableRegistry struct {
		mu     sync.RWMutex
		tables map[string]Table
	}
)

func NewTableRegistry() *TableRegistry {
	return &TableRegistry{tables: make(map[string]Table)}
}

// Register adds a table under its schema name; names are unique.
func (r *TableRegistry) Register(schema *model.Schema[model.Post], source ports.PostSource) error {
	if schema == nil || source == nil {
		return fmt.Errorf("table needs both a schema and a source")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tables[schema.Name()]; exists {
		return fmt.Errorf("table %q already registered", schema.Name())
	}

	r.tables[schema.Name()] = Table{Schema: schema, Source: source}

	return nil
}

func (r *TableRegistry) Lookup(name string) (Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[name]
	if !ok {
		return Table{}, fmt.Errorf("%w: %q", model.ErrUnknownTable, name)
	}

	return t, nil
}

func (r *TableRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.tables))
}
