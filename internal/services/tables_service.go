package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/ports"
)

var _ ports.TableService = (*TablesService)(nil)

// TablesService answers one-shot descriptors without keeping any state.
type TablesService struct {
	registry *TableRegistry
	cfg      config.Table
}

func NewTablesService(registry *TableRegistry, cfg config.Table) *TablesService {
	return &TablesService{registry: registry, cfg: cfg}
}

func (s *TablesService) Tables(context.Context) ([]string, error) {
	return s.registry.Names(), nil
}

func (s *TablesService) Columns(_ context.Context, table string) ([]model.Column, error) {
	t, err := s.registry.Lookup(table)
	if err != nil {
		return nil, err
	}

	return t.Schema.Columns(), nil
}

func (s *TablesService) ListRecords(ctx context.Context, table string, query model.Query) (*model.Page[model.Post], error) {
	t, err := s.registry.Lookup(table)
	if err != nil {
		return nil, err
	}

	query = query.Normalized()

	if err := s.validate(t.Schema, query, true); err != nil {
		return nil, err
	}

	page, err := t.Source.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// ExportRecords renders up to the configured export limit of matching records.
func (s *TablesService) ExportRecords(ctx context.Context, table string, query model.Query) (*model.Export, error) {
	t, err := s.registry.Lookup(table)
	if err != nil {
		return nil, err
	}

	query.Page = model.DefaultPage
	query.PageSize = s.cfg.ExportLimit
	query = query.Normalized()

	if err := s.validate(t.Schema, query, false); err != nil {
		return nil, err
	}

	page, err := t.Source.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	export := &model.Export{
		Table:     table,
		Headers:   t.Schema.Labels(),
		Rows:      make([][]string, 0, len(page.Items)),
		Total:     page.Total,
		Truncated: page.Total > len(page.Items),
	}

	for _, record := range page.Items {
		export.Rows = append(export.Rows, t.Schema.Display(record))
	}

	return export, nil
}

func (s *TablesService) validate(schema *model.Schema[model.Post], query model.Query, checkPageSize bool) error {
	err := schema.Validate(query)

	if !checkPageSize || len(s.cfg.PageSizes) == 0 || slices.Contains(s.cfg.PageSizes, query.PageSize) {
		return err
	}

	var errs *model.ValidationErrors
	if !errors.As(err, &errs) {
		errs = model.NewValidationErrors()
	}

	errs.Add("size", fmt.Sprintf("%s: %d not in %v", model.ErrInvalidPageSize, query.PageSize, s.cfg.PageSizes), model.CodeInvalidPageSize)

	return errs
}
