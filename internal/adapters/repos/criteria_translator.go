package repos

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/pkg/logger"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type (
	// Column maps a schema field onto a SQL column. Text columns sort with the
	// "C" collation so SQL ordering agrees with the in-memory byte ordering.
	Column struct {
		Name string
		Text bool
	}

	// CriteriaTranslator renders a query descriptor as WHERE, ORDER BY and
	// LIMIT/OFFSET clauses with the same semantics as the in-memory pipeline.
	CriteriaTranslator struct {
		columns  map[string]Column
		tiebreak string
		logger   *logger.Logger
	}
)

func NewCriteriaTranslator(columns map[string]Column, tiebreak string, log *logger.Logger) *CriteriaTranslator {
	return &CriteriaTranslator{columns: columns, tiebreak: tiebreak, logger: log}
}

func (t *CriteriaTranslator) ApplyToSelect(builder sq.SelectBuilder, query model.Query) (sq.SelectBuilder, error) {
	builder, err := t.ApplyConditionsOnly(builder, query.Filters)
	if err != nil {
		return builder, err
	}

	builder, err = t.applySorting(builder, query)
	if err != nil {
		return builder, err
	}

	return builder.Limit(uint64(query.PageSize)).Offset(uint64(query.Offset())), nil
}

func (t *CriteriaTranslator) ApplyConditionsOnly(builder sq.SelectBuilder, filters model.FilterSet) (sq.SelectBuilder, error) {
	if len(filters) == 0 {
		return builder, nil
	}

	cond, err := t.translateSpec(filters.Specification())
	if err != nil {
		return builder, err
	}

	return builder.Where(cond), nil
}

func (t *CriteriaTranslator) translateSpec(spec model.Specification) (sq.Sqlizer, error) {
	switch spec.Operator() {
	case model.SpecOpMatchAll:
		return sq.Expr("TRUE"), nil

	case model.SpecOpCompare:
		return t.compare(spec)

	case model.SpecOpMust:
		conditions := make(sq.And, 0, len(spec.Children()))
		for _, child := range spec.Children() {
			cond, err := t.translateSpec(child)
			if err != nil {
				return nil, err
			}

			conditions = append(conditions, cond)
		}

		return conditions, nil

	case model.SpecOpShould:
		conditions := make(sq.Or, 0, len(spec.Children()))
		for _, child := range spec.Children() {
			cond, err := t.translateSpec(child)
			if err != nil {
				return nil, err
			}

			conditions = append(conditions, cond)
		}

		return conditions, nil
	}

	return nil, fmt.Errorf("unsupported specification operator %q", spec.Operator())
}

func (t *CriteriaTranslator) compare(spec model.Specification) (sq.Sqlizer, error) {
	col, err := t.column(spec.Field())
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("LOWER(CAST(%s AS TEXT))", col.Name)
	value := spec.Value()

	switch spec.Comparison() {
	case model.Contains:
		return sq.Expr(text+" LIKE ?", "%"+likeEscaper.Replace(value)+"%"), nil
	case model.NotContains:
		return sq.Expr(text+" NOT LIKE ?", "%"+likeEscaper.Replace(value)+"%"), nil
	case model.Equals:
		return sq.Expr(text+" = ?", value), nil
	case model.NotEquals:
		return sq.Expr(text+" <> ?", value), nil
	case model.StartsWith:
		return sq.Expr(text+" LIKE ?", likeEscaper.Replace(value)+"%"), nil
	case model.EndsWith:
		return sq.Expr(text+" LIKE ?", "%"+likeEscaper.Replace(value)), nil
	case model.Blank:
		return sq.Expr(text + " = ''"), nil
	case model.NotBlank:
		return sq.Expr(text + " <> ''"), nil
	default:
		return sq.Expr("TRUE"), nil
	}
}

// applySorting orders by the requested column, then by the tiebreak column
// ascending so equal keys keep source order.
func (t *CriteriaTranslator) applySorting(builder sq.SelectBuilder, query model.Query) (sq.SelectBuilder, error) {
	if !query.HasSort() {
		return builder.OrderBy(t.tiebreak + " ASC"), nil
	}

	col, err := t.column(query.SortField)
	if err != nil {
		return builder, err
	}

	direction := "ASC"
	if query.SortDirection == model.SortDesc {
		direction = "DESC"
	}

	if col.Name == t.tiebreak {
		return builder.OrderBy(col.Name + " " + direction), nil
	}

	expr := col.Name
	if col.Text {
		expr += ` COLLATE "C"`
	}

	return builder.OrderBy(expr+" "+direction, t.tiebreak+" ASC"), nil
}

func (t *CriteriaTranslator) column(field string) (Column, error) {
	if col, ok := t.columns[field]; ok {
		return col, nil
	}

	if t.logger != nil {
		t.logger.Warn().Str("field", field).Msg("no column mapped for field")
	}

	return Column{}, fmt.Errorf("%w: %q", model.ErrUnknownField, field)
}
