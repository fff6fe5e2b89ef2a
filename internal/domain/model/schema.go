package model

import (
	"fmt"
	"slices"
)

type (
	// Field describes one column and how to read it from a record.
	Field[T any] struct {
		Name     string
		Label    string
		Sortable bool
		Kind     ValueKind
		Accessor func(T) Value
		// Render overrides the display text; nil falls back to Value.Text.
		Render func(T) string
	}

	// Column is the record-independent view of a Field.
	Column struct {
		Field    string `json:"field"`
		Label    string `json:"label"`
		Sortable bool   `json:"sortable"`
		Type     string `json:"type"`
	}

	Schema[T any] struct {
		name   string
		fields []Field[T]
		index  map[string]int
	}
)

func NewSchema[T any](name string, fields ...Field[T]) (*Schema[T], error) {
	s := &Schema[T]{
		name:   name,
		fields: slices.Clone(fields),
		index:  make(map[string]int, len(fields)),
	}

	for i, f := range fields {
		if f.Accessor == nil {
			return nil, fmt.Errorf("field %q has no accessor", f.Name)
		}

		if _, exists := s.index[f.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}

		s.index[f.Name] = i
	}

	return s, nil
}

func MustSchema[T any](name string, fields ...Field[T]) *Schema[T] {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}

	return s
}

func (s *Schema[T]) Name() string { return s.name }

func (s *Schema[T]) Field(name string) (Field[T], bool) {
	i, ok := s.index[name]
	if !ok {
		return Field[T]{}, false
	}

	return s.fields[i], true
}

func (s *Schema[T]) Fields() []Field[T] {
	return slices.Clone(s.fields)
}

func (s *Schema[T]) Columns() []Column {
	columns := make([]Column, 0, len(s.fields))

	for _, f := range s.fields {
		columns = append(columns, Column{
			Field:    f.Name,
			Label:    f.Label,
			Sortable: f.Sortable,
			Type:     f.Kind.String(),
		})
	}

	return columns
}

// Lookup binds the schema to one record for specification evaluation.
func (s *Schema[T]) Lookup(record T) FieldLookup {
	return func(field string) (string, bool) {
		f, ok := s.Field(field)
		if !ok {
			return "", false
		}

		return f.Accessor(record).Text(), true
	}
}

// Display returns the rendered text of every column for one record.
func (s *Schema[T]) Display(record T) []string {
	row := make([]string, 0, len(s.fields))

	for _, f := range s.fields {
		if f.Render != nil {
			row = append(row, f.Render(record))

			continue
		}

		row = append(row, f.Accessor(record).Text())
	}

	return row
}

func (s *Schema[T]) Labels() []string {
	labels := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		labels = append(labels, f.Label)
	}

	return labels
}

// Validate checks that a descriptor only names known fields and sorts on a sortable one.
func (s *Schema[T]) Validate(q Query) error {
	errs := NewValidationErrors()

	for _, field := range q.Filters.Fields() {
		if _, ok := s.Field(field); !ok {
			errs.Add(field, unknownFieldMessage(field), CodeUnknownField)

			continue
		}

		errs.Errors = append(errs.Errors, q.Filters[field].Check(field)...)
	}

	if q.SortField != "" {
		f, ok := s.Field(q.SortField)

		switch {
		case !ok:
			errs.Add(q.SortField, unknownFieldMessage(q.SortField), CodeUnknownField)
		case !f.Sortable:
			errs.Add(q.SortField, fmt.Sprintf("%s: %q", ErrFieldNotSortable, q.SortField), CodeNotSortable)
		}
	}

	if q.PageSize < 0 {
		errs.Add("page_size", fmt.Sprintf("%s: %d", ErrInvalidPageSize, q.PageSize), CodeInvalidPageSize)
	}

	return errs.ErrOrNil()
}
