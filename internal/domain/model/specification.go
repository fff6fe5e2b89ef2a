package model

import "strings"

type SpecOperator string

const (
	SpecOpCompare  SpecOperator = "compare"
	SpecOpMust     SpecOperator = "must"
	SpecOpShould   SpecOperator = "should"
	SpecOpMatchAll SpecOperator = "match_all"
)

type (
	// FieldLookup returns the text form of a record field.
	FieldLookup func(field string) (string, bool)

	// Specification is a filter tree evaluated in memory by IsSatisfiedBy
	// or translated to SQL by a repository.
	Specification interface {
		Must(other Specification) Specification
		Should(other Specification) Specification
		IsComposite() bool
		Children() []Specification
		Operator() SpecOperator
		Field() string
		Comparison() ComparisonType
		Value() string
		IsSatisfiedBy(lookup FieldLookup) bool
	}
)

// ClauseSpec expresses one filter clause as two comparison leaves joined by its combinator.
func ClauseSpec(field string, clause FilterClause) Specification {
	first := Compare(field, clause.Type1, clause.Value1)
	second := Compare(field, clause.Type2, clause.Value2)

	if clause.Operator == Or {
		return Should(first, second)
	}

	return Must(first, second)
}

// Specification combines every clause with AND; an empty set matches everything.
func (f FilterSet) Specification() Specification {
	if len(f) == 0 {
		return MatchAll()
	}

	specs := make([]Specification, 0, len(f))
	for _, field := range f.Fields() {
		specs = append(specs, ClauseSpec(field, f[field]))
	}

	if len(specs) == 1 {
		return specs[0]
	}

	return Must(specs...)
}

type baseSpec struct {
	self Specification
}

func (b *baseSpec) setSelf(s Specification) { b.self = s }

func (b *baseSpec) Must(other Specification) Specification {
	return Must(b.self, other)
}

func (b *baseSpec) Should(other Specification) Specification {
	return Should(b.self, other)
}

func (b *baseSpec) IsComposite() bool          { return false }
func (b *baseSpec) Children() []Specification  { return nil }
func (b *baseSpec) Comparison() ComparisonType { return "" }
func (b *baseSpec) Field() string              { return "" }
func (b *baseSpec) Value() string              { return "" }

type compareSpec struct {
	baseSpec
	field      string
	comparison ComparisonType
	value      string
}

// Compare builds a leaf; the value is lower-cased once here.
func Compare(field string, comparison ComparisonType, value string) Specification {
	s := &compareSpec{field: field, comparison: comparison, value: strings.ToLower(value)}
	s.setSelf(s)

	return s
}

func (s *compareSpec) Operator() SpecOperator     { return SpecOpCompare }
func (s *compareSpec) Field() string              { return s.field }
func (s *compareSpec) Comparison() ComparisonType { return s.comparison }
func (s *compareSpec) Value() string              { return s.value }

func (s *compareSpec) IsSatisfiedBy(lookup FieldLookup) bool {
	text, _ := lookup(s.field)

	return s.comparison.Test(strings.ToLower(text), s.value)
}

type matchAllSpec struct {
	baseSpec
}

func MatchAll() Specification {
	s := &matchAllSpec{}
	s.setSelf(s)

	return s
}

func (s *matchAllSpec) Operator() SpecOperator         { return SpecOpMatchAll }
func (s *matchAllSpec) IsSatisfiedBy(FieldLookup) bool { return true }
