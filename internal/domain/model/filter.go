package model

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

type (
	ComparisonType string
	Combinator     string

	// FilterClause is a two-legged predicate over a single field.
	FilterClause struct {
		Type1    ComparisonType `json:"type1"`
		Value1   string         `json:"value1"`
		Operator Combinator     `json:"operator"`
		Type2    ComparisonType `json:"type2"`
		Value2   string         `json:"value2"`
	}

	// FilterSet maps a field name to the clause applied to it.
	FilterSet map[string]FilterClause
)

const (
	Contains    ComparisonType = "contains"
	NotContains ComparisonType = "notContains"
	Equals      ComparisonType = "equals"
	NotEquals   ComparisonType = "notEquals"
	StartsWith  ComparisonType = "startsWith"
	EndsWith    ComparisonType = "endsWith"
	Blank       ComparisonType = "blank"
	NotBlank    ComparisonType = "notBlank"

	And Combinator = "AND"
	Or  Combinator = "OR"
)

var comparisonTypes = []ComparisonType{
	Contains, NotContains, Equals, NotEquals, StartsWith, EndsWith, Blank, NotBlank,
}

func ComparisonTypes() []ComparisonType {
	return slices.Clone(comparisonTypes)
}

func (c ComparisonType) Known() bool {
	return slices.Contains(comparisonTypes, c)
}

// NeedsValue is false for blank and notBlank, which test the field alone.
func (c ComparisonType) NeedsValue() bool {
	return c != Blank && c != NotBlank
}

// Test applies the comparison to already lower-cased operands. Unknown types match everything.
func (c ComparisonType) Test(s, v string) bool {
	switch c {
	case Contains:
		return strings.Contains(s, v)
	case NotContains:
		return !strings.Contains(s, v)
	case Equals:
		return s == v
	case NotEquals:
		return s != v
	case StartsWith:
		return strings.HasPrefix(s, v)
	case EndsWith:
		return strings.HasSuffix(s, v)
	case Blank:
		return s == ""
	case NotBlank:
		return s != ""
	default:
		return true
	}
}

// DefaultFilterClause is what an untouched filter editor holds.
func DefaultFilterClause() FilterClause {
	return FilterClause{
		Type1:    Contains,
		Value1:   "",
		Operator: And,
		Type2:    Contains,
		Value2:   "",
	}
}

// Normalized lower-cases both values, upper-cases the combinator and defaults
// an empty one to AND. Unknown combinators are kept so validation can reject them.
func (c FilterClause) Normalized() FilterClause {
	c.Value1 = strings.ToLower(c.Value1)
	c.Value2 = strings.ToLower(c.Value2)
	c.Operator = Combinator(strings.ToUpper(string(c.Operator)))

	if c.Operator == "" {
		c.Operator = And
	}

	return c
}

// Check lists the unsupported combinator or comparisons of c. Empty ones are
// allowed and fall back to defaults.
func (c FilterClause) Check(field string) []ValidationError {
	var problems []ValidationError

	if c.Operator != "" && c.Operator != And && c.Operator != Or {
		problems = append(problems, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("unsupported filter operator %q", c.Operator),
			Code:    CodeInvalidValue,
		})
	}

	for _, comparison := range []ComparisonType{c.Type1, c.Type2} {
		if comparison != "" && !comparison.Known() {
			problems = append(problems, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("unsupported comparison %q", comparison),
				Code:    CodeInvalidValue,
			})
		}
	}

	return problems
}

// Applicable reports whether the clause constrains anything: a value on either
// leg, or a leg that needs no value.
func (c FilterClause) Applicable() bool {
	return c.Value1 != "" || c.Value2 != "" || !c.Type1.NeedsValue() || !c.Type2.NeedsValue()
}

// Matches evaluates the clause against the text form of a field.
func (c FilterClause) Matches(text string) bool {
	s := strings.ToLower(text)

	first := c.Type1.Test(s, strings.ToLower(c.Value1))
	second := c.Type2.Test(s, strings.ToLower(c.Value2))

	if c.Operator == Or {
		return first || second
	}

	return first && second
}

func (f FilterSet) Clone() FilterSet {
	if f == nil {
		return FilterSet{}
	}

	return maps.Clone(f)
}

// Fields returns the filtered field names in lexical order.
func (f FilterSet) Fields() []string {
	return slices.Sorted(maps.Keys(f))
}

func (f FilterSet) Equal(other FilterSet) bool {
	return maps.Equal(f, other)
}
