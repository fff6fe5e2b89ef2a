package model

import "slices"

type mustSpec struct {
	specs []Specification
}

func Must(specs ...Specification) Specification {
	return &mustSpec{specs: specs}
}

func (s *mustSpec) Must(other Specification) Specification {
	return &mustSpec{specs: slices.Concat(s.specs, []Specification{other})}
}

func (s *mustSpec) Should(other Specification) Specification {
	return &shouldSpec{specs: []Specification{s, other}}
}

func (s *mustSpec) IsComposite() bool          { return true }
func (s *mustSpec) Children() []Specification  { return s.specs }
func (s *mustSpec) Operator() SpecOperator     { return SpecOpMust }
func (s *mustSpec) Field() string              { return "" }
func (s *mustSpec) Comparison() ComparisonType { return "" }
func (s *mustSpec) Value() string              { return "" }

func (s *mustSpec) IsSatisfiedBy(lookup FieldLookup) bool {
	for _, spec := range s.specs {
		if !spec.IsSatisfiedBy(lookup) {
			return false
		}
	}

	return true
}

type shouldSpec struct {
	specs []Specification
}

func Should(specs ...Specification) Specification {
	return &shouldSpec{specs: specs}
}

func (s *shouldSpec) Must(other Specification) Specification {
	return &mustSpec{specs: []Specification{s, other}}
}

func (s *shouldSpec) Should(other Specification) Specification {
	return &shouldSpec{specs: slices.Concat(s.specs, []Specification{other})}
}

func (s *shouldSpec) IsComposite() bool          { return true }
func (s *shouldSpec) Children() []Specification  { return s.specs }
func (s *shouldSpec) Operator() SpecOperator     { return SpecOpShould }
func (s *shouldSpec) Field() string              { return "" }
func (s *shouldSpec) Comparison() ComparisonType { return "" }
func (s *shouldSpec) Value() string              { return "" }

// IsSatisfiedBy is false for an empty Should, matching SQL's empty OR.
func (s *shouldSpec) IsSatisfiedBy(lookup FieldLookup) bool {
	for _, spec := range s.specs {
		if spec.IsSatisfiedBy(lookup) {
			return true
		}
	}

	return false
}
