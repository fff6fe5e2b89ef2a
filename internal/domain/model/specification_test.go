package model_test

import (
	"testing"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func lookupOf(values map[string]string) model.FieldLookup {
	return func(field string) (string, bool) {
		v, ok := values[field]

		return v, ok
	}
}

func TestClauseSpec(t *testing.T) {
	t.Parallel()

	and := model.ClauseSpec("title", model.FilterClause{Type1: model.Contains, Value1: "A", Operator: model.And, Type2: model.NotBlank})
	require.Equal(t, model.SpecOpMust, and.Operator())
	require.Len(t, and.Children(), 2)
	require.Equal(t, "a", and.Children()[0].Value())
	require.Equal(t, model.Contains, and.Children()[0].Comparison())
	require.Equal(t, "title", and.Children()[1].Field())

	or := model.ClauseSpec("title", model.FilterClause{Type1: model.Contains, Value1: "a", Operator: model.Or, Type2: model.Blank})
	require.Equal(t, model.SpecOpShould, or.Operator())
	require.True(t, or.IsComposite())
}

func TestFilterSet_Specification(t *testing.T) {
	t.Parallel()

	require.Equal(t, model.SpecOpMatchAll, model.FilterSet{}.Specification().Operator())

	spec := model.FilterSet{
		"title": {Type1: model.Contains, Value1: "qui", Operator: model.And, Type2: model.Contains},
		"body":  {Type1: model.EndsWith, Value1: "end", Operator: model.And, Type2: model.Contains},
	}.Specification()

	require.Equal(t, model.SpecOpMust, spec.Operator())
	require.Equal(t, "body", spec.Children()[0].Children()[0].Field())

	require.True(t, spec.IsSatisfiedBy(lookupOf(map[string]string{"title": "Quis", "body": "the END"})))
	require.False(t, spec.IsSatisfiedBy(lookupOf(map[string]string{"title": "Quis", "body": "start"})))
}

func TestSpecification_Chaining(t *testing.T) {
	t.Parallel()

	a := model.Compare("f", model.Equals, "a")
	b := model.Compare("f", model.Equals, "b")
	c := model.Compare("g", model.Equals, "c")

	spec := a.Should(b).Must(c)

	require.True(t, spec.IsSatisfiedBy(lookupOf(map[string]string{"f": "B", "g": "c"})))
	require.False(t, spec.IsSatisfiedBy(lookupOf(map[string]string{"f": "x", "g": "c"})))
	require.False(t, model.Should().IsSatisfiedBy(lookupOf(nil)))
	require.True(t, model.Must().IsSatisfiedBy(lookupOf(nil)))
}

func TestCompare_MissingFieldReadsAsBlank(t *testing.T) {
	t.Parallel()

	require.True(t, model.Compare("nope", model.Blank, "").IsSatisfiedBy(lookupOf(nil)))
}
