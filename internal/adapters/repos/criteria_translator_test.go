package repos_test

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/datatable/internal/adapters/repos"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/stretchr/testify/require"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func newTranslator() *repos.CriteriaTranslator {
	return repos.NewCriteriaTranslator(repos.PostColumns, "id", nil)
}

func TestCriteriaTranslator_ApplyToSelect(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		query        model.Query
		expectedSQL  string
		expectedArgs []any
	}{
		{
			name:        "defaults order by id",
			query:       model.NewQuery().Build(),
			expectedSQL: "SELECT * FROM posts ORDER BY id ASC LIMIT 10 OFFSET 0",
		},
		{
			name:        "pagination offset",
			query:       model.NewQuery().Paginate(3, 20).Build(),
			expectedSQL: "SELECT * FROM posts ORDER BY id ASC LIMIT 20 OFFSET 40",
		},
		{
			name:        "text column sorts with C collation and id tiebreak",
			query:       model.NewQuery().OrderBy("-title").Build(),
			expectedSQL: `SELECT * FROM posts ORDER BY title COLLATE "C" DESC, id ASC LIMIT 10 OFFSET 0`,
		},
		{
			name:        "numeric column has no collation",
			query:       model.NewQuery().OrderBy("userId").Build(),
			expectedSQL: "SELECT * FROM posts ORDER BY user_id ASC, id ASC LIMIT 10 OFFSET 0",
		},
		{
			name:        "sorting by the tiebreak column",
			query:       model.NewQuery().OrderBy("-id").Build(),
			expectedSQL: "SELECT * FROM posts ORDER BY id DESC LIMIT 10 OFFSET 0",
		},
		{
			name:  "single leg contains",
			query: model.NewQuery().WhereLeg("title", model.Contains, "QUI").Build(),
			expectedSQL: "SELECT * FROM posts WHERE (LOWER(CAST(title AS TEXT)) LIKE $1 AND LOWER(CAST(title AS TEXT)) LIKE $2) " +
				"ORDER BY id ASC LIMIT 10 OFFSET 0",
			expectedArgs: []any{"%qui%", "%%"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			builder, err := newTranslator().ApplyToSelect(psql.Select("*").From("posts"), tc.query)
			require.NoError(t, err)

			sql, args, err := builder.ToSql()
			require.NoError(t, err)
			require.Equal(t, tc.expectedSQL, sql)

			if tc.expectedArgs == nil {
				require.Empty(t, args)
			} else {
				require.Equal(t, tc.expectedArgs, args)
			}
		})
	}
}

func TestCriteriaTranslator_Comparisons(t *testing.T) {
	t.Parallel()

	cases := []struct {
		comparison   model.ComparisonType
		value        string
		expectedSQL  string
		expectedArgs []any
	}{
		{model.Contains, "ab", "LOWER(CAST(body AS TEXT)) LIKE $1", []any{"%ab%"}},
		{model.NotContains, "ab", "LOWER(CAST(body AS TEXT)) NOT LIKE $1", []any{"%ab%"}},
		{model.Equals, "ab", "LOWER(CAST(body AS TEXT)) = $1", []any{"ab"}},
		{model.NotEquals, "ab", "LOWER(CAST(body AS TEXT)) <> $1", []any{"ab"}},
		{model.StartsWith, "ab", "LOWER(CAST(body AS TEXT)) LIKE $1", []any{"ab%"}},
		{model.EndsWith, "ab", "LOWER(CAST(body AS TEXT)) LIKE $1", []any{"%ab"}},
		{model.Blank, "", "LOWER(CAST(body AS TEXT)) = ''", nil},
		{model.NotBlank, "", "LOWER(CAST(body AS TEXT)) <> ''", nil},
		{model.Contains, "50%_off", "LOWER(CAST(body AS TEXT)) LIKE $1", []any{`%50\%\_off%`}},
		{model.ComparisonType("between"), "x", "TRUE", nil},
	}

	for _, tc := range cases {
		t.Run(string(tc.comparison)+":"+tc.value, func(t *testing.T) {
			t.Parallel()

			clause := model.FilterClause{Type1: tc.comparison, Value1: tc.value, Operator: model.Or, Type2: tc.comparison, Value2: tc.value}

			builder, err := newTranslator().ApplyConditionsOnly(psql.Select("*").From("posts"), model.FilterSet{"body": clause})
			require.NoError(t, err)

			sql, args, err := builder.ToSql()
			require.NoError(t, err)
			require.Contains(t, sql, "WHERE ("+tc.expectedSQL+" OR ")

			if tc.expectedArgs != nil {
				require.Equal(t, append(tc.expectedArgs, tc.expectedArgs...), args)
			}
		})
	}
}

func TestCriteriaTranslator_CombinesFieldsWithAnd(t *testing.T) {
	t.Parallel()

	filters := model.FilterSet{
		"title": {Type1: model.Contains, Value1: "qui", Operator: model.Or, Type2: model.Blank},
		"body":  {Type1: model.NotBlank, Operator: model.And, Type2: model.Contains},
	}

	builder, err := newTranslator().ApplyConditionsOnly(psql.Select("*").From("posts"), filters)
	require.NoError(t, err)

	sql, args, err := builder.ToSql()
	require.NoError(t, err)
	require.Equal(t,
		"SELECT * FROM posts WHERE ((LOWER(CAST(body AS TEXT)) <> '' AND LOWER(CAST(body AS TEXT)) LIKE $1) AND "+
			"(LOWER(CAST(title AS TEXT)) LIKE $2 OR LOWER(CAST(title AS TEXT)) = ''))",
		sql,
	)
	require.Equal(t, []any{"%%", "%qui%"}, args)
}

func TestCriteriaTranslator_UnknownFields(t *testing.T) {
	t.Parallel()

	_, err := newTranslator().ApplyToSelect(psql.Select("*").From("posts"), model.NewQuery().OrderBy("missing").Build())
	require.ErrorIs(t, err, model.ErrUnknownField)

	_, err = newTranslator().ApplyConditionsOnly(psql.Select("*").From("posts"), model.FilterSet{"missing": model.DefaultFilterClause()})
	require.ErrorIs(t, err, model.ErrUnknownField)
}
