package main

import (
	"context"
	"testing"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/runtime"
	"github.com/stretchr/testify/require"
)

func TestParseFilterFlag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		value       string
		expected    filterFlag
		expectedErr bool
	}{
		{name: "with value", value: "title:contains:qui", expected: filterFlag{field: "title", comparison: model.Contains, value: "qui"}},
		{name: "value keeps colons", value: "body:equals:a:b", expected: filterFlag{field: "body", comparison: model.Equals, value: "a:b"}},
		{name: "without value", value: "body:blank", expected: filterFlag{field: "body", comparison: model.Blank}},
		{name: "missing comparison", value: "title", expectedErr: true},
		{name: "empty field", value: ":contains:x", expectedErr: true},
		{name: "unknown comparison", value: "title:like:x", expectedErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			leg, err := parseFilterFlag(tc.value)
			if tc.expectedErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, leg)
		})
	}
}

func TestBuildClauses(t *testing.T) {
	t.Parallel()

	clauses, err := buildClauses([]string{"title:contains:qui", "title:startsWith:ea", "body:notBlank"}, true)
	require.NoError(t, err)
	require.Equal(t, model.FilterSet{
		"title": {Type1: model.Contains, Value1: "qui", Operator: model.Or, Type2: model.StartsWith, Value2: "ea"},
		"body":  {Type1: model.NotBlank, Operator: model.Or, Type2: model.Contains},
	}, clauses)

	_, err = buildClauses([]string{"id:equals:1", "id:equals:2", "id:equals:3"}, false)
	require.ErrorContains(t, err, "at most two")
}

func TestRunQuery(t *testing.T) {
	t.Setenv("SOURCE_KIND", "fixture")
	t.Setenv("SOURCE_FIXTURE_PATH", "../../internal/adapters/outbound/records/testdata/posts.yaml")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")

	ctx := context.Background()

	toolbox, err := runtime.NewToolbox(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { toolbox.Close(ctx) })

	cases := []struct {
		name          string
		opts          queryOptions
		expectedIDs   []int
		expectedTotal int
	}{
		{
			name:          "filters and sorts descending",
			opts:          queryOptions{sort: "id", desc: true, filters: []string{"title:contains:qui"}},
			expectedIDs:   []int{19, 12, 11, 10, 6, 2},
			expectedTotal: 6,
		},
		{
			name:          "legs combined with OR",
			opts:          queryOptions{filters: []string{"title:contains:qui", "title:startsWith:ea"}, anyMatch: true},
			expectedIDs:   []int{2, 3, 6, 10, 11, 12, 19},
			expectedTotal: 7,
		},
		{
			name:          "second page",
			opts:          queryOptions{page: 2, size: 10},
			expectedIDs:   []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
			expectedTotal: 20,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view, err := runQuery(ctx, toolbox.App(), model.PostsTable, tc.opts)
			require.NoError(t, err)
			require.False(t, view.Loading)
			require.Equal(t, tc.expectedTotal, view.Total)

			ids := make([]int, 0, len(view.Items))
			for _, post := range view.Items {
				ids = append(ids, post.ID)
			}

			require.Equal(t, tc.expectedIDs, ids)

			rendered := renderView(model.PostSchema(), view)
			require.Contains(t, rendered, "User ID")
			require.Contains(t, rendered, view.Caption())
		})
	}

	_, err = runQuery(ctx, toolbox.App(), "comments", queryOptions{})
	require.ErrorIs(t, err, model.ErrUnknownTable)
}
