package runtime

import (
	"context"
	"testing"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/usecases/queries"
	"github.com/stretchr/testify/require"
)

const fixturePath = "../adapters/outbound/records/testdata/posts.yaml"

func setFixtureEnv(t *testing.T) {
	t.Helper()

	t.Setenv("SOURCE_KIND", "fixture")
	t.Setenv("SOURCE_FIXTURE_PATH", fixturePath)
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("VAULT_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")
}

func TestToolbox_ServesFixtureTables(t *testing.T) {
	setFixtureEnv(t)

	ctx := context.Background()

	toolbox, err := NewToolbox(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { toolbox.Close(ctx) })

	tables, err := toolbox.App().Queries.ListTables.Execute(ctx, queries.ListTablesQuery{})
	require.NoError(t, err)
	require.Equal(t, []string{model.PostsTable}, tables)

	page, err := toolbox.App().Queries.ListRecords.Execute(ctx, queries.ListRecordsQuery{
		Table: model.PostsTable,
		Query: model.NewQuery().Paginate(2, 10).Build(),
	})
	require.NoError(t, err)
	require.Equal(t, 20, page.Total)
	require.Len(t, page.Items, 10)
	require.Equal(t, 11, page.Items[0].ID)
	require.False(t, page.HasMore)
}

func TestToolbox_RejectsInvalidConfiguration(t *testing.T) {
	setFixtureEnv(t)
	t.Setenv("SOURCE_FIXTURE_PATH", "")

	_, err := NewToolbox(context.Background())
	require.ErrorContains(t, err, "SOURCE_FIXTURE_PATH")
}

func TestInitializeDependencies_AppliesExtraOptionsLast(t *testing.T) {
	t.Parallel()

	var order []string

	record := func(name string) DependencyOption {
		return func(*dependencies) error {
			order = append(order, name)

			return nil
		}
	}

	deps, err := initializeDependencies([]DependencyOption{record("base")}, record("extra"))
	require.NoError(t, err)
	require.NotNil(t, deps.cleanupFuncs)
	require.Equal(t, []string{"base", "extra"}, order)
}
