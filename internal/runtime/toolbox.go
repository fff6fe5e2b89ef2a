package runtime

import (
	"context"
	"fmt"

	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/infrastructure/postgres"
	"github.com/architeacher/datatable/internal/usecases"
	"github.com/architeacher/datatable/internal/usecases/commands"
	"github.com/architeacher/datatable/pkg/logger"
)

type (
	// Toolbox is the application wired without servers, for one-shot commands.
	Toolbox struct {
		deps *dependencies
	}

	MigrationResult struct {
		Version     uint
		Seeded      int64
		Invalidated int64
	}
)

func NewToolbox(ctx context.Context, opts ...DependencyOption) (*Toolbox, error) {
	deps, err := initializeDependencies(toolboxOptions(ctx), opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing dependencies: %w", err)
	}

	return &Toolbox{deps: deps}, nil
}

func (t *Toolbox) App() *usecases.WebApplication {
	return t.deps.apps.webApp
}

func (t *Toolbox) Config() *config.ServiceConfig {
	return t.deps.config
}

func (t *Toolbox) Logger() logger.Logger {
	return t.deps.infra.logger
}

// Close releases the sessions, cache and database handles.
func (t *Toolbox) Close(ctx context.Context) {
	t.deps.cleanup(ctx)
}

// Migrate brings the posts schema up to date. With seed it then copies the
// HTTP source's posts into the database and drops the cached pages of posts.
func (t *Toolbox) Migrate(ctx context.Context, seed bool) (MigrationResult, error) {
	version, err := postgres.Migrate(t.deps.config.Postgres)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("migrating database: %w", err)
	}

	result := MigrationResult{Version: version}

	if !seed {
		return result, nil
	}

	if t.deps.infra.dbPool == nil {
		pool, err := postgres.NewPool(ctx, t.deps.config.Postgres)
		if err != nil {
			return result, fmt.Errorf("connecting to database: %w", err)
		}

		t.deps.infra.dbPool = pool
		t.deps.cleanupFuncs["postgres"] = func(context.Context) error {
			pool.Close()

			return nil
		}
	}

	repo, err := t.deps.postsRepository()
	if err != nil {
		return result, err
	}

	posts, err := t.deps.httpPostsLoader().LoadAll(ctx)
	if err != nil {
		return result, fmt.Errorf("downloading posts: %w", err)
	}

	result.Seeded, err = repo.Upsert(ctx, posts)
	if err != nil {
		return result, fmt.Errorf("seeding posts: %w", err)
	}

	invalidated, err := t.App().Commands.InvalidateRecords.Handle(ctx, commands.InvalidateRecordsCommand{Table: model.PostsTable})
	if err != nil {
		log := t.Logger()
		log.Warn().Err(err).Msg("cached posts pages were not invalidated")

		return result, nil
	}

	result.Invalidated = invalidated.Removed

	return result, nil
}
