package repos

import (
	"context"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const postsTable = "posts"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	// PostColumns maps the posts schema onto the posts table.
	PostColumns = map[string]Column{
		"id":     {Name: "id"},
		"title":  {Name: "title", Text: true},
		"body":   {Name: "body", Text: true},
		"userId": {Name: "user_id"},
	}

	postSelectColumns = []string{"id", "user_id", "title", "body"}
)

type (
	// PoolOps is the slice of pgxpool.Pool the repository uses, so pgxmock can stand in.
	PoolOps interface {
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		Ping(ctx context.Context) error
	}

	// PostsRepository serves the posts table from Postgres, pushing filtering,
	// sorting and pagination down into SQL.
	PostsRepository struct {
		pool       PoolOps
		scanner    Scanner
		logger     logger.Logger
		translator *CriteriaTranslator
	}

	postRowWithCount struct {
		model.Post
		TotalCount int `db:"total_count"`
	}

	countRow struct {
		Count int `db:"count"`
	}
)

func NewPostsRepository(pool PoolOps, scanner Scanner, translator *CriteriaTranslator, log logger.Logger) *PostsRepository {
	return &PostsRepository{
		pool:       pool,
		scanner:    scanner,
		translator: translator,
		logger:     log,
	}
}

func (r *PostsRepository) Fetch(ctx context.Context, query model.Query) (model.Page[model.Post], error) {
	query = query.Normalized()

	builder, err := r.translator.ApplyToSelect(
		psql.Select(slices.Concat(postSelectColumns, []string{"COUNT(*) OVER() AS total_count"})...).From(postsTable),
		query,
	)
	if err != nil {
		return model.Page[model.Post]{}, err
	}

	rows, err := r.queryWithCount(ctx, builder)
	if err != nil {
		return model.Page[model.Post]{}, err
	}

	posts := make([]model.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.Post)
	}

	total := 0
	if len(rows) > 0 {
		total = rows[0].TotalCount
	} else if query.Page > model.DefaultPage {
		// The window count is lost when the page lies past the end.
		if total, err = r.Count(ctx, query.Filters); err != nil {
			return model.Page[model.Post]{}, err
		}
	}

	return model.Page[model.Post]{
		Items:    posts,
		Total:    total,
		HasMore:  query.HasMore(total),
		Number:   query.Page,
		PageSize: query.PageSize,
	}, nil
}

func (r *PostsRepository) Count(ctx context.Context, filters model.FilterSet) (int, error) {
	builder, err := r.translator.ApplyConditionsOnly(psql.Select("COUNT(*) AS count").From(postsTable), filters)
	if err != nil {
		return 0, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var row countRow
	if err := r.scanner.ScanOne(&row, rows); err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrSourceUnavailable, err)
	}

	return row.Count, nil
}

// Upsert inserts posts, overwriting rows that already exist by id.
func (r *PostsRepository) Upsert(ctx context.Context, posts []model.Post) (int64, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	builder := psql.Insert(postsTable).Columns(postSelectColumns...)
	for _, p := range posts {
		builder = builder.Values(p.ID, p.UserID, p.Title, p.Body)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (id) DO UPDATE SET user_id = EXCLUDED.user_id, title = EXCLUDED.title, body = EXCLUDED.body").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build upsert query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrSourceUnavailable, err)
	}

	r.logger.Info().Int64("rows", tag.RowsAffected()).Msg("posts upserted")

	return tag.RowsAffected(), nil
}

func (r *PostsRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostsRepository) queryWithCount(ctx context.Context, builder sq.SelectBuilder) ([]postRowWithCount, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	r.logger.Debug().Str("sql", query).Int("args", len(args)).Msg("querying posts")

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var result []postRowWithCount
	if err := r.scanner.ScanAll(&result, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSourceUnavailable, err)
	}

	return result, nil
}
