//go:build integration

package itest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/architeacher/datatable/internal/adapters/repos"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/domain/pipeline"
	"github.com/architeacher/datatable/internal/infrastructure/postgres"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage    = "postgres:18-alpine"
	postgresDatabase = "datatable_test"
	postgresUsername = "test"
	postgresPassword = "test"
)

type PostsRepositoryIntegrationTestSuite struct {
	suite.Suite
	suiteCtx    context.Context
	suiteCancel context.CancelFunc
	container   *tcpostgres.PostgresContainer
	pool        *pgxpool.Pool
	repo        *repos.PostsRepository
	posts       []model.Post
}

func TestPostsRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	suite.Run(t, new(PostsRepositoryIntegrationTestSuite))
}

func (s *PostsRepositoryIntegrationTestSuite) SetupSuite() {
	s.suiteCtx, s.suiteCancel = context.WithTimeout(context.Background(), 5*time.Minute)

	container, err := tcpostgres.Run(s.suiteCtx,
		postgresImage,
		tcpostgres.WithDatabase(postgresDatabase),
		tcpostgres.WithUsername(postgresUsername),
		tcpostgres.WithPassword(postgresPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.suiteCtx, "sslmode=disable")
	s.Require().NoError(err)

	_, err = postgres.MigrateURL(strings.Replace(connStr, "postgres://", "pgx5://", 1))
	s.Require().NoError(err)

	s.pool, err = pgxpool.New(s.suiteCtx, connStr)
	s.Require().NoError(err)

	log := logger.NewTestLogger()
	s.repo = repos.NewPostsRepository(s.pool, repos.NewPgxScanner(), repos.NewCriteriaTranslator(repos.PostColumns, "id", &log), log)

	s.posts = seedPosts()
	_, err = s.repo.Upsert(s.suiteCtx, s.posts)
	s.Require().NoError(err)
}

func (s *PostsRepositoryIntegrationTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}

	if s.container != nil {
		s.Require().NoError(testcontainers.TerminateContainer(s.container))
	}

	s.suiteCancel()
}

// TestAgreesWithInMemoryPipeline runs the same descriptors through SQL and the
// in-memory pipeline and expects identical pages.
func (s *PostsRepositoryIntegrationTestSuite) TestAgreesWithInMemoryPipeline() {
	queries := map[string]model.Query{
		"defaults":            model.NewQuery().Build(),
		"last page":           model.NewQuery().Paginate(3, 10).Build(),
		"past the end":        model.NewQuery().Paginate(7, 10).Build(),
		"title desc":          model.NewQuery().OrderBy("-title").Paginate(1, 50).Build(),
		"body asc page 2":     model.NewQuery().OrderBy("body").Paginate(2, 10).Build(),
		"user desc":           model.NewQuery().OrderBy("-userId").Paginate(1, 20).Build(),
		"contains qui":        model.NewQuery().WhereLeg("title", model.Contains, "QUI").Build(),
		"not contains":        model.NewQuery().WhereLeg("title", model.NotContains, "qui").Paginate(1, 50).Build(),
		"starts with":         model.NewQuery().WhereLeg("title", model.StartsWith, "quia").Build(),
		"ends with digits":    model.NewQuery().WhereLeg("id", model.EndsWith, "5").Build(),
		"equals on number":    model.NewQuery().WhereLeg("userId", model.Equals, "2").Paginate(1, 20).Build(),
		"blank body":          model.NewQuery().WhereLeg("body", model.Blank, "").Build(),
		"like metacharacters": model.NewQuery().WhereLeg("body", model.Contains, "50%").Build(),
		"or clause": model.NewQuery().Where("title", model.FilterClause{
			Type1: model.Contains, Value1: "qui", Operator: model.Or, Type2: model.Blank,
		}).OrderBy("-id").Build(),
		"two fields": model.NewQuery().
			WhereLeg("title", model.Contains, "title").
			WhereLeg("userId", model.NotEquals, "1").
			Build(),
	}

	schema := model.PostSchema()

	for name, query := range queries {
		s.Run(name, func() {
			expected := pipeline.Execute(s.posts, schema, query)

			actual, err := s.repo.Fetch(s.suiteCtx, query)
			s.Require().NoError(err)
			s.Require().Empty(cmp.Diff(expected, actual))
		})
	}
}

func (s *PostsRepositoryIntegrationTestSuite) TestPing() {
	s.Require().NoError(s.repo.Ping(s.suiteCtx))
}

func seedPosts() []model.Post {
	posts := make([]model.Post, 0, 25)

	for i := 1; i <= 25; i++ {
		post := model.Post{
			ID:     i,
			UserID: (i-1)/10 + 1,
			Title:  fmt.Sprintf("title %d", i),
			Body:   fmt.Sprintf("Body of post %d", i),
		}

		switch {
		case i%3 == 0:
			post.Title = fmt.Sprintf("Quia et %d", i)
		case i%7 == 0:
			post.Body = ""
		case i == 11:
			post.Body = "save 50% today"
		}

		posts = append(posts, post)
	}

	return posts
}
