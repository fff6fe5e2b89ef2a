package repos_test

import (
	"testing"
	"time"

	"github.com/architeacher/datatable/internal/adapters/repos"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RecordsCacheRepositoryTestSuite struct {
	keydbSuite
	repo *repos.RecordsCacheRepository
}

func TestRecordsCacheRepositoryTestSuite(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(RecordsCacheRepositoryTestSuite))
}

func (s *RecordsCacheRepositoryTestSuite) SetupTest() {
	s.keydbSuite.SetupTest()
	s.repo = repos.NewRecordsCacheRepository(s.keydbClient, logger.NewTestLogger())
}

func (s *RecordsCacheRepositoryTestSuite) TestMissThenHit() {
	ctx := s.T().Context()
	query := model.NewQuery().WhereLeg("title", model.Contains, "qui").Build()

	page, hit, err := s.repo.GetPage(ctx, model.PostsTable, query)
	s.Require().NoError(err)
	s.Require().False(hit)
	s.Require().Nil(page)

	stored := &model.Page[model.Post]{
		Items:    []model.Post{{ID: 1, UserID: 1, Title: "qui", Body: "b"}},
		Total:    1,
		Number:   1,
		PageSize: 10,
	}
	s.Require().NoError(s.repo.SetPage(ctx, model.PostsTable, query, stored, time.Minute))

	page, hit, err = s.repo.GetPage(ctx, model.PostsTable, query)
	s.Require().NoError(err)
	s.Require().True(hit)
	s.Require().Equal(stored, page)
}

func (s *RecordsCacheRepositoryTestSuite) TestEmptyPageKeepsNonNilItems() {
	ctx := s.T().Context()
	query := model.NewQuery().Build()

	s.Require().NoError(s.repo.SetPage(ctx, model.PostsTable, query, &model.Page[model.Post]{Items: []model.Post{}}, time.Minute))

	page, hit, err := s.repo.GetPage(ctx, model.PostsTable, query)
	s.Require().NoError(err)
	s.Require().True(hit)
	s.Require().NotNil(page.Items)
}

func (s *RecordsCacheRepositoryTestSuite) TestCorruptEntryIsAMiss() {
	ctx := s.T().Context()
	query := model.NewQuery().Build()

	s.Require().NoError(s.miniRedis.Set(repos.RecordsCacheKey(model.PostsTable, query), "{not json"))

	_, hit, err := s.repo.GetPage(ctx, model.PostsTable, query)
	s.Require().NoError(err)
	s.Require().False(hit)
}

func (s *RecordsCacheRepositoryTestSuite) TestInvalidateTable() {
	ctx := s.T().Context()
	page := &model.Page[model.Post]{Items: []model.Post{}}

	for i := 1; i <= 3; i++ {
		s.Require().NoError(s.repo.SetPage(ctx, model.PostsTable, model.NewQuery().Paginate(i, 10).Build(), page, time.Minute))
	}

	s.Require().NoError(s.repo.SetPage(ctx, "comments", model.NewQuery().Build(), page, time.Minute))

	deleted, err := s.repo.InvalidateTable(ctx, model.PostsTable)
	s.Require().NoError(err)
	s.Require().Equal(int64(3), deleted)

	_, hit, err := s.repo.GetPage(ctx, "comments", model.NewQuery().Build())
	s.Require().NoError(err)
	s.Require().True(hit)
}

func (s *RecordsCacheRepositoryTestSuite) TestUnavailableBackend() {
	s.miniRedis.Close()

	_, _, err := s.repo.GetPage(s.T().Context(), model.PostsTable, model.NewQuery().Build())
	s.Require().Error(err)
}

func TestRecordsCacheKey(t *testing.T) {
	t.Parallel()

	a := model.Query{Page: 1, PageSize: 10, Filters: model.FilterSet{
		"title": {Type1: model.Contains, Value1: "QUI"},
		"body":  {Type1: model.NotBlank},
	}}
	b := model.NewQuery().
		Where("body", model.FilterClause{Type1: model.NotBlank}).
		Where("title", model.FilterClause{Type1: model.Contains, Value1: "qui"}).
		Build()

	require.Equal(t, repos.RecordsCacheKey(model.PostsTable, a), repos.RecordsCacheKey(model.PostsTable, b))
	require.NotEqual(t, repos.RecordsCacheKey(model.PostsTable, a), repos.RecordsCacheKey("comments", a))
	require.NotEqual(t,
		repos.RecordsCacheKey(model.PostsTable, b),
		repos.RecordsCacheKey(model.PostsTable, model.NewQuery().Paginate(2, 10).Build()),
	)
}
