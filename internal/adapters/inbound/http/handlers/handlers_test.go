package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/architeacher/datatable/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/domain/table"
	"github.com/architeacher/datatable/internal/mocks"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/internal/usecases"
	"github.com/architeacher/datatable/pkg/circuitbreaker"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics/noop"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

const sessionID = "0b6f4f5e-3c1a-4a53-9d55-2f5f0d1b7c11"

type (
	envelope struct {
		Data       json.RawMessage   `json:"data"`
		Meta       map[string]string `json:"meta"`
		Pagination *model.Pagination `json:"pagination"`
	}

	errorBody struct {
		Code    string                  `json:"code"`
		Message string                  `json:"message"`
		Details []model.ValidationError `json:"details"`
	}

	fixture struct {
		tables   *mocks.FakeTableService
		sessions *mocks.FakeSessionService
		handler  http.Handler
	}
)

func newFixture(opts ...handlers.APIHandlerOption) *fixture {
	tables := &mocks.FakeTableService{}
	sessions := &mocks.FakeSessionService{}

	app := usecases.NewWebApplication(
		tables,
		sessions,
		&mocks.FakeHealthChecker{},
		usecases.RecordsCaching{},
		logger.NewTestLogger(),
		noop.NewMetricsClient(),
		otelNoop.NewTracerProvider(),
	)

	return &fixture{
		tables:   tables,
		sessions: sessions,
		handler: handlers.HandlerWithOptions(
			handlers.NewAPIHandler(app, logger.NewTestLogger(), opts...),
			handlers.ChiServerOptions{BaseURL: "/v1"},
		),
	}
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func sessionView(page int) *ports.SessionView {
	state := table.NewState(10)
	state.Page = page

	return &ports.SessionView{
		ID:    sessionID,
		Table: model.PostsTable,
		View: table.View[model.Post]{
			State:       state,
			Items:       []model.Post{{ID: 1, UserID: 1, Title: "qui est esse", Body: "body"}},
			Total:       25,
			HasMore:     true,
			TotalPages:  3,
			CanPrevious: page > 1,
			CanNext:     true,
			Sequence:    2,
			Settled:     2,
		},
	}
}

func TestListTables(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.tables.TablesReturns([]string{"posts"}, nil)

	rec := f.do(http.MethodGet, "/v1/tables", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Equal(t, "v1", env.Meta["apiVersion"])
	require.Nil(t, env.Pagination)

	var data []struct {
		Name  string            `json:"name"`
		Links map[string]string `json:"links"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	require.Equal(t, "posts", data[0].Name)
	require.Equal(t, "/v1/tables/posts/records", data[0].Links["records"])
	require.Equal(t, "/v1/tables/posts/schema", data[0].Links["schema"])
}

func TestGetSchema(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.tables.ColumnsReturns(model.PostSchema().Columns(), nil)

	rec := f.do(http.MethodGet, "/v1/tables/posts/schema", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Table   string         `json:"table"`
		Columns []model.Column `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	require.Equal(t, "posts", data.Table)
	require.Len(t, data.Columns, 4)

	_, name := f.tables.ColumnsArgsForCall(0)
	require.Equal(t, "posts", name)
}

func TestListRecords_BindsDescriptor(t *testing.T) {
	t.Parallel()

	f := newFixture(handlers.WithHTTPCacheConfig(handlers.HTTPCacheConfig{Enabled: true, MaxAge: 30}))
	f.tables.ListRecordsReturns(&model.Page[model.Post]{
		Items:    []model.Post{{ID: 11, UserID: 2, Title: "qui", Body: "b"}},
		Total:    25,
		HasMore:  true,
		Number:   2,
		PageSize: 10,
	}, nil)

	target := "/v1/tables/posts/records?page=2&size=10&sort=title&order=desc" +
		"&filter[title][type1]=startsWith&filter[title][value1]=Qui&filter[title][operator]=or"

	rec := f.do(http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "BYPASS", rec.Header().Get(handlers.HeaderCacheStatus))
	require.Equal(t, "private, max-age=30", rec.Header().Get(handlers.HeaderCacheControl))

	_, name, query := f.tables.ListRecordsArgsForCall(0)
	require.Equal(t, "posts", name)
	require.Equal(t, 2, query.Page)
	require.Equal(t, 10, query.PageSize)
	require.Equal(t, "title", query.SortField)
	require.Equal(t, model.SortDesc, query.SortDirection)
	require.Equal(t, model.FilterClause{
		Type1:    model.StartsWith,
		Value1:   "qui",
		Operator: model.Or,
		Type2:    model.Contains,
	}, query.Filters["title"])

	env := decodeEnvelope(t, rec)
	require.Equal(t, &model.Pagination{
		Page:        2,
		Size:        10,
		TotalItems:  25,
		TotalPages:  3,
		HasNext:     true,
		HasPrevious: true,
	}, env.Pagination)

	var items []model.Post
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Equal(t, 11, items[0].ID)
}

func TestListRecords_Defaults(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.tables.ListRecordsReturns(&model.Page[model.Post]{Items: []model.Post{}, Number: 1, PageSize: 10}, nil)

	rec := f.do(http.MethodGet, "/v1/tables/posts/records", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get(handlers.HeaderCacheControl))

	_, _, query := f.tables.ListRecordsArgsForCall(0)
	require.Equal(t, model.DefaultPage, query.Page)
	require.Equal(t, model.DefaultPageSize, query.PageSize)
	require.False(t, query.HasSort())
	require.Empty(t, query.Filters)
}

func TestListRecords_InvalidParameters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		target       string
		expectedCode string
	}{
		{name: "page not a number", target: "/v1/tables/posts/records?page=abc", expectedCode: "INVALID_PARAMETER"},
		{name: "filter without key", target: "/v1/tables/posts/records?filter[title]=x", expectedCode: "INVALID_PARAMETER"},
		{name: "filter with unknown key", target: "/v1/tables/posts/records?filter[title][value3]=x", expectedCode: "INVALID_PARAMETER"},
		{name: "filter nested too deep", target: "/v1/tables/posts/records?filter[title][type1][x]=contains", expectedCode: "INVALID_PARAMETER"},
		{name: "filter key given twice", target: "/v1/tables/posts/records?filter[title][value1]=a&filter[title][value1]=b", expectedCode: "INVALID_PARAMETER"},
		{name: "page above the maximum", target: "/v1/tables/posts/records?page=1000000000000000000", expectedCode: "INVALID_PARAMETER"},
		{name: "unknown order", target: "/v1/tables/posts/records?sort=title&order=sideways", expectedCode: "VALIDATION_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture()

			rec := f.do(http.MethodGet, tc.target, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, tc.expectedCode, decodeError(t, rec).Code)
			require.Zero(t, f.tables.ListRecordsCallCount())
		})
	}
}

func TestBindFilterParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		raw      string
		expected model.FilterSet
		err      bool
	}{
		{
			name:     "no filters",
			raw:      "page=2&sort=title",
			expected: model.FilterSet{},
		},
		{
			name: "missing keys take editor defaults",
			raw:  "filter[title][value1]=qui",
			expected: model.FilterSet{
				"title": {Type1: model.Contains, Value1: "qui", Operator: model.And, Type2: model.Contains},
			},
		},
		{
			name: "every key on two fields",
			raw: "filter[title][type1]=startsWith&filter[title][value1]=ea&filter[title][operator]=or" +
				"&filter[title][type2]=contains&filter[title][value2]=qui&filter[userId][type1]=equals&filter[userId][value1]=2",
			expected: model.FilterSet{
				"title":  {Type1: model.StartsWith, Value1: "ea", Operator: model.Or, Type2: model.Contains, Value2: "qui"},
				"userId": {Type1: model.Equals, Value1: "2", Operator: model.And, Type2: model.Contains},
			},
		},
		{
			name:     "blank leg needs no value",
			raw:      "filter[body][type1]=blank",
			expected: model.FilterSet{"body": {Type1: model.Blank, Operator: model.And, Type2: model.Contains}},
		},
		{name: "field without key", raw: "filter[title]=x", err: true},
		{name: "key mixed with bare field", raw: "filter[title]=x&filter[title][type1]=contains", err: true},
		{name: "unknown key", raw: "filter[title][value3]=x", err: true},
		{name: "empty field", raw: "filter[][value1]=x", err: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			query, err := url.ParseQuery(tc.raw)
			require.NoError(t, err)

			filters, err := handlers.BindFilterParams(query)
			if tc.err {
				require.ErrorIs(t, err, handlers.ErrMalformedFilter)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, filters)
		})
	}
}

func TestListRecords_ErrorMapping(t *testing.T) {
	t.Parallel()

	validation := model.NewValidationErrors()
	validation.Add("body", `field is not sortable: "body"`, model.CodeNotSortable)

	cases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "unknown table", err: fmt.Errorf("%w: %q", model.ErrUnknownTable, "users"), expectedStatus: http.StatusNotFound, expectedCode: "TABLE_NOT_FOUND"},
		{name: "validation", err: validation, expectedStatus: http.StatusBadRequest, expectedCode: "VALIDATION_ERROR"},
		{name: "circuit open", err: fmt.Errorf("fetching posts: %w", circuitbreaker.ErrCircuitOpen), expectedStatus: http.StatusServiceUnavailable, expectedCode: "CIRCUIT_OPEN"},
		{name: "source unavailable", err: fmt.Errorf("%w: status 500", model.ErrSourceUnavailable), expectedStatus: http.StatusBadGateway, expectedCode: "SOURCE_UNAVAILABLE"},
		{name: "deadline", err: context.DeadlineExceeded, expectedStatus: http.StatusGatewayTimeout, expectedCode: "TIMEOUT"},
		{name: "unexpected", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedCode: "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture()
			f.tables.ListRecordsReturns(nil, tc.err)

			rec := f.do(http.MethodGet, "/v1/tables/posts/records", "")
			require.Equal(t, tc.expectedStatus, rec.Code)

			body := decodeError(t, rec)
			require.Equal(t, tc.expectedCode, body.Code)

			if tc.expectedStatus == http.StatusInternalServerError {
				require.Equal(t, "internal server error", body.Message)
			}

			if tc.expectedCode == "VALIDATION_ERROR" {
				require.Equal(t, validation.Errors, body.Details)
			}
		})
	}
}

func TestExportRecords_CSV(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.tables.ExportRecordsReturns(&model.Export{
		Table:     "posts",
		Headers:   []string{"ID", "Title"},
		Rows:      [][]string{{"1", "qui, est"}, {"2", "esse"}},
		Total:     3,
		Truncated: true,
	}, nil)

	rec := f.do(http.MethodGet, "/v1/tables/posts/records/export?sort=id&filter[title][value1]=e", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, "attachment; filename=posts.csv", rec.Header().Get("Content-Disposition"))
	require.Equal(t, "3", rec.Header().Get(handlers.HeaderTotalCount))
	require.Equal(t, "true", rec.Header().Get(handlers.HeaderExportTruncated))
	require.Equal(t, "ID,Title\n1,\"qui, est\"\n2,esse\n", rec.Body.String())

	_, name, query := f.tables.ExportRecordsArgsForCall(0)
	require.Equal(t, "posts", name)
	require.Equal(t, "id", query.SortField)
	require.Equal(t, "e", query.Filters["title"].Value1)
}

func TestExportRecords_XLSX(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.tables.ExportRecordsReturns(&model.Export{
		Table:   "posts",
		Headers: []string{"ID", "Title"},
		Rows:    [][]string{{"1", "qui"}},
		Total:   1,
	}, nil)

	rec := f.do(http.MethodGet, "/v1/tables/posts/records/export?format=xlsx", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get(handlers.HeaderExportTruncated))

	workbook, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)

	t.Cleanup(func() { _ = workbook.Close() })

	rows, err := workbook.GetRows("posts")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"ID", "Title"}, {"1", "qui"}}, rows)
}

func TestExportRecords_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	f := newFixture()

	rec := f.do(http.MethodGet, "/v1/tables/posts/records/export?format=pdf", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "UNSUPPORTED_FORMAT", decodeError(t, rec).Code)
	require.Zero(t, f.tables.ExportRecordsCallCount())
}

func TestCreateSession(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name             string
		target           string
		body             string
		expectedPageSize int
		expectedWait     bool
	}{
		{name: "with page size", target: "/v1/tables/posts/sessions", body: `{"pageSize":20}`, expectedPageSize: 20, expectedWait: true},
		{name: "without body", target: "/v1/tables/posts/sessions", expectedPageSize: 0, expectedWait: true},
		{name: "without waiting", target: "/v1/tables/posts/sessions?wait=false", body: `{}`, expectedPageSize: 0, expectedWait: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture()
			f.sessions.CreateSessionReturns(sessionView(1), nil)

			rec := f.do(http.MethodPost, tc.target, tc.body)
			require.Equal(t, http.StatusCreated, rec.Code)
			require.Equal(t, "/v1/tables/posts/sessions/"+sessionID, rec.Header().Get("Location"))

			_, name, pageSize, wait := f.sessions.CreateSessionArgsForCall(0)
			require.Equal(t, "posts", name)
			require.Equal(t, tc.expectedPageSize, pageSize)
			require.Equal(t, tc.expectedWait, wait)
		})
	}
}

func TestCreateSession_InvalidBody(t *testing.T) {
	t.Parallel()

	f := newFixture()

	rec := f.do(http.MethodPost, "/v1/tables/posts/sessions", `{"pageSize":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "INVALID_JSON", decodeError(t, rec).Code)
	require.Zero(t, f.sessions.CreateSessionCallCount())
}

func TestGetSession_RendersView(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.sessions.GetSessionReturns(sessionView(2), nil)

	rec := f.do(http.MethodGet, "/v1/tables/posts/sessions/"+sessionID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	ref := ports.SessionRef{Table: "posts", ID: sessionID}
	_, gotRef, wait := f.sessions.GetSessionArgsForCall(0)
	require.Equal(t, ref, gotRef)
	require.True(t, wait)

	env := decodeEnvelope(t, rec)
	require.Equal(t, 3, env.Pagination.TotalPages)
	require.True(t, env.Pagination.HasPrevious)

	var data struct {
		ID      string `json:"id"`
		Caption string `json:"caption"`
		State   struct {
			Page          int    `json:"page"`
			PageSize      int    `json:"pageSize"`
			SortDirection string `json:"sortDirection"`
		} `json:"state"`
		Items   []model.Post      `json:"items"`
		Loading bool              `json:"loading"`
		Links   map[string]string `json:"links"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, sessionID, data.ID)
	require.Equal(t, "Page 2 of 3", data.Caption)
	require.Equal(t, 2, data.State.Page)
	require.Equal(t, 10, data.State.PageSize)
	require.Equal(t, "asc", data.State.SortDirection)
	require.Len(t, data.Items, 1)
	require.False(t, data.Loading)
	require.Equal(t, "/v1/tables/posts/sessions/"+sessionID, data.Links["self"])
}

func TestGetSession_NotFound(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.sessions.GetSessionReturns(nil, model.ErrSessionNotFound)

	rec := f.do(http.MethodGet, "/v1/tables/posts/sessions/"+sessionID+"?wait=false", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "SESSION_NOT_FOUND", decodeError(t, rec).Code)

	_, _, wait := f.sessions.GetSessionArgsForCall(0)
	require.False(t, wait)
}

func TestSessionTransitions(t *testing.T) {
	t.Parallel()

	base := "/v1/tables/posts/sessions/" + sessionID
	ref := ports.SessionRef{Table: "posts", ID: sessionID}

	cases := []struct {
		name   string
		method string
		target string
		body   string
		assert func(t *testing.T, sessions *mocks.FakeSessionService)
	}{
		{
			name:   "sort",
			method: http.MethodPost,
			target: base + "/sort",
			body:   `{"field":"title"}`,
			assert: func(t *testing.T, sessions *mocks.FakeSessionService) {
				_, gotRef, field, wait := sessions.SortArgsForCall(0)
				require.Equal(t, ref, gotRef)
				require.Equal(t, "title", field)
				require.True(t, wait)
			},
		},
		{
			name:   "edit filter",
			method: http.MethodPut,
			target: base + "/filters/title",
			body:   `{"type1":"startsWith","value1":"Qui"}`,
			assert: func(t *testing.T, sessions *mocks.FakeSessionService) {
				_, gotRef, field, clause := sessions.EditFilterArgsForCall(0)
				require.Equal(t, ref, gotRef)
				require.Equal(t, "title", field)
				require.Equal(t, model.FilterClause{
					Type1:    model.StartsWith,
					Value1:   "Qui",
					Operator: model.And,
					Type2:    model.Contains,
				}, clause)
			},
		},
		{
			name:   "apply filter",
			method: http.MethodPost,
			target: base + "/filters/title/apply?wait=false",
			assert: func(t *testing.T, sessions *mocks.FakeSessionService) {
				_, gotRef, field, wait := sessions.ApplyFilterArgsForCall(0)
				require.Equal(t, ref, gotRef)
				require.Equal(t, "title", field)
				require.False(t, wait)
			},
		},
		{
			name:   "clear filter",
			method: http.MethodDelete,
			target: base + "/filters/body",
			assert: func(t *testing.T, sessions *mocks.FakeSessionService) {
				_, _, field, wait := sessions.ClearFilterArgsForCall(0)
				require.Equal(t, "body", field)
				require.True(t, wait)
			},
		},
		{
			name:   "change page",
			method: http.MethodPost,
			target: base + "/page",
			body:   `{"page":3}`,
			assert: func(t *testing.T, sessions *mocks.FakeSessionService) {
				_, _, page, _ := sessions.ChangePageArgsForCall(0)
				require.Equal(t, 3, page)
			},
		},
		{
			name:   "change page size",
			method: http.MethodPost,
			target: base + "/page-size",
			body:   `{"size":20}`,
			assert: func(t *testing.T, sessions *mocks.FakeSessionService) {
				_, _, size, _ := sessions.ChangePageSizeArgsForCall(0)
				require.Equal(t, 20, size)
			},
		},
		{
			name:   "refresh",
			method: http.MethodPost,
			target: base + "/refresh",
			assert: func(t *testing.T, sessions *mocks.FakeSessionService) {
				_, gotRef, wait := sessions.RefreshArgsForCall(0)
				require.Equal(t, ref, gotRef)
				require.True(t, wait)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture()
			view := sessionView(1)
			f.sessions.SortReturns(view, nil)
			f.sessions.EditFilterReturns(view, nil)
			f.sessions.ApplyFilterReturns(view, nil)
			f.sessions.ClearFilterReturns(view, nil)
			f.sessions.ChangePageReturns(view, nil)
			f.sessions.ChangePageSizeReturns(view, nil)
			f.sessions.RefreshReturns(view, nil)

			rec := f.do(tc.method, tc.target, tc.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			tc.assert(t, f.sessions)
		})
	}
}

func TestChangeSessionPage_AboveMaximum(t *testing.T) {
	t.Parallel()

	f := newFixture()

	rec := f.do(http.MethodPost, "/v1/tables/posts/sessions/"+sessionID+"/page", `{"page":1000000000000000000}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "INVALID_PARAMETER", decodeError(t, rec).Code)
	require.Zero(t, f.sessions.ChangePageCallCount())
}

func TestSessionTransitions_FailuresAreMapped(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.sessions.SortReturns(nil, fmt.Errorf("%w: %q", model.ErrFieldNotSortable, "body"))
	f.sessions.ChangePageSizeReturns(nil, fmt.Errorf("%w: 15", model.ErrInvalidPageSize))

	rec := f.do(http.MethodPost, "/v1/tables/posts/sessions/"+sessionID+"/sort", `{"field":"body"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, model.CodeNotSortable, decodeError(t, rec).Code)

	rec = f.do(http.MethodPost, "/v1/tables/posts/sessions/"+sessionID+"/page-size", `{"size":15}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, model.CodeInvalidPageSize, decodeError(t, rec).Code)

	rec = f.do(http.MethodPost, "/v1/tables/posts/sessions/"+sessionID+"/sort", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "INVALID_JSON", decodeError(t, rec).Code)
	require.Equal(t, 1, f.sessions.SortCallCount())
}

func TestDeleteSession(t *testing.T) {
	t.Parallel()

	f := newFixture()

	rec := f.do(http.MethodDelete, "/v1/tables/posts/sessions/"+sessionID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, ref := f.sessions.DeleteSessionArgsForCall(0)
	require.Equal(t, ports.SessionRef{Table: "posts", ID: sessionID}, ref)
}

func TestGetSwagger(t *testing.T) {
	t.Parallel()

	swagger, err := handlers.GetSwagger()
	require.NoError(t, err)
	require.NotNil(t, swagger.Paths.Find("/tables/{table}/records"))
	require.NotNil(t, swagger.Paths.Find("/tables/{table}/sessions/{sessionId}/refresh"))
	require.Contains(t, swagger.Components.SecuritySchemes, "bearerAuth")
}
