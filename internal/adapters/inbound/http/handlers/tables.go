package handlers

import (
	"fmt"
	"net/http"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/usecases/queries"
	"github.com/architeacher/datatable/pkg/decorator"
)

type (
	tableLinks struct {
		Records  string `json:"records"`
		Schema   string `json:"schema"`
		Sessions string `json:"sessions"`
	}

	tableData struct {
		Name  string     `json:"name"`
		Links tableLinks `json:"links"`
	}

	schemaData struct {
		Table   string         `json:"table"`
		Columns []model.Column `json:"columns"`
	}
)

func (h *APIHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	names, err := h.app.Queries.ListTables.Execute(r.Context(), queries.ListTablesQuery{})
	if err != nil {
		h.writeFailure(w, r, err)

		return
	}

	data := make([]tableData, 0, len(names))
	for _, name := range names {
		base := h.tablePath(name)
		data = append(data, tableData{
			Name: name,
			Links: tableLinks{
				Records:  base + "/records",
				Schema:   base + "/schema",
				Sessions: base + "/sessions",
			},
		})
	}

	writeEnveloped(w, r, http.StatusOK, data, nil)
}

func (h *APIHandler) GetSchema(w http.ResponseWriter, r *http.Request, table string) {
	columns, err := h.app.Queries.ListColumns.Execute(r.Context(), queries.ListColumnsQuery{Table: table})
	if err != nil {
		h.writeFailure(w, r, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, schemaData{Table: table, Columns: columns}, nil)
}

func (h *APIHandler) ListRecords(w http.ResponseWriter, r *http.Request, table string, params ListRecordsParams) {
	query, err := buildQuery(params.Sort, params.Order, params.Filter)
	if err != nil {
		h.writeFailure(w, r, err)

		return
	}

	page, size := model.DefaultPage, model.DefaultPageSize
	if params.Page != nil {
		page = *params.Page
	}

	if params.Size != nil {
		size = *params.Size
	}

	query.Page = page
	query.PageSize = size

	ctx := decorator.WithCacheStatus(r.Context(), decorator.CacheStatusBypass)

	result, err := h.app.Queries.ListRecords.Execute(ctx, queries.ListRecordsQuery{Table: table, Query: query})
	if err != nil {
		h.writeFailure(w, r, err)

		return
	}

	w.Header().Set(HeaderCacheStatus, string(decorator.GetCacheStatus(ctx)))

	if h.cacheConf.Enabled {
		w.Header().Set(HeaderCacheControl, fmt.Sprintf("private, max-age=%d", h.cacheConf.MaxAge))
		w.Header().Set(HeaderVary, "Accept, Authorization")
	}

	pagination := result.Pagination()
	writeEnveloped(w, r, http.StatusOK, result.Items, &pagination)
}

func (h *APIHandler) ExportRecords(w http.ResponseWriter, r *http.Request, table string, params ExportRecordsParams) {
	format, err := parseExportFormat(params.Format)
	if err != nil {
		h.writeFailure(w, r, err)

		return
	}

	query, err := buildQuery(params.Sort, params.Order, params.Filter)
	if err != nil {
		h.writeFailure(w, r, err)

		return
	}

	export, err := h.app.Queries.ExportRecords.Execute(r.Context(), queries.ExportRecordsQuery{Table: table, Query: query})
	if err != nil {
		h.writeFailure(w, r, err)

		return
	}

	if err := writeExport(w, format, export); err != nil {
		log := h.logger.WithContext(r.Context())
		log.Error().Err(err).Str("table", table).Str("format", string(format)).Msg("writing export failed")
	}
}

// buildQuery assembles the descriptor shared by listing and export.
func buildQuery(sort, order *string, filters model.FilterSet) (model.Query, error) {
	builder := model.NewQuery()

	if sort != nil && *sort != "" {
		direction := model.SortAsc

		if order != nil {
			parsed, ok := model.ParseSortDirection(*order)
			if !ok {
				errs := model.NewValidationErrors()
				errs.Add("order", fmt.Sprintf("unsupported sort order %q", *order), model.CodeInvalidValue)

				return model.Query{}, errs
			}

			direction = parsed
		}

		field := *sort
		if direction == model.SortDesc {
			field = "-" + field
		}

		builder.OrderBy(field)
	}

	for field, clause := range filters {
		builder.Where(field, clause)
	}

	return builder.Build(), nil
}
