package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

var ErrPageOutOfRange = errors.New("page is above the maximum")

type (
	ListRecordsParams struct {
		Page  *int
		Size  *int
		Sort  *string
		Order *string
		// Filter is the filter[field][key] deep object.
		Filter model.FilterSet
	}

	ExportRecordsParams struct {
		Sort   *string
		Order  *string
		Format *string
		Filter model.FilterSet
	}

	// SessionParams are shared by every session transition.
	SessionParams struct {
		Wait *bool
	}

	// ServerInterface is implemented by the public API handler.
	ServerInterface interface {
		ListTables(w http.ResponseWriter, r *http.Request)
		GetSchema(w http.ResponseWriter, r *http.Request, table string)
		ListRecords(w http.ResponseWriter, r *http.Request, table string, params ListRecordsParams)
		ExportRecords(w http.ResponseWriter, r *http.Request, table string, params ExportRecordsParams)
		CreateSession(w http.ResponseWriter, r *http.Request, table string, params SessionParams)
		GetSession(w http.ResponseWriter, r *http.Request, table, sessionID string, params SessionParams)
		DeleteSession(w http.ResponseWriter, r *http.Request, table, sessionID string)
		SortSession(w http.ResponseWriter, r *http.Request, table, sessionID string, params SessionParams)
		EditSessionFilter(w http.ResponseWriter, r *http.Request, table, sessionID, field string)
		ApplySessionFilter(w http.ResponseWriter, r *http.Request, table, sessionID, field string, params SessionParams)
		ClearSessionFilter(w http.ResponseWriter, r *http.Request, table, sessionID, field string, params SessionParams)
		ChangeSessionPage(w http.ResponseWriter, r *http.Request, table, sessionID string, params SessionParams)
		ChangeSessionPageSize(w http.ResponseWriter, r *http.Request, table, sessionID string, params SessionParams)
		RefreshSession(w http.ResponseWriter, r *http.Request, table, sessionID string, params SessionParams)
	}

	MiddlewareFunc func(http.Handler) http.Handler

	ChiServerOptions struct {
		BaseURL          string
		BaseRouter       chi.Router
		Middlewares      []MiddlewareFunc
		ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
	}

	// ServerInterfaceWrapper binds path and query parameters before calling the handler.
	ServerInterfaceWrapper struct {
		Handler            ServerInterface
		HandlerMiddlewares []MiddlewareFunc
		ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
	}

	InvalidParamFormatError struct {
		ParamName string
		Err       error
	}
)

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

// HandlerWithOptions mounts every public route on the base router.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}

	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, r, http.StatusBadRequest, codeInvalidParameter, err.Error(), nil)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	base := options.BaseURL

	r.Group(func(r chi.Router) {
		r.Get(base+"/tables", wrapper.ListTables)
		r.Get(base+"/tables/{table}/schema", wrapper.GetSchema)
		r.Get(base+"/tables/{table}/records", wrapper.ListRecords)
		r.Get(base+"/tables/{table}/records/export", wrapper.ExportRecords)
		r.Post(base+"/tables/{table}/sessions", wrapper.CreateSession)
		r.Get(base+"/tables/{table}/sessions/{sessionId}", wrapper.GetSession)
		r.Delete(base+"/tables/{table}/sessions/{sessionId}", wrapper.DeleteSession)
		r.Post(base+"/tables/{table}/sessions/{sessionId}/sort", wrapper.SortSession)
		r.Put(base+"/tables/{table}/sessions/{sessionId}/filters/{field}", wrapper.EditSessionFilter)
		r.Delete(base+"/tables/{table}/sessions/{sessionId}/filters/{field}", wrapper.ClearSessionFilter)
		r.Post(base+"/tables/{table}/sessions/{sessionId}/filters/{field}/apply", wrapper.ApplySessionFilter)
		r.Post(base+"/tables/{table}/sessions/{sessionId}/page", wrapper.ChangeSessionPage)
		r.Post(base+"/tables/{table}/sessions/{sessionId}/page-size", wrapper.ChangeSessionPageSize)
		r.Post(base+"/tables/{table}/sessions/{sessionId}/refresh", wrapper.RefreshSession)
	})

	return r
}

func (siw *ServerInterfaceWrapper) ListTables(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListTables(w, r)
	})
}

func (siw *ServerInterfaceWrapper) GetSchema(w http.ResponseWriter, r *http.Request) {
	table, ok := siw.bindPath(w, r, "table")
	if !ok {
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetSchema(w, r, table)
	})
}

func (siw *ServerInterfaceWrapper) ListRecords(w http.ResponseWriter, r *http.Request) {
	table, ok := siw.bindPath(w, r, "table")
	if !ok {
		return
	}

	var params ListRecordsParams

	query := r.URL.Query()

	for name, dest := range map[string]any{
		"page":  &params.Page,
		"size":  &params.Size,
		"sort":  &params.Sort,
		"order": &params.Order,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dest); err != nil {
			siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: name, Err: err})

			return
		}
	}

	if params.Page != nil && *params.Page > model.MaxPage {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "page", Err: fmt.Errorf("%w of %d", ErrPageOutOfRange, model.MaxPage)})

		return
	}

	filters, err := BindFilterParams(query)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "filter", Err: err})

		return
	}

	params.Filter = filters

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListRecords(w, r, table, params)
	})
}

func (siw *ServerInterfaceWrapper) ExportRecords(w http.ResponseWriter, r *http.Request) {
	table, ok := siw.bindPath(w, r, "table")
	if !ok {
		return
	}

	var params ExportRecordsParams

	query := r.URL.Query()

	for name, dest := range map[string]any{
		"sort":   &params.Sort,
		"order":  &params.Order,
		"format": &params.Format,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dest); err != nil {
			siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: name, Err: err})

			return
		}
	}

	filters, err := BindFilterParams(query)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "filter", Err: err})

		return
	}

	params.Filter = filters

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ExportRecords(w, r, table, params)
	})
}

func (siw *ServerInterfaceWrapper) CreateSession(w http.ResponseWriter, r *http.Request) {
	table, ok := siw.bindPath(w, r, "table")
	if !ok {
		return
	}

	params, ok := siw.bindSessionParams(w, r)
	if !ok {
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateSession(w, r, table, params)
	})
}

func (siw *ServerInterfaceWrapper) GetSession(w http.ResponseWriter, r *http.Request) {
	siw.withSession(w, r, func(w http.ResponseWriter, r *http.Request, table, sessionID string, params SessionParams) {
		siw.Handler.GetSession(w, r, table, sessionID, params)
	})
}

func (siw *ServerInterfaceWrapper) DeleteSession(w http.ResponseWriter, r *http.Request) {
	siw.withSession(w, r, func(w http.ResponseWriter, r *http.Request, table, sessionID string, _ SessionParams) {
		siw.Handler.DeleteSession(w, r, table, sessionID)
	})
}

func (siw *ServerInterfaceWrapper) SortSession(w http.ResponseWriter, r *http.Request) {
	siw.withSession(w, r, siw.Handler.SortSession)
}

func (siw *ServerInterfaceWrapper) EditSessionFilter(w http.ResponseWriter, r *http.Request) {
	siw.withSessionField(w, r, func(w http.ResponseWriter, r *http.Request, table, sessionID, field string, _ SessionParams) {
		siw.Handler.EditSessionFilter(w, r, table, sessionID, field)
	})
}

func (siw *ServerInterfaceWrapper) ApplySessionFilter(w http.ResponseWriter, r *http.Request) {
	siw.withSessionField(w, r, siw.Handler.ApplySessionFilter)
}

func (siw *ServerInterfaceWrapper) ClearSessionFilter(w http.ResponseWriter, r *http.Request) {
	siw.withSessionField(w, r, siw.Handler.ClearSessionFilter)
}

func (siw *ServerInterfaceWrapper) ChangeSessionPage(w http.ResponseWriter, r *http.Request) {
	siw.withSession(w, r, siw.Handler.ChangeSessionPage)
}

func (siw *ServerInterfaceWrapper) ChangeSessionPageSize(w http.ResponseWriter, r *http.Request) {
	siw.withSession(w, r, siw.Handler.ChangeSessionPageSize)
}

func (siw *ServerInterfaceWrapper) RefreshSession(w http.ResponseWriter, r *http.Request) {
	siw.withSession(w, r, siw.Handler.RefreshSession)
}

type (
	sessionHandlerFunc      func(w http.ResponseWriter, r *http.Request, table, sessionID string, params SessionParams)
	sessionFieldHandlerFunc func(w http.ResponseWriter, r *http.Request, table, sessionID, field string, params SessionParams)
)

func (siw *ServerInterfaceWrapper) withSession(w http.ResponseWriter, r *http.Request, next sessionHandlerFunc) {
	siw.withSessionField(w, r, func(w http.ResponseWriter, r *http.Request, table, sessionID, _ string, params SessionParams) {
		next(w, r, table, sessionID, params)
	})
}

func (siw *ServerInterfaceWrapper) withSessionField(w http.ResponseWriter, r *http.Request, next sessionFieldHandlerFunc) {
	table, ok := siw.bindPath(w, r, "table")
	if !ok {
		return
	}

	sessionID, ok := siw.bindPath(w, r, "sessionId")
	if !ok {
		return
	}

	var field string

	if chi.URLParam(r, "field") != "" {
		if field, ok = siw.bindPath(w, r, "field"); !ok {
			return
		}
	}

	params, ok := siw.bindSessionParams(w, r)
	if !ok {
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		next(w, r, table, sessionID, field, params)
	})
}

func (siw *ServerInterfaceWrapper) bindPath(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	var value string

	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: name, Err: err})

		return "", false
	}

	return value, true
}

func (siw *ServerInterfaceWrapper) bindSessionParams(w http.ResponseWriter, r *http.Request) (SessionParams, bool) {
	var params SessionParams

	if err := runtime.BindQueryParameter("form", true, false, "wait", r.URL.Query(), &params.Wait); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "wait", Err: err})

		return params, false
	}

	return params, true
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, fn http.HandlerFunc) {
	var handler http.Handler = fn

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}
