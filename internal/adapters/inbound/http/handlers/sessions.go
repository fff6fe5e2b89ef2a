package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/internal/usecases/commands"
	"github.com/architeacher/datatable/internal/usecases/queries"
)

type (
	CreateSessionRequest struct {
		PageSize *int `json:"pageSize,omitempty"`
	}

	SortSessionRequest struct {
		Field string `json:"field"`
	}

	ChangeSessionPageRequest struct {
		Page int `json:"page"`
	}

	ChangeSessionPageSizeRequest struct {
		Size int `json:"size"`
	}

	sessionState struct {
		Page           int             `json:"page"`
		PageSize       int             `json:"pageSize"`
		SortField      string          `json:"sortField,omitempty"`
		SortDirection  string          `json:"sortDirection"`
		AppliedFilters model.FilterSet `json:"appliedFilters"`
		PendingFilters model.FilterSet `json:"pendingFilters"`
	}

	sessionLinks struct {
		Self string `json:"self"`
	}

	sessionData struct {
		ID       string       `json:"id"`
		Table    string       `json:"table"`
		Caption  string       `json:"caption"`
		State    sessionState `json:"state"`
		Items    []model.Post `json:"items"`
		Loading  bool         `json:"loading"`
		Failed   bool         `json:"failed"`
		Error    string       `json:"error,omitempty"`
		Sequence uint64       `json:"sequence"`
		Settled  uint64       `json:"settled"`
		Links    sessionLinks `json:"links"`
	}
)

func (h *APIHandler) CreateSession(w http.ResponseWriter, r *http.Request, table string, params SessionParams) {
	var req CreateSessionRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody, nil)

		return
	}

	cmd := commands.CreateSessionCommand{
		Table: table,
		Wait:  waitFor(params),
	}

	if req.PageSize != nil {
		cmd.PageSize = *req.PageSize
	}

	view, err := h.app.Commands.CreateSession.Handle(r.Context(), cmd)
	if err != nil {
		h.writeFailure(w, r, err)

		return
	}

	w.Header().Set("Location", h.sessionPath(view.Table, view.ID))
	h.writeSession(w, r, http.StatusCreated, view)
}

func (h *APIHandler) GetSession(w http.ResponseWriter, r *http.Request, table, sessionID string, params SessionParams) {
	view, err := h.app.Queries.GetSession.Execute(r.Context(), queries.GetSessionQuery{
		Ref:  ports.SessionRef{Table: table, ID: sessionID},
		Wait: waitFor(params),
	})

	h.respondSession(w, r, view, err)
}

func (h *APIHandler) DeleteSession(w http.ResponseWriter, r *http.Request, table, sessionID string) {
	_, err := h.app.Commands.DeleteSession.Handle(r.Context(), commands.DeleteSessionCommand{
		Ref: ports.SessionRef{Table: table, ID: sessionID},
	})
	if err != nil {
		h.writeFailure(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) SortSession(w http.ResponseWriter, r *http.Request, table, sessionID string, params SessionParams) {
	var req SortSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody, nil)

		return
	}

	view, err := h.app.Commands.SortSession.Handle(r.Context(), commands.SortSessionCommand{
		Ref:   ports.SessionRef{Table: table, ID: sessionID},
		Field: req.Field,
		Wait:  waitFor(params),
	})

	h.respondSession(w, r, view, err)
}

func (h *APIHandler) EditSessionFilter(w http.ResponseWriter, r *http.Request, table, sessionID, field string) {
	clause := model.DefaultFilterClause()
	if err := json.NewDecoder(r.Body).Decode(&clause); err != nil {
		writeError(w, r, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody, nil)

		return
	}

	view, err := h.app.Commands.EditSessionFilter.Handle(r.Context(), commands.EditSessionFilterCommand{
		Ref:    ports.SessionRef{Table: table, ID: sessionID},
		Field:  field,
		Clause: clause,
	})

	h.respondSession(w, r, view, err)
}

func (h *APIHandler) ApplySessionFilter(w http.ResponseWriter, r *http.Request, table, sessionID, field string, params SessionParams) {
	view, err := h.app.Commands.ApplySessionFilter.Handle(r.Context(), commands.ApplySessionFilterCommand{
		Ref:   ports.SessionRef{Table: table, ID: sessionID},
		Field: field,
		Wait:  waitFor(params),
	})

	h.respondSession(w, r, view, err)
}

func (h *APIHandler) ClearSessionFilter(w http.ResponseWriter, r *http.Request, table, sessionID, field string, params SessionParams) {
	view, err := h.app.Commands.ClearSessionFilter.Handle(r.Context(), commands.ClearSessionFilterCommand{
		Ref:   ports.SessionRef{Table: table, ID: sessionID},
		Field: field,
		Wait:  waitFor(params),
	})

	h.respondSession(w, r, view, err)
}

func (h *APIHandler) ChangeSessionPage(w http.ResponseWriter, r *http.Request, table, sessionID string, params SessionParams) {
	var req ChangeSessionPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody, nil)

		return
	}

	if req.Page > model.MaxPage {
		writeError(w, r, http.StatusBadRequest, codeInvalidParameter, fmt.Sprintf("%s of %d", ErrPageOutOfRange, model.MaxPage), nil)

		return
	}

	view, err := h.app.Commands.ChangeSessionPage.Handle(r.Context(), commands.ChangeSessionPageCommand{
		Ref:  ports.SessionRef{Table: table, ID: sessionID},
		Page: req.Page,
		Wait: waitFor(params),
	})

	h.respondSession(w, r, view, err)
}

func (h *APIHandler) ChangeSessionPageSize(w http.ResponseWriter, r *http.Request, table, sessionID string, params SessionParams) {
	var req ChangeSessionPageSizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody, nil)

		return
	}

	view, err := h.app.Commands.ChangeSessionPageSize.Handle(r.Context(), commands.ChangeSessionPageSizeCommand{
		Ref:  ports.SessionRef{Table: table, ID: sessionID},
		Size: req.Size,
		Wait: waitFor(params),
	})

	h.respondSession(w, r, view, err)
}

func (h *APIHandler) RefreshSession(w http.ResponseWriter, r *http.Request, table, sessionID string, params SessionParams) {
	view, err := h.app.Commands.RefreshSession.Handle(r.Context(), commands.RefreshSessionCommand{
		Ref:  ports.SessionRef{Table: table, ID: sessionID},
		Wait: waitFor(params),
	})

	h.respondSession(w, r, view, err)
}

func (h *APIHandler) respondSession(w http.ResponseWriter, r *http.Request, view *ports.SessionView, err error) {
	if err != nil {
		h.writeFailure(w, r, err)

		return
	}

	h.writeSession(w, r, http.StatusOK, view)
}

func (h *APIHandler) writeSession(w http.ResponseWriter, r *http.Request, status int, view *ports.SessionView) {
	pagination := view.Pagination()

	writeEnveloped(w, r, status, h.toSessionData(view), &pagination)
}

func (h *APIHandler) toSessionData(view *ports.SessionView) sessionData {
	items := view.Items
	if items == nil {
		items = []model.Post{}
	}

	return sessionData{
		ID:      view.ID,
		Table:   view.Table,
		Caption: view.Caption(),
		State: sessionState{
			Page:           view.State.Page,
			PageSize:       view.State.PageSize,
			SortField:      view.State.SortField,
			SortDirection:  string(view.State.SortDirection),
			AppliedFilters: model.FilterSet(view.State.Applied).Clone(),
			PendingFilters: model.FilterSet(view.State.Pending).Clone(),
		},
		Items:    items,
		Loading:  view.Loading,
		Failed:   view.Failed,
		Error:    view.Error,
		Sequence: view.Sequence,
		Settled:  view.Settled,
		Links:    sessionLinks{Self: h.sessionPath(view.Table, view.ID)},
	}
}

// waitFor defaults to blocking until the issued fetch settled.
func waitFor(params SessionParams) bool {
	return params.Wait == nil || *params.Wait
}

// decodeOptionalBody leaves dst untouched for an empty body.
func decodeOptionalBody(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}
