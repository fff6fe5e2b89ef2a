package handlers

import (
	"fmt"
	"net/http"

	"github.com/architeacher/datatable/internal/usecases"
	"github.com/architeacher/datatable/pkg/logger"
)

const (
	HeaderCacheStatus  = "Cache-Status"
	HeaderCacheControl = "Cache-Control"
	HeaderVary         = "Vary"
)

type (
	// HTTPCacheConfig drives the Cache-Control header of record listings.
	HTTPCacheConfig struct {
		Enabled bool
		MaxAge  uint
	}

	// APIHandler serves the public table API.
	APIHandler struct {
		app       *usecases.WebApplication
		logger    logger.Logger
		cacheConf HTTPCacheConfig
		baseURL   string
	}

	APIHandlerOption func(*APIHandler)
)

var _ ServerInterface = (*APIHandler)(nil)

func WithHTTPCacheConfig(cfg HTTPCacheConfig) APIHandlerOption {
	return func(h *APIHandler) {
		h.cacheConf = cfg
	}
}

// WithBaseURL sets the prefix of Location headers and links.
func WithBaseURL(baseURL string) APIHandlerOption {
	return func(h *APIHandler) {
		h.baseURL = baseURL
	}
}

func NewAPIHandler(app *usecases.WebApplication, log logger.Logger, opts ...APIHandlerOption) *APIHandler {
	h := &APIHandler{
		app:     app,
		logger:  log,
		baseURL: "/" + apiVersion,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *APIHandler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	p := classify(err)

	if p.status >= http.StatusInternalServerError {
		log := h.logger.WithContext(r.Context())
		log.Error().Err(err).Int("status", p.status).Str("path", r.URL.Path).Msg("request failed")
	}

	writeError(w, r, p.status, p.code, p.message, p.details)
}

func (h *APIHandler) tablePath(table string) string {
	return fmt.Sprintf("%s/tables/%s", h.baseURL, table)
}

func (h *APIHandler) sessionPath(table, id string) string {
	return fmt.Sprintf("%s/sessions/%s", h.tablePath(table), id)
}
