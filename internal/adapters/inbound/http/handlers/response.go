package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/architeacher/datatable/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/pkg/circuitbreaker"
	"go.opentelemetry.io/otel/trace"
)

const (
	apiVersion = "v1"

	contentTypeHeader = "Content-Type"
	applicationJSON   = "application/json"

	codeInvalidParameter  = "INVALID_PARAMETER"
	codeInvalidJSON       = "INVALID_JSON"
	codeValidationError   = "VALIDATION_ERROR"
	codeTableNotFound     = "TABLE_NOT_FOUND"
	codeSessionNotFound   = "SESSION_NOT_FOUND"
	codeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	codeSourceUnavailable = "SOURCE_UNAVAILABLE"
	codeCircuitOpen       = "CIRCUIT_OPEN"
	codeTimeout           = "TIMEOUT"
	codeInternalError     = "INTERNAL_ERROR"

	msgInvalidRequestBody = "invalid request body"
	msgInternalError      = "internal server error"

	// W3C traceparent: {version}-{trace-id}-{parent-id}-{flags}.
	traceparentTraceIDStart = 3
	traceparentTraceIDEnd   = traceparentTraceIDStart + 32
	traceparentMinLength    = 55
)

type (
	ResponseMeta struct {
		RequestID  string `json:"requestId"`
		TraceID    string `json:"traceId,omitempty"`
		APIVersion string `json:"apiVersion"`
	}

	// EnvelopedResponse wraps response data with metadata and optional pagination.
	EnvelopedResponse struct {
		Data       any               `json:"data"`
		Meta       ResponseMeta      `json:"meta"`
		Pagination *model.Pagination `json:"pagination,omitempty"`
	}

	ErrorResponse struct {
		Code      string                  `json:"code"`
		Message   string                  `json:"message"`
		RequestID string                  `json:"requestId,omitempty"`
		Details   []model.ValidationError `json:"details,omitempty"`
		Timestamp time.Time               `json:"timestamp"`
	}

	problem struct {
		status  int
		code    string
		message string
		details []model.ValidationError
	}
)

func NewMeta(r *http.Request) ResponseMeta {
	return ResponseMeta{
		RequestID:  middleware.GetRequestID(r.Context()),
		TraceID:    ExtractTraceID(r),
		APIVersion: apiVersion,
	}
}

// ExtractTraceID prefers the active span and falls back to the traceparent header.
func ExtractTraceID(r *http.Request) string {
	if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	traceparent := r.Header.Get("traceparent")
	if len(traceparent) < traceparentMinLength {
		return ""
	}

	return traceparent[traceparentTraceIDStart:traceparentTraceIDEnd]
}

func writeEnveloped(w http.ResponseWriter, r *http.Request, status int, data any, pagination *model.Pagination) {
	writeJSONResponse(w, status, EnvelopedResponse{
		Data:       data,
		Meta:       NewMeta(r),
		Pagination: pagination,
	})
}

func writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details []model.ValidationError) {
	writeJSONResponse(w, status, ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: middleware.GetRequestID(r.Context()),
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

// classify maps a use case error onto its HTTP representation.
func classify(err error) problem {
	var validationErrs *model.ValidationErrors
	if errors.As(err, &validationErrs) {
		return problem{
			status:  http.StatusBadRequest,
			code:    codeValidationError,
			message: validationErrs.Error(),
			details: validationErrs.Errors,
		}
	}

	switch {
	case errors.Is(err, model.ErrUnknownTable):
		return problem{status: http.StatusNotFound, code: codeTableNotFound, message: err.Error()}
	case errors.Is(err, model.ErrSessionNotFound):
		return problem{status: http.StatusNotFound, code: codeSessionNotFound, message: err.Error()}
	case errors.Is(err, model.ErrUnknownField):
		return problem{status: http.StatusBadRequest, code: model.CodeUnknownField, message: err.Error()}
	case errors.Is(err, model.ErrFieldNotSortable):
		return problem{status: http.StatusBadRequest, code: model.CodeNotSortable, message: err.Error()}
	case errors.Is(err, model.ErrInvalidPageSize):
		return problem{status: http.StatusBadRequest, code: model.CodeInvalidPageSize, message: err.Error()}
	case errors.Is(err, model.ErrUnsupportedFormat):
		return problem{status: http.StatusBadRequest, code: codeUnsupportedFormat, message: err.Error()}
	case errors.Is(err, circuitbreaker.ErrCircuitOpen), errors.Is(err, circuitbreaker.ErrTooManyRequests):
		return problem{status: http.StatusServiceUnavailable, code: codeCircuitOpen, message: model.ErrSourceUnavailable.Error()}
	case errors.Is(err, model.ErrSourceUnavailable):
		return problem{status: http.StatusBadGateway, code: codeSourceUnavailable, message: model.ErrSourceUnavailable.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return problem{status: http.StatusGatewayTimeout, code: codeTimeout, message: "upstream request timed out"}
	default:
		return problem{status: http.StatusInternalServerError, code: codeInternalError, message: msgInternalError}
	}
}

// NotFound answers unknown routes with the JSON error body.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "NOT_FOUND", "route not found", nil)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
}
