package middleware

import (
	"encoding/json"
	"net/http"
	"time"
)

type errorBody struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	RequestID string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(errorBody{
		Code:      code,
		Message:   message,
		RequestID: GetRequestID(r.Context()),
		Timestamp: time.Now().UTC(),
	})
}
