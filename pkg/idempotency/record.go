package idempotency

import "net/http"

// Record is the stored outcome of the first request made with a key.
type Record struct {
	StatusCode  int         `json:"status_code"`
	Headers     http.Header `json:"headers"`
	Body        []byte      `json:"body"`
	Fingerprint string      `json:"fingerprint"`
}

// Matches reports whether a replayed request carries the same body as the original.
func (r Record) Matches(fingerprint string) bool {
	return r.Fingerprint == "" || r.Fingerprint == fingerprint
}
