package middleware

import (
	"bytes"
	"net/http"
	"strings"
)

const (
	headerETag        = "ETag"
	headerIfNoneMatch = "If-None-Match"
)

// BufferedResponseWriter holds the whole response so a validator can be
// computed before anything reaches the client. Headers are shared with the
// wrapped writer.
type BufferedResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	body        bytes.Buffer
	wroteHeader bool
}

func NewBufferedResponseWriter(w http.ResponseWriter) *BufferedResponseWriter {
	return &BufferedResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (w *BufferedResponseWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}

	w.statusCode = code
	w.wroteHeader = true
}

func (w *BufferedResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	return w.body.Write(b)
}

func (w *BufferedResponseWriter) StatusCode() int {
	return w.statusCode
}

func (w *BufferedResponseWriter) Body() []byte {
	return w.body.Bytes()
}

func (w *BufferedResponseWriter) FlushToClient() error {
	w.ResponseWriter.WriteHeader(w.statusCode)

	if w.body.Len() == 0 {
		return nil
	}

	_, err := w.ResponseWriter.Write(w.body.Bytes())

	return err
}

// ConditionalGET tags successful GET responses with an ETag and answers a
// matching If-None-Match with 304 Not Modified.
func ConditionalGET() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)

				return
			}

			brw := NewBufferedResponseWriter(w)
			next.ServeHTTP(brw, r)

			if brw.StatusCode() != http.StatusOK {
				_ = brw.FlushToClient()

				return
			}

			etag := GenerateETag(brw.Body())
			w.Header().Set(headerETag, etag)

			if etagMatches(r.Header.Get(headerIfNoneMatch), etag) {
				w.Header().Del("Content-Length")
				w.WriteHeader(http.StatusNotModified)

				return
			}

			_ = brw.FlushToClient()
		})
	}
}

func etagMatches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}

	if strings.TrimSpace(ifNoneMatch) == "*" {
		return true
	}

	for value := range strings.SplitSeq(ifNoneMatch, ",") {
		value = strings.TrimPrefix(strings.TrimSpace(value), "W/")
		if value == etag {
			return true
		}
	}

	return false
}
