package middleware

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"io"
	"mime"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
)

const (
	encodingGzip     = "gzip"
	encodingBrotli   = "br"
	encodingDeflate  = "deflate"
	encodingIdentity = "identity"

	compressionAlgorithmKey  = "compression.algorithm"
	compressionSkipReasonKey = "compression.skip_reason"

	MetricCompressionTotal        = "http_compression_total"
	MetricCompressionSkippedTotal = "http_compression_skipped_total"

	skipReasonBelowMinSize    = "below_min_size"
	skipReasonNonCompressible = "non_compressible_type"
	skipReasonNoEncoding      = "no_accept_encoding"
	skipReasonSkippedPath     = "skipped_path"
)

// DefaultCompressibleTypes are compressed when no content types are configured.
var DefaultCompressibleTypes = []string{
	"application/json",
	"application/problem+json",
	"text/csv",
	"text/plain",
}

// serverPreferenceOrder breaks ties between equally weighted encodings.
var serverPreferenceOrder = []string{encodingGzip, encodingBrotli, encodingDeflate}

type acceptEncoding struct {
	encoding string
	quality  float64
}

type encoderPools struct {
	gzip    sync.Pool
	deflate sync.Pool
	brotli  sync.Pool
}

func newEncoderPools(level int) *encoderPools {
	return &encoderPools{
		gzip: sync.Pool{New: func() any {
			w, _ := gzip.NewWriterLevel(io.Discard, level)

			return w
		}},
		deflate: sync.Pool{New: func() any {
			w, _ := flate.NewWriter(io.Discard, level)

			return w
		}},
		brotli: sync.Pool{New: func() any {
			return brotli.NewWriterLevel(io.Discard, min(level, brotli.BestCompression))
		}},
	}
}

// Compression negotiates gzip, br or deflate from Accept-Encoding and
// compresses bodies of at least cfg.MinSize bytes with a compressible type.
func Compression(cfg config.Compression, log logger.Logger, metricsClient metrics.Client) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	contentTypes := cfg.ContentTypes
	if len(contentTypes) == 0 {
		contentTypes = DefaultCompressibleTypes
	}

	pools := newEncoderPools(cfg.Level)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if shouldSkipPath(r.URL.Path, cfg.SkipPaths) {
				recordCompressionSkipped(ctx, metricsClient, skipReasonSkippedPath)
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Add("Vary", "Accept-Encoding")

			encodings := parseAcceptEncoding(r.Header.Get("Accept-Encoding"))
			if rejectsIdentity(encodings) && !hasSupportedEncoding(encodings) {
				writeError(w, r, http.StatusNotAcceptable, "NOT_ACCEPTABLE", "no acceptable content encoding available")

				return
			}

			encoding := selectEncoding(encodings)
			if encoding == "" {
				recordCompressionSkipped(ctx, metricsClient, skipReasonNoEncoding)
				next.ServeHTTP(w, r)

				return
			}

			cw := &compressResponseWriter{
				ResponseWriter: w,
				ctx:            ctx,
				encoding:       encoding,
				minSize:        cfg.MinSize,
				contentTypes:   contentTypes,
				pools:          pools,
				metricsClient:  metricsClient,
				statusCode:     http.StatusOK,
			}

			defer func() {
				if err := cw.Close(); err != nil {
					ctxLogger := log.WithContext(ctx)
					ctxLogger.Warn().Err(err).Str("encoding", encoding).Msg("closing compressed response")
				}
			}()

			next.ServeHTTP(cw, r)
		})
	}
}

func recordCompressionSkipped(ctx context.Context, metricsClient metrics.Client, reason string) {
	if metricsClient == nil {
		return
	}

	metricsClient.Inc(ctx, MetricCompressionSkippedTotal, int64(1), attribute.String(compressionSkipReasonKey, reason))
}

func parseAcceptEncoding(header string) []acceptEncoding {
	var encodings []acceptEncoding

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, params, _ := strings.Cut(part, ";")
		enc := acceptEncoding{encoding: strings.ToLower(strings.TrimSpace(name)), quality: 1}

		for param := range strings.SplitSeq(params, ";") {
			if qVal, ok := strings.CutPrefix(strings.TrimSpace(param), "q="); ok {
				if q, err := strconv.ParseFloat(qVal, 64); err == nil {
					enc.quality = q
				}
			}
		}

		encodings = append(encodings, enc)
	}

	return encodings
}

func rejectsIdentity(encodings []acceptEncoding) bool {
	return slices.ContainsFunc(encodings, func(e acceptEncoding) bool {
		return (e.encoding == encodingIdentity || e.encoding == "*") && e.quality == 0
	})
}

func hasSupportedEncoding(encodings []acceptEncoding) bool {
	return slices.ContainsFunc(encodings, func(e acceptEncoding) bool {
		return e.quality > 0 && (e.encoding == "*" || slices.Contains(serverPreferenceOrder, e.encoding))
	})
}

// selectEncoding picks the highest weighted supported encoding, using the
// server order on ties. It returns "" when the response should stay identity.
func selectEncoding(encodings []acceptEncoding) string {
	best, bestQuality, bestPriority := "", 0.0, len(serverPreferenceOrder)

	for _, enc := range encodings {
		if enc.quality <= 0 {
			continue
		}

		if enc.encoding == "*" {
			if enc.quality > bestQuality {
				best, bestQuality, bestPriority = serverPreferenceOrder[0], enc.quality, 0
			}

			continue
		}

		priority := slices.Index(serverPreferenceOrder, enc.encoding)
		if priority < 0 {
			continue
		}

		if enc.quality > bestQuality || (enc.quality == bestQuality && priority < bestPriority) {
			best, bestQuality, bestPriority = enc.encoding, enc.quality, priority
		}
	}

	return best
}

func shouldSkipPath(path string, skipPaths []string) bool {
	return slices.ContainsFunc(skipPaths, func(skip string) bool {
		return skip != "" && strings.HasPrefix(path, skip)
	})
}

// compressResponseWriter holds back the status line and the first bytes of
// the body until it knows whether the response is worth compressing.
type compressResponseWriter struct {
	http.ResponseWriter
	ctx           context.Context
	encoding      string
	minSize       int
	contentTypes  []string
	pools         *encoderPools
	metricsClient metrics.Client

	statusCode  int
	wroteHeader bool
	decided     bool
	buf         []byte
	writer      io.WriteCloser
}

func (w *compressResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}

	w.wroteHeader = true
	w.statusCode = statusCode

	if statusCode == http.StatusNoContent || statusCode == http.StatusNotModified || statusCode < http.StatusOK {
		w.decide(false, "")
	}
}

func (w *compressResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if !w.decided {
		if !w.isCompressible(w.Header().Get("Content-Type")) {
			w.decide(false, skipReasonNonCompressible)
		} else {
			w.buf = append(w.buf, b...)
			if len(w.buf) < w.minSize {
				return len(b), nil
			}

			w.decide(true, "")

			return len(b), nil
		}
	}

	if w.writer != nil {
		return w.writer.Write(b)
	}

	return w.ResponseWriter.Write(b)
}

// decide commits the status line and drains whatever was buffered.
func (w *compressResponseWriter) decide(compress bool, skipReason string) {
	w.decided = true

	if compress && w.Header().Get("Content-Encoding") == "" {
		w.Header().Set("Content-Encoding", w.encoding)
		w.Header().Del("Content-Length")
		w.writer = w.newEncoder()

		if w.metricsClient != nil {
			w.metricsClient.Inc(w.ctx, MetricCompressionTotal, int64(1), attribute.String(compressionAlgorithmKey, w.encoding))
		}
	} else if skipReason != "" {
		recordCompressionSkipped(w.ctx, w.metricsClient, skipReason)
	}

	w.ResponseWriter.WriteHeader(w.statusCode)

	if len(w.buf) == 0 {
		return
	}

	buffered := w.buf
	w.buf = nil

	if w.writer != nil {
		_, _ = w.writer.Write(buffered)

		return
	}

	_, _ = w.ResponseWriter.Write(buffered)
}

func (w *compressResponseWriter) newEncoder() io.WriteCloser {
	switch w.encoding {
	case encodingGzip:
		gw := w.pools.gzip.Get().(*gzip.Writer)
		gw.Reset(w.ResponseWriter)

		return &pooledWriter[*gzip.Writer]{writer: gw, pool: &w.pools.gzip}
	case encodingDeflate:
		fw := w.pools.deflate.Get().(*flate.Writer)
		fw.Reset(w.ResponseWriter)

		return &pooledWriter[*flate.Writer]{writer: fw, pool: &w.pools.deflate}
	default:
		bw := w.pools.brotli.Get().(*brotli.Writer)
		bw.Reset(w.ResponseWriter)

		return &pooledWriter[*brotli.Writer]{writer: bw, pool: &w.pools.brotli}
	}
}

func (w *compressResponseWriter) isCompressible(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return slices.ContainsFunc(w.contentTypes, func(allowed string) bool {
		return strings.EqualFold(allowed, mediaType)
	})
}

// Close flushes a body that never reached MinSize uncompressed and finishes the encoder.
func (w *compressResponseWriter) Close() error {
	if !w.decided {
		if !w.wroteHeader {
			// Nothing was written; net/http sends the implicit 200.
			return nil
		}

		w.decide(false, skipReasonBelowMinSize)
	}

	if w.writer != nil {
		return w.writer.Close()
	}

	return nil
}

func (w *compressResponseWriter) Flush() {
	if !w.decided && w.wroteHeader {
		w.decide(w.isCompressible(w.Header().Get("Content-Type")), "")
	}

	if flusher, ok := w.writer.(interface{ Flush() error }); ok {
		_ = flusher.Flush()
	}

	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *compressResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

type encoder interface {
	io.WriteCloser
	Flush() error
}

type pooledWriter[E encoder] struct {
	writer E
	pool   *sync.Pool
}

func (p *pooledWriter[E]) Write(b []byte) (int, error) {
	return p.writer.Write(b)
}

func (p *pooledWriter[E]) Flush() error {
	return p.writer.Flush()
}

func (p *pooledWriter[E]) Close() error {
	err := p.writer.Close()
	p.pool.Put(p.writer)

	return err
}
