package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// SetChain wraps handler with middlewares, outermost first.
func SetChain(handler http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return handler
}

// SetRouteChain wraps a single route with per-route middlewares, outermost first.
func SetRouteChain(handler http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return handler
}

// HTTPResponseTraceInjection exposes the request's trace id on the response
// so clients can reference it when reporting a failure.
func HTTPResponseTraceInjection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanCtx := trace.SpanContextFromContext(r.Context())
		if spanCtx.HasTraceID() {
			w.Header().Set("X-Trace-ID", spanCtx.TraceID().String())
		}

		next.ServeHTTP(w, r)
	})
}

type HTTPRequestLogger struct {
	logger         *logrus.Logger
	debug          bool
	errorThreshold int
}

func NewHTTPRequestLogger(logger *logrus.Logger, debug bool, errorThreshold int) *HTTPRequestLogger {
	return &HTTPRequestLogger{
		logger:         logger,
		debug:          debug,
		errorThreshold: errorThreshold,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *statusRecorder) WriteHeader(statusCode int) {
	rec.statusCode = statusCode
	rec.ResponseWriter.WriteHeader(statusCode)
}

func (l *HTTPRequestLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		entry := l.logger.WithContext(r.Context()).WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.statusCode,
			"duration": time.Since(start).String(),
		})

		switch {
		case rec.statusCode >= l.errorThreshold:
			entry.Error("http request")
		case l.debug:
			entry.Info("http request")
		}
	})
}
