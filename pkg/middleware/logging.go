package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"agora/pkg/common"
	"agora/pkg/logger"
)

type Logging struct {
	logger *zap.SugaredLogger
}

func NewLoggingMiddleware(l *zap.SugaredLogger) *Logging {
	return &Logging{logger: l}
}

// SetupTracing assigns every request a trace id, echoed back in the
// X-Request-ID header.
func (lm *Logging) SetupTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceId := r.Header.Get("X-Request-ID")
		if traceId == "" {
			traceId = common.RandStringRunes(8)
		}
		w.Header().Set("X-Request-ID", traceId)
		r.Header.Set("X-Request-ID", traceId)
		next.ServeHTTP(w, r)
	})
}

// SetupLogging puts a request-scoped logger into the context so that
// handlers can call logger.Log(ctx).
func (lm *Logging) SetupLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := lm.logger.With("trace_id", r.Header.Get("X-Request-ID"))
		ctx := logger.ToContext(r.Context(), reqLogger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (lm *Logging) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Log(r.Context()).Infow("request handled",
			"method", r.Method,
			"url", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"took", time.Since(start),
		)
	})
}
