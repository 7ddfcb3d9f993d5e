package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/achabill/blog/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace ID, taken from the incoming
// X-Trace-ID header when present and freshly generated otherwise. A child
// logger carrying the ID is stored in the request context, and the ID is
// echoed back in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewID()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
