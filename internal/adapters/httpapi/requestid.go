package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	maxRequestIDLen = 128
)

var validRequestID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type requestIDCtxKey struct{}

// RequestID reuses a well-formed X-Request-ID from the client or assigns a
// new UUID, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if len(id) == 0 || len(id) > maxRequestIDLen || !validRequestID.MatchString(id) {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDCtxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey{}).(string)
	return id
}

// RequestIDLogAttr is a logger.ContextExtractor for the request id.
func RequestIDLogAttr(ctx context.Context) (slog.Attr, bool) {
	if id := RequestIDFromContext(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}
