package middleware

import (
	"context"
	"net/http"

	"cardlink-backend/pkg/id"
)

const ContextRequestID contextKey = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with a sortable identifier, reusing the
// client's header when it already carries one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if rid == "" {
			rid = id.GenerateULID("req")
		}
		w.Header().Set(requestIDHeader, rid)
		ctx := context.WithValue(r.Context(), ContextRequestID, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request's identifier, if tagged.
func GetRequestID(ctx context.Context) string {
	rid, _ := ctx.Value(ContextRequestID).(string)
	return rid
}
