package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"hrcalc/internal/transport/http/api"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or mints a uuid, and echoes it
// on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)
		next.ServeHTTP(w, r.WithContext(api.WithRequestID(r.Context(), reqID)))
	})
}
