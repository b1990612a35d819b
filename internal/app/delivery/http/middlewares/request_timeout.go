package middlewares

import (
	"context"
	"net/http"
	"time"
)

// RequestTimeout bounds the request context when APP_REQUEST_TIMEOUT_IN_SECONDS
// is positive. Zero leaves the context without a deadline.
func (m *Middlewares) RequestTimeout(next http.Handler) http.Handler {
	timeout := time.Duration(m.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
