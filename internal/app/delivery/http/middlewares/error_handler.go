package middlewares

import (
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPanicRecovered(panicError(rec)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func panicError(rec any) error {
	switch x := rec.(type) {
	case string:
		return errors.New(x)
	case error:
		return x
	default:
		return fmt.Errorf("unknown panic: %v", x)
	}
}
