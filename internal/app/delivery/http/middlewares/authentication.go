package middlewares

import (
	"context"
	"ehr-portal-service/internal/app/models"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/utils"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate admits requests carrying a valid session token from the
// session cookie or a Bearer header. Every failure is a 401 and next is
// never invoked.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		token := m.sessionToken(r)
		if token == "" {
			utils.LogSecurityEvent(m.Log, "session_missing", requestID, "low",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionMissing(nil))
			return
		}

		session, err := m.verify(r.Context(), token)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "session_rejected", requestID, "medium",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, unauthorized(err))
			return
		}

		requestCtx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(requestCtx))
	})
}

func (m *Middlewares) sessionToken(r *http.Request) string {
	cookieName := constvars.CookieSessionToken
	if m.InternalConfig != nil && m.InternalConfig.Session.CookieName != "" {
		cookieName = m.InternalConfig.Session.CookieName
	}
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(header, constvars.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, constvars.BearerPrefix))
	}
	return ""
}

func (m *Middlewares) verify(ctx context.Context, token string) (session *models.Session, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			session = nil
			err = exceptions.ErrSessionInvalid(panicError(rec))
		}
	}()

	if m.SessionService == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	session, err = m.SessionService.Verify(ctx, token)
	if err == nil && session == nil {
		err = exceptions.ErrSessionInvalid(nil)
	}
	return session, err
}

// unauthorized keeps 401 errors as they are and turns anything else into
// an invalid session.
func unauthorized(err error) error {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
		return customErr
	}
	return exceptions.ErrSessionInvalid(err)
}
