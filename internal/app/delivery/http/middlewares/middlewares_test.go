package middlewares

import (
	"ehr-portal-service/internal/app/config"
	"ehr-portal-service/internal/app/contracts/mocks"
	"ehr-portal-service/internal/app/models"
	"ehr-portal-service/internal/app/services/shared/credentials"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/exceptions"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			MaxRequests:                2,
			RequestBodyLimitInMegabyte: 1,
		},
		Vendor: config.AppVendor{
			BaseUrl:     "https://vendor.example.com",
			UrlPrefix:   "clinic",
			APIKey:      "env-key",
			AccessToken: "env-token",
		},
		Session: config.AppSession{CookieName: constvars.CookieSessionToken},
	}
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestRequestIDMiddleware(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}

	var seen string
	var fromClient bool
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		fromClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
	}))

	t.Run("client supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "abc")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "abc", seen)
		assert.True(t, fromClient)
		assert.Equal(t, "abc", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.False(t, fromClient)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestLoggingKeepsStatus(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}
	handler := m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["error"])
}

func TestAuthenticate(t *testing.T) {
	session := &models.Session{SessionID: "s1", UserID: "1", Email: "admin@example.com"}

	tests := []struct {
		name       string
		setupReq   func(r *http.Request)
		setupMock  func(s *mocks.MockSessionService)
		wantStatus int
		wantError  string
	}{
		{
			name:       "no token",
			setupReq:   func(r *http.Request) {},
			setupMock:  func(s *mocks.MockSessionService) {},
			wantStatus: http.StatusUnauthorized,
			wantError:  constvars.ErrClientUnauthorizedNoSession,
		},
		{
			name: "valid cookie",
			setupReq: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: constvars.CookieSessionToken, Value: "good"})
			},
			setupMock: func(s *mocks.MockSessionService) {
				s.On("Verify", mock.Anything, "good").Return(session, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "valid bearer",
			setupReq: func(r *http.Request) {
				r.Header.Set(constvars.HeaderAuthorization, "Bearer good")
			},
			setupMock: func(s *mocks.MockSessionService) {
				s.On("Verify", mock.Anything, "good").Return(session, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "revoked token keeps its 401",
			setupReq: func(r *http.Request) {
				r.Header.Set(constvars.HeaderAuthorization, "Bearer old")
			},
			setupMock: func(s *mocks.MockSessionService) {
				s.On("Verify", mock.Anything, "old").Return(nil, exceptions.ErrSessionRevoked(nil))
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  constvars.ErrClientUnauthorizedNoSession,
		},
		{
			name: "verifier failure becomes invalid session",
			setupReq: func(r *http.Request) {
				r.Header.Set(constvars.HeaderAuthorization, "Bearer bad")
			},
			setupMock: func(s *mocks.MockSessionService) {
				s.On("Verify", mock.Anything, "bad").Return(nil, errors.New("redis down"))
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  constvars.ErrClientUnauthorizedInvalidSession,
		},
		{
			name: "verifier panic becomes invalid session",
			setupReq: func(r *http.Request) {
				r.Header.Set(constvars.HeaderAuthorization, "Bearer panic")
			},
			setupMock: func(s *mocks.MockSessionService) {
				s.On("Verify", mock.Anything, "panic").Run(func(args mock.Arguments) {
					panic("verifier exploded")
				})
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  constvars.ErrClientUnauthorizedInvalidSession,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionService := new(mocks.MockSessionService)
			tt.setupMock(sessionService)
			m := &Middlewares{Log: zap.NewNop(), SessionService: sessionService, InternalConfig: testConfig()}

			called := false
			handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
				assert.True(t, ok)
				assert.Equal(t, session, got)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
			tt.setupReq(req)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.False(t, called)
				assert.Equal(t, tt.wantError, decodeError(t, rr)["error"])
			} else {
				assert.True(t, called)
			}
		})
	}
}

func TestResolveCredentials(t *testing.T) {
	t.Run("cookies override configured values", func(t *testing.T) {
		m := &Middlewares{Log: zap.NewNop(), InternalConfig: testConfig()}

		var got credentials.Credentials
		handler := m.ResolveCredentials(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = credentials.FromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieVendorAPIKey, Value: "cookie-key"})
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, credentials.Credentials{APIKey: "cookie-key", AccessToken: "env-token"}, got)
	})

	tests := []struct {
		name   string
		mutate func(c *config.InternalConfig)
	}{
		{name: "missing token", mutate: func(c *config.InternalConfig) { c.Vendor.AccessToken = "" }},
		{name: "missing base url", mutate: func(c *config.InternalConfig) { c.Vendor.BaseUrl = "" }},
		{name: "missing prefix", mutate: func(c *config.InternalConfig) { c.Vendor.UrlPrefix = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)
			m := &Middlewares{Log: zap.NewNop(), InternalConfig: cfg}

			called := false
			handler := m.ResolveCredentials(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.False(t, called)
			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, constvars.ErrClientAPIConfigurationMissing, decodeError(t, rr)["error"])
		})
	}
}

func TestBodyLimit(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop(), InternalConfig: testConfig()}

	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	small := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`))
	handler.ServeHTTP(httptest.NewRecorder(), small)
	assert.NoError(t, readErr)

	large := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", (1<<20)+1)))
	handler.ServeHTTP(httptest.NewRecorder(), large)
	assert.Error(t, readErr)
}

func TestRateLimit(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop(), InternalConfig: testConfig()}
	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Equal(t, constvars.ErrClientTooManyRequests, decodeError(t, last)["error"])
}

func TestRequestTimeout(t *testing.T) {
	var hasDeadline bool
	var remaining time.Duration
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var deadline time.Time
		deadline, hasDeadline = r.Context().Deadline()
		remaining = time.Until(deadline)
	})

	t.Run("zero leaves no deadline", func(t *testing.T) {
		m := NewMiddlewares(zap.NewNop(), nil, testConfig())
		m.RequestTimeout(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.False(t, hasDeadline)
	})

	t.Run("configured seconds bound the context", func(t *testing.T) {
		cfg := testConfig()
		cfg.App.RequestTimeoutInSeconds = 5
		m := NewMiddlewares(zap.NewNop(), nil, cfg)
		m.RequestTimeout(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		require.True(t, hasDeadline)
		assert.LessOrEqual(t, remaining, 5*time.Second)
		assert.Greater(t, remaining, 4*time.Second)
	})
}
