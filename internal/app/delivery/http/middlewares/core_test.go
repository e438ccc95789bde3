package middlewares

import (
	"clinicsync-service/internal/app/config"
	"clinicsync-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares(serviceToken string) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		ClinicBackend: config.ClinicBackend{ServiceToken: serviceToken},
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares("")

	t.Run("generates an id when the client sends none", func(t *testing.T) {
		var seen string
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("propagates a client-supplied id", func(t *testing.T) {
		var seen string
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-123", seen)
		assert.Equal(t, "client-id-123", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestBearerTokenMiddleware(t *testing.T) {
	t.Run("caller token lands in context", func(t *testing.T) {
		middlewares := newTestMiddlewares("")
		var seen string
		handler := middlewares.BearerToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_BEARER_TOKEN_KEY).(string)
		}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer caller-token")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "caller-token", seen)
	})

	t.Run("no token and no fallback rejects with 401", func(t *testing.T) {
		middlewares := newTestMiddlewares("")
		called := false
		handler := middlewares.BearerToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, called)
	})

	t.Run("no token with fallback passes through", func(t *testing.T) {
		middlewares := newTestMiddlewares("service-token")
		called := false
		handler := middlewares.BearerToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, called)
	})
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	middlewares := newTestMiddlewares("")
	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}
