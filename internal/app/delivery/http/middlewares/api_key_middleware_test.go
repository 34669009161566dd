package middlewares

import (
	"net/http"
	"net/http/httptest"
	"registro-service/internal/app/config"
	"registro-service/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares(apiKey string) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{SuperadminAPIKey: apiKey},
	})
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAPIKey(t *testing.T) {
	t.Run("Passes Through When No Key Configured", func(t *testing.T) {
		called := false
		handler := newTestMiddlewares("").RequireAPIKey(okHandler(&called))

		request := httptest.NewRequest(http.MethodGet, "/patients/search", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Rejects Missing Key", func(t *testing.T) {
		called := false
		handler := newTestMiddlewares("secret").RequireAPIKey(okHandler(&called))

		request := httptest.NewRequest(http.MethodGet, "/patients/search", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Rejects Wrong Key", func(t *testing.T) {
		called := false
		handler := newTestMiddlewares("secret").RequireAPIKey(okHandler(&called))

		request := httptest.NewRequest(http.MethodGet, "/patients/search", nil)
		request.Header.Set(constvars.HeaderAPIKey, "nope")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Accepts Matching Key", func(t *testing.T) {
		called := false
		handler := newTestMiddlewares("secret").RequireAPIKey(okHandler(&called))

		request := httptest.NewRequest(http.MethodGet, "/patients/search", nil)
		request.Header.Set(constvars.HeaderAPIKey, "secret")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("Generates An ID When Absent", func(t *testing.T) {
		var seen string
		handler := newTestMiddlewares("").RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		request := httptest.NewRequest(http.MethodGet, "/health", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, recorder.Header().Get(constvars.HeaderRequestID))
	})

	t.Run("Keeps A Caller Supplied ID", func(t *testing.T) {
		var seen string
		handler := newTestMiddlewares("").RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		request := httptest.NewRequest(http.MethodGet, "/health", nil)
		request.Header.Set(constvars.HeaderRequestID, "caller-supplied")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "caller-supplied", seen)
	})
}

func TestRecoverer(t *testing.T) {
	handler := newTestMiddlewares("").Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	request := httptest.NewRequest(http.MethodGet, "/patients/search", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
