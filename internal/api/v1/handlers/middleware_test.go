package handlers_test

import (
	"encoding/json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"ulascansenturk/geo-prediction-service/internal/api/v1/handlers"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestRequestLoggerAssignsRequestID(t *testing.T) {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", nil)

	handlers.RequestLogger(okHandler()).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusTeapot, recorder.Code)
	_, err := uuid.Parse(recorder.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
}

func TestRequestLoggerKeepsCallerRequestID(t *testing.T) {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", nil)
	req.Header.Set("X-Request-ID", "frontend-42")

	handlers.RequestLogger(okHandler()).ServeHTTP(recorder, req)

	assert.Equal(t, "frontend-42", recorder.Header().Get("X-Request-ID"))
}

func TestRecovererReturnsJSONError(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil model")
	})
	recorder := httptest.NewRecorder()

	handlers.Recoverer(panicking).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/predict", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var response handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Contains(t, response.Error, "nil model")
}

func TestRecovererKeepsStartedResponse(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"prediction":1}`))
		panic("late failure")
	})
	recorder := httptest.NewRecorder()

	handlers.Recoverer(panicking).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/predict", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `{"prediction":1}`, recorder.Body.String())
}

func TestRecovererKeepsResponseStartedByWrite(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("partial"))
		panic("late failure")
	})
	recorder := httptest.NewRecorder()

	handlers.Recoverer(panicking).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/predict", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "partial", recorder.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	h := handlers.Chain(okHandler(), handlers.CORS([]string{"*"}))

	req := httptest.NewRequest(http.MethodOptions, "/predict/A", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	recorder := httptest.NewRecorder()

	h.ServeHTTP(recorder, req)

	assert.NotEqual(t, http.StatusTeapot, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORSRejectsUnlistedOrigin(t *testing.T) {
	h := handlers.Chain(okHandler(), handlers.CORS([]string{"https://maps.example.com"}))

	req := httptest.NewRequest(http.MethodPost, "/predict/A", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	recorder := httptest.NewRecorder()

	h.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusTeapot, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) handlers.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handlers.Chain(okHandler(), mark("outer"), mark("inner")).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
}
