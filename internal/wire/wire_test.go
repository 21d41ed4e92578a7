package wire

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Colin-Stark/travelwise-server/internal/adaptor"
	"github.com/Colin-Stark/travelwise-server/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	handler := adaptor.NewHandler(&usecase.Service{}, zap.NewNop())
	return SetupRouter(handler, zap.NewNop())
}

func TestRootEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Welcome to Travelwise API"}`, rec.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestEchoEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"hello":"world"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":{"hello":"world"}}`, rec.Body.String())
}

func TestTripRoutesGone(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/trip", "/trip/create", "/trip/anything/else"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))

		assert.Equal(t, http.StatusGone, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "use /api/flights endpoints")
	}
}
