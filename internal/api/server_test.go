package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sf-domain-reports/internal/config"
	"github.com/vfg2006/sf-domain-reports/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sf-domain-reports/pkg/log"
	"github.com/vfg2006/sf-domain-reports/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestNewHandler(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockReportGenerator(ctrl)

	cfg := &config.Config{App: config.App{Name: "sf-domain-reports", Version: "1.0.0"}}
	h := NewHandler(cfg, service, middleware.NewTokenVerifier("s3cret", ""))

	t.Run("Health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("Webhook exige token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Métricas expostas", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "http_requests_total")
	})
}
