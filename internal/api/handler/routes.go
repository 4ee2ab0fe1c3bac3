package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/sf-domain-reports/internal/api/handler/router"
	"github.com/vfg2006/sf-domain-reports/internal/config"
	"github.com/vfg2006/sf-domain-reports/internal/usecases/reporting"
	"github.com/vfg2006/sf-domain-reports/pkg/middleware"
)

// Paths conhecidos, usados também como rótulos de métricas
const (
	PathRoot    = "/"
	PathHealth  = "/health"
	PathWebhook = "/webhook"
	PathMetrics = "/metrics"
)

func KnownPaths() []string {
	return []string{PathRoot, PathHealth, PathWebhook, PathMetrics}
}

func Healthcheck(app config.App) []router.Route {
	return []router.Route{
		{
			Path:    PathRoot,
			Method:  http.MethodGet,
			Handler: RootHandler(app),
		},
		{
			Path:    PathHealth,
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(app),
		},
	}
}

func Reports(service reporting.ReportGenerator, verifier *middleware.TokenVerifier) []router.Route {
	return []router.Route{
		{
			Path:        PathWebhook,
			Method:      http.MethodPost,
			Handler:     Webhook(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.WebhookAuth(verifier)},
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    PathMetrics,
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}
