package handler

import (
	"net/http"

	"github.com/vfg2006/sf-domain-reports/internal/config"
)

func HealthcheckHandler(app config.App) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": app.Name,
		})
	})
}

// RootHandler descreve o serviço e seus endpoints
func RootHandler(app config.App) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": app.Name,
			"version": app.Version,
			"endpoints": map[string]string{
				"health":  "/health",
				"webhook": "/webhook",
				"metrics": "/metrics",
			},
		})
	})
}
