package reporting

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vfg2006/sf-domain-reports/internal/domain"
)

var (
	reportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_generated_total",
			Help: "Total de pedidos de relatório por resultado",
		},
		[]string{"outcome"},
	)

	reportStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_step_duration_seconds",
			Help:    "Duração de cada etapa do pipeline de relatórios",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step"},
	)
)

// outcomeLabel reduz o erro a um rótulo de baixa cardinalidade
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAuth):
		return "auth"
	case errors.Is(err, domain.ErrRejected):
		return "rejected"
	case errors.Is(err, domain.ErrTransient):
		return "transient"
	case errors.Is(err, domain.ErrTemplate):
		return "template"
	case errors.Is(err, domain.ErrUpload):
		return "upload"
	default:
		return "error"
	}
}
