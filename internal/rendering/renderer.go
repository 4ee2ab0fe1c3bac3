package rendering

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sf-domain-reports/internal/domain"
)

//go:embed templates/report.html
var templatesFS embed.FS

const (
	reportTemplate    = "templates/report.html"
	displayDateLayout = "01/02/2006"
	generatedAtLayout = "2006-01-02 15:04:05 MST"
)

// Renderer produz o HTML do relatório a partir do template embutido
type Renderer struct {
	tmpl *template.Template
	now  func() time.Time
}

// NewRenderer carrega o template embutido no binário
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("report.html").Option("missingkey=error").ParseFS(templatesFS, reportTemplate)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrTemplate, "rendering: erro ao carregar o template: %v", err)
	}

	return &Renderer{tmpl: tmpl, now: time.Now}, nil
}

// NewRendererFromText cria um renderer com um template informado em texto
func NewRendererFromText(name, text string) (*Renderer, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrTemplate, "rendering: erro ao carregar o template %s: %v", name, err)
	}

	return &Renderer{tmpl: tmpl, now: time.Now}, nil
}

// Render executa o template sobre o contexto informado
func (r *Renderer) Render(data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(domain.ErrTemplate, "rendering: %v", err)
	}
	return buf.String(), nil
}

// RenderReport monta o contexto a partir das métricas e renderiza o relatório
func (r *Renderer) RenderReport(metrics *domain.ReportMetrics, req *domain.ReportRequest) (string, error) {
	if metrics == nil || req == nil {
		return "", errors.Wrap(domain.ErrTemplate, "rendering: métricas ou requisição ausentes")
	}
	return r.Render(BuildContext(metrics, req, r.now()))
}

// BuildContext converte as métricas no mapa de variáveis usado pelo template
func BuildContext(metrics *domain.ReportMetrics, req *domain.ReportRequest, generatedAt time.Time) map[string]any {
	return map[string]any{
		"report_month":  metrics.ReportMonth,
		"client_name":   metrics.ClientName,
		"date_start":    req.DateStart.Format(displayDateLayout),
		"date_end":      req.DateEnd.Format(displayDateLayout),
		"quote_starts":  metrics.QuoteStarts,
		"phone_clicks":  metrics.PhoneClicks,
		"sms_clicks":    metrics.SMSClicks,
		"conversions":   metrics.Conversions,
		"cost":          metrics.Cost,
		"total_leads":   metrics.TotalLeads,
		"cost_per_lead": metrics.CostPerLead,
		"generated_at":  generatedAt.UTC().Format(generatedAtLayout),
	}
}

