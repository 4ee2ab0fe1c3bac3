package reporting

import (
	"context"

	"github.com/vfg2006/sf-domain-reports/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/reporting.go -package=mocks

// RecordReader busca os campos do registro de relatório
type RecordReader interface {
	GetRecordFields(ctx context.Context, recordID string) (domain.RawFields, error)
}

// RecordWriter grava a URL do relatório publicado de volta no registro
type RecordWriter interface {
	UpdateReportURL(ctx context.Context, recordID, reportURL string) error
}

// Renderer gera o HTML do relatório
type Renderer interface {
	RenderReport(metrics *domain.ReportMetrics, req *domain.ReportRequest) (string, error)
}

// Publisher publica o HTML e devolve a URL pública
type Publisher interface {
	Publish(ctx context.Context, fileName, html string) (*domain.PublishedReport, error)
}

// ReportGenerator executa o pipeline completo para um pedido do webhook
type ReportGenerator interface {
	Generate(ctx context.Context, req *domain.ReportRequest) (*domain.ReportResult, error)
}
