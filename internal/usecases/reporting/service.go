package reporting

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sf-domain-reports/internal/domain"
	"github.com/vfg2006/sf-domain-reports/pkg/log"
)

// Service executa o pipeline de relatórios: busca o registro, calcula as
// métricas, renderiza, publica e grava a URL de volta no registro.
type Service struct {
	reader    RecordReader
	writer    RecordWriter
	renderer  Renderer
	publisher Publisher
	now       func() time.Time
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(reader RecordReader, writer RecordWriter, renderer Renderer, publisher Publisher) *Service {
	return &Service{
		reader:    reader,
		writer:    writer,
		renderer:  renderer,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *Service) Generate(ctx context.Context, req *domain.ReportRequest) (result *domain.ReportResult, err error) {
	state := StateReceived
	logger := log.ForContext(ctx)

	defer func() {
		reportsTotal.WithLabelValues(outcomeLabel(err)).Inc()
	}()

	if req == nil || strings.TrimSpace(req.RecordID) == "" {
		return nil, newStepError(state, "", errors.Wrap(domain.ErrInvalidRequest, "pedido sem record id"))
	}

	logger = logger.WithFields(log.Fields{
		"record_id":  req.RecordID,
		"date_start": req.DateStart.Format(time.DateOnly),
		"date_end":   req.DateEnd.Format(time.DateOnly),
		"account_id": req.FirstAccountID(),
		"carrier":    req.FirstCarrier(),
	})
	logger.Info("reports: processing report request")

	fail := func(err error) error {
		logger.WithFields(log.Fields{
			"state":       StateFailed,
			"last_state":  state,
			"error":       err.Error(),
			"error_class": outcomeLabel(err),
		}).Error("reports: pipeline failed")
		return newStepError(state, req.RecordID, err)
	}

	// RECEIVED -> FETCHED
	stepStart := time.Now()
	fields, err := s.reader.GetRecordFields(ctx, req.RecordID)
	observeStep(StateFetched, stepStart)
	if err != nil {
		return nil, fail(err)
	}
	state = StateFetched

	metrics := domain.CalculateMetrics(domain.MapMetrics(fields), domain.ReportMonth(req.DateStart, req.DateEnd))
	metrics.ClientName = domain.ClientName(fields)

	logger.WithFields(log.Fields{
		"state":         state,
		"report_month":  metrics.ReportMonth,
		"total_leads":   metrics.TotalLeads,
		"cost":          metrics.Cost,
		"cost_per_lead": metrics.CostPerLead,
	}).Debug("reports: metrics calculated")

	// FETCHED -> RENDERED
	stepStart = time.Now()
	html, err := s.renderer.RenderReport(metrics, req)
	observeStep(StateRendered, stepStart)
	if err != nil {
		return nil, fail(err)
	}
	state = StateRendered

	// RENDERED -> PUBLISHED
	stepStart = time.Now()
	published, err := s.publisher.Publish(ctx, req.ReportFileName(), html)
	observeStep(StatePublished, stepStart)
	if err != nil {
		return nil, fail(err)
	}
	state = StatePublished

	logger.WithFields(log.Fields{
		"state":      state,
		"report_url": published.URL,
	}).Info("reports: report published")

	// PUBLISHED -> UPDATED
	stepStart = time.Now()
	err = s.writer.UpdateReportURL(ctx, req.RecordID, published.URL)
	observeStep(StateUpdated, stepStart)
	if err != nil {
		return nil, fail(err)
	}
	state = StateUpdated

	logger.WithFields(log.Fields{
		"state":      StateDone,
		"report_url": published.URL,
	}).Info("reports: report request completed")

	return &domain.ReportResult{
		ReportURL:      published.URL,
		RecordID:       req.RecordID,
		Metrics:        metrics,
		ProcessingTime: s.now().UTC(),
	}, nil
}

func observeStep(step State, start time.Time) {
	reportStepDuration.WithLabelValues(string(step)).Observe(time.Since(start).Seconds())
}
