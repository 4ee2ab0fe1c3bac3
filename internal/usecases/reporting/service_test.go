package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sf-domain-reports/internal/domain"
	"github.com/vfg2006/sf-domain-reports/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sf-domain-reports/pkg/log"
	"go.uber.org/mock/gomock"
)

type pipelineMocks struct {
	reader    *mocks.MockRecordReader
	writer    *mocks.MockRecordWriter
	renderer  *mocks.MockRenderer
	publisher *mocks.MockPublisher
	service   *Service
}

func newPipeline(t *testing.T) *pipelineMocks {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	m := &pipelineMocks{
		reader:    mocks.NewMockRecordReader(ctrl),
		writer:    mocks.NewMockRecordWriter(ctrl),
		renderer:  mocks.NewMockRenderer(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}
	m.service = NewService(m.reader, m.writer, m.renderer, m.publisher)
	m.service.now = func() time.Time { return time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC) }
	return m
}

func juneRequest() *domain.ReportRequest {
	return &domain.ReportRequest{
		RecordID:  "recABC",
		DateStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		AccountID: []string{"123"},
	}
}

func juneFields() domain.RawFields {
	return domain.RawFields{
		"Quote Starts (from Keyword Performance)": float64(3),
		"Phone Clicks (from Keyword Performance)": float64(5),
		"SMS Clicks (from Keyword Performance)":   float64(2),
		"Conversions (from Keyword Performance)":  float64(7),
		"Cost (from Keyword Performance)":         122.4,
		"Client Name":                             []any{"Acme"},
	}
}

func TestGenerate_Success(t *testing.T) {
	p := newPipeline(t)
	req := juneRequest()
	url := "https://acme.github.io/site/reports/report_recABC_20250601_20250630.html"

	gomock.InOrder(
		p.reader.EXPECT().GetRecordFields(gomock.Any(), "recABC").Return(juneFields(), nil),
		p.renderer.EXPECT().RenderReport(gomock.Any(), req).
			DoAndReturn(func(metrics *domain.ReportMetrics, _ *domain.ReportRequest) (string, error) {
				assert.Equal(t, "June 2025", metrics.ReportMonth)
				assert.Equal(t, "Acme", metrics.ClientName)
				assert.Equal(t, int64(17), metrics.TotalLeads)
				assert.Equal(t, int64(123), metrics.Cost)
				assert.Equal(t, int64(8), metrics.CostPerLead)
				return "<html>report</html>", nil
			}),
		p.publisher.EXPECT().Publish(gomock.Any(), "report_recABC_20250601_20250630.html", "<html>report</html>").
			Return(&domain.PublishedReport{URL: url}, nil),
		p.writer.EXPECT().UpdateReportURL(gomock.Any(), "recABC", url).Return(nil),
	)

	result, err := p.service.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, url, result.ReportURL)
	assert.Equal(t, "recABC", result.RecordID)
	assert.Equal(t, int64(17), result.Metrics.TotalLeads)
	assert.Equal(t, time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC), result.ProcessingTime)
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(p *pipelineMocks)
		wantErr  error
		wantStep State
	}{
		{
			name: "Registro inexistente para antes de renderizar",
			setup: func(p *pipelineMocks) {
				p.reader.EXPECT().GetRecordFields(gomock.Any(), gomock.Any()).
					Return(nil, errors.Wrap(domain.ErrNotFound, "airtable"))
			},
			wantErr:  domain.ErrNotFound,
			wantStep: StateReceived,
		},
		{
			name: "Erro de template não publica",
			setup: func(p *pipelineMocks) {
				p.reader.EXPECT().GetRecordFields(gomock.Any(), gomock.Any()).Return(juneFields(), nil)
				p.renderer.EXPECT().RenderReport(gomock.Any(), gomock.Any()).
					Return("", errors.Wrap(domain.ErrTemplate, "map has no entry for key"))
			},
			wantErr:  domain.ErrTemplate,
			wantStep: StateFetched,
		},
		{
			name: "Falha no upload não grava o registro",
			setup: func(p *pipelineMocks) {
				p.reader.EXPECT().GetRecordFields(gomock.Any(), gomock.Any()).Return(juneFields(), nil)
				p.renderer.EXPECT().RenderReport(gomock.Any(), gomock.Any()).Return("<html></html>", nil)
				p.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.Wrap(domain.ErrUpload, "422"))
				p.writer.EXPECT().UpdateReportURL(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr:  domain.ErrUpload,
			wantStep: StateRendered,
		},
		{
			name: "Falha ao gravar a URL",
			setup: func(p *pipelineMocks) {
				p.reader.EXPECT().GetRecordFields(gomock.Any(), gomock.Any()).Return(juneFields(), nil)
				p.renderer.EXPECT().RenderReport(gomock.Any(), gomock.Any()).Return("<html></html>", nil)
				p.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.PublishedReport{URL: "https://x/r.html"}, nil)
				p.writer.EXPECT().UpdateReportURL(gomock.Any(), gomock.Any(), "https://x/r.html").
					Return(errors.Wrap(domain.ErrTransient, "429"))
			},
			wantErr:  domain.ErrTransient,
			wantStep: StatePublished,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPipeline(t)
			tt.setup(p)

			result, err := p.service.Generate(context.Background(), juneRequest())

			assert.Nil(t, result)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var stepErr *StepError
			require.ErrorAs(t, err, &stepErr)
			assert.Equal(t, tt.wantStep, stepErr.Step)
			assert.Equal(t, "recABC", stepErr.RecordID)
		})
	}
}

func TestGenerate_InvalidRequest(t *testing.T) {
	p := newPipeline(t)

	_, err := p.service.Generate(context.Background(), &domain.ReportRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = p.service.Generate(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, "success", outcomeLabel(nil))
	assert.Equal(t, "not_found", outcomeLabel(errors.Wrap(domain.ErrNotFound, "x")))
	assert.Equal(t, "rejected", outcomeLabel(newStepError(StatePublished, "rec1", errors.Wrap(domain.ErrRejected, "422"))))
	assert.Equal(t, "upload", outcomeLabel(newStepError(StateRendered, "rec1", domain.ErrUpload)))
	assert.Equal(t, "error", outcomeLabel(errors.New("boom")))
}
