package airtable

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sf-domain-reports/infrastructure/integrator/airtable/airtableclient"
	"github.com/vfg2006/sf-domain-reports/internal/config"
	"github.com/vfg2006/sf-domain-reports/internal/domain"
)

type AirtableIntegrator struct {
	cfg    *config.Config
	Client airtableclient.Client
}

func New(cfg *config.Config, client airtableclient.Client) *AirtableIntegrator {
	return &AirtableIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetRecordFields busca o registro de relatório e devolve o mapa bruto de campos
func (s *AirtableIntegrator) GetRecordFields(ctx context.Context, recordID string) (domain.RawFields, error) {
	if strings.TrimSpace(recordID) == "" {
		return nil, errors.Wrap(domain.ErrInvalidRequest, "airtable: record id vazio")
	}

	record, err := s.Client.GetRecord(ctx, s.cfg.Airtable.ReportsTable, recordID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"record_id": recordID,
			"table":     s.cfg.Airtable.ReportsTable,
			"error":     err.Error(),
		}).Error("airtable: failed to fetch report record")
		return nil, err
	}

	fields := domain.RawFields(record.Fields)
	if fields == nil {
		fields = domain.RawFields{}
	}

	logrus.WithFields(logrus.Fields{
		"record_id":    recordID,
		"fields_count": len(fields),
	}).Debug("airtable: report record fetched")

	return fields, nil
}

// UpdateReportURL grava a URL publicada no campo de link do relatório
func (s *AirtableIntegrator) UpdateReportURL(ctx context.Context, recordID, reportURL string) error {
	if strings.TrimSpace(recordID) == "" {
		return errors.Wrap(domain.ErrInvalidRequest, "airtable: record id vazio")
	}

	fields := map[string]any{
		s.cfg.Airtable.ReportURLField: reportURL,
	}

	if _, err := s.Client.UpdateRecord(ctx, s.cfg.Airtable.ReportsTable, recordID, fields); err != nil {
		logrus.WithFields(logrus.Fields{
			"record_id": recordID,
			"field":     s.cfg.Airtable.ReportURLField,
			"error":     err.Error(),
		}).Error("airtable: failed to update report url")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"record_id":  recordID,
		"report_url": reportURL,
	}).Info("airtable: report url updated")

	return nil
}
