package airtableclient

import (
	"bytes"
	"context"
	"net/http"

	"github.com/pkg/errors"
	airtabledomain "github.com/vfg2006/sf-domain-reports/infrastructure/integrator/airtable/domain"
)

// GetRecord busca um único registro pelo ID
func (c *AirtableClient) GetRecord(ctx context.Context, table, recordID string) (*airtabledomain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.recordURL(table, recordID), nil)
	if err != nil {
		return nil, errors.Wrap(err, "airtable: erro ao criar a requisição")
	}

	var record airtabledomain.Record
	if err := c.do(req, recordID, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// UpdateRecord aplica um PATCH parcial nos campos informados
func (c *AirtableClient) UpdateRecord(ctx context.Context, table, recordID string, fields map[string]any) (*airtabledomain.Record, error) {
	payload, err := json.Marshal(airtabledomain.UpdateRequest{Fields: fields})
	if err != nil {
		return nil, errors.Wrap(err, "airtable: erro ao serializar campos")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.recordURL(table, recordID), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "airtable: erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")

	var record airtabledomain.Record
	if err := c.do(req, recordID, &record); err != nil {
		return nil, err
	}

	return &record, nil
}
