package airtableclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	airtabledomain "github.com/vfg2006/sf-domain-reports/infrastructure/integrator/airtable/domain"
	"github.com/vfg2006/sf-domain-reports/internal/config"
	"github.com/vfg2006/sf-domain-reports/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxErrorBody limita a leitura do corpo de respostas de erro
const maxErrorBody = 64 << 10

//go:generate mockgen -source=client.go -destination=../mocks/airtableclient.go -package=mocks

type Client interface {
	GetRecord(ctx context.Context, table, recordID string) (*airtabledomain.Record, error)
	UpdateRecord(ctx context.Context, table, recordID string, fields map[string]any) (*airtabledomain.Record, error)
}

type AirtableClient struct {
	httpClient *http.Client
	baseURL    string
	baseID     string
	apiKey     string
}

// NewClient cria o cliente REST do Airtable a partir da configuração
func NewClient(cfg *config.Config) Client {
	return &AirtableClient{
		httpClient: &http.Client{
			Timeout: cfg.Airtable.Timeout,
		},
		baseURL: cfg.Airtable.URL,
		baseID:  cfg.Airtable.BaseID,
		apiKey:  cfg.Airtable.APIKey,
	}
}

func (c *AirtableClient) recordURL(table, recordID string) string {
	return fmt.Sprintf("%s/%s/%s/%s",
		c.baseURL,
		url.PathEscape(c.baseID),
		url.PathEscape(table),
		url.PathEscape(recordID),
	)
}

// do executa a requisição e decodifica o corpo em out. Respostas não 2xx são
// classificadas na taxonomia de erros do domínio.
func (c *AirtableClient) do(req *http.Request, recordID string, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(req.Context().Err(), context.Canceled) {
			return errors.Wrapf(err, "airtable: requisição cancelada para o registro %s", recordID)
		}
		return errors.Wrapf(domain.ErrTransient, "airtable: falha de rede para o registro %s: %v", recordID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyError(resp, recordID)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(domain.ErrTransient, "airtable: resposta inválida para o registro %s: %v", recordID, err)
	}

	return nil
}

func classifyError(resp *http.Response, recordID string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var errResp airtabledomain.ErrorResponse
	_ = json.Unmarshal(body, &errResp)
	details := errResp.Details()

	logrus.WithFields(logrus.Fields{
		"record_id":   recordID,
		"status_code": resp.StatusCode,
		"error_type":  details.Type,
		"message":     details.Message,
	}).Debug("airtable: resposta de erro recebida")

	var kind error
	switch {
	case resp.StatusCode == http.StatusNotFound:
		kind = domain.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		kind = domain.ErrAuth
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		kind = domain.ErrTransient
	case resp.StatusCode >= 400:
		// 400, 422 e afins: o Airtable recusou o conteúdo da requisição
		kind = domain.ErrRejected
	default:
		kind = domain.ErrTransient
	}

	return errors.Wrapf(kind, "airtable: registro %s: status %d %s", recordID, resp.StatusCode, details.Type)
}
