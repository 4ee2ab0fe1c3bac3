package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sf-domain-reports/internal/domain"
	"github.com/vfg2006/sf-domain-reports/internal/usecases/reporting"
	"github.com/vfg2006/sf-domain-reports/pkg/apiErrors"
	"github.com/vfg2006/sf-domain-reports/pkg/log"
	"github.com/vfg2006/sf-domain-reports/pkg/utils"
)

const maxWebhookBody = 1 << 20

// WebhookEnvelope é o formato enviado pela automação (n8n): os dados vêm em "body"
type WebhookEnvelope struct {
	Body WebhookPayload `json:"body"`
}

// WebhookPayload são os dados do pedido de relatório
type WebhookPayload struct {
	RecordID       *string  `json:"MySFDomainReportRecordID" validate:"required,startswith=rec,alphanum"`
	DateStart      *string  `json:"DateStart" validate:"required,datetime=2006-01-02"`
	DateEnd        *string  `json:"DateEnd" validate:"required,datetime=2006-01-02"`
	AccountID      []string `json:"AccountID" validate:"omitnil,min=1"`
	CarrierCompany []string `json:"CarrierCompany" validate:"omitnil,min=1"`
}

var errInvalidPayloadFormat = errors.New("invalid payload format")

func newPayloadValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func Webhook(service reporting.ReportGenerator) http.Handler {
	validate := newPayloadValidator()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		payload, err := decodeWebhookPayload(http.MaxBytesReader(w, r.Body, maxWebhookBody))
		if err != nil {
			logger.WithError(err).Warn("webhook: invalid payload format")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid payload format", nil)
			return
		}

		req, problems := validatePayload(validate, payload)
		if len(problems) > 0 {
			logger.WithField("errors", problems).Warn("webhook: payload validation failed")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Payload validation failed", problems)
			return
		}

		logger.WithField("record_id", req.RecordID).Info("webhook: report request received")

		result, err := service.Generate(r.Context(), req)
		if err != nil {
			code, message := errorResponse(err)
			logger.WithFields(log.Fields{
				"record_id": req.RecordID,
				"code":      code,
				"error":     err.Error(),
			}).Error("webhook: report generation failed")
			apiErrors.WriteError(w, code, message, nil)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{
			Success: true,
			Data:    result,
		})
	})
}

// decodeWebhookPayload aceita o envelope puro ou uma lista com o envelope no primeiro item
func decodeWebhookPayload(body io.Reader) (*WebhookPayload, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var items []jsoniter.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, errInvalidPayloadFormat
		}
		raw = bytes.TrimSpace(items[0])
	}

	if len(raw) == 0 || raw[0] != '{' {
		return nil, errInvalidPayloadFormat
	}

	var envelope WebhookEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Body, nil
}

// validatePayload devolve o pedido de domínio ou a lista de problemas encontrados
func validatePayload(validate *validator.Validate, payload *WebhookPayload) (*domain.ReportRequest, []string) {
	var problems []string

	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, []string{err.Error()}
		}
		for _, fe := range validationErrors {
			problems = append(problems, validationMessage(fe))
		}
	}

	start, startErr := parseDate(payload.DateStart)
	end, endErr := parseDate(payload.DateEnd)
	if startErr == nil && endErr == nil && start.After(end) {
		problems = append(problems, "DateStart must be before or equal to DateEnd")
	}

	if len(problems) > 0 {
		return nil, problems
	}

	return &domain.ReportRequest{
		RecordID:       *payload.RecordID,
		DateStart:      start,
		DateEnd:        end,
		AccountID:      payload.AccountID,
		CarrierCompany: payload.CarrierCompany,
	}, nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing required field: " + fe.Field()
	case "startswith", "alphanum":
		return fmt.Sprintf("Invalid %s format", fe.Field())
	case "datetime":
		return fmt.Sprintf("Invalid date format for %s. Expected: YYYY-MM-DD", fe.Field())
	case "min":
		return fe.Field() + " array cannot be empty"
	default:
		return fmt.Sprintf("Invalid value for %s", fe.Field())
	}
}

func parseDate(value *string) (time.Time, error) {
	if value == nil {
		return time.Time{}, errors.New("date not informed")
	}
	return utils.ParseDate(*value)
}

// errorResponse traduz a taxonomia de erros em código de API e mensagem genérica.
// O detalhe completo fica apenas nos logs.
func errorResponse(err error) (string, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return apiErrors.ErrInvalidRequest, "Invalid report request"
	case errors.Is(err, domain.ErrNotFound):
		return apiErrors.ErrRecordNotFound, "Report record not found"
	case errors.Is(err, domain.ErrAuth):
		return apiErrors.ErrRecordStoreAuth, "Record store rejected the credentials"
	case errors.Is(err, domain.ErrRejected):
		return apiErrors.ErrUpstreamRejected, "Record store rejected the request"
	case errors.Is(err, domain.ErrTransient):
		return apiErrors.ErrUpstreamUnavailable, "Upstream service unavailable, try again later"
	case errors.Is(err, domain.ErrTemplate):
		return apiErrors.ErrTemplate, "Failed to render report"
	case errors.Is(err, domain.ErrUpload):
		return apiErrors.ErrUpload, "Failed to publish report"
	default:
		return apiErrors.ErrInternalServer, "Internal server error"
	}
}
