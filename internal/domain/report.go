package domain

import (
	"strings"
	"time"
)

// ReportRequest representa o pedido recebido pelo webhook para um registro de relatório
type ReportRequest struct {
	RecordID       string
	DateStart      time.Time
	DateEnd        time.Time
	AccountID      []string
	CarrierCompany []string
}

// RawFields é o mapa de campos de um registro do Airtable (nome do campo -> valor)
type RawFields map[string]any

// ReportMetrics contém as métricas mapeadas e derivadas usadas na renderização
type ReportMetrics struct {
	ReportMonth string `json:"report_month"`
	ClientName  string `json:"client_name,omitempty"`
	QuoteStarts int64  `json:"quote_starts"`
	PhoneClicks int64  `json:"phone_clicks"`
	SMSClicks   int64  `json:"sms_clicks"`
	Conversions int64  `json:"conversions"`
	Cost        int64  `json:"cost"`
	TotalLeads  int64  `json:"total_leads"`
	CostPerLead int64  `json:"cost_per_lead"`
}

// PublishedReport é o resultado do upload do HTML; apenas a URL volta para o Airtable
type PublishedReport struct {
	URL     string
	Path    string
	Content string
}

// ReportResult é a resposta devolvida ao chamador do webhook
type ReportResult struct {
	ReportURL      string         `json:"report_url"`
	RecordID       string         `json:"record_id"`
	Metrics        *ReportMetrics `json:"metrics"`
	ProcessingTime time.Time      `json:"processing_time"`
}

// ReportFileName monta o nome do arquivo publicado a partir do registro e do período
func (r *ReportRequest) ReportFileName() string {
	return "report_" + sanitizePathComponent(r.RecordID) +
		"_" + r.DateStart.Format("20060102") +
		"_" + r.DateEnd.Format("20060102") + ".html"
}

// FirstAccountID retorna o primeiro AccountID ou "Unknown"
func (r *ReportRequest) FirstAccountID() string {
	if len(r.AccountID) == 0 || r.AccountID[0] == "" {
		return "Unknown"
	}
	return r.AccountID[0]
}

// FirstCarrier retorna a primeira CarrierCompany ou "Unknown"
func (r *ReportRequest) FirstCarrier() string {
	if len(r.CarrierCompany) == 0 || r.CarrierCompany[0] == "" {
		return "Unknown"
	}
	return r.CarrierCompany[0]
}

var pathReplacer = strings.NewReplacer(" ", "_", "/", "_", "\\", "_", "..", "_")

func sanitizePathComponent(s string) string {
	return pathReplacer.Replace(strings.TrimSpace(s))
}
