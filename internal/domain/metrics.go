package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/sf-domain-reports/pkg/utils"
)

// MetricKey é a chave semântica de uma métrica no contexto do template
type MetricKey string

const (
	MetricQuoteStarts MetricKey = "quote_starts"
	MetricPhoneClicks MetricKey = "phone_clicks"
	MetricSMSClicks   MetricKey = "sms_clicks"
	MetricConversions MetricKey = "conversions"
	MetricCost        MetricKey = "cost"
)

// MaxMetricValue é o teto de cada contador. Cabe sem perda em float64 e a
// soma dos leads não estoura int64.
const MaxMetricValue int64 = 1 << 53

// ClientNameField é o campo lookup com o nome do cliente
const ClientNameField = "Client Name"

// MetricFields mapeia o campo rollup do Airtable para a chave da métrica.
// Novos campos entram aqui, sem mudar o mapper.
var MetricFields = []struct {
	Field string
	Key   MetricKey
}{
	{Field: "Quote Starts (from Keyword Performance)", Key: MetricQuoteStarts},
	{Field: "Phone Clicks (from Keyword Performance)", Key: MetricPhoneClicks},
	{Field: "SMS Clicks (from Keyword Performance)", Key: MetricSMSClicks},
	{Field: "Conversions (from Keyword Performance)", Key: MetricConversions},
	{Field: "Cost (from Keyword Performance)", Key: MetricCost},
}

// Counters são os valores brutos já convertidos para inteiro
type Counters map[MetricKey]int64

// MapMetrics extrai as métricas do registro. Campos ausentes, nulos ou não
// numéricos valem 0: rollups vazios são legítimos.
func MapMetrics(fields RawFields) Counters {
	counters := make(Counters, len(MetricFields))
	for _, mf := range MetricFields {
		counters[mf.Key] = toInt(fields[mf.Field])
	}
	return counters
}

// ClientName lê o campo lookup de nome do cliente (string ou lista)
func ClientName(fields RawFields) string {
	switch v := fields[ClientNameField].(type) {
	case string:
		return strings.TrimSpace(v)
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return strings.TrimSpace(s)
			}
		}
	case []string:
		if len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
	}
	return ""
}

// CalculateMetrics aplica as fórmulas derivadas sobre os contadores
func CalculateMetrics(counters Counters, reportMonth string) *ReportMetrics {
	m := &ReportMetrics{
		ReportMonth: reportMonth,
		QuoteStarts: counters[MetricQuoteStarts],
		PhoneClicks: counters[MetricPhoneClicks],
		SMSClicks:   counters[MetricSMSClicks],
		Conversions: counters[MetricConversions],
		Cost:        counters[MetricCost],
	}
	m.TotalLeads = TotalLeads(m.QuoteStarts, m.PhoneClicks, m.SMSClicks, m.Conversions)
	m.CostPerLead = CostPerLead(m.Cost, m.TotalLeads)
	return m
}

// TotalLeads soma os quatro contadores de leads
func TotalLeads(quoteStarts, phoneClicks, smsClicks, conversions int64) int64 {
	return quoteStarts + phoneClicks + smsClicks + conversions
}

// CostPerLead é ceil(cost/totalLeads), ou 0 quando não há leads
func CostPerLead(cost, totalLeads int64) int64 {
	if totalLeads <= 0 {
		return 0
	}
	return utils.CeilDiv(cost, totalLeads)
}

// toInt converte o valor de um campo do Airtable, arredondando para cima
func toInt(v any) int64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		return clampMetric(int64(n))
	case int64:
		return clampMetric(n)
	case int32:
		return clampMetric(int64(n))
	case interface{ Float64() (float64, error) }:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case []any:
		// rollups configurados como ARRAYUNIQUE chegam como lista de um valor
		if len(n) == 0 {
			return 0
		}
		return toInt(n[0])
	case bool:
		return 0
	default:
		return 0
	}

	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= float64(MaxMetricValue):
		return MaxMetricValue
	}
	return int64(math.Ceil(f))
}

// clampMetric mantém o contador em [0, MaxMetricValue]
func clampMetric(n int64) int64 {
	switch {
	case n < 0:
		return 0
	case n > MaxMetricValue:
		return MaxMetricValue
	}
	return n
}
