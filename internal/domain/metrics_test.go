package domain

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMapMetrics(t *testing.T) {
	tests := []struct {
		name   string
		fields RawFields
		want   Counters
	}{
		{
			name: "Todos os rollups presentes",
			fields: RawFields{
				"Quote Starts (from Keyword Performance)": float64(3),
				"Phone Clicks (from Keyword Performance)": float64(5),
				"SMS Clicks (from Keyword Performance)":   float64(2),
				"Conversions (from Keyword Performance)":  float64(7),
				"Cost (from Keyword Performance)":         float64(123),
			},
			want: Counters{
				MetricQuoteStarts: 3,
				MetricPhoneClicks: 5,
				MetricSMSClicks:   2,
				MetricConversions: 7,
				MetricCost:        123,
			},
		},
		{
			name:   "Campos ausentes viram zero",
			fields: RawFields{},
			want: Counters{
				MetricQuoteStarts: 0,
				MetricPhoneClicks: 0,
				MetricSMSClicks:   0,
				MetricConversions: 0,
				MetricCost:        0,
			},
		},
		{
			name: "Nulos, strings numéricas e lixo",
			fields: RawFields{
				"Quote Starts (from Keyword Performance)": nil,
				"Phone Clicks (from Keyword Performance)": " 12 ",
				"SMS Clicks (from Keyword Performance)":   "abc",
				"Conversions (from Keyword Performance)":  json.Number("4"),
				"Cost (from Keyword Performance)":         "123.45",
			},
			want: Counters{
				MetricQuoteStarts: 0,
				MetricPhoneClicks: 12,
				MetricSMSClicks:   0,
				MetricConversions: 4,
				MetricCost:        124,
			},
		},
		{
			name: "Rollup em lista e custo fracionado",
			fields: RawFields{
				"Quote Starts (from Keyword Performance)": []any{float64(9)},
				"Phone Clicks (from Keyword Performance)": []any{},
				"SMS Clicks (from Keyword Performance)":   true,
				"Conversions (from Keyword Performance)":  "NaN",
				"Cost (from Keyword Performance)":         200.01,
			},
			want: Counters{
				MetricQuoteStarts: 9,
				MetricPhoneClicks: 0,
				MetricSMSClicks:   0,
				MetricConversions: 0,
				MetricCost:        201,
			},
		},
		{
			name: "Valores fora da faixa ficam limitados",
			fields: RawFields{
				"Quote Starts (from Keyword Performance)": float64(3),
				"Phone Clicks (from Keyword Performance)": float64(-5),
				"SMS Clicks (from Keyword Performance)":   int64(-2),
				"Conversions (from Keyword Performance)":  "1e30",
				"Cost (from Keyword Performance)":         1e20,
			},
			want: Counters{
				MetricQuoteStarts: 3,
				MetricPhoneClicks: 0,
				MetricSMSClicks:   0,
				MetricConversions: MaxMetricValue,
				MetricCost:        MaxMetricValue,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapMetrics(tt.fields))
		})
	}
}

func TestMetricFieldsCoverEveryKey(t *testing.T) {
	seen := make(map[MetricKey]bool)
	for _, mf := range MetricFields {
		assert.NotEmpty(t, mf.Field)
		assert.False(t, seen[mf.Key], "chave duplicada: %s", mf.Key)
		seen[mf.Key] = true
	}
	assert.Len(t, seen, 5)
}

func TestClientName(t *testing.T) {
	assert.Equal(t, "Jane Doe", ClientName(RawFields{"Client Name": []any{"Jane Doe"}}))
	assert.Equal(t, "Jane Doe", ClientName(RawFields{"Client Name": " Jane Doe "}))
	assert.Equal(t, "", ClientName(RawFields{"Client Name": []any{}}))
	assert.Equal(t, "", ClientName(RawFields{}))
}

func TestCalculateMetrics(t *testing.T) {
	t.Run("Exemplo com leads", func(t *testing.T) {
		m := CalculateMetrics(Counters{
			MetricQuoteStarts: 3,
			MetricPhoneClicks: 5,
			MetricSMSClicks:   2,
			MetricConversions: 7,
			MetricCost:        123,
		}, "June 2025")

		assert.Equal(t, int64(17), m.TotalLeads)
		assert.Equal(t, int64(8), m.CostPerLead)
		assert.Equal(t, "June 2025", m.ReportMonth)
	})

	t.Run("Custo gigante não gera valores negativos", func(t *testing.T) {
		counters := MapMetrics(RawFields{
			"Cost (from Keyword Performance)":         1e20,
			"Quote Starts (from Keyword Performance)": float64(3),
		})
		m := CalculateMetrics(counters, "June 2025")

		assert.Equal(t, MaxMetricValue, m.Cost)
		assert.Equal(t, int64(3), m.TotalLeads)
		assert.Positive(t, m.CostPerLead)
		assert.Equal(t, (MaxMetricValue+2)/3, m.CostPerLead)
	})

	t.Run("Sem leads o custo por lead é zero", func(t *testing.T) {
		m := CalculateMetrics(Counters{MetricCost: 50}, "June 2025")

		assert.Equal(t, int64(0), m.TotalLeads)
		assert.Equal(t, int64(0), m.CostPerLead)
		assert.Equal(t, int64(50), m.Cost)
	})
}

func TestDerivedMetricsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		a, b, c, d := rng.Int63n(10000), rng.Int63n(10000), rng.Int63n(10000), rng.Int63n(10000)
		cost := rng.Int63n(1_000_000)

		total := TotalLeads(a, b, c, d)
		assert.Equal(t, a+b+c+d, total)

		cpl := CostPerLead(cost, total)
		if total == 0 {
			assert.Equal(t, int64(0), cpl)
			continue
		}
		// cpl é o menor inteiro com cpl*total >= cost
		assert.GreaterOrEqual(t, cpl*total, cost)
		assert.Less(t, (cpl-1)*total, cost)
	}
}

func TestReportFileName(t *testing.T) {
	req := &ReportRequest{
		RecordID:  "rec123",
		DateStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "report_rec123_20250601_20250630.html", req.ReportFileName())

	req.RecordID = "rec/../x y"
	assert.Equal(t, "report_rec___x_y_20250601_20250630.html", req.ReportFileName())
}

func TestFirstAccountAndCarrier(t *testing.T) {
	req := &ReportRequest{}
	assert.Equal(t, "Unknown", req.FirstAccountID())
	assert.Equal(t, "Unknown", req.FirstCarrier())

	req.AccountID = []string{"128-903-1394"}
	req.CarrierCompany = []string{"Acme"}
	assert.Equal(t, "128-903-1394", req.FirstAccountID())
	assert.Equal(t, "Acme", req.FirstCarrier())
}
