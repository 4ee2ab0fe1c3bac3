package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReportMonth(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{name: "Mês completo", start: date(2025, 6, 1), end: date(2025, 6, 30), want: "June 2025"},
		{name: "Mês parcial", start: date(2025, 6, 1), end: date(2025, 6, 15), want: "06-01-2025-06-15-2025"},
		{name: "Fevereiro ano comum", start: date(2025, 2, 1), end: date(2025, 2, 28), want: "February 2025"},
		{name: "Fevereiro bissexto", start: date(2024, 2, 1), end: date(2024, 2, 29), want: "February 2024"},
		{name: "Fevereiro bissexto incompleto", start: date(2024, 2, 1), end: date(2024, 2, 28), want: "02-01-2024-02-28-2024"},
		{name: "Dezembro", start: date(2024, 12, 1), end: date(2024, 12, 31), want: "December 2024"},
		{name: "Intervalo entre meses", start: date(2025, 5, 15), end: date(2025, 6, 14), want: "05-15-2025-06-14-2025"},
		{name: "Mesmo dia do mês em anos diferentes", start: date(2024, 6, 1), end: date(2025, 6, 30), want: "06-01-2024-06-30-2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReportMonth(tt.start, tt.end))
		})
	}
}
