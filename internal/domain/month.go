package domain

import "time"

// ReportMonth gera o rótulo do período do relatório. Um mês fechado (dia 1 ao
// último dia) vira "June 2025"; qualquer outro intervalo vira "06-01-2025-06-15-2025".
func ReportMonth(start, end time.Time) string {
	if IsFullMonth(start, end) {
		return start.Format("January 2006")
	}
	return start.Format("01-02-2006") + "-" + end.Format("01-02-2006")
}

// IsFullMonth indica se o intervalo cobre exatamente um mês do calendário
func IsFullMonth(start, end time.Time) bool {
	if start.Day() != 1 || start.Year() != end.Year() || start.Month() != end.Month() {
		return false
	}
	lastDay := time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, start.Location()).Day()
	return end.Day() == lastDay
}
