package utils

import (
	"fmt"
	"time"
)

// DateLayout é o formato de data aceito no webhook (YYYY-MM-DD)
const DateLayout = time.DateOnly

func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}

	return date, nil
}
