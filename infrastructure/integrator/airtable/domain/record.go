package airtabledomain

import "time"

// Record é um registro retornado pela API REST do Airtable
type Record struct {
	ID          string         `json:"id"`
	CreatedTime time.Time      `json:"createdTime"`
	Fields      map[string]any `json:"fields"`
}

// UpdateRequest é o corpo de um PATCH em um único registro
type UpdateRequest struct {
	Fields map[string]any `json:"fields"`
}
