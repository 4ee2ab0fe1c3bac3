package airtabledomain

import "encoding/json"

// ErrorResponse representa o corpo de erro da API do Airtable. O campo "error"
// vem como objeto ({"type","message"}) ou como string ("NOT_FOUND").
type ErrorResponse struct {
	Error json.RawMessage `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Airtable
type ErrorDetails struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Details normaliza as duas formas do campo "error"
func (e *ErrorResponse) Details() ErrorDetails {
	var details ErrorDetails
	if len(e.Error) == 0 {
		return details
	}

	if err := json.Unmarshal(e.Error, &details); err == nil {
		return details
	}

	var kind string
	if err := json.Unmarshal(e.Error, &kind); err == nil {
		details.Type = kind
	}
	return details
}
