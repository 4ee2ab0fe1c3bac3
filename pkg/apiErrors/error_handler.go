package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidToken = "AUTH_001" // Token do webhook inválido ou ausente

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidFormat  = "VAL_003" // Formato de dados inválido

	// Erros do pipeline de relatórios
	ErrRecordNotFound      = "REP_001" // Registro não encontrado no Airtable
	ErrRecordStoreAuth     = "REP_002" // Credenciais do Airtable recusadas
	ErrUpstreamUnavailable = "REP_003" // Falha transitória (rede/rate limit)
	ErrTemplate            = "REP_004" // Template e contexto divergentes
	ErrUpload              = "REP_005" // Falha ao publicar o relatório
	ErrUpstreamRejected    = "REP_006" // Requisição recusada pelo Airtable (4xx)

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrNotFound       = "SRV_002" // Rota inexistente
	ErrMethod         = "SRV_003" // Método não permitido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrRecordNotFound:      http.StatusNotFound,
	ErrRecordStoreAuth:     http.StatusBadGateway,
	ErrUpstreamUnavailable: http.StatusServiceUnavailable,
	ErrTemplate:            http.StatusInternalServerError,
	ErrUpload:              http.StatusBadGateway,
	ErrUpstreamRejected:    http.StatusBadGateway,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrMethod:              http.StatusMethodNotAllowed,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Success bool   `json:"success"`          // Sempre false
	Code    string `json:"code"`             // Código de erro para o cliente
	Message string `json:"error,omitempty"`  // Mensagem descritiva
	Details any    `json:"errors,omitempty"` // Detalhes adicionais (ex.: erros de validação)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
