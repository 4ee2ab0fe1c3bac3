package domain

import "errors"

// Taxonomia de erros do pipeline de relatórios. As integrações embrulham estes
// sentinelas com contexto (github.com/pkg/errors) e o handler decide o status HTTP
// com errors.Is.
var (
	// ErrNotFound indica que o registro não existe no Airtable (não deve ser repetido)
	ErrNotFound = errors.New("record not found")
	// ErrAuth indica credenciais inválidas para um serviço externo
	ErrAuth = errors.New("authentication failed")
	// ErrTransient indica falha de rede ou rate limit; o chamador pode repetir
	ErrTransient = errors.New("transient upstream failure")
	// ErrRejected indica que o serviço externo recusou a requisição (4xx); repetir
	// a mesma requisição não resolve
	ErrRejected = errors.New("upstream rejected request")
	// ErrTemplate indica divergência entre o template e o contexto de renderização
	ErrTemplate = errors.New("template error")
	// ErrUpload indica falha ao publicar o HTML no host estático
	ErrUpload = errors.New("upload failed")
	// ErrInvalidRequest indica payload de webhook inválido
	ErrInvalidRequest = errors.New("invalid request")
)
