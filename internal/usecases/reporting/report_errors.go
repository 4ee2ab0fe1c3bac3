package reporting

import "fmt"

// State é a etapa do pipeline de um pedido de relatório
type State string

const (
	StateReceived  State = "RECEIVED"
	StateFetched   State = "FETCHED"
	StateRendered  State = "RENDERED"
	StatePublished State = "PUBLISHED"
	StateUpdated   State = "UPDATED"
	StateDone      State = "DONE"
	StateFailed    State = "FAILED"
)

// StepError indica em qual etapa o pipeline falhou
type StepError struct {
	Step     State  // Última etapa concluída antes da falha
	RecordID string // Registro do Airtable processado
	Err      error  // Erro base (sentinelas de domain)
}

// Error implementa a interface error
func (e *StepError) Error() string {
	return fmt.Sprintf("report %s failed after %s: %v", e.RecordID, e.Step, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *StepError) Unwrap() error {
	return e.Err
}

func newStepError(step State, recordID string, err error) *StepError {
	return &StepError{
		Step:     step,
		RecordID: recordID,
		Err:      err,
	}
}
