package ports

import (
	"context"
	"errors"
)

// ErrNotConfigured indica que el adaptador no tiene credencial de API.
// El caso de uso lo traduce al mensaje fijo de "no configurado"; nunca
// llega al usuario como error duro.
var ErrNotConfigured = errors.New("servicio de IA no configurado")

// HazardRecordInput registro de riesgo reducido a lo que el modelo necesita:
// lista de riesgos, estado de remediación y notas del inspector.
type HazardRecordInput struct {
	Hazards []string `json:"hazards"`
	Status  string   `json:"status"`
	Notes   string   `json:"notes"`
}

// LLMService define el puerto de salida hacia los servicios de IA generativa.
// Cualquier adaptador (Gemini, OpenAI, Ollama, mock) debe implementar esta
// interfaz; la aplicación solo conoce este contrato (DIP).
type LLMService interface {
	// GenerateSafetyReport recibe los registros de riesgo vigentes y devuelve
	// un informe breve en Markdown con los tipos de problema y las
	// recomendaciones de corrección para la gerencia.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateSafetyReport(ctx context.Context, records []HazardRecordInput) (string, error)
}
