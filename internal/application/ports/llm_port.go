package ports

import "context"

// LLMService define el puerto de salida para los servicios de texto generativo.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// GenerateText envía el prompt al modelo y devuelve el texto plano de la respuesta.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
