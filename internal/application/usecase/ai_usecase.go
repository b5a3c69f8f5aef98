package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/application/ports"
)

const (
	aiTimeout = 10 * time.Second

	descriptionPrompt = `Generate a detailed, engaging product description for the following product:
Name: %s
Features: %s
Price: %s USD

The description should be compelling, highlight key features, and be between 100-150 words.`

	featuresPrompt = `Based on this product name and any existing features, generate 5 compelling bullet points highlighting the key features:
Name: %s
Existing features: %s

Generate features that are specific, benefit-focused, and would appeal to potential customers.`
)

// noFeatures es la respuesta de respaldo cuando el modelo falla o no responde.
var noFeatures = []string{"no features"}

// FallbackRecorder cuenta las veces que se devolvió contenido de respaldo.
type FallbackRecorder interface {
	ObserveAIFallback(operation string)
}

// AIUseCase genera contenido de producto con un LLM.
// Nunca devuelve error: ante cualquier falla (incluida la falta de API key) responde
// con un texto de respaldo, deja registro en el log y suma a la métrica de fallbacks.
type AIUseCase struct {
	llm      ports.LLMService
	log      zerolog.Logger
	recorder FallbackRecorder
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, log zerolog.Logger, recorder FallbackRecorder) *AIUseCase {
	return &AIUseCase{llm: llm, log: log, recorder: recorder}
}

// GenerateDescription devuelve una descripción comercial del producto.
func (uc *AIUseCase) GenerateDescription(ctx context.Context, p dto.ProductContentRequest) string {
	prompt := fmt.Sprintf(descriptionPrompt, p.Name, p.Features, p.PriceUSD.String())
	text, err := uc.generate(ctx, prompt)
	if err != nil {
		uc.fallback("generate-description", err)
		return placeholderDescription(p)
	}
	return text
}

// GenerateFeatures devuelve las viñetas ("-" o "•") que produjo el modelo, sin el marcador.
func (uc *AIUseCase) GenerateFeatures(ctx context.Context, p dto.ProductContentRequest) []string {
	prompt := fmt.Sprintf(featuresPrompt, p.Name, p.Features)
	text, err := uc.generate(ctx, prompt)
	if err != nil {
		uc.fallback("generate-features", err)
		return noFeatures
	}
	if text == "" {
		return noFeatures
	}
	return ParseBulletLines(text)
}

// ParseBulletLines extrae las líneas que empiezan por "-" o "•".
func ParseBulletLines(text string) []string {
	features := make([]string, 0, 5)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "•") {
			continue
		}
		line = strings.TrimPrefix(line, "-")
		line = strings.TrimPrefix(line, "•")
		features = append(features, strings.TrimSpace(line))
	}
	return features
}

func (uc *AIUseCase) generate(ctx context.Context, prompt string) (string, error) {
	if uc.llm == nil {
		return "", fmt.Errorf("AI: proveedor no configurado")
	}
	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()
	return uc.llm.GenerateText(ctx, prompt)
}

func (uc *AIUseCase) fallback(operation string, err error) {
	uc.log.Warn().Err(err).Str("operation", operation).Msg("IA no disponible, se devuelve contenido de respaldo")
	if uc.recorder != nil {
		uc.recorder.ObserveAIFallback(operation)
	}
}

func placeholderDescription(p dto.ProductContentRequest) string {
	name := p.Name
	if name == "" {
		name = "product name"
	}
	features := p.Features
	if features == "" {
		features = "features list"
	}
	return fmt.Sprintf("This is a placeholder description for %s. Features: %s. Price: %s USD.",
		name, features, p.PriceUSD.String())
}
