package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/catalogo-inventario/internal/application/ports"
)

var _ ports.LLMService = (*GeminiService)(nil)

const geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiService adaptador de LLMService sobre la API generateContent de Google Gemini.
type GeminiService struct {
	apiKey string
	model  string
	opts   httpOptions
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.0-flash-001".
func NewGeminiService(apiKey, model string, opts ...Option) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		opts:   buildOptions(geminiDefaultBaseURL, opts),
	}
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateText envía el prompt como único turno de usuario y concatena las partes de texto del primer candidato.
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: genConfig{
			Temperature:     0.7,
			MaxOutputTokens: 512,
		},
	}
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.opts.baseURL, s.model, s.apiKey)

	status, raw, err := postJSON(ctx, s.opts.client, url, nil, payload)
	if err != nil {
		return "", err
	}

	var resp geminiResponse
	if status != http.StatusOK {
		if json.Unmarshal(raw, &resp) == nil && resp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", resp.Error.Code, resp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", status)
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("AI: Gemini devolvió respuesta vacía")
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}
