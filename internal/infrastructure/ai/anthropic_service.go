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

var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
)

// AnthropicService adaptador de LLMService sobre la Messages API de Anthropic.
type AnthropicService struct {
	apiKey string
	model  string
	opts   httpOptions
}

// NewAnthropicService construye el adaptador. model suele ser "claude-3-5-haiku-20241022".
func NewAnthropicService(apiKey, model string, opts ...Option) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		opts:   buildOptions(anthropicDefaultBaseURL, opts),
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateText envía el prompt y devuelve la concatenación de los bloques de tipo "text".
func (s *AnthropicService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 512,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	}
	headers := map[string]string{
		"x-api-key":         s.apiKey,
		"anthropic-version": anthropicVersion,
	}

	status, raw, err := postJSON(ctx, s.opts.client, s.opts.baseURL+"/v1/messages", headers, payload)
	if err != nil {
		return "", err
	}

	var resp anthropicResponse
	if status != http.StatusOK {
		if json.Unmarshal(raw, &resp) == nil && resp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", resp.Error.Type, resp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d", status)
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("AI: Anthropic devolvió respuesta vacía")
	}
	return text, nil
}
