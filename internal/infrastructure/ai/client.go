// Package ai contiene los adaptadores de ports.LLMService hacia proveedores de texto generativo.
// Ambos usan net/http directo sobre la API REST del proveedor.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Option configura un adaptador.
type Option func(*httpOptions)

type httpOptions struct {
	baseURL string
	client  *http.Client
}

// WithBaseURL cambia el endpoint base (proxies, tests con httptest).
func WithBaseURL(u string) Option {
	return func(o *httpOptions) {
		if u != "" {
			o.baseURL = u
		}
	}
}

// WithHTTPClient reemplaza el cliente HTTP.
func WithHTTPClient(c *http.Client) Option {
	return func(o *httpOptions) {
		if c != nil {
			o.client = c
		}
	}
}

func buildOptions(defaultBaseURL string, opts []Option) httpOptions {
	o := httpOptions{
		baseURL: defaultBaseURL,
		// Timeout de red; el use case además impone context.WithTimeout.
		client: &http.Client{Timeout: 20 * time.Second},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// postJSON envía payload y devuelve el status y el cuerpo (máx. 64 KiB).
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, payload any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("AI: serializar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return 0, nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return 0, nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}
	return resp.StatusCode, raw, nil
}
