package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-inventario/pkg/metrics"
)

func TestMiddleware_CuentaPorPlantillaDeRuta(t *testing.T) {
	m := metrics.New("test")
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/metrics", m.Handler())

	for _, id := range []string{"1", "2", "3"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/items/"+id, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `test_http_requests_total{method="GET",route="/items/:id",status="204"} 3`)
}

func TestObserveAIFallback_UnaSeriePorOperacion(t *testing.T) {
	m := metrics.New("")
	m.ObserveAIFallback("description")
	m.ObserveAIFallback("description")
	m.ObserveAIFallback("features")

	n, err := testutil.GatherAndCount(m.Registry(), "ai_generation_fallbacks_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por operación")
}
