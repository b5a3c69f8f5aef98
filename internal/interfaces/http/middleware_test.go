package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/catalogo-inventario/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/catalogo-inventario/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "tester@example.com"
	testIssuer    = "catalogo-inventario-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c)})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"email":   apphttp.GetEmail(c),
			"role":    apphttp.GetRole(c),
		})
	})

	resp := doGet(t, app, "/me", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, "admin", body["role"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	resp := doGet(t, buildTestApp(), "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	resp := doGet(t, buildTestApp(), "/protected", "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resp := doGet(t, buildTestApp(), "/protected", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, "admin", testIssuer, -1)
	require.NoError(t, err)

	resp := doGet(t, buildTestApp(), "/protected", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole / RequireAdmin / Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	resp := doGet(t, buildTestApp("admin"), "/protected", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), `"role":"admin"`)
}

func TestRequireRole_SinRoles_Pasa(t *testing.T) {
	resp := doGet(t, buildTestApp(), "/protected", tokenForRole(t, "external"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_MultiRol(t *testing.T) {
	resp := doGet(t, buildTestApp("admin", "external"), "/protected", tokenForRole(t, "external"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_ExternalBloqueadoEnRutaAdmin(t *testing.T) {
	resp := doGet(t, buildTestApp("admin"), "/protected", tokenForRole(t, "external"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "FORBIDDEN")
}

func TestRequireRole_SinUsuario_Retorna400(t *testing.T) {
	app := fiber.New()
	app.Get("/open", apphttp.RequireRole("admin"), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp := doGet(t, app, "/open", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "USER_NOT_FOUND")
}

func TestRequireAdmin_SinUsuarioOExternal_Retorna403(t *testing.T) {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/guarded", apphttp.AuthMiddleware(testJWTSecret), apphttp.RequireAdmin(), ok)
	app.Get("/bare", apphttp.RequireAdmin(), ok)

	cases := []struct {
		name   string
		path   string
		auth   string
		status int
	}{
		{"admin", "/guarded", tokenForRole(t, "admin"), http.StatusOK},
		{"external", "/guarded", tokenForRole(t, "external"), http.StatusForbidden},
		{"sin usuario", "/bare", "", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doGet(t, app, tc.path, tc.auth)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestAuth_Compuesto(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", apphttp.Auth(testJWTSecret, "admin"), func(c *fiber.Ctx) error {
		return c.SendString(apphttp.GetEmail(c))
	})

	resp := doGet(t, app, "/admin", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doGet(t, app, "/admin", tokenForRole(t, "external"))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doGet(t, app, "/admin", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testEmail, bodyString(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// RateLimit
// ──────────────────────────────────────────────────────────────────────────────

func TestRateLimit_BloqueaAlAgotarBurst(t *testing.T) {
	app := fiber.New()
	app.Get("/login", apphttp.RateLimit(0.001, 2), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 2; i++ {
		resp := doGet(t, app, "/login", "")
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp := doGet(t, app, "/login", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "RATE_LIMITED")
}

func TestRateLimit_Deshabilitado(t *testing.T) {
	app := fiber.New()
	app.Get("/login", apphttp.RateLimit(0, 0), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 5; i++ {
		resp := doGet(t, app, "/login", "")
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
