package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-inventario/internal/application/auth"
	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/application/inventory"
	"github.com/jhoicas/catalogo-inventario/internal/application/ports"
	"github.com/jhoicas/catalogo-inventario/internal/application/seed"
	"github.com/jhoicas/catalogo-inventario/internal/application/usecase"
	"github.com/jhoicas/catalogo-inventario/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-inventario/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/catalogo-inventario/internal/interfaces/http"
)

type capturedMailer struct {
	sent []ports.Email
}

func (m *capturedMailer) Send(_ context.Context, email ports.Email) (*ports.DeliveryResult, error) {
	m.sent = append(m.sent, email)
	return &ports.DeliveryResult{MessageID: "<test@local>"}, nil
}

type apiFixture struct {
	app    *fiber.App
	mailer *capturedMailer
}

// newAPI arma el router completo sobre el store en memoria, ya repoblado por el seed.
func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	store := memory.NewStore()
	log := zerolog.Nop()

	seeder := seed.NewUseCase(seed.Repositories{
		Cleaner:   store,
		Users:     store.Users(),
		Companies: store.Companies(),
		Products:  store.Products(),
		Inventory: store.Inventory(),
	}, log)
	require.NoError(t, seeder.Run(context.Background()))

	mailer := &capturedMailer{}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:   usecase.NewCompanyUseCase(store.Companies()),
		ProductUC:   usecase.NewProductUseCase(store.Products(), store.Companies()),
		InventoryUC: inventory.NewUseCase(store.Inventory(), store.Products(), store.Companies()),
		ReportUC:    inventory.NewReportUseCase(store.Inventory(), pdf.NewMarotoReportGenerator(), mailer, log),
		AuthUC: auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		UserUC:    usecase.NewUserUseCase(store.Users()),
		AIUC:      usecase.NewAIUseCase(nil, log, nil),
		JWTSecret: testJWTSecret,
	})
	return &apiFixture{app: app, mailer: mailer}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (f *apiFixture) login(t *testing.T, email, password string) string {
	t.Helper()
	resp := f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: password})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Token
}

func intPtr(i int) *int { return &i }

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DevuelveTokenYUsuarioSinPassword(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "admin@example.com", Password: "adminuser"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.NotEmpty(t, body["token"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", user["email"])
	assert.Equal(t, "admin", user["role"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")
}

func TestLogin_CredencialesInvalidas_MismoMensaje(t *testing.T) {
	f := newAPI(t)

	wrongPassword := f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "admin@example.com", Password: "nope"})
	unknownEmail := f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ghost@example.com", Password: "adminuser"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.StatusCode)
	a := decode[dto.ErrorResponse](t, wrongPassword)
	b := decode[dto.ErrorResponse](t, unknownEmail)
	assert.Equal(t, a, b)
}

func TestRegister_SiempreExternal(t *testing.T) {
	f := newAPI(t)
	body := map[string]string{"email": "new@example.com", "password": "secret123", "role": "admin"}

	resp := f.do(t, http.MethodPost, "/api/user/register", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user := decode[dto.UserResponse](t, resp)
	assert.Equal(t, "external", user.Role)

	dup := f.do(t, http.MethodPost, "/api/user/register", "", body)
	defer dup.Body.Close()
	assert.Equal(t, http.StatusConflict, dup.StatusCode)
}

func TestUsers_SoloAdmin(t *testing.T) {
	f := newAPI(t)

	resp := f.do(t, http.MethodGet, "/api/user", f.login(t, "external@example.com", "externaluser"), nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/user", f.login(t, "admin@example.com", "adminuser"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.UserResponse](t, resp), 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guards por recurso
// ──────────────────────────────────────────────────────────────────────────────

func TestCompany_LecturaPublicaEscrituraAdmin(t *testing.T) {
	f := newAPI(t)
	company := dto.CreateCompanyRequest{NIT: "999", Name: "Nueva", Address: "Calle 1", Phone: "123"}

	resp := f.do(t, http.MethodGet, "/api/company", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.CompanyResponse](t, resp), 3)

	resp = f.do(t, http.MethodPost, "/api/company", "", company)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/company", f.login(t, "external@example.com", "externaluser"), company)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/company/no-existe", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCompany_DeleteConInventario_Retorna409(t *testing.T) {
	f := newAPI(t)
	token := f.login(t, "admin@example.com", "adminuser")

	resp := f.do(t, http.MethodDelete, "/api/company/900123456-7", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestInventory_RequiereToken(t *testing.T) {
	f := newAPI(t)

	resp := f.do(t, http.MethodGet, "/api/inventory", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	external := f.login(t, "external@example.com", "externaluser")
	resp = f.do(t, http.MethodGet, "/api/inventory", external, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.InventoryResponse](t, resp), 7)

	resp = f.do(t, http.MethodPost, "/api/inventory", external, dto.CreateInventoryRequest{ProductCode: "P001", CompanyNit: "900123456-7", Quantity: intPtr(1)})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujo_EmpresaProductoInventario(t *testing.T) {
	f := newAPI(t)
	token := f.login(t, "admin@example.com", "adminuser")

	resp := f.do(t, http.MethodPost, "/api/company", token, dto.CreateCompanyRequest{NIT: "999", Name: "Empresa 999", Address: "Calle 9", Phone: "999"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	product := map[string]any{
		"code": "P999", "name": "Producto 999", "features": "uno, dos",
		"priceUSD": 10.5, "priceEUR": 9.75, "priceCOP": 42000, "companyId": "999",
	}
	resp = f.do(t, http.MethodPost, "/api/products", "", product)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "10.5", created.PriceUSD.String())
	require.NotNil(t, created.Company)
	assert.Equal(t, "999", created.Company.NIT)

	resp = f.do(t, http.MethodPost, "/api/inventory", token, dto.CreateInventoryRequest{ProductCode: "P999", CompanyNit: "999", Quantity: intPtr(25)})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := decode[dto.InventoryResponse](t, resp)
	assert.Equal(t, 25, item.Quantity)
	assert.Nil(t, item.Notes)

	resp = f.do(t, http.MethodGet, "/api/inventory/company/999", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.InventoryResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, item.ID, list[0].ID)
	assert.Equal(t, "P999", list[0].Product.Code)
	assert.Equal(t, "999", list[0].Company.NIT)
}

func TestInventory_CreateReferenciasInexistentes(t *testing.T) {
	f := newAPI(t)
	token := f.login(t, "admin@example.com", "adminuser")

	resp := f.do(t, http.MethodPost, "/api/inventory", token, dto.CreateInventoryRequest{ProductCode: "NOPE", CompanyNit: "900123456-7", Quantity: intPtr(1)})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/inventory", token, dto.CreateInventoryRequest{ProductCode: "P001", CompanyNit: "NOPE", Quantity: intPtr(1)})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/inventory", token, dto.CreateInventoryRequest{ProductCode: "P001", CompanyNit: "900123456-7", Quantity: intPtr(-3)})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/inventory", token, nil)
	assert.Len(t, decode[[]dto.InventoryResponse](t, resp), 7)
}

func TestInventory_PatchParcial(t *testing.T) {
	f := newAPI(t)
	token := f.login(t, "admin@example.com", "adminuser")

	resp := f.do(t, http.MethodPost, "/api/inventory", token, map[string]any{
		"productCode": "P001", "companyNit": "900123456-7", "quantity": 4, "notes": "inicial",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := decode[dto.InventoryResponse](t, resp)

	resp = f.do(t, http.MethodPatch, "/api/inventory/"+item.ID, token, map[string]any{"notes": "revisado"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.InventoryResponse](t, resp)
	assert.Equal(t, 4, updated.Quantity)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "revisado", *updated.Notes)
	assert.Equal(t, "P001", updated.Product.Code)

	resp = f.do(t, http.MethodPatch, "/api/inventory/"+item.ID, token, map[string]any{"quantity": 11})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated = decode[dto.InventoryResponse](t, resp)
	assert.Equal(t, 11, updated.Quantity)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "revisado", *updated.Notes)

	resp = f.do(t, http.MethodDelete, "/api/inventory/"+item.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, decode[dto.MessageResponse](t, resp).Message, item.ID)

	resp = f.do(t, http.MethodGet, "/api/inventory/"+item.ID, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInventory_CreateSinQuantity_Retorna400(t *testing.T) {
	f := newAPI(t)
	token := f.login(t, "admin@example.com", "adminuser")

	resp := f.do(t, http.MethodPost, "/api/inventory", token, map[string]any{
		"productCode": "P001", "companyNit": "900123456-7",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Message, "quantity")

	resp = f.do(t, http.MethodGet, "/api/inventory", token, nil)
	assert.Len(t, decode[[]dto.InventoryResponse](t, resp), 7)
}

func TestInventory_PatchNotesNull_BorraNotas(t *testing.T) {
	f := newAPI(t)
	token := f.login(t, "admin@example.com", "adminuser")

	resp := f.do(t, http.MethodPost, "/api/inventory", token, map[string]any{
		"productCode": "P001", "companyNit": "900123456-7", "quantity": 4, "notes": "inicial",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := decode[dto.InventoryResponse](t, resp)

	resp = f.do(t, http.MethodPatch, "/api/inventory/"+item.ID, token, map[string]any{"notes": nil})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.InventoryResponse](t, resp)
	assert.Nil(t, updated.Notes)
	assert.Equal(t, 4, updated.Quantity)

	resp = f.do(t, http.MethodGet, "/api/inventory/"+item.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, decode[dto.InventoryResponse](t, resp).Notes)
}

func TestInventory_PatchQuantityNegativa_Retorna400(t *testing.T) {
	f := newAPI(t)
	token := f.login(t, "admin@example.com", "adminuser")

	resp := f.do(t, http.MethodGet, "/api/inventory", token, nil)
	items := decode[[]dto.InventoryResponse](t, resp)
	require.NotEmpty(t, items)

	resp = f.do(t, http.MethodPatch, "/api/inventory/"+items[0].ID, token, map[string]any{"quantity": -1})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes e IA
// ──────────────────────────────────────────────────────────────────────────────

func TestReportPDF_CabecerasYContenido(t *testing.T) {
	f := newAPI(t)
	token := f.login(t, "external@example.com", "externaluser")

	resp := f.do(t, http.MethodGet, "/api/inventory/report/pdf", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename=inventory-report-\d{4}-\d{2}-\d{2}\.pdf$`, resp.Header.Get("Content-Disposition"))

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestReportEmail_ValoresPorDefectoYAdjunto(t *testing.T) {
	f := newAPI(t)
	token := f.login(t, "external@example.com", "externaluser")

	resp := f.do(t, http.MethodPost, "/api/inventory/report/email", token, dto.SendInventoryEmailRequest{Email: "boss@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.SendInventoryEmailResponse](t, resp)
	assert.True(t, out.Success)
	assert.Equal(t, "<test@local>", out.MessageID)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "boss@example.com", f.mailer.sent[0].To)
	assert.Equal(t, "Inventory Report", f.mailer.sent[0].Subject)
	require.Len(t, f.mailer.sent[0].Attachments, 1)

	resp = f.do(t, http.MethodPost, "/api/inventory/report/email", token, map[string]string{})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReportEmail_DestinatarioInvalido_NoEnvia(t *testing.T) {
	f := newAPI(t)
	token := f.login(t, "external@example.com", "externaluser")

	resp := f.do(t, http.MethodPost, "/api/inventory/report/email", token, dto.SendInventoryEmailRequest{Email: "not-an-email"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Message, "email")
	assert.Empty(t, f.mailer.sent)
}

func TestRegister_PasswordCorto_Retorna400(t *testing.T) {
	f := newAPI(t)

	resp := f.do(t, http.MethodPost, "/api/user/register", "", map[string]string{"email": "corto@example.com", "password": "123"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, resp).Message, "password")
}

func TestAI_SinProveedorDevuelvePlaceholder(t *testing.T) {
	f := newAPI(t)
	token := f.login(t, "admin@example.com", "adminuser")
	product := map[string]any{"name": "Lamp", "features": "LED", "priceUSD": 20}

	resp := f.do(t, http.MethodPost, "/api/ai/generate-description", token, product)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	desc := decode[dto.DescriptionResponse](t, resp)
	assert.Equal(t, "This is a placeholder description for Lamp. Features: LED. Price: 20 USD.", desc.Description)

	resp = f.do(t, http.MethodPost, "/api/ai/generate-features", token, product)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"no features"}, decode[dto.FeaturesResponse](t, resp).Features)

	resp = f.do(t, http.MethodPost, "/api/ai/generate-features", f.login(t, "external@example.com", "externaluser"), product)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
