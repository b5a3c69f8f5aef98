package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-inventario/internal/application/auth"
	"github.com/jhoicas/catalogo-inventario/internal/application/inventory"
	"github.com/jhoicas/catalogo-inventario/internal/application/usecase"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *inventory.UseCase
	ReportUC    *inventory.ReportUseCase
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	AIUC        *usecase.AIUseCase
	JWTSecret   string

	// Límite de intentos de login por IP; LoginRatePerSecond <= 0 lo deshabilita.
	LoginRatePerSecond float64
	LoginRateBurst     int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	admin := Auth(deps.JWTSecret, entity.RoleAdmin)
	authenticated := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", RateLimit(deps.LoginRatePerSecond, deps.LoginRateBurst), authHandler.Login)

	// Users: registro público, administración solo admin
	users := api.Group("/user")
	users.Post("/register", authHandler.Register)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", admin, userHandler.List)
	users.Get("/:id", admin, userHandler.GetByID)
	users.Patch("/:id", admin, userHandler.Update)
	users.Delete("/:id", admin, userHandler.Delete)

	// Companies: lectura pública, escritura admin
	companies := api.Group("/company")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", admin, companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:nit", companyHandler.GetByNIT)
	companies.Patch("/:nit", admin, companyHandler.Update)
	companies.Delete("/:nit", admin, companyHandler.Delete)

	// Products (sin guard)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:code", productHandler.GetByCode)
	products.Patch("/:code", productHandler.Update)
	products.Delete("/:code", productHandler.Delete)

	// Inventory: lectura y reportes con token, escritura admin
	inv := api.Group("/inventory", authenticated)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.ReportUC)
	inv.Get("/report/pdf", inventoryHandler.ReportPDF)
	inv.Post("/report/email", inventoryHandler.ReportEmail)
	inv.Get("/company/:nit", inventoryHandler.ListByCompany)
	inv.Post("/", RequireAdmin(), inventoryHandler.Create)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/:id", inventoryHandler.GetByID)
	inv.Patch("/:id", RequireAdmin(), inventoryHandler.Update)
	inv.Delete("/:id", RequireAdmin(), inventoryHandler.Delete)

	// AI (admin)
	ai := api.Group("/ai", admin)
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/generate-description", aiHandler.GenerateDescription)
	ai.Post("/generate-features", aiHandler.GenerateFeatures)
}
