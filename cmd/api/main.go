package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/catalogo-inventario/internal/application/auth"
	"github.com/jhoicas/catalogo-inventario/internal/application/inventory"
	"github.com/jhoicas/catalogo-inventario/internal/application/ports"
	"github.com/jhoicas/catalogo-inventario/internal/application/seed"
	"github.com/jhoicas/catalogo-inventario/internal/application/usecase"
	infraai "github.com/jhoicas/catalogo-inventario/internal/infrastructure/ai"
	"github.com/jhoicas/catalogo-inventario/internal/infrastructure/mail"
	"github.com/jhoicas/catalogo-inventario/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/catalogo-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/catalogo-inventario/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/catalogo-inventario/internal/interfaces/http"
	"github.com/jhoicas/catalogo-inventario/pkg/config"
	"github.com/jhoicas/catalogo-inventario/pkg/logger"
	"github.com/jhoicas/catalogo-inventario/pkg/metrics"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: login y rutas protegidas van a fallar")
	}

	ctx := context.Background()

	var repos seed.Repositories
	switch cfg.Store.Driver {
	case config.StoreMemory:
		store := memory.NewStore()
		repos = seed.Repositories{
			Cleaner:   store,
			Users:     store.Users(),
			Companies: store.Companies(),
			Products:  store.Products(),
			Inventory: store.Inventory(),
		}
		// sin base de datos no hay nada que mostrar: se carga el seed de demostración
		if err := seed.NewUseCase(repos, log.Component("seed")).Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("seed en memoria")
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		repos = seed.Repositories{
			Cleaner:   postgres.NewTxRunner(pool),
			Users:     postgres.NewUserRepository(pool),
			Companies: postgres.NewCompanyRepository(pool),
			Products:  postgres.NewProductRepository(pool),
			Inventory: postgres.NewInventoryRepository(pool),
		}
	}

	m := metrics.New("catalogo")

	companyUC := usecase.NewCompanyUseCase(repos.Companies)
	productUC := usecase.NewProductUseCase(repos.Products, repos.Companies)
	userUC := usecase.NewUserUseCase(repos.Users)
	inventoryUC := inventory.NewUseCase(repos.Inventory, repos.Products, repos.Companies)
	reportUC := inventory.NewReportUseCase(
		repos.Inventory,
		infrapdf.NewMarotoReportGenerator(),
		mail.NewGomailSender(cfg.Mail),
		log.Component("report"),
	)
	aiUC := usecase.NewAIUseCase(newLLM(cfg.AI, log), log.Component("ai"), m)
	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(m.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Catálogo e Inventario API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", m.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:          companyUC,
		ProductUC:          productUC,
		InventoryUC:        inventoryUC,
		ReportUC:           reportUC,
		AuthUC:             authUC,
		UserUC:             userUC,
		AIUC:               aiUC,
		JWTSecret:          cfg.JWT.Secret,
		LoginRatePerSecond: cfg.RateLimit.LoginPerSecond,
		LoginRateBurst:     cfg.RateLimit.LoginBurst,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newLLM elige el proveedor de IA. Sin API key devuelve nil y el caso de uso responde con placeholders.
func newLLM(cfg config.AIConfig, log *logger.Logger) ports.LLMService {
	switch cfg.Provider {
	case config.AIProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			log.Warn().Msg("ANTHROPIC_API_KEY vacío: la IA devolverá contenido de respaldo")
			return nil
		}
		return infraai.NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	default:
		if cfg.GeminiAPIKey == "" {
			log.Warn().Msg("GEMINI_API_KEY vacío: la IA devolverá contenido de respaldo")
			return nil
		}
		return infraai.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
