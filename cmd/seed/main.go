// seed repuebla la base configurada con los datos de demostración: borra inventario,
// productos, empresas y usuarios, y vuelve a crear los usuarios por defecto, 3 empresas,
// 5 productos y 7 registros de inventario.
//
// Uso: go run ./cmd/seed
// Sale con código 1 si cualquier paso falla.
package main

import (
	"context"
	"os"
	"time"

	"github.com/jhoicas/catalogo-inventario/internal/application/seed"
	"github.com/jhoicas/catalogo-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-inventario/pkg/config"
	"github.com/jhoicas/catalogo-inventario/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("cargar configuración: " + err.Error() + "\n")
		return 1
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "seed"})

	if cfg.Store.Driver != config.StorePostgres {
		log.Error().Str("store", cfg.Store.Driver).Msg("el seed solo aplica a STORE_DRIVER=postgres")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		return 1
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
		log.Error().Err(err).Msg("migraciones")
		return 1
	}

	uc := seed.NewUseCase(seed.Repositories{
		Cleaner:   postgres.NewTxRunner(pool),
		Users:     postgres.NewUserRepository(pool),
		Companies: postgres.NewCompanyRepository(pool),
		Products:  postgres.NewProductRepository(pool),
		Inventory: postgres.NewInventoryRepository(pool),
	}, log.Component("seed"))

	if err := uc.Run(ctx); err != nil {
		log.Error().Err(err).Msg("seed falló")
		return 1
	}
	log.Info().Msg("seed completado")
	return 0
}
