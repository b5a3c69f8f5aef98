// Package seed repuebla la base con datos de demostración: limpia todas las tablas,
// crea los usuarios por defecto y carga empresas, productos e inventario de ejemplo.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-inventario/internal/application/auth"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
)

// Repositories puertos que usa el orquestador.
type Repositories struct {
	Cleaner   repository.CatalogCleaner
	Users     repository.UserRepository
	Companies repository.CompanyRepository
	Products  repository.ProductRepository
	Inventory repository.InventoryRepository
}

// UseCase orquesta el reseed completo. El primer paso que falla aborta el proceso.
type UseCase struct {
	repos Repositories
	log   zerolog.Logger
}

// NewUseCase construye el orquestador.
func NewUseCase(repos Repositories, log zerolog.Logger) *UseCase {
	return &UseCase{repos: repos, log: log}
}

// Run ejecuta limpieza, usuarios, empresas, productos e inventario, en ese orden.
func (uc *UseCase) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"clear database", uc.repos.Cleaner.ClearAll},
		{"default users", uc.EnsureDefaultUsers},
		{"companies", uc.seedCompanies},
		{"products", uc.seedProducts},
		{"inventory", uc.seedInventory},
	}
	for _, step := range steps {
		uc.log.Info().Str("step", step.name).Msg("seed: iniciando")
		if err := step.fn(ctx); err != nil {
			uc.log.Error().Err(err).Str("step", step.name).Msg("seed: falló")
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		uc.log.Info().Str("step", step.name).Msg("seed: completado")
	}
	return nil
}

// EnsureDefaultUsers crea admin y external solo si el admin no existe.
func (uc *UseCase) EnsureDefaultUsers(ctx context.Context) error {
	admin, err := uc.repos.Users.GetByEmail(ctx, defaultAdminEmail)
	if err != nil {
		return err
	}
	if admin != nil {
		uc.log.Info().Msg("usuarios por defecto ya existen")
		return nil
	}
	defaults := []struct {
		email, password, role string
	}{
		{defaultAdminEmail, defaultAdminPassword, entity.RoleAdmin},
		{defaultExternalEmail, defaultExternalPassword, entity.RoleExternal},
	}
	for _, d := range defaults {
		hash, err := auth.HashPassword(d.password)
		if err != nil {
			return err
		}
		user := &entity.User{
			ID:           uuid.New().String(),
			Email:        d.email,
			PasswordHash: hash,
			Role:         d.role,
			IsActive:     true,
		}
		if err := uc.repos.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("creando usuario %s: %w", d.email, err)
		}
	}
	return nil
}

func (uc *UseCase) seedCompanies(ctx context.Context) error {
	for i := range companyFixtures {
		c := companyFixtures[i]
		if err := uc.repos.Companies.Create(ctx, &c); err != nil {
			return fmt.Errorf("empresa %s: %w", c.NIT, err)
		}
	}
	uc.log.Info().Int("count", len(companyFixtures)).Msg("empresas cargadas")
	return nil
}

func (uc *UseCase) seedProducts(ctx context.Context) error {
	companies, err := uc.repos.Companies.List(ctx)
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		return errors.New("no hay empresas, cargue empresas primero")
	}
	byNIT := make(map[string]*entity.Company, len(companies))
	for _, c := range companies {
		byNIT[c.NIT] = c
	}
	for _, f := range productFixtures {
		company, ok := byNIT[companyFixtures[f.company].NIT]
		if !ok {
			return fmt.Errorf("empresa %s no encontrada para producto %s", companyFixtures[f.company].NIT, f.code)
		}
		usd, eur, cop := f.prices()
		p := &entity.Product{
			Code:     f.code,
			Name:     f.name,
			Features: f.features,
			PriceUSD: usd,
			PriceEUR: eur,
			PriceCOP: cop,
			Company:  company,
		}
		if err := uc.repos.Products.Create(ctx, p); err != nil {
			return fmt.Errorf("producto %s: %w", f.code, err)
		}
	}
	uc.log.Info().Int("count", len(productFixtures)).Msg("productos cargados")
	return nil
}

func (uc *UseCase) seedInventory(ctx context.Context) error {
	products, err := uc.repos.Products.List(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return errors.New("no hay productos, cargue productos primero")
	}
	companies, err := uc.repos.Companies.List(ctx)
	if err != nil {
		return err
	}
	byCode := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byCode[p.Code] = p
	}
	byNIT := make(map[string]*entity.Company, len(companies))
	for _, c := range companies {
		byNIT[c.NIT] = c
	}
	now := time.Now().UTC()
	for _, f := range inventoryFixtures {
		code := productFixtures[f.product].code
		nit := companyFixtures[f.company].NIT
		product, company := byCode[code], byNIT[nit]
		if product == nil || company == nil {
			return fmt.Errorf("referencia faltante para inventario %s@%s", code, nit)
		}
		notes := f.notes
		item := &entity.InventoryItem{
			ID:        uuid.New().String(),
			Product:   *product,
			Company:   *company,
			Quantity:  f.quantity,
			Notes:     &notes,
			CreatedAt: now,
		}
		if err := uc.repos.Inventory.Create(ctx, item); err != nil {
			return fmt.Errorf("inventario %s@%s: %w", code, nit, err)
		}
	}
	uc.log.Info().Int("count", len(inventoryFixtures)).Msg("inventario cargado")
	return nil
}
