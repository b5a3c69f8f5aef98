package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo        repository.ProductRepository
	companyRepo repository.CompanyRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, companyRepo repository.CompanyRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea un nuevo producto. Si llega companyId la empresa debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Code = strings.TrimSpace(in.Code)
	if in.Code == "" || in.Name == "" || in.Features == "" {
		return nil, fmt.Errorf("code, name y features son requeridos: %w", domain.ErrInvalidInput)
	}
	prices := make([]decimal.Decimal, 0, 3)
	for _, d := range []decimal.Decimal{in.PriceUSD, in.PriceEUR, in.PriceCOP} {
		price, err := normalizePrice(d)
		if err != nil {
			return nil, err
		}
		prices = append(prices, price)
	}
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("producto con código %s ya existe: %w", in.Code, domain.ErrDuplicate)
	}
	product := &entity.Product{
		Code:     in.Code,
		Name:     in.Name,
		Features: in.Features,
		PriceUSD: prices[0],
		PriceEUR: prices[1],
		PriceCOP: prices[2],
	}
	if in.CompanyID != "" {
		company, err := uc.resolveCompany(ctx, in.CompanyID)
		if err != nil {
			return nil, err
		}
		product.Company = company
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// GetByCode obtiene un producto por código.
func (uc *ProductUseCase) GetByCode(ctx context.Context, code string) (*dto.ProductResponse, error) {
	product, err := uc.load(ctx, code)
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// List lista todos los productos con su empresa.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.NewProductResponse(p))
	}
	return items, nil
}

// Update actualiza los campos presentes. El código no se modifica; companyId puede reasignar la empresa.
func (uc *ProductUseCase) Update(ctx context.Context, code string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.load(ctx, code)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Features != nil {
		product.Features = *in.Features
	}
	for _, p := range []struct {
		in  *decimal.Decimal
		out *decimal.Decimal
	}{
		{in.PriceUSD, &product.PriceUSD},
		{in.PriceEUR, &product.PriceEUR},
		{in.PriceCOP, &product.PriceCOP},
	} {
		if p.in == nil {
			continue
		}
		price, err := normalizePrice(*p.in)
		if err != nil {
			return nil, err
		}
		*p.out = price
	}
	if in.CompanyID != nil && *in.CompanyID != "" {
		company, err := uc.resolveCompany(ctx, *in.CompanyID)
		if err != nil {
			return nil, err
		}
		product.Company = company
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// Delete elimina un producto por código.
func (uc *ProductUseCase) Delete(ctx context.Context, code string) (*dto.MessageResponse, error) {
	if _, err := uc.load(ctx, code); err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, code); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: fmt.Sprintf("producto con código %s eliminado", code)}, nil
}

func (uc *ProductUseCase) load(ctx context.Context, code string) (*entity.Product, error) {
	product, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto con código %s: %w", code, domain.ErrNotFound)
	}
	return product, nil
}

func (uc *ProductUseCase) resolveCompany(ctx context.Context, nit string) (*entity.Company, error) {
	company, err := uc.companyRepo.GetByNIT(ctx, nit)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("empresa con NIT %s: %w", nit, domain.ErrNotFound)
	}
	return company, nil
}

// maxPrice es el mayor valor que cabe en NUMERIC(10,2).
var maxPrice = decimal.RequireFromString("99999999.99")

// normalizePrice redondea a centavos, igual que la columna, y exige 0 < precio <= maxPrice.
func normalizePrice(d decimal.Decimal) (decimal.Decimal, error) {
	price := d.Round(2)
	if !price.GreaterThan(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("los precios deben ser mayores que cero: %w", domain.ErrInvalidInput)
	}
	if price.GreaterThan(maxPrice) {
		return decimal.Zero, fmt.Errorf("los precios no pueden superar %s: %w", maxPrice, domain.ErrInvalidInput)
	}
	return price, nil
}
