package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nueva empresa. Devuelve domain.ErrDuplicate si el NIT ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	in.NIT = strings.TrimSpace(in.NIT)
	if in.NIT == "" || in.Name == "" || in.Address == "" || in.Phone == "" {
		return nil, fmt.Errorf("nit, name, address y phone son requeridos: %w", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByNIT(ctx, in.NIT)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("empresa con NIT %s: %w", in.NIT, domain.ErrDuplicate)
	}
	company := &entity.Company{
		NIT:     in.NIT,
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return dto.NewCompanyResponse(company), nil
}

// GetByNIT obtiene una empresa por NIT.
func (uc *CompanyUseCase) GetByNIT(ctx context.Context, nit string) (*dto.CompanyResponse, error) {
	company, err := uc.load(ctx, nit)
	if err != nil {
		return nil, err
	}
	return dto.NewCompanyResponse(company), nil
}

// List lista todas las empresas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.NewCompanyResponse(c))
	}
	return items, nil
}

// Update aplica los campos presentes. El NIT es inmutable.
func (uc *CompanyUseCase) Update(ctx context.Context, nit string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.load(ctx, nit)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return dto.NewCompanyResponse(company), nil
}

// Delete elimina la empresa. Si el motor la protege por llaves foráneas el repositorio devuelve domain.ErrConflict.
func (uc *CompanyUseCase) Delete(ctx context.Context, nit string) error {
	if _, err := uc.load(ctx, nit); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, nit)
}

func (uc *CompanyUseCase) load(ctx context.Context, nit string) (*entity.Company, error) {
	company, err := uc.repo.GetByNIT(ctx, nit)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("empresa con NIT %s: %w", nit, domain.ErrNotFound)
	}
	return company, nil
}
