package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
)

// UseCase administra los registros de inventario (producto, empresa, cantidad).
// Producto y empresa se resuelven antes de escribir; si alguno no existe no se persiste nada.
type UseCase struct {
	repo        repository.InventoryRepository
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
	now         func() time.Time
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(
	repo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
) *UseCase {
	return &UseCase{
		repo:        repo,
		productRepo: productRepo,
		companyRepo: companyRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create registra stock de un producto para una empresa. Se permiten registros repetidos del mismo par.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.Quantity == nil {
		return nil, fmt.Errorf("quantity es requerido: %w", domain.ErrInvalidInput)
	}
	if *in.Quantity < 0 {
		return nil, fmt.Errorf("quantity no puede ser negativa: %w", domain.ErrInvalidInput)
	}
	product, err := uc.resolveProduct(ctx, in.ProductCode)
	if err != nil {
		return nil, err
	}
	company, err := uc.resolveCompany(ctx, in.CompanyNit)
	if err != nil {
		return nil, err
	}
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		Product:   *product,
		Company:   *company,
		Quantity:  *in.Quantity,
		Notes:     normalizeNotes(in.Notes),
		CreatedAt: uc.now(),
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("creando inventario: %w", err)
	}
	return dto.NewInventoryResponse(item), nil
}

// FindAll devuelve todos los registros con producto y empresa.
func (uc *UseCase) FindAll(ctx context.Context) ([]dto.InventoryResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewInventoryListResponse(items), nil
}

// FindOne obtiene un registro por ID.
func (uc *UseCase) FindOne(ctx context.Context, id string) (*dto.InventoryResponse, error) {
	item, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInventoryResponse(item), nil
}

// FindByCompany lista los registros de una empresa; la empresa debe existir.
func (uc *UseCase) FindByCompany(ctx context.Context, nit string) ([]dto.InventoryResponse, error) {
	if _, err := uc.resolveCompany(ctx, nit); err != nil {
		return nil, err
	}
	items, err := uc.repo.ListByCompany(ctx, nit)
	if err != nil {
		return nil, err
	}
	return dto.NewInventoryListResponse(items), nil
}

// Update aplica solo los campos presentes. Cambiar productCode o companyNit vuelve a resolver la referencia.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	item, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, fmt.Errorf("quantity no puede ser negativa: %w", domain.ErrInvalidInput)
	}
	if in.ProductCode != nil && *in.ProductCode != "" {
		product, err := uc.resolveProduct(ctx, *in.ProductCode)
		if err != nil {
			return nil, err
		}
		item.Product = *product
	}
	if in.CompanyNit != nil && *in.CompanyNit != "" {
		company, err := uc.resolveCompany(ctx, *in.CompanyNit)
		if err != nil {
			return nil, err
		}
		item.Company = *company
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.Notes.Set {
		item.Notes = normalizeNotes(in.Notes.Value)
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return dto.NewInventoryResponse(item), nil
}

// Remove elimina el registro y devuelve el mensaje de confirmación.
func (uc *UseCase) Remove(ctx context.Context, id string) (*dto.MessageResponse, error) {
	if _, err := uc.load(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: fmt.Sprintf("Inventory with ID %s successfully removed", id)}, nil
}

func (uc *UseCase) load(ctx context.Context, id string) (*entity.InventoryItem, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("inventario con ID %s: %w", id, domain.ErrNotFound)
	}
	return item, nil
}

func (uc *UseCase) resolveProduct(ctx context.Context, code string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto con código %s: %w", code, domain.ErrNotFound)
	}
	return product, nil
}

func (uc *UseCase) resolveCompany(ctx context.Context, nit string) (*entity.Company, error) {
	company, err := uc.companyRepo.GetByNIT(ctx, nit)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("empresa con NIT %s: %w", nit, domain.ErrNotFound)
	}
	return company, nil
}

func normalizeNotes(notes *string) *string {
	if notes == nil || *notes == "" {
		return nil
	}
	n := *notes
	return &n
}
