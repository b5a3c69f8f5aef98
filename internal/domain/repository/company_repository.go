package repository

import (
	"context"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. GetByNIT devuelve (nil, nil) si no existe.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByNIT(ctx context.Context, nit string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context) ([]*entity.Company, error)
	Delete(ctx context.Context, nit string) error
}
