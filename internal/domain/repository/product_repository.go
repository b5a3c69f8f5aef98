package repository

import (
	"context"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven la empresa propietaria ya resuelta.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, code string) error
}
