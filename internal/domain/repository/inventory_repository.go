package repository

import (
	"context"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para registros de inventario.
// Toda lectura devuelve Product y Company materializados (JOIN), nunca referencias diferidas.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	List(ctx context.Context) ([]*entity.InventoryItem, error)
	ListByCompany(ctx context.Context, nit string) ([]*entity.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}
