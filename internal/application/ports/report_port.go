package ports

import (
	"context"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// InventoryReportGenerator arma el documento PDF del inventario.
// items debe llegar con Product y Company materializados; el generador no consulta nada.
type InventoryReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, items []*entity.InventoryItem) ([]byte, error)
}
