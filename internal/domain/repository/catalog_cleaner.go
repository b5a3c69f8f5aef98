package repository

import "context"

// CatalogCleaner borra en una sola transacción inventario, productos, empresas y usuarios,
// en ese orden para respetar las llaves foráneas. Si algún DELETE falla no se borra nada.
type CatalogCleaner interface {
	ClearAll(ctx context.Context) error
}
