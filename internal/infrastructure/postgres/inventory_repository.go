package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
// Cada lectura trae en un solo JOIN el producto, su empresa propietaria y la empresa del registro.
type InventoryRepo struct {
	db Querier
}

// NewInventoryRepository construye el adaptador de persistencia para inventario.
func NewInventoryRepository(db Querier) *InventoryRepo {
	return &InventoryRepo{db: db}
}

const selectInventory = `
	SELECT i.id, i.quantity, i.notes, i.created_at,
	       p.code, p.name, p.features, p.price_usd, p.price_eur, p.price_cop,
	       pc.nit, pc.name, pc.address, pc.phone,
	       c.nit, c.name, c.address, c.phone
	FROM inventory i
	JOIN products p ON p.code = i.product_code
	LEFT JOIN companies pc ON pc.nit = p.company_nit
	JOIN companies c ON c.nit = i.company_nit`

// Create persiste un registro. Referencias inexistentes -> domain.ErrConflict.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO inventory (id, product_code, company_nit, quantity, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.Product.Code, item.Company.NIT, item.Quantity, item.Notes, item.CreatedAt,
	)
	if err != nil {
		return wrap("insert inventory", err)
	}
	return nil
}

// GetByID obtiene un registro por ID; (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	item, err := scanInventory(r.db.QueryRow(ctx, selectInventory+` WHERE i.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return item, nil
}

// Update reescribe producto, empresa, cantidad y notas.
func (r *InventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE inventory SET product_code = $2, company_nit = $3, quantity = $4, notes = $5
		WHERE id = $1`,
		item.ID, item.Product.Code, item.Company.NIT, item.Quantity, item.Notes,
	)
	if err != nil {
		return wrap("update inventory", err)
	}
	return affectedOne("update inventory", tag)
}

// List devuelve todo el inventario en orden de creación.
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	return r.list(ctx, selectInventory+` ORDER BY i.created_at, i.id`)
}

// ListByCompany devuelve el inventario registrado por una empresa.
func (r *InventoryRepo) ListByCompany(ctx context.Context, nit string) ([]*entity.InventoryItem, error) {
	return r.list(ctx, selectInventory+` WHERE i.company_nit = $1 ORDER BY i.created_at, i.id`, nit)
}

// Delete borra el registro.
func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return wrap("delete inventory", err)
	}
	return affectedOne("delete inventory", tag)
}

func (r *InventoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.InventoryItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryItem
	for rows.Next() {
		item, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func scanInventory(row pgx.Row) (*entity.InventoryItem, error) {
	var (
		it                                       entity.InventoryItem
		ownerNIT, ownerName, ownerAddr, ownerTel *string
	)
	if err := row.Scan(
		&it.ID, &it.Quantity, &it.Notes, &it.CreatedAt,
		&it.Product.Code, &it.Product.Name, &it.Product.Features,
		&it.Product.PriceUSD, &it.Product.PriceEUR, &it.Product.PriceCOP,
		&ownerNIT, &ownerName, &ownerAddr, &ownerTel,
		&it.Company.NIT, &it.Company.Name, &it.Company.Address, &it.Company.Phone,
	); err != nil {
		return nil, err
	}
	if ownerNIT != nil {
		it.Product.Company = &entity.Company{NIT: *ownerNIT, Name: deref(ownerName), Address: deref(ownerAddr), Phone: deref(ownerTel)}
	}
	return &it, nil
}
