package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Las lecturas hacen LEFT JOIN con companies para devolver la empresa propietaria.
type ProductRepo struct {
	db Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

const selectProduct = `
	SELECT p.code, p.name, p.features, p.price_usd, p.price_eur, p.price_cop,
	       c.nit, c.name, c.address, c.phone
	FROM products p
	LEFT JOIN companies c ON c.nit = p.company_nit`

// Create persiste un producto. Código repetido -> domain.ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (code, name, features, price_usd, price_eur, price_cop, company_nit)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.Code, p.Name, p.Features, p.PriceUSD, p.PriceEUR, p.PriceCOP, nullable(p.CompanyNIT()),
	)
	if err != nil {
		return wrap("insert product", err)
	}
	return nil
}

// GetByCode obtiene un producto por código; (nil, nil) si no existe.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, selectProduct+` WHERE p.code = $1`, code))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return p, nil
}

// Update actualiza todos los campos excepto el código.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $2, features = $3, price_usd = $4, price_eur = $5, price_cop = $6, company_nit = $7
		WHERE code = $1`,
		p.Code, p.Name, p.Features, p.PriceUSD, p.PriceEUR, p.PriceCOP, nullable(p.CompanyNIT()),
	)
	if err != nil {
		return wrap("update product", err)
	}
	return affectedOne("update product", tag)
}

// List devuelve todos los productos ordenados por código.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, selectProduct+` ORDER BY p.code`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete borra el producto. Con inventario asociado -> domain.ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE code = $1`, code)
	if err != nil {
		return wrap("delete product", err)
	}
	return affectedOne("delete product", tag)
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p                         entity.Product
		nit, name, address, phone *string
	)
	if err := row.Scan(
		&p.Code, &p.Name, &p.Features, &p.PriceUSD, &p.PriceEUR, &p.PriceCOP,
		&nit, &name, &address, &phone,
	); err != nil {
		return nil, err
	}
	if nit != nil {
		p.Company = &entity.Company{NIT: *nit, Name: deref(name), Address: deref(address), Phone: deref(phone)}
	}
	return &p, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
