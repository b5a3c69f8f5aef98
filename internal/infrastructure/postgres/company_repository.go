package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db Querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa. NIT repetido -> domain.ErrDuplicate.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (nit, name, address, phone) VALUES ($1, $2, $3, $4)`,
		c.NIT, c.Name, c.Address, c.Phone,
	)
	if err != nil {
		return wrap("insert company", err)
	}
	return nil
}

// GetByNIT obtiene una empresa por NIT; (nil, nil) si no existe.
func (r *CompanyRepo) GetByNIT(ctx context.Context, nit string) (*entity.Company, error) {
	var c entity.Company
	err := r.db.QueryRow(ctx,
		`SELECT nit, name, address, phone FROM companies WHERE nit = $1`, nit,
	).Scan(&c.NIT, &c.Name, &c.Address, &c.Phone)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by NIT: %w", err)
	}
	return &c, nil
}

// Update actualiza nombre, dirección y teléfono. El NIT no cambia.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE companies SET name = $2, address = $3, phone = $4 WHERE nit = $1`,
		c.NIT, c.Name, c.Address, c.Phone,
	)
	if err != nil {
		return wrap("update company", err)
	}
	return affectedOne("update company", tag)
}

// List devuelve todas las empresas ordenadas por nombre.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.db.Query(ctx, `SELECT nit, name, address, phone FROM companies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var out []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.NIT, &c.Name, &c.Address, &c.Phone); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Delete borra la empresa. Si tiene productos o inventario -> domain.ErrConflict.
func (r *CompanyRepo) Delete(ctx context.Context, nit string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE nit = $1`, nit)
	if err != nil {
		return wrap("delete company", err)
	}
	return affectedOne("delete company", tag)
}
