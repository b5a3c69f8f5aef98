// Package memory implementa los repositorios del dominio en memoria.
// Se usa con STORE_DRIVER=memory (demos locales) y como doble de prueba en los tests
// de casos de uso y del router. Replica las llaves foráneas del esquema Postgres:
// borrar una empresa o producto referenciado devuelve domain.ErrConflict.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

type productRow struct {
	product    entity.Product
	companyNIT string
}

type inventoryRow struct {
	item        entity.InventoryItem
	productCode string
	companyNIT  string
	seq         int
}

// Store guarda todas las tablas bajo un solo mutex.
type Store struct {
	mu        sync.RWMutex
	companies map[string]entity.Company
	products  map[string]productRow
	inventory map[string]inventoryRow
	users     map[string]entity.User
	seq       int
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		companies: make(map[string]entity.Company),
		products:  make(map[string]productRow),
		inventory: make(map[string]inventoryRow),
		users:     make(map[string]entity.User),
	}
}

// Companies repositorio de empresas.
func (s *Store) Companies() *CompanyRepository { return &CompanyRepository{s: s} }

// Products repositorio de productos.
func (s *Store) Products() *ProductRepository { return &ProductRepository{s: s} }

// Inventory repositorio de inventario.
func (s *Store) Inventory() *InventoryRepository { return &InventoryRepository{s: s} }

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// ClearAll vacía las cuatro tablas de una vez.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory = make(map[string]inventoryRow)
	s.products = make(map[string]productRow)
	s.companies = make(map[string]entity.Company)
	s.users = make(map[string]entity.User)
	return nil
}

// materializeProduct requiere s.mu tomado.
func (s *Store) materializeProduct(row productRow) entity.Product {
	p := row.product
	p.Company = nil
	if row.companyNIT != "" {
		if c, ok := s.companies[row.companyNIT]; ok {
			p.Company = &c
		}
	}
	return p
}

// materializeItem requiere s.mu tomado.
func (s *Store) materializeItem(row inventoryRow) *entity.InventoryItem {
	item := row.item
	item.Product = s.materializeProduct(s.products[row.productCode])
	item.Company = s.companies[row.companyNIT]
	if row.item.Notes != nil {
		n := *row.item.Notes
		item.Notes = &n
	}
	return &item
}

func (s *Store) sortedItems(filter func(inventoryRow) bool) []*entity.InventoryItem {
	rows := make([]inventoryRow, 0, len(s.inventory))
	for _, r := range s.inventory {
		if filter == nil || filter(r) {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	out := make([]*entity.InventoryItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.materializeItem(r))
	}
	return out
}

// ── Empresas ──────────────────────────────────────────────────────────────────

// CompanyRepository implementa repository.CompanyRepository.
type CompanyRepository struct{ s *Store }

func (r *CompanyRepository) Create(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[c.NIT]; ok {
		return domain.ErrDuplicate
	}
	r.s.companies[c.NIT] = *c
	return nil
}

func (r *CompanyRepository) GetByNIT(_ context.Context, nit string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.companies[nit]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CompanyRepository) Update(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[c.NIT]; !ok {
		return domain.ErrNotFound
	}
	r.s.companies[c.NIT] = *c
	return nil
}

func (r *CompanyRepository) List(_ context.Context) ([]*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CompanyRepository) Delete(_ context.Context, nit string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.companyNIT == nit {
			return domain.ErrConflict
		}
	}
	for _, i := range r.s.inventory {
		if i.companyNIT == nit {
			return domain.ErrConflict
		}
	}
	delete(r.s.companies, nit)
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductRepository implementa repository.ProductRepository.
type ProductRepository struct{ s *Store }

func (r *ProductRepository) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.Code]; ok {
		return domain.ErrDuplicate
	}
	nit := p.CompanyNIT()
	if nit != "" {
		if _, ok := r.s.companies[nit]; !ok {
			return domain.ErrConflict
		}
	}
	r.s.products[p.Code] = productRow{product: *p, companyNIT: nit}
	return nil
}

func (r *ProductRepository) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.products[code]
	if !ok {
		return nil, nil
	}
	p := r.s.materializeProduct(row)
	return &p, nil
}

func (r *ProductRepository) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.Code]; !ok {
		return domain.ErrNotFound
	}
	nit := p.CompanyNIT()
	if nit != "" {
		if _, ok := r.s.companies[nit]; !ok {
			return domain.ErrConflict
		}
	}
	r.s.products[p.Code] = productRow{product: *p, companyNIT: nit}
	return nil
}

func (r *ProductRepository) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, row := range r.s.products {
		p := r.s.materializeProduct(row)
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *ProductRepository) Delete(_ context.Context, code string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, i := range r.s.inventory {
		if i.productCode == code {
			return domain.ErrConflict
		}
	}
	delete(r.s.products, code)
	return nil
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryRepository implementa repository.InventoryRepository.
// Las lecturas se devuelven en orden de inserción.
type InventoryRepository struct{ s *Store }

func (r *InventoryRepository) Create(_ context.Context, item *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.inventory[item.ID]; ok {
		return domain.ErrDuplicate
	}
	if err := r.checkRefs(item); err != nil {
		return err
	}
	r.s.seq++
	r.s.inventory[item.ID] = inventoryRow{
		item:        *item,
		productCode: item.Product.Code,
		companyNIT:  item.Company.NIT,
		seq:         r.s.seq,
	}
	return nil
}

func (r *InventoryRepository) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.inventory[id]
	if !ok {
		return nil, nil
	}
	return r.s.materializeItem(row), nil
}

func (r *InventoryRepository) Update(_ context.Context, item *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.inventory[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.checkRefs(item); err != nil {
		return err
	}
	row.item = *item
	row.productCode = item.Product.Code
	row.companyNIT = item.Company.NIT
	r.s.inventory[item.ID] = row
	return nil
}

func (r *InventoryRepository) List(_ context.Context) ([]*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.sortedItems(nil), nil
}

func (r *InventoryRepository) ListByCompany(_ context.Context, nit string) ([]*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.sortedItems(func(row inventoryRow) bool { return row.companyNIT == nit }), nil
}

func (r *InventoryRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.inventory, id)
	return nil
}

// checkRefs requiere s.mu tomado.
func (r *InventoryRepository) checkRefs(item *entity.InventoryItem) error {
	if _, ok := r.s.products[item.Product.Code]; !ok {
		return domain.ErrConflict
	}
	if _, ok := r.s.companies[item.Company.NIT]; !ok {
		return domain.ErrConflict
	}
	return nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// UserRepository implementa repository.UserRepository.
type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}
