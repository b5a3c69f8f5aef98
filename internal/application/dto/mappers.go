package dto

import "github.com/jhoicas/catalogo-inventario/internal/domain/entity"

// NewCompanyResponse convierte la entidad a su salida HTTP.
func NewCompanyResponse(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{
		NIT:     c.NIT,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
	}
}

// NewProductResponse convierte el producto (con su empresa, si tiene) a su salida HTTP.
func NewProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		Code:     p.Code,
		Name:     p.Name,
		Features: p.Features,
		PriceUSD: p.PriceUSD,
		PriceEUR: p.PriceEUR,
		PriceCOP: p.PriceCOP,
		Company:  NewCompanyResponse(p.Company),
	}
}

// NewInventoryResponse convierte un registro de inventario materializado a su salida HTTP.
func NewInventoryResponse(i *entity.InventoryItem) *InventoryResponse {
	if i == nil {
		return nil
	}
	return &InventoryResponse{
		ID:        i.ID,
		Quantity:  i.Quantity,
		Notes:     i.Notes,
		CreatedAt: i.CreatedAt,
		Product:   *NewProductResponse(&i.Product),
		Company:   *NewCompanyResponse(&i.Company),
	}
}

// NewInventoryListResponse convierte una lista de registros.
func NewInventoryListResponse(items []*entity.InventoryItem) []InventoryResponse {
	out := make([]InventoryResponse, 0, len(items))
	for _, i := range items {
		out = append(out, *NewInventoryResponse(i))
	}
	return out
}

// NewUserResponse salida de un usuario sin el hash del password.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
