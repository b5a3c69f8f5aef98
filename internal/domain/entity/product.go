package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Code es la llave natural (inmutable).
// Company es la empresa propietaria; nil cuando el producto no tiene dueño asignado.
type Product struct {
	Code     string
	Name     string
	Features string
	PriceUSD decimal.Decimal
	PriceEUR decimal.Decimal
	PriceCOP decimal.Decimal
	Company  *Company
}

// CompanyNIT devuelve el NIT de la empresa propietaria o "" si no tiene.
func (p *Product) CompanyNIT() string {
	if p == nil || p.Company == nil {
		return ""
	}
	return p.Company.NIT
}
