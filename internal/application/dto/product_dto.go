package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. CompanyID es el NIT de la empresa dueña.
type CreateProductRequest struct {
	Code      string          `json:"code" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Features  string          `json:"features" validate:"required"`
	PriceUSD  decimal.Decimal `json:"priceUSD"`
	PriceEUR  decimal.Decimal `json:"priceEUR"`
	PriceCOP  decimal.Decimal `json:"priceCOP"`
	CompanyID string          `json:"companyId"`
}

// UpdateProductRequest entrada para actualizar un producto. El código no se puede cambiar.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	Features  *string          `json:"features"`
	PriceUSD  *decimal.Decimal `json:"priceUSD"`
	PriceEUR  *decimal.Decimal `json:"priceEUR"`
	PriceCOP  *decimal.Decimal `json:"priceCOP"`
	CompanyID *string          `json:"companyId"`
}

// ProductResponse salida de un producto con su empresa propietaria (si tiene).
type ProductResponse struct {
	Code     string           `json:"code"`
	Name     string           `json:"name"`
	Features string           `json:"features"`
	PriceUSD decimal.Decimal  `json:"priceUSD"`
	PriceEUR decimal.Decimal  `json:"priceEUR"`
	PriceCOP decimal.Decimal  `json:"priceCOP"`
	Company  *CompanyResponse `json:"company"`
}
