package dto

import "github.com/shopspring/decimal"

// ProductContentRequest producto sobre el que se genera contenido con IA.
type ProductContentRequest struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Features string          `json:"features"`
	PriceUSD decimal.Decimal `json:"priceUSD"`
	PriceEUR decimal.Decimal `json:"priceEUR"`
	PriceCOP decimal.Decimal `json:"priceCOP"`
}

// DescriptionResponse descripción generada.
type DescriptionResponse struct {
	Description string `json:"description"`
}

// FeaturesResponse lista de características generadas.
type FeaturesResponse struct {
	Features []string `json:"features"`
}
