package dto

import "time"

// CreateInventoryRequest body para POST /api/inventory.
type CreateInventoryRequest struct {
	ProductCode string  `json:"productCode" validate:"required"`
	CompanyNit  string  `json:"companyNit" validate:"required"`
	Quantity    *int    `json:"quantity" validate:"required,min=0"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdateInventoryRequest body para PATCH /api/inventory/:id. Solo se aplican los campos presentes;
// notes en null borra las notas.
type UpdateInventoryRequest struct {
	ProductCode *string        `json:"productCode,omitempty"`
	CompanyNit  *string        `json:"companyNit,omitempty"`
	Quantity    *int           `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Notes       NullableString `json:"notes,omitzero"`
}

// InventoryResponse registro de inventario con producto y empresa resueltos.
type InventoryResponse struct {
	ID        string          `json:"id"`
	Quantity  int             `json:"quantity"`
	Notes     *string         `json:"notes"`
	CreatedAt time.Time       `json:"createdAt"`
	Product   ProductResponse `json:"product"`
	Company   CompanyResponse `json:"company"`
}

// SendInventoryEmailRequest body para POST /api/inventory/report/email.
type SendInventoryEmailRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendInventoryEmailResponse resultado del envío del reporte.
type SendInventoryEmailResponse struct {
	Message    string `json:"message"`
	Success    bool   `json:"success"`
	MessageID  string `json:"messageId"`
	PreviewURL string `json:"previewUrl,omitempty"`
}
