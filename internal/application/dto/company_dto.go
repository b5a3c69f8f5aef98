package dto

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	NIT     string `json:"nit" validate:"required,min=1,max=20"`
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
// El NIT no se puede cambiar: si llega en el cuerpo se ignora.
type UpdateCompanyRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	NIT     string `json:"nit"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
