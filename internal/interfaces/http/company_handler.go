package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         company
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "nit, name, address, phone"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/company [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         company
// @Produce      json
// @Success      200  {array}  dto.CompanyResponse
// @Router       /api/company [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(out)
}

// GetByNIT godoc
// @Summary      Obtener empresa por NIT
// @Tags         company
// @Produce      json
// @Param        nit  path  string  true  "NIT de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{nit} [get]
func (h *CompanyHandler) GetByNIT(c *fiber.Ctx) error {
	out, err := h.uc.GetByNIT(c.UserContext(), c.Params("nit"))
	if err != nil {
		return writeError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Description  Solo se aplican los campos presentes; el NIT no cambia.
// @Tags         company
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        nit   path  string                    true  "NIT de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "name, address, phone"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/company/{nit} [patch]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("nit"), in)
	if err != nil {
		return writeError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa
// @Description  Falla con 409 si la empresa tiene productos o inventario asociados.
// @Tags         company
// @Security     Bearer
// @Produce      json
// @Param        nit  path  string  true  "NIT de la empresa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/company/{nit} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	nit := c.Params("nit")
	if err := h.uc.Delete(c.UserContext(), nit); err != nil {
		return writeError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("empresa con NIT %s eliminada", nit)})
}
