package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/application/inventory"
)

// InventoryHandler maneja el libro de inventario y sus reportes.
type InventoryHandler struct {
	uc     *inventory.UseCase
	report *inventory.ReportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase, report *inventory.ReportUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, report: report}
}

// Create godoc
// @Summary      Registrar inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "productCode, companyNit, quantity, notes"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.FindAll(c.UserContext())
	if err != nil {
		return writeError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.FindOne(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(out)
}

// ListByCompany godoc
// @Summary      Inventario de una empresa
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        nit  path  string  true  "NIT de la empresa"
// @Success      200  {array}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/company/{nit} [get]
func (h *InventoryHandler) ListByCompany(c *fiber.Ctx) error {
	out, err := h.uc.FindByCompany(c.UserContext(), c.Params("nit"))
	if err != nil {
		return writeError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar registro de inventario
// @Description  Solo se aplican los campos presentes.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del registro"
// @Param        body  body  dto.UpdateInventoryRequest  true  "productCode, companyNit, quantity, notes"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [patch]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Remove(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Reporte PDF del inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/report/pdf [get]
func (h *InventoryHandler) ReportPDF(c *fiber.Ctx) error {
	pdf, err := h.report.GeneratePDF(c.UserContext())
	if err != nil {
		return writeError(c, err, fiber.StatusInternalServerError)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+h.report.ReportFilename())
	return c.Send(pdf)
}

// ReportEmail godoc
// @Summary      Enviar reporte de inventario por correo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendInventoryEmailRequest  true  "email, subject, body"
// @Success      200   {object}  dto.SendInventoryEmailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/report/email [post]
func (h *InventoryHandler) ReportEmail(c *fiber.Ctx) error {
	var in dto.SendInventoryEmailRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.report.SendReportEmail(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(out)
}
