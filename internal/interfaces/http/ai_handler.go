package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/application/usecase"
)

// AIHandler expone la generación de contenido de producto.
// El caso de uso nunca falla: ante errores del proveedor responde con texto de respaldo.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GenerateDescription godoc
// @Summary      Generar descripción de producto con IA
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductContentRequest  true  "Producto"
// @Success      200   {object}  dto.DescriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/ai/generate-description [post]
func (h *AIHandler) GenerateDescription(c *fiber.Ctx) error {
	var in dto.ProductContentRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	return c.JSON(dto.DescriptionResponse{Description: h.uc.GenerateDescription(c.UserContext(), in)})
}

// GenerateFeatures godoc
// @Summary      Generar características de producto con IA
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductContentRequest  true  "Producto"
// @Success      200   {object}  dto.FeaturesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/ai/generate-features [post]
func (h *AIHandler) GenerateFeatures(c *fiber.Ctx) error {
	var in dto.ProductContentRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	return c.JSON(dto.FeaturesResponse{Features: h.uc.GenerateFeatures(c.UserContext(), in)})
}
