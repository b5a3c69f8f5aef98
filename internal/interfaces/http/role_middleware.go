package http

import (
	"slices"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// RequireRole autoriza solo a los roles indicados. Debe ir después de AuthMiddleware.
//   - sin roles → pasa
//   - sin usuario en el contexto → 400 USER_NOT_FOUND
//   - rol fuera del conjunto → 403 FORBIDDEN
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := authorize(c, roles); !ok {
			return err
		}
		return c.Next()
	}
}

func authorize(c *fiber.Ctx, roles []string) (bool, error) {
	if len(roles) == 0 {
		return true, nil
	}
	if GetUserID(c) == "" {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado en la petición"})
	}
	role := GetRole(c)
	if !slices.Contains(roles, role) {
		return false, c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol '" + role + "' no tiene acceso a este recurso",
		})
	}
	return true, nil
}

// RequireAdmin exige rol admin. A diferencia de RequireRole, la falta de usuario también es 403.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "usuario no autenticado"})
		}
		if GetRole(c) != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo administradores pueden realizar esta acción"})
		}
		return c.Next()
	}
}

// Auth compone AuthMiddleware y RequireRole en un solo handler.
func Auth(jwtSecret string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := authenticate(c, jwtSecret); !ok {
			return err
		}
		if ok, err := authorize(c, roles); !ok {
			return err
		}
		return c.Next()
	}
}
