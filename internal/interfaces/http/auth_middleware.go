package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/pkg/jwt"
)

// Locals keys para la identidad del usuario autenticado.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y deja user_id, email y role en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := authenticate(c, jwtSecret); !ok {
			return err
		}
		return c.Next()
	}
}

// authenticate carga los claims en c.Locals. Si falla ya escribió la respuesta 401.
func authenticate(c *fiber.Ctx, jwtSecret string) (bool, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return false, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return false, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return false, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
	}
	claims, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return false, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
	}
	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalEmail, claims.Email)
	c.Locals(LocalRole, claims.Role)
	return true, nil
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetEmail devuelve el email del usuario autenticado.
func GetEmail(c *fiber.Ctx) string {
	return localString(c, LocalEmail)
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
