package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/pkg/jwt"
)

// Locals keys que deja el AuthMiddleware en el contexto Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRoles    = "roles"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID, Username y Roles
// a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "expected format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRoles, claims.Roles)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que exige uno de los roles dados en el
// token. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRoles).
//
//   - 401 → no hay roles en el contexto (falta el AuthMiddleware).
//   - 403 → el usuario no tiene ninguno de los roles requeridos.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		have := GetRoles(c)
		if have == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "roles not found in token",
			})
		}
		for _, want := range roles {
			for _, r := range have {
				if r == want {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "insufficient role for this resource",
		})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetRoles devuelve los roles del token, o nil si no hay.
func GetRoles(c *fiber.Ctx) []string {
	v := c.Locals(LocalRoles)
	if v == nil {
		return nil
	}
	roles, _ := v.([]string)
	return roles
}
