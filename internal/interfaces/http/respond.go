package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP en un único punto.
// Los handlers devuelven el error del usecase tal cual y esta función decide
// el status y el cuerpo.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:   "VALIDATION",
			Fields: vErr.Fields,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: domain.ErrInvalidRole.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrDebtNotFound),
		errors.Is(err, domain.ErrNotFound):
		// El mensaje ya trae el ID ("user not found with ID: 7").
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUsernameAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USERNAME_EXISTS", Message: domain.ErrUsernameAlreadyExists.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: domain.ErrEmailAlreadyExists.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrReferenced):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REFERENCED", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid credentials"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "account is not active"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal server error"})
	}
}

// badBody respuesta estándar para JSON que no parsea.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
}

// parseID lee el parámetro de ruta name como int64 positivo. Si no es válido
// escribe el 400 y devuelve ok=false; el handler debe retornar nil.
func parseID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "invalid " + name + " parameter"})
		return 0, false
	}
	return int64(id), true
}

// queryInt lee un query param numérico de paginación. Valores no numéricos o
// negativos caen en el default en vez de colarse como 0.
func queryInt(c *fiber.Ctx, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name, strconv.Itoa(def)))
	if err != nil || v < 0 {
		return def
	}
	return v
}
