package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP de usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserRegistrationRequest  true  "datos de registro"
// @Success      201   {object}  dto.UserRegistrationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.UserRegistrationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderLocation, "/api/users/"+strconv.FormatInt(out.UserID, 10))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Consultar usuario por ID
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/users?limit=20&offset=0
func (h *UserHandler) List(c *fiber.Ctx) error {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del usuario"
// @Param        body  body  dto.UserUpdateRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UserUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.uc.Update(id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "User updated successfully"})
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Param        id  path  int  true  "ID del usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
