package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/application/statement"
	"github.com/kraya/platform-api/internal/application/usecase"
	"github.com/kraya/platform-api/internal/domain/repository"
)

// DebtHandler maneja las peticiones HTTP de deudas.
type DebtHandler struct {
	uc        *usecase.DebtUseCase
	statement *statement.UseCase
}

// NewDebtHandler construye el handler.
func NewDebtHandler(uc *usecase.DebtUseCase, st *statement.UseCase) *DebtHandler {
	return &DebtHandler{uc: uc, statement: st}
}

// Create godoc
// @Summary      Crear deuda
// @Tags         debts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDebtRequest  true  "datos de la deuda"
// @Success      201   {object}  dto.DebtResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/debts [post]
func (h *DebtHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDebtRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/debts/:id
func (h *DebtHandler) GetByID(c *fiber.Ctx) error {
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

// List GET /api/debts?debtor_id=&creditor_id=&limit=&offset=
func (h *DebtHandler) List(c *fiber.Ctx) error {
	filter := repository.DebtFilter{}
	if v := c.Query("debtor_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "invalid debtor_id parameter"})
		}
		filter.DebtorID = id
	}
	if v := c.Query("creditor_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "invalid creditor_id parameter"})
		}
		filter.CreditorID = id
	}
	filter.Limit = queryInt(c, "limit", 20)
	filter.Offset = queryInt(c, "offset", 0)

	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus PATCH /api/debts/:id/status
func (h *DebtHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateDebtStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Statement godoc
// @Summary      Estado de cuenta en PDF
// @Tags         debts
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la deuda"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/debts/{id}/statement [get]
func (h *DebtHandler) Statement(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	pdfBytes, err := h.statement.Generate(id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="debt-statement-`+strconv.FormatInt(id, 10)+`.pdf"`)
	return c.Send(pdfBytes)
}
