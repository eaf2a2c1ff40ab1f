package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/application/usecase"
)

// PaymentHandler maneja pagos, planes de pago y cesiones de deuda.
type PaymentHandler struct {
	payments  *usecase.PaymentUseCase
	plans     *usecase.PaymentPlanUseCase
	transfers *usecase.TransferUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(payments *usecase.PaymentUseCase, plans *usecase.PaymentPlanUseCase, transfers *usecase.TransferUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments, plans: plans, transfers: transfers}
}

// RecordPayment godoc
// @Summary      Registrar pago sobre una deuda
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID de la deuda"
// @Param        body  body  dto.RecordPaymentRequest  true  "monto y método"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/debts/{id}/payments [post]
func (h *PaymentHandler) RecordPayment(c *fiber.Ctx) error {
	debtID, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.payments.Record(debtID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPayments GET /api/debts/:id/payments
func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
	debtID, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.payments.ListByDebt(debtID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreatePlan POST /api/payment-plans
func (h *PaymentHandler) CreatePlan(c *fiber.Ctx) error {
	var in dto.CreatePaymentPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.plans.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPlans GET /api/payment-plans?debt_id=
func (h *PaymentHandler) ListPlans(c *fiber.Ctx) error {
	debtID, err := strconv.ParseInt(c.Query("debt_id"), 10, 64)
	if err != nil || debtID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "invalid debt_id parameter"})
	}
	out, uerr := h.plans.ListByDebt(debtID)
	if uerr != nil {
		return respondError(c, uerr)
	}
	return c.JSON(out)
}

// Transfer godoc
// @Summary      Ceder una deuda a otro acreedor
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID de la deuda"
// @Param        body  body  dto.CreateTransferRequest  true  "acreedor destino"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/debts/{id}/transfers [post]
func (h *PaymentHandler) Transfer(c *fiber.Ctx) error {
	debtID, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.transfers.Execute(debtID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransfers GET /api/debts/:id/transfers
func (h *PaymentHandler) ListTransfers(c *fiber.Ctx) error {
	debtID, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.transfers.ListByDebt(debtID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
