package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kraya/platform-api/internal/domain/entity"
)

// RecordPaymentRequest entrada para aplicar un pago a una deuda.
type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string          `json:"paymentMethod" validate:"required"`
}

// Validate aplica las reglas de campo del pago.
func (r *RecordPaymentRequest) Validate() error {
	return runValidation(r, map[string]string{
		"amount.required":        "Amount is mandatory",
		"paymentMethod.required": "Payment method is mandatory",
	})
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	PaymentID       int64           `json:"paymentId"`
	DebtID          int64           `json:"debtId"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"paymentMethod"`
	TransactionDate time.Time       `json:"transactionDate"`
}

// PaymentToResponse mapea la entidad al DTO de salida.
func PaymentToResponse(p *entity.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		PaymentID:       p.ID,
		DebtID:          p.DebtID,
		Amount:          p.Amount,
		PaymentMethod:   p.PaymentMethod,
		TransactionDate: p.TransactionDate,
	}
}

// CreatePaymentPlanRequest entrada para proponer un plan de pagos.
// Fechas en formato YYYY-MM-DD.
type CreatePaymentPlanRequest struct {
	DebtID            int64           `json:"debtId" validate:"required,gt=0"`
	PlanType          string          `json:"planType" validate:"required"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount" validate:"required"`
	StartDate         string          `json:"startDate" validate:"required"`
	EndDate           string          `json:"endDate,omitempty"`
}

// Validate aplica las reglas de campo del plan.
func (r *CreatePaymentPlanRequest) Validate() error {
	return runValidation(r, map[string]string{
		"debtId.required":            "Debt is mandatory",
		"debtId.gt":                  "Debt is mandatory",
		"planType.required":          "Plan type is mandatory",
		"installmentAmount.required": "Installment amount is mandatory",
		"startDate.required":         "Start date is mandatory",
	})
}

// PaymentPlanResponse salida de un plan de pagos.
type PaymentPlanResponse struct {
	PlanID            int64           `json:"planId"`
	DebtID            int64           `json:"debtId"`
	CreditorID        int64           `json:"creditorId"`
	PlanType          string          `json:"planType"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
	StartDate         string          `json:"startDate"`
	EndDate           string          `json:"endDate,omitempty"`
	Status            string          `json:"status"`
}

// PlanToResponse mapea la entidad al DTO de salida.
func PlanToResponse(p *entity.PaymentPlan) *PaymentPlanResponse {
	if p == nil {
		return nil
	}
	resp := &PaymentPlanResponse{
		PlanID:            p.ID,
		DebtID:            p.DebtID,
		CreditorID:        p.CreditorID,
		PlanType:          p.PlanType,
		InstallmentAmount: p.InstallmentAmount,
		StartDate:         p.StartDate.Format("2006-01-02"),
		Status:            p.Status,
	}
	if p.EndDate != nil {
		resp.EndDate = p.EndDate.Format("2006-01-02")
	}
	return resp
}

// CreateTransferRequest entrada para traspasar una deuda a otro acreedor.
// El acreedor origen es el actual de la deuda; Amount vacío usa el saldo.
type CreateTransferRequest struct {
	ToCreditorID int64            `json:"toCreditorId" validate:"required,gt=0"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
}

// Validate aplica las reglas de campo de la transferencia.
func (r *CreateTransferRequest) Validate() error {
	return runValidation(r, map[string]string{
		"toCreditorId.required": "Destination creditor is mandatory",
		"toCreditorId.gt":       "Destination creditor is mandatory",
	})
}

// TransferResponse salida de una transferencia de deuda.
type TransferResponse struct {
	TransferID     int64           `json:"transferId"`
	DebtID         int64           `json:"debtId"`
	FromCreditorID int64           `json:"fromCreditorId"`
	ToCreditorID   int64           `json:"toCreditorId"`
	TransferDate   time.Time       `json:"transferDate"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
}

// TransferToResponse mapea la entidad al DTO de salida.
func TransferToResponse(t *entity.DebtTransfer) *TransferResponse {
	if t == nil {
		return nil
	}
	return &TransferResponse{
		TransferID:     t.ID,
		DebtID:         t.DebtID,
		FromCreditorID: t.FromCreditorID,
		ToCreditorID:   t.ToCreditorID,
		TransferDate:   t.TransferDate,
		Amount:         t.Amount,
		Status:         t.Status,
	}
}
