package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kraya/platform-api/internal/domain/entity"
)

// CreateDebtRequest entrada para registrar una deuda. CurrentAmount vacío
// arranca igual a OriginalAmount. DueDate en formato YYYY-MM-DD.
type CreateDebtRequest struct {
	DebtorID       int64            `json:"debtorId" validate:"required,gt=0"`
	CreditorID     int64            `json:"creditorId" validate:"required,gt=0"`
	OriginalAmount decimal.Decimal  `json:"originalAmount" validate:"required"`
	CurrentAmount  *decimal.Decimal `json:"currentAmount,omitempty"`
	InterestRate   *decimal.Decimal `json:"interestRate,omitempty"`
	DueDate        string           `json:"dueDate,omitempty"`
}

// Validate aplica las reglas de campo de la deuda.
func (r *CreateDebtRequest) Validate() error {
	return runValidation(r, map[string]string{
		"debtorId.required":       "Debtor is mandatory",
		"debtorId.gt":             "Debtor is mandatory",
		"creditorId.required":     "Creditor is mandatory",
		"creditorId.gt":           "Creditor is mandatory",
		"originalAmount.required": "Original amount is mandatory",
	})
}

// UpdateDebtStatusRequest entrada para cambiar el estado de una deuda.
type UpdateDebtStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Validate aplica las reglas de campo del cambio de estado.
func (r *UpdateDebtStatusRequest) Validate() error {
	return runValidation(r, map[string]string{
		"status.required": "Status is mandatory",
	})
}

// DebtResponse salida de una deuda.
type DebtResponse struct {
	DebtID         int64            `json:"debtId"`
	DebtorID       int64            `json:"debtorId"`
	CreditorID     int64            `json:"creditorId"`
	OriginalAmount decimal.Decimal  `json:"originalAmount"`
	CurrentAmount  decimal.Decimal  `json:"currentAmount"`
	InterestRate   *decimal.Decimal `json:"interestRate,omitempty"`
	DueDate        string           `json:"dueDate,omitempty"`
	Status         string           `json:"status"`
	CreationDate   time.Time        `json:"creationDate"`
}

// DebtToResponse mapea la entidad al DTO de salida.
func DebtToResponse(d *entity.Debt) *DebtResponse {
	if d == nil {
		return nil
	}
	resp := &DebtResponse{
		DebtID:         d.ID,
		DebtorID:       d.DebtorID,
		CreditorID:     d.CreditorID,
		OriginalAmount: d.OriginalAmount,
		CurrentAmount:  d.CurrentAmount,
		InterestRate:   d.InterestRate,
		Status:         d.Status,
		CreationDate:   d.CreationDate,
	}
	if d.DueDate != nil {
		resp.DueDate = d.DueDate.Format("2006-01-02")
	}
	return resp
}

// DebtsToResponse mapea un listado de deudas.
func DebtsToResponse(debts []*entity.Debt) []*DebtResponse {
	out := make([]*DebtResponse, 0, len(debts))
	for _, d := range debts {
		out = append(out, DebtToResponse(d))
	}
	return out
}
