package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una deuda.
const (
	DebtStatusPending     = "PENDING"
	DebtStatusActive      = "ACTIVE"
	DebtStatusSettled     = "SETTLED"
	DebtStatusDefaulted   = "DEFAULTED"
	DebtStatusTransferred = "TRANSFERRED"
)

// IsValidDebtStatus indica si s es un estado de deuda conocido.
func IsValidDebtStatus(s string) bool {
	switch s {
	case DebtStatusPending, DebtStatusActive, DebtStatusSettled, DebtStatusDefaulted, DebtStatusTransferred:
		return true
	}
	return false
}

// Debt representa una deuda entre un deudor y un acreedor.
// Invariante: CurrentAmount <= OriginalAmount en la creación.
type Debt struct {
	ID             int64
	DebtorID       int64
	CreditorID     int64
	OriginalAmount decimal.Decimal
	CurrentAmount  decimal.Decimal
	InterestRate   *decimal.Decimal // opcional, porcentaje anual
	DueDate        *time.Time       // opcional
	Status         string
	CreationDate   time.Time
}
