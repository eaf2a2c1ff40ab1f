package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una transferencia de deuda.
const (
	TransferStatusCompleted = "COMPLETED"
	TransferStatusRejected  = "REJECTED"
)

// DebtTransfer registra el traspaso de una deuda de un acreedor a otro.
// Ejecutar la transferencia re-apunta Debt.CreditorID en la misma transacción.
type DebtTransfer struct {
	ID             int64
	DebtID         int64
	FromCreditorID int64
	ToCreditorID   int64
	TransferDate   time.Time
	Amount         decimal.Decimal
	Status         string
}
