package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment es un pago aplicado a una deuda. Registro append-only.
type Payment struct {
	ID              int64
	DebtID          int64
	Amount          decimal.Decimal
	PaymentMethod   string
	TransactionDate time.Time
}
