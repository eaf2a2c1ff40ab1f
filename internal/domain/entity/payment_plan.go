package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un plan de pagos.
const (
	PlanStatusActive    = "ACTIVE"
	PlanStatusCompleted = "COMPLETED"
	PlanStatusCancelled = "CANCELLED"
)

// PaymentPlan es un acuerdo de cuotas sobre una deuda, propuesto por el acreedor.
type PaymentPlan struct {
	ID                int64
	DebtID            int64
	CreditorID        int64
	PlanType          string
	InstallmentAmount decimal.Decimal
	StartDate         time.Time
	EndDate           *time.Time // opcional
	Status            string
}
