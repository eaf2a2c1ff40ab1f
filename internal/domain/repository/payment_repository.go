package repository

import "github.com/kraya/platform-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment (append-only).
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListByDebt(debtID int64) ([]*entity.Payment, error)
}

// PaymentPlanRepository define el puerto de persistencia para PaymentPlan.
type PaymentPlanRepository interface {
	Create(plan *entity.PaymentPlan) error
	GetByID(id int64) (*entity.PaymentPlan, error)
	ListByDebt(debtID int64) ([]*entity.PaymentPlan, error)
}

// DebtTransferRepository define el puerto de persistencia para DebtTransfer (append-only).
type DebtTransferRepository interface {
	Create(transfer *entity.DebtTransfer) error
	ListByDebt(debtID int64) ([]*entity.DebtTransfer, error)
}
