package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

// PaymentUseCase aplica pagos a deudas. El insert del pago y el descuento
// del saldo van en la misma transacción; una deuda que llega a cero pasa a
// SETTLED.
type PaymentUseCase struct {
	tx       TxRunner
	payments repository.PaymentRepository
	debts    repository.DebtRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(tx TxRunner, payments repository.PaymentRepository, debts repository.DebtRepository) *PaymentUseCase {
	return &PaymentUseCase{tx: tx, payments: payments, debts: debts}
}

// Record aplica un pago a la deuda debtID.
func (uc *PaymentUseCase) Record(debtID int64, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError(map[string]string{"amount": "must be greater than zero"})
	}

	payment := &entity.Payment{
		DebtID:          debtID,
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		TransactionDate: time.Now(),
	}

	err := uc.tx.Run(context.Background(), func(
		_ repository.UserRepository,
		_ repository.RoleRepository,
		debts repository.DebtRepository,
		payments repository.PaymentRepository,
		_ repository.DebtTransferRepository,
	) error {
		debt, err := debts.GetByID(debtID)
		if err != nil {
			return err
		}
		if debt == nil {
			return fmt.Errorf("%w with ID: %d", domain.ErrDebtNotFound, debtID)
		}
		if req.Amount.GreaterThan(debt.CurrentAmount) {
			return domain.NewValidationError(map[string]string{"amount": "exceeds the outstanding amount"})
		}
		if err := payments.Create(payment); err != nil {
			return err
		}
		debt.CurrentAmount = debt.CurrentAmount.Sub(req.Amount)
		if debt.CurrentAmount.IsZero() {
			debt.Status = entity.DebtStatusSettled
		}
		return debts.Update(debt)
	})
	if err != nil {
		return nil, err
	}
	return dto.PaymentToResponse(payment), nil
}

// ListByDebt devuelve los pagos de una deuda.
func (uc *PaymentUseCase) ListByDebt(debtID int64) ([]*dto.PaymentResponse, error) {
	debt, err := uc.debts.GetByID(debtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrDebtNotFound, debtID)
	}
	payments, err := uc.payments.ListByDebt(debtID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.PaymentToResponse(p))
	}
	return out, nil
}
