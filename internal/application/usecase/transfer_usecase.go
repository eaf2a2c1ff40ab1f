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

// TransferUseCase traspasa deudas entre acreedores. El registro de la
// transferencia y el cambio de acreedor de la deuda van en una transacción.
type TransferUseCase struct {
	tx        TxRunner
	transfers repository.DebtTransferRepository
	debts     repository.DebtRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(tx TxRunner, transfers repository.DebtTransferRepository, debts repository.DebtRepository) *TransferUseCase {
	return &TransferUseCase{tx: tx, transfers: transfers, debts: debts}
}

// Execute transfiere la deuda debtID al acreedor destino. Amount vacío usa el
// saldo actual de la deuda.
func (uc *TransferUseCase) Execute(debtID int64, req dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	transfer := &entity.DebtTransfer{
		DebtID:       debtID,
		ToCreditorID: req.ToCreditorID,
		TransferDate: time.Now(),
		Status:       entity.TransferStatusCompleted,
	}

	err := uc.tx.Run(context.Background(), func(
		users repository.UserRepository,
		_ repository.RoleRepository,
		debts repository.DebtRepository,
		_ repository.PaymentRepository,
		transfers repository.DebtTransferRepository,
	) error {
		debt, err := debts.GetByID(debtID)
		if err != nil {
			return err
		}
		if debt == nil {
			return fmt.Errorf("%w with ID: %d", domain.ErrDebtNotFound, debtID)
		}
		if debt.CreditorID == req.ToCreditorID {
			return domain.NewValidationError(map[string]string{"toCreditorId": "debt already belongs to this creditor"})
		}
		dest, err := users.GetByID(req.ToCreditorID)
		if err != nil {
			return err
		}
		if dest == nil {
			return fmt.Errorf("%w with ID: %d", domain.ErrUserNotFound, req.ToCreditorID)
		}

		transfer.FromCreditorID = debt.CreditorID
		transfer.Amount = debt.CurrentAmount
		if req.Amount != nil {
			if req.Amount.LessThanOrEqual(decimal.Zero) {
				return domain.NewValidationError(map[string]string{"amount": "must be greater than zero"})
			}
			if req.Amount.GreaterThan(debt.CurrentAmount) {
				return domain.NewValidationError(map[string]string{"amount": "exceeds the outstanding balance"})
			}
			transfer.Amount = *req.Amount
		}
		if err := transfers.Create(transfer); err != nil {
			return err
		}
		debt.CreditorID = req.ToCreditorID
		return debts.Update(debt)
	})
	if err != nil {
		return nil, err
	}
	return dto.TransferToResponse(transfer), nil
}

// ListByDebt devuelve las transferencias de una deuda.
func (uc *TransferUseCase) ListByDebt(debtID int64) ([]*dto.TransferResponse, error) {
	debt, err := uc.debts.GetByID(debtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrDebtNotFound, debtID)
	}
	transfers, err := uc.transfers.ListByDebt(debtID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, dto.TransferToResponse(t))
	}
	return out, nil
}
