package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

// DebtUseCase registra y consulta deudas entre un deudor y un acreedor.
type DebtUseCase struct {
	debts repository.DebtRepository
	users repository.UserRepository
}

// NewDebtUseCase construye el caso de uso.
func NewDebtUseCase(debts repository.DebtRepository, users repository.UserRepository) *DebtUseCase {
	return &DebtUseCase{debts: debts, users: users}
}

// Create registra una deuda. Invariantes: montos positivos y
// currentAmount <= originalAmount; ambas partes deben existir.
func (uc *DebtUseCase) Create(req dto.CreateDebtRequest) (*dto.DebtResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current := req.OriginalAmount
	if req.CurrentAmount != nil {
		current = *req.CurrentAmount
	}
	if req.OriginalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError(map[string]string{"originalAmount": "must be greater than zero"})
	}
	if current.LessThan(decimal.Zero) || current.GreaterThan(req.OriginalAmount) {
		return nil, domain.NewValidationError(map[string]string{"currentAmount": "must be between zero and originalAmount"})
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, domain.NewValidationError(map[string]string{"dueDate": "must be a date in YYYY-MM-DD format"})
		}
		dueDate = &d
	}

	for _, id := range []int64{req.DebtorID, req.CreditorID} {
		user, err := uc.users.GetByID(id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("%w with ID: %d", domain.ErrUserNotFound, id)
		}
	}

	debt := &entity.Debt{
		DebtorID:       req.DebtorID,
		CreditorID:     req.CreditorID,
		OriginalAmount: req.OriginalAmount,
		CurrentAmount:  current,
		InterestRate:   req.InterestRate,
		DueDate:        dueDate,
		Status:         entity.DebtStatusActive,
		CreationDate:   time.Now(),
	}
	if err := uc.debts.Create(debt); err != nil {
		return nil, err
	}
	return dto.DebtToResponse(debt), nil
}

// GetByID obtiene una deuda por ID.
func (uc *DebtUseCase) GetByID(id int64) (*dto.DebtResponse, error) {
	debt, err := uc.debts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrDebtNotFound, id)
	}
	return dto.DebtToResponse(debt), nil
}

// List devuelve deudas filtradas por deudor y/o acreedor, paginadas.
func (uc *DebtUseCase) List(filter repository.DebtFilter) ([]*dto.DebtResponse, error) {
	debts, err := uc.debts.List(filter)
	if err != nil {
		return nil, err
	}
	return dto.DebtsToResponse(debts), nil
}

// UpdateStatus cambia el estado de una deuda a otro de la enumeración.
func (uc *DebtUseCase) UpdateStatus(id int64, req dto.UpdateDebtStatusRequest) (*dto.DebtResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !entity.IsValidDebtStatus(req.Status) {
		return nil, domain.NewValidationError(map[string]string{"status": "must be one of PENDING, ACTIVE, SETTLED, DEFAULTED, TRANSFERRED"})
	}
	debt, err := uc.debts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrDebtNotFound, id)
	}
	debt.Status = req.Status
	if err := uc.debts.Update(debt); err != nil {
		return nil, err
	}
	return dto.DebtToResponse(debt), nil
}
