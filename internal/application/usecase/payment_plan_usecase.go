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

// PaymentPlanUseCase propone planes de cuotas sobre deudas existentes.
// El acreedor del plan es siempre el acreedor actual de la deuda.
type PaymentPlanUseCase struct {
	plans repository.PaymentPlanRepository
	debts repository.DebtRepository
}

// NewPaymentPlanUseCase construye el caso de uso.
func NewPaymentPlanUseCase(plans repository.PaymentPlanRepository, debts repository.DebtRepository) *PaymentPlanUseCase {
	return &PaymentPlanUseCase{plans: plans, debts: debts}
}

// Create registra un plan de pagos ACTIVE para la deuda indicada.
func (uc *PaymentPlanUseCase) Create(req dto.CreatePaymentPlanRequest) (*dto.PaymentPlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.InstallmentAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError(map[string]string{"installmentAmount": "must be greater than zero"})
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, domain.NewValidationError(map[string]string{"startDate": "must be a date in YYYY-MM-DD format"})
	}
	var end *time.Time
	if req.EndDate != "" {
		e, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, domain.NewValidationError(map[string]string{"endDate": "must be a date in YYYY-MM-DD format"})
		}
		if e.Before(start) {
			return nil, domain.NewValidationError(map[string]string{"endDate": "must not be before startDate"})
		}
		end = &e
	}

	debt, err := uc.debts.GetByID(req.DebtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrDebtNotFound, req.DebtID)
	}

	plan := &entity.PaymentPlan{
		DebtID:            req.DebtID,
		CreditorID:        debt.CreditorID,
		PlanType:          req.PlanType,
		InstallmentAmount: req.InstallmentAmount,
		StartDate:         start,
		EndDate:           end,
		Status:            entity.PlanStatusActive,
	}
	if err := uc.plans.Create(plan); err != nil {
		return nil, err
	}
	return dto.PlanToResponse(plan), nil
}

// ListByDebt devuelve los planes de una deuda.
func (uc *PaymentPlanUseCase) ListByDebt(debtID int64) ([]*dto.PaymentPlanResponse, error) {
	debt, err := uc.debts.GetByID(debtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrDebtNotFound, debtID)
	}
	plans, err := uc.plans.ListByDebt(debtID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, dto.PlanToResponse(p))
	}
	return out, nil
}
