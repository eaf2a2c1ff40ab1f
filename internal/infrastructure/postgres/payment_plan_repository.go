package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

var _ repository.PaymentPlanRepository = (*PaymentPlanRepo)(nil)

// PaymentPlanRepo implementación del puerto PaymentPlanRepository sobre PostgreSQL.
type PaymentPlanRepo struct {
	q Querier
}

// NewPaymentPlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentPlanRepository(q Querier) *PaymentPlanRepo {
	return &PaymentPlanRepo{q: q}
}

// Create persiste un plan de pagos y asigna el ID generado.
func (r *PaymentPlanRepo) Create(plan *entity.PaymentPlan) error {
	query := `
		INSERT INTO payment_plans (debt_id, creditor_id, plan_type, installment_amount, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING plan_id`
	err := r.q.QueryRow(context.Background(), query,
		plan.DebtID, plan.CreditorID, plan.PlanType, plan.InstallmentAmount,
		plan.StartDate, plan.EndDate, plan.Status,
	).Scan(&plan.ID)
	if err != nil {
		return fmt.Errorf("insert payment plan: %w", err)
	}
	return nil
}

// GetByID obtiene un plan por ID.
func (r *PaymentPlanRepo) GetByID(id int64) (*entity.PaymentPlan, error) {
	var p entity.PaymentPlan
	err := r.q.QueryRow(context.Background(), `
		SELECT plan_id, debt_id, creditor_id, plan_type, installment_amount, start_date, end_date, status
		FROM payment_plans WHERE plan_id = $1`, id).Scan(
		&p.ID, &p.DebtID, &p.CreditorID, &p.PlanType, &p.InstallmentAmount, &p.StartDate, &p.EndDate, &p.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment plan: %w", err)
	}
	return &p, nil
}

// ListByDebt devuelve los planes de una deuda.
func (r *PaymentPlanRepo) ListByDebt(debtID int64) ([]*entity.PaymentPlan, error) {
	query := `
		SELECT plan_id, debt_id, creditor_id, plan_type, installment_amount, start_date, end_date, status
		FROM payment_plans WHERE debt_id = $1 ORDER BY plan_id`
	rows, err := r.q.Query(context.Background(), query, debtID)
	if err != nil {
		return nil, fmt.Errorf("list payment plans: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentPlan
	for rows.Next() {
		var p entity.PaymentPlan
		if err := rows.Scan(&p.ID, &p.DebtID, &p.CreditorID, &p.PlanType, &p.InstallmentAmount, &p.StartDate, &p.EndDate, &p.Status); err != nil {
			return nil, fmt.Errorf("scan payment plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
