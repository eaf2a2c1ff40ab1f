package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

var _ repository.DebtRepository = (*DebtRepo)(nil)

// DebtRepo implementación del puerto DebtRepository sobre PostgreSQL.
type DebtRepo struct {
	q Querier
}

// NewDebtRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDebtRepository(q Querier) *DebtRepo {
	return &DebtRepo{q: q}
}

const debtColumns = `debt_id, debtor_id, creditor_id, original_amount, current_amount,
	interest_rate, due_date, status, creation_date`

// Create persiste una nueva deuda y asigna el ID generado.
func (r *DebtRepo) Create(debt *entity.Debt) error {
	query := `
		INSERT INTO debts (debtor_id, creditor_id, original_amount, current_amount, interest_rate, due_date, status, creation_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING debt_id`
	err := r.q.QueryRow(context.Background(), query,
		debt.DebtorID, debt.CreditorID, debt.OriginalAmount, debt.CurrentAmount,
		debt.InterestRate, debt.DueDate, debt.Status, debt.CreationDate,
	).Scan(&debt.ID)
	if err != nil {
		return fmt.Errorf("insert debt: %w", err)
	}
	return nil
}

// GetByID obtiene una deuda por ID.
func (r *DebtRepo) GetByID(id int64) (*entity.Debt, error) {
	var d entity.Debt
	err := r.q.QueryRow(context.Background(),
		`SELECT `+debtColumns+` FROM debts WHERE debt_id = $1`, id).Scan(
		&d.ID, &d.DebtorID, &d.CreditorID, &d.OriginalAmount, &d.CurrentAmount,
		&d.InterestRate, &d.DueDate, &d.Status, &d.CreationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get debt: %w", err)
	}
	return &d, nil
}

// List devuelve deudas filtradas por deudor y/o acreedor, paginadas.
func (r *DebtRepo) List(filter repository.DebtFilter) ([]*entity.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE 1=1`
	args := []any{}
	if filter.DebtorID != 0 {
		args = append(args, filter.DebtorID)
		query += ` AND debtor_id = $` + strconv.Itoa(len(args))
	}
	if filter.CreditorID != 0 {
		args = append(args, filter.CreditorID)
		query += ` AND creditor_id = $` + strconv.Itoa(len(args))
	}
	args = append(args, filter.Limit)
	query += ` ORDER BY debt_id LIMIT $` + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Debt
	for rows.Next() {
		var d entity.Debt
		if err := rows.Scan(
			&d.ID, &d.DebtorID, &d.CreditorID, &d.OriginalAmount, &d.CurrentAmount,
			&d.InterestRate, &d.DueDate, &d.Status, &d.CreationDate,
		); err != nil {
			return nil, fmt.Errorf("scan debt: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update sobrescribe acreedor, montos y estado (usado por pagos y transferencias).
func (r *DebtRepo) Update(debt *entity.Debt) error {
	query := `
		UPDATE debts SET creditor_id = $2, original_amount = $3, current_amount = $4,
			interest_rate = $5, due_date = $6, status = $7
		WHERE debt_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		debt.ID, debt.CreditorID, debt.OriginalAmount, debt.CurrentAmount,
		debt.InterestRate, debt.DueDate, debt.Status,
	)
	if err != nil {
		return fmt.Errorf("update debt: %w", err)
	}
	return nil
}
