package postgres

import (
	"context"
	"fmt"

	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago (append-only) y asigna el ID generado.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (debt_id, amount, payment_method, transaction_date)
		VALUES ($1, $2, $3, $4)
		RETURNING payment_id`
	err := r.q.QueryRow(context.Background(), query,
		payment.DebtID, payment.Amount, payment.PaymentMethod, payment.TransactionDate,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByDebt devuelve los pagos de una deuda en orden cronológico.
func (r *PaymentRepo) ListByDebt(debtID int64) ([]*entity.Payment, error) {
	query := `
		SELECT payment_id, debt_id, amount, payment_method, transaction_date
		FROM payments WHERE debt_id = $1 ORDER BY transaction_date`
	rows, err := r.q.Query(context.Background(), query, debtID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.DebtID, &p.Amount, &p.PaymentMethod, &p.TransactionDate); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
