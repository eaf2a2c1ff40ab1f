package postgres

import (
	"context"
	"fmt"

	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

var _ repository.DebtTransferRepository = (*DebtTransferRepo)(nil)

// DebtTransferRepo implementación del puerto DebtTransferRepository sobre PostgreSQL.
type DebtTransferRepo struct {
	q Querier
}

// NewDebtTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDebtTransferRepository(q Querier) *DebtTransferRepo {
	return &DebtTransferRepo{q: q}
}

// Create persiste una transferencia (append-only) y asigna el ID generado.
func (r *DebtTransferRepo) Create(transfer *entity.DebtTransfer) error {
	query := `
		INSERT INTO debt_transfers (debt_id, from_creditor_id, to_creditor_id, transfer_date, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING transfer_id`
	err := r.q.QueryRow(context.Background(), query,
		transfer.DebtID, transfer.FromCreditorID, transfer.ToCreditorID,
		transfer.TransferDate, transfer.Amount, transfer.Status,
	).Scan(&transfer.ID)
	if err != nil {
		return fmt.Errorf("insert debt transfer: %w", err)
	}
	return nil
}

// ListByDebt devuelve las transferencias de una deuda en orden cronológico.
func (r *DebtTransferRepo) ListByDebt(debtID int64) ([]*entity.DebtTransfer, error) {
	query := `
		SELECT transfer_id, debt_id, from_creditor_id, to_creditor_id, transfer_date, amount, status
		FROM debt_transfers WHERE debt_id = $1 ORDER BY transfer_date`
	rows, err := r.q.Query(context.Background(), query, debtID)
	if err != nil {
		return nil, fmt.Errorf("list debt transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.DebtTransfer
	for rows.Next() {
		var t entity.DebtTransfer
		if err := rows.Scan(&t.ID, &t.DebtID, &t.FromCreditorID, &t.ToCreditorID, &t.TransferDate, &t.Amount, &t.Status); err != nil {
			return nil, fmt.Errorf("scan debt transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
