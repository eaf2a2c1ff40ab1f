package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kraya/platform-api/internal/application/usecase"
	"github.com/kraya/platform-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Lo usan registro de usuarios (usuario + perfil + roles),
// pagos (pago + saldo) y transferencias (registro + cambio de acreedor).
func (r *TxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	roles repository.RoleRepository,
	debts repository.DebtRepository,
	payments repository.PaymentRepository,
	transfers repository.DebtTransferRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	roleRepo := NewRoleRepository(tx)
	debtRepo := NewDebtRepository(tx)
	paymentRepo := NewPaymentRepository(tx)
	transferRepo := NewDebtTransferRepository(tx)

	if err := fn(userRepo, roleRepo, debtRepo, paymentRepo, transferRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
