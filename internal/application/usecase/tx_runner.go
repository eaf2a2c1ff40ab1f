package usecase

import (
	"context"

	"github.com/kraya/platform-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Lo implementa postgres.TxRunner; el puerto vive aquí para evitar que la
// capa de aplicación dependa de la infraestructura.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		roles repository.RoleRepository,
		debts repository.DebtRepository,
		payments repository.PaymentRepository,
		transfers repository.DebtTransferRepository,
	) error) error
}
