package statement

import (
	"fmt"

	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

// Generator produce el PDF del estado de cuenta de una deuda.
// Lo implementa pdf.MarotoStatementGenerator.
type Generator interface {
	GenerateStatement(debt *entity.Debt, debtor, creditor *entity.User, payments []*entity.Payment) ([]byte, error)
}

// UseCase reúne deuda, partes y pagos y delega el render al Generator.
type UseCase struct {
	debts    repository.DebtRepository
	users    repository.UserRepository
	payments repository.PaymentRepository
	gen      Generator
}

// NewUseCase construye el caso de uso del estado de cuenta.
func NewUseCase(debts repository.DebtRepository, users repository.UserRepository, payments repository.PaymentRepository, gen Generator) *UseCase {
	return &UseCase{debts: debts, users: users, payments: payments, gen: gen}
}

// Generate devuelve los bytes del PDF para la deuda debtID.
func (uc *UseCase) Generate(debtID int64) ([]byte, error) {
	debt, err := uc.debts.GetByID(debtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrDebtNotFound, debtID)
	}
	debtor, err := uc.users.GetByID(debt.DebtorID)
	if err != nil {
		return nil, err
	}
	creditor, err := uc.users.GetByID(debt.CreditorID)
	if err != nil {
		return nil, err
	}
	if debtor == nil || creditor == nil {
		return nil, domain.ErrUserNotFound
	}
	payments, err := uc.payments.ListByDebt(debtID)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateStatement(debt, debtor, creditor, payments)
}
