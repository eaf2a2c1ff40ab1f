package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
)

func newTransferFixture(t *testing.T) (*TransferUseCase, *fakeDebtRepo, *fakeTransferRepo, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	debts := newFakeDebtRepo()
	transfers := newFakeTransferRepo()
	seedParties(t, users)
	require.NoError(t, users.Create(&entity.User{Username: "acreedor2", Email: "acreedor2@example.com", Kind: entity.KindCreditor}))
	tx := &fakeTx{users: users, roles: newFakeRoleRepo(), debts: debts, payments: newFakePaymentRepo(), transfers: transfers}
	return NewTransferUseCase(tx, transfers, debts), debts, transfers, users
}

func TestTransferirDeuda_CambiaDeAcreedor(t *testing.T) {
	uc, debts, transfers, _ := newTransferFixture(t)
	debt := seedDebt(t, debts, "800.00")

	out, err := uc.Execute(debt.ID, dto.CreateTransferRequest{ToCreditorID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.FromCreditorID)
	assert.Equal(t, int64(3), out.ToCreditorID)
	// Sin monto explícito se transfiere el saldo completo.
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("800.00")))
	assert.Equal(t, entity.TransferStatusCompleted, out.Status)

	updated, _ := debts.GetByID(debt.ID)
	assert.Equal(t, int64(3), updated.CreditorID)

	list, _ := transfers.ListByDebt(debt.ID)
	assert.Len(t, list, 1)
}

func TestTransferirDeuda_MismoAcreedor(t *testing.T) {
	uc, debts, transfers, _ := newTransferFixture(t)
	debt := seedDebt(t, debts, "500.00")

	_, err := uc.Execute(debt.ID, dto.CreateTransferRequest{ToCreditorID: debt.CreditorID})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "toCreditorId")

	list, _ := transfers.ListByDebt(debt.ID)
	assert.Empty(t, list)
}

func TestTransferirDeuda_DestinoInexistente(t *testing.T) {
	uc, debts, _, _ := newTransferFixture(t)
	debt := seedDebt(t, debts, "500.00")

	_, err := uc.Execute(debt.ID, dto.CreateTransferRequest{ToCreditorID: 99})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Contains(t, err.Error(), "ID: 99")
}

func TestTransferirDeuda_DeudaInexistente(t *testing.T) {
	uc, _, _, _ := newTransferFixture(t)

	_, err := uc.Execute(7, dto.CreateTransferRequest{ToCreditorID: 3})
	assert.ErrorIs(t, err, domain.ErrDebtNotFound)
}

func TestTransferirDeuda_MontoNoPositivo(t *testing.T) {
	uc, debts, transfers, _ := newTransferFixture(t)
	debt := seedDebt(t, debts, "900.00")

	negative := decimal.RequireFromString("-50.00")
	_, err := uc.Execute(debt.ID, dto.CreateTransferRequest{ToCreditorID: 3, Amount: &negative})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "amount")

	// Nada se persiste y la deuda conserva su acreedor.
	list, _ := transfers.ListByDebt(debt.ID)
	assert.Empty(t, list)
	unchanged, _ := debts.GetByID(debt.ID)
	assert.Equal(t, int64(2), unchanged.CreditorID)
}

func TestTransferirDeuda_MontoExcedeSaldo(t *testing.T) {
	uc, debts, transfers, _ := newTransferFixture(t)
	debt := seedDebt(t, debts, "900.00")

	tooMuch := decimal.RequireFromString("900.01")
	_, err := uc.Execute(debt.ID, dto.CreateTransferRequest{ToCreditorID: 3, Amount: &tooMuch})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "amount")

	list, _ := transfers.ListByDebt(debt.ID)
	assert.Empty(t, list)
}

func TestTransferirDeuda_MontoParcial(t *testing.T) {
	uc, debts, _, _ := newTransferFixture(t)
	debt := seedDebt(t, debts, "900.00")

	partial := decimal.RequireFromString("400.00")
	out, err := uc.Execute(debt.ID, dto.CreateTransferRequest{ToCreditorID: 3, Amount: &partial})
	require.NoError(t, err)
	assert.True(t, out.Amount.Equal(partial))
}
