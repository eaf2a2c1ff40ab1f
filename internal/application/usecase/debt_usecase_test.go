package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

// seedParties registra un deudor (ID 1) y un acreedor (ID 2) en el fake.
func seedParties(t *testing.T, users *fakeUserRepo) {
	t.Helper()
	for _, u := range []*entity.User{
		{Username: "deudor", Email: "deudor@example.com", Kind: entity.KindDebtor, Status: entity.StatusActive},
		{Username: "acreedor", Email: "acreedor@example.com", Kind: entity.KindCreditor, Status: entity.StatusActive},
	} {
		require.NoError(t, users.Create(u))
	}
}

func newDebtFixture(t *testing.T) (*DebtUseCase, *fakeDebtRepo, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	debts := newFakeDebtRepo()
	seedParties(t, users)
	return NewDebtUseCase(debts, users), debts, users
}

func TestCrearDeuda_DefaultsYEstadoActivo(t *testing.T) {
	uc, _, _ := newDebtFixture(t)

	out, err := uc.Create(dto.CreateDebtRequest{
		DebtorID:       1,
		CreditorID:     2,
		OriginalAmount: decimal.RequireFromString("1500.00"),
		DueDate:        "2026-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.DebtID)
	assert.Equal(t, entity.DebtStatusActive, out.Status)
	// Sin currentAmount explícito arranca igual al original.
	assert.True(t, out.CurrentAmount.Equal(out.OriginalAmount))
	assert.Equal(t, "2026-12-31", out.DueDate)
}

func TestCrearDeuda_MontoNoPositivo(t *testing.T) {
	uc, _, _ := newDebtFixture(t)

	_, err := uc.Create(dto.CreateDebtRequest{
		DebtorID:       1,
		CreditorID:     2,
		OriginalAmount: decimal.RequireFromString("-10"),
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "originalAmount")
}

func TestCrearDeuda_CurrentMayorQueOriginal(t *testing.T) {
	uc, _, _ := newDebtFixture(t)

	current := decimal.RequireFromString("2000")
	_, err := uc.Create(dto.CreateDebtRequest{
		DebtorID:       1,
		CreditorID:     2,
		OriginalAmount: decimal.RequireFromString("1500"),
		CurrentAmount:  &current,
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "currentAmount")
}

func TestCrearDeuda_ParteInexistente(t *testing.T) {
	uc, _, _ := newDebtFixture(t)

	_, err := uc.Create(dto.CreateDebtRequest{
		DebtorID:       77,
		CreditorID:     2,
		OriginalAmount: decimal.RequireFromString("100"),
	})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Contains(t, err.Error(), "ID: 77")
}

func TestCrearDeuda_FechaInvalida(t *testing.T) {
	uc, _, _ := newDebtFixture(t)

	_, err := uc.Create(dto.CreateDebtRequest{
		DebtorID:       1,
		CreditorID:     2,
		OriginalAmount: decimal.RequireFromString("100"),
		DueDate:        "31/12/2026",
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "dueDate")
}

func TestListarDeudas_FiltroPorDeudor(t *testing.T) {
	uc, _, users := newDebtFixture(t)
	require.NoError(t, users.Create(&entity.User{Username: "otro", Email: "otro@example.com"}))

	for _, debtorID := range []int64{1, 1, 3} {
		_, err := uc.Create(dto.CreateDebtRequest{
			DebtorID:       debtorID,
			CreditorID:     2,
			OriginalAmount: decimal.RequireFromString("100"),
		})
		require.NoError(t, err)
	}

	out, err := uc.List(repository.DebtFilter{DebtorID: 1})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestActualizarEstado_Valido(t *testing.T) {
	uc, _, _ := newDebtFixture(t)

	created, err := uc.Create(dto.CreateDebtRequest{
		DebtorID:       1,
		CreditorID:     2,
		OriginalAmount: decimal.RequireFromString("100"),
	})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(created.DebtID, dto.UpdateDebtStatusRequest{Status: entity.DebtStatusDefaulted})
	require.NoError(t, err)
	assert.Equal(t, entity.DebtStatusDefaulted, out.Status)
}

func TestActualizarEstado_Desconocido(t *testing.T) {
	uc, _, _ := newDebtFixture(t)

	_, err := uc.UpdateStatus(1, dto.UpdateDebtStatusRequest{Status: "CANCELLED"})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "status")
}

func TestActualizarEstado_DeudaInexistente(t *testing.T) {
	uc, _, _ := newDebtFixture(t)

	_, err := uc.UpdateStatus(9, dto.UpdateDebtStatusRequest{Status: entity.DebtStatusSettled})
	require.ErrorIs(t, err, domain.ErrDebtNotFound)
	assert.Contains(t, err.Error(), "ID: 9")
}
