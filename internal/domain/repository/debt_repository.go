package repository

import "github.com/kraya/platform-api/internal/domain/entity"

// DebtFilter filtros opcionales para listar deudas.
type DebtFilter struct {
	DebtorID   int64 // 0 = sin filtro
	CreditorID int64 // 0 = sin filtro
	Limit      int
	Offset     int
}

// DebtRepository define el puerto de persistencia para Debt.
type DebtRepository interface {
	Create(debt *entity.Debt) error
	GetByID(id int64) (*entity.Debt, error)
	List(filter DebtFilter) ([]*entity.Debt, error)
	Update(debt *entity.Debt) error
}
