package usecase

import (
	"context"
	"time"

	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Reproducen el contrato de
// los adaptadores postgres: IDs autoincrementales, nil cuando no existe la
// fila y errores de conflicto ante username/email repetidos.

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameAlreadyExists
		}
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByUsername(username string) (bool, error) {
	u, _ := r.GetByUsername(username)
	return u != nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	for id, u := range r.users {
		if id == user.ID {
			continue
		}
		if u.Username == user.Username {
			return domain.ErrUsernameAlreadyExists
		}
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(id int64, at time.Time) error {
	if u, ok := r.users[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for id := int64(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	delete(r.users, id)
	return nil
}

type fakeRoleRepo struct {
	roles  map[int64]*entity.Role
	nextID int64
}

// newFakeRoleRepo arranca con la enumeración completa ya sembrada.
func newFakeRoleRepo() *fakeRoleRepo {
	r := &fakeRoleRepo{roles: map[int64]*entity.Role{}, nextID: 1}
	for _, name := range entity.ValidRoleNames {
		_ = r.Create(&entity.Role{Name: name})
	}
	return r
}

func (r *fakeRoleRepo) Create(role *entity.Role) error {
	for _, existing := range r.roles {
		if existing.Name == role.Name {
			return domain.ErrDuplicate
		}
	}
	role.ID = r.nextID
	r.nextID++
	cp := *role
	r.roles[role.ID] = &cp
	return nil
}

func (r *fakeRoleRepo) GetByID(id int64) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, nil
	}
	cp := *role
	return &cp, nil
}

func (r *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			cp := *role
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) List() ([]*entity.Role, error) {
	var out []*entity.Role
	for id := int64(1); id < r.nextID; id++ {
		if role, ok := r.roles[id]; ok {
			cp := *role
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRoleRepo) Update(role *entity.Role) error {
	cp := *role
	r.roles[role.ID] = &cp
	return nil
}

func (r *fakeRoleRepo) Delete(id int64) error {
	delete(r.roles, id)
	return nil
}

type fakeDebtRepo struct {
	debts  map[int64]*entity.Debt
	nextID int64
}

func newFakeDebtRepo() *fakeDebtRepo {
	return &fakeDebtRepo{debts: map[int64]*entity.Debt{}, nextID: 1}
}

func (r *fakeDebtRepo) Create(debt *entity.Debt) error {
	debt.ID = r.nextID
	r.nextID++
	cp := *debt
	r.debts[debt.ID] = &cp
	return nil
}

func (r *fakeDebtRepo) GetByID(id int64) (*entity.Debt, error) {
	d, ok := r.debts[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDebtRepo) List(filter repository.DebtFilter) ([]*entity.Debt, error) {
	var out []*entity.Debt
	for id := int64(1); id < r.nextID; id++ {
		d, ok := r.debts[id]
		if !ok {
			continue
		}
		if filter.DebtorID != 0 && d.DebtorID != filter.DebtorID {
			continue
		}
		if filter.CreditorID != 0 && d.CreditorID != filter.CreditorID {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeDebtRepo) Update(debt *entity.Debt) error {
	cp := *debt
	r.debts[debt.ID] = &cp
	return nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
	nextID   int64
}

func newFakePaymentRepo() *fakePaymentRepo { return &fakePaymentRepo{nextID: 1} }

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.payments = append(r.payments, &cp)
	return nil
}

func (r *fakePaymentRepo) ListByDebt(debtID int64) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.DebtID == debtID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeTransferRepo struct {
	transfers []*entity.DebtTransfer
	nextID    int64
}

func newFakeTransferRepo() *fakeTransferRepo { return &fakeTransferRepo{nextID: 1} }

func (r *fakeTransferRepo) Create(t *entity.DebtTransfer) error {
	t.ID = r.nextID
	r.nextID++
	cp := *t
	r.transfers = append(r.transfers, &cp)
	return nil
}

func (r *fakeTransferRepo) ListByDebt(debtID int64) ([]*entity.DebtTransfer, error) {
	var out []*entity.DebtTransfer
	for _, t := range r.transfers {
		if t.DebtID == debtID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTx pasa los mismos fakes a fn, sin semántica transaccional real.
type fakeTx struct {
	users     *fakeUserRepo
	roles     *fakeRoleRepo
	debts     *fakeDebtRepo
	payments  *fakePaymentRepo
	transfers *fakeTransferRepo
}

func (tx *fakeTx) Run(_ context.Context, fn func(
	users repository.UserRepository,
	roles repository.RoleRepository,
	debts repository.DebtRepository,
	payments repository.PaymentRepository,
	transfers repository.DebtTransferRepository,
) error) error {
	return fn(tx.users, tx.roles, tx.debts, tx.payments, tx.transfers)
}
