package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un rol; nombre duplicado → ErrDuplicate.
func (r *RoleRepo) Create(role *entity.Role) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO roles (name) VALUES ($1) RETURNING role_id`, role.Name).Scan(&role.ID)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id int64) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(context.Background(),
		`SELECT role_id, name FROM roles WHERE role_id = $1`, id).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// GetByName obtiene un rol por nombre (lookup del registro).
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(context.Background(),
		`SELECT role_id, name FROM roles WHERE name = $1`, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return &role, nil
}

// List devuelve todos los roles en el orden natural de la tabla.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(), `SELECT role_id, name FROM roles ORDER BY role_id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Update renombra un rol; nombre duplicado → ErrDuplicate.
func (r *RoleRepo) Update(role *entity.Role) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE roles SET name = $2 WHERE role_id = $1`, role.ID, role.Name)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// Delete elimina un rol; referenciado por user_roles → ErrReferenced.
func (r *RoleRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE role_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}
