package repository

import "github.com/kraya/platform-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id int64) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
	Update(role *entity.Role) error
	Delete(id int64) error
}
