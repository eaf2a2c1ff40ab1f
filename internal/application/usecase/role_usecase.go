package usecase

import (
	"fmt"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

// RoleUseCase CRUD de roles. Los nombres están acotados a la enumeración
// cerrada de entity; el unique constraint de la tabla resuelve duplicados.
type RoleUseCase struct {
	roles repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(roles repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{roles: roles}
}

// List devuelve todos los roles en el orden natural del store.
func (uc *RoleUseCase) List() ([]*dto.RoleResponse, error) {
	roles, err := uc.roles.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleToResponse(r))
	}
	return out, nil
}

// GetByID obtiene un rol por ID.
func (uc *RoleUseCase) GetByID(id int64) (*dto.RoleResponse, error) {
	role, err := uc.roles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrRoleNotFound, id)
	}
	return dto.RoleToResponse(role), nil
}

// Create crea un rol con nombre de la enumeración. Duplicado → conflicto.
func (uc *RoleUseCase) Create(req dto.RoleRequest) (*dto.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !entity.IsValidRole(req.Name) {
		return nil, domain.ErrInvalidRole
	}
	role := &entity.Role{Name: req.Name}
	if err := uc.roles.Create(role); err != nil {
		return nil, err
	}
	return dto.RoleToResponse(role), nil
}

// Update renombra un rol existente.
func (uc *RoleUseCase) Update(id int64, req dto.RoleRequest) (*dto.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !entity.IsValidRole(req.Name) {
		return nil, domain.ErrInvalidRole
	}
	role, err := uc.roles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrRoleNotFound, id)
	}
	role.Name = req.Name
	if err := uc.roles.Update(role); err != nil {
		return nil, err
	}
	return dto.RoleToResponse(role), nil
}

// Delete elimina un rol sin usuarios asignados; referenciado → conflicto.
func (uc *RoleUseCase) Delete(id int64) error {
	role, err := uc.roles.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return fmt.Errorf("%w with ID: %d", domain.ErrRoleNotFound, id)
	}
	return uc.roles.Delete(id)
}
