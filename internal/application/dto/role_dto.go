package dto

import "github.com/kraya/platform-api/internal/domain/entity"

// RoleRequest entrada para crear o renombrar un rol.
type RoleRequest struct {
	Name string `json:"name" validate:"required"`
}

// Validate aplica las reglas de campo del rol.
func (r *RoleRequest) Validate() error {
	return runValidation(r, map[string]string{
		"name.required": "Role name is mandatory",
	})
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RoleToResponse mapea la entidad al DTO de salida.
func RoleToResponse(r *entity.Role) *RoleResponse {
	if r == nil {
		return nil
	}
	return &RoleResponse{ID: r.ID, Name: r.Name}
}
