package entity

// Nombres de rol válidos en la plataforma. La enumeración es cerrada:
// el registro rechaza cualquier rol que no esté aquí (comparación exacta,
// sensible a mayúsculas).
const (
	RoleUser        = "USER"
	RoleAdmin       = "ADMIN"
	RoleDebtor      = "DEBTOR"
	RoleCreditor    = "CREDITOR"
	RoleAssociation = "ASSOCIATION"
)

// ValidRoleNames lista la enumeración completa, en orden estable.
var ValidRoleNames = []string{RoleUser, RoleAdmin, RoleDebtor, RoleCreditor, RoleAssociation}

// IsValidRole indica si name pertenece a la enumeración de roles.
func IsValidRole(name string) bool {
	for _, r := range ValidRoleNames {
		if r == name {
			return true
		}
	}
	return false
}

// Role representa un rol persistido (nombre único, relación N:M con User).
type Role struct {
	ID   int64
	Name string
}
