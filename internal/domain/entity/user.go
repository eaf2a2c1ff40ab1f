package entity

import "time"

// Estados de cuenta de un usuario.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusBanned   = "BANNED"
)

// Kind del usuario: variante etiquetada que reemplaza la jerarquía
// User → AppUser → {Debtor, Creditor, Association} del modelo relacional.
// Cada kind tiene a lo sumo una fila de perfil propia compartiendo user_id.
const (
	KindApp         = "app"
	KindDebtor      = "debtor"
	KindCreditor    = "creditor"
	KindAssociation = "association"
)

// KindForRole deriva el kind del usuario a partir del rol de registro.
func KindForRole(role string) string {
	switch role {
	case RoleDebtor:
		return KindDebtor
	case RoleCreditor:
		return KindCreditor
	case RoleAssociation:
		return KindAssociation
	default:
		return KindApp
	}
}

// User representa un usuario de la plataforma. El perfil correspondiente al
// Kind es el único no-nil; los demás punteros quedan en nil.
type User struct {
	ID                int64
	Username          string
	PasswordHash      string // bcrypt hash, nunca texto plano después de persistir
	Email             string
	FirstName         string
	LastName          string
	PhoneNumber       string // opcional
	ProfilePictureURL string // opcional
	Status            string // ACTIVE, INACTIVE, BANNED
	Kind              string // app, debtor, creditor, association
	RegistrationDate  time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	LastLogin         *time.Time
	Roles             []Role

	Debtor      *DebtorProfile
	Creditor    *CreditorProfile
	Association *AssociationProfile
}

// RoleNames devuelve los nombres de los roles asignados, en el orden almacenado.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// DebtorProfile datos propios de un deudor (fila opcional en debtor_profiles).
type DebtorProfile struct {
	Address           string
	DateOfBirth       *time.Time
	IncomeLevel       string
	EmploymentStatus  string
	DebtReason        string
	MaritalStatus     string
	DependentsNumber  int
	HousingStatus     string
	Gender            string
	PreferredLanguage string
	ProfileVerified   bool
}

// CreditorProfile datos propios de un acreedor (fila opcional en creditor_profiles).
type CreditorProfile struct {
	ContactPerson   string
	Address         string
	Website         string
	Verified        bool
	CreditRating    string
	YearsInBusiness int
	BusinessLicense string
}

// AssociationProfile datos propios de una asociación (fila opcional en association_profiles).
type AssociationProfile struct {
	AreaOfFocus        string
	TaxID              string
	RegistrationNumber string
}
