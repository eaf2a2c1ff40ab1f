package dto

import (
	"time"

	"github.com/kraya/platform-api/internal/domain/entity"
)

// UserRegistrationRequest entrada para registro (password en texto, se hashea en el use case).
// El perfil correspondiente al rol es opcional; si viene, se persiste en la misma transacción.
type UserRegistrationRequest struct {
	Username          string `json:"username" validate:"required,min=3,max=50"`
	Password          string `json:"password" validate:"required,min=6"`
	FirstName         string `json:"firstName" validate:"required"`
	LastName          string `json:"lastName" validate:"required"`
	Role              string `json:"role" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	PhoneNumber       string `json:"phoneNumber"`
	ProfilePictureURL string `json:"profilePictureUrl"`

	DebtorProfile      *DebtorProfilePayload      `json:"debtorProfile,omitempty"`
	CreditorProfile    *CreditorProfilePayload    `json:"creditorProfile,omitempty"`
	AssociationProfile *AssociationProfilePayload `json:"associationProfile,omitempty"`
}

// Validate aplica las reglas de campo del registro.
func (r *UserRegistrationRequest) Validate() error {
	return runValidation(r, map[string]string{
		"username.required":  "Username is mandatory",
		"username.min":       "Username must be between 3 and 50 characters",
		"username.max":       "Username must be between 3 and 50 characters",
		"password.required":  "Password is mandatory",
		"password.min":       "Password must be at least 6 characters long",
		"firstName.required": "First name is mandatory",
		"lastName.required":  "Last name is mandatory",
		"role.required":      "Role is mandatory",
		"email.required":     "Email is mandatory",
		"email.email":        "Email should be valid",
	})
}

// UserUpdateRequest entrada para actualizar un usuario. Password vacío
// conserva el hash existente.
type UserUpdateRequest struct {
	Username          string `json:"username" validate:"required,min=3,max=50"`
	Email             string `json:"email" validate:"required,email"`
	FirstName         string `json:"firstName" validate:"required"`
	LastName          string `json:"lastName" validate:"required"`
	PhoneNumber       string `json:"phoneNumber"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	Password          string `json:"password"`
}

// Validate aplica las reglas de campo de la actualización.
func (r *UserUpdateRequest) Validate() error {
	return runValidation(r, map[string]string{
		"username.required":  "Username is mandatory",
		"username.min":       "Username must be between 3 and 50 characters",
		"username.max":       "Username must be between 3 and 50 characters",
		"firstName.required": "First name is mandatory",
		"lastName.required":  "Last name is mandatory",
		"email.required":     "Email is mandatory",
		"email.email":        "Email should be valid",
	})
}

// DebtorProfilePayload perfil de deudor en requests/responses.
type DebtorProfilePayload struct {
	Address           string `json:"address,omitempty"`
	DateOfBirth       string `json:"dateOfBirth,omitempty"` // YYYY-MM-DD
	IncomeLevel       string `json:"incomeLevel,omitempty"`
	EmploymentStatus  string `json:"employmentStatus,omitempty"`
	DebtReason        string `json:"debtReason,omitempty"`
	MaritalStatus     string `json:"maritalStatus,omitempty"`
	DependentsNumber  int    `json:"dependentsNumber,omitempty"`
	HousingStatus     string `json:"housingStatus,omitempty"`
	Gender            string `json:"gender,omitempty"`
	PreferredLanguage string `json:"preferredLanguage,omitempty"`
	ProfileVerified   bool   `json:"profileVerified,omitempty"`
}

// CreditorProfilePayload perfil de acreedor en requests/responses.
type CreditorProfilePayload struct {
	ContactPerson   string `json:"contactPerson,omitempty"`
	Address         string `json:"address,omitempty"`
	Website         string `json:"website,omitempty"`
	Verified        bool   `json:"verified,omitempty"`
	CreditRating    string `json:"creditRating,omitempty"`
	YearsInBusiness int    `json:"yearsInBusiness,omitempty"`
	BusinessLicense string `json:"businessLicense,omitempty"`
}

// AssociationProfilePayload perfil de asociación en requests/responses.
type AssociationProfilePayload struct {
	AreaOfFocus        string `json:"areaOfFocus,omitempty"`
	TaxID              string `json:"taxId,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
}

// UserRegistrationResponse salida del registro.
type UserRegistrationResponse struct {
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	UserID            int64      `json:"userId"`
	Username          string     `json:"username"`
	Email             string     `json:"email"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	PhoneNumber       string     `json:"phoneNumber,omitempty"`
	ProfilePictureURL string     `json:"profilePictureUrl,omitempty"`
	Status            string     `json:"status"`
	Kind              string     `json:"kind"`
	Roles             []string   `json:"roles"`
	RegistrationDate  time.Time  `json:"registrationDate"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	LastLogin         *time.Time `json:"lastLogin,omitempty"`

	DebtorProfile      *DebtorProfilePayload      `json:"debtorProfile,omitempty"`
	CreditorProfile    *CreditorProfilePayload    `json:"creditorProfile,omitempty"`
	AssociationProfile *AssociationProfilePayload `json:"associationProfile,omitempty"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate aplica las reglas de campo del login.
func (r *LoginRequest) Validate() error {
	return runValidation(r, map[string]string{
		"username.required": "Username is mandatory",
		"password.required": "Password is mandatory",
	})
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserToResponse mapea la entidad al DTO de salida.
func UserToResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	resp := &UserResponse{
		UserID:            u.ID,
		Username:          u.Username,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		PhoneNumber:       u.PhoneNumber,
		ProfilePictureURL: u.ProfilePictureURL,
		Status:            u.Status,
		Kind:              u.Kind,
		Roles:             u.RoleNames(),
		RegistrationDate:  u.RegistrationDate,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
		LastLogin:         u.LastLogin,
	}
	if u.Debtor != nil {
		p := &DebtorProfilePayload{
			Address:           u.Debtor.Address,
			IncomeLevel:       u.Debtor.IncomeLevel,
			EmploymentStatus:  u.Debtor.EmploymentStatus,
			DebtReason:        u.Debtor.DebtReason,
			MaritalStatus:     u.Debtor.MaritalStatus,
			DependentsNumber:  u.Debtor.DependentsNumber,
			HousingStatus:     u.Debtor.HousingStatus,
			Gender:            u.Debtor.Gender,
			PreferredLanguage: u.Debtor.PreferredLanguage,
			ProfileVerified:   u.Debtor.ProfileVerified,
		}
		if u.Debtor.DateOfBirth != nil {
			p.DateOfBirth = u.Debtor.DateOfBirth.Format("2006-01-02")
		}
		resp.DebtorProfile = p
	}
	if u.Creditor != nil {
		resp.CreditorProfile = &CreditorProfilePayload{
			ContactPerson:   u.Creditor.ContactPerson,
			Address:         u.Creditor.Address,
			Website:         u.Creditor.Website,
			Verified:        u.Creditor.Verified,
			CreditRating:    u.Creditor.CreditRating,
			YearsInBusiness: u.Creditor.YearsInBusiness,
			BusinessLicense: u.Creditor.BusinessLicense,
		}
	}
	if u.Association != nil {
		resp.AssociationProfile = &AssociationProfilePayload{
			AreaOfFocus:        u.Association.AreaOfFocus,
			TaxID:              u.Association.TaxID,
			RegistrationNumber: u.Association.RegistrationNumber,
		}
	}
	return resp
}
