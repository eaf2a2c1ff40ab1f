package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

// UserUseCase orquesta el registro, consulta, actualización y borrado de
// usuarios. Es el único flujo con varias compuertas en secuencia: unicidad de
// username, unicidad de email, rol contra la enumeración, hash de password y
// persistencia atómica (usuario + perfil + user_roles).
type UserUseCase struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	tx         TxRunner
	bcryptCost int
}

// NewUserUseCase construye el caso de uso. bcryptCost <= 0 usa bcrypt.DefaultCost.
func NewUserUseCase(users repository.UserRepository, roles repository.RoleRepository, tx TxRunner, bcryptCost int) *UserUseCase {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserUseCase{users: users, roles: roles, tx: tx, bcryptCost: bcryptCost}
}

// Register ejecuta el flujo de registro. Cada compuerta corta el flujo sin
// commit parcial. Los checks de existencia son una optimización: la fuente de
// verdad es el unique constraint, que el adaptador traduce a los mismos
// errores de conflicto si dos registros concurrentes pasan el check.
func (uc *UserUseCase) Register(req dto.UserRegistrationRequest) (*dto.UserRegistrationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if exists, err := uc.users.ExistsByUsername(req.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.ErrUsernameAlreadyExists
	}
	if exists, err := uc.users.ExistsByEmail(req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	if !entity.IsValidRole(req.Role) {
		return nil, domain.ErrInvalidRole
	}
	role, err := uc.roles.GetByName(req.Role)
	if err != nil {
		return nil, err
	}
	if role == nil {
		// Rol de la enumeración sin fila en la tabla: tratarlo igual que un
		// rol inválido en vez de exponer un 500 por datos sin seed.
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Username:          req.Username,
		PasswordHash:      string(hash),
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		PhoneNumber:       req.PhoneNumber,
		ProfilePictureURL: req.ProfilePictureURL,
		Status:            entity.StatusActive,
		Kind:              entity.KindForRole(req.Role),
		RegistrationDate:  now,
		CreatedAt:         now,
		UpdatedAt:         now,
		Roles:             []entity.Role{*role},
	}
	if err := applyProfilePayloads(user, req.DebtorProfile, req.CreditorProfile, req.AssociationProfile); err != nil {
		return nil, err
	}

	err = uc.tx.Run(context.Background(), func(
		users repository.UserRepository,
		_ repository.RoleRepository,
		_ repository.DebtRepository,
		_ repository.PaymentRepository,
		_ repository.DebtTransferRepository,
	) error {
		return users.Create(user)
	})
	if err != nil {
		return nil, err
	}

	return &dto.UserRegistrationResponse{
		UserID:  user.ID,
		Message: "User registered successfully",
	}, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrUserNotFound, id)
	}
	return dto.UserToResponse(user), nil
}

// List devuelve usuarios paginados.
func (uc *UserUseCase) List(limit, offset int) ([]*dto.UserResponse, error) {
	users, err := uc.users.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserToResponse(u))
	}
	return out, nil
}

// Update sobrescribe los campos de identidad del usuario. Password vacío
// conserva el hash existente; uno nuevo se re-hashea. Las colisiones de
// username/email en update las detecta el unique constraint (conflicto).
func (uc *UserUseCase) Update(id int64, req dto.UserUpdateRequest) (*dto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrUserNotFound, id)
	}

	user.Username = req.Username
	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.PhoneNumber = req.PhoneNumber
	user.ProfilePictureURL = req.ProfilePictureURL
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()

	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return dto.UserToResponse(user), nil
}

// Delete elimina un usuario. Las deudas dependientes bloquean el borrado
// (restricción FK, traducida a conflicto por el adaptador).
func (uc *UserUseCase) Delete(id int64) error {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w with ID: %d", domain.ErrUserNotFound, id)
	}
	return uc.users.Delete(id)
}

// applyProfilePayloads vuelca el payload de perfil que corresponde al Kind.
// Payloads de otros kinds se ignoran.
func applyProfilePayloads(user *entity.User, d *dto.DebtorProfilePayload, c *dto.CreditorProfilePayload, a *dto.AssociationProfilePayload) error {
	switch user.Kind {
	case entity.KindDebtor:
		if d == nil {
			return nil
		}
		profile := &entity.DebtorProfile{
			Address:           d.Address,
			IncomeLevel:       d.IncomeLevel,
			EmploymentStatus:  d.EmploymentStatus,
			DebtReason:        d.DebtReason,
			MaritalStatus:     d.MaritalStatus,
			DependentsNumber:  d.DependentsNumber,
			HousingStatus:     d.HousingStatus,
			Gender:            d.Gender,
			PreferredLanguage: d.PreferredLanguage,
			ProfileVerified:   d.ProfileVerified,
		}
		if d.DateOfBirth != "" {
			dob, err := time.Parse("2006-01-02", d.DateOfBirth)
			if err != nil {
				return domain.NewValidationError(map[string]string{"dateOfBirth": "must be a date in YYYY-MM-DD format"})
			}
			profile.DateOfBirth = &dob
		}
		user.Debtor = profile
	case entity.KindCreditor:
		if c == nil {
			return nil
		}
		user.Creditor = &entity.CreditorProfile{
			ContactPerson:   c.ContactPerson,
			Address:         c.Address,
			Website:         c.Website,
			Verified:        c.Verified,
			CreditRating:    c.CreditRating,
			YearsInBusiness: c.YearsInBusiness,
			BusinessLicense: c.BusinessLicense,
		}
	case entity.KindAssociation:
		if a == nil {
			return nil
		}
		user.Association = &entity.AssociationProfile{
			AreaOfFocus:        a.AreaOfFocus,
			TaxID:              a.TaxID,
			RegistrationNumber: a.RegistrationNumber,
		}
	}
	return nil
}
