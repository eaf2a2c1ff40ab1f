package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Además de la fila de users escribe la fila de perfil del kind y la
// relación user_roles; por eso Create/Update deben correr dentro del TxRunner
// cuando importa la atomicidad.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `user_id, username, password_hash, email, first_name, last_name,
	phone_number, profile_picture_url, status, kind, registration_date, created_at, updated_at, last_login`

// Create persiste un nuevo usuario con su perfil y sus roles. El unique
// constraint es la fuente de verdad para username/email: la violación se
// traduce al error de conflicto correspondiente.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (username, password_hash, email, first_name, last_name,
			phone_number, profile_picture_url, status, kind, registration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING user_id`
	err := r.q.QueryRow(context.Background(), query,
		user.Username, user.PasswordHash, user.Email, user.FirstName, user.LastName,
		nullIfEmpty(user.PhoneNumber), nullIfEmpty(user.ProfilePictureURL),
		user.Status, user.Kind, user.RegistrationDate, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		switch {
		case isUniqueViolation(err, "users_username_key"):
			return domain.ErrUsernameAlreadyExists
		case isUniqueViolation(err, "users_email_key"):
			return domain.ErrEmailAlreadyExists
		case isUniqueViolation(err, ""):
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}

	if err := r.upsertProfile(user); err != nil {
		return err
	}
	for _, role := range user.Roles {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`, user.ID, role.ID)
		if err != nil {
			return fmt.Errorf("insert user role: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un usuario por ID con roles y perfil cargados.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE user_id = $1`, id)
}

// GetByUsername obtiene un usuario por username (para login).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	user, err := scanUser(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := r.loadRoles(user); err != nil {
		return nil, err
	}
	if err := r.loadProfile(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ExistsByUsername indica si ya hay un usuario con ese username.
func (r *UserRepo) ExistsByUsername(username string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by username: %w", err)
	}
	return exists, nil
}

// ExistsByEmail indica si ya hay un usuario con ese email.
func (r *UserRepo) ExistsByEmail(email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}
	return exists, nil
}

// Update sobrescribe la fila de users y hace upsert del perfil del kind.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET username = $2, password_hash = $3, email = $4, first_name = $5,
			last_name = $6, phone_number = $7, profile_picture_url = $8, status = $9, updated_at = $10
		WHERE user_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.Email, user.FirstName, user.LastName,
		nullIfEmpty(user.PhoneNumber), nullIfEmpty(user.ProfilePictureURL), user.Status, user.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err, "users_username_key"):
			return domain.ErrUsernameAlreadyExists
		case isUniqueViolation(err, "users_email_key"):
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return r.upsertProfile(user)
}

// UpdateLastLogin sella el último login.
func (r *UserRepo) UpdateLastLogin(id int64, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET last_login = $2 WHERE user_id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

// List devuelve usuarios paginados (roles y perfiles cargados).
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY user_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, user := range list {
		if err := r.loadRoles(user); err != nil {
			return nil, err
		}
		if err := r.loadProfile(user); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Delete elimina un usuario. Perfiles, user_roles y registros periféricos
// caen en cascada; las deudas dependientes restringen (FK → conflicto).
func (r *UserRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var phone, picture *string
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.FirstName, &u.LastName,
		&phone, &picture, &u.Status, &u.Kind, &u.RegistrationDate, &u.CreatedAt, &u.UpdatedAt, &u.LastLogin,
	)
	if err != nil {
		return nil, err
	}
	u.PhoneNumber = orEmpty(phone)
	u.ProfilePictureURL = orEmpty(picture)
	return &u, nil
}

func (r *UserRepo) loadRoles(user *entity.User) error {
	query := `
		SELECT r.role_id, r.name FROM roles r
		JOIN user_roles ur ON ur.role_id = r.role_id
		WHERE ur.user_id = $1 ORDER BY r.role_id`
	rows, err := r.q.Query(context.Background(), query, user.ID)
	if err != nil {
		return fmt.Errorf("load roles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return fmt.Errorf("scan role: %w", err)
		}
		user.Roles = append(user.Roles, role)
	}
	return rows.Err()
}

func (r *UserRepo) loadProfile(user *entity.User) error {
	switch user.Kind {
	case entity.KindDebtor:
		return r.loadDebtorProfile(user)
	case entity.KindCreditor:
		return r.loadCreditorProfile(user)
	case entity.KindAssociation:
		return r.loadAssociationProfile(user)
	}
	return nil
}

func (r *UserRepo) loadDebtorProfile(user *entity.User) error {
	query := `
		SELECT address, date_of_birth, income_level, employment_status, debt_reason,
			marital_status, dependents_number, housing_status, gender, preferred_language, profile_verified
		FROM debtor_profiles WHERE user_id = $1`
	var p entity.DebtorProfile
	var address, income, employment, reason, marital, housing, gender, language *string
	err := r.q.QueryRow(context.Background(), query, user.ID).Scan(
		&address, &p.DateOfBirth, &income, &employment, &reason,
		&marital, &p.DependentsNumber, &housing, &gender, &language, &p.ProfileVerified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("load debtor profile: %w", err)
	}
	p.Address = orEmpty(address)
	p.IncomeLevel = orEmpty(income)
	p.EmploymentStatus = orEmpty(employment)
	p.DebtReason = orEmpty(reason)
	p.MaritalStatus = orEmpty(marital)
	p.HousingStatus = orEmpty(housing)
	p.Gender = orEmpty(gender)
	p.PreferredLanguage = orEmpty(language)
	user.Debtor = &p
	return nil
}

func (r *UserRepo) loadCreditorProfile(user *entity.User) error {
	query := `
		SELECT contact_person, address, website, verified, credit_rating, years_in_business, business_license
		FROM creditor_profiles WHERE user_id = $1`
	var p entity.CreditorProfile
	var contact, address, website, rating, license *string
	err := r.q.QueryRow(context.Background(), query, user.ID).Scan(
		&contact, &address, &website, &p.Verified, &rating, &p.YearsInBusiness, &license,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("load creditor profile: %w", err)
	}
	p.ContactPerson = orEmpty(contact)
	p.Address = orEmpty(address)
	p.Website = orEmpty(website)
	p.CreditRating = orEmpty(rating)
	p.BusinessLicense = orEmpty(license)
	user.Creditor = &p
	return nil
}

func (r *UserRepo) loadAssociationProfile(user *entity.User) error {
	query := `
		SELECT area_of_focus, tax_id, registration_number
		FROM association_profiles WHERE user_id = $1`
	var p entity.AssociationProfile
	var area, taxID, regNumber *string
	err := r.q.QueryRow(context.Background(), query, user.ID).Scan(&area, &taxID, &regNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("load association profile: %w", err)
	}
	p.AreaOfFocus = orEmpty(area)
	p.TaxID = orEmpty(taxID)
	p.RegistrationNumber = orEmpty(regNumber)
	user.Association = &p
	return nil
}

func (r *UserRepo) upsertProfile(user *entity.User) error {
	ctx := context.Background()
	switch {
	case user.Kind == entity.KindDebtor && user.Debtor != nil:
		p := user.Debtor
		_, err := r.q.Exec(ctx, `
			INSERT INTO debtor_profiles (user_id, address, date_of_birth, income_level, employment_status,
				debt_reason, marital_status, dependents_number, housing_status, gender, preferred_language, profile_verified)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (user_id) DO UPDATE SET
				address = EXCLUDED.address, date_of_birth = EXCLUDED.date_of_birth,
				income_level = EXCLUDED.income_level, employment_status = EXCLUDED.employment_status,
				debt_reason = EXCLUDED.debt_reason, marital_status = EXCLUDED.marital_status,
				dependents_number = EXCLUDED.dependents_number, housing_status = EXCLUDED.housing_status,
				gender = EXCLUDED.gender, preferred_language = EXCLUDED.preferred_language,
				profile_verified = EXCLUDED.profile_verified`,
			user.ID, nullIfEmpty(p.Address), p.DateOfBirth, nullIfEmpty(p.IncomeLevel), nullIfEmpty(p.EmploymentStatus),
			nullIfEmpty(p.DebtReason), nullIfEmpty(p.MaritalStatus), p.DependentsNumber, nullIfEmpty(p.HousingStatus),
			nullIfEmpty(p.Gender), nullIfEmpty(p.PreferredLanguage), p.ProfileVerified,
		)
		if err != nil {
			return fmt.Errorf("upsert debtor profile: %w", err)
		}
	case user.Kind == entity.KindCreditor && user.Creditor != nil:
		p := user.Creditor
		_, err := r.q.Exec(ctx, `
			INSERT INTO creditor_profiles (user_id, contact_person, address, website, verified,
				credit_rating, years_in_business, business_license)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (user_id) DO UPDATE SET
				contact_person = EXCLUDED.contact_person, address = EXCLUDED.address,
				website = EXCLUDED.website, verified = EXCLUDED.verified,
				credit_rating = EXCLUDED.credit_rating, years_in_business = EXCLUDED.years_in_business,
				business_license = EXCLUDED.business_license`,
			user.ID, nullIfEmpty(p.ContactPerson), nullIfEmpty(p.Address), nullIfEmpty(p.Website), p.Verified,
			nullIfEmpty(p.CreditRating), p.YearsInBusiness, nullIfEmpty(p.BusinessLicense),
		)
		if err != nil {
			return fmt.Errorf("upsert creditor profile: %w", err)
		}
	case user.Kind == entity.KindAssociation && user.Association != nil:
		p := user.Association
		_, err := r.q.Exec(ctx, `
			INSERT INTO association_profiles (user_id, area_of_focus, tax_id, registration_number)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id) DO UPDATE SET
				area_of_focus = EXCLUDED.area_of_focus, tax_id = EXCLUDED.tax_id,
				registration_number = EXCLUDED.registration_number`,
			user.ID, nullIfEmpty(p.AreaOfFocus), nullIfEmpty(p.TaxID), nullIfEmpty(p.RegistrationNumber),
		)
		if err != nil {
			return fmt.Errorf("upsert association profile: %w", err)
		}
	}
	return nil
}
