package repository

import (
	"context"
	"errors"
	"time"

	"cardlink-backend/internal/domain"
	"cardlink-backend/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	id, name, email, mobile_number, country_code, is_whatsapp, address,
	role, profile_picture, category_id, enable_designation_and_company_name,
	designation, about, business_name, company_name, logo,
	profile_views, otp_code, otp_created_at,
	is_active, is_staff, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.MobileNumber, &u.CountryCode, &u.IsWhatsApp, &u.Address,
		&u.Role, &u.ProfilePicture, &u.CategoryID, &u.EnableDesignationAndCompany,
		&u.Designation, &u.About, &u.BusinessName, &u.CompanyName, &u.Logo,
		&u.ProfileViews, &u.OTPCode, &u.OTPCreatedAt,
		&u.IsActive, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func mapUserConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return xerrors.ErrEmailAlreadyInUse
		case "users_mobile_number_key":
			return xerrors.ErrPhoneAlreadyInUse
		}
	}
	return err
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	const q = `
		INSERT INTO users (
			id, name, email, mobile_number, country_code, is_whatsapp, address,
			role, is_active, is_staff, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW(),NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, q,
		u.ID, u.Name, u.Email, u.MobileNumber, u.CountryCode, u.IsWhatsApp, u.Address,
		u.Role, u.IsActive, u.IsStaff,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return mapUserConstraint(err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT`+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrUserNotFound
	}
	return u, err
}

func (r *UserRepository) GetByPhone(ctx context.Context, mobileNumber string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT`+userColumns+` FROM users WHERE mobile_number = $1`, mobileNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrUserNotFound
	}
	return u, err
}

func (r *UserRepository) ExistsByPhone(ctx context.Context, mobileNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE mobile_number = $1)`, mobileNumber,
	).Scan(&exists)
	return exists, err
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	return exists, err
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT`+userColumns+` FROM users WHERE is_active ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateProfile writes the allow-listed profile columns back. The caller
// has already applied the partial update onto u, so this is a fixed column
// list, not dynamic SQL.
func (r *UserRepository) UpdateProfile(ctx context.Context, u *domain.User) error {
	const q = `
		UPDATE users SET
			name = $2, address = $3, role = $4, profile_picture = $5,
			category_id = $6, enable_designation_and_company_name = $7,
			designation = $8, about = $9,
			business_name = $10, company_name = $11, logo = $12,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, q,
		u.ID, u.Name, u.Address, u.Role, u.ProfilePicture,
		u.CategoryID, u.EnableDesignationAndCompany,
		u.Designation, u.About,
		u.BusinessName, u.CompanyName, u.Logo,
	).Scan(&u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.ErrUserNotFound
	}
	return err
}

// SetLoginOTP overwrites any previous code and timestamp for the user.
func (r *UserRepository) SetLoginOTP(ctx context.Context, userID, code string, issuedAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET otp_code = $2, otp_created_at = $3, updated_at = NOW() WHERE id = $1`,
		userID, code, issuedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrUserNotFound
	}
	return nil
}

// ClearLoginOTP makes the stored code single-use.
func (r *UserRepository) ClearLoginOTP(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET otp_code = NULL, otp_created_at = NULL, updated_at = NOW() WHERE id = $1`,
		userID,
	)
	return err
}
