package xerrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func ParsePGErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code // e.g. 23505 for unique_violation
	}
	return "unknown"
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint error.
func IsUniqueViolation(err error) bool {
	return ParsePGErrorCode(err) == "23505"
}

// Generic
var (
	ErrNotFound = errors.New("not found")
)

// Registration / Login
var (
	ErrUserNotFound      = errors.New("user does not exist. Please sign up first")
	ErrPhoneAlreadyInUse = errors.New("mobile number already registered")
	ErrEmailAlreadyInUse = errors.New("email already registered")
)

// OTP / signup staging
var (
	ErrInvalidOTP      = errors.New("invalid or expired OTP")
	ErrOTPExpired      = errors.New("OTP expired")
	ErrSignupNotStaged = errors.New("OTP expired or not found")
)

// Contacts / views
var (
	ErrSelfContact  = errors.New("you cannot save yourself as a contact")
	ErrTargetOrphan = errors.New("user to save not found")
)

// Directory
var (
	ErrCategoryExists   = errors.New("a category with this name already exists")
	ErrCategoryNotFound = errors.New("category does not exist")
	ErrPlatformExists   = errors.New("a social media platform with this name already exists")
)

// Inbox
var (
	ErrAlreadyRead = errors.New("already marked as read")
)
