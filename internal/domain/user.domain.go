package domain

import (
	"time"

	"cardlink-backend/internal/phone"
)

const (
	RoleIndividual = "individual"
	RoleBusiness   = "business"
)

// User is the account entity. Phone numbers are stored in E.164 form with
// the derived country code alongside.
type User struct {
	ID           string  `json:"id"`
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	MobileNumber string  `json:"mobile_number"`
	CountryCode  string  `json:"country_code"`
	IsWhatsApp   bool    `json:"is_whatsapp"`
	Address      *string `json:"address"`

	Role                        string  `json:"role"`
	ProfilePicture              *string `json:"profile_picture"`
	CategoryID                  *int64  `json:"category_id"`
	EnableDesignationAndCompany bool    `json:"enable_designation_and_company_name"`
	Designation                 *string `json:"designation"`
	About                       *string `json:"about"`

	BusinessName *string `json:"business_name"`
	CompanyName  *string `json:"company_name"`
	Logo         *string `json:"logo"`

	ProfileViews int64 `json:"profile_views"`

	OTPCode      *string    `json:"-"`
	OTPCreatedAt *time.Time `json:"-"`

	IsActive  bool      `json:"is_active"`
	IsStaff   bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// NationalNumber is the client-facing local representation of the stored
// E.164 number.
func (u *User) NationalNumber() string {
	return phone.Display(u.MobileNumber, u.CountryCode)
}

// OTPValid checks the stored login OTP: exact match and issued within
// window. Missing code or timestamp fails closed.
func (u *User) OTPValid(code string, now time.Time, window time.Duration) bool {
	if u.OTPCode == nil || u.OTPCreatedAt == nil || code == "" {
		return false
	}
	if *u.OTPCode != code {
		return false
	}
	return now.Sub(*u.OTPCreatedAt) <= window
}

// PublicUser is the wire shape shared by profile, directory, and contact
// payloads.
type PublicUser struct {
	ID             string  `json:"id"`
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	MobileNumber   string  `json:"mobile_number"`
	NationalNumber string  `json:"national_number"`
	CountryCode    string  `json:"country_code"`
	IsWhatsApp     bool    `json:"is_whatsapp"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		MobileNumber:   u.MobileNumber,
		NationalNumber: u.NationalNumber(),
		CountryCode:    u.CountryCode,
		IsWhatsApp:     u.IsWhatsApp,
	}
}
