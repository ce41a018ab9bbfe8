package domain

import (
	"strings"

	"cardlink-backend/internal/validate"
)

// ProfileUpdate is the allow-listed partial update applied to a User.
// Nil pointer means "leave unchanged". Field names are fixed at compile
// time; there is no dynamic attribute assignment.
type ProfileUpdate struct {
	Name                        *string `json:"name"`
	Address                     *string `json:"address"`
	Role                        *string `json:"role"`
	ProfilePicture              *string `json:"profile_picture"`
	CategoryID                  *int64  `json:"category_id"`
	EnableDesignationAndCompany *bool   `json:"enable_designation_and_company_name"`
	Designation                 *string `json:"designation"`
	About                       *string `json:"about"`
	BusinessName                *string `json:"business_name"`
	CompanyName                 *string `json:"company_name"`
	Logo                        *string `json:"logo"`
}

func provided(s *string) bool { return s != nil && strings.TrimSpace(*s) != "" }

// Validate checks role-dependent requirements. The business role requires
// business_name and logo; the individual role has no extra requirements.
func (p *ProfileUpdate) Validate() validate.Errors {
	var errs validate.Errors

	if p.Role != nil {
		switch *p.Role {
		case RoleIndividual:
			// no extra required fields
		case RoleBusiness:
			if !provided(p.BusinessName) {
				errs = append(errs, validate.NewFieldError("business_name", "This field is required for business role."))
			}
			if !provided(p.Logo) {
				errs = append(errs, validate.NewFieldError("logo", "This field is required for business role."))
			}
		default:
			errs = append(errs, validate.NewFieldError("role", "Role must be one of: individual, business."))
		}
	}

	return errs
}

// Apply copies the provided fields onto the user. Switching role clears the
// fields that belong to the previous role's required set.
func (p *ProfileUpdate) Apply(u *User) {
	if p.Role != nil && *p.Role != u.Role {
		switch *p.Role {
		case RoleBusiness:
			u.Designation = nil
			u.About = nil
		case RoleIndividual:
			u.BusinessName = nil
			u.CompanyName = nil
			u.Logo = nil
		}
		u.Role = *p.Role
	}

	if p.Name != nil {
		u.Name = p.Name
	}
	if p.Address != nil {
		u.Address = p.Address
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = p.ProfilePicture
	}
	if p.CategoryID != nil {
		u.CategoryID = p.CategoryID
	}
	if p.EnableDesignationAndCompany != nil {
		u.EnableDesignationAndCompany = *p.EnableDesignationAndCompany
	}
	if p.Designation != nil {
		u.Designation = p.Designation
	}
	if p.About != nil {
		u.About = p.About
	}
	if p.BusinessName != nil {
		u.BusinessName = p.BusinessName
	}
	if p.CompanyName != nil {
		u.CompanyName = p.CompanyName
	}
	if p.Logo != nil {
		u.Logo = p.Logo
	}
}
