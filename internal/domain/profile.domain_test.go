package domain

import "testing"

func strptr(s string) *string { return &s }

func TestValidateBusinessRequiresNameAndLogo(t *testing.T) {
	upd := &ProfileUpdate{Role: strptr(RoleBusiness)}

	errs := upd.Validate()
	if errs.Empty() {
		t.Fatal("expected validation errors for business role without business_name")
	}
	if errs[0].Field != "business_name" {
		t.Errorf("first error field = %q, want business_name", errs[0].Field)
	}

	upd.BusinessName = strptr("Acme Studio")
	errs = upd.Validate()
	if errs.Empty() {
		t.Fatal("expected validation error for missing logo")
	}
	if errs[0].Field != "logo" {
		t.Errorf("first error field = %q, want logo", errs[0].Field)
	}

	upd.Logo = strptr("logo.png")
	if errs := upd.Validate(); !errs.Empty() {
		t.Errorf("complete business payload should validate, got %v", errs)
	}
}

func TestValidateIndividualSkipsBusinessFields(t *testing.T) {
	upd := &ProfileUpdate{Role: strptr(RoleIndividual)}
	if errs := upd.Validate(); !errs.Empty() {
		t.Errorf("individual role needs no extra fields, got %v", errs)
	}
}

func TestValidateUnknownRole(t *testing.T) {
	upd := &ProfileUpdate{Role: strptr("enterprise")}
	errs := upd.Validate()
	if errs.Empty() {
		t.Fatal("expected error for unknown role")
	}
	if errs[0].Field != "role" {
		t.Errorf("error field = %q, want role", errs[0].Field)
	}
}

func TestApplyTransitionToBusinessClearsIndividualFields(t *testing.T) {
	u := &User{
		Role:        RoleIndividual,
		Designation: strptr("Engineer"),
		About:       strptr("hello"),
	}
	upd := &ProfileUpdate{
		Role:         strptr(RoleBusiness),
		BusinessName: strptr("Acme Studio"),
		Logo:         strptr("logo.png"),
	}

	upd.Apply(u)

	if u.Role != RoleBusiness {
		t.Errorf("role = %q, want business", u.Role)
	}
	if u.Designation != nil || u.About != nil {
		t.Error("designation and about should be cleared on transition to business")
	}
	if u.BusinessName == nil || *u.BusinessName != "Acme Studio" {
		t.Error("business_name not applied")
	}
}

func TestApplyTransitionToIndividualClearsBusinessFields(t *testing.T) {
	u := &User{
		Role:         RoleBusiness,
		BusinessName: strptr("Acme Studio"),
		CompanyName:  strptr("Acme Inc"),
		Logo:         strptr("logo.png"),
	}
	upd := &ProfileUpdate{Role: strptr(RoleIndividual)}

	upd.Apply(u)

	if u.BusinessName != nil || u.CompanyName != nil || u.Logo != nil {
		t.Error("business fields should be cleared on transition to individual")
	}
}

func TestApplySameRoleKeepsFields(t *testing.T) {
	u := &User{
		Role:        RoleIndividual,
		Designation: strptr("Engineer"),
	}
	upd := &ProfileUpdate{
		Role: strptr(RoleIndividual),
		Name: strptr("New Name"),
	}

	upd.Apply(u)

	if u.Designation == nil {
		t.Error("same-role update must not clear designation")
	}
	if u.Name == nil || *u.Name != "New Name" {
		t.Error("name not applied")
	}
}
