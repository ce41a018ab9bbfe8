package usecase

import (
	"context"
	"errors"
	"testing"

	"cardlink-backend/internal/domain"
	"cardlink-backend/pkg/xerrors"
)

func seedUser(users *fakeUserStore, id string) *domain.User {
	u := &domain.User{
		ID:           id,
		MobileNumber: "+1415555" + id + "000",
		CountryCode:  "+1",
		Role:         domain.RoleIndividual,
		IsActive:     true,
	}
	users.users[id] = u
	return u
}

func TestUpdateBusinessRoleValidation(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore()
	seedUser(users, "1")
	uc := NewProfileUsecase(users, &fakeCategories{ids: map[int64]bool{}}, newFakeViews(), testLogger())

	_, verrs, err := uc.Update(ctx, "1", &domain.ProfileUpdate{Role: strptr(domain.RoleBusiness)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if verrs.Empty() {
		t.Fatal("business role without business_name must fail validation")
	}
	if verrs[0].Field != "business_name" {
		t.Errorf("first error field = %q, want business_name", verrs[0].Field)
	}

	// The same payload with role individual passes that check.
	_, verrs, err = uc.Update(ctx, "1", &domain.ProfileUpdate{Role: strptr(domain.RoleIndividual)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !verrs.Empty() {
		t.Errorf("individual role should not require business fields, got %v", verrs)
	}
}

func TestUpdateRoleTransitionClearsFields(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore()
	u := seedUser(users, "1")
	u.Designation = strptr("Engineer")
	u.About = strptr("hello")
	uc := NewProfileUsecase(users, &fakeCategories{ids: map[int64]bool{}}, newFakeViews(), testLogger())

	updated, verrs, err := uc.Update(ctx, "1", &domain.ProfileUpdate{
		Role:         strptr(domain.RoleBusiness),
		BusinessName: strptr("Acme Studio"),
		Logo:         strptr("logo.png"),
	})
	if err != nil || !verrs.Empty() {
		t.Fatalf("Update: err=%v verrs=%v", err, verrs)
	}
	if updated.Designation != nil || updated.About != nil {
		t.Error("transition to business must clear designation and about")
	}

	back, verrs, err := uc.Update(ctx, "1", &domain.ProfileUpdate{Role: strptr(domain.RoleIndividual)})
	if err != nil || !verrs.Empty() {
		t.Fatalf("Update back: err=%v verrs=%v", err, verrs)
	}
	if back.BusinessName != nil || back.Logo != nil {
		t.Error("transition to individual must clear business_name and logo")
	}
}

func TestUpdateUnknownCategory(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore()
	seedUser(users, "1")
	uc := NewProfileUsecase(users, &fakeCategories{ids: map[int64]bool{5: true}}, newFakeViews(), testLogger())

	cat := int64(9)
	_, verrs, err := uc.Update(ctx, "1", &domain.ProfileUpdate{CategoryID: &cat})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if verrs.Empty() || verrs[0].Field != "category_id" {
		t.Errorf("expected category_id validation error, got %v", verrs)
	}

	cat = 5
	_, verrs, err = uc.Update(ctx, "1", &domain.ProfileUpdate{CategoryID: &cat})
	if err != nil || !verrs.Empty() {
		t.Errorf("known category: err=%v verrs=%v", err, verrs)
	}
}

func TestViewRecordsOnlyForOtherUsers(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore()
	seedUser(users, "1")
	seedUser(users, "2")
	views := newFakeViews()
	uc := NewProfileUsecase(users, &fakeCategories{ids: map[int64]bool{}}, views, testLogger())

	// Unauthenticated fetch: no record.
	if _, err := uc.View(ctx, "1", ""); err != nil {
		t.Fatalf("View: %v", err)
	}
	// Self view: no record.
	if _, err := uc.View(ctx, "1", "1"); err != nil {
		t.Fatalf("View: %v", err)
	}
	if views.calls != 0 {
		t.Fatalf("unauthenticated/self views recorded %d times, want 0", views.calls)
	}

	// Authenticated non-owner fetch records.
	u, err := uc.View(ctx, "1", "2")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if views.calls != 1 {
		t.Errorf("calls = %d, want 1", views.calls)
	}
	if u.ProfileViews != 1 {
		t.Errorf("profile_views = %d, want 1 after first view", u.ProfileViews)
	}
}

func TestViewUnknownUser(t *testing.T) {
	ctx := context.Background()
	uc := NewProfileUsecase(newFakeUserStore(), &fakeCategories{ids: map[int64]bool{}}, newFakeViews(), testLogger())

	if _, err := uc.View(ctx, "404", "2"); !errors.Is(err, xerrors.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
