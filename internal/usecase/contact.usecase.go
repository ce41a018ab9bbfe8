package usecase

import (
	"context"
	"errors"

	"cardlink-backend/internal/domain"
	"cardlink-backend/pkg/xerrors"
)

type ContactStore interface {
	Toggle(ctx context.Context, userID, targetID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.SavedContact, error)
}

type ViewLister interface {
	ListRecentlyViewed(ctx context.Context, viewerID string) ([]*domain.ProfileViewRecord, error)
}

type ContactUsecase struct {
	users    UserStore
	contacts ContactStore
	views    ViewLister
}

func NewContactUsecase(users UserStore, contacts ContactStore, views ViewLister) *ContactUsecase {
	return &ContactUsecase{users: users, contacts: contacts, views: views}
}

// ToggleSaved saves the target if unsaved and unsaves it otherwise,
// reporting which happened. Self-saves are rejected before any lookup.
func (uc *ContactUsecase) ToggleSaved(ctx context.Context, userID, targetID string) (bool, error) {
	if userID == targetID {
		return false, xerrors.ErrSelfContact
	}
	if _, err := uc.users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			return false, xerrors.ErrTargetOrphan
		}
		return false, err
	}
	return uc.contacts.Toggle(ctx, userID, targetID)
}

func (uc *ContactUsecase) ListSaved(ctx context.Context, userID string) ([]*domain.SavedContact, error) {
	return uc.contacts.ListByUser(ctx, userID)
}

func (uc *ContactUsecase) RecentlyViewed(ctx context.Context, viewerID string) ([]*domain.ProfileViewRecord, error) {
	return uc.views.ListRecentlyViewed(ctx, viewerID)
}
