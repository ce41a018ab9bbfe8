package usecase

import (
	"context"
	"strconv"

	"cardlink-backend/internal/domain"
	"cardlink-backend/internal/validate"

	"go.uber.org/zap"
)

type CategoryChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type ViewRecorder interface {
	RecordView(ctx context.Context, viewerID, ownerID string) (bool, error)
}

type ProfileUsecase struct {
	users      UserStore
	categories CategoryChecker
	views      ViewRecorder
	logger     *zap.Logger
}

func NewProfileUsecase(users UserStore, categories CategoryChecker, views ViewRecorder, logger *zap.Logger) *ProfileUsecase {
	return &ProfileUsecase{users: users, categories: categories, views: views, logger: logger}
}

func (uc *ProfileUsecase) Get(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

// Update applies a partial profile update after role and reference checks.
func (uc *ProfileUsecase) Update(ctx context.Context, userID string, upd *domain.ProfileUpdate) (*domain.User, validate.Errors, error) {
	if errs := upd.Validate(); !errs.Empty() {
		return nil, errs, nil
	}

	if upd.CategoryID != nil {
		ok, err := uc.categories.Exists(ctx, *upd.CategoryID)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			msg := "Category with ID " + strconv.FormatInt(*upd.CategoryID, 10) + " does not exist."
			return nil, validate.Errors{validate.NewFieldError("category_id", msg)}, nil
		}
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	upd.Apply(user)
	if err := uc.users.UpdateProfile(ctx, user); err != nil {
		return nil, nil, err
	}
	return user, nil, nil
}

// View fetches a profile by ID and records the view when the request is
// authenticated and not a self-view. View-tracking failures never fail the
// fetch.
func (uc *ProfileUsecase) View(ctx context.Context, targetID, viewerID string) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if viewerID != "" && viewerID != targetID {
		created, err := uc.views.RecordView(ctx, viewerID, targetID)
		if err != nil {
			uc.logger.Warn("profile view not recorded",
				zap.String("viewer_id", viewerID),
				zap.String("owner_id", targetID),
				zap.Error(err))
		} else if created {
			user.ProfileViews++
		}
	}
	return user, nil
}

func (uc *ProfileUsecase) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return uc.users.List(ctx)
}
