package usecase

import (
	"context"
	"strings"

	"cardlink-backend/internal/domain"
	"cardlink-backend/internal/repository"
	"cardlink-backend/internal/validate"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

type CategoryStore interface {
	List(ctx context.Context, filter repository.CategoryFilter) ([]*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
}

type CategoryUsecase struct {
	categories CategoryStore
}

func NewCategoryUsecase(categories CategoryStore) *CategoryUsecase {
	return &CategoryUsecase{categories: categories}
}

func (uc *CategoryUsecase) List(ctx context.Context, filter repository.CategoryFilter) ([]*domain.Category, error) {
	return uc.categories.List(ctx, filter)
}

func (uc *CategoryUsecase) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return uc.categories.GetByID(ctx, id)
}

// Create validates and stores a category. Names are trimmed and
// title-cased; the type is lowercased. Business categories may not carry
// "personal" in the name.
func (uc *CategoryUsecase) Create(ctx context.Context, icon, name, categoryType string) (*domain.Category, validate.Errors, error) {
	var errs validate.Errors

	name = strings.TrimSpace(name)
	if len(name) < 2 {
		errs = append(errs, validate.NewFieldError("category_name", "Category name must be at least 2 characters long."))
	}

	categoryType = strings.ToLower(categoryType)
	switch categoryType {
	case domain.CategoryTypeProfessional, domain.CategoryTypeBusiness:
	default:
		errs = append(errs, validate.NewFieldError("type", "Type must be one of: professional, business"))
	}

	if categoryType == domain.CategoryTypeBusiness && strings.Contains(strings.ToLower(name), "personal") {
		errs = append(errs, validate.NewFieldError("category_name", "Business categories cannot contain 'personal' in the name."))
	}

	if !errs.Empty() {
		return nil, errs, nil
	}

	c := &domain.Category{
		Icon:         icon,
		CategoryName: titleCaser.String(name),
		Type:         categoryType,
	}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, nil, err
	}
	return c, nil, nil
}

type ServiceStore interface {
	Create(ctx context.Context, s *domain.Service) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Service, error)
	Delete(ctx context.Context, userID string, serviceID int64) error
}

type ServiceUsecase struct {
	services ServiceStore
}

func NewServiceUsecase(services ServiceStore) *ServiceUsecase {
	return &ServiceUsecase{services: services}
}

func (uc *ServiceUsecase) List(ctx context.Context, userID string) ([]*domain.Service, error) {
	return uc.services.ListByUser(ctx, userID)
}

func (uc *ServiceUsecase) Create(ctx context.Context, userID, name string, picture *string, description string) (*domain.Service, validate.Errors, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validate.Errors{validate.NewFieldError("name", "This field is required.")}, nil
	}
	s := &domain.Service{
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Picture:     picture,
		Description: description,
	}
	if err := uc.services.Create(ctx, s); err != nil {
		return nil, nil, err
	}
	return s, nil, nil
}

func (uc *ServiceUsecase) Delete(ctx context.Context, userID string, serviceID int64) error {
	return uc.services.Delete(ctx, userID, serviceID)
}

type SocialStore interface {
	CreatePlatform(ctx context.Context, p *domain.SocialMediaPlatform) error
	ListPlatforms(ctx context.Context) ([]*domain.SocialMediaPlatform, error)
	PlatformExists(ctx context.Context, id int64) (bool, error)
	CreateLink(ctx context.Context, l *domain.SocialMediaLink) error
	ListLinksByUser(ctx context.Context, userID string) ([]*domain.SocialMediaLink, error)
	DeleteLink(ctx context.Context, userID string, linkID int64) error
}

type SocialUsecase struct {
	social SocialStore
}

func NewSocialUsecase(social SocialStore) *SocialUsecase {
	return &SocialUsecase{social: social}
}

func (uc *SocialUsecase) CreatePlatform(ctx context.Context, name, icon, dataType string) (*domain.SocialMediaPlatform, validate.Errors, error) {
	var errs validate.Errors

	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, validate.NewFieldError("name", "This field is required."))
	}
	switch dataType {
	case domain.PlatformDataURL, domain.PlatformDataPhone:
	default:
		errs = append(errs, validate.NewFieldError("data_type", "Data type must be one of: url, phone"))
	}
	if !errs.Empty() {
		return nil, errs, nil
	}

	p := &domain.SocialMediaPlatform{Name: name, Icon: icon, DataType: dataType}
	if err := uc.social.CreatePlatform(ctx, p); err != nil {
		return nil, nil, err
	}
	return p, nil, nil
}

func (uc *SocialUsecase) ListPlatforms(ctx context.Context) ([]*domain.SocialMediaPlatform, error) {
	return uc.social.ListPlatforms(ctx)
}

func (uc *SocialUsecase) CreateLink(ctx context.Context, userID string, platformID int64, data string) (*domain.SocialMediaLink, validate.Errors, error) {
	var errs validate.Errors

	if strings.TrimSpace(data) == "" {
		errs = append(errs, validate.NewFieldError("data", "This field is required."))
	}
	ok, err := uc.social.PlatformExists(ctx, platformID)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		errs = append(errs, validate.NewFieldError("platform", "Social media platform does not exist."))
	}
	if !errs.Empty() {
		return nil, errs, nil
	}

	l := &domain.SocialMediaLink{UserID: userID, PlatformID: platformID, Data: strings.TrimSpace(data)}
	if err := uc.social.CreateLink(ctx, l); err != nil {
		return nil, nil, err
	}
	return l, nil, nil
}

func (uc *SocialUsecase) ListLinks(ctx context.Context, userID string) ([]*domain.SocialMediaLink, error) {
	return uc.social.ListLinksByUser(ctx, userID)
}

func (uc *SocialUsecase) DeleteLink(ctx context.Context, userID string, linkID int64) error {
	return uc.social.DeleteLink(ctx, userID, linkID)
}

type ThemeStore interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Theme, error)
	Update(ctx context.Context, t *domain.Theme) error
}

type ThemeUsecase struct {
	themes ThemeStore
}

func NewThemeUsecase(themes ThemeStore) *ThemeUsecase {
	return &ThemeUsecase{themes: themes}
}

func (uc *ThemeUsecase) Get(ctx context.Context, userID string) (*domain.Theme, error) {
	return uc.themes.GetOrCreate(ctx, userID)
}

// Update replaces the user's theme, falling back to the default colors
// when they are omitted so the row never loses its required values.
func (uc *ThemeUsecase) Update(ctx context.Context, userID string, backgroundImage *string, backgroundColor, fontColor string) (*domain.Theme, error) {
	if _, err := uc.themes.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	if backgroundColor == "" {
		backgroundColor = domain.DefaultBackgroundColor
	}
	if fontColor == "" {
		fontColor = domain.DefaultFontColor
	}

	t := &domain.Theme{
		UserID:          userID,
		BackgroundImage: backgroundImage,
		BackgroundColor: backgroundColor,
		FontColor:       fontColor,
	}
	if err := uc.themes.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
