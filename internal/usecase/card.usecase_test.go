package usecase

import (
	"context"
	"sync"
	"testing"

	"cardlink-backend/internal/domain"
	"cardlink-backend/internal/repository"
	"cardlink-backend/pkg/xerrors"
)

// fakeCategoryStore is an in-memory CategoryStore.
type fakeCategoryStore struct {
	mu   sync.Mutex
	next int64
	cats map[int64]*domain.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{cats: make(map[int64]*domain.Category)}
}

func (f *fakeCategoryStore) List(ctx context.Context, filter repository.CategoryFilter) ([]*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Category
	for _, c := range f.cats {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cats[id]
	if !ok {
		return nil, xerrors.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategoryStore) Create(ctx context.Context, c *domain.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.cats {
		if existing.CategoryName == c.CategoryName {
			return xerrors.ErrCategoryExists
		}
	}
	f.next++
	c.ID = f.next
	f.cats[c.ID] = c
	return nil
}

func TestCategoryCreateTitleCases(t *testing.T) {
	ctx := context.Background()
	uc := NewCategoryUsecase(newFakeCategoryStore())

	cat, verrs, err := uc.Create(ctx, "icon.png", "wedding photographer", "Professional")
	if err != nil || !verrs.Empty() {
		t.Fatalf("Create: err=%v verrs=%v", err, verrs)
	}
	if cat.CategoryName != "Wedding Photographer" {
		t.Errorf("category_name = %q, want title case", cat.CategoryName)
	}
	if cat.Type != domain.CategoryTypeProfessional {
		t.Errorf("type = %q, want lowercased professional", cat.Type)
	}
}

func TestCategoryCreateRejectsShortName(t *testing.T) {
	ctx := context.Background()
	uc := NewCategoryUsecase(newFakeCategoryStore())

	_, verrs, err := uc.Create(ctx, "", "x", "business")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if verrs.Empty() || verrs[0].Field != "category_name" {
		t.Errorf("expected category_name error, got %v", verrs)
	}
}

func TestCategoryCreateRejectsUnknownType(t *testing.T) {
	ctx := context.Background()
	uc := NewCategoryUsecase(newFakeCategoryStore())

	_, verrs, err := uc.Create(ctx, "", "Retail", "hobby")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if verrs.Empty() || verrs[0].Field != "type" {
		t.Errorf("expected type error, got %v", verrs)
	}
}

func TestCategoryCreateBusinessPersonalRule(t *testing.T) {
	ctx := context.Background()
	uc := NewCategoryUsecase(newFakeCategoryStore())

	_, verrs, err := uc.Create(ctx, "", "Personal Trainer", "business")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if verrs.Empty() {
		t.Fatal("business category containing 'personal' must be rejected")
	}

	// Same name is fine as a professional category.
	_, verrs, err = uc.Create(ctx, "", "Personal Trainer", "professional")
	if err != nil || !verrs.Empty() {
		t.Errorf("professional category: err=%v verrs=%v", err, verrs)
	}
}

func TestCategoryCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	uc := NewCategoryUsecase(newFakeCategoryStore())

	if _, verrs, err := uc.Create(ctx, "", "Retail", "business"); err != nil || !verrs.Empty() {
		t.Fatalf("first Create: err=%v verrs=%v", err, verrs)
	}
	_, _, err := uc.Create(ctx, "", "retail", "business")
	if err != xerrors.ErrCategoryExists {
		t.Errorf("err = %v, want ErrCategoryExists", err)
	}
}
