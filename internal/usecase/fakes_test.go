package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"cardlink-backend/internal/domain"
	"cardlink-backend/pkg/cache"
	"cardlink-backend/pkg/xerrors"

	"go.uber.org/zap"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.MobileNumber == u.MobileNumber {
			return xerrors.ErrPhoneAlreadyInUse
		}
		if u.Email != nil && existing.Email != nil && *existing.Email == *u.Email {
			return xerrors.ErrEmailAlreadyInUse
		}
	}
	cp := *u
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.users[u.ID] = &cp
	u.CreatedAt = cp.CreatedAt
	u.UpdatedAt = cp.UpdatedAt
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByPhone(ctx context.Context, mobileNumber string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.MobileNumber == mobileNumber {
			cp := *u
			return &cp, nil
		}
	}
	return nil, xerrors.ErrUserNotFound
}

func (f *fakeUserStore) ExistsByPhone(ctx context.Context, mobileNumber string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.MobileNumber == mobileNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email != nil && *u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) List(ctx context.Context) ([]*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; !ok {
		return xerrors.ErrUserNotFound
	}
	cp := *u
	cp.UpdatedAt = time.Now()
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) SetLoginOTP(ctx context.Context, userID, code string, issuedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return xerrors.ErrUserNotFound
	}
	u.OTPCode = &code
	u.OTPCreatedAt = &issuedAt
	return nil
}

func (f *fakeUserStore) ClearLoginOTP(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[userID]; ok {
		u.OTPCode = nil
		u.OTPCreatedAt = nil
	}
	return nil
}

// memStore is an in-memory cache.Store backing the staging store in tests.
type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Set(ctx context.Context, ns, k string, v interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch val := v.(type) {
	case string:
		m.data[ns+":"+k] = val
	case []byte:
		m.data[ns+":"+k] = string(val)
	default:
		m.data[ns+":"+k] = fmt.Sprintf("%v", val)
	}
	return nil
}

func (m *memStore) Get(ctx context.Context, ns, k string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[ns+":"+k]
	if !ok {
		return "", cache.ErrMiss
	}
	return v, nil
}

func (m *memStore) Delete(ctx context.Context, ns, k string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, ns+":"+k)
	return nil
}

func (m *memStore) GetTTL(ctx context.Context, ns, k string) (time.Duration, error) {
	return 0, nil
}

func (m *memStore) IncrWithExpire(ctx context.Context, ns, k string, window time.Duration) (int64, error) {
	return 1, nil
}

// fakeSigner returns deterministic tokens.
type fakeSigner struct{}

func (fakeSigner) Sign(userID string, isStaff bool) (string, error) {
	return "token-" + userID, nil
}

// seqIDs mints sequential IDs.
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return strconv.Itoa(s.n)
}

// fakeViews records view calls and tracks distinct pairs.
type fakeViews struct {
	mu     sync.Mutex
	pairs  map[string]int
	calls  int
	recent []*domain.ProfileViewRecord
}

func newFakeViews() *fakeViews {
	return &fakeViews{pairs: make(map[string]int)}
}

func (f *fakeViews) RecordView(ctx context.Context, viewerID, ownerID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	key := viewerID + "->" + ownerID
	f.pairs[key]++
	if f.pairs[key] == 1 {
		f.recent = append([]*domain.ProfileViewRecord{{
			ID:       int64(f.calls),
			ViewerID: viewerID,
			OwnerID:  ownerID,
			ViewedAt: time.Now(),
		}}, f.recent...)
		return true, nil
	}
	return false, nil
}

func (f *fakeViews) ListRecentlyViewed(ctx context.Context, viewerID string) ([]*domain.ProfileViewRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.ProfileViewRecord
	for _, rec := range f.recent {
		if rec.ViewerID == viewerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// fakeContacts is an in-memory ContactStore.
type fakeContacts struct {
	mu    sync.Mutex
	saved map[string]bool
}

func newFakeContacts() *fakeContacts {
	return &fakeContacts{saved: make(map[string]bool)}
}

func (f *fakeContacts) Toggle(ctx context.Context, userID, targetID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := userID + "->" + targetID
	if f.saved[key] {
		delete(f.saved, key)
		return false, nil
	}
	f.saved[key] = true
	return true, nil
}

func (f *fakeContacts) ListByUser(ctx context.Context, userID string) ([]*domain.SavedContact, error) {
	return nil, nil
}

// fakeCategories knows a fixed set of IDs.
type fakeCategories struct {
	ids map[int64]bool
}

func (f *fakeCategories) Exists(ctx context.Context, id int64) (bool, error) {
	return f.ids[id], nil
}

func testLogger() *zap.Logger { return zap.NewNop() }

func strptr(s string) *string { return &s }
