package otp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"cardlink-backend/internal/domain"
	"cardlink-backend/pkg/cache"
	"cardlink-backend/pkg/xerrors"
)

// memStore is an in-memory cache.Store for tests.
type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) key(ns, k string) string { return ns + ":" + k }

func (m *memStore) Set(ctx context.Context, ns, k string, v interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch val := v.(type) {
	case string:
		m.data[m.key(ns, k)] = val
	case []byte:
		m.data[m.key(ns, k)] = string(val)
	default:
		m.data[m.key(ns, k)] = fmt.Sprintf("%v", val)
	}
	return nil
}

func (m *memStore) Get(ctx context.Context, ns, k string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[m.key(ns, k)]
	if !ok {
		return "", cache.ErrMiss
	}
	return v, nil
}

func (m *memStore) Delete(ctx context.Context, ns, k string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, m.key(ns, k))
	return nil
}

func (m *memStore) GetTTL(ctx context.Context, ns, k string) (time.Duration, error) {
	return 0, nil
}

func (m *memStore) IncrWithExpire(ctx context.Context, ns, k string, window time.Duration) (int64, error) {
	return 1, nil
}

func stagedEntry(code string) *domain.PendingSignup {
	name := "Test User"
	return &domain.PendingSignup{
		Name:         &name,
		MobileNumber: "+14155550100",
		CountryCode:  "+1",
		OTPCode:      code,
	}
}

func TestStageAndConsume(t *testing.T) {
	ctx := context.Background()
	s := NewStagingStore(newMemStore())

	if err := s.Stage(ctx, stagedEntry("1234")); err != nil {
		t.Fatalf("Stage: %v", err)
	}

	pending, err := s.Consume(ctx, "+14155550100", "1234")
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if pending.MobileNumber != "+14155550100" {
		t.Errorf("mobile number = %q, want +14155550100", pending.MobileNumber)
	}

	// Entry is single-use.
	if _, err := s.Consume(ctx, "+14155550100", "1234"); !errors.Is(err, xerrors.ErrSignupNotStaged) {
		t.Errorf("second Consume err = %v, want ErrSignupNotStaged", err)
	}
}

func TestConsumeNeverStaged(t *testing.T) {
	s := NewStagingStore(newMemStore())

	_, err := s.Consume(context.Background(), "+14155550100", "1234")
	if !errors.Is(err, xerrors.ErrSignupNotStaged) {
		t.Errorf("err = %v, want ErrSignupNotStaged", err)
	}
}

func TestConsumeWrongCodeIsRetriable(t *testing.T) {
	ctx := context.Background()
	s := NewStagingStore(newMemStore())

	if err := s.Stage(ctx, stagedEntry("1234")); err != nil {
		t.Fatalf("Stage: %v", err)
	}

	if _, err := s.Consume(ctx, "+14155550100", "9999"); !errors.Is(err, xerrors.ErrInvalidOTP) {
		t.Fatalf("err = %v, want ErrInvalidOTP", err)
	}

	// A mismatch does not burn the entry.
	if _, err := s.Consume(ctx, "+14155550100", "1234"); err != nil {
		t.Errorf("Consume after mismatch: %v", err)
	}
}

func TestConsumeExpired(t *testing.T) {
	ctx := context.Background()
	s := NewStagingStore(newMemStore())

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	if err := s.Stage(ctx, stagedEntry("1234")); err != nil {
		t.Fatalf("Stage: %v", err)
	}

	s.now = func() time.Time { return base.Add(301 * time.Second) }
	if _, err := s.Consume(ctx, "+14155550100", "1234"); !errors.Is(err, xerrors.ErrOTPExpired) {
		t.Fatalf("err = %v, want ErrOTPExpired", err)
	}

	// Expiry consumes the entry, so the same code cannot be retried.
	if _, err := s.Consume(ctx, "+14155550100", "1234"); !errors.Is(err, xerrors.ErrSignupNotStaged) {
		t.Errorf("retry after expiry err = %v, want ErrSignupNotStaged", err)
	}
}

func TestConsumeAtWindowEdge(t *testing.T) {
	ctx := context.Background()
	s := NewStagingStore(newMemStore())

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	if err := s.Stage(ctx, stagedEntry("1234")); err != nil {
		t.Fatalf("Stage: %v", err)
	}

	s.now = func() time.Time { return base.Add(300 * time.Second) }
	if _, err := s.Consume(ctx, "+14155550100", "1234"); err != nil {
		t.Errorf("Consume at exactly 300s: %v", err)
	}
}

func TestRestageSupersedes(t *testing.T) {
	ctx := context.Background()
	s := NewStagingStore(newMemStore())

	if err := s.Stage(ctx, stagedEntry("1111")); err != nil {
		t.Fatalf("first Stage: %v", err)
	}
	if err := s.Stage(ctx, stagedEntry("2222")); err != nil {
		t.Fatalf("second Stage: %v", err)
	}

	// The first code is dead.
	if _, err := s.Consume(ctx, "+14155550100", "1111"); !errors.Is(err, xerrors.ErrInvalidOTP) {
		t.Errorf("old code err = %v, want ErrInvalidOTP", err)
	}
	if _, err := s.Consume(ctx, "+14155550100", "2222"); err != nil {
		t.Errorf("new code Consume: %v", err)
	}
}
