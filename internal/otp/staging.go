package otp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cardlink-backend/internal/domain"
	"cardlink-backend/pkg/cache"
	"cardlink-backend/pkg/xerrors"
)

const stagingNamespace = "signup"

// StagingStore holds pending signups keyed by the normalized phone number.
// A repeated Stage call for the same key supersedes the previous entry:
// fresh code, fresh payload, fresh TTL. Last write wins.
type StagingStore struct {
	store cache.Store
	ttl   time.Duration
	now   func() time.Time
}

func NewStagingStore(store cache.Store) *StagingStore {
	return &StagingStore{store: store, ttl: TTL, now: time.Now}
}

// Stage writes the candidate payload under its phone number. IssuedAt is
// stamped here so that expiry is measured from the moment of staging.
func (s *StagingStore) Stage(ctx context.Context, pending *domain.PendingSignup) error {
	pending.IssuedAt = s.now()

	data, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, stagingNamespace, pending.MobileNumber, data, s.ttl)
}

// Consume verifies an OTP against the staged entry for mobileNumber and
// removes the entry. The entry is consumed on every outcome except a plain
// code mismatch, so an expired entry is not retriable.
//
// Errors: xerrors.ErrSignupNotStaged when no entry exists (indistinguishable
// from "never requested" by design), xerrors.ErrOTPExpired past the window,
// xerrors.ErrInvalidOTP on mismatch.
func (s *StagingStore) Consume(ctx context.Context, mobileNumber, code string) (*domain.PendingSignup, error) {
	raw, err := s.store.Get(ctx, stagingNamespace, mobileNumber)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return nil, xerrors.ErrSignupNotStaged
		}
		return nil, err
	}

	var pending domain.PendingSignup
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		_ = s.store.Delete(ctx, stagingNamespace, mobileNumber)
		return nil, xerrors.ErrSignupNotStaged
	}

	if !Fresh(pending.IssuedAt, s.now()) {
		_ = s.store.Delete(ctx, stagingNamespace, mobileNumber)
		return nil, xerrors.ErrOTPExpired
	}

	if pending.OTPCode == "" || pending.OTPCode != code {
		return nil, xerrors.ErrInvalidOTP
	}

	if err := s.store.Delete(ctx, stagingNamespace, mobileNumber); err != nil {
		return nil, err
	}
	return &pending, nil
}
