package rate

import (
	"context"
	"fmt"
	"time"

	"cardlink-backend/pkg/cache"
)

// Limiter throttles OTP issuance per subject: a cooldown between requests
// and a cap inside a rolling window, with an extended block once the cap
// is hit.
type Limiter struct {
	cache       cache.Store
	window      time.Duration
	maxInWindow int
	cooldown    time.Duration
}

func NewLimiter(cache cache.Store, window time.Duration, max int, cooldown time.Duration) *Limiter {
	return &Limiter{cache: cache, window: window, maxInWindow: max, cooldown: cooldown}
}

func (l *Limiter) CanRequest(ctx context.Context, subject, purpose string) error {
	blockKey := fmt.Sprintf("block:%s:%s", subject, purpose)
	lastKey := fmt.Sprintf("last:%s:%s", subject, purpose)
	countKey := fmt.Sprintf("count:%s:%s", subject, purpose)

	if ttl, _ := l.cache.GetTTL(ctx, "otp_rate", blockKey); ttl > 0 {
		return fmt.Errorf("too many OTP requests; please try again after %d seconds", int(ttl.Seconds()))
	}

	if ttl, _ := l.cache.GetTTL(ctx, "otp_rate", lastKey); ttl > 0 {
		return fmt.Errorf("please wait %d seconds before requesting another OTP", int(ttl.Seconds()))
	}

	cnt, err := l.cache.IncrWithExpire(ctx, "otp_rate", countKey, l.window)
	if err != nil {
		return err
	}

	if int(cnt) > l.maxInWindow {
		// too many requests in the window → block for extended time
		_ = l.cache.Set(ctx, "otp_rate", blockKey, "1", l.window*3)
		return fmt.Errorf("too many OTP requests; please try again after %d seconds", int((l.window * 3).Seconds()))
	}

	_ = l.cache.Set(ctx, "otp_rate", lastKey, "1", l.cooldown)

	return nil
}
