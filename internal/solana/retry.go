package solana

import "time"

// RetryPolicy describes a bounded exponential backoff. It is passed into the
// fetch layer so backoff tuning stays out of the business logic.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryPolicy matches the RPC's tolerance for freshly created
// accounts that are not yet visible at the queried commitment.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 5,
	BaseDelay:   500 * time.Millisecond,
	MaxDelay:    8 * time.Second,
}

// Delay returns the backoff before the given zero-based attempt.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	d := p.BaseDelay << attempt
	if d > p.MaxDelay || d <= 0 {
		return p.MaxDelay
	}
	return d
}
