package ratelimit

import "context"

// Limiter is the rate-limit capability handed to handlers. Allow reports
// whether one more action is admitted for the key inside the current
// fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
