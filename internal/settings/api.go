package settings

import "golang.org/x/time/rate"

// API holds defaults applied to every API endpoint: pagination size and the
// request throttle.
type API struct {
	PageSize      int
	ThrottleRPS   int
	ThrottleBurst int
}

// Limiter constructs a token-bucket limiter from the configured throttle. A
// zero rate means throttling is disabled and nil is returned.
func (a API) Limiter() *rate.Limiter {
	if a.ThrottleRPS <= 0 {
		return nil
	}
	burst := a.ThrottleBurst
	if burst <= 0 {
		burst = a.ThrottleRPS
	}
	return rate.NewLimiter(rate.Limit(a.ThrottleRPS), burst)
}
