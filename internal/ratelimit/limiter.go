package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// LoginLimiter throttles login attempts per account email to blunt
// brute-force guessing against the verbatim password check.
type LoginLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

type Config struct {
	AttemptsPerMinute float64
	Burst             int
}

func DefaultConfig() Config {
	return Config{
		AttemptsPerMinute: 10,
		Burst:             5,
	}
}

func NewLoginLimiter(cfg Config) *LoginLimiter {
	return &LoginLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: cfg,
	}
}

// Allow reports whether another attempt for this email may proceed now.
// It never blocks; a denied attempt should surface as a rate-limit error.
func (l *LoginLimiter) Allow(email string) bool {
	return l.limiter(email).Allow()
}

func (l *LoginLimiter) limiter(email string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[email]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[email]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(l.defaults.AttemptsPerMinute/60), l.defaults.Burst)
	l.limiters[email] = limiter
	return limiter
}
