package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginLimiterBurst(t *testing.T) {
	l := NewLoginLimiter(Config{AttemptsPerMinute: 0.6, Burst: 3})

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("a@b.com"), "attempt %d should pass", i+1)
	}
	assert.False(t, l.Allow("a@b.com"), "attempt beyond burst should be denied")
}

func TestLoginLimiterIsPerEmail(t *testing.T) {
	l := NewLoginLimiter(Config{AttemptsPerMinute: 0.6, Burst: 1})

	assert.True(t, l.Allow("a@b.com"))
	assert.False(t, l.Allow("a@b.com"))
	assert.True(t, l.Allow("c@d.com"), "a different account has its own budget")
}
