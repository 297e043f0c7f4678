// Package ratelimit provides per-client token-bucket rate limiting for the
// HTTP API. Report generation is the expensive operation (layout, PDF
// assembly, SMTP delivery per request), so /send-pdf gets its own strict
// tier while static assets fall under a lenient default and /health is
// never limited.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket refilling at a steady rate up to a burst
// capacity.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// take refills the bucket for the elapsed time, then consumes one token if
// available. It returns whether the request is allowed, the tokens left,
// and when the bucket will be full again.
func (b *bucket) take() (allowed bool, remaining int, resetAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}

	resetAt = now
	if b.tokens < b.capacity {
		resetAt = now.Add(time.Duration((b.capacity - b.tokens) / b.refillRate * float64(time.Second)))
	}
	return allowed, int(b.tokens), resetAt
}

// Info describes the rate-limit state reported to a client.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages one token bucket per client/endpoint pair.
type Limiter struct {
	mu         sync.Mutex
	config     *Config
	buckets    map[string]*bucket
	lastAccess map[string]time.Time
	stop       chan struct{}
}

// NewLimiter creates a limiter and, when cleanup is configured, starts a
// background goroutine that drops buckets idle for over an hour.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}
	l := &Limiter{
		config:     config,
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		l.stop = make(chan struct{})
		go l.cleanupLoop(config.CleanupInterval)
	}
	return l
}

// Allow reports whether a request from clientID to the given endpoint may
// proceed, consuming a token when it does.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Trusted[clientID] {
		return true, Info{Allowed: true}
	}

	tier := l.config.match(path, method)
	if tier.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + method + ":" + tier.Path
	b := l.getBucket(key, tier)

	allowed, remaining, resetAt := b.take()
	info := Info{
		Allowed:   allowed,
		Limit:     tier.Limit,
		Remaining: remaining,
		ResetTime: resetAt,
	}
	if !allowed {
		info.RetryAfter = max(time.Until(resetAt), 0)
	}
	return allowed, info
}

func (l *Limiter) getBucket(key string, tier Tier) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastAccess[key] = time.Now()
	if b, ok := l.buckets[key]; ok {
		return b
	}

	burst := tier.Burst
	if burst <= 0 {
		burst = tier.Limit
	}
	b := newBucket(burst, float64(tier.Limit)/tier.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.dropIdle(time.Now().Add(-time.Hour))
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) dropIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.stop != nil {
		close(l.stop)
	}
}
