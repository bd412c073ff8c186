// Package ratelimit provides per-client, per-endpoint request limiting.
package ratelimit

import (
	"sync"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/time/rate"
)

// idleBucketTTL is how long an unused bucket survives cleanup.
const idleBucketTTL = time.Hour

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type bucket struct {
	limiter    *rate.Limiter
	capacity   int
	lastAccess time.Time
}

// Limiter manages rate limiting for multiple clients using token buckets.
type Limiter struct {
	config Config

	mu      sync.Mutex
	buckets map[string]*bucket

	stopOnce    sync.Once
	cleanupStop chan struct{}
	now         func() time.Time
}

// NewLimiter creates a new rate limiter with the given configuration. A nil
// config selects DefaultConfig.
func NewLimiter(config *Config) *Limiter {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}

	l := &Limiter{
		config:      cfg,
		buckets:     make(map[string]*bucket),
		cleanupStop: make(chan struct{}),
		now:         time.Now,
	}

	if cfg.Enabled && cfg.CleanupInterval > 0 {
		go l.cleanup(cfg.CleanupInterval)
	}
	return l
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
// Returns true if allowed, false if rate limited, along with rate limit information.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || slice.Contains(l.config.Whitelist, clientID) {
		return true, Info{Allowed: true}
	}
	if slice.Contains(l.config.Blacklist, clientID) {
		return false, Info{}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if ec.Limit <= 0 || ec.Window <= 0 {
		return true, Info{Allowed: true}
	}

	now := l.now()
	b := l.bucket(clientID+":"+endpoint+":"+method, ec, now)

	allowed := b.limiter.AllowN(now, 1)
	tokens := b.limiter.TokensAt(now)
	remaining := max(int(tokens), 0)

	// time until the bucket is full again
	resetTime := now
	if deficit := float64(b.capacity) - tokens; deficit > 0 {
		resetTime = now.Add(time.Duration(deficit / float64(b.limiter.Limit()) * float64(time.Second)))
	}

	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		// time until one token is available
		info.RetryAfter = time.Duration((1 - tokens) / float64(b.limiter.Limit()) * float64(time.Second))
	}
	return allowed, info
}

func (l *Limiter) bucket(key string, ec *EndpointConfig, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		capacity := ec.Burst
		if capacity <= 0 {
			capacity = ec.Limit
		}
		every := rate.Limit(float64(ec.Limit) / ec.Window.Seconds())
		b = &bucket{limiter: rate.NewLimiter(every, capacity), capacity: capacity}
		l.buckets[key] = b
	}
	b.lastAccess = now
	return b
}

func (l *Limiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanupBuckets(l.now().Add(-idleBucketTTL))
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanupBuckets removes buckets not accessed since cutoff.
func (l *Limiter) cleanupBuckets(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.cleanupStop) })
}
