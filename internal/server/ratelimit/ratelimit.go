// Package ratelimit provides a per-client token bucket for the HTTP API.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config controls bucket capacity and refill rate.
type Config struct {
	// RequestsPerMinute is the sustained rate allowed per client.
	RequestsPerMinute int
	// Burst is the bucket capacity.
	Burst int
	// CleanupInterval controls how often idle buckets are dropped.
	CleanupInterval time.Duration
}

// LoadConfig reads limiter settings from the environment with defaults
// suitable for a single-user companion tool.
func LoadConfig() Config {
	cfg := Config{
		RequestsPerMinute: 120,
		Burst:             30,
		CleanupInterval:   5 * time.Minute,
	}
	if v, err := strconv.Atoi(os.Getenv("MAJEL_RATE_LIMIT_RPM")); err == nil && v > 0 {
		cfg.RequestsPerMinute = v
	}
	if v, err := strconv.Atoi(os.Getenv("MAJEL_RATE_LIMIT_BURST")); err == nil && v > 0 {
		cfg.Burst = v
	}
	return cfg
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// Limiter is a token-bucket rate limiter keyed by client identifier.
type Limiter struct {
	mu      sync.Mutex
	cfg     Config
	buckets map[string]*bucket
	done    chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(cfg Config) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
		done:    make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether the client may proceed and how many tokens remain.
func (l *Limiter) Allow(clientID string) (bool, int) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Burst)}
		l.buckets[clientID] = b
	} else {
		refill := now.Sub(b.lastSeen).Minutes() * float64(l.cfg.RequestsPerMinute)
		b.tokens += refill
		if b.tokens > float64(l.cfg.Burst) {
			b.tokens = float64(l.cfg.Burst)
		}
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false, 0
	}
	b.tokens--
	return true, int(b.tokens)
}

// Stop terminates the cleanup loop.
func (l *Limiter) Stop() {
	close(l.done)
}

func (l *Limiter) cleanupLoop() {
	interval := l.cfg.CleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case now := <-ticker.C:
			l.mu.Lock()
			for id, b := range l.buckets {
				if now.Sub(b.lastSeen) > interval {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
