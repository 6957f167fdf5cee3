// Package ratelimit provides a fixed-window request limiter keyed by client
// address. Each key gets a counter that resets when its window expires; a
// background sweep evicts stale windows so the table cannot grow without
// bound in a long-lived process.
package ratelimit

import (
	"sync"
	"time"
)

// window is one client's counter for the current fixed window.
type window struct {
	count     int
	resetTime time.Time
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages fixed-window counters for multiple clients.
type Limiter struct {
	mu            sync.Mutex
	windows       map[string]*window
	config        *Config
	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter with the given configuration and starts the
// eviction sweep.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	limiter := &Limiter{
		windows: make(map[string]*window),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup()
	}

	return limiter
}

// Allow records a request for the given client and reports whether it fits
// within the current window.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, exists := l.windows[clientID]
	if !exists || now.After(w.resetTime) {
		w = &window{count: 1, resetTime: now.Add(l.config.Window)}
		l.windows[clientID] = w
		return true, l.makeInfo(true, w)
	}

	if w.count >= l.config.Limit {
		return false, l.makeInfo(false, w)
	}

	w.count++
	return true, l.makeInfo(true, w)
}

// makeInfo builds an Info snapshot for the window. Callers must hold l.mu.
func (l *Limiter) makeInfo(allowed bool, w *window) Info {
	remaining := l.config.Limit - w.count
	if remaining < 0 {
		remaining = 0
	}
	info := Info{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: remaining,
		ResetTime: w.resetTime,
	}
	if !allowed {
		if retry := time.Until(w.resetTime); retry > 0 {
			info.RetryAfter = retry
		}
	}
	return info
}

// cleanup runs the periodic eviction sweep until Stop is called.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.evictExpired()
		case <-l.cleanupStop:
			return
		}
	}
}

// evictExpired drops every window whose reset time has passed. A client
// that comes back simply gets a fresh window.
func (l *Limiter) evictExpired() {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, w := range l.windows {
		if now.After(w.resetTime) {
			delete(l.windows, key)
		}
	}
}

// Stop stops the eviction sweep goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
