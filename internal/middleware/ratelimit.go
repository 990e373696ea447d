// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimitMessage is returned to clients that exceed the limit.
const RateLimitMessage = "Demasiadas solicitudes. Intenta de nuevo en unos segundos."

// window holds the request timestamps of one client, oldest first.
type window struct {
	mu   sync.Mutex
	hits []time.Time
}

// RateLimiter allows at most limit requests per client IP within a sliding
// window.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	period  time.Duration
	now     func() time.Time
	stopCh  chan struct{}
}

// NewRateLimiter creates a rate limiter that allows limit requests per
// period and starts a goroutine that drops idle clients. Call Stop when the
// limiter is no longer used.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(max(period, time.Minute))
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stopCh:
				return
			}
		}
	}()

	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// allow records a hit for key. When the client is over the limit it returns
// false and how long until the oldest hit leaves the window.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	w, ok := rl.clients[key]
	if !ok {
		w = &window{}
		rl.clients[key] = w
	}
	rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.period)

	w.mu.Lock()
	defer w.mu.Unlock()

	i := 0
	for i < len(w.hits) && !w.hits[i].After(cutoff) {
		i++
	}
	w.hits = w.hits[i:]

	if len(w.hits) >= rl.limit {
		return false, w.hits[0].Sub(cutoff)
	}
	w.hits = append(w.hits, now)
	return true, 0
}

// cleanup removes clients with no hit inside the window.
func (rl *RateLimiter) cleanup() {
	cutoff := rl.now().Add(-rl.period)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, w := range rl.clients {
		w.mu.Lock()
		idle := len(w.hits) == 0 || !w.hits[len(w.hits)-1].After(cutoff)
		w.mu.Unlock()
		if idle {
			delete(rl.clients, key)
		}
	}
}

// Middleware rejects requests over the limit with 429 and a Retry-After
// header in whole seconds.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, retry := rl.allow(clientIP(r))
		if !ok {
			secs := int(math.Ceil(retry.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(max(secs, 1)))
			jsonError(w, http.StatusTooManyRequests, RateLimitMessage)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of the connection address. Forwarded
// headers are client controlled and are not consulted here; behind a
// trusted proxy the router rewrites RemoteAddr first.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
