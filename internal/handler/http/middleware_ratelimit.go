// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-trip-keeper/models"
)

// Fixed-window rate limit applied to the generative endpoints: each client
// IP gets rateLimitMaxRequests per rateLimitWindow, counted in memory.
const (
	rateLimitWindow      = time.Minute
	rateLimitMaxRequests = 10
)

const rateLimitExceededMessage = "Too many requests. Please wait a moment before trying again."

// rateLimitEntry tracks one client's window.
type rateLimitEntry struct {
	count     int
	resetTime time.Time
}

type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitEntry
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{clients: make(map[string]*rateLimitEntry)}
}

// allow reports whether the client may proceed, opening a new window when
// the previous one has elapsed. Expired entries of other clients are pruned
// on the way so the map does not grow without bound.
func (rl *rateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for client, entry := range rl.clients {
		if client != ip && now.After(entry.resetTime) {
			delete(rl.clients, client)
		}
	}

	entry, ok := rl.clients[ip]
	if !ok || now.After(entry.resetTime) {
		rl.clients[ip] = &rateLimitEntry{count: 1, resetTime: now.Add(rateLimitWindow)}
		return true
	}

	if entry.count >= rateLimitMaxRequests {
		return false
	}

	entry.count++
	return true
}

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	rl := newRateLimiter()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.allow(ip, time.Now()) {
			writeJSON(w, http.StatusTooManyRequests, models.ErrorResponse{Error: rateLimitExceededMessage})
			return
		}

		next.ServeHTTP(w, r)
	})
}
