// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

	t.Run("→ allows up to the limit within one window", func(t *testing.T) {
		rl := newRateLimiter()

		for i := 0; i < rateLimitMaxRequests; i++ {
			assert.True(t, rl.allow("203.0.113.7", now.Add(time.Duration(i)*time.Second)))
		}
		assert.False(t, rl.allow("203.0.113.7", now.Add(30*time.Second)))
	})

	t.Run("→ new window opens after reset time passes", func(t *testing.T) {
		rl := newRateLimiter()

		for i := 0; i < rateLimitMaxRequests; i++ {
			require.True(t, rl.allow("203.0.113.7", now))
		}
		require.False(t, rl.allow("203.0.113.7", now))

		assert.True(t, rl.allow("203.0.113.7", now.Add(rateLimitWindow+time.Second)))
	})

	t.Run("→ clients are limited independently", func(t *testing.T) {
		rl := newRateLimiter()

		for i := 0; i < rateLimitMaxRequests; i++ {
			require.True(t, rl.allow("203.0.113.7", now))
		}
		require.False(t, rl.allow("203.0.113.7", now))

		assert.True(t, rl.allow("198.51.100.2", now))
	})

	t.Run("→ expired entries of other clients are pruned", func(t *testing.T) {
		rl := newRateLimiter()

		require.True(t, rl.allow("203.0.113.7", now))
		require.True(t, rl.allow("198.51.100.2", now.Add(rateLimitWindow+time.Second)))

		rl.mu.Lock()
		_, stale := rl.clients["203.0.113.7"]
		rl.mu.Unlock()
		assert.False(t, stale)
	})
}

func TestWithRateLimit(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := h.withRateLimit(next)

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec
	}

	t.Run("→ requests over the limit get 429 with an explanation", func(t *testing.T) {
		for i := 0; i < rateLimitMaxRequests; i++ {
			require.Equal(t, http.StatusOK, send("203.0.113.7:51234").Code)
		}

		rec := send("203.0.113.7:51234")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Too many requests. Please wait a moment before trying again.", resp.Error)
	})

	t.Run("→ a different client is unaffected", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, send("198.51.100.2:40000").Code)
	})

	t.Run("→ port changes do not reset the window", func(t *testing.T) {
		rec := send("203.0.113.7:60001")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}
