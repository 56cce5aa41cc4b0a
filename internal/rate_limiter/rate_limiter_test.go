package ratelimiter

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/phuchoang/InteriorHub/internal/config"
)

func TestFixedWindowRateLimiter(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 3,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, nil)

	ip := "192.168.1.10"
	for i := 0; i < 3; i++ {
		allow, _ := rl.Allow(ip)
		if !allow {
			t.Fatalf("Expected request %d to be allowed", i+1)
		}
	}

	allow, retryAfter := rl.Allow(ip)
	if allow {
		t.Error("Expected request over the limit to be denied")
	}
	if retryAfter != time.Minute {
		t.Errorf("Expected retry after %v, got %v", time.Minute, retryAfter)
	}

	// A different client has its own window.
	if allow, _ := rl.Allow("10.0.0.1"); !allow {
		t.Error("Expected a different client to be allowed")
	}
}

// Concurrent first requests must all land in the same window counter, so
// exactly limit requests pass and the next one is denied.
func TestFixedWindowRateLimiterConcurrent(t *testing.T) {
	limit := 50
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: limit,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, nil)

	ip := "172.16.0.1"
	var wg sync.WaitGroup
	var allowed atomic.Int64
	for i := 0; i < limit; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := rl.Allow(ip); ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if allowed.Load() != int64(limit) {
		t.Errorf("Expected %d concurrent requests to be allowed, got %d", limit, allowed.Load())
	}

	if ok, _ := rl.Allow(ip); ok {
		t.Error("Expected request over the limit to be denied")
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            time.Minute,
		Enabled:              false,
	}, nil)

	if rl.Enabled() {
		t.Error("Expected limiter to report disabled")
	}

	for i := 0; i < 10; i++ {
		if allow, _ := rl.Allow("192.168.1.10"); !allow {
			t.Fatal("Expected disabled limiter to always allow")
		}
	}
}
