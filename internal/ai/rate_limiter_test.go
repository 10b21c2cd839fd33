package ai

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterAllowsBurst(t *testing.T) {
	l := NewRateLimiter(ProviderNameGemini, 1, 2)

	if !l.Allow() || !l.Allow() {
		t.Fatal("burst of 2 should be allowed immediately")
	}
	if l.Allow() {
		t.Error("third call should be throttled")
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	l := NewRateLimiter(ProviderNameOpenAI, 0, 0)

	for i := 0; i < 100; i++ {
		if !l.Allow() {
			t.Fatal("disabled limiter should never throttle")
		}
	}
}

func TestRateLimiterWaitCancelled(t *testing.T) {
	l := NewRateLimiter(ProviderNameGemini, 0.001, 1)
	l.Allow() // drain the bucket

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("wait should fail when the context expires first")
	}
}

func TestRateLimiterLimit(t *testing.T) {
	l := NewRateLimiter(ProviderNameGemini, 2.5, 1)
	if got := l.Limit(); got != 2.5 {
		t.Errorf("Limit() = %v, want 2.5", got)
	}
}
