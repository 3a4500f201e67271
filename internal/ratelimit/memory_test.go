package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("admits up to the limit then blocks", func(t *testing.T) {
		l := NewMemoryLimiter(2, time.Hour)

		for i := 0; i < 2; i++ {
			ok, err := l.Allow(ctx, "admin@example.com")
			if err != nil || !ok {
				t.Fatalf("call %d should be allowed, got (%v, %v)", i+1, ok, err)
			}
		}

		ok, err := l.Allow(ctx, "admin@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("third call should be blocked")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := NewMemoryLimiter(1, time.Hour)

		if ok, _ := l.Allow(ctx, "a@example.com"); !ok {
			t.Error("first key should be allowed")
		}
		if ok, _ := l.Allow(ctx, "b@example.com"); !ok {
			t.Error("second key should be unaffected")
		}
		if ok, _ := l.Allow(ctx, "a@example.com"); ok {
			t.Error("first key should now be blocked")
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		l := NewMemoryLimiter(1, time.Hour)

		now := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
		l.now = func() time.Time { return now }

		if ok, _ := l.Allow(ctx, "admin@example.com"); !ok {
			t.Fatal("first call should be allowed")
		}
		if ok, _ := l.Allow(ctx, "admin@example.com"); ok {
			t.Fatal("second call inside the window should be blocked")
		}

		now = now.Add(time.Hour + time.Minute)
		if ok, _ := l.Allow(ctx, "admin@example.com"); !ok {
			t.Error("call after the window should be allowed again")
		}
	})
}
