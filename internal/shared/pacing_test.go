package shared

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPacer(t *testing.T) {
	t.Run("NopPacer", func(t *testing.T) {
		if err := (NopPacer{}).Wait(context.Background()); err != nil {
			t.Errorf("expected no error, got %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := (NopPacer{}).Wait(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("NewPacer", func(t *testing.T) {
		t.Run("First Wait Is Immediate", func(t *testing.T) {
			pacer := NewPacer(time.Second)

			start := time.Now()
			if err := pacer.Wait(context.Background()); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
				t.Errorf("first wait should be immediate, took %v", elapsed)
			}
		})

		t.Run("Subsequent Waits Are Spaced", func(t *testing.T) {
			interval := 20 * time.Millisecond
			pacer := NewPacer(interval)

			if err := pacer.Wait(context.Background()); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			start := time.Now()
			if err := pacer.Wait(context.Background()); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if elapsed := time.Since(start); elapsed < interval/2 {
				t.Errorf("second wait should be paced, took %v", elapsed)
			}
		})

		t.Run("Cancelled Context", func(t *testing.T) {
			pacer := NewPacer(time.Minute)
			if err := pacer.Wait(context.Background()); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			if err := pacer.Wait(ctx); err == nil {
				t.Error("expected error waiting with cancelled context")
			}
		})
	})
}

func TestAPIError(t *testing.T) {
	err := &APIError{Status: 429, Message: "rate limited"}

	if !errors.Is(err, ErrAPIRequest) {
		t.Error("APIError should unwrap to ErrAPIRequest")
	}
	if got := err.Error(); got != "spotify API error: status 429: rate limited" {
		t.Errorf("unexpected message: %s", got)
	}

	bare := &APIError{Status: 500}
	if got := bare.Error(); got != "spotify API error: status 500" {
		t.Errorf("unexpected message: %s", got)
	}
}
