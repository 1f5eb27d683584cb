package shared

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer bounds the rate of successive remote calls. Implementations block in
// Wait until the next call is allowed to proceed.
//
// The Spotify API enforces per-app rate limits, so every loop that issues one
// request per iteration (batch enrichment, chunked track adds) waits on a
// Pacer between iterations.
type Pacer interface {
	Wait(ctx context.Context) error
}

type limiterPacer struct {
	limiter *rate.Limiter
}

// NewPacer returns a Pacer that spaces calls at least interval apart.
// The first Wait returns immediately, so a loop pays no trailing delay.
func NewPacer(interval time.Duration) Pacer {
	return &limiterPacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

func (p *limiterPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// NopPacer never waits. Used in tests and anywhere pacing is not wanted.
type NopPacer struct{}

func (NopPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}
