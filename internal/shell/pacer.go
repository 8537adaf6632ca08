package shell

import (
	"context"
	"time"
)

// Pacer inserts explicit waits after console output.
type Pacer struct {
	LineDelay  time.Duration
	TableDelay time.Duration
	wait       func(context.Context, time.Duration) error
}

// NewPacer builds a Pacer with real timers.
func NewPacer(lineDelay, tableDelay time.Duration) *Pacer {
	return &Pacer{
		LineDelay:  lineDelay,
		TableDelay: tableDelay,
		wait:       sleep,
	}
}

// AfterLine waits LineDelay. A nil Pacer never waits.
func (p *Pacer) AfterLine(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.pause(ctx, p.LineDelay)
}

// AfterTable waits TableDelay.
func (p *Pacer) AfterTable(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.pause(ctx, p.TableDelay)
}

func (p *Pacer) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	wait := p.wait
	if wait == nil {
		wait = sleep
	}
	return wait(ctx, d)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
