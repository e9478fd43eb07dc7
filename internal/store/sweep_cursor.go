package store

import (
	"context"
	"fmt"
	"time"
)

// SweepCursor records when a named periodic sweep last completed, so a restarted
// process can resume its schedule instead of sweeping immediately
//
//go:generate mockgen -source=sweep_cursor.go -destination=../mocks/sweep_cursor.go -package=mocks -mock_names=SweepCursor=MockSweepCursor
type SweepCursor interface {
	// LastCompletedAt returns the last completion time; ok is false if the sweep never completed
	LastCompletedAt(ctx context.Context, name string) (t time.Time, ok bool, err error)
	// SetCompletedAt stores the completion time of a sweep
	SetCompletedAt(ctx context.Context, name string, t time.Time) error
}

type sweepCursor struct {
	store Store
}

// NewSweepCursor creates a sweep cursor backed by the key-value store
func NewSweepCursor(store Store) SweepCursor {
	return &sweepCursor{store: store}
}

func sweepCursorKey(name string) string {
	return fmt.Sprintf("sweep_completed_at:%s", name)
}

func (c *sweepCursor) LastCompletedAt(ctx context.Context, name string) (time.Time, bool, error) {
	value, err := c.store.GetKeyValue(ctx, sweepCursorKey(name))
	if err != nil {
		return time.Time{}, false, err
	}
	if value == "" {
		return time.Time{}, false, nil
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse sweep cursor: %w", err)
	}

	return t, true, nil
}

func (c *sweepCursor) SetCompletedAt(ctx context.Context, name string, t time.Time) error {
	return c.store.SetKeyValue(ctx, sweepCursorKey(name), t.UTC().Format(time.RFC3339Nano))
}
