// Package watch polls a player on a fixed interval and announces track
// changes.
package watch

import (
	"context"
	"log/slog"
	"time"
)

// DefaultInterval is how often the player is polled.
const DefaultInterval = 500 * time.Millisecond

// Watcher drives a Detector from a ticker. Ticks never overlap: each one
// runs to completion before the next is taken.
type Watcher struct {
	detector    *Detector
	interval    time.Duration
	exitOnError bool
	logger      *slog.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithExitOnError controls whether a failed notification stops the watcher.
// It does by default.
func WithExitOnError(exit bool) WatcherOption {
	return func(w *Watcher) {
		w.exitOnError = exit
	}
}

// WithLogger sets the logger used for failed notifications.
func WithLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher creates a new watcher.
func NewWatcher(detector *Detector, interval time.Duration, opts ...WatcherOption) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	w := &Watcher{
		detector:    detector,
		interval:    interval,
		exitOnError: true,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Interval returns the poll interval.
func (w *Watcher) Interval() time.Duration {
	return w.interval
}

// Run polls until ctx is cancelled, then returns nil. With exitOnError set
// it stops early and returns the first notification error.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			if err := w.detector.Tick(ctx); err != nil {
				if w.exitOnError {
					return err
				}
				w.logger.Error("notification failed", "err", err)
			}
		}
	}
}
