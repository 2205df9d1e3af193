package watch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tessro/mocnotify/internal/core"
)

// Detector decides when the player has moved on to a new track.
//
// It remembers the last announced track while playing. Pausing or stopping
// forgets it, so resuming the same song announces it again.
type Detector struct {
	source   core.Source
	notifier core.Notifier
	logger   *slog.Logger
	previous *core.Track
}

// NewDetector creates a detector reading from source and announcing through
// notifier.
func NewDetector(source core.Source, notifier core.Notifier, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{
		source:   source,
		notifier: notifier,
		logger:   logger,
	}
}

// Tick polls the player once. The only error it returns is a failed
// notification; player problems read as "stopped".
func (d *Detector) Tick(ctx context.Context) error {
	current, state := d.query(ctx)

	var err error
	if state.IsPlaying() && (d.previous == nil || !current.Equal(*d.previous)) {
		d.logger.Info("track changed", "track", current.String())
		if _, nerr := d.notifier.Notify(ctx, current); nerr != nil {
			err = fmt.Errorf("announce %q: %w", current.String(), nerr)
		} else {
			d.previous = &current
		}
	}

	// Checked after the comparison above so it sees this tick's previous.
	if state.IsIdle() {
		d.previous = nil
	}

	return err
}

// Previous returns the last announced track, if any.
func (d *Detector) Previous() (core.Track, bool) {
	if d.previous == nil {
		return core.Track{}, false
	}
	return *d.previous, true
}

func (d *Detector) query(ctx context.Context) (track core.Track, state core.PlaybackState) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Debug("player query panicked", "panic", r)
			track, state = core.Track{}, core.StateStopped
		}
	}()
	return d.source.Query(ctx)
}
