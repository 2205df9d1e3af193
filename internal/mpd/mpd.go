// Package mpd reads playback information from a Music Player Daemon.
package mpd

import (
	"context"
	"log/slog"

	"github.com/fhs/gompd/v2/mpd"
	"github.com/tessro/mocnotify/internal/core"
)

// Source queries an MPD server, opening a fresh connection for every query.
type Source struct {
	addr     string
	password string
	logger   *slog.Logger
}

// New creates a Source for the server at addr (host:port).
func New(addr, password string, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		addr:     addr,
		password: password,
		logger:   logger,
	}
}

// Query returns the current song and state. Connection or protocol errors
// report the player as stopped.
func (s *Source) Query(ctx context.Context) (core.Track, core.PlaybackState) {
	if ctx.Err() != nil {
		return core.Track{}, core.StateStopped
	}

	client, err := mpd.DialAuthenticated("tcp", s.addr, s.password)
	if err != nil {
		s.logger.Debug("mpd dial failed", "addr", s.addr, "err", err)
		return core.Track{}, core.StateStopped
	}
	defer client.Close()

	status, err := client.Status()
	if err != nil {
		s.logger.Debug("mpd status failed", "err", err)
		return core.Track{}, core.StateStopped
	}

	song, err := client.CurrentSong()
	if err != nil {
		s.logger.Debug("mpd currentsong failed", "err", err)
		return core.Track{}, core.StateStopped
	}

	return convert(status, song)
}

// convert maps MPD status and song attributes onto core types.
func convert(status, song mpd.Attrs) (core.Track, core.PlaybackState) {
	length := status["duration"]
	if length == "" {
		length = song["duration"]
	}
	if length == "" {
		length = song["Time"]
	}

	track := core.NewTrack(
		song["Artist"],
		song["Title"],
		song["Album"],
		status["elapsed"],
		length,
	)
	return track, core.ParseState(status["state"])
}
