// Package mpris reads playback information from any MPRIS-capable player
// on the D-Bus session bus.
package mpris

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Pauloo27/go-mpris"
	"github.com/godbus/dbus/v5"
	"github.com/tessro/mocnotify/internal/core"
)

// Source queries the first MPRIS player whose bus name contains filter.
type Source struct {
	filter string
	logger *slog.Logger
}

// New creates a Source. An empty filter selects the first player found.
func New(filter string, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		filter: strings.ToLower(filter),
		logger: logger,
	}
}

// Query reads status and metadata from the selected player. Bus errors and
// missing players report the player as stopped.
func (s *Source) Query(ctx context.Context) (core.Track, core.PlaybackState) {
	if ctx.Err() != nil {
		return core.Track{}, core.StateStopped
	}

	conn, err := dbus.SessionBus()
	if err != nil {
		s.logger.Debug("session bus unavailable", "err", err)
		return core.Track{}, core.StateStopped
	}

	names, err := mpris.List(conn)
	if err != nil {
		s.logger.Debug("listing mpris players failed", "err", err)
		return core.Track{}, core.StateStopped
	}

	name := pick(names, s.filter)
	if name == "" {
		return core.Track{}, core.StateStopped
	}

	player := mpris.New(conn, name)

	status, err := player.GetPlaybackStatus()
	if err != nil {
		s.logger.Debug("mpris status failed", "player", name, "err", err)
		return core.Track{}, core.StateStopped
	}

	metadata, err := player.GetMetadata()
	if err != nil {
		s.logger.Debug("mpris metadata failed", "player", name, "err", err)
		return core.Track{}, core.StateStopped
	}

	// Not every player implements Position.
	position, err := player.GetPosition()
	if err != nil {
		position = 0
	}

	return convert(status, metadata, position)
}

// pick returns the first bus name containing filter.
func pick(names []string, filter string) string {
	for _, name := range names {
		if filter == "" || strings.Contains(strings.ToLower(name), filter) {
			return name
		}
	}
	return ""
}

// convert maps MPRIS status and metadata onto core types.
func convert(status mpris.PlaybackStatus, metadata map[string]dbus.Variant, position float64) (core.Track, core.PlaybackState) {
	var length string
	if us, ok := microseconds(metadata["mpris:length"]); ok {
		length = strconv.FormatInt(us/1_000_000, 10)
	}

	track := core.NewTrack(
		artists(metadata["xesam:artist"]),
		str(metadata["xesam:title"]),
		str(metadata["xesam:album"]),
		strconv.FormatInt(int64(position), 10),
		length,
	)
	return track, core.ParseState(string(status))
}

func str(v dbus.Variant) string {
	s, _ := v.Value().(string)
	return s
}

func artists(v dbus.Variant) string {
	switch a := v.Value().(type) {
	case []string:
		return strings.Join(a, ", ")
	case string:
		return a
	default:
		return ""
	}
}

func microseconds(v dbus.Variant) (int64, bool) {
	switch n := v.Value().(type) {
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
