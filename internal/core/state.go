package core

import "strings"

// PlaybackState is the three-way status reported by a player.
type PlaybackState string

const (
	StatePlaying PlaybackState = "playing"
	StatePaused  PlaybackState = "paused"
	StateStopped PlaybackState = "stopped"
)

// ParseState maps a player status word onto a PlaybackState. Anything it
// does not recognise, including an empty string, is treated as stopped.
func ParseState(s string) PlaybackState {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "play", "playing":
		return StatePlaying
	case "pause", "paused":
		return StatePaused
	default:
		return StateStopped
	}
}

// IsPlaying returns true for StatePlaying.
func (s PlaybackState) IsPlaying() bool {
	return s == StatePlaying
}

// IsIdle returns true when nothing is actively playing.
func (s PlaybackState) IsIdle() bool {
	return s == StatePaused || s == StateStopped
}
