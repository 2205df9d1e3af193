package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Track represents the song reported by the player on a single poll.
type Track struct {
	Artist   string `json:"artist"`
	Title    string `json:"title"`
	Album    string `json:"album"`
	Position int    `json:"position"`
	Length   int    `json:"length"`
}

// NewTrack builds a Track from raw player fields. Strings are trimmed and
// numeric fields that are missing or unparsable become 0.
func NewTrack(artist, title, album, position, length string) Track {
	return Track{
		Artist:   strings.TrimSpace(artist),
		Title:    strings.TrimSpace(title),
		Album:    strings.TrimSpace(album),
		Position: seconds(position),
		Length:   seconds(length),
	}
}

// seconds parses a non-negative number of seconds. Fractions are truncated;
// anything other than plain digits with an optional decimal point is 0.
func seconds(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || strings.IndexFunc(s, notDecimal) >= 0 {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

func notDecimal(r rune) bool {
	return (r < '0' || r > '9') && r != '.'
}

// Equal reports whether two tracks are the same song. Only artist and title
// take part, compared case-insensitively.
func (t Track) Equal(other Track) bool {
	return strings.ToLower(t.Artist) == strings.ToLower(other.Artist) &&
		strings.ToLower(t.Title) == strings.ToLower(other.Title)
}

// IsPresent returns true if the track has both an artist and a title.
func (t Track) IsPresent() bool {
	return t.Artist != "" && t.Title != ""
}

func (t Track) String() string {
	if !t.IsPresent() {
		return "none"
	}
	if t.Album != "" {
		return fmt.Sprintf("%s - %s (%s)", t.Title, t.Artist, t.Album)
	}
	return fmt.Sprintf("%s - %s", t.Title, t.Artist)
}
