package mpd

import (
	"context"
	"testing"

	"github.com/fhs/gompd/v2/mpd"
	"github.com/tessro/mocnotify/internal/core"
)

func TestConvert(t *testing.T) {
	status := mpd.Attrs{
		"state":    "play",
		"elapsed":  "61.204",
		"duration": "263.880",
	}
	song := mpd.Attrs{
		"file":   "radiohead/ok computer/06.flac",
		"Artist": "Radiohead",
		"Title":  "Karma Police",
		"Album":  "OK Computer",
	}

	track, state := convert(status, song)

	if state != core.StatePlaying {
		t.Errorf("state = %q, want %q", state, core.StatePlaying)
	}
	want := core.Track{Artist: "Radiohead", Title: "Karma Police", Album: "OK Computer", Position: 61, Length: 263}
	if track != want {
		t.Errorf("track = %+v, want %+v", track, want)
	}
}

func TestConvertFallbackLength(t *testing.T) {
	track, state := convert(mpd.Attrs{"state": "pause"}, mpd.Attrs{"Artist": "A", "Title": "T", "Time": "180"})

	if state != core.StatePaused {
		t.Errorf("state = %q, want %q", state, core.StatePaused)
	}
	if track.Length != 180 {
		t.Errorf("Length = %d, want 180", track.Length)
	}
}

func TestConvertStopped(t *testing.T) {
	track, state := convert(mpd.Attrs{"state": "stop"}, mpd.Attrs{})

	if state != core.StateStopped {
		t.Errorf("state = %q, want %q", state, core.StateStopped)
	}
	if track.IsPresent() {
		t.Errorf("track = %+v, want empty", track)
	}
}

func TestQueryUnreachable(t *testing.T) {
	// Port 1 on localhost is reserved and refuses connections.
	src := New("127.0.0.1:1", "", nil)

	track, state := src.Query(context.Background())
	if state != core.StateStopped || track.IsPresent() {
		t.Errorf("Query() = %+v, %q; want empty, stopped", track, state)
	}
}
