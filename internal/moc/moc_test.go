package moc

import (
	"context"
	"os/exec"
	"testing"

	"github.com/tessro/mocnotify/internal/core"
)

const sampleOutput = `State: PLAY
File: /home/user/music/radiohead/ok computer/06 karma police.flac
Title: Radiohead - Karma Police (OK Computer)
Artist: Radiohead
SongTitle: Karma Police
Album: OK Computer
TotalTime: 04:24
TimeLeft: 02:10
TotalSec: 264
CurrentTime: 02:14
CurrentSec: 134
Bitrate: 914kbps
AvgBitrate: 914kbps
Rate: 44kHz
`

func TestParse(t *testing.T) {
	track, state := Parse(sampleOutput)

	if state != core.StatePlaying {
		t.Errorf("state = %q, want %q", state, core.StatePlaying)
	}
	want := core.Track{
		Artist:   "Radiohead",
		Title:    "Karma Police",
		Album:    "OK Computer",
		Position: 134,
		Length:   264,
	}
	if track != want {
		t.Errorf("track = %+v, want %+v", track, want)
	}
}

func TestParseMinimal(t *testing.T) {
	track, state := Parse("Artist: Radiohead\nSongTitle: Karma Police\nAlbum: OK Computer\nState: PLAY\n")

	if state != core.StatePlaying {
		t.Errorf("state = %q, want %q", state, core.StatePlaying)
	}
	if track.Artist != "Radiohead" || track.Title != "Karma Police" || track.Album != "OK Computer" {
		t.Errorf("track = %+v", track)
	}
	if track.Position != 0 || track.Length != 0 {
		t.Errorf("Position/Length = %d/%d, want 0/0", track.Position, track.Length)
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   core.PlaybackState
	}{
		{"stop with fields", "State: STOP\nArtist: A\nSongTitle: T\n", core.StateStopped},
		{"missing state", "Artist: A\nSongTitle: T\n", core.StateStopped},
		{"pause", "State: PAUSE\nArtist: A\nSongTitle: T\n", core.StatePaused},
		{"lowercase key", "state: play\n", core.StatePlaying},
		{"unknown", "State: BUFFERING\n", core.StateStopped},
		{"empty output", "", core.StateStopped},
		{"server down", "FATAL_ERROR: The server is not running!\n", core.StateStopped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := Parse(tt.output); got != tt.want {
				t.Errorf("state = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLeniency(t *testing.T) {
	output := "garbage line\n" +
		"Artist:\n" +
		"Artist:    \n" +
		"Song Title: ignored because of the space\n" +
		"SongTitle:   Padded  \r\n" +
		"Artist2: digits are not letters\n" +
		"Artist: Last Wins\n" +
		"State: PLAY\n"

	track, state := Parse(output)

	if state != core.StatePlaying {
		t.Errorf("state = %q, want %q", state, core.StatePlaying)
	}
	if track.Artist != "Last Wins" {
		t.Errorf("Artist = %q, want %q", track.Artist, "Last Wins")
	}
	if track.Title != "Padded" {
		t.Errorf("Title = %q, want %q", track.Title, "Padded")
	}
}

func TestParseBadNumbers(t *testing.T) {
	track, _ := Parse("Artist: A\nSongTitle: T\nCurrentSec: soon\nTotalSec: 12x\n")
	if track.Position != 0 || track.Length != 0 {
		t.Errorf("Position/Length = %d/%d, want 0/0", track.Position, track.Length)
	}
}

func TestQuerySpawnFailure(t *testing.T) {
	src := New([]string{"/nonexistent/mocp-does-not-exist", "-i"}, nil)

	track, state := src.Query(context.Background())
	if state != core.StateStopped {
		t.Errorf("state = %q, want %q", state, core.StateStopped)
	}
	if track.IsPresent() {
		t.Errorf("track = %+v, want empty", track)
	}
}

func TestQueryNonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	src := New([]string{"sh", "-c", "printf 'State: PLAY\\nArtist: A\\nSongTitle: T\\n'; exit 2"}, nil)

	track, state := src.Query(context.Background())
	if state != core.StatePlaying {
		t.Errorf("state = %q, want %q", state, core.StatePlaying)
	}
	if !track.Equal(core.Track{Artist: "A", Title: "T"}) {
		t.Errorf("track = %+v", track)
	}
}

func TestQueryInvalidUTF8(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	src := New([]string{"sh", "-c", "printf 'State: PLAY\\nArtist: Bj\\377rk\\nSongTitle: Joga\\n'"}, nil)

	track, _ := src.Query(context.Background())
	if track.Artist != "Bj\uFFFDrk" {
		t.Errorf("Artist = %q, want %q", track.Artist, "Bj\uFFFDrk")
	}
}

func TestNewDefaultCommand(t *testing.T) {
	src := New(nil, nil)
	if len(src.command) != 2 || src.command[0] != "mocp" || src.command[1] != "-i" {
		t.Errorf("command = %v, want %v", src.command, DefaultCommand)
	}
}
