// Package moc reads playback information from the MOC console player by
// running its status command.
package moc

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/tessro/mocnotify/internal/core"
)

// DefaultCommand is the status query shipped with MOC.
var DefaultCommand = []string{"mocp", "-i"}

var infoExpr = regexp2.MustCompile(`^([a-zA-Z]+):\s*(.+)$`, regexp2.None)

// Source runs the player's status command once per query.
type Source struct {
	command []string
	logger  *slog.Logger
}

// New creates a Source for the given command line. An empty command falls
// back to DefaultCommand.
func New(command []string, logger *slog.Logger) *Source {
	if len(command) == 0 {
		command = DefaultCommand
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		command: command,
		logger:  logger,
	}
}

// Query runs the status command and parses its output. If the command
// cannot be started, the player is reported as stopped.
func (s *Source) Query(ctx context.Context) (core.Track, core.PlaybackState) {
	cmd := exec.CommandContext(ctx, s.command[0], s.command[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		// A non-zero exit still carries output worth parsing (mocp reports
		// "server not running" this way).
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			s.logger.Debug("player query failed", "command", s.command[0], "err", err)
			return core.Track{}, core.StateStopped
		}
	}
	return Parse(strings.ToValidUTF8(string(out), "\uFFFD"))
}

// Parse converts `Key: value` status output into a track and state. Lines
// that do not match are ignored, as are keys with empty values.
func Parse(output string) (core.Track, core.PlaybackState) {
	info := fields(output)

	track := core.NewTrack(
		info["artist"],
		info["songtitle"],
		info["album"],
		info["currentsec"],
		info["totalsec"],
	)
	return track, core.ParseState(info["state"])
}

func fields(output string) map[string]string {
	info := make(map[string]string)

	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		m, err := infoExpr.FindStringMatch(scanner.Text())
		if err != nil || m == nil {
			continue
		}
		key := strings.ToLower(m.GroupByNumber(1).String())
		value := strings.TrimSpace(m.GroupByNumber(2).String())
		if value == "" {
			continue
		}
		info[key] = value
	}
	return info
}
