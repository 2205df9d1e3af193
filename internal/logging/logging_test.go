package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "", slog.LevelDebug))

	logger.Info("Karma Police - Radiohead (OK Computer)")

	line := buf.String()
	re := regexp.MustCompile(`^>> \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} - moc\.notify - INFO - Karma Police - Radiohead \(OK Computer\)\n$`)
	if !re.MatchString(line) {
		t.Errorf("line = %q does not match expected format", line)
	}
}

func TestHandlerAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "test", slog.LevelDebug)).With("backend", "moc")

	logger.WithGroup("player").Warn("query failed", "err", "exec: not found", "code", 2)

	line := buf.String()
	for _, want := range []string{
		" - test - WARNING - query failed",
		" backend=moc",
		` player.err="exec: not found"`,
		" player.code=2",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("line = %q, want it to contain %q", line, want)
		}
	}
	if strings.Count(line, "\n") != 1 {
		t.Errorf("line = %q, want exactly one record", line)
	}
}

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "", slog.LevelInfo))

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug record written at info level: %q", buf.String())
	}

	logger.Error("shown")
	if !strings.Contains(buf.String(), " - ERROR - shown") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mocnotify.log")

	logger, closer, err := Setup("debug", path)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	logger.Debug("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), " - moc.notify - DEBUG - hello") {
		t.Errorf("log file = %q", data)
	}
}
