package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tessro/mocnotify/internal/core"
	"github.com/tessro/mocnotify/internal/logging"
	"github.com/tessro/mocnotify/internal/styles"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what the player is doing right now",
	Long:  `Queries the configured player once and prints the current track and state.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	logger := slog.New(logging.NewHandler(cmd.ErrOrStderr(), logging.DefaultName, logging.ParseLevel(cfg.Log.Level)))

	source, err := newSource(cfg, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	track, state := source.Query(ctx)

	out := cmd.OutOrStdout()
	if JSONOutput() {
		return writeStatusJSON(out, track, state)
	}
	writeStatus(out, track, state, TerminalWidth())
	return nil
}

type statusJSON struct {
	State   core.PlaybackState `json:"state"`
	Playing bool               `json:"playing"`
	Track   *core.Track        `json:"track,omitempty"`
}

func writeStatusJSON(w io.Writer, track core.Track, state core.PlaybackState) error {
	result := statusJSON{
		State:   state,
		Playing: state.IsPlaying(),
	}
	if track.IsPresent() {
		result.Track = &track
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func writeStatus(w io.Writer, track core.Track, state core.PlaybackState, width int) {
	if !track.IsPresent() {
		fmt.Fprintf(w, "%s %s\n", styles.StateIcon(state), styles.Subtitle.Render("No track ("+string(state)+")"))
		return
	}

	// Leave room for the icon and a space.
	line := TruncateString(track.String(), width-2)
	fmt.Fprintf(w, "%s %s\n", styles.StateIcon(state), styles.Title.Render(line))

	if track.Length > 0 {
		times := fmt.Sprintf("%s / %s", FormatDuration(track.Position), FormatDuration(track.Length))
		barWidth := width - len(times) - 3
		if barWidth > 40 {
			barWidth = 40
		}
		parts := []string{styles.Label.Render(times)}
		if barWidth > 0 {
			parts = append([]string{styles.ProgressBar(track.Position, track.Length, barWidth)}, parts...)
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(parts, " "))
	}
}
