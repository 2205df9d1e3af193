package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/mocnotify/internal/core"
)

// Colors
var (
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Success   = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F9FAFB") // White
	TextMuted = lipgloss.Color("#9CA3AF") // Gray
	TextDim   = lipgloss.Color("#6B7280") // Darker gray
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextMuted)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Playing = lipgloss.NewStyle().
		Foreground(Success)

	Paused = lipgloss.NewStyle().
		Foreground(Warning)

	Stopped = lipgloss.NewStyle().
		Foreground(TextDim)

	ErrorText = lipgloss.NewStyle().
		Foreground(Error)
)

// StateIcon returns a styled icon for the playback state.
func StateIcon(s core.PlaybackState) string {
	switch s {
	case core.StatePlaying:
		return Playing.Render("▶")
	case core.StatePaused:
		return Paused.Render("⏸")
	default:
		return Stopped.Render("■")
	}
}

// ProgressBar creates a progress bar string
func ProgressBar(position, length, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if length > 0 {
		filled = position * width / length
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	filledStyle := lipgloss.NewStyle().Foreground(Primary)
	emptyStyle := lipgloss.NewStyle().Foreground(TextDim)

	return filledStyle.Render(strings.Repeat("━", filled)) +
		emptyStyle.Render(strings.Repeat("─", width-filled))
}
