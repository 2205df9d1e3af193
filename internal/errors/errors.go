package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrNotifyFailed   = errors.New("notification delivery failed")
	ErrBusUnavailable = errors.New("session bus unavailable")
	ErrIconUnresolved = errors.New("cannot resolve notification icon")
	ErrUnknownBackend = errors.New("unknown player backend")
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// MocNotifyError wraps an error with a user-friendly suggestion.
type MocNotifyError struct {
	Err        error
	Suggestion string
}

func (e *MocNotifyError) Error() string {
	return e.Err.Error()
}

func (e *MocNotifyError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &MocNotifyError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var mnErr *MocNotifyError
	if errors.As(err, &mnErr) && mnErr.Suggestion != "" {
		return mnErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	// Icon failures also carry ErrNotifyFailed, so check them first.
	if errors.Is(err, ErrIconUnresolved) {
		return "Set notify.icon in the config file to an absolute path"
	}

	// Bus errors
	if errors.Is(err, ErrBusUnavailable) || strings.Contains(errStr, "dbus_session_bus_address") ||
		strings.Contains(errStr, "session bus") {
		return "Run inside a desktop session, or export DBUS_SESSION_BUS_ADDRESS"
	}

	// Notification service errors
	if errors.Is(err, ErrNotifyFailed) || strings.Contains(errStr, "org.freedesktop.notifications") ||
		strings.Contains(errStr, "serviceunknown") {
		return "Make sure a notification daemon (dunst, mako, notify-osd, ...) is running"
	}

	if errors.Is(err, ErrUnknownBackend) {
		return "Set player.backend to one of: moc, mpd, mpris"
	}

	// Config errors
	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'mocnotify config show' to inspect the effective configuration"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
