package config

import (
	"errors"
	"fmt"

	mnerrors "github.com/tessro/mocnotify/internal/errors"
	"github.com/tessro/mocnotify/internal/notify"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Player.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if err := c.Poll.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("poll: %w", err))
	}
	if err := c.Notify.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("notify: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", mnerrors.ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks PlayerConfig for errors.
func (c *PlayerConfig) Validate() error {
	switch c.Backend {
	case "moc":
		if len(c.Command) == 0 || c.Command[0] == "" {
			return errors.New("command must not be empty")
		}
	case "mpd":
		if c.MPDAddress == "" {
			return errors.New("mpd_address must not be empty")
		}
	case "mpris":
		// valid
	default:
		return fmt.Errorf("%w: %s (must be moc, mpd, or mpris)", mnerrors.ErrUnknownBackend, c.Backend)
	}
	return nil
}

// Validate checks PollConfig for errors.
func (c *PollConfig) Validate() error {
	if c.IntervalMS < 0 {
		return errors.New("interval_ms must be non-negative")
	}
	return nil
}

// Validate checks NotifyConfig for errors.
func (c *NotifyConfig) Validate() error {
	if c.TimeoutMS < 0 {
		return errors.New("timeout_ms must be non-negative")
	}
	if err := notify.ValidateTemplate(c.SummaryTemplate); err != nil {
		return fmt.Errorf("invalid summary_template: %w", err)
	}
	if err := notify.ValidateTemplate(c.BodyTemplate); err != nil {
		return fmt.Errorf("invalid body_template: %w", err)
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	return nil
}
