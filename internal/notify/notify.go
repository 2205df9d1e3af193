// Package notify delivers track announcements to the desktop notification
// service.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/tessro/mocnotify/internal/core"
	mnerrors "github.com/tessro/mocnotify/internal/errors"
)

const (
	DefaultAppName = "moc-notify"
	DefaultIcon    = "icon-moc.png"
	DefaultTimeout = 5 * time.Second
)

// Notification is a single call to the notification service.
type Notification struct {
	AppName   string
	ReplaceID uint32
	Icon      string
	Summary   string
	Body      string
	Actions   []string
	Timeout   time.Duration
}

// Caller sends a notification and returns the id the service assigned.
type Caller interface {
	Call(ctx context.Context, n Notification) (uint32, error)
}

// Notifier announces tracks, overwriting its previous notification in place.
type Notifier struct {
	caller    Caller
	formatter *Formatter
	appName   string
	icon      string
	timeout   time.Duration
	replaceID uint32
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAppName sets the application name reported to the service.
func WithAppName(name string) Option {
	return func(n *Notifier) {
		if name != "" {
			n.appName = name
		}
	}
}

// WithIcon sets the icon path. Relative paths resolve against the
// executable's directory.
func WithIcon(icon string) Option {
	return func(n *Notifier) {
		if icon != "" {
			n.icon = icon
		}
	}
}

// WithTimeout sets how long the notification stays on screen.
func WithTimeout(d time.Duration) Option {
	return func(n *Notifier) {
		if d > 0 {
			n.timeout = d
		}
	}
}

// WithFormatter sets the summary/body formatter.
func WithFormatter(f *Formatter) Option {
	return func(n *Notifier) {
		if f != nil {
			n.formatter = f
		}
	}
}

// New creates a Notifier that delivers through caller.
func New(caller Caller, opts ...Option) *Notifier {
	n := &Notifier{
		caller:    caller,
		formatter: NewFormatter(),
		appName:   DefaultAppName,
		icon:      DefaultIcon,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify shows track and returns the id the service assigned to it. That id
// is sent as the replace id on the next call.
func (n *Notifier) Notify(ctx context.Context, track core.Track) (uint32, error) {
	icon, err := ResolveIcon(n.icon)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", mnerrors.ErrNotifyFailed, err)
	}

	id, err := n.caller.Call(ctx, Notification{
		AppName:   n.appName,
		ReplaceID: n.replaceID,
		Icon:      icon,
		Summary:   n.formatter.Summary(track),
		Body:      n.formatter.Body(track),
		Actions:   []string{},
		Timeout:   n.timeout,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", mnerrors.ErrNotifyFailed, err)
	}

	n.replaceID = id
	return id, nil
}

// ReplaceID returns the id that will be replaced by the next notification.
func (n *Notifier) ReplaceID() uint32 {
	return n.replaceID
}
