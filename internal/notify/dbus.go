package notify

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
	mnerrors "github.com/tessro/mocnotify/internal/errors"
)

const (
	busName    = "org.freedesktop.Notifications"
	objectPath = dbus.ObjectPath("/org/freedesktop/Notifications")
	method     = busName + ".Notify"
)

// BusCaller calls org.freedesktop.Notifications.Notify on the session bus.
type BusCaller struct {
	conn *dbus.Conn
}

// NewBusCaller connects to the session bus.
func NewBusCaller() (*BusCaller, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mnerrors.ErrBusUnavailable, err)
	}
	return &BusCaller{conn: conn}, nil
}

// Call implements Caller.
func (b *BusCaller) Call(ctx context.Context, n Notification) (uint32, error) {
	obj := b.conn.Object(busName, objectPath)

	call := obj.CallWithContext(ctx, method, 0, callArgs(n)...)

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// callArgs lays n out in the order of the Notify signature
// (susssasa{sv}i).
func callArgs(n Notification) []interface{} {
	actions := n.Actions
	if actions == nil {
		actions = []string{}
	}
	return []interface{}{
		n.AppName,
		n.ReplaceID,
		n.Icon,
		n.Summary,
		n.Body,
		actions,
		map[string]dbus.Variant{},
		int32(n.Timeout.Milliseconds()),
	}
}
