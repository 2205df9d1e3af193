package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGetSuggestion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"wrapped notify", fmt.Errorf("%w: boom", ErrNotifyFailed), "notification daemon"},
		{"bus", fmt.Errorf("connect: %w", ErrBusUnavailable), "DBUS_SESSION_BUS_ADDRESS"},
		{"service unknown text", errors.New("org.freedesktop.DBus.Error.ServiceUnknown"), "notification daemon"},
		{"backend", fmt.Errorf("%w: winamp", ErrUnknownBackend), "moc, mpd, mpris"},
		{"explicit", WithSuggestion(errors.New("x"), "do y"), "do y"},
		{"icon inside notify", fmt.Errorf("%w: %w", ErrNotifyFailed, ErrIconUnresolved), "notify.icon"},
		{"unrelated", errors.New("something else"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetSuggestion(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("GetSuggestion() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("GetSuggestion() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	got := Format(errors.New("plain"))
	if got != "Error: plain" {
		t.Errorf("Format() = %q, want %q", got, "Error: plain")
	}

	got = Format(WithSuggestion(errors.New("bad"), "fix it"))
	if got != "Error: bad\n\nSuggestion: fix it" {
		t.Errorf("Format() = %q", got)
	}
}

func TestMocNotifyErrorUnwrap(t *testing.T) {
	err := WithSuggestion(ErrNotifyFailed, "retry")
	if !errors.Is(err, ErrNotifyFailed) {
		t.Error("errors.Is() = false, want true")
	}
}
