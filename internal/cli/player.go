package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tessro/mocnotify/internal/config"
	"github.com/tessro/mocnotify/internal/core"
	mnerrors "github.com/tessro/mocnotify/internal/errors"
	"github.com/tessro/mocnotify/internal/moc"
	"github.com/tessro/mocnotify/internal/mpd"
	"github.com/tessro/mocnotify/internal/mpris"
)

// backends lists the accepted player.backend values.
var backends = []string{"moc", "mpd", "mpris"}

// newSource returns the player source selected by the config.
func newSource(c *config.Config, logger *slog.Logger) (core.Source, error) {
	switch c.Player.Backend {
	case "", "moc":
		return moc.New(c.Player.Command, logger), nil
	case "mpd":
		return mpd.New(c.Player.MPDAddress, c.Player.MPDPassword, logger), nil
	case "mpris":
		return mpris.New(c.Player.MPRISPlayer, logger), nil
	default:
		return nil, mnerrors.WithSuggestion(
			fmt.Errorf("%w: %s", mnerrors.ErrUnknownBackend, c.Player.Backend),
			fmt.Sprintf("Set player.backend to one of: %s", strings.Join(backends, ", ")),
		)
	}
}
