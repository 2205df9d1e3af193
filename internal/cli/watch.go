package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tessro/mocnotify/internal/config"
	"github.com/tessro/mocnotify/internal/logging"
	"github.com/tessro/mocnotify/internal/notify"
	"github.com/tessro/mocnotify/internal/watch"
)

func runWatch(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), Banner())

	logger, closer, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	caller, err := notify.NewBusCaller()
	if err != nil {
		return err
	}

	watcher, err := newWatcher(cfg, caller, logger)
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("watching player",
		"backend", cfg.Player.Backend,
		"interval", watcher.Interval(),
	)

	if err := watcher.Run(ctx); err != nil {
		logger.Error("stopping", "err", err)
		return err
	}
	return nil
}

// newWatcher wires the configured source and a notifier delivering through
// caller into a watcher.
func newWatcher(c *config.Config, caller notify.Caller, logger *slog.Logger) (*watch.Watcher, error) {
	source, err := newSource(c, logger)
	if err != nil {
		return nil, err
	}

	notifier := notify.New(caller,
		notify.WithAppName(c.Notify.AppName),
		notify.WithIcon(c.Notify.Icon),
		notify.WithTimeout(c.Notify.Timeout()),
		notify.WithFormatter(notify.NewFormatter(
			notify.WithSummaryTemplate(c.Notify.SummaryTemplate),
			notify.WithBodyTemplate(c.Notify.BodyTemplate),
		)),
	)

	return watch.NewWatcher(
		watch.NewDetector(source, notifier, logger),
		c.Poll.Interval(),
		watch.WithExitOnError(!c.Poll.ContinueOnNotifyError),
		watch.WithLogger(logger),
	), nil
}

// Banner returns the startup line printed before watching begins.
func Banner() string {
	return fmt.Sprintf("Moc-notify v%s", Version)
}
