package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tessro/mocnotify/internal/config"
	mnerrors "github.com/tessro/mocnotify/internal/errors"
	"github.com/tessro/mocnotify/internal/styles"
	"golang.org/x/term"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mocnotify",
	Short: "Desktop notifications for the track playing in MOC",
	Long: `mocnotify polls the MOC console player (or MPD, or any MPRIS player)
twice a second and pops up a desktop notification whenever a new track starts.

Run without arguments to start watching; it keeps going until killed.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE:          runWatch,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.mocnotifyrc)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err, term.IsTerminal(int(os.Stderr.Fd()))))
		os.Exit(1)
	}
}

// formatError renders err with its suggestion, in red on a terminal.
func formatError(err error, tty bool) string {
	msg := mnerrors.Format(err)
	if tty {
		return styles.ErrorText.Render(msg)
	}
	return msg
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}
