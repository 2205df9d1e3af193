package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tessro/mocnotify/internal/config"
)

var (
	// Set via ldflags at build time
	Version   = "0.1"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// versionInfo describes the build and the settings the daemon would
// announce itself with.
type versionInfo struct {
	Version    string `json:"version"`
	Commit     string `json:"commit"`
	BuildDate  string `json:"build_date"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
	AppName    string `json:"app_name"`
	Backend    string `json:"backend"`
	ConfigFile string `json:"config_file,omitempty"`
}

func newVersionInfo(c *config.Config, configFile string) versionInfo {
	return versionInfo{
		Version:    Version,
		Commit:     Commit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		AppName:    c.Notify.AppName,
		Backend:    c.Player.Backend,
		ConfigFile: configFile,
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.Path()
		}
		return writeVersion(cmd.OutOrStdout(), newVersionInfo(cfg, path), JSONOutput(), Verbose())
	},
}

func writeVersion(w io.Writer, info versionInfo, asJSON, verbose bool) error {
	if asJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintln(w, Banner())
	if !verbose {
		return nil
	}
	file := info.ConfigFile
	if file == "" {
		file = "(defaults)"
	}
	fmt.Fprintf(w, "  commit:   %s\n", info.Commit)
	fmt.Fprintf(w, "  built:    %s with %s\n", info.BuildDate, info.GoVersion)
	fmt.Fprintf(w, "  platform: %s\n", info.Platform)
	fmt.Fprintf(w, "  app name: %s\n", info.AppName)
	fmt.Fprintf(w, "  backend:  %s\n", info.Backend)
	fmt.Fprintf(w, "  config:   %s\n", file)
	return nil
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
