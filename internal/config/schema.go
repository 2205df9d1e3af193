package config

// Config is the root configuration structure.
type Config struct {
	Player PlayerConfig `toml:"player" yaml:"player"`
	Poll   PollConfig   `toml:"poll" yaml:"poll"`
	Notify NotifyConfig `toml:"notify" yaml:"notify"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// PlayerConfig selects and configures the player being watched.
type PlayerConfig struct {
	Backend     string   `toml:"backend" yaml:"backend" default:"moc"`
	Command     []string `toml:"command" yaml:"command" default:"[\"mocp\",\"-i\"]"`
	MPDAddress  string   `toml:"mpd_address" yaml:"mpd_address" default:"localhost:6600"`
	MPDPassword string   `toml:"mpd_password" yaml:"mpd_password"`
	MPRISPlayer string   `toml:"mpris_player" yaml:"mpris_player"`
}

// PollConfig holds settings for the poll loop.
type PollConfig struct {
	IntervalMS            int  `toml:"interval_ms" yaml:"interval_ms" default:"500"`
	ContinueOnNotifyError bool `toml:"continue_on_notify_error" yaml:"continue_on_notify_error"`
}

// NotifyConfig holds desktop notification settings.
type NotifyConfig struct {
	AppName         string `toml:"app_name" yaml:"app_name" default:"moc-notify"`
	Icon            string `toml:"icon" yaml:"icon" default:"icon-moc.png"`
	TimeoutMS       int    `toml:"timeout_ms" yaml:"timeout_ms" default:"5000"`
	SummaryTemplate string `toml:"summary_template" yaml:"summary_template"`
	BodyTemplate    string `toml:"body_template" yaml:"body_template"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" yaml:"level" default:"info"`
	File  string `toml:"file" yaml:"file"`
}
