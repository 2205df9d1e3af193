package config

import (
	"time"

	"github.com/creasty/defaults"
)

// Default returns a Config populated with the values from the struct tags.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	// Only fails on malformed tags, which would be a programming error.
	if err := defaults.Set(c); err != nil {
		panic(err)
	}
}

// Interval returns the poll interval.
func (c *PollConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Timeout returns how long notifications stay on screen.
func (c *NotifyConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
