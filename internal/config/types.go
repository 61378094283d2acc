package config

import (
	"os"
	"path/filepath"
	"time"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .boincmon.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Interval is the sampling period of the dashboard.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Timeout bounds every external command. Zero disables the limit.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// CPUInterval is the gap between the two CPU tick snapshots.
	CPUInterval time.Duration `yaml:"cpu_interval" mapstructure:"cpu_interval"`

	// History is how many samples each chart keeps.
	History int `yaml:"history" mapstructure:"history"`

	// Host runs every probe over SSH on this host instead of locally.
	// Can be an SSH config alias, hostname, user@hostname or hostname:port.
	Host string `yaml:"host" mapstructure:"host"`

	// StrictHostKeyChecking verifies remote host keys against known_hosts.
	StrictHostKeyChecking bool `yaml:"strict_host_key_checking" mapstructure:"strict_host_key_checking"`

	Temperature CommandConfig `yaml:"temperature" mapstructure:"temperature"`
	Tasks       CommandConfig `yaml:"tasks" mapstructure:"tasks"`
	Log         LogConfig     `yaml:"log" mapstructure:"log"`
}

// CommandConfig names an external program and its arguments.
type CommandConfig struct {
	Command string   `yaml:"command" mapstructure:"command"`
	Args    []string `yaml:"args" mapstructure:"args"`
}

// LogConfig controls the rotated log file.
type LogConfig struct {
	// File is the log path. Empty disables file logging.
	File string `yaml:"file" mapstructure:"file"`

	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level"`

	MaxSizeMB  int `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days"`
}

// Default probe commands for a Raspberry Pi running the BOINC client.
const (
	DefaultTemperatureCommand = "/opt/vc/bin/vcgencmd"
	DefaultTasksCommand       = "boinccmd"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:               CurrentConfigVersion,
		Interval:              time.Second,
		Timeout:               10 * time.Second,
		CPUInterval:           time.Second,
		History:               100,
		StrictHostKeyChecking: true,
		Temperature: CommandConfig{
			Command: DefaultTemperatureCommand,
			Args:    []string{"measure_temp"},
		},
		Tasks: CommandConfig{
			Command: DefaultTasksCommand,
			Args:    []string{"--get_tasks"},
		},
		Log: LogConfig{
			File:       defaultLogFile(),
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

// defaultLogFile returns the log path under the user cache dir.
func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "boincmon", "boincmon.log")
}
