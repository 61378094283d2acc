package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/boincmon/internal/config"
	"github.com/rileyhilliard/boincmon/internal/errors"
)

// GlobalFlags holds the persistent flags registered on the root command.
type GlobalFlags struct {
	ConfigPath string
	Interval   string
	Timeout    string
	Host       string
	LogFile    string
	Plain      bool
	NoColor    bool
	Debug      bool
}

// AddGlobalFlags registers the persistent flags on a command.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", "", "config file (default .boincmon.yaml, then ~/.config/boincmon/config.yaml)")
	pf.StringVar(&flags.Interval, "interval", "", "sampling interval (e.g., 1s, 5s)")
	pf.StringVar(&flags.Timeout, "timeout", "", "per-probe timeout (e.g., 10s); 0 disables")
	pf.StringVar(&flags.Host, "host", "", "sample a remote node over SSH (alias, host, user@host or host:port)")
	pf.StringVar(&flags.LogFile, "log-file", "", "write logs to this file")
	pf.BoolVar(&flags.Plain, "plain", false, "print plain frames instead of the interactive dashboard")
	pf.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	pf.BoolVar(&flags.Debug, "debug", false, "log at debug level")
}

// ParseDurationFlag parses a duration flag value. Returns ok=false if the
// flag is empty.
func ParseDurationFlag(name, value string) (d time.Duration, ok bool, err error) {
	if value == "" {
		return 0, false, nil
	}

	d, err = time.ParseDuration(value)
	if err != nil {
		return 0, false, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid --%s", value, name),
			"Try something like 5s, 2m, or 500ms.")
	}
	return d, true, nil
}

// ApplyOverrides copies flag values over the loaded config and validates
// the result.
func ApplyOverrides(cfg *config.Config, flags GlobalFlags) error {
	interval, ok, err := ParseDurationFlag("interval", flags.Interval)
	if err != nil {
		return err
	}
	if ok {
		cfg.Interval = interval
	}

	timeout, ok, err := ParseDurationFlag("timeout", flags.Timeout)
	if err != nil {
		return err
	}
	if ok {
		cfg.Timeout = timeout
	}

	if flags.Host != "" {
		cfg.Host = flags.Host
	}
	if flags.LogFile != "" {
		cfg.Log.File = flags.LogFile
	}
	if flags.Debug {
		cfg.Log.Level = "debug"
	}

	return config.Validate(cfg)
}

// loadConfig finds and loads the config, then applies flag overrides.
func loadConfig(flags GlobalFlags) (*config.Config, error) {
	cfg, _, err := config.LoadOrDefault(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := ApplyOverrides(cfg, flags); err != nil {
		return nil, err
	}
	return cfg, nil
}
