package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/boincmon/internal/errors"
	"github.com/rileyhilliard/boincmon/internal/logger"
)

// MinInterval is the shortest sampling period accepted.
const MinInterval = 100 * time.Millisecond

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but boincmon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest boincmon release.")
	}

	if msg := validateTiming(cfg); msg != "" {
		return errors.New(errors.ErrConfig, msg, "Durations look like 500ms, 1s or 2m.")
	}

	if cfg.History < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("history needs to be at least 1 (got %d)", cfg.History),
			"The default of 100 samples works well for a terminal-wide chart.")
	}

	if err := validateHost(cfg.Host); err != nil {
		return err
	}

	if msg := validateCommand("temperature", cfg.Temperature); msg != "" {
		return errors.New(errors.ErrConfig, msg, "Check the 'temperature' section in your .boincmon.yaml.")
	}
	if msg := validateCommand("tasks", cfg.Tasks); msg != "" {
		return errors.New(errors.ErrConfig, msg, "Check the 'tasks' section in your .boincmon.yaml.")
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("log.level '%s' isn't a level boincmon knows", cfg.Log.Level),
			"Use one of: debug, info, warn, error.")
	}

	return nil
}

// validateTiming checks the sampling cadence and command timeout.
// Returns a problem description, or "" when the timings are usable.
func validateTiming(cfg *Config) string {
	if cfg.Interval < MinInterval {
		return fmt.Sprintf("interval %v is too short - use at least %v", cfg.Interval, MinInterval)
	}
	if cfg.CPUInterval <= 0 {
		return fmt.Sprintf("cpu_interval needs to be positive (got %v)", cfg.CPUInterval)
	}
	if cfg.Timeout < 0 {
		return "timeout can't be negative - use 0 to disable it"
	}
	return ""
}

// validateHost checks that an SSH target is a single token.
func validateHost(host string) error {
	if host == "" {
		return nil
	}
	if strings.ContainsAny(host, " \t\n") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("host '%s' contains whitespace", host),
			"Use an SSH alias, hostname, user@hostname or hostname:port.")
	}
	return nil
}

// validateCommand checks a probe command is configured.
func validateCommand(name string, cmd CommandConfig) string {
	if strings.TrimSpace(cmd.Command) == "" {
		return fmt.Sprintf("%s.command is empty - boincmon needs something to run", name)
	}
	for i, arg := range cmd.Args {
		if arg == "" {
			return fmt.Sprintf("%s.args[%d] is empty - remove it", name, i)
		}
	}
	return ""
}
