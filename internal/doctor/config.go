package doctor

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/rileyhilliard/boincmon/internal/config"
	"github.com/rileyhilliard/boincmon/internal/errors"
)

// ConfigCheck verifies the config file loads and validates. A missing file
// is only a warning: the defaults target a local Raspberry Pi.
type ConfigCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigCheck) Name() string     { return "config" }
func (c *ConfigCheck) Category() string { return CategoryConfig }

func (c *ConfigCheck) Run(_ context.Context) CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return failure(err, "Check the --config path")
	}

	if _, err := config.Load(path); err != nil {
		return failure(err, "Check the YAML syntax in your config file")
	}

	if path == "" {
		return CheckResult{
			Status:     StatusWarn,
			Message:    "No config file found, using defaults",
			Suggestion: "Run 'boincmon init' to write a .boincmon.yaml",
		}
	}

	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", path),
	}
}

// failure builds a fail result from err, taking the suggestion from a
// structured error when it carries one.
func failure(err error, fallback string) CheckResult {
	suggestion := fallback
	var e *errors.Error
	if stderrors.As(err, &e) && e.Suggestion != "" {
		suggestion = e.Suggestion
	}
	return CheckResult{
		Status:     StatusFail,
		Message:    errors.Summary(err),
		Suggestion: suggestion,
	}
}
