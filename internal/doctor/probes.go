package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/rileyhilliard/boincmon/internal/monitor"
	"github.com/rileyhilliard/boincmon/internal/sample"
	"github.com/rileyhilliard/boincmon/internal/tasks"
	"github.com/rileyhilliard/boincmon/internal/util"
)

// TemperatureCheck runs the temperature probe once and checks its output
// carries a reading.
type TemperatureCheck struct {
	Source monitor.TextSource
}

func (c *TemperatureCheck) Name() string     { return "temperature" }
func (c *TemperatureCheck) Category() string { return CategoryProbes }

func (c *TemperatureCheck) Run(ctx context.Context) CheckResult {
	text, err := c.Source.Sample(ctx)
	if err != nil {
		return failure(err, "Check the temperature command in .boincmon.yaml")
	}

	value, ok := sample.ParseTemperature(text)
	if !ok {
		return CheckResult{
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Temperature output has no reading: %q", firstLine(text)),
			Suggestion: "The chart expects output like temp=48.3'C",
		}
	}

	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("Temperature: %.1f °C", value),
	}
}

// TasksCheck runs the task probe once and parses the list.
type TasksCheck struct {
	Source monitor.TextSource
}

func (c *TasksCheck) Name() string     { return "tasks" }
func (c *TasksCheck) Category() string { return CategoryProbes }

func (c *TasksCheck) Run(ctx context.Context) CheckResult {
	text, err := c.Source.Sample(ctx)
	if err != nil {
		return failure(err, "Check boinccmd can reach the client (is boinc-client running?)")
	}

	rows := monitor.ProjectRows(tasks.Parse(text))
	if len(rows) == 0 {
		return CheckResult{
			Status:     StatusWarn,
			Message:    "BOINC reports no tasks",
			Suggestion: "Attach a project with: boinccmd --project_attach <url> <key>",
		}
	}

	working := 0
	for _, r := range rows {
		if r.Working {
			working++
		}
	}
	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("BOINC: %s, %d working", util.CountNoun(len(rows), "task", "tasks"), working),
	}
}

// CPUCheck takes one CPU load sample.
type CPUCheck struct {
	Source monitor.LoadSource
}

func (c *CPUCheck) Name() string     { return "cpu" }
func (c *CPUCheck) Category() string { return CategoryProbes }

func (c *CPUCheck) Run(ctx context.Context) CheckResult {
	load, err := c.Source.SampleLoad(ctx)
	if err != nil {
		return failure(err, "Check /proc/stat is readable on the monitored host")
	}
	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("CPU load: %.1f%%", load),
	}
}

// NewProbeChecks returns one check per source, in sampling order.
func NewProbeChecks(sources monitor.Sources) []Check {
	return []Check{
		&TemperatureCheck{Source: sources.Temperature},
		&CPUCheck{Source: sources.CPU},
		&TasksCheck{Source: sources.Tasks},
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
