package cli

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/boincmon/internal/config"
	"github.com/rileyhilliard/boincmon/internal/doctor"
	"github.com/rileyhilliard/boincmon/internal/errors"
	"github.com/rileyhilliard/boincmon/internal/ui"
)

var doctorJSON bool

// doctorCmd checks the setup without starting the dashboard
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the config, SSH connection and probes",
	Long: `Run every probe once and report what works.

Checks the config file, the SSH agent and connection when --host is set,
and that the temperature, CPU and task probes return usable output.
Exits non-zero if any check fails.

Examples:
  boincmon doctor
  boincmon doctor --host boinc-pi
  boincmon doctor --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(cmd, globalFlags)
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput represents the JSON output for the doctor command.
type DoctorOutput struct {
	Results []doctor.CheckResult `json:"results"`
	Summary SummaryOutput        `json:"summary"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

func doctorCommand(cmd *cobra.Command, flags GlobalFlags) error {
	results := runDoctorChecks(cmd, flags)

	out := cmd.OutOrStdout()
	if doctorJSON {
		if err := outputDoctorJSON(out, results); err != nil {
			return err
		}
	} else {
		outputDoctorText(out, results)
	}

	if doctor.HasFailures(results) {
		return errors.New(errors.ErrExec,
			doctor.Summary(results),
			"Fix the failing checks above, then run 'boincmon doctor' again.")
	}
	return nil
}

// runDoctorChecks runs the config check, then the SSH and probe checks
// when the config is usable.
func runDoctorChecks(cmd *cobra.Command, flags GlobalFlags) []doctor.CheckResult {
	ctx := cmd.Context()
	checks := []doctor.Check{&doctor.ConfigCheck{ConfigPath: flags.ConfigPath}}

	cfg, err := loadConfig(flags)
	if err != nil {
		results := doctor.RunAll(ctx, checks)
		// Flag overrides can break a config that loads fine on its own
		if !doctor.HasFailures(results) {
			results = append(results, setupResult("flags", err))
		}
		return results
	}

	var console io.Writer
	if flags.Debug {
		console = cmd.ErrOrStderr()
	}
	s, err := openSession(cfg, console)
	if err != nil {
		return append(doctor.RunAll(ctx, checks), setupResult("logging", err))
	}
	defer s.Close()

	if cfg.Host != "" {
		checks = append(checks,
			&doctor.SSHAgentCheck{},
			&doctor.ConnectionCheck{Host: cfg.Host, Runner: s.runner},
		)
	}
	checks = append(checks, doctor.NewProbeChecks(s.sources)...)

	return doctor.RunAll(ctx, checks)
}

// setupResult reports a failure outside the config file itself.
func setupResult(name string, err error) doctor.CheckResult {
	suggestion := "Check the command-line flags and " + config.ConfigFileName
	var e *errors.Error
	if stderrors.As(err, &e) && e.Suggestion != "" {
		suggestion = e.Suggestion
	}
	return doctor.CheckResult{
		Name:       name,
		Category:   doctor.CategoryConfig,
		Status:     doctor.StatusFail,
		Message:    errors.Summary(err),
		Suggestion: suggestion,
	}
}

func outputDoctorJSON(w io.Writer, results []doctor.CheckResult) error {
	counts := doctor.CountByStatus(results)
	output := DoctorOutput{
		Results: results,
		Summary: SummaryOutput{
			Pass:     counts[doctor.StatusPass],
			Warn:     counts[doctor.StatusWarn],
			Fail:     counts[doctor.StatusFail],
			AllClear: !doctor.HasIssues(results),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputDoctorText(w io.Writer, results []doctor.CheckResult) {
	headerStyle := ui.InfoStyle().Bold(true)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("boincmon diagnostic report"))
	fmt.Fprintln(w)

	grouped := doctor.GroupByCategory(results)
	for _, category := range doctor.CategoryOrder {
		group := grouped[category]
		if len(group) == 0 {
			continue
		}

		fmt.Fprintln(w, headerStyle.Render(category))
		for _, result := range group {
			renderCheckResult(w, result)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, ui.FormatDivider(60))
	fmt.Fprintln(w)

	if doctor.HasIssues(results) {
		ui.PrintFailure(w, doctor.Summary(results), "")
	} else {
		ui.PrintSuccess(w, doctor.Summary(results), "")
	}
	fmt.Fprintln(w)
}

// renderCheckResult renders a single check result.
func renderCheckResult(w io.Writer, result doctor.CheckResult) {
	var line string
	switch result.Status {
	case doctor.StatusPass:
		line = ui.FormatStatus(ui.SymbolComplete, ui.ColorSuccess, result.Message, "")
	case doctor.StatusWarn:
		line = ui.FormatStatus(ui.SymbolWarning, ui.ColorWarning, result.Message, "")
	default:
		line = ui.FormatStatus(ui.SymbolFail, ui.ColorError, result.Message, "")
	}
	fmt.Fprintf(w, "  %s\n", line)

	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		for _, s := range strings.Split(result.Suggestion, "\n") {
			fmt.Fprintf(w, "    %s\n", ui.MutedStyle().Render(s))
		}
	}
}
