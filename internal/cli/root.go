package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/boincmon/internal/ui"
)

// globalFlags holds the persistent flags shared by every command.
var globalFlags GlobalFlags

// rootCmd runs the dashboard
var rootCmd = &cobra.Command{
	Use:   "boincmon",
	Short: "Live terminal dashboard for a BOINC node",
	Long: `Watch a BOINC volunteer-computing node from the terminal.

Samples the board temperature, CPU load and the BOINC task list once per
interval and shows them as two charts and a task table. Probes run locally,
or on a remote node over SSH with --host.

Sampling stops for good at the first probe failure. The error is shown
under the last frame and boincmon exits non-zero when you quit.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  up/k down/j Scroll the task table
  ?           Show help

Examples:
  boincmon
  boincmon --host pi@boinc-node.local
  boincmon --interval 5s --plain
  boincmon doctor --host boinc-pi`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if globalFlags.NoColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(cmd, globalFlags)
	},
}

func init() {
	AddGlobalFlags(rootCmd, &globalFlags)
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		os.Exit(1)
	}
}
