package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/boincmon/internal/monitor"
)

// snapshotCmd prints one plain frame and exits
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Sample once and print a plain frame",
	Long: `Run a single sampling cycle and print the result as plain text.

Useful for cron jobs, scripts, and checking that the probes work before
starting the dashboard. Exits non-zero if any probe fails.

Examples:
  boincmon snapshot
  boincmon snapshot --host boinc-pi --no-color`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(cmd, globalFlags)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func snapshotCommand(cmd *cobra.Command, flags GlobalFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	var console io.Writer
	if flags.Debug {
		console = cmd.ErrOrStderr()
	}

	s, err := openSession(cfg, console)
	if err != nil {
		return err
	}
	defer s.Close()

	renderer := monitor.NewTextRenderer(cmd.OutOrStdout(), terminalWidth(os.Stdout))
	// Frames only: the error reaches stderr through the return value
	return monitor.NewLoop(s.sources, monitor.RendererFunc(renderer.Render), s.loopOptions()).Cycle(cmd.Context())
}
