package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/boincmon/internal/errors"
	"github.com/rileyhilliard/boincmon/internal/monitor"
)

// monitorCommand runs the dashboard until the user quits or sampling fails.
// Output falls back to plain frames when stdout isn't a terminal.
func monitorCommand(cmd *cobra.Command, flags GlobalFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	plain := flags.Plain || !isTerminal(os.Stdout)

	// The TUI owns the terminal, so console logging is plain mode only
	var console io.Writer
	if plain {
		console = cmd.ErrOrStderr()
	}

	s, err := openSession(cfg, console)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if plain {
		renderer := monitor.NewTextRenderer(cmd.OutOrStdout(), terminalWidth(os.Stdout))
		return monitor.NewLoop(s.sources, renderer, s.loopOptions()).Run(ctx)
	}
	return runDashboard(ctx, s)
}

// runDashboard drives the Bubble Tea program from a Loop on its own
// goroutine. Quitting the program stops the Loop; a Loop failure leaves the
// program running with the error on screen.
func runDashboard(ctx context.Context, s *session) error {
	p := tea.NewProgram(monitor.NewModel(s.cfg.Host), tea.WithAltScreen())

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := monitor.NewLoop(s.sources, monitor.NewProgramRenderer(p), s.loopOptions())
	done := make(chan error, 1)
	go func() {
		done <- loop.Run(loopCtx)
	}()

	// Signals end the program the same way q does
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, runErr := p.Run()
	cancel()
	loopErr := <-done

	if runErr != nil {
		return errors.WrapWithCode(runErr, errors.ErrExec,
			"The dashboard stopped unexpectedly",
			"Try --plain if your terminal can't host the dashboard.")
	}
	return loopErr
}
