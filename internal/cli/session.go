package cli

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/rileyhilliard/boincmon/internal/config"
	"github.com/rileyhilliard/boincmon/internal/cpuload"
	"github.com/rileyhilliard/boincmon/internal/errors"
	"github.com/rileyhilliard/boincmon/internal/exec"
	"github.com/rileyhilliard/boincmon/internal/logger"
	"github.com/rileyhilliard/boincmon/internal/monitor"
	"github.com/rileyhilliard/boincmon/internal/sample"
	"github.com/rileyhilliard/boincmon/pkg/sshutil"
)

// ProcStatPath is read through the runner for CPU load on remote nodes.
const ProcStatPath = "/proc/stat"

// session holds what a dashboard or snapshot run needs: the logger, the
// runner the probes share and the sources built on it.
type session struct {
	cfg     *config.Config
	log     *logger.ZapLogger
	runner  exec.Runner
	sources monitor.Sources
	closers []func() error
}

// openSession builds the logger, runner and sources for cfg. Console log
// output goes to console when it is non-nil.
func openSession(cfg *config.Config, console io.Writer) (*session, error) {
	log, err := logger.New(logger.Options{
		File:    cfg.Log.File,
		Level:   cfg.Log.Level,
		Console: console,
		Rotation: logger.FileWriterConfig{
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		},
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't set up logging",
			"Check log.file is writable, or pass --log-file to use another path.")
	}
	logger.SetDefault(log)

	s := &session{cfg: cfg, log: log}

	var runner exec.Runner = exec.NewLocalRunner()
	remote := cfg.Host != ""
	if remote {
		sshRunner := exec.NewSSHRunner(cfg.Host, sshutil.Options{
			Timeout:               cfg.Timeout,
			StrictHostKeyChecking: cfg.StrictHostKeyChecking,
			Log:                   log.Named("ssh"),
		})
		runner = sshRunner
		s.closers = append(s.closers, sshRunner.Close, func() error {
			sshutil.CloseAgent()
			return nil
		})
		log.Info("sampling %s over SSH", cfg.Host)
	} else {
		log.Info("sampling the local machine")
	}

	s.runner = runner
	s.sources = buildSources(cfg, runner, remote)
	return s, nil
}

// buildSources wires the three probes to a runner. Remote nodes report CPU
// load through /proc/stat; locally the OS counters are read directly.
func buildSources(cfg *config.Config, runner exec.Runner, remote bool) monitor.Sources {
	command := func(c config.CommandConfig) *sample.Command {
		return &sample.Command{
			Runner:  runner,
			Name:    c.Command,
			Args:    c.Args,
			Timeout: cfg.Timeout,
		}
	}

	var provider cpuload.SnapshotProvider = cpuload.NewLocalProvider()
	if remote {
		provider = &cpuload.ProcStatProvider{
			Command: command(config.CommandConfig{Command: "cat", Args: []string{ProcStatPath}}),
		}
	}

	return monitor.Sources{
		Temperature: command(cfg.Temperature),
		Tasks:       command(cfg.Tasks),
		CPU:         cpuload.NewSampler(provider, cfg.CPUInterval),
	}
}

// loopOptions maps config onto Loop options.
func (s *session) loopOptions() monitor.Options {
	return monitor.Options{
		Interval: s.cfg.Interval,
		History:  s.cfg.History,
		Host:     s.cfg.Host,
		Log:      s.log.Named("loop"),
	}
}

// Close releases the SSH connection and flushes the log.
func (s *session) Close() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			s.log.Warn("cleanup: %v", err)
		}
	}
	_ = s.log.Sync()
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of f, or the default frame width when f
// isn't a terminal.
func terminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return monitor.DefaultWidth
	}
	return width
}
