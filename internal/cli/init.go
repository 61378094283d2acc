package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/boincmon/internal/config"
	"github.com/rileyhilliard/boincmon/internal/errors"
	"github.com/rileyhilliard/boincmon/internal/ui"
	"github.com/rileyhilliard/boincmon/pkg/sshutil"
)

// Command-specific flags
var (
	initHostFlag           string
	initForce              bool
	initGlobal             bool
	initNonInteractiveFlag bool
)

// initCmd creates a new .boincmon.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .boincmon.yaml configuration",
	Long: `Write a commented config file with the default probes and timings.

Interactively, offers the hosts from ~/.ssh/config so the dashboard can
watch a remote node. Pass --host to skip the prompt.

Examples:
  boincmon init
  boincmon init --host boinc-pi
  boincmon init --global --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(".", config.ConfigFileName)
		if initGlobal {
			path = config.GlobalConfigPath()
		}
		return Init(InitOptions{
			Path:           path,
			Host:           initHostFlag,
			Overwrite:      initForce,
			NonInteractive: initNonInteractiveFlag || !isTerminal(os.Stdin) || !isTerminal(os.Stdout),
		}, cmd.OutOrStdout())
	},
}

func init() {
	initCmd.Flags().StringVar(&initHostFlag, "host", "", "SSH host of the BOINC node (skips the picker)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write ~/.config/boincmon/config.yaml instead")
	initCmd.Flags().BoolVar(&initNonInteractiveFlag, "non-interactive", false, "never prompt")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string // Where to write the config
	Host           string // Pre-specified SSH host/alias
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// Init writes a default config to opts.Path.
func Init(opts InitOptions, out io.Writer) error {
	if opts.Path == "" {
		return errors.New(errors.ErrConfig,
			"Couldn't work out where to write the config",
			"Make sure $HOME is set when using --global.")
	}

	if _, err := os.Stat(opts.Path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", opts.Path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", opts.Path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	host := opts.Host
	if host == "" && !opts.NonInteractive {
		picked, err := pickHost()
		if err != nil {
			return err
		}
		host = picked
	}

	cfg := config.DefaultConfig()
	cfg.Host = host
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := config.Write(opts.Path, cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write "+opts.Path,
			"Check the directory exists and is writable.")
	}

	target := "the local machine"
	if host != "" {
		target = host
	}
	ui.PrintSuccess(out, "Created "+opts.Path, "(sampling "+target+")")
	fmt.Fprintln(out, ui.MutedStyle().Render("Run 'boincmon snapshot' to check the probes work."))
	return nil
}

// pickHost offers the hosts in ~/.ssh/config, plus the local machine.
// Returns "" for local. Without any SSH hosts it doesn't prompt.
func pickHost() (string, error) {
	hosts, err := sshutil.ListHosts()
	if err != nil || len(hosts) == 0 {
		return "", nil
	}

	options := []huh.Option[string]{huh.NewOption("This machine (no SSH)", "")}
	for _, h := range hosts {
		options = append(options, huh.NewOption(h.Alias+"  "+ui.MutedStyle().Render(h.Description()), h.Alias))
	}

	var host string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which node runs BOINC?").
				Description("Hosts from ~/.ssh/config").
				Options(options...).
				Value(&host),
		),
	)
	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Pass --host to skip the picker")
	}
	return host, nil
}
