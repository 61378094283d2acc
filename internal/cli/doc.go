// Package cli implements the boincmon command-line interface.
//
// Commands are Cobra commands that load config, apply flag overrides and
// hand off to the monitor package:
//
//	boincmon            - Live dashboard (plain frames when stdout isn't a TTY)
//	boincmon snapshot   - One cycle, printed as plain text
//	boincmon init       - Write a commented .boincmon.yaml
//	boincmon doctor     - Check config, SSH and probes once
//	boincmon version    - Build information
//
// # Configuration
//
// Settings resolve in this order, later winning:
//
//  1. Built-in defaults
//  2. ~/.config/boincmon/config.yaml or ./.boincmon.yaml (or --config)
//  3. BOINCMON_* environment variables, including those from ./.env
//  4. Command-line flags
//
// # Sessions
//
// Every sampling command opens a session: a zap logger (rotated file, plus
// stderr in plain mode), a runner that is either local or a lazily dialed
// SSH connection, and the three probe sources built on that runner.
// Closing the session closes the SSH connection and flushes the log.
package cli
