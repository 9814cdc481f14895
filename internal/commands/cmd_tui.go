package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pixpost/internal/core/config"
	"github.com/colonyops/pixpost/internal/core/logging"
	"github.com/colonyops/pixpost/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *App

	startDir string
	noWatch  bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *App) *TuiCmd {
	return &TuiCmd{flags: flags, app: app}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Usage:       "directory the file picker starts in (overrides tui.start_dir)",
			Destination: &cmd.startDir,
		},
		&cli.BoolFlag{
			Name:        "no-watch",
			Usage:       "do not reload the config file when it changes",
			Sources:     cli.EnvVars("PIXPOST_NO_WATCH"),
			Destination: &cmd.noWatch,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	log := logging.Component("cmd.tui")

	cfg := *cmd.app.Config
	if cmd.startDir != "" {
		cfg.TUI.StartDir = cmd.startDir
	}

	var updates chan *config.Config
	if !cmd.noWatch {
		updates = make(chan *config.Config, 1)
		w, err := config.Watch(cmd.flags.ConfigPath, cmd.flags.DataDir, log, func(next *config.Config) {
			if cmd.startDir != "" {
				next.TUI.StartDir = cmd.startDir
			}
			// Keep only the newest pending config.
			select {
			case <-updates:
			default:
			}
			updates <- next
		})
		if err != nil {
			log.Warn().Err(err).Msg("config watcher disabled")
		} else {
			defer func() { _ = w.Close() }()
		}
	}

	m := tui.New(&cfg, tui.Options{
		Submitter:     cmd.app.Submitter,
		ConfigUpdates: updates,
	})

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
