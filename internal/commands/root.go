package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewRoot builds the pixpost command tree. Before and After hooks are left to
// the caller.
func NewRoot(flags *Flags, app *App, version string) *cli.Command {
	root := &cli.Command{
		Name:      "pixpost",
		Usage:     "Post images with hashtags and a description",
		UsageText: "pixpost [global options] command [command options]",
		Description: `pixpost picks an image, lets you zoom it and apply a preview effect, checks
your hashtags and description and publishes the post.

Run 'pixpost' with no arguments to open the interactive upload dialog.
Run 'pixpost post <file>' to publish without the full screen interface.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("PIXPOST_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/pixpost.log)",
				Sources:     cli.EnvVars("PIXPOST_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("PIXPOST_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("PIXPOST_DATA_DIR"),
				Value:       DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "pprof-addr",
				Usage:       "serve pprof handlers on this address, e.g. 127.0.0.1:6060",
				Sources:     cli.EnvVars("PIXPOST_PPROF_ADDR"),
				Destination: &flags.PprofAddr,
			},
		},
	}

	tuiCmd := NewTuiCmd(flags, app)
	root.Flags = append(root.Flags, tuiCmd.Flags()...)

	root = NewPostCmd(flags, app).Register(root)
	root = NewCheckCmd(flags).Register(root)
	root = NewLsCmd(flags).Register(root)
	root = NewHistoryCmd(flags, app).Register(root)
	root = NewRulesCmd(flags).Register(root)
	root = NewConfigCmd(flags).Register(root)

	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'pixpost --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return root
}

// IsConfigCommand reports whether c was invoked for the config subcommand,
// which must run even when the config file is invalid.
func IsConfigCommand(c *cli.Command) bool {
	return c.Args().First() == "config"
}
