package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pixpost/internal/commands"
	"github.com/colonyops/pixpost/internal/core/config"
	"github.com/colonyops/pixpost/internal/core/styles"
	"github.com/colonyops/pixpost/pkg/logutils"
	"github.com/colonyops/pixpost/pkg/profiler"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		stopProf  context.CancelFunc
		app       = &commands.App{}
		flags     = &commands.Flags{}
	)

	root := commands.NewRoot(flags, app, build())

	root.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		// Always log to a file; use explicit path or default to <datadir>/pixpost.log
		logFile := flags.LogFile
		if logFile == "" {
			logFile = filepath.Join(flags.DataDir, "pixpost.log")
		}

		logger, closer, err := logutils.New(flags.LogLevel, logFile)
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		log.Logger = logger
		logCloser = closer

		if flags.PprofAddr != "" {
			profCtx, cancel := context.WithCancel(context.Background())
			stopProf = cancel
			if err := profiler.New(flags.PprofAddr, log.Logger).Start(profCtx); err != nil {
				log.Warn().Err(err).Msg("failed to start profiler")
			}
		}

		cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
		if err != nil {
			if commands.IsConfigCommand(c) {
				flags.ConfigErr = err
				return ctx, nil
			}
			return ctx, fmt.Errorf("load config: %w", err)
		}
		flags.Config = cfg

		// Apply configured theme (validation ensures name is valid)
		palette, _ := styles.GetPalette(cfg.TUI.Theme)
		styles.SetTheme(palette)

		// Populate the pre-allocated App struct (commands already hold a pointer to it)
		a, err := commands.NewApp(cfg, log.With().Str("component", "app").Logger())
		if err != nil {
			return ctx, err
		}
		*app = *a

		return ctx, nil
	}

	root.After = func(ctx context.Context, c *cli.Command) error {
		if stopProf != nil {
			stopProf()
		}

		if err := app.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
			return err
		}

		// Close log file
		if logCloser != nil {
			logCloser()
		}
		return nil
	}

	exitCode := 0
	runErr := root.Run(ctx, os.Args)
	if runErr != nil {
		if msg := runErr.Error(); msg != "" {
			fmt.Println()
			fmt.Println(msg)
		}
		exitCode = 1
	}

	os.Exit(exitCode)
}
