package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pixpost/internal/core/config"
	"github.com/colonyops/pixpost/internal/data/db"
	"github.com/colonyops/pixpost/internal/data/stores"
)

type registrar interface {
	Register(app *cli.Command) *cli.Command
}

func testFlags(t *testing.T) *Flags {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &Flags{Config: &cfg, DataDir: cfg.DataDir}
}

func testApp(t *testing.T, flags *Flags) *App {
	t.Helper()
	database, err := stores.OpenDB(flags.DataDir, db.DefaultOpenOptions(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	posts := stores.NewPostStore(database)
	return &App{Config: flags.Config, DB: database, Posts: posts}
}

// runCmd registers cmd on a bare root and runs it with args. The returned
// string is everything written to the root writer.
func runCmd(t *testing.T, cmd registrar, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := &cli.Command{
		Name:      "pixpost",
		Writer:    &out,
		ErrWriter: &errOut,
		// keep cli.Exit from terminating the test binary
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	root = cmd.Register(root)

	err := root.Run(context.Background(), append([]string{"pixpost"}, args...))
	return out.String(), err
}
